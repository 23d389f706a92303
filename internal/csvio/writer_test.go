package csvio

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadflow/timetable/internal/scheduler"
	"github.com/acadflow/timetable/pkg/model"
)

func sampleSchedule(cfg *scheduler.Configuration) *model.Schedule {
	sectionA := &model.Section{Name: "S1CSEA", Semester: 1, Branch: "cse", StudentCount: 30}
	sectionB := &model.Section{Name: "S1CSEB", Semester: 1, Branch: "cse", StudentCount: 30}
	course := model.Course{Code: "CS101", Name: "Programming", Credits: 2}
	room := model.Room{Number: "R101", Capacity: 40}

	schedule := model.NewSchedule([]*model.Section{sectionB, sectionA})
	// Commit order is deliberately scrambled; the export must sort.
	schedule.Slots["S1CSEB"] = []*model.ScheduledSlot{
		{Day: cfg.Days[2], Time: cfg.TimeSlots[0], Course: course, Room: room, Section: sectionB, Faculty: "Dr. Rao"},
	}
	schedule.Slots["S1CSEA"] = []*model.ScheduledSlot{
		{Day: cfg.Days[0], Time: cfg.TimeSlots[3], Course: course, Room: room, Section: sectionA, Faculty: "Dr. Rao"},
		{Day: cfg.Days[0], Time: cfg.TimeSlots[1], Course: course, Room: room, Section: sectionA, Faculty: "Dr. Rao"},
	}
	return schedule
}

func TestExportScheduleStringSorted(t *testing.T) {
	cfg := scheduler.NewDefaultConfiguration()
	out, err := ExportScheduleString(sampleSchedule(cfg), cfg)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "section,day,time,course_code,course_name,faculty,room", strings.TrimSpace(lines[0]))
	// S1CSEA before S1CSEB, and within a day the earlier slot first.
	assert.Contains(t, lines[1], "S1CSEA")
	assert.Contains(t, lines[1], cfg.TimeSlots[1])
	assert.Contains(t, lines[2], "S1CSEA")
	assert.Contains(t, lines[2], cfg.TimeSlots[3])
	assert.Contains(t, lines[3], "S1CSEB")
}

func TestExportScheduleWritesFile(t *testing.T) {
	cfg := scheduler.NewDefaultConfiguration()
	path := filepath.Join(t.TempDir(), "schedule.csv")

	require.NoError(t, ExportSchedule(sampleSchedule(cfg), cfg, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CS101")
	assert.Contains(t, string(data), "S1CSEB")
}
