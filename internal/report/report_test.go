package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadflow/timetable/internal/scheduler"
	"github.com/acadflow/timetable/pkg/model"
)

func renderedSchedule(cfg *scheduler.Configuration) *model.Schedule {
	section := &model.Section{Name: "S1CSEA", Semester: 1, Branch: "cse", StudentCount: 42}
	schedule := model.NewSchedule([]*model.Section{section})
	schedule.Slots["S1CSEA"] = []*model.ScheduledSlot{
		{
			Day:     cfg.Days[0],
			Time:    cfg.TimeSlots[0],
			Course:  model.Course{Code: "CS101", Name: "Programming", Credits: 3},
			Room:    model.Room{Number: "R101", Capacity: 60},
			Section: section,
			Faculty: "Dr. Rao",
		},
		{
			Day:     cfg.Days[2],
			Time:    cfg.TimeSlots[5],
			Course:  model.Course{Code: "MA102", Name: "Calculus", Credits: 3},
			Room:    model.Room{Number: "R102", Capacity: 40},
			Section: section,
			Faculty: "Dr. Nair",
		},
	}
	return schedule
}

func TestWriteSectionGrid(t *testing.T) {
	cfg := scheduler.NewDefaultConfiguration()
	var buf bytes.Buffer

	require.NoError(t, WriteSectionGrid(&buf, renderedSchedule(cfg), "S1CSEA", cfg))

	out := buf.String()
	assert.Contains(t, out, "Section S1CSEA")
	assert.Contains(t, out, "CS101 (R101)")
	assert.Contains(t, out, "MA102 (R102)")
	for _, day := range cfg.Days {
		assert.Contains(t, out, day)
	}
	for _, slot := range cfg.TimeSlots {
		assert.Contains(t, out, slot)
	}
}

func TestWriteSectionGridUnknownSection(t *testing.T) {
	cfg := scheduler.NewDefaultConfiguration()
	err := WriteSectionGrid(&bytes.Buffer{}, renderedSchedule(cfg), "S9CSEZ", cfg)
	assert.Error(t, err)
}

func TestSectionPDF(t *testing.T) {
	cfg := scheduler.NewDefaultConfiguration()

	data, err := SectionPDF(renderedSchedule(cfg), "S1CSEA", cfg)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Greater(t, len(data), 500)
}

func TestSectionPDFUnknownSection(t *testing.T) {
	cfg := scheduler.NewDefaultConfiguration()
	_, err := SectionPDF(renderedSchedule(cfg), "S9CSEZ", cfg)
	assert.Error(t, err)
}
