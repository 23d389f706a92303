package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/acadflow/timetable/pkg/model"
)

func slotAt(section *model.Section, course model.Course, room model.Room, day, time, faculty string) *model.ScheduledSlot {
	return &model.ScheduledSlot{
		Day: day, Time: time, Course: course, Room: room, Section: section, Faculty: faculty,
	}
}

func TestValidateRoomMonotony(t *testing.T) {
	cfg := NewDefaultConfiguration()
	section := &model.Section{Name: "S1CSEA", Semester: 1, Branch: "cse", StudentCount: 30}
	course := model.Course{Code: "CS101", Name: "Programming", Credits: 3}
	room := model.Room{Number: "R101", Capacity: 40}

	schedule := model.NewSchedule([]*model.Section{section})
	schedule.Slots["S1CSEA"] = []*model.ScheduledSlot{
		slotAt(section, course, room, cfg.Days[0], cfg.TimeSlots[0], "Dr. Rao"),
		slotAt(section, course, room, cfg.Days[1], cfg.TimeSlots[0], "Dr. Rao"),
		slotAt(section, course, room, cfg.Days[2], cfg.TimeSlots[0], "Dr. Rao"),
	}

	warnings := Validate(schedule, cfg)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "CS101")
	assert.Contains(t, warnings[0], "R101")
	assert.Contains(t, warnings[0], "S1CSEA")
}

func TestValidateTwoSessionsSameRoomIsFine(t *testing.T) {
	cfg := NewDefaultConfiguration()
	section := &model.Section{Name: "S1CSEA", Semester: 1, Branch: "cse", StudentCount: 30}
	course := model.Course{Code: "CS101", Name: "Programming", Credits: 2}
	room := model.Room{Number: "R101", Capacity: 40}

	schedule := model.NewSchedule([]*model.Section{section})
	schedule.Slots["S1CSEA"] = []*model.ScheduledSlot{
		slotAt(section, course, room, cfg.Days[0], cfg.TimeSlots[0], "Dr. Rao"),
		slotAt(section, course, room, cfg.Days[1], cfg.TimeSlots[0], "Dr. Rao"),
	}

	assert.Empty(t, Validate(schedule, cfg))
}

func TestValidateUnevenSpread(t *testing.T) {
	cfg := NewDefaultConfiguration()
	section := &model.Section{Name: "S1CSEA", Semester: 1, Branch: "cse", StudentCount: 30}
	room1 := model.Room{Number: "R101", Capacity: 40}
	room2 := model.Room{Number: "R102", Capacity: 40}

	// Four sessions piled on Monday, nothing elsewhere: spread 4 > 2.
	schedule := model.NewSchedule([]*model.Section{section})
	for i, room := range []model.Room{room1, room2, room1, room2} {
		course := model.Course{Code: "C" + string(rune('A'+i)), Credits: 1}
		schedule.Slots["S1CSEA"] = append(schedule.Slots["S1CSEA"],
			slotAt(section, course, room, cfg.Days[0], cfg.TimeSlots[i], "Dr. Rao"))
	}

	warnings := Validate(schedule, cfg)
	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], "uneven daily spread")
	assert.Contains(t, warnings[0], "Monday=4")
	assert.Contains(t, warnings[0], "Friday=0")
}

func TestValidateIdempotent(t *testing.T) {
	cfg := NewDefaultConfiguration()
	section := &model.Section{Name: "S1CSEA", Semester: 1, Branch: "cse", StudentCount: 30}
	course := model.Course{Code: "CS101", Name: "Programming", Credits: 3}
	room := model.Room{Number: "R101", Capacity: 40}

	schedule := model.NewSchedule([]*model.Section{section})
	for i := 0; i < 3; i++ {
		schedule.Slots["S1CSEA"] = append(schedule.Slots["S1CSEA"],
			slotAt(section, course, room, cfg.Days[0], cfg.TimeSlots[i], "Dr. Rao"))
	}

	first := Validate(schedule, cfg)
	second := Validate(schedule, cfg)
	assert.Equal(t, first, second)
	assert.NotEmpty(t, first)
}

func TestValidateEmptySchedule(t *testing.T) {
	cfg := NewDefaultConfiguration()
	schedule := model.NewSchedule(nil)
	assert.Empty(t, Validate(schedule, cfg))
}
