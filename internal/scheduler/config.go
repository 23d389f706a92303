package scheduler

import (
	"errors"
	"fmt"
)

// ErrUnknownParity rejects run configurations that are neither even nor odd.
var ErrUnknownParity = errors.New("unknown semester parity")

// SemesterParity selects which semesters a generation run targets.
type SemesterParity string

const (
	ParityEven SemesterParity = "even"
	ParityOdd  SemesterParity = "odd"
)

// Configuration holds the fixed scheduling constants of a generation
// run. The algorithm reads everything from here; nothing is hardcoded.
type Configuration struct {
	Days                 []string
	TimeSlots            []string
	MorningSlotCount     int // first N entries of TimeSlots are morning
	MaxDailySessions     int
	MaxMorningSessions   int
	MaxAfternoonSessions int
	MaxAttempts          int
	RoomHistorySize      int
	Branches             []string
}

func NewDefaultConfiguration() *Configuration {
	return &Configuration{
		Days: []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"},
		TimeSlots: []string{
			"08:45-09:45", "09:45-10:45", "10:45-11:45", "11:00-12:00",
			"12:00-13:00", "14:15-15:15", "15:15-16:15", "16:30-17:30",
		},
		MorningSlotCount:     4,
		MaxDailySessions:     4,
		MaxMorningSessions:   3,
		MaxAfternoonSessions: 2,
		MaxAttempts:          100,
		RoomHistorySize:      3,
		Branches:             []string{"cse", "ece", "aids"},
	}
}

// MorningSlots returns the morning partition of the time slots.
func (c *Configuration) MorningSlots() []string {
	return c.TimeSlots[:c.MorningSlotCount]
}

// AfternoonSlots returns the afternoon partition of the time slots.
func (c *Configuration) AfternoonSlots() []string {
	return c.TimeSlots[c.MorningSlotCount:]
}

// IsMorning reports whether a time slot belongs to the morning block.
func (c *Configuration) IsMorning(slot string) bool {
	for _, s := range c.MorningSlots() {
		if s == slot {
			return true
		}
	}
	return false
}

// DayIndex returns the position of a day in the configured week, or -1.
func (c *Configuration) DayIndex(day string) int {
	for i, d := range c.Days {
		if d == day {
			return i
		}
	}
	return -1
}

// SlotIndex returns the position of a time slot, or -1.
func (c *Configuration) SlotIndex(slot string) int {
	for i, s := range c.TimeSlots {
		if s == slot {
			return i
		}
	}
	return -1
}

// TargetSemesters maps a parity to the semesters it schedules.
func (p SemesterParity) TargetSemesters() ([]int, error) {
	switch p {
	case ParityEven:
		return []int{2, 4, 6, 8}, nil
	case ParityOdd:
		return []int{1, 3, 5, 7}, nil
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownParity, string(p))
}
