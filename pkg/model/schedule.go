package model

// ScheduledSlot is one placed session: a (day, time, room) triple for
// a course hour of a section. Produced only by the scheduler.
type ScheduledSlot struct {
	Day     string   `json:"day"`
	Time    string   `json:"time"`
	Course  Course   `json:"course"`
	Room    Room     `json:"room"`
	Section *Section `json:"-"`
	Faculty string   `json:"faculty"`
}

// Deficit reports unmet required credit-hours for a (section, course)
// pair after the scheduler exhausted its retry attempts.
type Deficit struct {
	Section    string `json:"section"`
	CourseCode string `json:"courseCode"`
	Hours      int    `json:"hours"`
}

// Schedule is the output of one generation run. Slots are kept per
// section in commit order; deficits and warnings are diagnostics, not
// errors.
type Schedule struct {
	Sections []*Section                  `json:"sections"`
	Slots    map[string][]*ScheduledSlot `json:"slots"`
	Deficits []Deficit                   `json:"deficits"`
	Warnings []string                    `json:"warnings"`
}

// NewSchedule creates an empty schedule for the given sections.
func NewSchedule(sections []*Section) *Schedule {
	s := &Schedule{
		Sections: sections,
		Slots:    make(map[string][]*ScheduledSlot, len(sections)),
	}
	for _, sec := range sections {
		s.Slots[sec.Name] = []*ScheduledSlot{}
	}
	return s
}

// SectionSlots returns the placed sessions of a section in commit order.
func (s *Schedule) SectionSlots(name string) []*ScheduledSlot {
	return s.Slots[name]
}

// TotalSessions counts all placed sessions across sections.
func (s *Schedule) TotalSessions() int {
	total := 0
	for _, slots := range s.Slots {
		total += len(slots)
	}
	return total
}

// ScheduleCSVRow is the flattened export format of one placed session.
type ScheduleCSVRow struct {
	Section    string `csv:"section"`
	Day        string `csv:"day"`
	Time       string `csv:"time"`
	CourseCode string `csv:"course_code"`
	CourseName string `csv:"course_name"`
	Faculty    string `csv:"faculty"`
	Room       string `csv:"room"`
}
