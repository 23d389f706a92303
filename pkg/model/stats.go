package model

// RoomStats aggregates sessions held in one room over the week.
type RoomStats struct {
	Sessions    int     `json:"sessions"`
	Utilization float64 `json:"utilization"`
}

// FacultyStats aggregates the teaching load of one faculty member.
type FacultyStats struct {
	Sessions    int     `json:"sessions"`
	Utilization float64 `json:"utilization"`
}

// SlotStats aggregates how often a time slot is used across the run.
type SlotStats struct {
	Sessions int     `json:"sessions"`
	Share    float64 `json:"share"`
}

// SectionStats aggregates the weekly shape of one section's timetable.
type SectionStats struct {
	Sessions    int            `json:"sessions"`
	UniqueRooms int            `json:"uniqueRooms"`
	Morning     int            `json:"morning"`
	Afternoon   int            `json:"afternoon"`
	PerDay      map[string]int `json:"perDay"`
}

// Statistics is the observability summary of a finished schedule.
type Statistics struct {
	TotalSessions         int                     `json:"totalSessions"`
	Rooms                 map[string]RoomStats    `json:"rooms"`
	Faculty               map[string]FacultyStats `json:"faculty"`
	TimeSlots             map[string]SlotStats    `json:"timeSlots"`
	Sections              map[string]SectionStats `json:"sections"`
	AvgSessionsPerSection float64                 `json:"avgSessionsPerSection"`
}
