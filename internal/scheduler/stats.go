package scheduler

import "github.com/acadflow/timetable/pkg/model"

// CollectStatistics aggregates utilization counts over a finished
// schedule. Read-only: it never touches scheduling state. Every
// supplied room appears in the result even with zero sessions.
func CollectStatistics(schedule *model.Schedule, cfg *Configuration, rooms []*model.Room) *model.Statistics {
	gridSize := len(cfg.Days) * len(cfg.TimeSlots)
	stats := &model.Statistics{
		Rooms:     make(map[string]model.RoomStats, len(rooms)),
		Faculty:   make(map[string]model.FacultyStats),
		TimeSlots: make(map[string]model.SlotStats, len(cfg.TimeSlots)),
		Sections:  make(map[string]model.SectionStats, len(schedule.Sections)),
	}
	for _, room := range rooms {
		stats.Rooms[room.Number] = model.RoomStats{}
	}
	for _, slot := range cfg.TimeSlots {
		stats.TimeSlots[slot] = model.SlotStats{}
	}

	roomSessions := make(map[string]int, len(rooms))
	facultySessions := make(map[string]int)
	slotSessions := make(map[string]int, len(cfg.TimeSlots))

	for _, section := range schedule.Sections {
		slots := schedule.SectionSlots(section.Name)
		sectionRooms := make(map[string]struct{})
		perDay := make(map[string]int, len(cfg.Days))
		for _, day := range cfg.Days {
			perDay[day] = 0
		}
		morning, afternoon := 0, 0
		for _, s := range slots {
			stats.TotalSessions++
			roomSessions[s.Room.Number]++
			facultySessions[s.Faculty]++
			slotSessions[s.Time]++
			sectionRooms[s.Room.Number] = struct{}{}
			perDay[s.Day]++
			if cfg.IsMorning(s.Time) {
				morning++
			} else {
				afternoon++
			}
		}
		stats.Sections[section.Name] = model.SectionStats{
			Sessions:    len(slots),
			UniqueRooms: len(sectionRooms),
			Morning:     morning,
			Afternoon:   afternoon,
			PerDay:      perDay,
		}
	}

	for number, sessions := range roomSessions {
		stats.Rooms[number] = model.RoomStats{
			Sessions:    sessions,
			Utilization: float64(sessions) / float64(gridSize),
		}
	}
	for name, sessions := range facultySessions {
		stats.Faculty[name] = model.FacultyStats{
			Sessions:    sessions,
			Utilization: float64(sessions) / float64(gridSize),
		}
	}
	for slot, sessions := range slotSessions {
		share := 0.0
		if stats.TotalSessions > 0 {
			share = float64(sessions) / float64(stats.TotalSessions)
		}
		stats.TimeSlots[slot] = model.SlotStats{Sessions: sessions, Share: share}
	}
	if len(schedule.Sections) > 0 {
		stats.AvgSessionsPerSection = float64(stats.TotalSessions) / float64(len(schedule.Sections))
	}
	return stats
}
