package scheduler

import (
	"fmt"
	"sort"
	"strings"

	"github.com/acadflow/timetable/pkg/model"
)

// Validate sweeps a finished schedule for soft-constraint violations:
// room monotony (a course with more than two sessions all held in one
// room) and uneven daily spread (more than two sessions between the
// most- and least-loaded day). Warnings are advisory; they never mutate
// the schedule or fail the run. Output order is deterministic, so
// re-validating the same schedule yields an identical warning list.
func Validate(schedule *model.Schedule, cfg *Configuration) []string {
	var warnings []string
	for _, section := range schedule.Sections {
		slots := schedule.SectionSlots(section.Name)

		roomsByCourse := make(map[string]map[string]struct{})
		sessionsByCourse := make(map[string]int)
		perDay := make(map[string]int, len(cfg.Days))
		for _, slot := range slots {
			code := slot.Course.Code
			sessionsByCourse[code]++
			if roomsByCourse[code] == nil {
				roomsByCourse[code] = make(map[string]struct{})
			}
			roomsByCourse[code][slot.Room.Number] = struct{}{}
			perDay[slot.Day]++
		}

		codes := make([]string, 0, len(sessionsByCourse))
		for code := range sessionsByCourse {
			codes = append(codes, code)
		}
		sort.Strings(codes)
		for _, code := range codes {
			if sessionsByCourse[code] > 2 && len(roomsByCourse[code]) == 1 {
				var room string
				for r := range roomsByCourse[code] {
					room = r
				}
				warnings = append(warnings, fmt.Sprintf(
					"section %s: all %d sessions of %s are in room %s",
					section.Name, sessionsByCourse[code], code, room))
			}
		}

		if len(slots) > 0 {
			min, max := perDay[cfg.Days[0]], perDay[cfg.Days[0]]
			counts := make([]string, 0, len(cfg.Days))
			for _, day := range cfg.Days {
				n := perDay[day]
				if n < min {
					min = n
				}
				if n > max {
					max = n
				}
				counts = append(counts, fmt.Sprintf("%s=%d", day, n))
			}
			if max-min > 2 {
				warnings = append(warnings, fmt.Sprintf(
					"section %s: uneven daily spread (%s)",
					section.Name, strings.Join(counts, ", ")))
			}
		}
	}
	return warnings
}
