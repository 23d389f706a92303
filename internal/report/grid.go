// Package report renders generated timetables for people: a plain-text
// weekly grid for terminals and a PDF export per section.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/acadflow/timetable/internal/scheduler"
	"github.com/acadflow/timetable/pkg/model"
)

// WriteSectionGrid prints a section's weekly timetable as a days-by-
// slots text grid.
func WriteSectionGrid(w io.Writer, schedule *model.Schedule, sectionName string, cfg *scheduler.Configuration) error {
	slots := schedule.SectionSlots(sectionName)
	if slots == nil {
		return fmt.Errorf("no timetable for section %s", sectionName)
	}

	cells := make(map[string]map[string]*model.ScheduledSlot, len(cfg.Days))
	for _, s := range slots {
		if cells[s.Day] == nil {
			cells[s.Day] = make(map[string]*model.ScheduledSlot)
		}
		cells[s.Day][s.Time] = s
	}

	const colWidth = 16
	fmt.Fprintf(w, "Section %s\n", sectionName)
	fmt.Fprintf(w, "%-13s", "")
	for _, day := range cfg.Days {
		fmt.Fprintf(w, "%-*s", colWidth, day)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, strings.Repeat("-", 13+colWidth*len(cfg.Days)))
	for _, slot := range cfg.TimeSlots {
		fmt.Fprintf(w, "%-13s", slot)
		for _, day := range cfg.Days {
			cell := ""
			if s, ok := cells[day][slot]; ok {
				cell = fmt.Sprintf("%s (%s)", s.Course.Code, s.Room.Number)
			}
			fmt.Fprintf(w, "%-*s", colWidth, cell)
		}
		fmt.Fprintln(w)
	}
	return nil
}
