package csvio

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/acadflow/timetable/internal/scheduler"
	"github.com/acadflow/timetable/pkg/model"
)

// ExportSchedule flattens a generated schedule into sorted CSV rows and
// writes them to path, replacing any existing file.
func ExportSchedule(schedule *model.Schedule, cfg *scheduler.Configuration, path string) error {
	rows := formatSchedule(schedule, cfg)
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(&rows, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// ExportScheduleString renders the same CSV payload as a string.
func ExportScheduleString(schedule *model.Schedule, cfg *scheduler.Configuration) (string, error) {
	rows := formatSchedule(schedule, cfg)
	str, err := gocsv.MarshalString(&rows)
	if err != nil {
		return "", fmt.Errorf("marshal schedule: %w", err)
	}
	return str, nil
}

// formatSchedule orders rows by section, weekday and time slot. It
// sorts a copy; the per-section slot lists stay in commit order.
func formatSchedule(schedule *model.Schedule, cfg *scheduler.Configuration) []*model.ScheduleCSVRow {
	var rows []*model.ScheduleCSVRow
	for _, section := range schedule.Sections {
		for _, slot := range schedule.SectionSlots(section.Name) {
			rows = append(rows, &model.ScheduleCSVRow{
				Section:    section.Name,
				Day:        slot.Day,
				Time:       slot.Time,
				CourseCode: slot.Course.Code,
				CourseName: slot.Course.Name,
				Faculty:    slot.Faculty,
				Room:       slot.Room.Number,
			})
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if c := strings.Compare(rows[i].Section, rows[j].Section); c != 0 {
			return c < 0
		}
		if d := cfg.DayIndex(rows[i].Day) - cfg.DayIndex(rows[j].Day); d != 0 {
			return d < 0
		}
		return cfg.SlotIndex(rows[i].Time) < cfg.SlotIndex(rows[j].Time)
	})
	return rows
}
