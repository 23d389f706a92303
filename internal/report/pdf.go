package report

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"github.com/acadflow/timetable/internal/scheduler"
	"github.com/acadflow/timetable/pkg/model"
)

// SectionPDF renders one section's weekly grid as a landscape A4 PDF:
// days across, time slots down, each cell carrying course code, faculty
// and room.
func SectionPDF(schedule *model.Schedule, sectionName string, cfg *scheduler.Configuration) ([]byte, error) {
	slots := schedule.SectionSlots(sectionName)
	if slots == nil {
		return nil, fmt.Errorf("no timetable for section %s", sectionName)
	}

	var section *model.Section
	for _, s := range schedule.Sections {
		if s.Name == sectionName {
			section = s
			break
		}
	}

	cells := make(map[string]map[string]*model.ScheduledSlot, len(cfg.Days))
	for _, s := range slots {
		if cells[s.Day] == nil {
			cells[s.Day] = make(map[string]*model.ScheduledSlot)
		}
		cells[s.Day][s.Time] = s
	}

	pdf := gofpdf.New("L", "mm", "A4", "")
	pdf.SetMargins(10, 12, 10)
	pdf.AddPage()

	title := "Timetable for Section " + sectionName
	if section != nil {
		title = fmt.Sprintf("%s (%d students)", title, section.StudentCount)
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(0, 10, title, "", 1, "C", false, 0, "")
	pdf.Ln(3)

	timeColWidth := 32.0
	dayColWidth := (277.0 - timeColWidth) / float64(len(cfg.Days))
	rowHeight := 18.0

	pdf.SetFont("Arial", "B", 10)
	pdf.CellFormat(timeColWidth, 8, "", "1", 0, "C", false, 0, "")
	for _, day := range cfg.Days {
		pdf.CellFormat(dayColWidth, 8, day, "1", 0, "C", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 8)
	for _, slot := range cfg.TimeSlots {
		x, y := pdf.GetXY()
		pdf.CellFormat(timeColWidth, rowHeight, slot, "1", 0, "C", false, 0, "")
		for i, day := range cfg.Days {
			cellX := x + timeColWidth + float64(i)*dayColWidth
			pdf.Rect(cellX, y, dayColWidth, rowHeight, "D")
			if s, ok := cells[day][slot]; ok {
				pdf.SetXY(cellX, y+1.5)
				text := fmt.Sprintf("%s\n%s\nRoom: %s", s.Course.Code, s.Faculty, s.Room.Number)
				pdf.MultiCell(dayColWidth, 5, text, "", "C", false)
			}
		}
		pdf.SetXY(x, y+rowHeight)
	}

	buf := &bytes.Buffer{}
	if err := pdf.Output(buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
