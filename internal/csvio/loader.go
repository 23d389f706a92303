package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gocarina/gocsv"

	"github.com/acadflow/timetable/pkg/model"
)

var validate = validator.New()

func setDelimiter(delim rune) {
	gocsv.SetCSVReader(func(in io.Reader) gocsv.CSVReader {
		r := csv.NewReader(in)
		r.Comma = delim
		return r
	})
}

// LoadCourses reads and validates the subjects CSV. Every row must
// carry a code, name, 1-4 credits, 1-8 semester, branch and at least
// one faculty member.
func LoadCourses(path string, delim rune) ([]*model.CourseRecord, error) {
	setDelimiter(delim)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open courses file: %w", err)
	}
	defer f.Close()

	var records []*model.CourseRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		if len(rec.FacultyList()) == 0 {
			return nil, fmt.Errorf("%s row %d: course %s has no faculty members", path, i+2, rec.CourseCode)
		}
	}
	return records, nil
}

// LoadFaculty reads and validates the faculty CSV.
func LoadFaculty(path string, delim rune) ([]*model.FacultyRecord, error) {
	setDelimiter(delim)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open faculty file: %w", err)
	}
	defer f.Close()

	var records []*model.FacultyRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
	}
	return records, nil
}

// LoadRooms reads the rooms CSV and returns schedulable rooms.
func LoadRooms(path string, delim rune) ([]*model.Room, error) {
	setDelimiter(delim)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open rooms file: %w", err)
	}
	defer f.Close()

	var records []*model.RoomRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	rooms := make([]*model.Room, 0, len(records))
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		rooms = append(rooms, &model.Room{Number: rec.RoomNumber, Capacity: rec.Capacity})
	}
	return rooms, nil
}

// LoadStudentCounts reads the per-branch per-year student counts CSV
// into the lookup the section builder consumes.
func LoadStudentCounts(path string, delim rune) (map[string]map[int]int, error) {
	setDelimiter(delim)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open student counts file: %w", err)
	}
	defer f.Close()

	var records []*model.StudentCountRecord
	if err := gocsv.UnmarshalFile(f, &records); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	counts := make(map[string]map[int]int)
	for i, rec := range records {
		if err := validate.Struct(rec); err != nil {
			return nil, fmt.Errorf("%s row %d: %w", path, i+2, err)
		}
		branch := strings.ToLower(rec.Branch)
		if counts[branch] == nil {
			counts[branch] = make(map[int]int)
		}
		counts[branch][rec.Year] = rec.Count
	}
	return counts, nil
}
