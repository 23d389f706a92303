// Package roster maintains the subjects and faculty CSV files that
// feed the timetable generator: duplicate-checked appends and faculty
// id generation.
package roster

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"github.com/acadflow/timetable/pkg/model"
)

var (
	ErrDuplicateSubject   = errors.New("subject code or name already exists")
	ErrDuplicateFaculty   = errors.New("faculty name or id already exists")
	ErrNoFacultyForCourse = errors.New("subject needs at least one faculty member")
)

// SubjectExists reports whether a course code or name is already taken,
// case-insensitively.
func SubjectExists(courses []*model.CourseRecord, code, name string) bool {
	for _, c := range courses {
		if strings.EqualFold(c.CourseCode, code) || strings.EqualFold(c.CourseName, name) {
			return true
		}
	}
	return false
}

// FacultyExists reports whether a faculty name is already registered.
func FacultyExists(faculty []*model.FacultyRecord, name string) bool {
	for _, f := range faculty {
		if strings.EqualFold(f.FacultyName, name) {
			return true
		}
	}
	return false
}

// UnknownFaculty cross-checks course rows against the faculty roster
// and reports every referenced name that is not registered. Sorted and
// deduplicated so repeated checks produce identical output.
func UnknownFaculty(courses []*model.CourseRecord, faculty []*model.FacultyRecord) []string {
	known := make(map[string]struct{}, len(faculty))
	for _, f := range faculty {
		known[strings.ToLower(f.FacultyName)] = struct{}{}
	}
	seen := make(map[string]struct{})
	var issues []string
	for _, c := range courses {
		for _, name := range c.FacultyList() {
			key := strings.ToLower(name)
			if _, ok := known[key]; ok {
				continue
			}
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			issues = append(issues, fmt.Sprintf("faculty %q referenced by course %s is not in the roster", name, c.CourseCode))
		}
	}
	sort.Strings(issues)
	return issues
}

// NextFacultyID generates the next <BRANCH>-<sequence> id for a branch,
// starting at 101.
func NextFacultyID(faculty []*model.FacultyRecord, branch string) string {
	prefix := strings.ToUpper(branch) + "-"
	max := 0
	for _, f := range faculty {
		if !strings.HasPrefix(f.FacultyID, prefix) {
			continue
		}
		n, err := strconv.Atoi(strings.TrimPrefix(f.FacultyID, prefix))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	if max == 0 {
		return prefix + "101"
	}
	return prefix + strconv.Itoa(max+1)
}

// AddSubject appends a new course row to the subjects CSV after
// duplicate and faculty checks, rewriting the whole file.
func AddSubject(path string, existing []*model.CourseRecord, rec *model.CourseRecord) error {
	if rec.CourseCode == "" || rec.CourseName == "" {
		return errors.New("subject code and name are required")
	}
	if SubjectExists(existing, rec.CourseCode, rec.CourseName) {
		return fmt.Errorf("%w: %s / %s", ErrDuplicateSubject, rec.CourseCode, rec.CourseName)
	}
	if len(rec.FacultyList()) == 0 {
		return ErrNoFacultyForCourse
	}
	updated := append(append([]*model.CourseRecord{}, existing...), rec)
	return writeCSV(path, &updated)
}

// AddFaculty appends a new faculty row after duplicate checks,
// rewriting the whole file. An empty id is filled with NextFacultyID.
func AddFaculty(path string, existing []*model.FacultyRecord, rec *model.FacultyRecord) error {
	if rec.FacultyName == "" {
		return errors.New("faculty name is required")
	}
	if rec.FacultyID == "" {
		rec.FacultyID = NextFacultyID(existing, rec.Branch)
	}
	if FacultyExists(existing, rec.FacultyName) {
		return fmt.Errorf("%w: %s", ErrDuplicateFaculty, rec.FacultyName)
	}
	for _, f := range existing {
		if strings.EqualFold(f.FacultyID, rec.FacultyID) {
			return fmt.Errorf("%w: %s", ErrDuplicateFaculty, rec.FacultyID)
		}
	}
	updated := append(append([]*model.FacultyRecord{}, existing...), rec)
	return writeCSV(path, &updated)
}

func writeCSV(path string, records interface{}) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer out.Close()
	if err := gocsv.MarshalFile(records, out); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
