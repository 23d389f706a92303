package scheduler

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/acadflow/timetable/pkg/model"
)

// Configuration errors abort a run before any scheduling work starts.
var (
	ErrNoRooms             = errors.New("no rooms configured")
	ErrMissingStudentCount = errors.New("missing student count")
)

// BuildSections derives the sections of a generation run from course,
// room and student-count data. Cohorts larger than the biggest room are
// split into lettered sections; each course gets one faculty member
// picked at random per section and one assignment per credit-hour.
// Sections that end up with no assignments are skipped and reported in
// the returned issue list.
func BuildSections(courses []*model.CourseRecord, rooms []*model.Room, parity SemesterParity,
	counts map[string]map[int]int, cfg *Configuration, rng *rand.Rand, log *zap.Logger) ([]*model.Section, []string, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if len(rooms) == 0 {
		return nil, nil, ErrNoRooms
	}
	semesters, err := parity.TargetSemesters()
	if err != nil {
		return nil, nil, err
	}

	maxCapacity := rooms[0].Capacity
	minCapacity := rooms[0].Capacity
	for _, r := range rooms[1:] {
		if r.Capacity > maxCapacity {
			maxCapacity = r.Capacity
		}
		if r.Capacity < minCapacity {
			minCapacity = r.Capacity
		}
	}

	var sections []*model.Section
	var issues []string
	for _, branch := range cfg.Branches {
		branch = strings.ToLower(branch)
		for _, semester := range semesters {
			year := (semester + 1) / 2
			count, ok := counts[branch][year]
			if !ok {
				return nil, nil, fmt.Errorf("%w for branch %s year %d", ErrMissingStudentCount, branch, year)
			}

			numSections := 1
			perSection := count
			if count > maxCapacity {
				numSections = int(math.Ceil(float64(count) / float64(minCapacity)))
				perSection = int(math.Ceil(float64(count) / float64(numSections)))
			}

			for i := 0; i < numSections; i++ {
				name := fmt.Sprintf("S%d%s%c", semester, strings.ToUpper(branch), rune('A'+i))
				assignments := buildAssignments(courses, branch, semester, rng)
				if len(assignments) == 0 {
					issues = append(issues, fmt.Sprintf("section %s has no matching courses; skipped", name))
					log.Warn("section skipped: no course assignments",
						zap.String("section", name),
						zap.String("branch", branch),
						zap.Int("semester", semester))
					continue
				}
				sections = append(sections, &model.Section{
					Name:         name,
					Semester:     semester,
					Branch:       branch,
					StudentCount: perSection,
					Assignments:  assignments,
				})
			}
		}
	}
	return sections, issues, nil
}

// buildAssignments expands each matching course into one assignment per
// credit-hour. The faculty member is picked once per course and reused
// for every hour, never mixed mid-course.
func buildAssignments(courses []*model.CourseRecord, branch string, semester int, rng *rand.Rand) []model.CourseAssignment {
	var assignments []model.CourseAssignment
	distinct := 0
	for _, row := range courses {
		if row.Semester != semester || !strings.EqualFold(row.Branch, branch) {
			continue
		}
		course := model.Course{
			Code:     row.CourseCode,
			Name:     row.CourseName,
			Credits:  row.Credits,
			Semester: semester,
			Branch:   branch,
			Color:    model.Palette[distinct%len(model.Palette)],
		}
		distinct++
		names := row.FacultyList()
		if len(names) == 0 {
			continue
		}
		faculty := names[rng.Intn(len(names))]
		for hour := 0; hour < course.Credits; hour++ {
			assignments = append(assignments, model.CourseAssignment{Course: course, Faculty: faculty})
		}
	}
	return assignments
}
