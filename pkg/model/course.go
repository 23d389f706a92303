package model

import "strings"

// CourseRecord is one row of the subjects CSV.
type CourseRecord struct {
	Semester       int    `csv:"Semester" validate:"required,min=1,max=8"`
	CourseCode     string `csv:"Course Code" validate:"required"`
	CourseName     string `csv:"Course Name" validate:"required"`
	FacultyMembers string `csv:"Faculty Members" validate:"required"`
	Credits        int    `csv:"Credits" validate:"required,min=1,max=4"`
	Branch         string `csv:"Branch" validate:"required"`
}

// FacultyList splits the comma-separated faculty column into trimmed names.
func (r *CourseRecord) FacultyList() []string {
	parts := strings.Split(r.FacultyMembers, ",")
	names := make([]string, 0, len(parts))
	for _, p := range parts {
		if name := strings.TrimSpace(p); name != "" {
			names = append(names, name)
		}
	}
	return names
}

// Course is an immutable course value. Identity is the course code:
// two values with the same code describe the same course.
type Course struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Credits  int    `json:"credits"`
	Semester int    `json:"semester"`
	Branch   string `json:"branch"`
	Color    string `json:"color"`
}

// CourseAssignment binds one credit-hour of a course to one faculty
// member. A course appears once per credit-hour with the same faculty.
type CourseAssignment struct {
	Course  Course `json:"course"`
	Faculty string `json:"faculty"`
}

// Palette holds the display colors cycled over courses. Cosmetic
// pass-through for the presentation layer, never a scheduling input.
var Palette = []string{
	"#FF9999", "#99FF99", "#9999FF", "#FFFF99", "#FF99FF",
	"#99FFFF", "#FFB366", "#99CC99", "#9999CC", "#FFCC99",
	"#FF99CC", "#99FFCC", "#CC99FF", "#FFFF66", "#FF66FF",
}
