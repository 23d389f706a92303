package model

// Section is one scheduled cohort of students within a branch and
// semester, sized to fit available rooms. Assignments is read-only
// input to the scheduler; it is never mutated after the build step.
type Section struct {
	Name         string             `json:"name"`
	Semester     int                `json:"semester"`
	Branch       string             `json:"branch"`
	StudentCount int                `json:"studentCount"`
	Assignments  []CourseAssignment `json:"assignments"`
}
