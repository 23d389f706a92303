package model

// FacultyRecord is one row of the faculty CSV. IDs follow the
// <BRANCH>-<sequence> convention.
type FacultyRecord struct {
	FacultyName string `csv:"Faculty Name" validate:"required"`
	FacultyID   string `csv:"Faculty ID" validate:"required"`
	Branch      string `csv:"Branch" validate:"required"`
}
