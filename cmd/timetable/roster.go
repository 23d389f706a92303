package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/acadflow/timetable/internal/config"
	"github.com/acadflow/timetable/internal/csvio"
	"github.com/acadflow/timetable/internal/roster"
	"github.com/acadflow/timetable/pkg/model"
)

func newRosterCmd(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "Maintain the subjects and faculty CSV files",
	}
	cmd.AddCommand(newAddSubjectCmd(cfg), newAddFacultyCmd(cfg))
	return cmd
}

func newAddSubjectCmd(cfg *config.Config) *cobra.Command {
	var (
		file     string
		code     string
		name     string
		branch   string
		semester int
		credits  int
		faculty  string
	)

	cmd := &cobra.Command{
		Use:   "add-subject",
		Short: "Append a new subject to the subjects CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			existing, err := csvio.LoadCourses(file, cfg.DelimiterRune())
			if err != nil {
				return err
			}
			rec := &model.CourseRecord{
				Semester:       semester,
				CourseCode:     code,
				CourseName:     name,
				FacultyMembers: faculty,
				Credits:        credits,
				Branch:         branch,
			}
			if err := roster.AddSubject(file, existing, rec); err != nil {
				return err
			}
			fmt.Printf("Added subject %s (%s)\n", name, code)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "subjects.csv", "subjects CSV path")
	cmd.Flags().StringVar(&code, "code", "", "course code")
	cmd.Flags().StringVar(&name, "name", "", "course name")
	cmd.Flags().StringVar(&branch, "branch", "", "branch")
	cmd.Flags().IntVar(&semester, "semester", 1, "semester (1-8)")
	cmd.Flags().IntVar(&credits, "credits", 4, "credit hours (1-4)")
	cmd.Flags().StringVar(&faculty, "faculty", "", "comma-separated faculty names")
	cmd.MarkFlagRequired("code")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("branch")
	cmd.MarkFlagRequired("faculty")
	return cmd
}

func newAddFacultyCmd(cfg *config.Config) *cobra.Command {
	var (
		file   string
		name   string
		id     string
		branch string
	)

	cmd := &cobra.Command{
		Use:   "add-faculty",
		Short: "Append a new faculty member to the faculty CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			existing, err := csvio.LoadFaculty(file, cfg.DelimiterRune())
			if err != nil {
				return err
			}
			rec := &model.FacultyRecord{FacultyName: name, FacultyID: id, Branch: branch}
			if err := roster.AddFaculty(file, existing, rec); err != nil {
				return err
			}
			fmt.Printf("Added faculty member %s with ID %s\n", rec.FacultyName, rec.FacultyID)
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "faculty.csv", "faculty CSV path")
	cmd.Flags().StringVar(&name, "name", "", "faculty name")
	cmd.Flags().StringVar(&id, "id", "", "faculty id (generated from branch when empty)")
	cmd.Flags().StringVar(&branch, "branch", "", "branch")
	cmd.MarkFlagRequired("name")
	cmd.MarkFlagRequired("branch")
	return cmd
}
