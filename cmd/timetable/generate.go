package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/acadflow/timetable/internal/config"
	"github.com/acadflow/timetable/internal/csvio"
	"github.com/acadflow/timetable/internal/report"
	"github.com/acadflow/timetable/internal/roster"
	"github.com/acadflow/timetable/internal/scheduler"
)

func newGenerateCmd(cfg *config.Config, log *zap.Logger) *cobra.Command {
	var (
		subjectsFile string
		facultyFile  string
		roomsFile    string
		countsFile   string
		semester     string
		seed         int64
		exportFile   string
		pdfDir       string
		printGrids   bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a weekly timetable from the input CSVs",
		RunE: func(cmd *cobra.Command, args []string) error {
			delim := cfg.DelimiterRune()

			courses, err := csvio.LoadCourses(subjectsFile, delim)
			if err != nil {
				return err
			}
			var rosterIssues []string
			if facultyFile != "" {
				faculty, err := csvio.LoadFaculty(facultyFile, delim)
				if err != nil {
					return err
				}
				rosterIssues = roster.UnknownFaculty(courses, faculty)
			}
			rooms, err := csvio.LoadRooms(roomsFile, delim)
			if err != nil {
				return err
			}
			counts, err := csvio.LoadStudentCounts(countsFile, delim)
			if err != nil {
				return err
			}

			rng := rand.New(rand.NewSource(time.Now().UnixNano()))
			if seed != 0 {
				rng = rand.New(rand.NewSource(seed))
			}

			schedCfg := scheduler.NewDefaultConfiguration()
			if len(cfg.Data.Branches) > 0 {
				schedCfg.Branches = cfg.Data.Branches
			}

			start := time.Now()
			sections, issues, err := scheduler.BuildSections(courses, rooms,
				scheduler.SemesterParity(semester), counts, schedCfg, rng, log)
			if err != nil {
				return err
			}
			issues = append(issues, rosterIssues...)
			gen, err := scheduler.NewGenerator(schedCfg, rooms, rng, log)
			if err != nil {
				return err
			}
			schedule := gen.Schedule(sections)
			schedule.Warnings = scheduler.Validate(schedule, schedCfg)
			elapsed := time.Since(start)

			if err := csvio.ExportSchedule(schedule, schedCfg, exportFile); err != nil {
				return err
			}

			for _, issue := range issues {
				fmt.Println("Issue: " + issue)
			}
			for _, warning := range schedule.Warnings {
				fmt.Println("Warning: " + warning)
			}
			for _, deficit := range schedule.Deficits {
				fmt.Printf("Deficit: section %s course %s short %d hour(s)\n",
					deficit.Section, deficit.CourseCode, deficit.Hours)
			}

			if printGrids {
				for _, section := range sections {
					fmt.Println()
					if err := report.WriteSectionGrid(os.Stdout, schedule, section.Name, schedCfg); err != nil {
						return err
					}
				}
			}
			if pdfDir != "" {
				if err := os.MkdirAll(pdfDir, 0o755); err != nil {
					return err
				}
				for _, section := range sections {
					pdf, err := report.SectionPDF(schedule, section.Name, schedCfg)
					if err != nil {
						return err
					}
					path := filepath.Join(pdfDir, section.Name+"_timetable.pdf")
					if err := os.WriteFile(path, pdf, 0o644); err != nil {
						return err
					}
					fmt.Println("Saved " + path)
				}
			}

			stats := scheduler.CollectStatistics(schedule, schedCfg, rooms)
			fmt.Printf("\nSections: %d\n", len(sections))
			fmt.Printf("Sessions: %d (avg %.1f per section)\n", stats.TotalSessions, stats.AvgSessionsPerSection)
			fmt.Printf("Deficits: %d\n", len(schedule.Deficits))
			fmt.Printf("Timer: %s\n", elapsed)
			fmt.Println("Exported output to: " + exportFile)
			return nil
		},
	}

	cmd.Flags().StringVar(&subjectsFile, "subjects", "subjects.csv", "subjects CSV path")
	cmd.Flags().StringVar(&facultyFile, "faculty", "", "faculty CSV path (optional, validated when given)")
	cmd.Flags().StringVar(&roomsFile, "rooms", "rooms.csv", "rooms CSV path")
	cmd.Flags().StringVar(&countsFile, "counts", "student_counts.csv", "student counts CSV path")
	cmd.Flags().StringVar(&semester, "semester", "odd", "semester parity: even or odd")
	cmd.Flags().Int64Var(&seed, "seed", 0, "random seed (0 uses a fresh seed)")
	cmd.Flags().StringVar(&exportFile, "out", "schedule.csv", "schedule CSV output path")
	cmd.Flags().StringVar(&pdfDir, "pdf-dir", "", "write one PDF per section into this directory")
	cmd.Flags().BoolVar(&printGrids, "print", false, "print each section's weekly grid")
	return cmd
}
