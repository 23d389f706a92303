package main

import (
	"errors"
	"fmt"
	"math/rand"
	"mime/multipart"
	"net/http"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/acadflow/timetable/internal/config"
	"github.com/acadflow/timetable/internal/csvio"
	"github.com/acadflow/timetable/internal/report"
	"github.com/acadflow/timetable/internal/roster"
	"github.com/acadflow/timetable/internal/scheduler"
	"github.com/acadflow/timetable/pkg/model"
)

type server struct {
	cfg      *config.Config
	schedCfg *scheduler.Configuration
	log      *zap.Logger
	store    *resultStore
}

type generationResult struct {
	Schedule  *model.Schedule
	Stats     *model.Statistics
	Issues    []string
	CSV       string
	CreatedAt time.Time
}

type resultStore struct {
	mu      sync.RWMutex
	results map[string]*generationResult
}

func newServer(cfg *config.Config, schedCfg *scheduler.Configuration, log *zap.Logger) *server {
	return &server{
		cfg:      cfg,
		schedCfg: schedCfg,
		log:      log,
		store:    &resultStore{results: make(map[string]*generationResult)},
	}
}

func (st *resultStore) save(id string, res *generationResult) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.results[id] = res
}

func (st *resultStore) get(id string) (*generationResult, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	res, ok := st.results[id]
	return res, ok
}

func (st *resultStore) ids() []string {
	st.mu.RLock()
	defer st.mu.RUnlock()
	ids := make([]string, 0, len(st.results))
	for id := range st.results {
		ids = append(ids, id)
	}
	return ids
}

// handleCreateSchedule accepts the four input CSVs as multipart files
// plus a semester parity form field, runs one generation and stores the
// result under a fresh id.
func (s *server) handleCreateSchedule(ctx *gin.Context) {
	form, err := ctx.MultipartForm()
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	subjectsPath, err := s.saveUpload(ctx, form, "subjects")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	facultyPath, err := s.saveUpload(ctx, form, "faculty")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	roomsPath, err := s.saveUpload(ctx, form, "rooms")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	countsPath, err := s.saveUpload(ctx, form, "counts")
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	parity := scheduler.SemesterParity(ctx.PostForm("semester"))
	delim := s.cfg.DelimiterRune()

	courses, err := csvio.LoadCourses(subjectsPath, delim)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	faculty, err := csvio.LoadFaculty(facultyPath, delim)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rooms, err := csvio.LoadRooms(roomsPath, delim)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	counts, err := csvio.LoadStudentCounts(countsPath, delim)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	if seedStr := ctx.PostForm("seed"); seedStr != "" {
		seed, err := strconv.ParseInt(seedStr, 10, 64)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "seed must be an integer"})
			return
		}
		rng = rand.New(rand.NewSource(seed))
	}

	sections, issues, err := scheduler.BuildSections(courses, rooms, parity, counts, s.schedCfg, rng, s.log)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, scheduler.ErrNoRooms) || errors.Is(err, scheduler.ErrMissingStudentCount) ||
			errors.Is(err, scheduler.ErrUnknownParity) {
			status = http.StatusBadRequest
		}
		ctx.JSON(status, gin.H{"error": err.Error()})
		return
	}
	issues = append(issues, roster.UnknownFaculty(courses, faculty)...)

	gen, err := scheduler.NewGenerator(s.schedCfg, rooms, rng, s.log)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	schedule := gen.Schedule(sections)
	schedule.Warnings = scheduler.Validate(schedule, s.schedCfg)
	stats := scheduler.CollectStatistics(schedule, s.schedCfg, rooms)
	csv, err := csvio.ExportScheduleString(schedule, s.schedCfg)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	id := uuid.NewString()
	s.store.save(id, &generationResult{
		Schedule:  schedule,
		Stats:     stats,
		Issues:    issues,
		CSV:       csv,
		CreatedAt: time.Now().UTC(),
	})
	observeRun(stats.TotalSessions, len(schedule.Deficits))
	s.log.Info("schedule generated",
		zap.String("id", id),
		zap.Int("sections", len(sections)),
		zap.Int("sessions", stats.TotalSessions),
		zap.Int("deficits", len(schedule.Deficits)))

	ctx.JSON(http.StatusOK, gin.H{
		"id":            id,
		"totalSessions": stats.TotalSessions,
		"deficits":      schedule.Deficits,
		"warnings":      schedule.Warnings,
		"issues":        issues,
	})
}

func (s *server) handleListSchedules(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{"scheduleIds": s.store.ids()})
}

func (s *server) handleGetSchedule(ctx *gin.Context) {
	res, ok := s.store.get(ctx.Param("id"))
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{
		"data":     res.CSV,
		"deficits": res.Schedule.Deficits,
		"warnings": res.Schedule.Warnings,
		"issues":   res.Issues,
	})
}

func (s *server) handleGetStats(ctx *gin.Context) {
	res, ok := s.store.get(ctx.Param("id"))
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}
	ctx.JSON(http.StatusOK, res.Stats)
}

func (s *server) handleSectionPDF(ctx *gin.Context) {
	res, ok := s.store.get(ctx.Param("id"))
	if !ok {
		ctx.Status(http.StatusNotFound)
		return
	}
	pdf, err := report.SectionPDF(res.Schedule, ctx.Param("name"), s.schedCfg)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}

func (s *server) saveUpload(ctx *gin.Context, form *multipart.Form, field string) (string, error) {
	files := form.File[field]
	if len(files) == 0 {
		return "", fmt.Errorf("missing %s file", field)
	}
	path := filepath.Join(s.cfg.Data.Dir, fmt.Sprintf("%d-%s", time.Now().UnixNano(), files[0].Filename))
	if err := ctx.SaveUploadedFile(files[0], path); err != nil {
		return "", fmt.Errorf("saving %s file: %w", field, err)
	}
	return path, nil
}
