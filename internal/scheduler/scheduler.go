package scheduler

import (
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/acadflow/timetable/pkg/model"
)

// Generator places every required course-hour of each section into a
// conflict-free (day, time, room) triple. Sections are scheduled
// sequentially and independently against one shared Availability index;
// a section that cannot be completed within the attempt cap yields
// deficits instead of aborting the run.
type Generator struct {
	cfg   *Configuration
	rooms []*model.Room
	rng   *rand.Rand
	log   *zap.Logger
	avail *Availability
}

// NewGenerator wires a generator for one run. rng may be nil for a
// time-seeded source; pass a fixed seed for reproducible output.
// Returns ErrNoRooms when no rooms are supplied.
func NewGenerator(cfg *Configuration, rooms []*model.Room, rng *rand.Rand, log *zap.Logger) (*Generator, error) {
	if cfg == nil {
		cfg = NewDefaultConfiguration()
	}
	if len(rooms) == 0 {
		return nil, ErrNoRooms
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if log == nil {
		log = zap.NewNop()
	}
	sorted := make([]*model.Room, len(rooms))
	copy(sorted, rooms)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Capacity < sorted[j].Capacity
	})
	return &Generator{
		cfg:   cfg,
		rooms: sorted,
		rng:   rng,
		log:   log,
		avail: NewAvailability(cfg),
	}, nil
}

// sectionState is the per-section scratch the placement loop mutates.
// history keeps the last RoomHistorySize rooms used per course (FIFO,
// oldest evicted) and only drives the room-diversity tie-break.
type sectionState struct {
	remaining map[string]int
	history   map[string][]string
	roomUse   map[string]map[string]int
}

// Schedule runs the placement for all sections and returns the
// resulting schedule with any per-section deficits.
func (g *Generator) Schedule(sections []*model.Section) *model.Schedule {
	schedule := model.NewSchedule(sections)
	for _, section := range sections {
		g.scheduleSection(section, schedule)
	}
	return schedule
}

func (g *Generator) scheduleSection(section *model.Section, schedule *model.Schedule) {
	g.log.Info("scheduling section",
		zap.String("section", section.Name),
		zap.Int("students", section.StudentCount),
		zap.Int("requiredHours", len(section.Assignments)))

	state := &sectionState{
		remaining: make(map[string]int),
		history:   make(map[string][]string),
		roomUse:   make(map[string]map[string]int),
	}
	for _, a := range section.Assignments {
		state.remaining[a.Course.Code]++
	}

	for attempt := 0; attempt < g.cfg.MaxAttempts && !state.done(); attempt++ {
		assignments := make([]model.CourseAssignment, len(section.Assignments))
		copy(assignments, section.Assignments)
		g.rng.Shuffle(len(assignments), func(i, j int) {
			assignments[i], assignments[j] = assignments[j], assignments[i]
		})

		for _, assignment := range assignments {
			if state.remaining[assignment.Course.Code] <= 0 {
				continue
			}
			g.placeAssignment(section, assignment, state, schedule)
		}
	}

	codes := make([]string, 0, len(state.remaining))
	for code, hours := range state.remaining {
		if hours > 0 {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	for _, code := range codes {
		schedule.Deficits = append(schedule.Deficits, model.Deficit{
			Section:    section.Name,
			CourseCode: code,
			Hours:      state.remaining[code],
		})
		g.log.Warn("unscheduled hours remain",
			zap.String("section", section.Name),
			zap.String("course", code),
			zap.Int("hours", state.remaining[code]))
	}
}

// placeAssignment tries one course-hour: lowest-loaded days first, slot
// order steered by the day's current load, rooms filtered by capacity
// and availability. Returns once one slot is committed.
func (g *Generator) placeAssignment(section *model.Section, assignment model.CourseAssignment,
	state *sectionState, schedule *model.Schedule) bool {
	course := assignment.Course
	for _, day := range g.daysByLoad(section.Name) {
		for _, slot := range g.slotOrder(g.avail.DailyCount(section.Name, day)) {
			var candidates []*model.Room
			for _, room := range g.rooms {
				if room.Capacity < section.StudentCount {
					continue
				}
				if g.avail.IsFree(assignment.Faculty, section.Name, room.Number, day, slot) {
					candidates = append(candidates, room)
				}
			}
			if len(candidates) == 0 {
				continue
			}
			room := state.pickRoom(course.Code, candidates)
			g.avail.Commit(assignment.Faculty, section.Name, room.Number, day, slot)
			schedule.Slots[section.Name] = append(schedule.Slots[section.Name], &model.ScheduledSlot{
				Day:     day,
				Time:    slot,
				Course:  course,
				Room:    *room,
				Section: section,
				Faculty: assignment.Faculty,
			})
			state.remaining[course.Code]--
			state.recordRoom(course.Code, room.Number, g.cfg.RoomHistorySize)
			return true
		}
	}
	return false
}

// daysByLoad ranks the week ascending by the section's current daily
// count, ties broken by stable weekday order.
func (g *Generator) daysByLoad(section string) []string {
	days := make([]string, len(g.cfg.Days))
	copy(days, g.cfg.Days)
	sort.SliceStable(days, func(i, j int) bool {
		return g.avail.DailyCount(section, days[i]) < g.avail.DailyCount(section, days[j])
	})
	return days
}

// slotOrder yields the trial order of time slots for a day: morning
// first while the day is lightly loaded, afternoon first once it has
// two sessions, pushing further load toward balance.
func (g *Generator) slotOrder(dayCount int) []string {
	if dayCount < 2 {
		return g.cfg.TimeSlots
	}
	order := make([]string, 0, len(g.cfg.TimeSlots))
	order = append(order, g.cfg.AfternoonSlots()...)
	order = append(order, g.cfg.MorningSlots()...)
	return order
}

// pickRoom prefers the smallest suitable room the course has not used
// recently. When every candidate is in the course's recent history, it
// falls back to the room with the fewest prior sessions of that course,
// ties broken by smallest capacity. Candidates arrive capacity-sorted.
func (s *sectionState) pickRoom(courseCode string, candidates []*model.Room) *model.Room {
	recent := s.history[courseCode]
	for _, room := range candidates {
		used := false
		for _, number := range recent {
			if number == room.Number {
				used = true
				break
			}
		}
		if !used {
			return room
		}
	}
	best := candidates[0]
	for _, room := range candidates[1:] {
		if s.roomUse[courseCode][room.Number] < s.roomUse[courseCode][best.Number] {
			best = room
		}
	}
	return best
}

func (s *sectionState) recordRoom(courseCode, roomNumber string, limit int) {
	use, ok := s.roomUse[courseCode]
	if !ok {
		use = make(map[string]int)
		s.roomUse[courseCode] = use
	}
	use[roomNumber]++

	history := append(s.history[courseCode], roomNumber)
	if len(history) > limit {
		history = history[1:]
	}
	s.history[courseCode] = history
}

func (s *sectionState) done() bool {
	for _, hours := range s.remaining {
		if hours > 0 {
			return false
		}
	}
	return true
}
