package scheduler

// busyGrid tracks occupied time slots per owner per day.
type busyGrid map[string]map[string]map[string]struct{}

func (g busyGrid) occupied(owner, day, slot string) bool {
	_, ok := g[owner][day][slot]
	return ok
}

func (g busyGrid) mark(owner, day, slot string) {
	days, ok := g[owner]
	if !ok {
		days = make(map[string]map[string]struct{})
		g[owner] = days
	}
	slots, ok := days[day]
	if !ok {
		slots = make(map[string]struct{})
		days[day] = slots
	}
	slots[slot] = struct{}{}
}

// Availability is the single source of truth the scheduler probes and
// mutates: three independent busy sets (faculty, section, room) plus a
// per-section per-day session counter. It holds no placement logic.
type Availability struct {
	cfg      *Configuration
	faculty  busyGrid
	sections busyGrid
	rooms    busyGrid
	daily    map[string]map[string]int
}

func NewAvailability(cfg *Configuration) *Availability {
	return &Availability{
		cfg:      cfg,
		faculty:  make(busyGrid),
		sections: make(busyGrid),
		rooms:    make(busyGrid),
		daily:    make(map[string]map[string]int),
	}
}

// IsFree reports whether the triple can host a session for the given
// faculty and section. Checks run in order: faculty conflict, section
// conflict, room conflict, daily max, morning cap, afternoon cap. The
// first failing rule short-circuits.
func (a *Availability) IsFree(faculty, section, room, day, slot string) bool {
	if a.faculty.occupied(faculty, day, slot) {
		return false
	}
	if a.sections.occupied(section, day, slot) {
		return false
	}
	if a.rooms.occupied(room, day, slot) {
		return false
	}
	if a.DailyCount(section, day) >= a.cfg.MaxDailySessions {
		return false
	}
	if a.cfg.IsMorning(slot) {
		return a.MorningCount(section, day) < a.cfg.MaxMorningSessions
	}
	return a.AfternoonCount(section, day) < a.cfg.MaxAfternoonSessions
}

// Commit marks the triple occupied on all three axes and bumps the
// section's day counter. Callers must have checked IsFree first.
func (a *Availability) Commit(faculty, section, room, day, slot string) {
	a.faculty.mark(faculty, day, slot)
	a.sections.mark(section, day, slot)
	a.rooms.mark(room, day, slot)
	counts, ok := a.daily[section]
	if !ok {
		counts = make(map[string]int, len(a.cfg.Days))
		a.daily[section] = counts
	}
	counts[day]++
}

// DailyCount returns the number of sessions a section already has on a day.
func (a *Availability) DailyCount(section, day string) int {
	return a.daily[section][day]
}

// MorningCount returns a section's placed morning sessions on a day.
func (a *Availability) MorningCount(section, day string) int {
	count := 0
	for slot := range a.sections[section][day] {
		if a.cfg.IsMorning(slot) {
			count++
		}
	}
	return count
}

// AfternoonCount returns a section's placed afternoon sessions on a day.
func (a *Availability) AfternoonCount(section, day string) int {
	return len(a.sections[section][day]) - a.MorningCount(section, day)
}
