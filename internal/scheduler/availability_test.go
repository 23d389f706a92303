package scheduler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAvailabilityConflictAxes(t *testing.T) {
	cfg := NewDefaultConfiguration()
	a := NewAvailability(cfg)

	day := cfg.Days[0]
	slot := cfg.TimeSlots[0]
	a.Commit("Dr. Rao", "S1CSEA", "R101", day, slot)

	assert.False(t, a.IsFree("Dr. Rao", "S1ECEA", "R102", day, slot), "faculty conflict")
	assert.False(t, a.IsFree("Dr. Iyer", "S1CSEA", "R102", day, slot), "section conflict")
	assert.False(t, a.IsFree("Dr. Iyer", "S1ECEA", "R101", day, slot), "room conflict")
	assert.True(t, a.IsFree("Dr. Iyer", "S1ECEA", "R102", day, slot))
	assert.True(t, a.IsFree("Dr. Rao", "S1CSEA", "R101", day, cfg.TimeSlots[1]))
}

func TestAvailabilityMorningCap(t *testing.T) {
	cfg := NewDefaultConfiguration()
	a := NewAvailability(cfg)
	day := cfg.Days[0]

	morning := cfg.MorningSlots()
	require.Len(t, morning, 4)
	for i := 0; i < cfg.MaxMorningSessions; i++ {
		require.True(t, a.IsFree("F", "S1CSEA", "R101", day, morning[i]))
		a.Commit("F", "S1CSEA", "R101", day, morning[i])
	}

	assert.False(t, a.IsFree("F", "S1CSEA", "R101", day, morning[3]), "fourth morning session")
	assert.True(t, a.IsFree("F", "S1CSEA", "R101", day, cfg.AfternoonSlots()[0]))
}

func TestAvailabilityAfternoonCap(t *testing.T) {
	cfg := NewDefaultConfiguration()
	a := NewAvailability(cfg)
	day := cfg.Days[0]

	afternoon := cfg.AfternoonSlots()
	for i := 0; i < cfg.MaxAfternoonSessions; i++ {
		require.True(t, a.IsFree("F", "S1CSEA", "R101", day, afternoon[i]))
		a.Commit("F", "S1CSEA", "R101", day, afternoon[i])
	}

	assert.False(t, a.IsFree("F", "S1CSEA", "R101", day, afternoon[2]), "third afternoon session")
	assert.True(t, a.IsFree("F", "S1CSEA", "R101", day, cfg.MorningSlots()[0]))
}

func TestAvailabilityDailyMax(t *testing.T) {
	cfg := NewDefaultConfiguration()
	a := NewAvailability(cfg)
	day := cfg.Days[0]

	// 3 morning + 1 afternoon reaches the daily cap of 4 before either
	// block cap does.
	for _, slot := range cfg.MorningSlots()[:3] {
		a.Commit("F", "S1CSEA", "R101", day, slot)
	}
	a.Commit("F", "S1CSEA", "R101", day, cfg.AfternoonSlots()[0])

	require.Equal(t, 4, a.DailyCount("S1CSEA", day))
	assert.False(t, a.IsFree("F", "S1CSEA", "R101", day, cfg.AfternoonSlots()[1]),
		"afternoon cap not yet hit, daily max must refuse")
	assert.True(t, a.IsFree("F", "S1CSEA", "R101", cfg.Days[1], cfg.TimeSlots[0]))
}

func TestAvailabilityCounters(t *testing.T) {
	cfg := NewDefaultConfiguration()
	a := NewAvailability(cfg)
	day := cfg.Days[2]

	a.Commit("F", "S3ECEB", "R1", day, cfg.MorningSlots()[1])
	a.Commit("G", "S3ECEB", "R2", day, cfg.AfternoonSlots()[0])

	assert.Equal(t, 2, a.DailyCount("S3ECEB", day))
	assert.Equal(t, 1, a.MorningCount("S3ECEB", day))
	assert.Equal(t, 1, a.AfternoonCount("S3ECEB", day))
	assert.Equal(t, 0, a.DailyCount("S3ECEB", cfg.Days[0]))
}
