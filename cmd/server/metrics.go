package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	generationRuns = promauto.NewCounter(prometheus.CounterOpts{
		Name: "timetable_generation_runs_total",
		Help: "Number of schedule generation runs served.",
	})
	sessionsPlaced = promauto.NewCounter(prometheus.CounterOpts{
		Name: "timetable_sessions_placed_total",
		Help: "Number of class sessions placed across all runs.",
	})
	deficitReports = promauto.NewCounter(prometheus.CounterOpts{
		Name: "timetable_deficits_total",
		Help: "Number of section-course deficits reported across all runs.",
	})
)

func observeRun(sessions, deficits int) {
	generationRuns.Inc()
	sessionsPlaced.Add(float64(sessions))
	deficitReports.Add(float64(deficits))
}
