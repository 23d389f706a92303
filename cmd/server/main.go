package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/acadflow/timetable/internal/config"
	"github.com/acadflow/timetable/internal/logger"
	"github.com/acadflow/timetable/internal/scheduler"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	log, err := logger.New(cfg)
	if err != nil {
		return fmt.Errorf("building logger: %w", err)
	}
	defer log.Sync()

	if err := os.MkdirAll(cfg.Data.Dir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	schedCfg := scheduler.NewDefaultConfiguration()
	if len(cfg.Data.Branches) > 0 {
		schedCfg.Branches = cfg.Data.Branches
	}

	srv := newServer(cfg, schedCfg, log)

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(logger.GinMiddleware(log), gin.Recovery())
	r.Use(corsMiddleware())

	r.POST("/schedule", srv.handleCreateSchedule)
	r.GET("/schedule", srv.handleListSchedules)
	r.GET("/schedule/:id", srv.handleGetSchedule)
	r.GET("/schedule/:id/stats", srv.handleGetStats)
	r.GET("/schedule/:id/sections/:name/pdf", srv.handleSectionPDF)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Info("listening", zap.String("addr", addr))
	return r.Run(addr)
}

func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}
		c.Next()
	}
}
