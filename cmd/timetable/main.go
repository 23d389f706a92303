package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/acadflow/timetable/internal/config"
	"github.com/acadflow/timetable/internal/logger"
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

	root := &cobra.Command{
		Use:           "timetable",
		Short:         "Institute level weekly timetable generator",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newGenerateCmd(cfg, log))
	root.AddCommand(newRosterCmd(cfg))
	return root.Execute()
}
