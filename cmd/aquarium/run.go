package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/pkg/profile"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-aquarium/internal/config"
	"github.com/vovakirdan/tui-aquarium/internal/core"
	"github.com/vovakirdan/tui-aquarium/internal/platform/tui"
	"github.com/vovakirdan/tui-aquarium/internal/storage"
	"github.com/vovakirdan/tui-aquarium/internal/tank"
)

var (
	flagLogPath    string
	flagProfile    string
	flagProfileDir string
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Watch the aquarium",
	Long: `Start the aquarium in the current terminal.

Controls:
  Click water     - Spawn the selected species
  Click + drag    - Move a creature (a diver moves as a whole)
  Tab             - Cycle the species spawned by a click
  B / mouse move  - Release bubbles
  R               - Repopulate the tank
  P/Space         - Pause
  Ctrl+S          - Save a screenshot
  Q/Ctrl+C        - Quit

Examples:
  aquarium run
  aquarium run --seed 7
  aquarium run --log ./aquarium.log
  aquarium run --profile cpu --profile-dir ./prof`,
	RunE: runAquarium,
}

func init() {
	runCmd.Flags().StringVar(&flagLogPath, "log", "", "Write debug logs to this file")
	runCmd.Flags().StringVar(&flagProfile, "profile", "", "Profile the run: cpu or mem")
	runCmd.Flags().StringVar(&flagProfileDir, "profile-dir", ".", "Directory for profile output")
}

func runAquarium(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, closeLog, err := newFileLogger(flagLogPath)
	if err != nil {
		return err
	}
	defer closeLog()

	switch flagProfile {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(flagProfileDir), profile.Quiet).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(flagProfileDir), profile.Quiet).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q (want cpu or mem)", flagProfile)
	}

	// Get terminal size
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	// Open census storage
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open census database: %v\n", err)
		// Continue without storage - the tank still works
		store = nil
	}

	runErr := tui.Run(tui.Options{
		Config: cfg,
		Runtime: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
			Seed:     flagSeed,
		},
		Store:  store,
		Logger: logger,
		Host:   "local",
	})

	// Close store before returning
	if store != nil {
		store.Close()
	}

	return runErr
}

// loadConfig loads and validates the aquarium configuration.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfigPath)
	if err != nil {
		return cfg, err
	}
	if err := cfg.Validate(tank.SeedableSpecies()); err != nil {
		return cfg, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// newFileLogger returns a debug logger writing to path, or a discarding
// logger when path is empty. The alt screen owns the terminal otherwise.
func newFileLogger(path string) (*log.Logger, func(), error) {
	if path == "" {
		return log.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Level:           log.DebugLevel,
		Prefix:          "aquarium",
	})
	return logger, func() { f.Close() }, nil
}
