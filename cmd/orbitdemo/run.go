package main

import (
	"fmt"
	"orbitdemo/internal/config"
	"orbitdemo/internal/game"
	"orbitdemo/internal/logging"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Start the demo",
	Long: `Start the demo window.

Examples:
  orbitdemo run
  orbitdemo run --no-physics`,
	RunE: runDemo,
}

func runDemo(_ *cobra.Command, _ []string) error {
	// Relative --config paths are relative to where the user typed them.
	if flagConfig != "" {
		abs, err := filepath.Abs(flagConfig)
		if err != nil {
			return fmt.Errorf("failed to resolve config path: %w", err)
		}
		flagConfig = abs
	}
	chdirToExecutable()

	cfg, source, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()
	// Every line of this process carries the same run id.
	logger = logger.With(zap.String("run", uuid.NewString()))

	logger.Info("orbitdemo starting",
		zap.String("config", source),
		zap.Bool("physics", cfg.Physics.Enabled),
		zap.String("log_level", cfg.Logging.Level))

	return game.New(cfg, source, logger).Run()
}

// loadConfig loads the config file and applies command line overrides.
func loadConfig() (*config.Config, string, error) {
	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return nil, "", err
	}

	if flagNoPhysics {
		cfg.Physics.Enabled = false
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	if flagLogFormat != "" {
		cfg.Logging.Format = flagLogFormat
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", fmt.Errorf("invalid flags: %w", err)
	}
	return cfg, source, nil
}

// chdirToExecutable makes assets/ and configs/ resolve next to the binary for
// deployed builds. "go run" binaries live in a go-build temp dir and are left
// alone.
func chdirToExecutable() {
	execPath, err := os.Executable()
	if err != nil {
		return
	}
	execDir := filepath.Dir(execPath)
	if !strings.Contains(execDir, "go-build") {
		_ = os.Chdir(execDir)
	}
}
