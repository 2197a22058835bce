// Package tui parses terminal host flags and launches the bubbletea program.
package tui

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	entrypoint "github.com/louisbranch/renderdemo/internal/platform/cmd"
	"github.com/louisbranch/renderdemo/internal/services/tui"
	"go.uber.org/zap"
)

// Config holds the terminal host configuration.
type Config struct {
	LogFile string `env:"RENDERDEMO_TUI_LOG_FILE"`
	Start   string `env:"RENDERDEMO_TUI_START" envDefault:"/"`
	Debug   bool   `env:"RENDERDEMO_TUI_DEBUG"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "File receiving diagnostic logs; discarded when empty")
	fs.StringVar(&cfg.Start, "start", cfg.Start, "Address of the first screen")
	fs.BoolVar(&cfg.Debug, "debug", cfg.Debug, "Log at debug level")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the terminal host.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceTUI, func(ctx context.Context) error {
		logger, err := NewLogger(cfg)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = logger.Sync() }()

		viewLogger, err := ViewLogger(logger)
		if err != nil {
			return fmt.Errorf("init view logger: %w", err)
		}

		logger.Info("terminal host starting", zap.String("start", cfg.Start))
		err = tui.Run(ctx, tui.Options{
			Start:  cfg.Start,
			Logger: viewLogger,
		}, tea.WithAltScreen())
		if err != nil {
			logger.Error("terminal host stopped", zap.Error(err))
			return err
		}
		logger.Info("terminal host stopped")
		return nil
	})
}

// ViewLogger adapts logger for view render traces and navigation lines.
// Entries are written at debug level, so they only reach the file when the
// host runs with -debug.
func ViewLogger(logger *zap.Logger) (*log.Logger, error) {
	return zap.NewStdLogAt(logger.Named("view"), zap.DebugLevel)
}

// NewLogger builds a JSON file logger. The terminal belongs to the UI, so
// without a log file every entry is dropped.
func NewLogger(cfg Config) (*zap.Logger, error) {
	path := strings.TrimSpace(cfg.LogFile)
	if path == "" {
		return zap.NewNop(), nil
	}
	config := zap.NewProductionConfig()
	config.OutputPaths = []string{path}
	config.ErrorOutputPaths = []string{path}
	config.Sampling = nil
	if cfg.Debug {
		config.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := config.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger for %s: %w", path, err)
	}
	return logger, nil
}
