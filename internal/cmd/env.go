package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/gravitrone/objedit/internal/config"
	"github.com/gravitrone/objedit/internal/logging"
)

// env carries what every command needs.
type env struct {
	cfg    *config.Config
	logger *zap.Logger
}

// loadEnv reads the config, falling back to defaults when there is none,
// and opens the log file it names.
func loadEnv() (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			return nil, err
		}
		cfg = config.Default()
	}
	logger, err := logging.New(cfg.LogLevel, cfg.LogPath())
	if err != nil {
		return nil, fmt.Errorf("init logging: %w", err)
	}
	return &env{cfg: cfg, logger: logger.Named(logging.NameCLI)}, nil
}

func (e *env) close() {
	_ = e.logger.Sync()
}

func isInteractiveTerminal(file *os.File) bool {
	if file == nil {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
