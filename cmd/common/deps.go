// Package common provides shared dependency construction for commands.
package common

import (
	"fmt"

	"github.com/jonesrussell/storesync/internal/config"
	"github.com/jonesrussell/storesync/internal/logger"
)

// CommandDeps holds the dependencies every command needs.
type CommandDeps struct {
	Config config.Interface
	Logger logger.Interface
}

// NewCommandDeps builds configuration and logger for a command.
func NewCommandDeps() (*CommandDeps, error) {
	cfg, err := config.New()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	log, err := logger.New(cfg.GetLoggerConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	return &CommandDeps{
		Config: cfg,
		Logger: log,
	}, nil
}
