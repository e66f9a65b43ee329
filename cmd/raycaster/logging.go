package main

import (
	"fmt"

	"github.com/urfave/cli"

	"raycaster/internal/logger"
	"raycaster/pkg/config"
)

// loadConfig reads the file named by --config, or the defaults when none
// is given, and validates the result
func loadConfig(ctx *cli.Context) (*config.Config, error) {
	cfg := config.DefaultConfig()
	if path := ctx.GlobalString("config"); path != "" {
		var err error
		if cfg, err = config.LoadConfig(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// setupLogging builds the logger. -v and -vv take precedence over the
// configured level.
func setupLogging(ctx *cli.Context, cfg *config.Config) (*logger.Logger, error) {
	level := cfg.Logging.Level
	if ctx.GlobalBool("v") {
		level = "info"
	}
	if ctx.GlobalBool("vv") {
		level = "debug"
	}

	if cfg.Logging.File == "" {
		return logger.NewLogger(level), nil
	}

	log, err := logger.NewMultiLogger(level, cfg.Logging.File)
	if err != nil {
		return nil, fmt.Errorf("failed to open log file: %v", err)
	}
	return log, nil
}

// setup runs the steps shared by every command
func setup(ctx *cli.Context) (*config.Config, *logger.Logger, error) {
	cfg, err := loadConfig(ctx)
	if err != nil {
		return nil, nil, err
	}

	log, err := setupLogging(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	return cfg, log, nil
}
