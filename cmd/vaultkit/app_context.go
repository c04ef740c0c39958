package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/vaultkit/internal/config"
	"github.com/alexisbeaulieu97/vaultkit/internal/logger"
	uitheme "github.com/alexisbeaulieu97/vaultkit/internal/ui/theme"
)

// AppContext bundles long-lived services created before a command runs.
type AppContext struct {
	Config *config.Config
	Log    *logger.Logger
	// Mode is set from the config and the --mode flag.
	Mode uitheme.Mode

	logFile *os.File
}

func (a *AppContext) load(cmd *cobra.Command, flags *rootFlags) error {
	if flags.configPath != "" {
		if err := validateConfigPath(flags.configPath); err != nil {
			return err
		}
	}
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.mode != "" {
		cfg.Appearance.Mode = flags.mode
	}
	mode, err := uitheme.ParseMode(cfg.Appearance.Mode)
	if err != nil {
		return fmt.Errorf("--mode: %w", err)
	}

	opts := cfg.LoggerOptions()
	if flags.verbose {
		opts.Level = "debug"
	}
	opts.Writer = cmd.ErrOrStderr()
	if cfg.Logging.File != "" {
		file, err := os.OpenFile(cfg.Logging.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
		if err != nil {
			return fmt.Errorf("open log file: %w", err)
		}
		a.logFile = file
		opts.Writer = file
	}
	log, err := logger.New(opts)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	a.Config = cfg
	a.Log = log
	a.Mode = mode
	return nil
}

// screenLog returns the logger used while a screen owns the terminal.
// Without a log file the output is dropped so it cannot tear the screen.
func (a *AppContext) screenLog() *logger.Logger {
	if a.logFile != nil {
		return a.Log
	}
	return logger.Nop()
}

// Close releases the log file, if any.
func (a *AppContext) Close() {
	if a.logFile != nil {
		_ = a.logFile.Close()
		a.logFile = nil
	}
}
