package main

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/log"
)

// setupLogging configures slog with charmbracelet/log for colorful output.
func setupLogging(levelStr string) {
	var level log.Level
	switch levelStr {
	case "debug":
		level = log.DebugLevel
	case "warn":
		level = log.WarnLevel
	case "error":
		level = log.ErrorLevel
	default:
		level = log.InfoLevel
	}

	logger := log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		ReportTimestamp: false,
	})

	slog.SetDefault(slog.New(logger))
}
