// Package logging wraps charmbracelet/log, fanning the writer out to a
// daily-rotated file (and, in subcommand mode, additionally to stdout).
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"
)

// Mode selects where log output is written.
type Mode int

const (
	// ModeTUI logs to the rotated file only.
	ModeTUI Mode = iota
	// ModeCommand logs to the rotated file and to stdout (at INFO minimum).
	ModeCommand
)

// Options configures New.
type Options struct {
	// Dir is the configuration directory; logs are written under Dir/log.
	Dir string
	// Level is the configured minimum severity (debug|info|error).
	Level string
	// Mode selects the output fan-out.
	Mode Mode
}

// New builds a *log.Logger writing to <Dir>/log/log-YYYY-MM-DD.log (one
// file per day, the date taken when New is called), and — in ModeCommand —
// also to stdout at INFO
// minimum even when Level is configured stricter than info.
func New(opts Options) (*log.Logger, error) {
	logDir := filepath.Join(opts.Dir, "log")
	if err := os.MkdirAll(logDir, 0o755); err != nil {
		return nil, fmt.Errorf("create log directory %s: %w", logDir, err)
	}

	path := rotatedPath(logDir, time.Now())
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("open log file %s: %w", path, err)
	}

	var w io.Writer = file
	if opts.Mode == ModeCommand {
		w = io.MultiWriter(file, os.Stdout)
	}

	logger := log.NewWithOptions(w, log.Options{
		Prefix:          "cl",
		ReportTimestamp: true,
	})
	logger.SetLevel(parseLevel(opts.Level, opts.Mode))
	return logger, nil
}

// rotatedPath returns today's log file path, e.g. ".../log/log-2026-07-29.log".
func rotatedPath(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("log-%s.log", now.Format("2006-01-02")))
}

func parseLevel(level string, mode Mode) log.Level {
	configured := log.ErrorLevel
	switch level {
	case "debug":
		configured = log.DebugLevel
	case "info":
		configured = log.InfoLevel
	case "error", "":
		configured = log.ErrorLevel
	}
	// Subcommand mode always surfaces at least INFO to stdout, even when
	// the configured level is stricter.
	if mode == ModeCommand && configured > log.InfoLevel {
		return log.InfoLevel
	}
	return configured
}
