// Package logging configures the logrus logger shared by the engine and game
// packages.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Options selects the level, format and destination of log output
type Options struct {
	Level  string // panic, fatal, error, warn, info, debug or trace
	Format string // text or json
	File   string // empty means stderr
}

// DefaultFile returns the log file used when none is configured
func DefaultFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "quoridor.log"
	}
	return filepath.Join(home, ".quoridor.log")
}

// New builds a logger from the options. The returned closer releases the
// log file, if one was opened.
func New(opts Options) (*log.Logger, io.Closer, error) {
	logger := log.New()

	level := opts.Level
	if level == "" {
		level = "info"
	}
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	logger.SetLevel(lvl)

	switch strings.ToLower(opts.Format) {
	case "", "text":
		logger.SetFormatter(&log.TextFormatter{FullTimestamp: true, DisableColors: opts.File != ""})
	case "json":
		logger.SetFormatter(&log.JSONFormatter{})
	default:
		return nil, nil, fmt.Errorf("log format %q: want text or json", opts.Format)
	}

	if opts.File == "" {
		logger.SetOutput(os.Stderr)
		return logger, io.NopCloser(nil), nil
	}

	f, err := os.OpenFile(opts.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger.SetOutput(f)
	return logger, f, nil
}

// Discard returns an entry whose output is thrown away
func Discard() *log.Entry {
	logger := log.New()
	logger.SetOutput(io.Discard)
	return log.NewEntry(logger)
}
