package config

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

func parseLevel(s string) (log.Level, error) {
	if s == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(s)))
	if err != nil {
		return log.InfoLevel, fmt.Errorf("log level %q: %w", s, err)
	}
	return lvl, nil
}

// NewLogger builds the application logger writing to w.
func (s *Settings) NewLogger(w io.Writer) (*log.Logger, error) {
	lvl, err := parseLevel(s.LogLevel)
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "fireworks",
		ReportTimestamp: true,
	}), nil
}

// OpenLog returns the log destination: LogFile if set, fallback otherwise.
// The returned closer must be called on shutdown.
func (s *Settings) OpenLog(fallback io.Writer) (io.Writer, func() error, error) {
	if s.LogFile == "" {
		return fallback, func() error { return nil }, nil
	}
	f, err := os.OpenFile(s.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return f, f.Close, nil
}
