package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// ErrInvalidSettings is returned by Validate for out-of-range values.
var ErrInvalidSettings = errors.New("invalid settings")

// Settings holds the runtime options. The simulation constants are not configurable.
type Settings struct {
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	Fullscreen bool   `yaml:"fullscreen"`
	Title      string `yaml:"title"`

	// Seed for the random source; 0 picks one from the clock.
	Seed uint64 `yaml:"seed"`

	LogLevel string `yaml:"logLevel"`
	LogFile  string `yaml:"logFile"`

	// ShowStats draws a counter overlay in the window backend.
	ShowStats bool `yaml:"showStats"`
	// TermScale is the number of surface pixels per terminal column.
	TermScale int `yaml:"termScale"`
}

// DefaultSettings returns the settings used when no file is present.
func DefaultSettings() *Settings {
	return &Settings{
		Width:     WindowWidth,
		Height:    WindowHeight,
		Title:     WindowTitle,
		LogLevel:  "info",
		TermScale: TermScale,
	}
}

// GetEnv returns the value of the environment variable named by the key,
// or fallback if the variable is not set.
func GetEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// Path returns the settings file path from FIREWORKS_CONFIG.
func Path() string {
	return GetEnv(EnvPrefix+"CONFIG", DefaultConfigPath)
}

// Load reads settings from a YAML file on top of the defaults.
// A missing file is not an error; found reports whether the file existed.
func Load(path string) (s *Settings, found bool, err error) {
	s = DefaultSettings()

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read settings %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, s); err != nil {
		return nil, true, fmt.Errorf("parse settings %s: %w", path, err)
	}
	return s, true, nil
}

// ApplyEnv overrides fields from FIREWORKS_* environment variables.
func (s *Settings) ApplyEnv() error {
	var errs []error

	intVar := func(name string, dst *int) {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok {
			return
		}
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
			return
		}
		*dst = n
	}
	boolVar := func(name string, dst *bool) {
		v, ok := os.LookupEnv(EnvPrefix + name)
		if !ok {
			return
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			errs = append(errs, fmt.Errorf("%s%s: %w", EnvPrefix, name, err))
			return
		}
		*dst = b
	}

	intVar("WIDTH", &s.Width)
	intVar("HEIGHT", &s.Height)
	intVar("TERM_SCALE", &s.TermScale)
	boolVar("FULLSCREEN", &s.Fullscreen)
	boolVar("STATS", &s.ShowStats)

	if v, ok := os.LookupEnv(EnvPrefix + "SEED"); ok {
		seed, err := strconv.ParseUint(strings.TrimSpace(v), 10, 64)
		if err != nil {
			errs = append(errs, fmt.Errorf("%sSEED: %w", EnvPrefix, err))
		} else {
			s.Seed = seed
		}
	}
	s.LogLevel = GetEnv(EnvPrefix+"LOG_LEVEL", s.LogLevel)
	s.LogFile = GetEnv(EnvPrefix+"LOG_FILE", s.LogFile)
	s.Title = GetEnv(EnvPrefix+"TITLE", s.Title)

	return errors.Join(errs...)
}

// Validate checks sizes, scale and log level.
func (s *Settings) Validate() error {
	if s.Width <= 0 || s.Height <= 0 {
		return fmt.Errorf("%w: window size %dx%d", ErrInvalidSettings, s.Width, s.Height)
	}
	if s.TermScale <= 0 {
		return fmt.Errorf("%w: termScale %d", ErrInvalidSettings, s.TermScale)
	}
	if _, err := parseLevel(s.LogLevel); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidSettings, err)
	}
	return nil
}

// LoadFromEnv loads the settings file named by FIREWORKS_CONFIG, applies
// environment overrides and validates the result.
func LoadFromEnv() (s *Settings, found bool, err error) {
	s, found, err = Load(Path())
	if err != nil {
		return nil, found, err
	}
	if err := s.ApplyEnv(); err != nil {
		return nil, found, err
	}
	if err := s.Validate(); err != nil {
		return nil, found, err
	}
	return s, found, nil
}
