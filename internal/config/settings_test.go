package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestDefaultSettings(t *testing.T) {
	s := DefaultSettings()

	if s.Width != WindowWidth || s.Height != WindowHeight {
		t.Errorf("size: got %dx%d, want %dx%d", s.Width, s.Height, WindowWidth, WindowHeight)
	}
	if s.Title != WindowTitle {
		t.Errorf("Title: got %q, want %q", s.Title, WindowTitle)
	}
	if s.TermScale != TermScale {
		t.Errorf("TermScale: got %d, want %d", s.TermScale, TermScale)
	}
	if s.Seed != 0 || s.Fullscreen || s.ShowStats {
		t.Errorf("unexpected non-zero defaults: %+v", s)
	}
	if err := s.Validate(); err != nil {
		t.Errorf("defaults do not validate: %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	s, found, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if found {
		t.Error("found: got true for a missing file")
	}
	if s.Width != WindowWidth {
		t.Errorf("Width: got %d, want default %d", s.Width, WindowWidth)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fireworks.yaml")
	data := "width: 800\nheight: 600\nseed: 99\nlogLevel: debug\nshowStats: true\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	s, found, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if !found {
		t.Error("found: got false")
	}
	if s.Width != 800 || s.Height != 600 {
		t.Errorf("size: got %dx%d, want 800x600", s.Width, s.Height)
	}
	if s.Seed != 99 {
		t.Errorf("Seed: got %d, want 99", s.Seed)
	}
	if s.LogLevel != "debug" || !s.ShowStats {
		t.Errorf("got %+v", s)
	}
	// fields absent from the file keep their defaults
	if s.Title != WindowTitle || s.TermScale != TermScale {
		t.Errorf("defaults lost: Title=%q TermScale=%d", s.Title, s.TermScale)
	}
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("width: [1, 2"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, _, err := Load(path); err == nil {
		t.Fatal("Load() succeeded on malformed YAML")
	}
}

func TestApplyEnv(t *testing.T) {
	t.Setenv("FIREWORKS_WIDTH", "320")
	t.Setenv("FIREWORKS_HEIGHT", " 240 ")
	t.Setenv("FIREWORKS_SEED", "12345")
	t.Setenv("FIREWORKS_FULLSCREEN", "true")
	t.Setenv("FIREWORKS_STATS", "1")
	t.Setenv("FIREWORKS_TERM_SCALE", "4")
	t.Setenv("FIREWORKS_LOG_LEVEL", "warn")
	t.Setenv("FIREWORKS_LOG_FILE", "/tmp/fw.log")

	s := DefaultSettings()
	if err := s.ApplyEnv(); err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}

	if s.Width != 320 || s.Height != 240 {
		t.Errorf("size: got %dx%d, want 320x240", s.Width, s.Height)
	}
	if s.Seed != 12345 {
		t.Errorf("Seed: got %d, want 12345", s.Seed)
	}
	if !s.Fullscreen || !s.ShowStats {
		t.Errorf("Fullscreen=%v ShowStats=%v, want both true", s.Fullscreen, s.ShowStats)
	}
	if s.TermScale != 4 {
		t.Errorf("TermScale: got %d, want 4", s.TermScale)
	}
	if s.LogLevel != "warn" || s.LogFile != "/tmp/fw.log" {
		t.Errorf("log settings: got %q %q", s.LogLevel, s.LogFile)
	}
}

func TestApplyEnvBadValues(t *testing.T) {
	t.Setenv("FIREWORKS_WIDTH", "wide")
	t.Setenv("FIREWORKS_SEED", "-1")

	s := DefaultSettings()
	err := s.ApplyEnv()
	if err == nil {
		t.Fatal("ApplyEnv() accepted bad values")
	}
	for _, want := range []string{"FIREWORKS_WIDTH", "FIREWORKS_SEED"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
	if s.Width != WindowWidth {
		t.Errorf("Width changed to %d on a bad value", s.Width)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{name: "zero width", modify: func(s *Settings) { s.Width = 0 }},
		{name: "negative height", modify: func(s *Settings) { s.Height = -5 }},
		{name: "zero scale", modify: func(s *Settings) { s.TermScale = 0 }},
		{name: "unknown level", modify: func(s *Settings) { s.LogLevel = "chatty" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			tt.modify(s)
			err := s.Validate()
			if !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("Validate(): got %v, want ErrInvalidSettings", err)
			}
		})
	}
}

func TestLoadFromEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fw.yaml")
	if err := os.WriteFile(path, []byte("width: 640\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("FIREWORKS_CONFIG", path)
	t.Setenv("FIREWORKS_HEIGHT", "480")

	s, found, err := LoadFromEnv()
	if err != nil {
		t.Fatalf("LoadFromEnv() error: %v", err)
	}
	if !found || s.Width != 640 || s.Height != 480 {
		t.Errorf("got found=%v size=%dx%d, want true 640x480", found, s.Width, s.Height)
	}

	t.Setenv("FIREWORKS_HEIGHT", "0")
	if _, _, err := LoadFromEnv(); !errors.Is(err, ErrInvalidSettings) {
		t.Errorf("LoadFromEnv() with zero height: got %v, want ErrInvalidSettings", err)
	}
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	s := DefaultSettings()
	s.LogLevel = "debug"

	logger, err := s.NewLogger(&buf)
	if err != nil {
		t.Fatalf("NewLogger() error: %v", err)
	}
	if logger.GetLevel() != log.DebugLevel {
		t.Errorf("level: got %v, want debug", logger.GetLevel())
	}
	logger.Debug("hello", "k", 1)
	if !strings.Contains(buf.String(), "hello") {
		t.Errorf("debug line not written: %q", buf.String())
	}

	s.LogLevel = "loud"
	if _, err := s.NewLogger(&buf); err == nil {
		t.Error("NewLogger() accepted an unknown level")
	}
}

func TestOpenLog(t *testing.T) {
	var fallback bytes.Buffer
	s := DefaultSettings()

	w, closeLog, err := s.OpenLog(&fallback)
	if err != nil {
		t.Fatalf("OpenLog() error: %v", err)
	}
	if w != &fallback {
		t.Error("OpenLog() without LogFile should return the fallback")
	}
	if err := closeLog(); err != nil {
		t.Errorf("close: %v", err)
	}

	s.LogFile = filepath.Join(t.TempDir(), "fw.log")
	w, closeLog, err = s.OpenLog(&fallback)
	if err != nil {
		t.Fatalf("OpenLog(file) error: %v", err)
	}
	if _, err := w.Write([]byte("line\n")); err != nil {
		t.Fatal(err)
	}
	if err := closeLog(); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(s.LogFile)
	if err != nil || string(data) != "line\n" {
		t.Errorf("log file: got %q, %v", data, err)
	}
}
