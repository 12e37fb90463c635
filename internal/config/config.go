package config

import "time"

const (
	WindowWidth  = 1024
	WindowHeight = 512
	WindowTitle  = "Fireworks - click to launch, Esc/Q: Quit"

	// Terminal backend
	FrameInterval = 16 * time.Millisecond // ~60 FPS
	TermScale     = 8                     // surface pixels per terminal column

	// Settings file and environment
	DefaultConfigPath = "fireworks.yaml"
	EnvPrefix         = "FIREWORKS_"
)
