package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/game"
	"github.com/ncruces/zenity"
)

func main() {
	settings, found, err := config.LoadFromEnv()
	if err != nil {
		fatal(nil, err)
	}

	out, closeLog, err := settings.OpenLog(os.Stderr)
	if err != nil {
		fatal(nil, err)
	}
	defer closeLog()

	logger, err := settings.NewLogger(out)
	if err != nil {
		fatal(nil, err)
	}
	if !found {
		logger.Warn("settings file not found, using defaults", "path", config.Path())
	}

	// The canvas is sized once at startup; resizing is not handled.
	if settings.Fullscreen {
		settings.Width, settings.Height = ebiten.Monitor().Size()
		ebiten.SetFullscreen(true)
	}
	ebiten.SetWindowSize(settings.Width, settings.Height)
	ebiten.SetWindowTitle(settings.Title)

	g, err := game.NewGame(settings, logger)
	if err != nil {
		fatal(logger, err)
	}
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(logger, err)
	}
}

// fatal reports err on the log and in a dialog, then exits.
func fatal(logger *log.Logger, err error) {
	if logger != nil {
		logger.Error("fireworks stopped", "err", err)
	} else {
		fmt.Fprintf(os.Stderr, "fireworks: %v\n", err)
	}
	_ = zenity.Error(err.Error(), zenity.Title("Fireworks"))
	os.Exit(1)
}
