package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/gdamore/tcell/v2"
	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/terminal"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fireworks-term: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	settings, found, err := config.LoadFromEnv()
	if err != nil {
		return err
	}

	// The screen owns stdout, so logs go to a file or nowhere.
	out, closeLog, err := settings.OpenLog(io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	logger, err := settings.NewLogger(out)
	if err != nil {
		return err
	}
	if !found {
		logger.Warn("settings file not found, using defaults", "path", config.Path())
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	runner, err := terminal.NewRunner(screen, settings, logger)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := runner.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
