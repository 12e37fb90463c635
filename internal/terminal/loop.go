package terminal

import (
	"context"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"
	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/fireworks"
)

// Runner drives a show on a terminal. Frames, timer ticks and input events
// are handled on the goroutine that calls Run, one at a time.
type Runner struct {
	screen  tcell.Screen
	display *Display
	logger  *log.Logger

	show   *fireworks.Show
	clicks *fireworks.ClickSpawner
	timer  *fireworks.PeriodicSpawner

	prevButtons tcell.ButtonMask
}

// NewRunner builds a show sized to the screen. A zero seed is replaced by the clock.
func NewRunner(screen tcell.Screen, s *config.Settings, logger *log.Logger) (*Runner, error) {
	display, err := NewDisplay(screen, s.TermScale)
	if err != nil {
		return nil, err
	}

	seed := s.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	w, h := display.Canvas().Bounds()
	logger.Info("starting show", "width", w, "height", h, "scale", s.TermScale, "seed", seed)

	show := fireworks.NewShow(w, h, fireworks.NewRand(seed), fireworks.WithLogger(logger))
	return &Runner{
		screen:  screen,
		display: display,
		logger:  logger,
		show:    show,
		clicks:  fireworks.NewClickSpawner(show),
		timer:   fireworks.NewPeriodicSpawner(show, fireworks.SpawnInterval),
	}, nil
}

// Show returns the running show.
func (r *Runner) Show() *fireworks.Show {
	return r.show
}

// Frame advances the show one frame and presents it.
func (r *Runner) Frame() {
	r.show.Frame(r.display.Canvas())
	r.display.Present()
}

// HandleEvent processes one input event. It returns true when the user asked to quit.
func (r *Runner) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return true
		}
		if ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q') {
			return true
		}

	case *tcell.EventMouse:
		buttons := ev.Buttons()
		// Only the transition from released to pressed counts as a click.
		pressed := buttons &^ r.prevButtons
		r.prevButtons = buttons

		col, row := ev.Position()
		x, y := r.display.CellToSurface(col, row)
		for _, b := range []struct {
			mask   tcell.ButtonMask
			button fireworks.Button
		}{
			{tcell.Button1, fireworks.ButtonPrimary},
			{tcell.Button2, fireworks.ButtonSecondary},
			{tcell.Button3, fireworks.ButtonMiddle},
		} {
			if pressed&b.mask != 0 {
				r.clicks.Click(b.button, x, y)
			}
		}

	case *tcell.EventResize:
		// The canvas keeps its startup size.
		r.logger.Debug("terminal resized, keeping canvas size")
	}
	return false
}

// Run loops until ctx is cancelled, the user quits or the screen stops
// delivering events.
func (r *Runner) Run(ctx context.Context) error {
	r.screen.EnableMouse()
	r.screen.HideCursor()
	r.screen.Clear()

	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 100)
	go func() {
		defer close(events)
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	frame := time.NewTicker(config.FrameInterval)
	defer frame.Stop()
	spawn := time.NewTicker(r.timer.Interval())
	defer spawn.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev, ok := <-events:
			if !ok || r.HandleEvent(ev) {
				r.logger.Info("show stopped", "launched", r.show.Stats().Launched)
				return nil
			}

		case <-spawn.C:
			r.timer.Tick()

		case <-frame.C:
			r.Frame()
		}
	}
}
