package game

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/fireworks/internal/config"
	"github.com/iburimskiy/fireworks/internal/fireworks"
)

// Game runs a fireworks show in an ebiten window. Every Update is one frame
// of the simulation; Draw only copies the offscreen canvas to the screen.
type Game struct {
	width, height int
	showStats     bool
	logger        *log.Logger

	show   *fireworks.Show
	clicks *fireworks.ClickSpawner
	timer  *fireworks.PeriodicSpawner
	canvas *Canvas

	// input edge detection
	prevKey map[ebiten.Key]bool
}

// NewGame creates a game sized from s. A zero seed is replaced by the clock.
func NewGame(s *config.Settings, logger *log.Logger) (*Game, error) {
	canvas, err := NewCanvas(s.Width, s.Height)
	if err != nil {
		return nil, err
	}

	seed := s.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	logger.Info("starting show", "width", s.Width, "height", s.Height, "seed", seed)

	show := fireworks.NewShow(float64(s.Width), float64(s.Height), fireworks.NewRand(seed), fireworks.WithLogger(logger))

	return &Game{
		width:     s.Width,
		height:    s.Height,
		showStats: s.ShowStats,
		logger:    logger,
		show:      show,
		clicks:    fireworks.NewClickSpawner(show),
		timer:     fireworks.NewPeriodicSpawner(show, fireworks.SpawnInterval),
		canvas:    canvas,
		prevKey:   map[ebiten.Key]bool{},
	}, nil
}

func (g *Game) Update() error {

	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		g.logger.Info("quit requested", "stats", fmt.Sprintf("%+v", g.show.Stats()))
		return ebiten.Termination
	}

	mouseX, mouseY := ebiten.CursorPosition()
	for _, b := range mouseButtons {
		if inpututil.IsMouseButtonJustPressed(b) {
			g.clicks.Click(toButton(b), float64(mouseX), float64(mouseY))
		}
	}

	g.timer.Advance(time.Second / time.Duration(ebiten.TPS()))

	g.show.Frame(g.canvas)
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.DrawImage(g.canvas.Image(), nil)

	if g.showStats {
		st := g.show.Stats()
		uptime := time.Duration(st.Frames) * time.Second / time.Duration(ebiten.TPS())
		status := fmt.Sprintf("fireworks: %d  particles: %d  launched: %d  %s  TPS: %0.1f",
			st.Live, st.Particles, st.Launched, formatDuration(uptime), ebiten.ActualTPS())
		ebitenutil.DebugPrintAt(screen, status, 12, 12)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}
