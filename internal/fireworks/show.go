package fireworks

import (
	"image/color"
	"io"

	"github.com/charmbracelet/log"
)

// TrailAlpha is the opacity of the black overlay painted each frame instead of
// clearing, which leaves fading trails behind moving particles.
const TrailAlpha = 0.1

// Show owns the live fireworks and advances them one frame at a time.
// It is not safe for concurrent use; spawners and frames must interleave on one goroutine.
type Show struct {
	width, height float64
	rng           Rand
	logger        *log.Logger

	fireworks []*Firework

	frames   uint64
	launched uint64
	retired  uint64
}

// Option configures a Show.
type Option func(*Show)

// WithLogger sets the logger used for launch, explosion and retirement events.
func WithLogger(l *log.Logger) Option {
	return func(s *Show) {
		if l != nil {
			s.logger = l
		}
	}
}

// NewShow creates an empty show for a surface of the given size.
func NewShow(width, height float64, rng Rand, opts ...Option) *Show {
	s := &Show{
		width:  width,
		height: height,
		rng:    rng,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Size returns the surface size the show spawns into.
func (s *Show) Size() (width, height float64) {
	return s.width, s.height
}

// Launch creates a firework at (x, y) and adds it to the show.
func (s *Show) Launch(x, y float64) *Firework {
	f := NewFirework(x, y, s.rng)
	s.fireworks = append(s.fireworks, f)
	s.launched++
	s.logger.Debug("firework launched", "x", x, "y", y, "color", f.ColorString(), "speed", -f.rocket.Velocity.Y)
	return f
}

// Fireworks returns the live fireworks in launch order.
func (s *Show) Fireworks() []*Firework {
	return s.fireworks
}

// Len returns the number of live fireworks.
func (s *Show) Len() int {
	return len(s.fireworks)
}

// Frame paints the trail overlay, steps every firework and drops the ones
// that are done.
func (s *Show) Frame(c Canvas) {
	w, h := c.Bounds()
	c.FillRect(0, 0, w, h, color.Black, TrailAlpha)

	for i := len(s.fireworks) - 1; i >= 0; i-- {
		f := s.fireworks[i]
		exploded := f.Exploded()
		f.Step(c)
		if !exploded && f.Exploded() {
			s.logger.Debug("firework exploded", "x", f.origin.X, "y", f.origin.Y, "particles", len(f.bursts))
		}
		if f.Done() {
			s.fireworks = append(s.fireworks[:i], s.fireworks[i+1:]...)
			s.retired++
			s.logger.Debug("firework retired", "x", f.origin.X, "y", f.origin.Y)
		}
	}

	s.frames++
}

// Stats is a snapshot of the show's counters.
type Stats struct {
	Live      int
	Particles int
	Frames    uint64
	Launched  uint64
	Retired   uint64
}

// Stats counts live fireworks and particles. A firework still climbing counts
// its rocket as one particle.
func (s *Show) Stats() Stats {
	st := Stats{
		Live:     len(s.fireworks),
		Frames:   s.frames,
		Launched: s.launched,
		Retired:  s.retired,
	}
	for _, f := range s.fireworks {
		if f.rocket != nil {
			st.Particles++
		}
		st.Particles += len(f.bursts)
	}
	return st
}
