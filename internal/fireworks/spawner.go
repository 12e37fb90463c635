package fireworks

import "time"

// SpawnInterval is how often the periodic spawner launches a firework.
const SpawnInterval = 500 * time.Millisecond

// Button identifies a pointer button.
type Button int

const (
	ButtonPrimary Button = iota
	ButtonSecondary
	ButtonMiddle
)

// ClickSpawner launches a firework wherever the primary button is pressed.
type ClickSpawner struct {
	show *Show
}

func NewClickSpawner(show *Show) *ClickSpawner {
	return &ClickSpawner{show: show}
}

// Click handles one button activation at surface coordinates (x, y).
// Every primary activation launches a firework; other buttons are ignored.
func (c *ClickSpawner) Click(b Button, x, y float64) (*Firework, bool) {
	if b != ButtonPrimary {
		return nil, false
	}
	return c.show.Launch(x, y), true
}

// PeriodicSpawner launches a firework at a random spot in the top half of the
// surface once per interval.
type PeriodicSpawner struct {
	show     *Show
	interval time.Duration
	elapsed  time.Duration
}

// NewPeriodicSpawner creates a spawner firing every interval. A non-positive
// interval falls back to SpawnInterval.
func NewPeriodicSpawner(show *Show, interval time.Duration) *PeriodicSpawner {
	if interval <= 0 {
		interval = SpawnInterval
	}
	return &PeriodicSpawner{show: show, interval: interval}
}

// Interval returns the spawn interval.
func (p *PeriodicSpawner) Interval() time.Duration {
	return p.interval
}

// Tick launches one firework with x across the full width and y across the top half.
func (p *PeriodicSpawner) Tick() *Firework {
	w, h := p.show.Size()
	x := p.show.rng.Float64() * w
	y := p.show.rng.Float64() * h / 2
	return p.show.Launch(x, y)
}

// Advance adds dt to the elapsed time and ticks once for every full interval
// that has passed. It returns the number of fireworks launched.
func (p *PeriodicSpawner) Advance(dt time.Duration) int {
	p.elapsed += dt
	n := 0
	for p.elapsed >= p.interval {
		p.elapsed -= p.interval
		p.Tick()
		n++
	}
	return n
}
