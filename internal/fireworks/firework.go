package fireworks

import (
	"fmt"
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

const (
	RocketRadius   = 5
	MinLaunchSpeed = 10
	MaxLaunchSpeed = 15

	BurstCount    = 100
	BurstRadius   = 2
	MinBurstPower = 2
	MaxBurstPower = 7

	Message     = "Happy Birthday Rowena"
	MessageSize = 40
)

// Firework is a rocket that climbs until gravity stops it, then bursts into
// BurstCount particles around its launch point.
type Firework struct {
	origin Vec
	hue    float64
	color  colorful.Color
	rng    Rand

	rocket      *Particle
	exploded    bool
	bursts      []*Particle
	showMessage bool
}

// NewFirework launches a rocket from (x, y) with a random hue and an upward
// speed in [MinLaunchSpeed, MaxLaunchSpeed).
func NewFirework(x, y float64, rng Rand) *Firework {
	hue := rng.Float64() * 360
	clr := colorful.Hsl(hue, 1, 0.5)
	speed := rng.Float64()*(MaxLaunchSpeed-MinLaunchSpeed) + MinLaunchSpeed

	return &Firework{
		origin: Vec{X: x, Y: y},
		hue:    hue,
		color:  clr,
		rng:    rng,
		rocket: NewParticle(Vec{X: x, Y: y}, clr, RocketRadius, Vec{X: 0, Y: -speed}),
	}
}

func (f *Firework) Origin() Vec { return f.origin }
func (f *Firework) Hue() float64 { return f.hue }
func (f *Firework) Color() colorful.Color { return f.color }
func (f *Firework) Exploded() bool { return f.exploded }
func (f *Firework) ShowingMessage() bool { return f.showMessage }
func (f *Firework) Particles() []*Particle { return f.bursts }

// Rocket returns the ascending particle, or nil once the firework has exploded.
func (f *Firework) Rocket() *Particle { return f.rocket }

// ColorString formats the color the way CSS would write it.
func (f *Firework) ColorString() string {
	return fmt.Sprintf("hsl(%.1f, 100%%, 50%%)", f.hue)
}

// Done reports whether the firework has exploded and every burst particle has faded.
func (f *Firework) Done() bool {
	return f.exploded && len(f.bursts) == 0
}

// Step advances the firework by one frame and draws it.
func (f *Firework) Step(c Canvas) {
	if !f.exploded {
		f.rocket.Step(c)
		// Apex: gravity has cancelled the launch speed.
		if f.rocket.Velocity.Y >= 0 {
			f.exploded = true
			f.explode()
		}
	}

	// Reverse order so removal does not skip entries.
	for i := len(f.bursts) - 1; i >= 0; i-- {
		f.bursts[i].Step(c)
		if f.bursts[i].Spent() {
			f.bursts = append(f.bursts[:i], f.bursts[i+1:]...)
		}
	}

	if f.exploded && f.showMessage {
		f.displayMessage(c)
	}
}

// explode fans BurstCount particles out evenly around the origin. The rocket's
// final position is ignored.
func (f *Firework) explode() {
	f.bursts = make([]*Particle, 0, BurstCount)
	for i := 0; i < BurstCount; i++ {
		angle := 2 * math.Pi / BurstCount * float64(i)
		power := f.rng.Float64()*(MaxBurstPower-MinBurstPower) + MinBurstPower
		velocity := Vec{
			X: math.Cos(angle) * power,
			Y: math.Sin(angle) * power,
		}
		f.bursts = append(f.bursts, NewParticle(f.origin, f.color, BurstRadius, velocity))
	}
	f.rocket = nil

	f.showMessage = true
}

// displayMessage is called on every frame after the explosion, not once.
func (f *Firework) displayMessage(c Canvas) {
	c.FillText(Message, f.origin.X, f.origin.Y, MessageSize, f.color)
}
