package fireworks

import "image/color"

const (
	// Friction scales both velocity components every step (air resistance).
	Friction = 0.99
	// Gravity is added to the vertical velocity every step.
	Gravity = 0.1
	// FadeRate is subtracted from a particle's alpha every step.
	FadeRate = 0.01
)

// Vec is a 2D vector in surface pixels.
type Vec struct {
	X, Y float64
}

// Particle is a filled circle that drifts, falls and fades.
type Particle struct {
	Pos      Vec
	Color    color.Color
	Radius   float64
	Velocity Vec // pixels per frame
	Alpha    float64
}

// NewParticle creates a fully opaque particle.
func NewParticle(pos Vec, c color.Color, radius float64, velocity Vec) *Particle {
	return &Particle{
		Pos:      pos,
		Color:    c,
		Radius:   radius,
		Velocity: velocity,
		Alpha:    1,
	}
}

// Render draws the particle at its current position and alpha.
func (p *Particle) Render(c Canvas) {
	c.FillCircle(p.Pos.X, p.Pos.Y, p.Radius, p.Color, p.Alpha)
}

// Step renders the particle, then advances it by one frame.
func (p *Particle) Step(c Canvas) {
	p.Render(c)

	p.Velocity.X *= Friction
	p.Velocity.Y *= Friction
	p.Velocity.Y += Gravity

	p.Pos.X += p.Velocity.X
	p.Pos.Y += p.Velocity.Y

	p.Alpha -= FadeRate
}

// Spent reports whether the particle has faded out.
func (p *Particle) Spent() bool {
	return p.Alpha <= 0
}
