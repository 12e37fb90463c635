package fireworks

import (
	"image/color"
	"math/rand/v2"
)

// Canvas is the drawing surface a show renders onto.
// Alpha is applied per call; implementations must not carry it over to later draws.
type Canvas interface {
	Bounds() (width, height float64)
	FillRect(x, y, w, h float64, c color.Color, alpha float64)
	FillCircle(x, y, radius float64, c color.Color, alpha float64)
	// FillText draws s centered horizontally on x with y as the baseline.
	FillText(s string, x, y, size float64, c color.Color)
}

// Rand is the source of randomness for hues, launch speeds and burst power.
// *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// NewRand returns a seeded PCG source.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// WithAlpha converts c to non-premultiplied RGBA and replaces its alpha.
// Alpha outside [0,1] is clamped.
func WithAlpha(c color.Color, alpha float64) color.NRGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	switch {
	case alpha <= 0:
		n.A = 0
	case alpha >= 1:
		n.A = 0xff
	default:
		n.A = uint8(alpha*0xff + 0.5)
	}
	return n
}
