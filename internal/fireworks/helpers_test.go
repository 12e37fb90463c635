package fireworks

import (
	"image/color"
	"math"
)

type drawOp struct {
	kind   string // "rect", "circle" or "text"
	x, y   float64
	w, h   float64
	radius float64
	size   float64
	text   string
	color  color.Color
	alpha  float64
}

// recordingCanvas records every draw call.
type recordingCanvas struct {
	width, height float64
	ops           []drawOp
}

func newRecordingCanvas(width, height float64) *recordingCanvas {
	return &recordingCanvas{width: width, height: height}
}

func (r *recordingCanvas) Bounds() (float64, float64) { return r.width, r.height }

func (r *recordingCanvas) FillRect(x, y, w, h float64, c color.Color, alpha float64) {
	r.ops = append(r.ops, drawOp{kind: "rect", x: x, y: y, w: w, h: h, color: c, alpha: alpha})
}

func (r *recordingCanvas) FillCircle(x, y, radius float64, c color.Color, alpha float64) {
	r.ops = append(r.ops, drawOp{kind: "circle", x: x, y: y, radius: radius, color: c, alpha: alpha})
}

func (r *recordingCanvas) FillText(s string, x, y, size float64, c color.Color) {
	r.ops = append(r.ops, drawOp{kind: "text", x: x, y: y, size: size, text: s, color: c, alpha: 1})
}

func (r *recordingCanvas) count(kind string) int {
	n := 0
	for _, op := range r.ops {
		if op.kind == kind {
			n++
		}
	}
	return n
}

func (r *recordingCanvas) reset() {
	r.ops = r.ops[:0]
}

// seqRand replays a fixed sequence of values, repeating the last one.
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	if len(s.vals) == 0 {
		return 0
	}
	v := s.vals[len(s.vals)-1]
	if s.i < len(s.vals) {
		v = s.vals[s.i]
	}
	s.i++
	return v
}

// constRand always returns v.
type constRand float64

func (c constRand) Float64() float64 { return float64(c) }

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}
