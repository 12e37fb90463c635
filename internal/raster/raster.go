// Package raster is a software canvas backed by an *image.RGBA.
package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/iburimskiy/fireworks/internal/fireworks"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Canvas draws into an RGBA image. It starts out black.
type Canvas struct {
	img   *image.RGBA
	font  *opentype.Font
	faces map[float64]font.Face
}

var _ fireworks.Canvas = (*Canvas)(nil)

// New creates a width x height canvas using the Go Regular font for text.
func New(width, height int) (*Canvas, error) {
	f, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	c := &Canvas{
		img:   image.NewRGBA(image.Rect(0, 0, width, height)),
		font:  f,
		faces: make(map[float64]font.Face),
	}
	c.Clear(color.Black)
	return c, nil
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// At returns the pixel at (x, y).
func (c *Canvas) At(x, y int) color.RGBA {
	return c.img.RGBAAt(x, y)
}

// Clear fills the whole canvas with clr.
func (c *Canvas) Clear(clr color.Color) {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(clr), image.Point{}, draw.Src)
}

func (c *Canvas) Bounds() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// FillRect blends clr over the rectangle at the given alpha.
func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color, alpha float64) {
	r := image.Rect(
		int(math.Floor(x)), int(math.Floor(y)),
		int(math.Ceil(x+w)), int(math.Ceil(y+h)),
	).Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	src := image.NewUniform(opaque(clr))
	mask := image.NewUniform(color.Alpha{A: fireworks.WithAlpha(clr, alpha).A})
	draw.DrawMask(c.img, r, src, image.Point{}, mask, image.Point{}, draw.Over)
}

// FillCircle blends a filled circle. A pixel is covered when its center lies
// inside the circle.
func (c *Canvas) FillCircle(x, y, radius float64, clr color.Color, alpha float64) {
	a := fireworks.WithAlpha(clr, alpha).A
	if a == 0 || radius <= 0 {
		return
	}
	m := &circleMask{cx: x, cy: y, r: radius, a: a}
	r := m.Bounds().Intersect(c.img.Bounds())
	if r.Empty() {
		return
	}
	draw.DrawMask(c.img, r, image.NewUniform(opaque(clr)), image.Point{}, m, r.Min, draw.Over)
}

// FillText draws s at full opacity, centered on x, with y as the baseline.
func (c *Canvas) FillText(s string, x, y, size float64, clr color.Color) {
	face, err := c.face(size)
	if err != nil {
		return
	}
	d := &font.Drawer{
		Dst:  c.img,
		Src:  image.NewUniform(opaque(clr)),
		Face: face,
	}
	advance := d.MeasureString(s)
	d.Dot = fixed.Point26_6{
		X: fixed.Int26_6(math.Round(x*64)) - advance/2,
		Y: fixed.Int26_6(math.Round(y * 64)),
	}
	d.DrawString(s)
}

func (c *Canvas) face(size float64) (font.Face, error) {
	if f, ok := c.faces[size]; ok {
		return f, nil
	}
	f, err := opentype.NewFace(c.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, err
	}
	c.faces[size] = f
	return f, nil
}

func opaque(clr color.Color) color.NRGBA {
	return fireworks.WithAlpha(clr, 1)
}

// circleMask is an alpha mask that is a uniform a inside the circle and
// transparent outside.
type circleMask struct {
	cx, cy, r float64
	a         uint8
}

func (m *circleMask) ColorModel() color.Model {
	return color.AlphaModel
}

func (m *circleMask) Bounds() image.Rectangle {
	return image.Rect(
		int(math.Floor(m.cx-m.r)), int(math.Floor(m.cy-m.r)),
		int(math.Ceil(m.cx+m.r))+1, int(math.Ceil(m.cy+m.r))+1,
	)
}

func (m *circleMask) At(x, y int) color.Color {
	dx := float64(x) + 0.5 - m.cx
	dy := float64(y) + 0.5 - m.cy
	if dx*dx+dy*dy <= m.r*m.r {
		return color.Alpha{A: m.a}
	}
	return color.Alpha{}
}
