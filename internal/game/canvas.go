package game

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/iburimskiy/fireworks/internal/fireworks"
	"golang.org/x/image/font/gofont/goregular"
)

// Canvas is an offscreen ebiten image the show draws onto. It is never
// cleared, so the trail overlay accumulates across frames.
type Canvas struct {
	img        *ebiten.Image
	fontSource *text.GoTextFaceSource
	faces      map[float64]*text.GoTextFace
}

var _ fireworks.Canvas = (*Canvas)(nil)

func NewCanvas(width, height int) (*Canvas, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("create font source: %w", err)
	}

	img := ebiten.NewImage(width, height)
	img.Fill(color.Black)

	return &Canvas{
		img:        img,
		fontSource: source,
		faces:      make(map[float64]*text.GoTextFace),
	}, nil
}

// Image returns the backing image.
func (c *Canvas) Image() *ebiten.Image {
	return c.img
}

func (c *Canvas) Bounds() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) FillRect(x, y, w, h float64, clr color.Color, alpha float64) {
	vector.DrawFilledRect(c.img, float32(x), float32(y), float32(w), float32(h), fireworks.WithAlpha(clr, alpha), false)
}

func (c *Canvas) FillCircle(x, y, radius float64, clr color.Color, alpha float64) {
	vector.DrawFilledCircle(c.img, float32(x), float32(y), float32(radius), fireworks.WithAlpha(clr, alpha), true)
}

// FillText draws s centered on x. text/v2 positions by the top of the line,
// so the origin is shifted up by the ascent to put y on the baseline.
func (c *Canvas) FillText(s string, x, y, size float64, clr color.Color) {
	face := c.face(size)

	op := &text.DrawOptions{}
	op.GeoM.Translate(x, y-face.Metrics().HAscent)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = text.AlignCenter
	text.Draw(c.img, s, face, op)
}

func (c *Canvas) face(size float64) *text.GoTextFace {
	if f, ok := c.faces[size]; ok {
		return f
	}
	f := &text.GoTextFace{
		Source:    c.fontSource,
		Size:      size,
		Direction: text.DirectionLeftToRight,
	}
	c.faces[size] = f
	return f
}
