// Package terminal shows a fireworks show on a tcell screen. Each cell
// renders two vertically stacked surface blocks with an upper half-block
// glyph: foreground for the top block, background for the bottom one.
package terminal

import (
	"fmt"
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/iburimskiy/fireworks/internal/raster"
)

const halfBlock = '▀'

// Display maps a raster canvas onto the cells of a screen.
type Display struct {
	screen     tcell.Screen
	canvas     *raster.Canvas
	scale      int
	cols, rows int
}

// NewDisplay sizes a canvas to the screen: scale surface pixels per column and
// 2*scale per row.
func NewDisplay(screen tcell.Screen, scale int) (*Display, error) {
	if scale <= 0 {
		return nil, fmt.Errorf("scale must be positive, got %d", scale)
	}
	cols, rows := screen.Size()
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("screen has no cells (%dx%d)", cols, rows)
	}
	canvas, err := raster.New(cols*scale, rows*2*scale)
	if err != nil {
		return nil, err
	}
	return &Display{
		screen: screen,
		canvas: canvas,
		scale:  scale,
		cols:   cols,
		rows:   rows,
	}, nil
}

// Canvas returns the surface the show draws onto.
func (d *Display) Canvas() *raster.Canvas {
	return d.canvas
}

// CellToSurface returns the surface coordinates of the center of a cell.
func (d *Display) CellToSurface(col, row int) (x, y float64) {
	s := float64(d.scale)
	return float64(col)*s + s/2, float64(row)*2*s + s
}

// Present copies the canvas to the screen and shows it.
func (d *Display) Present() {
	for row := 0; row < d.rows; row++ {
		for col := 0; col < d.cols; col++ {
			top := d.block(col, row*2)
			bottom := d.block(col, row*2+1)
			style := tcell.StyleDefault.Foreground(toTcell(top)).Background(toTcell(bottom))
			d.screen.SetContent(col, row, halfBlock, nil, style)
		}
	}
	d.screen.Show()
}

// block returns the brightest pixel of a scale x scale block, so particles
// smaller than a block still show up.
func (d *Display) block(bx, by int) color.RGBA {
	var best color.RGBA
	bestLum := -1
	x0, y0 := bx*d.scale, by*d.scale
	for y := y0; y < y0+d.scale; y++ {
		for x := x0; x < x0+d.scale; x++ {
			px := d.canvas.At(x, y)
			if lum := int(px.R) + int(px.G) + int(px.B); lum > bestLum {
				best, bestLum = px, lum
			}
		}
	}
	return best
}

func toTcell(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
