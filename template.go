package iconsheet

import (
	"image"
	"image/color"

	"github.com/disintegration/imaging"
)

// DefaultCanvasSize is the width and height of a drawing template
const DefaultCanvasSize = 512

var (
	gridColor   = color.NRGBA{200, 200, 200, 255}
	markerColor = color.NRGBA{255, 0, 0, 255}
)

// TemplateOptions controls the drawing template
type TemplateOptions struct {
	Size     int
	TileSize int
	Spacing  int
	// Blank omits the grid entirely
	Blank bool
	// Markers draws small red squares at the first few tile origins
	Markers bool
}

// Slots returns how many tiles fit along each side of the template, or 0 if
// the tile size and spacing do not describe a grid
func (o TemplateOptions) Slots() int {
	step := o.TileSize + o.Spacing
	if step <= 0 {
		return 0
	}
	return o.Size / step
}

// Template returns a white canvas for drawing icons on. Grid lines are
// drawn along every multiple of the tile step so tiles sit between them.
func Template(opts TemplateOptions) *image.NRGBA {
	m := imaging.New(opts.Size, opts.Size, color.White)
	if opts.Blank || opts.TileSize <= 0 || opts.Spacing < 0 {
		return m
	}

	step := opts.TileSize + opts.Spacing
	for i := 0; i <= opts.Slots(); i++ {
		p := i * step
		for j := 0; j < opts.Size; j++ {
			m.SetNRGBA(p, j, gridColor)
			m.SetNRGBA(j, p, gridColor)
		}
	}

	if opts.Markers {
		for _, p := range []image.Point{{0, 0}, {1, 0}, {0, 1}, {2, 0}, {0, 2}} {
			x, y := p.X*step, p.Y*step
			for dy := 0; dy < 3; dy++ {
				for dx := 0; dx < 3; dx++ {
					m.SetNRGBA(x+dx, y+dy, markerColor)
				}
			}
		}
	}

	return m
}
