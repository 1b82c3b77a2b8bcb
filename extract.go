package iconsheet

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/pkg/errors"
)

// Extraction defaults
const (
	DefaultExtractDir      = "extracted_icons"
	DefaultExtractPrefix   = "icon"
	DefaultExtractTileSize = 32

	// Channels at or above this are considered white
	blankLevel = 250
)

// ExtractOptions controls how a sheet is split into individual files
type ExtractOptions struct {
	Output   string
	Prefix   string
	TileSize int
	Spacing  int
	// Colors reduces each tile to a palette of at most this many colors,
	// zero keeps the tile as is
	Colors int
}

// ExtractResult lists what Extract did
type ExtractResult struct {
	Columns, Rows int
	Files         []string
	Skipped       int
}

// isBlank reports whether every pixel is either transparent or white
func isBlank(m *image.NRGBA) bool {
	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := m.NRGBAAt(x, y)
			if c.A > 0 && (c.R < blankLevel || c.G < blankLevel || c.B < blankLevel) {
				return false
			}
		}
	}
	return true
}

func reduceColors(m image.Image, colors int) *image.Paletted {
	b := m.Bounds()
	q := quantize.MedianCutQuantizer{}
	pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, colors), m))
	draw.Draw(pm, b, m, b.Min, draw.Src)
	return pm
}

// Extract writes every non-blank tile of the sheet to its own PNG file. Tiles
// are numbered by grid position so numbering is stable when tiles are
// skipped. Unlike Generate, blank tiles are not an error.
func Extract(sheet string, opts ExtractOptions, logger *log.Logger) (*ExtractResult, error) {
	logger = orDiscard(logger)

	if opts.TileSize <= 0 {
		return nil, errors.Wrapf(errBadTileSize, "tile size %d", opts.TileSize)
	}
	if opts.Spacing < 0 {
		return nil, errors.Wrapf(errBadSpacing, "spacing %d", opts.Spacing)
	}
	if opts.Colors < 0 || opts.Colors > 256 {
		return nil, errors.Errorf("colors must be between 0 and 256, got %d", opts.Colors)
	}

	if _, err := os.Stat(sheet); err != nil {
		return nil, errors.Wrapf(ErrMissingSheet, "%s", sheet)
	}

	m, err := imaging.Open(sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding sprite sheet %s", sheet)
	}

	if err := os.MkdirAll(opts.Output, 0755); err != nil {
		return nil, err
	}

	step := opts.TileSize + opts.Spacing
	bounds := m.Bounds()
	result := &ExtractResult{
		Columns: bounds.Dx() / step,
		Rows:    bounds.Dy() / step,
	}

	logger.Printf("Extracting %dx%d tiles from %s, grid %dx%d\n", opts.TileSize, opts.TileSize, sheet, result.Columns, result.Rows)

	for row := 0; row < result.Rows; row++ {
		for col := 0; col < result.Columns; col++ {
			r := image.Rect(col*step, row*step, col*step+opts.TileSize, row*step+opts.TileSize).Add(bounds.Min)

			tile, err := Crop(m, r, opts.TileSize)
			if err != nil {
				return nil, err
			}

			if isBlank(tile) {
				result.Skipped++
				continue
			}

			var out image.Image = tile
			if opts.Colors > 0 {
				out = reduceColors(tile, opts.Colors)
			}

			file := filepath.Join(opts.Output, fmt.Sprintf("%s_%03d.png", opts.Prefix, row*result.Columns+col+1))
			if err := imaging.Save(out, file); err != nil {
				return nil, errors.Wrapf(err, "writing %s", file)
			}
			result.Files = append(result.Files, file)

			logger.Printf("Extracted %s (position %d,%d)\n", file, col, row)
		}
	}

	return result, nil
}
