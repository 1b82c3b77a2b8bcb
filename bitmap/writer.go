package bitmap

import (
	"image"
	"image/color"
	"io"

	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

type encoder struct {
	w         io.Writer
	threshold uint8
}

// Luminance returns the 8-bit luma of c using the ITU-R 601-2 weights. Alpha
// is ignored so fully transparent pixels keep whatever color they carry.
func Luminance(c color.NRGBA) uint8 {
	return uint8((19595*uint32(c.R) + 38470*uint32(c.G) + 7471*uint32(c.B) + 1<<15) >> 16)
}

func (e *encoder) encode(m *image.NRGBA) error {
	var row [bytesPerRow]byte
	for y := 0; y < Height; y++ {
		for g := range row {
			var b byte
			for bit := 0; bit < pixelsPerByte; bit++ {
				if Luminance(m.NRGBAAt(g*pixelsPerByte+bit, y)) > e.threshold {
					b |= 1 << uint(bit)
				}
			}
			row[g] = b
		}

		if _, err := e.w.Write(row[:]); err != nil {
			return err
		}
	}

	return nil
}

// Encode writes the Image m to w in monochrome bitmap format. Pixels whose
// luminance exceeds threshold are lit. Images that are not already 32 by 32
// are scaled using nearest-neighbor sampling first, which keeps the hard
// edges of line art.
func Encode(w io.Writer, m image.Image, threshold uint8) error {
	b := m.Bounds()
	if b.Empty() {
		return errors.New("bitmap: image is empty")
	}

	var nm *image.NRGBA
	if b.Dx() != Width || b.Dy() != Height {
		nm = imaging.Resize(m, Width, Height, imaging.NearestNeighbor)
	} else {
		// Also moves the top-left corner to (0, 0)
		nm = imaging.Clone(m)
	}

	e := encoder{w: w, threshold: threshold}

	return e.encode(nm)
}
