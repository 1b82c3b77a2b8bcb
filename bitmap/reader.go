package bitmap

import (
	"image"
	"image/color"
	"io"

	"github.com/pkg/errors"
)

var (
	errNotEnough = errors.New("bitmap: not enough image data")
	errTooMuch   = errors.New("bitmap: too much image data")
)

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r     io.Reader
	image *image.Gray
	tmp   [Size]byte
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := readFull(d.r, d.tmp[:]); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return errNotEnough
	}

	var extra [1]byte
	if n, err := r.Read(extra[:]); n != 0 || (err != io.EOF && err != io.ErrUnexpectedEOF) {
		if err != nil {
			return err
		}
		return errTooMuch
	}

	if configOnly {
		return nil
	}

	d.image = image.NewGray(image.Rect(0, 0, Width, Height))
	for i, b := range d.tmp {
		y := i / bytesPerRow
		x := i % bytesPerRow * pixelsPerByte
		for bit := 0; bit < pixelsPerByte; bit++ {
			if b&(1<<uint(bit)) != 0 {
				d.image.SetGray(x+bit, y, color.Gray{Y: 0xff})
			}
		}
	}

	return nil
}

// Decode reads a monochrome bitmap from r and returns it as an image.Image.
// Lit pixels are white, everything else is black.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a monochrome bitmap
// without decoding the entire bitmap.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.GrayModel,
		Width:      Width,
		Height:     Height,
	}, nil
}
