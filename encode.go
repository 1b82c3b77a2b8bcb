package iconsheet

import (
	"bytes"
	"image"
	"image/png"

	"github.com/bodgit/iconsheet/bitmap"
	"github.com/bodgit/iconsheet/progmem"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
)

// Crop cuts the rectangle r out of the sheet. The tile must come out exactly
// size by size, anything else means r ran off the edge of the sheet.
func Crop(sheet image.Image, r image.Rectangle, size int) (*image.NRGBA, error) {
	tile := imaging.Crop(sheet, r)
	if b := tile.Bounds(); b.Dx() != size || b.Dy() != size {
		return nil, errors.Wrapf(ErrCropSize, "%v gave %dx%d, expected %dx%d", r, b.Dx(), b.Dy(), size, size)
	}
	return tile, nil
}

// EncodeIcon encodes a cropped tile as both PNG data and a monochrome
// bitmap
func EncodeIcon(name string, tile image.Image, threshold uint8) (progmem.Icon, error) {
	blob := new(bytes.Buffer)
	if err := imaging.Encode(blob, tile, imaging.PNG, imaging.PNGCompressionLevel(png.BestCompression)); err != nil {
		return progmem.Icon{}, errors.Wrapf(err, "encoding %s as PNG", name)
	}

	bmp := new(bytes.Buffer)
	if err := bitmap.Encode(bmp, tile, threshold); err != nil {
		return progmem.Icon{}, errors.Wrapf(err, "encoding %s as bitmap", name)
	}

	return progmem.Icon{
		Name:   name,
		PNG:    blob.Bytes(),
		Bitmap: bmp.Bytes(),
	}, nil
}
