package main

import (
	"bytes"
	"fmt"
	"image"
	"io"
	"log"

	"github.com/bodgit/iconsheet"
	"github.com/bodgit/iconsheet/bitmap"
	"github.com/gookit/color"
	"github.com/pkg/errors"
	"github.com/vincent-petithory/dataurl"
)

// Lit and unlit pixels use different glyphs so the bitmap still reads when
// the terminal has no color support
const (
	litGlyph   = "██"
	unlitGlyph = "  "
)

func printBitmap(w io.Writer, m image.Image) {
	lit := color.White.Sprint(litGlyph)
	unlit := color.BgBlack.Sprint(unlitGlyph)

	b := m.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, _, _, _ := m.At(x, y).RGBA()
			if r > 0 {
				fmt.Fprint(w, lit)
			} else {
				fmt.Fprint(w, unlit)
			}
		}
		fmt.Fprintln(w)
	}
}

func show(w io.Writer, m *iconsheet.Manifest, name string, withDataURL bool, logger *log.Logger) error {
	table, err := iconsheet.New(m, logger).Encode()
	if err != nil {
		return err
	}

	icon, ok := table.Lookup(name)
	if !ok {
		return errors.Errorf("no icon named %q", name)
	}

	bmp, err := bitmap.Decode(bytes.NewReader(icon.Bitmap))
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "%s (png=%dB, bmp=%dB)\n", icon.Name, len(icon.PNG), len(icon.Bitmap))
	printBitmap(w, bmp)

	if withDataURL {
		fmt.Fprintln(w, dataurl.New(icon.PNG, "image/png").String())
	}

	return nil
}
