package iconsheet

import (
	"io/ioutil"
	"os"
	"path/filepath"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/bodgit/iconsheet/bitmap"
	"github.com/bodgit/iconsheet/progmem"
	"github.com/disintegration/imaging"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Summary describes a completed run
type Summary struct {
	Output      string
	Icons       int
	PNGBytes    int
	BitmapBytes int
}

// Encode validates the manifest, then crops and encodes every icon in
// manifest order. Nothing is returned unless every icon succeeds.
func (g *Generator) Encode() (*progmem.Table, error) {
	m := g.manifest

	if err := m.Validate(); err != nil {
		return nil, err
	}

	sheet, err := imaging.Open(m.Sheet)
	if err != nil {
		return nil, errors.Wrapf(err, "decoding sprite sheet %s", m.Sheet)
	}
	g.logger.Printf("Opened %s (%dx%d)\n", m.Sheet, sheet.Bounds().Dx(), sheet.Bounds().Dy())

	table := progmem.New()
	for i, icon := range m.Icons {
		r := m.Locate(icon)

		tile, err := Crop(sheet, r, m.TileSize)
		if err != nil {
			return nil, errors.Wrapf(err, "icons[%d] %q", i, icon.Name)
		}

		encoded, err := EncodeIcon(icon.Name, tile, uint8(m.Threshold))
		if err != nil {
			return nil, errors.Wrapf(err, "icons[%d]", i)
		}

		if err := table.Add(encoded); err != nil {
			return nil, errors.Wrapf(err, "icons[%d]", i)
		}

		g.logger.Printf("Encoded %s from %v (png=%dB)\n", icon.Name, r, len(encoded.PNG))
	}

	return table, nil
}

// Generate encodes every icon and writes the generated source to out. The
// file is only replaced once the whole of it has been rendered, any existing
// file is left untouched on error.
func (g *Generator) Generate(out string) (*Summary, error) {
	table, err := g.Encode()
	if err != nil {
		return nil, err
	}

	b, err := table.MarshalText()
	if err != nil {
		return nil, err
	}

	if err := writeFile(out, b); err != nil {
		return nil, errors.Wrapf(err, "writing %s", out)
	}
	g.logger.Printf("Wrote %s (%d bytes)\n", out, len(b))

	s := &Summary{
		Output:      out,
		Icons:       table.Length(),
		BitmapBytes: table.Length() * bitmap.Size,
	}
	for _, icon := range table.Icons() {
		s.PNGBytes += len(icon.PNG)
	}

	return s, nil
}

// writeFile writes b to a temporary file alongside name and then renames it
// into place
func writeFile(name string, b []byte) (err error) {
	f, err := ioutil.TempFile(filepath.Dir(name), "."+filepath.Base(name)+".")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()

	if _, err = f.Write(b); err != nil {
		return err
	}

	if err = f.Chmod(0644); err != nil {
		return err
	}

	if err = f.Close(); err != nil {
		return err
	}

	return os.Rename(f.Name(), name)
}
