package iconsheet

import (
	"bytes"
	"encoding/json"
	"image"
	"io/ioutil"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/bodgit/iconsheet/progmem"
	"github.com/pkg/errors"
)

// Manifest defaults
const (
	DefaultTileSize  = 16
	DefaultSpacing   = 1
	DefaultThreshold = 128
	DefaultSheet     = "assets/iconsheet.png"
)

// Format identifies the encoding of a manifest file
type Format int

// Supported manifest formats
const (
	JSON Format = iota
	TOML
)

// FormatFromPath picks the manifest format from the file extension
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return JSON, nil
	case ".toml":
		return TOML, nil
	default:
		return 0, errors.Wrapf(ErrUnknownFormat, "%s", path)
	}
}

// Icon describes where a single named icon lives in the sprite sheet. When
// Explicit is set X and Y are the pixel offset of the tile, otherwise Row and
// Col locate it on the sheet grid.
type Icon struct {
	Name     string
	X, Y     int
	Explicit bool
	Row, Col int
}

// Manifest is the ordered list of icons cut from a sprite sheet along with
// the sheet-wide settings
type Manifest struct {
	TileSize  int
	Spacing   int
	Threshold int
	Sheet     string
	Icons     []Icon
}

type rawIcon struct {
	Name string `json:"name" toml:"name"`
	X    *int   `json:"x" toml:"x"`
	Y    *int   `json:"y" toml:"y"`
	Row  *int   `json:"row" toml:"row"`
	Col  *int   `json:"col" toml:"col"`
}

type rawManifest struct {
	TileSize  *int      `json:"tileSize" toml:"tileSize"`
	Spacing   *int      `json:"spacing" toml:"spacing"`
	Threshold *int      `json:"threshold" toml:"threshold"`
	Sheet     *string   `json:"sheet" toml:"sheet"`
	Icons     []rawIcon `json:"icons" toml:"icons"`
}

func intOr(p *int, def int) int {
	if p == nil {
		return def
	}
	return *p
}

// Parse decodes a manifest, filling in defaults for any missing setting. The
// sheet path is returned as written; Load resolves it.
func Parse(b []byte, format Format) (*Manifest, error) {
	var raw rawManifest

	switch format {
	case JSON:
		d := json.NewDecoder(bytes.NewReader(b))
		if err := d.Decode(&raw); err != nil {
			return nil, errors.Wrap(err, "decoding JSON manifest")
		}
	case TOML:
		if err := toml.Unmarshal(b, &raw); err != nil {
			return nil, errors.Wrap(err, "decoding TOML manifest")
		}
	default:
		return nil, ErrUnknownFormat
	}

	m := &Manifest{
		TileSize:  intOr(raw.TileSize, DefaultTileSize),
		Spacing:   intOr(raw.Spacing, DefaultSpacing),
		Threshold: intOr(raw.Threshold, DefaultThreshold),
		Sheet:     DefaultSheet,
		Icons:     make([]Icon, 0, len(raw.Icons)),
	}
	if raw.Sheet != nil {
		m.Sheet = *raw.Sheet
	}

	for _, ri := range raw.Icons {
		icon := Icon{
			Name: ri.Name,
			Row:  intOr(ri.Row, 0),
			Col:  intOr(ri.Col, 0),
		}
		// Both coordinates are needed for an explicit position
		if ri.X != nil && ri.Y != nil {
			icon.X, icon.Y, icon.Explicit = *ri.X, *ri.Y, true
		}
		m.Icons = append(m.Icons, icon)
	}

	return m, nil
}

// Load reads the manifest at path. A relative sheet path is taken to be
// relative to the directory containing the manifest.
func Load(path string) (*Manifest, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	b, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "missing manifest")
	}

	m, err := Parse(b, format)
	if err != nil {
		return nil, errors.Wrapf(err, "%s", path)
	}

	if !filepath.IsAbs(m.Sheet) {
		m.Sheet = filepath.Join(filepath.Dir(path), filepath.FromSlash(m.Sheet))
	}

	return m, nil
}

var identifier = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Validate checks the manifest is well-formed without decoding any image. The
// first problem found is returned, wrapped with the offending entry.
func (m *Manifest) Validate() error {
	if _, err := os.Stat(m.Sheet); err != nil {
		return errors.Wrapf(ErrMissingSheet, "%s", m.Sheet)
	}

	switch {
	case m.TileSize <= 0:
		return errors.Wrapf(errBadTileSize, "tileSize %d", m.TileSize)
	case m.Spacing < 0:
		return errors.Wrapf(errBadSpacing, "spacing %d", m.Spacing)
	case m.Threshold < 0 || m.Threshold > 255:
		return errors.Wrapf(errBadThreshold, "threshold %d", m.Threshold)
	}

	if len(m.Icons) == 0 {
		return ErrNoIcons
	}

	seen := make(map[string]struct{}, len(m.Icons))
	for i, icon := range m.Icons {
		switch {
		case icon.Name == "":
			return errors.Wrapf(ErrMissingName, "icons[%d]", i)
		case !identifier.MatchString(icon.Name):
			return errors.Wrapf(ErrInvalidName, "icons[%d] %q", i, icon.Name)
		case len(icon.Name) > progmem.MaxNameLength:
			return errors.Wrapf(ErrInvalidName, "icons[%d] %q longer than %d characters", i, icon.Name, progmem.MaxNameLength)
		}
		if _, ok := seen[icon.Name]; ok {
			return errors.Wrapf(ErrDuplicateName, "icons[%d] %q", i, icon.Name)
		}
		seen[icon.Name] = struct{}{}

		if icon.X < 0 || icon.Y < 0 || icon.Row < 0 || icon.Col < 0 {
			return errors.Wrapf(errBadCoordinates, "icons[%d] %q", i, icon.Name)
		}
	}

	return nil
}

// Locate returns the rectangle of the sprite sheet covered by the icon
func (m *Manifest) Locate(icon Icon) image.Rectangle {
	x, y := icon.X, icon.Y
	if !icon.Explicit {
		step := m.TileSize + m.Spacing
		x, y = icon.Col*step, icon.Row*step
	}
	return image.Rect(x, y, x+m.TileSize, y+m.TileSize)
}
