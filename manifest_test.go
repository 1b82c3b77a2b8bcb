package iconsheet

import (
	"image"
	"io/ioutil"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	m, err := Parse([]byte(`{"icons": [{"name": "folder"}]}`), JSON)
	require.NoError(t, err)

	assert.Equal(t, DefaultTileSize, m.TileSize)
	assert.Equal(t, DefaultSpacing, m.Spacing)
	assert.Equal(t, DefaultThreshold, m.Threshold)
	assert.Equal(t, DefaultSheet, m.Sheet)
	assert.Equal(t, []Icon{{Name: "folder"}}, m.Icons)
}

func TestParseZeroValues(t *testing.T) {
	m, err := Parse([]byte(`{"spacing": 0, "threshold": 0, "icons": []}`), JSON)
	require.NoError(t, err)

	assert.Equal(t, 0, m.Spacing)
	assert.Equal(t, 0, m.Threshold)
	assert.Empty(t, m.Icons)
}

func TestParseExplicitPosition(t *testing.T) {
	m, err := Parse([]byte(`{"icons": [
		{"name": "a", "x": 5, "y": 7, "row": 3, "col": 3},
		{"name": "b", "x": 5, "row": 1, "col": 2},
		{"name": "c", "x": 0, "y": 0}
	]}`), JSON)
	require.NoError(t, err)

	assert.Equal(t, []Icon{
		{Name: "a", X: 5, Y: 7, Explicit: true, Row: 3, Col: 3},
		{Name: "b", Row: 1, Col: 2},
		{Name: "c", Explicit: true},
	}, m.Icons)
}

const jsonManifest = `{
  "tileSize": 32,
  "spacing": 1,
  "threshold": 100,
  "sheet": "art/sheet.png",
  "icons": [
    {"name": "smiley", "row": 0, "col": 0},
    {"name": "folder", "row": 0, "col": 2},
    {"name": "custom", "x": 10, "y": 20}
  ]
}`

const tomlManifest = `
tileSize = 32
spacing = 1
threshold = 100
sheet = "art/sheet.png"

[[icons]]
name = "smiley"
row = 0
col = 0

[[icons]]
name = "folder"
row = 0
col = 2

[[icons]]
name = "custom"
x = 10
y = 20
`

func TestParseFormats(t *testing.T) {
	fromJSON, err := Parse([]byte(jsonManifest), JSON)
	require.NoError(t, err)

	fromTOML, err := Parse([]byte(tomlManifest), TOML)
	require.NoError(t, err)

	assert.Equal(t, fromJSON, fromTOML)
	assert.Equal(t, 100, fromJSON.Threshold)
	assert.Len(t, fromJSON.Icons, 3)
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse([]byte(`{"icons": [`), JSON)
	assert.Error(t, err)

	_, err = Parse([]byte(`icons = [`), TOML)
	assert.Error(t, err)

	_, err = Parse([]byte(`{"icons": [{"name": 42}]}`), JSON)
	assert.Error(t, err)
}

func TestFormatFromPath(t *testing.T) {
	f, err := FormatFromPath("icons/iconsheet.json")
	require.NoError(t, err)
	assert.Equal(t, JSON, f)

	f, err = FormatFromPath("icons/ICONSHEET.TOML")
	require.NoError(t, err)
	assert.Equal(t, TOML, f)

	_, err = FormatFromPath("icons/iconsheet.yaml")
	assert.True(t, errors.Is(err, ErrUnknownFormat))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "iconsheet.json")
	require.NoError(t, ioutil.WriteFile(path, []byte(jsonManifest), 0644))

	m, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "art", "sheet.png"), m.Sheet)

	abs := filepath.Join(dir, "elsewhere.png")
	require.NoError(t, ioutil.WriteFile(path, []byte(`{"sheet": "`+filepath.ToSlash(abs)+`"}`), 0644))
	m, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, abs, m.Sheet)

	_, err = Load(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	sheet := filepath.Join(t.TempDir(), "sheet.png")
	require.NoError(t, ioutil.WriteFile(sheet, []byte("not decoded"), 0644))

	valid := func() *Manifest {
		return &Manifest{
			TileSize:  16,
			Spacing:   1,
			Threshold: 128,
			Sheet:     sheet,
			Icons: []Icon{
				{Name: "folder"},
				{Name: "file_bin", Row: 1},
				{Name: "_private", X: 3, Y: 4, Explicit: true},
			},
		}
	}

	tests := map[string]struct {
		modify func(*Manifest)
		err    error
	}{
		"valid": {
			modify: func(*Manifest) {},
		},
		"missing sheet": {
			modify: func(m *Manifest) { m.Sheet = filepath.Join(filepath.Dir(sheet), "nope.png") },
			err:    ErrMissingSheet,
		},
		"missing sheet before ranges": {
			modify: func(m *Manifest) {
				m.Sheet = filepath.Join(filepath.Dir(sheet), "nope.png")
				m.TileSize = 0
				m.Threshold = -1
			},
			err: ErrMissingSheet,
		},
		"no icons": {
			modify: func(m *Manifest) { m.Icons = nil },
			err:    ErrNoIcons,
		},
		"missing name": {
			modify: func(m *Manifest) { m.Icons[1].Name = "" },
			err:    ErrMissingName,
		},
		"leading digit": {
			modify: func(m *Manifest) { m.Icons[1].Name = "2fa" },
			err:    ErrInvalidName,
		},
		"hyphen": {
			modify: func(m *Manifest) { m.Icons[1].Name = "arrow-left" },
			err:    ErrInvalidName,
		},
		"too long": {
			modify: func(m *Manifest) { m.Icons[1].Name = strings.Repeat("a", 32) },
			err:    ErrInvalidName,
		},
		"duplicate": {
			modify: func(m *Manifest) { m.Icons[2].Name = "folder" },
			err:    ErrDuplicateName,
		},
		"zero tile size": {
			modify: func(m *Manifest) { m.TileSize = 0 },
			err:    errBadTileSize,
		},
		"negative spacing": {
			modify: func(m *Manifest) { m.Spacing = -1 },
			err:    errBadSpacing,
		},
		"threshold": {
			modify: func(m *Manifest) { m.Threshold = 256 },
			err:    errBadThreshold,
		},
		"negative position": {
			modify: func(m *Manifest) { m.Icons[0].Col = -1 },
			err:    errBadCoordinates,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			m := valid()
			tc.modify(m)

			err := m.Validate()
			if tc.err == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tc.err), "got %v", err)
		})
	}
}

func TestValidateNamesEntry(t *testing.T) {
	sheet := filepath.Join(t.TempDir(), "sheet.png")
	require.NoError(t, ioutil.WriteFile(sheet, nil, 0644))

	m := &Manifest{TileSize: 16, Sheet: sheet, Icons: []Icon{{Name: "folder"}, {Name: "folder"}}}
	err := m.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), `icons[1] "folder"`)
}

func TestLocate(t *testing.T) {
	m := &Manifest{TileSize: 32, Spacing: 1}

	tests := map[string]struct {
		icon Icon
		want image.Rectangle
	}{
		"origin":   {Icon{}, image.Rect(0, 0, 32, 32)},
		"row 1":    {Icon{Row: 1, Col: 2}, image.Rect(66, 33, 98, 65)},
		"col 3":    {Icon{Row: 1, Col: 3}, image.Rect(99, 33, 131, 65)},
		"explicit": {Icon{X: 5, Y: 7, Explicit: true, Row: 4, Col: 4}, image.Rect(5, 7, 37, 39)},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.want, m.Locate(tc.icon))
		})
	}
}
