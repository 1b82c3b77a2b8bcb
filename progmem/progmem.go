/*
Package progmem implements the generated C++ source that embeds icons into the
firmware image.

Each icon is written as two PROGMEM byte arrays, the PNG data served to web
clients and the 128 byte monochrome bitmap drawn on the OLED, followed by a
single registry table in declaration order. The firmware looks icons up by
scanning the registry linearly, copying each name into a 32 byte buffer.
*/
package progmem

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/bodgit/iconsheet/bitmap"
	"github.com/pkg/errors"
)

const (
	// Filename is the expected filename used when writing to disk
	Filename = "icons_embedded.cpp"

	// Include is the header declaring the EmbeddedIcon struct
	Include = "icons_embedded.h"

	// MaxNameLength is the longest name the firmware lookup buffer can hold
	MaxNameLength = 31

	blobColumns   = 16
	bitmapColumns = 8
)

// Icon is a single encoded icon
type Icon struct {
	Name   string
	PNG    []byte
	Bitmap []byte
}

// Table is the icon registry. It implements the encoding.TextMarshaler
// interface.
type Table struct {
	icons []Icon
	names map[string]struct{}
}

// New returns an empty icon table
func New() *Table {
	return &Table{
		names: make(map[string]struct{}),
	}
}

// Length returns the number of icons in the table
func (t *Table) Length() int {
	return len(t.icons)
}

// Add appends the icon to the table. The byte slices are copied.
func (t *Table) Add(icon Icon) error {
	switch {
	case icon.Name == "":
		return errors.New("empty icon name")
	case len(icon.Name) > MaxNameLength:
		return errors.Errorf("icon name %q longer than %d characters", icon.Name, MaxNameLength)
	case len(icon.Bitmap) != bitmap.Size:
		return errors.Errorf("icon %q bitmap is %d bytes, expected %d", icon.Name, len(icon.Bitmap), bitmap.Size)
	case len(icon.PNG) == 0:
		return errors.Errorf("icon %q has no PNG data", icon.Name)
	}
	if _, ok := t.names[icon.Name]; ok {
		return errors.Errorf("duplicate icon %q", icon.Name)
	}

	t.names[icon.Name] = struct{}{}
	t.icons = append(t.icons, Icon{
		Name:   icon.Name,
		PNG:    append([]byte(nil), icon.PNG...),
		Bitmap: append([]byte(nil), icon.Bitmap...),
	})

	return nil
}

// Icons returns the icons in declaration order
func (t *Table) Icons() []Icon {
	return append([]Icon(nil), t.icons...)
}

// Lookup returns the icon with the given name, scanning the table the same
// way the firmware does
func (t *Table) Lookup(name string) (Icon, bool) {
	for _, icon := range t.icons {
		if icon.Name == name {
			return icon, true
		}
	}
	return Icon{}, false
}

func pngSymbol(name string) string {
	return "icon_" + name + "_png"
}

func bitmapSymbol(name string) string {
	return "icon_" + name + "_bitmap"
}

func writeArray(b *bytes.Buffer, name string, data []byte, cols int) {
	fmt.Fprintf(b, "static const uint8_t PROGMEM %s[] = {\n", name)
	values := make([]string, 0, cols)
	for i := 0; i < len(data); i += cols {
		end := i + cols
		if end > len(data) {
			end = len(data)
		}
		values = values[:0]
		for _, v := range data[i:end] {
			values = append(values, fmt.Sprintf("0x%02X", v))
		}
		fmt.Fprintf(b, "  %s,\n", strings.Join(values, ", "))
	}
	b.WriteString("};\n")
}

// MarshalText encodes the table as C++ source and returns the result. The
// output depends only on the icons and their order.
func (t *Table) MarshalText() ([]byte, error) {
	if len(t.icons) == 0 {
		return nil, errors.New("no icons")
	}

	b := new(bytes.Buffer)

	fmt.Fprintf(b, "#include \"%s\"\n\n", Include)
	b.WriteString("// Auto-generated icon arrays\n")
	b.WriteString("// DO NOT EDIT - regenerate with iconsheet generate\n\n")

	// Write out the arrays
	for _, icon := range t.icons {
		fmt.Fprintf(b, "// %s PNG data (%d bytes)\n", icon.Name, len(icon.PNG))
		writeArray(b, pngSymbol(icon.Name), icon.PNG, blobColumns)
		b.WriteString("\n")
		fmt.Fprintf(b, "// %s monochrome bitmap (%dx%d = %d bytes)\n", icon.Name, bitmap.Width, bitmap.Height, bitmap.Size)
		writeArray(b, bitmapSymbol(icon.Name), icon.Bitmap, bitmapColumns)
		b.WriteString("\n")
	}

	// Write out the registry
	b.WriteString("// Icon registry\n")
	b.WriteString("const EmbeddedIcon EMBEDDED_ICONS[] PROGMEM = {\n")
	for _, icon := range t.icons {
		fmt.Fprintf(b, "  {\"%s\", %s, %d, %s, %d, %d},\n", icon.Name, pngSymbol(icon.Name), len(icon.PNG), bitmapSymbol(icon.Name), bitmap.Width, bitmap.Height)
	}
	b.WriteString("};\n\n")
	fmt.Fprintf(b, "const size_t EMBEDDED_ICONS_COUNT = %d;\n\n", len(t.icons))

	// Write out the lookup function
	fmt.Fprintf(b, `const EmbeddedIcon* findEmbeddedIcon(const char* name) {
  for (size_t i = 0; i < EMBEDDED_ICONS_COUNT; i++) {
    char iconName[%d];
    strcpy_P(iconName, (PGM_P)pgm_read_ptr(&EMBEDDED_ICONS[i].name));
    if (strcmp(iconName, name) == 0) {
      return &EMBEDDED_ICONS[i];
    }
  }
  return nullptr;
}
`, MaxNameLength+1)

	return b.Bytes(), nil
}
