/*
Package iconsheet is a library for turning a sprite sheet of icons into the
byte arrays embedded in the device firmware.

A manifest names each icon and where it sits on the sheet. Every icon is
cropped and encoded twice, as a PNG for web clients and as a 32 by 32
monochrome bitmap for the OLED, and the lot is written out as a single
generated C++ source file.
*/
package iconsheet

import (
	"io/ioutil"
	"log"
)

// Generator encodes the icons described by a manifest
type Generator struct {
	manifest *Manifest
	logger   *log.Logger
}

// New returns a Generator for the manifest. A nil logger discards all
// output.
func New(manifest *Manifest, logger *log.Logger) *Generator {
	return &Generator{
		manifest: manifest,
		logger:   orDiscard(logger),
	}
}

func orDiscard(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.New(ioutil.Discard, "", 0)
	}
	return logger
}
