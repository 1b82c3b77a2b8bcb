/*
Package bitmap implements a monochrome OLED icon decoder and encoder.

The format is defined as 32 by 32 pixels exactly, one bit per pixel. The file
is written as 128 bytes of pixel information with no header; 32 rows from top
to bottom, each row being four bytes of eight horizontally adjacent pixels.
The leftmost pixel of each group is stored in the least significant bit and a
set bit is a lit pixel.
*/
package bitmap

const (
	// Width and Height are the dimensions of every bitmap
	Width         = 32
	Height        = Width
	pixelsPerByte = 8
	bytesPerRow   = Width / pixelsPerByte

	// Size defines the expected size in bytes of each bitmap
	Size = bytesPerRow * Height

	// DefaultThreshold is the luminance a pixel must exceed to be lit
	DefaultThreshold = 128
)
