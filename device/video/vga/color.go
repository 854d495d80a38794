package vga

import "image/color"

// Color is a 4-bit palette index in [0, 15].
type Color uint8

// The default 16 color palette entries.
const (
	Black Color = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

// NumColors is the number of palette entries.
const NumColors = 16

// Valid reports whether c fits in 4 bits.
func (c Color) Valid() bool {
	return c < NumColors
}

// Byte returns the hardware representation of c: the 4-bit index stored in
// both nibbles (LightRed -> 0xcc). Bits above the low nibble are dropped.
func (c Color) Byte() uint8 {
	n := uint8(c) & 0x0f
	return n<<4 | n
}

// ColorFromByte converts a hardware color byte back to a palette index by
// keeping its low nibble.
func ColorFromByte(b uint8) Color {
	return Color(b & 0x0f)
}

// DefaultPalette holds the RGB values the BIOS loads for mode 12h.
var DefaultPalette = color.Palette{
	color.RGBA{R: 0x00, G: 0x00, B: 0x00, A: 0xff}, /* black */
	color.RGBA{R: 0x00, G: 0x00, B: 0xaa, A: 0xff}, /* blue */
	color.RGBA{R: 0x00, G: 0xaa, B: 0x00, A: 0xff}, /* green */
	color.RGBA{R: 0x00, G: 0xaa, B: 0xaa, A: 0xff}, /* cyan */
	color.RGBA{R: 0xaa, G: 0x00, B: 0x00, A: 0xff}, /* red */
	color.RGBA{R: 0xaa, G: 0x00, B: 0xaa, A: 0xff}, /* magenta */
	color.RGBA{R: 0xaa, G: 0x55, B: 0x00, A: 0xff}, /* brown */
	color.RGBA{R: 0xaa, G: 0xaa, B: 0xaa, A: 0xff}, /* light gray */
	color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}, /* dark gray */
	color.RGBA{R: 0x55, G: 0x55, B: 0xff, A: 0xff}, /* light blue */
	color.RGBA{R: 0x55, G: 0xff, B: 0x55, A: 0xff}, /* light green */
	color.RGBA{R: 0x55, G: 0xff, B: 0xff, A: 0xff}, /* light cyan */
	color.RGBA{R: 0xff, G: 0x55, B: 0x55, A: 0xff}, /* light red */
	color.RGBA{R: 0xff, G: 0x55, B: 0xff, A: 0xff}, /* light magenta */
	color.RGBA{R: 0xff, G: 0xff, B: 0x55, A: 0xff}, /* yellow */
	color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, /* white */
}

// RGBA returns the default palette entry for c.
func (c Color) RGBA() (r, g, b, a uint32) {
	return DefaultPalette[c&0x0f].RGBA()
}

// Nearest returns the default palette entry closest to c in RGB space.
func Nearest(c color.Color) Color {
	return Color(DefaultPalette.Index(c))
}

// blendTable[src][dst] holds the palette entry closest to the 50% mix of
// src and dst.
var blendTable [NumColors][NumColors]Color

func init() {
	for src := 0; src < NumColors; src++ {
		sr, sg, sb, _ := DefaultPalette[src].RGBA()
		for dst := 0; dst < NumColors; dst++ {
			dr, dg, db, _ := DefaultPalette[dst].RGBA()
			blendTable[src][dst] = Nearest(color.RGBA64{
				R: uint16((sr + dr) / 2),
				G: uint16((sg + dg) / 2),
				B: uint16((sb + db) / 2),
				A: 0xffff,
			})
		}
	}
}

// Blend returns the palette entry closest to an even mix of src over dst.
func Blend(src, dst Color) Color {
	return blendTable[src&0x0f][dst&0x0f]
}
