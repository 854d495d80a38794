package main

import (
	"image"
	"image/color"
	"strconv"
	"strings"
)

const (
	csi = "\x1b["

	cursorHome      = csi + "H"
	clearScreen     = csi + "2J"
	hideCursor      = csi + "?25l"
	showCursor      = csi + "?25h"
	enableAltScreen = csi + "?1049h"
	exitAltScreen   = csi + "?1049l"
	resetSGR        = csi + "0m"

	// upperHalfBlock paints the top pixel of a cell with the foreground
	// color and the bottom one with the background color.
	upperHalfBlock = '▀'
)

// ansiRenderer turns adapter snapshots into rows of half-block characters
// with 24-bit colors. Each terminal cell shows two vertically stacked
// pixels sampled from the snapshot.
type ansiRenderer struct {
	cols, rows int
	sb         strings.Builder
}

func newANSIRenderer(cols, rows int) *ansiRenderer {
	return &ansiRenderer{cols: max(1, cols), rows: max(1, rows)}
}

// resize changes the terminal size used for the following frames.
func (r *ansiRenderer) resize(cols, rows int) {
	r.cols, r.rows = max(1, cols), max(1, rows)
}

// Render returns the escape sequences that draw img from the top-left
// corner of the terminal.
func (r *ansiRenderer) Render(img *image.Paletted) string {
	var (
		b       = img.Bounds()
		pixRows = r.rows * 2
		prevFg  = -1
		prevBg  = -1
	)

	r.sb.Reset()
	r.sb.WriteString(cursorHome)

	for row := 0; row < r.rows; row++ {
		if row != 0 {
			r.sb.WriteString("\r\n")
		}

		topY := b.Min.Y + (row*2)*b.Dy()/pixRows
		botY := b.Min.Y + (row*2+1)*b.Dy()/pixRows
		for col := 0; col < r.cols; col++ {
			x := b.Min.X + col*b.Dx()/r.cols
			fg := int(img.ColorIndexAt(x, topY))
			bg := int(img.ColorIndexAt(x, botY))

			if fg != prevFg || bg != prevBg {
				writeCellSGR(&r.sb, img.Palette[fg], img.Palette[bg])
				prevFg, prevBg = fg, bg
			}
			r.sb.WriteRune(upperHalfBlock)
		}
	}

	r.sb.WriteString(resetSGR)
	return r.sb.String()
}

// writeCellSGR selects fg as the foreground and bg as the background color
// in a single combined SGR sequence.
func writeCellSGR(sb *strings.Builder, fg, bg color.Color) {
	fr, fgG, fb := rgb8(fg)
	br, bgG, bb := rgb8(bg)

	sb.WriteString(csi + "0;38;2;")
	sb.WriteString(strconv.Itoa(int(fr)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(fgG)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(fb)))
	sb.WriteString(";48;2;")
	sb.WriteString(strconv.Itoa(int(br)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(bgG)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(bb)))
	sb.WriteByte('m')
}

func rgb8(c color.Color) (uint8, uint8, uint8) {
	r, g, b, _ := c.RGBA()
	return uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)
}

// toRGBA expands a paletted image into dst as tightly packed RGBA bytes.
// dst must hold 4 bytes per pixel.
func toRGBA(dst []byte, img *image.Paletted) {
	var lut [256][4]byte
	for i, c := range img.Palette {
		r, g, b := rgb8(c)
		lut[i] = [4]byte{r, g, b, 0xff}
	}

	b := img.Bounds()
	i := 0
	for y := 0; y < b.Dy(); y++ {
		for _, idx := range img.Pix[y*img.Stride : y*img.Stride+b.Dx()] {
			copy(dst[i:i+4], lut[idx][:])
			i += 4
		}
	}
}
