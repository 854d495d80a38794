package font

import "github.com/TheBigEye/monarch-os/device/video/vga"

// tabCells is the number of cells a tab advances the pen.
const tabCells = 4

// DrawString draws s directly onto dst starting at (x, y). A newline moves
// the pen one row down, a tab advances it by four cells and a carriage
// return moves it back to the starting column. Text that reaches the right
// edge continues on the next row; drawing stops at the bottom edge.
func DrawString(dst Target, f *Font, s string, x, y int, fg, bg vga.Color) {
	if dst == nil || f == nil {
		return
	}

	width, height := dst.Dimensions()
	cellW, cellH := f.CellSize()
	originX := x

	for i := 0; i < len(s) && y < height; i++ {
		switch s[i] {
		case '\n':
			y += cellH
		case '\t':
			x += tabCells * cellW
		case '\r':
			x = originX
		default:
			RenderGlyph(dst, f, s[i], x, y, fg, bg, f.Scale)
			x += cellW
		}

		if x >= width {
			x = originX
			y += cellH
		}
	}
}

// DrawCharset draws every printable glyph of f in a grid, leaving an empty
// cell between glyphs and a one pixel gap between rows.
func DrawCharset(dst Target, f *Font, fg, bg vga.Color) {
	if dst == nil || f == nil {
		return
	}

	width, height := dst.Dimensions()
	cellW, cellH := f.CellSize()
	x, y := 0, cellH

	for ch := 32; ch < 255; ch++ {
		RenderGlyph(dst, f, byte(ch), x, y, fg, bg, f.Scale)

		x += 2 * cellW
		if x+cellW > width {
			x = 0
			y += cellH + 1
			if y+cellH > height {
				y = 0
			}
		}
	}
}
