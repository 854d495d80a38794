package font

const (
	romGlyphHeight = 16

	// Rows 2 through 13 of a ROM glyph hold all of its pixels.
	romInkTop    = 2
	romInkHeight = 12
)

// condense squeezes the inked rows of each 8x16 ROM glyph into height
// rows. Every output row ORs together the source rows it covers so that
// thin strokes survive.
func condense(rom []byte, height int) []byte {
	table := make([]byte, NumGlyphs*height)

	for ch := 0; ch < len(rom)/romGlyphHeight; ch++ {
		src := rom[ch*romGlyphHeight : (ch+1)*romGlyphHeight]
		dst := table[ch*height : (ch+1)*height]

		for row := range dst {
			lo := romInkTop + row*romInkHeight/height
			hi := romInkTop + (row+1)*romInkHeight/height
			for r := lo; r < hi; r++ {
				dst[row] |= src[r]
			}
		}
	}

	return table
}

func init() {
	f, err := New(condense(romGlyphs[:], 8), 8, 8, 1)
	if err != nil {
		panic(err)
	}
	f.Name = DefaultName
	Register(f)
}
