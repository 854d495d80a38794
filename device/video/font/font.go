// Package font renders fixed-size 1bpp bitmap fonts onto surfaces and
// screens.
package font

import (
	"github.com/TheBigEye/monarch-os/device/video/gfx"
	"github.com/TheBigEye/monarch-os/device/video/vga"
	"github.com/TheBigEye/monarch-os/kernel"
)

const (
	// NumGlyphs is the number of glyphs in a font table.
	NumGlyphs = 256

	// MaxGlyphSize is the largest supported glyph width and height.
	MaxGlyphSize = 8
)

var (
	// ErrInvalidGlyphSize is returned when a glyph dimension is outside
	// [1, MaxGlyphSize].
	ErrInvalidGlyphSize = &kernel.Error{Module: "font", Message: "glyph dimensions must be between 1 and 8"}

	// ErrShortTable is returned when a glyph table holds fewer than
	// NumGlyphs glyphs.
	ErrShortTable = &kernel.Error{Module: "font", Message: "glyph table is shorter than 256 glyphs"}

	// ErrNoFont is returned by text operations invoked with a nil font.
	ErrNoFont = &kernel.Error{Module: "font", Message: "no font"}
)

// Target receives rendered glyph pixels. It is implemented by gfx.Surface
// and by the planar driver.
type Target interface {
	Dimensions() (int, int)
	SetPixel(c vga.Color, x, y int)
}

// Font describes a 1bpp bitmap font. Each glyph is CharHeight bytes, one
// per row, whose CharWidth most significant bits hold the pixels from left
// to right. A Font references its table and must not be modified after
// creation.
type Font struct {
	// The name used to look up the font in the registry.
	Name string

	// The glyph dimensions in pixels, before scaling.
	CharWidth  int
	CharHeight int

	// Integer scale applied to every rendered glyph.
	Scale int

	// NumGlyphs * CharHeight bytes of glyph rows.
	Data []byte
}

// New returns a font backed by table. A scale below 1 is treated as 1.
func New(table []byte, charWidth, charHeight, scale int) (*Font, *kernel.Error) {
	if charWidth < 1 || charWidth > MaxGlyphSize || charHeight < 1 || charHeight > MaxGlyphSize {
		return nil, ErrInvalidGlyphSize
	}
	if len(table) < NumGlyphs*charHeight {
		return nil, ErrShortTable
	}
	if scale < 1 {
		scale = 1
	}

	return &Font{
		CharWidth:  charWidth,
		CharHeight: charHeight,
		Scale:      scale,
		Data:       table,
	}, nil
}

// WithScale returns a copy of f sharing its glyph table but rendering at
// the given scale.
func (f *Font) WithScale(scale int) *Font {
	if scale < 1 {
		scale = 1
	}
	cp := *f
	cp.Scale = scale
	return &cp
}

// Glyph returns the rows of the glyph for ch.
func (f *Font) Glyph(ch byte) []byte {
	start := int(ch) * f.CharHeight
	return f.Data[start : start+f.CharHeight]
}

// CellSize returns the size of a rendered glyph at the font scale.
func (f *Font) CellSize() (int, int) {
	return f.CharWidth * f.Scale, f.CharHeight * f.Scale
}

// RenderGlyph draws ch with its top-left corner at (x, y). Set bits are
// drawn with fg and clear bits with bg, each as a scale x scale block.
// Pixels outside dst are clipped by dst.
func RenderGlyph(dst Target, f *Font, ch byte, x, y int, fg, bg vga.Color, scale int) {
	if dst == nil || f == nil {
		return
	}
	if scale < 1 {
		scale = 1
	}

	for row, bits := range f.Glyph(ch) {
		py := y + row*scale
		for col := 0; col < f.CharWidth; col++ {
			c := bg
			if bits&(0x80>>uint(col)) != 0 {
				c = fg
			}

			px := x + col*scale
			for sy := 0; sy < scale; sy++ {
				for sx := 0; sx < scale; sx++ {
					dst.SetPixel(c, px+sx, py+sy)
				}
			}
		}
	}
}

// RenderText returns a new surface holding text rendered at the font scale.
// The caller owns the surface and must Destroy it. Each byte of text is
// one glyph.
func RenderText(f *Font, text string, fg, bg vga.Color) (*gfx.Surface, *kernel.Error) {
	if f == nil {
		return nil, ErrNoFont
	}
	return renderText(f, text, fg, bg, f.Scale)
}

// RenderTextScaled works like RenderText but multiplies the font scale by
// factor. The resulting scale is truncated and never drops below 1.
func RenderTextScaled(f *Font, text string, fg, bg vga.Color, factor float32) (*gfx.Surface, *kernel.Error) {
	if f == nil {
		return nil, ErrNoFont
	}

	scale := int(float32(f.Scale) * factor)
	if scale < 1 {
		scale = 1
	}
	return renderText(f, text, fg, bg, scale)
}

func renderText(f *Font, text string, fg, bg vga.Color, scale int) (*gfx.Surface, *kernel.Error) {
	cellW, cellH := f.CharWidth*scale, f.CharHeight*scale

	s, err := gfx.NewSurface(len(text)*cellW, cellH)
	if err != nil {
		return nil, err
	}

	s.Fill(bg)
	if fg == bg {
		return s, nil
	}

	for i := 0; i < len(text); i++ {
		RenderGlyph(s, f, text[i], i*cellW, 0, fg, bg, scale)
	}
	return s, nil
}

// DrawText renders text and blits it into dst at the origin of dstRect,
// using the same rules as gfx.Blit. A nil dst or dstRect is a no-op.
func DrawText(dst *gfx.Surface, f *Font, text string, dstRect *gfx.Rect, fg, bg vga.Color) *kernel.Error {
	if dst == nil || dstRect == nil {
		return nil
	}

	s, err := RenderText(f, text, fg, bg)
	if err != nil {
		return err
	}
	defer s.Destroy()

	gfx.Blit(s, nil, dst, dstRect)
	return nil
}

// MeasureText returns the size of the surface RenderText allocates for
// text.
func MeasureText(f *Font, text string) (int, int) {
	if f == nil {
		return 0, 0
	}
	cellW, cellH := f.CellSize()
	return len(text) * cellW, cellH
}
