package main

import (
	"bytes"
	"fmt"
	"image"
	"log/slog"
	"unicode"

	gfxfont "github.com/TheBigEye/monarch-os/device/video/font"
	"github.com/alecthomas/kong"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

var faces = map[string]font.Face{
	"basic7x13":        basicfont.Face7x13,
	"inconsolata8x16":  inconsolata.Regular8x16,
	"inconsolata8x16b": inconsolata.Bold8x16,
}

type fontCmd struct {
	Face       string `help:"Face to rasterize" enum:"basic7x13,inconsolata8x16,inconsolata8x16b" default:"basic7x13"`
	CharWidth  int    `help:"Glyph width in pixels" default:"8"`
	CharHeight int    `help:"Glyph height in pixels" default:"8"`
	Name       string `help:"Name used to register the font"`
	Out        string `help:"Output file or - for stdout" short:"o" default:"-"`
}

func (c *fontCmd) Validate(kctx *kong.Context) error {
	if c.CharWidth < 1 || c.CharWidth > gfxfont.MaxGlyphSize || c.CharHeight < 1 || c.CharHeight > gfxfont.MaxGlyphSize {
		return fmt.Errorf("glyph dimensions must be between 1 and %d; got %dx%d", gfxfont.MaxGlyphSize, c.CharWidth, c.CharHeight)
	}

	if c.Name == "" {
		c.Name = fmt.Sprintf("%s-%dx%d", c.Face, c.CharWidth, c.CharHeight)
	}
	return nil
}

func (c *fontCmd) Run() error {
	slog.Info("rasterizing", "face", c.Face, "width", c.CharWidth, "height", c.CharHeight)

	table := rasterizeFace(faces[c.Face], c.CharWidth, c.CharHeight)
	if _, err := gfxfont.New(table, c.CharWidth, c.CharHeight, 1); err != nil {
		return fmt.Errorf("generated table rejected: %s", err.Message)
	}

	src, err := genFontSource(c.Name, table, c.CharWidth, c.CharHeight)
	if err != nil {
		return err
	}
	return writeOutput(c.Out, src)
}

// rasterizeFace draws every printable Latin-1 character of face into a cell
// the size of the face and fits the cell into a width x height glyph. The
// result is a table of gfxfont.NumGlyphs glyphs, one MSB-first byte per row.
func rasterizeFace(face font.Face, width, height int) []byte {
	var (
		metrics = face.Metrics()
		cellH   = metrics.Height.Ceil()
		table   = make([]byte, gfxfont.NumGlyphs*height)
		glyph   = image.NewAlpha(image.Rect(0, 0, width, height))
	)

	for ch := 0; ch < gfxfont.NumGlyphs; ch++ {
		r := rune(ch)
		if !unicode.IsPrint(r) || r == ' ' {
			continue
		}

		advance, ok := face.GlyphAdvance(r)
		if !ok {
			continue
		}

		cell := image.NewAlpha(image.Rect(0, 0, max(1, advance.Ceil()), cellH))
		d := font.Drawer{
			Dst:  cell,
			Src:  image.Opaque,
			Face: face,
			Dot:  fixed.P(0, metrics.Ascent.Ceil()),
		}
		d.DrawString(string(r))

		draw.NearestNeighbor.Scale(glyph, glyph.Bounds(), cell, cell.Bounds(), draw.Src, nil)

		rows := table[ch*height : (ch+1)*height]
		for y := range rows {
			for x := 0; x < width; x++ {
				if glyph.AlphaAt(x, y).A >= 0x80 {
					rows[y] |= 0x80 >> uint(x)
				}
			}
		}
	}

	return table
}

func genFontSource(name string, table []byte, width, height int) ([]byte, error) {
	var (
		buf     bytes.Buffer
		varName = fmt.Sprintf("%sTable", goIdent(name))
	)

	buf.WriteString(generatedHeader)
	fmt.Fprintf(&buf, "package font\n\nvar %s = [NumGlyphs * %d]byte{\n", varName, height)
	writeHexBytes(&buf, table)
	buf.WriteString("}\n\n")
	fmt.Fprintf(&buf, `func init() {
f, err := New(%s[:], %d, %d, 1)
if err != nil {
panic(err)
}
f.Name = %q
Register(f)
}
`, varName, width, height, name)

	return formatSource(buf.Bytes())
}
