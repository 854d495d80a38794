package main

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"github.com/TheBigEye/monarch-os/device/video/asset"
	"github.com/TheBigEye/monarch-os/device/video/planar"
	"github.com/TheBigEye/monarch-os/device/video/vga"
	"github.com/alecthomas/kong"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var colorNames = [vga.NumColors]string{
	"Black", "Blue", "Green", "Cyan", "Red", "Magenta", "Brown", "LightGray",
	"DarkGray", "LightBlue", "LightGreen", "LightCyan", "LightRed", "LightMagenta", "Yellow", "White",
}

var alignNames = map[string]string{
	"left":   "AlignLeft",
	"center": "AlignCenter",
	"right":  "AlignRight",
}

type imageCmd struct {
	Input       string `arg:"" help:"Image to convert (png, gif, jpeg, bmp, tiff or webp)" type:"existingfile"`
	Out         string `help:"Output file or - for stdout" short:"o" default:"-"`
	Format      string `help:"Output format" enum:"go,bin" default:"go"`
	Name        string `help:"Name used to register the bitmap" default:"logo"`
	Width       int    `help:"Resize to this width; 0 keeps the aspect ratio" group:"resize"`
	Height      int    `help:"Resize to this height; 0 keeps the aspect ratio" group:"resize"`
	Align       string `help:"Horizontal alignment on screen" enum:"left,center,right" default:"center"`
	Transparent string `help:"Color (#RGB or #RRGGBB) whose palette entry is not drawn"`
	Dither      string `help:"Floyd-Steinberg dithering; auto dithers images with more than 16 colors" enum:"auto,on,off" default:"auto"`

	key *vga.Color `kong:"-"`
}

func (c *imageCmd) Validate(kctx *kong.Context) error {
	if c.Width < 0 || c.Height < 0 {
		return fmt.Errorf("invalid resize dimensions %dx%d", c.Width, c.Height)
	}

	if c.Transparent != "" {
		rgb, err := parseHexColor(c.Transparent)
		if err != nil {
			return err
		}
		key := vga.Nearest(rgb)
		c.key = &key
	}

	return nil
}

func (c *imageCmd) Run() error {
	logger := slog.Default().With("file", c.Input)

	img, err := loadImage(c.Input)
	if err != nil {
		return err
	}

	img = fitImage(img, c.Width, c.Height)
	bounds := img.Bounds()
	logger.Info("converting", "width", bounds.Dx(), "height", bounds.Dy())

	dither := c.Dither == "on"
	if c.Dither == "auto" {
		dither = countColors(img, vga.NumColors+1) > vga.NumColors
	}
	if dither {
		logger.Info("applying dithering")
	}

	bm := &asset.Bitmap{
		Name:   c.Name,
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		Data:   packPaletted(quantize(img, dither)),
	}
	if c.key != nil {
		bm.Transparent = true
		bm.TransparentIndex = *c.key
	}

	if c.Format == "bin" {
		return writeOutput(c.Out, bm.Data)
	}

	src, err := genBitmapSource(bm, alignNames[c.Align])
	if err != nil {
		return err
	}
	return writeOutput(c.Out, src)
}

func loadImage(name string) (image.Image, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, fmt.Errorf("could not open image %q: %w", name, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode image %q: %w", name, err)
	}
	return img, nil
}

// fitImage scales img to width x height. A zero dimension is derived from
// the other one so the aspect ratio is kept.
func fitImage(img image.Image, width, height int) image.Image {
	sb := img.Bounds()
	switch {
	case width == 0 && height == 0:
		return img
	case width == 0:
		width = max(1, sb.Dx()*height/sb.Dy())
	case height == 0:
		height = max(1, sb.Dy()*width/sb.Dx())
	}

	if width == sb.Dx() && height == sb.Dy() {
		return img
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, sb, draw.Src, nil)
	return dst
}

// countColors returns the number of distinct opaque colors in img, stopping
// once limit is reached.
func countColors(img image.Image, limit int) int {
	seen := make(map[color.RGBA]struct{}, limit)
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			seen[color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(bl >> 8)}] = struct{}{}
			if len(seen) >= limit {
				return len(seen)
			}
		}
	}
	return len(seen)
}

// quantize maps img onto the default VGA palette.
func quantize(img image.Image, dither bool) *image.Paletted {
	sb := img.Bounds()
	dst := image.NewPaletted(image.Rect(0, 0, sb.Dx(), sb.Dy()), vga.DefaultPalette)

	var drawer draw.Drawer = draw.Src
	if dither {
		drawer = draw.FloydSteinberg
	}
	drawer.Draw(dst, dst.Bounds(), img, sb.Min)
	return dst
}

// packPaletted converts a paletted image with an origin of (0, 0) into a
// packed 4bpp bitmap.
func packPaletted(p *image.Paletted) []byte {
	w, h := p.Rect.Dx(), p.Rect.Dy()

	indices := make([]byte, w*h)
	for y := 0; y < h; y++ {
		copy(indices[y*w:(y+1)*w], p.Pix[y*p.Stride:y*p.Stride+w])
	}

	out := make([]byte, planar.PackedStride(w)*h)
	planar.Pack(out, indices, w, h)
	return out
}

func genBitmapSource(bm *asset.Bitmap, align string) ([]byte, error) {
	if !bm.Valid() {
		return nil, fmt.Errorf("bitmap %q has no pixels", bm.Name)
	}

	var (
		buf     bytes.Buffer
		varName = fmt.Sprintf("%s%dx%d", goIdent(bm.Name), bm.Width, bm.Height)
	)

	buf.WriteString(generatedHeader)
	fmt.Fprintf(&buf, `package asset

import "github.com/TheBigEye/monarch-os/device/video/vga"

var %s = Bitmap{
Name: %q,
Width: %d,
Height: %d,
Align: %s,
Transparent: %t,
TransparentIndex: vga.%s,
Data: []byte{
`, varName, bm.Name, bm.Width, bm.Height, align, bm.Transparent, colorNames[bm.TransparentIndex&0x0f])
	writeHexBytes(&buf, bm.Data)
	buf.WriteString("},\n}\n\n")
	fmt.Fprintf(&buf, "func init() {\nRegister(&%s)\n}\n", varName)

	return formatSource(buf.Bytes())
}

// goIdent turns name into an unexported Go identifier by dropping every
// character that is not a letter or a digit.
func goIdent(name string) string {
	var out []byte
	for i := 0; i < len(name); i++ {
		ch := name[i]
		switch {
		case ch >= 'a' && ch <= 'z', ch >= 'A' && ch <= 'Z':
		case ch >= '0' && ch <= '9' && len(out) != 0:
		default:
			continue
		}
		out = append(out, ch)
	}

	if len(out) == 0 {
		return "bitmap"
	}
	if out[0] >= 'A' && out[0] <= 'Z' {
		out[0] += 'a' - 'A'
	}
	return string(out)
}

func parseHexColor(s string) (color.RGBA, error) {
	c := color.RGBA{A: 0xff}
	switch len(s) {
	case 4:
		n, err := fmt.Sscanf(s, "#%1x%1x%1x", &c.R, &c.G, &c.B)
		if err != nil || n != 3 {
			return c, fmt.Errorf("could not read color %q: %v", s, err)
		}
		c.R |= c.R << 4
		c.G |= c.G << 4
		c.B |= c.B << 4
	case 7:
		n, err := fmt.Sscanf(s, "#%2x%2x%2x", &c.R, &c.G, &c.B)
		if err != nil || n != 3 {
			return c, fmt.Errorf("could not read color %q: %v", s, err)
		}
	default:
		return c, fmt.Errorf("invalid color %q, should be #RGB or #RRGGBB", s)
	}
	return c, nil
}
