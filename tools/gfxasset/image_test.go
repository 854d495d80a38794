package main

import (
	"bytes"
	"go/parser"
	"go/token"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/TheBigEye/monarch-os/device/video/asset"
	"github.com/TheBigEye/monarch-os/device/video/vga"
)

// paletteImage returns a w x h image whose pixel (x, y) holds palette entry
// (x+y*w)%16.
func paletteImage(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, vga.DefaultPalette[(x+y*w)%vga.NumColors])
		}
	}
	return img
}

func TestQuantizeAndPack(t *testing.T) {
	specs := []struct {
		w, h int
		exp  []byte
	}{
		{4, 2, []byte{0x01, 0x23, 0x45, 0x67}},
		{3, 1, []byte{0x01, 0x20}},
		{3, 2, []byte{0x01, 0x20, 0x34, 0x50}},
		{16, 1, []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}},
	}

	for specIndex, spec := range specs {
		for _, dither := range []bool{false, true} {
			got := packPaletted(quantize(paletteImage(spec.w, spec.h), dither))
			if !bytes.Equal(got, spec.exp) {
				t.Errorf("[spec %d] dither=%t: expected packed data % x; got % x", specIndex, dither, spec.exp, got)
			}
		}
	}
}

func TestQuantizeNearest(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{R: 0xf0, G: 0x10, B: 0x08, A: 0xff})
	img.Set(1, 0, color.RGBA{R: 0x08, G: 0x08, B: 0xa0, A: 0xff})

	p := quantize(img, false)
	if got := vga.Color(p.ColorIndexAt(0, 0)); got != vga.LightRed && got != vga.Red {
		t.Errorf("expected a red entry for (0, 0); got %d", got)
	}
	if got := vga.Color(p.ColorIndexAt(1, 0)); got != vga.Blue {
		t.Errorf("expected blue for (1, 0); got %d", got)
	}
}

func TestQuantizeSubImageOrigin(t *testing.T) {
	img := paletteImage(8, 8).SubImage(image.Rect(4, 2, 6, 3))

	got := packPaletted(quantize(img, false))
	// (4,2) and (5,2) hold entries 20%16 and 21%16.
	if exp := []byte{0x45}; !bytes.Equal(got, exp) {
		t.Fatalf("expected packed data % x; got % x", exp, got)
	}
}

func TestCountColors(t *testing.T) {
	if got := countColors(paletteImage(4, 4), 17); got != 16 {
		t.Errorf("expected 16 colors; got %d", got)
	}

	if got := countColors(paletteImage(2, 1), 17); got != 2 {
		t.Errorf("expected 2 colors; got %d", got)
	}

	gradient := image.NewRGBA(image.Rect(0, 0, 64, 1))
	for x := 0; x < 64; x++ {
		gradient.Set(x, 0, color.RGBA{R: uint8(x * 4), A: 0xff})
	}
	if got := countColors(gradient, 17); got != 17 {
		t.Errorf("expected counting to stop at the limit; got %d", got)
	}
}

func TestFitImage(t *testing.T) {
	src := paletteImage(40, 20)

	specs := []struct {
		width, height int
		expW, expH    int
	}{
		{0, 0, 40, 20},
		{40, 20, 40, 20},
		{20, 0, 20, 10},
		{0, 5, 10, 5},
		{8, 8, 8, 8},
		{1, 0, 1, 1},
	}

	for specIndex, spec := range specs {
		b := fitImage(src, spec.width, spec.height).Bounds()
		if b.Dx() != spec.expW || b.Dy() != spec.expH {
			t.Errorf("[spec %d] expected %dx%d; got %dx%d", specIndex, spec.expW, spec.expH, b.Dx(), b.Dy())
		}
	}
}

func TestParseHexColor(t *testing.T) {
	specs := []struct {
		input  string
		exp    color.RGBA
		expErr bool
	}{
		{"#fff", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}, false},
		{"#a50", color.RGBA{R: 0xaa, G: 0x55, B: 0x00, A: 0xff}, false},
		{"#0000aa", color.RGBA{R: 0x00, G: 0x00, B: 0xaa, A: 0xff}, false},
		{"#12", color.RGBA{}, true},
		{"#zzz", color.RGBA{}, true},
		{"ff00ff", color.RGBA{}, true},
	}

	for specIndex, spec := range specs {
		got, err := parseHexColor(spec.input)
		if spec.expErr {
			if err == nil {
				t.Errorf("[spec %d] expected an error for %q", specIndex, spec.input)
			}
			continue
		}

		if err != nil {
			t.Errorf("[spec %d] unexpected error: %v", specIndex, err)
			continue
		}
		if got != spec.exp {
			t.Errorf("[spec %d] expected %v; got %v", specIndex, spec.exp, got)
		}
	}
}

func TestGoIdent(t *testing.T) {
	specs := []struct {
		input, exp string
	}{
		{"butterfly", "butterfly"},
		{"Boot-Logo", "bootLogo"},
		{"9lives", "lives"},
		{"logo_2", "logo2"},
		{"", "bitmap"},
		{"--", "bitmap"},
	}

	for specIndex, spec := range specs {
		if got := goIdent(spec.input); got != spec.exp {
			t.Errorf("[spec %d] expected %q; got %q", specIndex, spec.exp, got)
		}
	}
}

func TestImageValidate(t *testing.T) {
	cmd := imageCmd{Transparent: "#ff55ff"}
	if err := cmd.Validate(nil); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cmd.key == nil || *cmd.key != vga.LightMagenta {
		t.Fatalf("expected the transparent color to map to light magenta; got %v", cmd.key)
	}

	cmd = imageCmd{Width: -1}
	if err := cmd.Validate(nil); err == nil {
		t.Fatal("expected an error for a negative width")
	}

	cmd = imageCmd{Transparent: "pink"}
	if err := cmd.Validate(nil); err == nil {
		t.Fatal("expected an error for an invalid transparent color")
	}
}

func TestGenBitmapSource(t *testing.T) {
	bm := &asset.Bitmap{
		Name:             "boot-logo",
		Width:            3,
		Height:           2,
		Transparent:      true,
		TransparentIndex: vga.Blue,
		Data:             []byte{0x12, 0x30, 0x45, 0x60},
	}

	src, err := genBitmapSource(bm, "AlignRight")
	if err != nil {
		t.Fatal(err)
	}

	if _, err = parser.ParseFile(token.NewFileSet(), "", src, 0); err != nil {
		t.Fatalf("generated source does not parse: %v\n%s", err, src)
	}

	for _, exp := range []string{
		"// Code generated by gfxasset; DO NOT EDIT.",
		"package asset",
		"var bootLogo3x2 = Bitmap{",
		`Name:             "boot-logo",`,
		"Align:            AlignRight,",
		"TransparentIndex: vga.Blue,",
		"0x12, 0x30, 0x45, 0x60,",
		"Register(&bootLogo3x2)",
	} {
		if !strings.Contains(string(src), exp) {
			t.Errorf("expected generated source to contain %q; got:\n%s", exp, src)
		}
	}
}

func TestGenBitmapSourceInvalid(t *testing.T) {
	bm := &asset.Bitmap{Name: "short", Width: 4, Height: 4, Data: []byte{0x00}}
	if _, err := genBitmapSource(bm, "AlignLeft"); err == nil {
		t.Fatal("expected an error for a bitmap with missing pixels")
	}
}
