package vga

import (
	"image/color"
	"testing"
)

func TestOffset(t *testing.T) {
	specs := []struct {
		x, y    int
		expOff  uint32
		expMask uint8
	}{
		{0, 0, 0, 0x80},
		{7, 0, 0, 0x01},
		{8, 0, 1, 0x80},
		{3, 1, 80, 0x10},
		{639, 479, PlaneSize - 1, 0x01},
	}

	for specIndex, spec := range specs {
		off, mask := Offset(spec.x, spec.y)
		if off != spec.expOff || mask != spec.expMask {
			t.Errorf("[spec %d] expected Offset(%d, %d) to return (%d, 0x%x); got (%d, 0x%x)", specIndex, spec.x, spec.y, spec.expOff, spec.expMask, off, mask)
		}
	}
}

func TestInBounds(t *testing.T) {
	specs := []struct {
		x, y int
		exp  bool
	}{
		{0, 0, true},
		{639, 479, true},
		{640, 0, false},
		{0, 480, false},
		{-1, 5, false},
		{5, -1, false},
	}

	for specIndex, spec := range specs {
		if got := InBounds(spec.x, spec.y); got != spec.exp {
			t.Errorf("[spec %d] expected InBounds(%d, %d) to be %t; got %t", specIndex, spec.x, spec.y, spec.exp, got)
		}
	}
}

func TestColorByte(t *testing.T) {
	specs := []struct {
		c   Color
		exp uint8
	}{
		{Black, 0x00},
		{Blue, 0x11},
		{LightRed, 0xcc},
		{White, 0xff},
		{Color(0x1e), 0xee},
	}

	for specIndex, spec := range specs {
		if got := spec.c.Byte(); got != spec.exp {
			t.Errorf("[spec %d] expected Byte() to return 0x%x; got 0x%x", specIndex, spec.exp, got)
		}
	}

	for c := Color(0); c < NumColors; c++ {
		if !c.Valid() {
			t.Errorf("expected color %d to be valid", c)
		}
		if got := ColorFromByte(c.Byte()); got != c {
			t.Errorf("expected ColorFromByte(0x%x) to return %d; got %d", c.Byte(), c, got)
		}
	}

	if Color(16).Valid() {
		t.Error("expected color 16 to be invalid")
	}
}

func TestNearest(t *testing.T) {
	for c := Color(0); c < NumColors; c++ {
		if got := Nearest(DefaultPalette[c]); got != c {
			t.Errorf("expected Nearest(palette[%d]) to return %d; got %d", c, c, got)
		}
	}

	if got := Nearest(color.RGBA{R: 250, G: 10, B: 5, A: 255}); got != Red && got != LightRed {
		t.Errorf("expected a red shade to map to a red palette entry; got %d", got)
	}
}

func TestBlend(t *testing.T) {
	for c := Color(0); c < NumColors; c++ {
		if got := Blend(c, c); got != c {
			t.Errorf("expected Blend(%d, %d) to return %d; got %d", c, c, c, got)
		}
	}

	if got := Blend(Black, White); got != DarkGray {
		t.Errorf("expected Blend(Black, White) to return DarkGray; got %d", got)
	}

	if Blend(Black, White) != Blend(White, Black) {
		t.Error("expected an even mix to be symmetric")
	}
}
