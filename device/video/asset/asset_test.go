package asset

import (
	"testing"

	"github.com/TheBigEye/monarch-os/device/video/vga"
)

func TestBestFit(t *testing.T) {
	defer func(origList []*Bitmap) {
		availableBitmaps = origList
	}(availableBitmaps)

	availableBitmaps = []*Bitmap{
		{Width: 64, Height: 64},
		{Width: 96, Height: 96},
		{Width: 128, Height: 128},
		{Width: 2048, Height: 128},
	}

	specs := []struct {
		screenW, screenH int
		expIndex         int
	}{
		{320, 200, 0},
		{640, 480, 0},
		{1024, 768, 0},
		{1280, 1024, 1},
		{3000, 3000, 2},
		{2500, 1600, 2},
	}

	for specIndex, spec := range specs {
		got := BestFit(spec.screenW, spec.screenH)
		if got == nil {
			t.Errorf("[spec %d] unable to find a bitmap", specIndex)
			continue
		}

		if got != availableBitmaps[spec.expIndex] {
			t.Errorf("[spec %d] expected to get bitmap with height %d; got %d", specIndex, availableBitmaps[spec.expIndex].Height, got.Height)
		}
	}

	if got := BestFit(32, 32); got != nil {
		t.Errorf("expected no bitmap to fit a 32x32 screen; got %v", got)
	}
}

func TestRegister(t *testing.T) {
	defer func(origList []*Bitmap) {
		availableBitmaps = origList
	}(availableBitmaps)
	availableBitmaps = nil

	valid := &Bitmap{Name: "valid", Width: 3, Height: 2, Data: make([]byte, 4)}
	Register(valid)
	Register(&Bitmap{Name: "short", Width: 3, Height: 2, Data: make([]byte, 3)})
	Register(&Bitmap{Width: 1, Height: 1, Data: make([]byte, 1)})
	Register(nil)

	if got := FindByName("valid"); got != valid {
		t.Fatalf("expected to find the registered bitmap; got %v", got)
	}
	if got := FindByName("short"); got != nil {
		t.Fatalf("expected a bitmap with short data to be rejected; got %v", got)
	}
	if len(availableBitmaps) != 1 {
		t.Fatalf("expected 1 registered bitmap; got %d", len(availableBitmaps))
	}
}

func TestBitmapX(t *testing.T) {
	specs := []struct {
		align Alignment
		exp   int
	}{
		{AlignLeft, 0},
		{AlignCenter, 300},
		{AlignRight, 600},
	}

	for specIndex, spec := range specs {
		b := &Bitmap{Width: 40, Height: 1, Align: spec.align}
		if got := b.X(640); got != spec.exp {
			t.Errorf("[spec %d] expected x = %d; got %d", specIndex, spec.exp, got)
		}
	}
}

func TestBuiltinBitmap(t *testing.T) {
	b := FindByName("butterfly")
	if b == nil {
		t.Fatal("expected the built-in bitmap to be registered")
	}

	s, err := b.NewSurface()
	if err != nil {
		t.Fatal(err)
	}

	if w, h := s.Dimensions(); w != 32 || h != 32 {
		t.Fatalf("expected a 32x32 surface; got %dx%d", w, h)
	}
	if key, ok := s.ColorKey(); !ok || key != vga.Black {
		t.Fatalf("expected a black colorkey; got %d (set: %t)", key, ok)
	}
	if got := s.Pixel(0, 0); got != vga.Black {
		t.Fatalf("expected the corner pixel to be transparent; got %d", got)
	}
	if got := s.Pixel(16, 16); got != vga.DarkGray {
		t.Fatalf("expected the body pixel to be dark gray; got %d", got)
	}
}
