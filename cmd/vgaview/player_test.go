package main

import (
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/TheBigEye/monarch-os/device/video/vga"
)

func TestSceneFlagsValidate(t *testing.T) {
	specs := []struct {
		flags  SceneFlags
		expErr bool
	}{
		{SceneFlags{Font: "8x8", FontScale: 1}, false},
		{SceneFlags{Scene: []string{"shapes", "noise"}, Font: "8x8", FontScale: 2}, false},
		{SceneFlags{Scene: []string{"fireworks"}, Font: "8x8", FontScale: 1}, true},
		{SceneFlags{Frames: -1, Font: "8x8", FontScale: 1}, true},
		{SceneFlags{Font: "8x8", FontScale: 5}, true},
		{SceneFlags{Font: "comic", FontScale: 1}, true},
	}

	for specIndex, spec := range specs {
		err := spec.flags.Validate()
		if spec.expErr && err == nil {
			t.Errorf("[spec %d] expected an error", specIndex)
		} else if !spec.expErr && err != nil {
			t.Errorf("[spec %d] unexpected error: %v", specIndex, err)
		}
	}
}

func TestPlayerSceneNames(t *testing.T) {
	p := newPlayer(SceneFlags{})
	if got := p.sceneNames(); len(got) != 6 || got[0] != "shapes" || got[5] != "noise" {
		t.Fatalf("expected all scenes in presentation order; got %v", got)
	}

	p = newPlayer(SceneFlags{Scene: []string{"text"}})
	if got := p.sceneNames(); len(got) != 1 || got[0] != "text" {
		t.Fatalf("expected only the selected scene; got %v", got)
	}
}

func TestPlayerPlay(t *testing.T) {
	p := newPlayer(SceneFlags{Scene: []string{"shapes"}, Font: "8x8", FontScale: 1})

	var (
		frames int
		last   *image.Paletted
	)
	err := p.play(context.Background(), func(frame int, img *image.Paletted) bool {
		if frame != frames {
			t.Errorf("expected frame %d; got %d", frames, frame)
		}
		frames++
		last = img
		return true
	})
	if err != nil {
		t.Fatal(err)
	}

	// Seven full screen clears followed by the primitives.
	if frames != 8 {
		t.Fatalf("expected 8 frames; got %d", frames)
	}
	if got := vga.Color(last.ColorIndexAt(16, 152)); got != vga.LightGreen {
		t.Fatalf("expected the solid rectangle in the last frame; got color %d", got)
	}
}

func TestPlayerStop(t *testing.T) {
	p := newPlayer(SceneFlags{Scene: []string{"shapes", "noise"}, Font: "8x8", FontScale: 1})

	var frames int
	err := p.play(context.Background(), func(frame int, _ *image.Paletted) bool {
		frames++
		return frame < 2
	})
	if err != nil {
		t.Fatal(err)
	}
	if frames != 3 {
		t.Fatalf("expected playback to stop after 3 frames; got %d", frames)
	}

	// The noise scene never ran.
	if got := p.snapshot().ColorIndexAt(0, 0); vga.Color(got) == vga.White {
		t.Fatal("expected the noise scene to be skipped")
	}
}

func TestPlayerCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var frames int
	err := newPlayer(SceneFlags{Scene: []string{"noise"}, Font: "8x8", FontScale: 1}).play(ctx, func(int, *image.Paletted) bool {
		frames++
		return true
	})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled; got %v", err)
	}
	if frames != 0 {
		t.Fatalf("expected no frames to be delivered; got %d", frames)
	}
}

func TestWritePNG(t *testing.T) {
	p := newPlayer(SceneFlags{Scene: []string{"shapes"}, Font: "8x8", FontScale: 1})
	if err := p.play(context.Background(), nil); err != nil {
		t.Fatal(err)
	}

	name := filepath.Join(t.TempDir(), "frame.png")
	if err := writePNG(name, p.snapshot()); err != nil {
		t.Fatal(err)
	}

	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}

	if b := img.Bounds(); b.Dx() != vga.Width || b.Dy() != vga.Height {
		t.Fatalf("expected a %dx%d image; got %v", vga.Width, vga.Height, b)
	}

	r, g, b, _ := img.At(16, 152).RGBA()
	if r>>8 != 0x55 || g>>8 != 0xff || b>>8 != 0x55 {
		t.Fatalf("expected light green at (16, 152); got %02x%02x%02x", r>>8, g>>8, b>>8)
	}
}

func TestWritePNGError(t *testing.T) {
	name := filepath.Join(t.TempDir(), "missing", "frame.png")
	if err := writePNG(name, image.NewPaletted(image.Rect(0, 0, 1, 1), vga.DefaultPalette)); err == nil {
		t.Fatal("expected an error when the output directory does not exist")
	}
}
