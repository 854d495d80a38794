package main

import (
	"context"
	"fmt"
	"image"
	"log/slog"
	"time"

	"github.com/TheBigEye/monarch-os/device/video/font"
	"github.com/TheBigEye/monarch-os/device/video/gfx/demo"
	"github.com/TheBigEye/monarch-os/device/video/planar"
	"github.com/TheBigEye/monarch-os/device/video/planar/vgaemu"
)

// SceneFlags selects what the emulated adapter shows.
type SceneFlags struct {
	Scene     []string      `help:"Scenes to play in order; all scenes when empty" short:"s"`
	Frames    int           `help:"Frames per scene; 0 keeps the length of each scene"`
	Seed      uint32        `help:"Seed of the noise scene" default:"1"`
	Delay     time.Duration `help:"Pause after each frame" default:"16ms"`
	Font      string        `help:"Registered font used for captions" default:"8x8"`
	FontScale int           `help:"Integer scale of the caption font" default:"1"`
}

func (f *SceneFlags) Validate() error {
	for _, name := range f.Scene {
		if !sceneExists(name) {
			return fmt.Errorf("unknown scene %q", name)
		}
	}

	if f.Frames < 0 {
		return fmt.Errorf("invalid frame count %d", f.Frames)
	}
	if f.FontScale < 1 || f.FontScale > 4 {
		return fmt.Errorf("font scale must be between 1 and 4; got %d", f.FontScale)
	}
	if font.FindByName(f.Font) == nil {
		return fmt.Errorf("unknown font %q", f.Font)
	}
	return nil
}

func sceneExists(name string) bool {
	for _, scene := range demo.Scenes {
		if scene.Name == name {
			return true
		}
	}
	return false
}

// frameFunc receives a snapshot of the adapter after every presented frame.
// Returning false stops playback.
type frameFunc func(frame int, img *image.Paletted) bool

// player runs demo scenes against its own emulated adapter.
type player struct {
	flags SceneFlags
	emu   *vgaemu.Adapter
	drv   *planar.Driver
}

func newPlayer(flags SceneFlags) *player {
	emu := vgaemu.New()
	return &player{
		flags: flags,
		emu:   emu,
		drv:   planar.NewDriver(emu),
	}
}

func (p *player) sceneNames() []string {
	if len(p.flags.Scene) != 0 {
		return p.flags.Scene
	}

	names := make([]string, 0, len(demo.Scenes))
	for _, scene := range demo.Scenes {
		names = append(names, scene.Name)
	}
	return names
}

func (p *player) font() *font.Font {
	f := font.FindByName(p.flags.Font)
	if f == nil {
		f = font.Default()
	}
	return f.WithScale(max(1, p.flags.FontScale))
}

// play runs the selected scenes until they finish, onFrame returns false or
// ctx is cancelled.
func (p *player) play(ctx context.Context, onFrame frameFunc) error {
	var stopped bool

	session := &demo.Session{
		Display: p.drv,
		Font:    p.font(),
		Frames:  p.flags.Frames,
		Seed:    p.flags.Seed,
	}
	session.OnFrame = func(frame int) bool {
		if ctx.Err() != nil {
			stopped = true
			return false
		}

		if onFrame != nil && !onFrame(frame, p.emu.Snapshot()) {
			stopped = true
			return false
		}

		if p.flags.Delay > 0 {
			select {
			case <-ctx.Done():
				stopped = true
				return false
			case <-time.After(p.flags.Delay):
			}
		}
		return true
	}

	for _, name := range p.sceneNames() {
		slog.Debug("playing scene", "scene", name)
		if err := session.Play(name); err != nil {
			return fmt.Errorf("scene %s: %s", name, err.Message)
		}
		if stopped {
			break
		}
	}

	return ctx.Err()
}

// snapshot returns the current adapter contents.
func (p *player) snapshot() *image.Paletted {
	return p.emu.Snapshot()
}
