package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"log/slog"
	"sync"

	"github.com/TheBigEye/monarch-os/device/video/vga"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type windowCmd struct {
	SceneFlags `embed:""`

	Scale      int  `help:"Window scale factor" default:"1"`
	Fullscreen bool `help:"Start in fullscreen mode; F11 toggles it"`
}

func (c *windowCmd) Validate() error {
	if c.Scale < 1 || c.Scale > 4 {
		return fmt.Errorf("window scale must be between 1 and 4; got %d", c.Scale)
	}
	return c.SceneFlags.Validate()
}

func (c *windowCmd) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	v := newViewer(ctx)
	errCh := make(chan error, 1)
	go func() {
		errCh <- newPlayer(c.SceneFlags).play(ctx, func(_ int, img *image.Paletted) bool {
			v.update(img)
			return true
		})
		slog.Debug("playback finished")
	}()

	ebiten.SetWindowSize(vga.Width*c.Scale, vga.Height*c.Scale)
	ebiten.SetWindowTitle("vgaview")
	ebiten.SetWindowResizable(true)
	ebiten.SetFullscreen(c.Fullscreen)

	err := ebiten.RunGame(v)
	cancel()

	if playErr := <-errCh; playErr != nil && !errors.Is(playErr, context.Canceled) {
		return playErr
	}
	return err
}

// viewer is an ebiten game that shows the latest adapter frame. Frames are
// pushed from the playback goroutine.
type viewer struct {
	ctx context.Context

	mu     sync.Mutex
	frame  []byte
	screen *ebiten.Image
}

func newViewer(ctx context.Context) *viewer {
	return &viewer{
		ctx:   ctx,
		frame: make([]byte, vga.Width*vga.Height*4),
	}
}

func (v *viewer) update(img *image.Paletted) {
	v.mu.Lock()
	toRGBA(v.frame, img)
	v.mu.Unlock()
}

func (v *viewer) Update() error {
	if v.ctx.Err() != nil {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF11) {
		ebiten.SetFullscreen(!ebiten.IsFullscreen())
	}
	return nil
}

func (v *viewer) Draw(screen *ebiten.Image) {
	if v.screen == nil {
		v.screen = ebiten.NewImage(vga.Width, vga.Height)
	}

	v.mu.Lock()
	v.screen.WritePixels(v.frame)
	v.mu.Unlock()

	screen.DrawImage(v.screen, nil)
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return vga.Width, vga.Height
}
