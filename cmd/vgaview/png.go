package main

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"log/slog"
	"os"
)

type pngCmd struct {
	SceneFlags `embed:""`

	Out string `help:"Output file" short:"o" default:"vgaview.png"`
}

func (c *pngCmd) Validate() error {
	return c.SceneFlags.Validate()
}

func (c *pngCmd) Run(ctx context.Context) error {
	flags := c.SceneFlags
	flags.Delay = 0

	p := newPlayer(flags)
	if err := p.play(ctx, nil); err != nil {
		return err
	}
	return writePNG(c.Out, p.snapshot())
}

func writePNG(name string, img image.Image) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("could not create %q: %w", name, err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("could not close %q: %w", name, closeErr)
		}
	}()

	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err = enc.Encode(f, img); err != nil {
		return fmt.Errorf("could not encode %q: %w", name, err)
	}

	slog.Info("wrote frame", "file", name)
	return nil
}
