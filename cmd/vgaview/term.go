package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"golang.org/x/term"
)

type termCmd struct {
	SceneFlags `embed:""`
}

func (c *termCmd) Validate() error {
	return c.SceneFlags.Validate()
}

func (c *termCmd) Run(ctx context.Context) error {
	outFd := int(os.Stdout.Fd())
	if !term.IsTerminal(outFd) {
		return errors.New("stdout is not a terminal")
	}

	cols, rows, err := term.GetSize(outFd)
	if err != nil {
		return fmt.Errorf("could not query terminal size: %w", err)
	}

	// Raw mode disables echo and line buffering so a single key press can
	// stop playback.
	inFd := int(os.Stdin.Fd())
	oldState, err := term.MakeRaw(inFd)
	if err != nil {
		return fmt.Errorf("could not set raw mode: %w", err)
	}
	defer func() { _ = term.Restore(inFd, oldState) }()

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go watchQuit(os.Stdin, cancel)

	_, _ = io.WriteString(os.Stdout, enableAltScreen+hideCursor+clearScreen)
	defer func() { _, _ = io.WriteString(os.Stdout, showCursor+exitAltScreen) }()

	r := newANSIRenderer(cols, rows)
	err = newPlayer(c.SceneFlags).play(ctx, func(_ int, img *image.Paletted) bool {
		if w, h, err := term.GetSize(outFd); err == nil {
			r.resize(w, h)
		}
		_, err := io.WriteString(os.Stdout, r.Render(img))
		return err == nil
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// watchQuit reads key presses from rd and calls cancel on q, Ctrl-C or a
// read error.
func watchQuit(rd io.Reader, cancel context.CancelFunc) {
	buf := make([]byte, 64)
	for {
		n, err := rd.Read(buf)
		if err != nil || isQuit(buf[:n]) {
			cancel()
			return
		}
	}
}

func isQuit(data []byte) bool {
	for _, b := range data {
		switch b {
		case 'q', 'Q', 3:
			return true
		}
	}
	return false
}
