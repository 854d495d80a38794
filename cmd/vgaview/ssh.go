package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"io"
	"log/slog"
	"sync"

	"github.com/gliderlabs/ssh"
)

type sshCmd struct {
	SceneFlags `embed:""`

	Addr    string `help:"Address to listen on" default:":2222"`
	HostKey string `help:"PEM encoded host key; an ephemeral key is generated when empty" type:"existingfile"`
}

func (c *sshCmd) Validate() error {
	return c.SceneFlags.Validate()
}

func (c *sshCmd) Run(ctx context.Context) error {
	server := &ssh.Server{
		Addr:    c.Addr,
		Handler: c.handleSession,
	}

	if c.HostKey != "" {
		if err := server.SetOption(ssh.HostKeyFile(c.HostKey)); err != nil {
			return fmt.Errorf("set host key: %w", err)
		}
	}

	go func() {
		<-ctx.Done()
		_ = server.Close()
	}()

	slog.Info("ssh server listening", "addr", c.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return err
	}
	return nil
}

// handleSession plays the selected scenes on a private adapter for every
// session and streams the frames as ANSI art sized to the client PTY.
func (c *sshCmd) handleSession(sess ssh.Session) {
	ptyReq, winCh, ok := sess.Pty()
	if !ok {
		_, _ = io.WriteString(sess, "Error: PTY required. Use: ssh -t ...\n")
		_ = sess.Exit(1)
		return
	}

	logger := slog.With("user", sess.User(), "remote", sess.RemoteAddr().String())
	logger.Info("session started")
	defer logger.Info("session ended")

	ctx, cancel := context.WithCancel(sess.Context())
	defer cancel()
	go watchQuit(sess, cancel)

	var (
		mu         sync.Mutex
		cols, rows = ptyReq.Window.Width, ptyReq.Window.Height
	)
	go func() {
		for win := range winCh {
			mu.Lock()
			cols, rows = win.Width, win.Height
			mu.Unlock()
		}
	}()

	_, _ = io.WriteString(sess, enableAltScreen+hideCursor+clearScreen)
	defer func() { _, _ = io.WriteString(sess, showCursor+exitAltScreen) }()

	r := newANSIRenderer(cols, rows)
	err := newPlayer(c.SceneFlags).play(ctx, func(_ int, img *image.Paletted) bool {
		mu.Lock()
		r.resize(cols, rows)
		mu.Unlock()

		_, err := io.WriteString(sess, r.Render(img))
		return err == nil
	})
	if err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("playback failed", "error", err)
	}
}
