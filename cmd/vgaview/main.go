// Command vgaview plays the demo scenes on an emulated VGA adapter and
// shows the result in a window, a terminal, over SSH or as a PNG file.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
)

var cli struct {
	Verbose bool `help:"Log every scene and session" short:"v"`

	Window windowCmd `cmd:"" help:"Show the adapter output in a window"`
	Term   termCmd   `cmd:"" help:"Render the adapter output on this terminal"`
	SSH    sshCmd    `cmd:"" name:"ssh" help:"Serve the adapter output to SSH sessions"`
	PNG    pngCmd    `cmd:"" name:"png" help:"Write the last frame to a PNG file"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("vgaview"),
		kong.Description("Preview the planar VGA graphics stack on the host."),
		kong.UsageOnError(),
	)

	if cli.Verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	kctx.BindTo(ctx, (*context.Context)(nil))
	if err := kctx.Run(); err != nil {
		slog.Error("vgaview failed", "command", kctx.Command(), "error", err)
		stop()
		os.Exit(1)
	}
}
