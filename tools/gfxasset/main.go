// Command gfxasset converts images and fonts into Go sources that embed
// them into the kernel image.
package main

import (
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
)

var cli struct {
	Image imageCmd `cmd:"" help:"Convert an image into a packed 4bpp bitmap"`
	Font  fontCmd  `cmd:"" help:"Rasterize a bitmap font face into a 1bpp glyph table"`
}

func main() {
	kctx := kong.Parse(&cli,
		kong.Name("gfxasset"),
		kong.Description("Convert images and fonts into assets for the planar VGA driver."),
		kong.UsageOnError(),
	)

	if err := kctx.Run(); err != nil {
		slog.Error("conversion failed", "command", kctx.Command(), "error", err)
		os.Exit(1)
	}
}
