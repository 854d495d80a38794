// Package kmain contains the Go entry point of the kernel.
package kmain

import (
	"strconv"
	"strings"

	"github.com/TheBigEye/monarch-os/device/video/asset"
	"github.com/TheBigEye/monarch-os/device/video/font"
	"github.com/TheBigEye/monarch-os/device/video/gfx"
	"github.com/TheBigEye/monarch-os/device/video/gfx/demo"
	"github.com/TheBigEye/monarch-os/kernel"
	"github.com/TheBigEye/monarch-os/kernel/hal"
	"github.com/TheBigEye/monarch-os/kernel/kfmt"
	"github.com/TheBigEye/monarch-os/multiboot"
)

var (
	errKmainReturned = &kernel.Error{Module: "kmain", Message: "Kmain returned"}
	errNoScreen      = &kernel.Error{Module: "kmain", Message: "no supported display detected"}

	getBootCmdLineFn = multiboot.GetBootCmdLine
	panicFn          = kernel.Panic
)

// Kmain is invoked by the rt0 assembly code with the address of the
// multiboot info payload provided by the bootloader.
//
// Kmain is not expected to return. If it does, the rt0 code will halt the CPU.
//
//go:noinline
func Kmain(multibootInfoPtr uintptr) {
	multiboot.SetInfoPtr(multibootInfoPtr)
	hal.DetectHardware()

	screen := hal.ActiveScreen()
	if screen == nil {
		panicFn(errNoScreen)
		return
	}

	run(screen, hal.ActiveFont(), getBootCmdLineFn())

	// Use kernel.Panic instead of panic to prevent the compiler from
	// treating kernel.Panic as dead-code and eliminating it.
	panicFn(errKmainReturned)
}

// run shows the boot logo and plays the demo scenes. The gfxDemo option
// selects a comma separated list of scenes and gfxDemoFrames overrides the
// number of frames each scene runs for.
func run(display demo.Display, f *font.Font, cmdLine map[string]string) {
	drawLogo(display)

	session := &demo.Session{
		Display: display,
		Font:    f,
		Seed:    1,
	}
	if v, ok := cmdLine["gfxDemoFrames"]; ok {
		if frames, err := strconv.Atoi(v); err == nil && frames > 0 {
			session.Frames = frames
		}
	}

	names := cmdLine["gfxDemo"]
	if names == "" {
		for _, scene := range demo.Scenes {
			playScene(session, scene.Name)
		}
		return
	}

	for _, name := range strings.Split(names, ",") {
		playScene(session, name)
	}
}

func playScene(session *demo.Session, name string) {
	kfmt.Printf("[kmain] playing %s\n", name)
	if err := session.Play(name); err != nil {
		kfmt.Printf("[kmain] %s: %s\n", name, err.Message)
	}
}

// drawLogo draws the bitmap that best fits the display at the top of the
// screen.
func drawLogo(display demo.Display) {
	w, h := display.Dimensions()
	logo := asset.BestFit(w, h)
	if logo == nil {
		return
	}

	s, err := logo.NewSurface()
	if err != nil {
		return
	}
	defer s.Destroy()

	gfx.BlitToScreen(display, s, nil, logo.X(w), 8)
}
