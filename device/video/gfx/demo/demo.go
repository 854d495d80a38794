// Package demo contains animated scenes that exercise the graphics stack.
// Each scene draws into a Session and hands control back to the caller
// after every presented frame.
package demo

import (
	"github.com/TheBigEye/monarch-os/device/video/font"
	"github.com/TheBigEye/monarch-os/device/video/gfx"
	"github.com/TheBigEye/monarch-os/device/video/vga"
	"github.com/TheBigEye/monarch-os/kernel"
)

var (
	// ErrNoDisplay is returned when a scene is played without a display.
	ErrNoDisplay = &kernel.Error{Module: "demo", Message: "no display attached to session"}

	// ErrUnknownScene is returned by Play for unregistered scene names.
	ErrUnknownScene = &kernel.Error{Module: "demo", Message: "unknown scene"}

	// ErrMissingAsset is returned when a scene needs a bitmap that is not
	// registered.
	ErrMissingAsset = &kernel.Error{Module: "demo", Message: "required bitmap is not registered"}
)

// Display is the drawing target of a session. The planar driver
// implements it.
type Display interface {
	gfx.Screen
	Clear(c vga.Color)
	Line(c vga.Color, x0, y0, x1, y1 int)
	Circle(c vga.Color, cx, cy, r int, filled bool)
	Rect(c vga.Color, x, y, w, h int, solid bool)
}

// Session holds the state shared by the scenes.
type Session struct {
	// Display receives the composed frames.
	Display Display

	// Font is used for captions. A nil Font selects font.Default().
	Font *font.Font

	// Background replaces the generated landscape when set. Scenes copy
	// it and never modify it.
	Background *gfx.Surface

	// Frames overrides the frame count of every scene when positive.
	Frames int

	// Seed initializes the random generator of the noise scene.
	Seed uint32

	// OnFrame is invoked after every presented frame with the frame
	// number, starting at 0. Returning false stops the scene.
	OnFrame func(frame int) bool
}

// Scene is a named demo.
type Scene struct {
	Name string
	Play func(*Session) *kernel.Error
}

// Scenes lists the available scenes in presentation order.
var Scenes = []Scene{
	{"shapes", Shapes},
	{"bounce", Bounce},
	{"sprite", Sprite},
	{"text", Text},
	{"overlay", Overlay},
	{"noise", Noise},
}

// Play runs the scene with the given name.
func (s *Session) Play(name string) *kernel.Error {
	for _, scene := range Scenes {
		if scene.Name == name {
			return scene.Play(s)
		}
	}
	return ErrUnknownScene
}

func (s *Session) frames(def int) int {
	if s.Frames > 0 {
		return s.Frames
	}
	return def
}

func (s *Session) font() *font.Font {
	if s.Font != nil {
		return s.Font
	}
	return font.Default()
}

// present reports whether the scene should keep running.
func (s *Session) present(frame int) bool {
	return s.OnFrame == nil || s.OnFrame(frame)
}

// background returns a private copy of the session background, with the
// scene caption drawn at the top-left corner.
func (s *Session) background(caption string) (*gfx.Surface, *kernel.Error) {
	w, h := s.Display.Dimensions()

	var (
		bg  *gfx.Surface
		err *kernel.Error
	)
	if s.Background != nil {
		bg, err = gfx.NewSurface(w, h)
		if err == nil {
			gfx.Blit(s.Background, nil, bg, nil)
		}
	} else {
		bg, err = Landscape(w, h)
	}
	if err != nil {
		return nil, err
	}

	if caption != "" {
		if err = font.DrawText(bg, s.font(), caption, &gfx.Rect{X: 8, Y: 8}, vga.White, vga.Black); err != nil {
			bg.Destroy()
			return nil, err
		}
	}
	return bg, nil
}

// Landscape returns a w x h surface with a sky, a sun and a couple of
// hills.
func Landscape(w, h int) (*gfx.Surface, *kernel.Error) {
	bg, err := gfx.NewSurface(w, h)
	if err != nil {
		return nil, err
	}

	band := h / 6
	gfx.FillRect(bg, gfx.R(0, 0, w, band), vga.Blue)
	gfx.FillRect(bg, gfx.R(0, band, w, band), vga.LightBlue)
	gfx.FillRect(bg, gfx.R(0, 2*band, w, h-2*band), vga.LightCyan)

	gfx.FillCircle(bg, w*3/4, h/4, h/10, vga.Yellow)
	gfx.FillCircle(bg, w/5, h+h/8, h/2, vga.Green)
	gfx.FillCircle(bg, w*3/4, h+h/4, h/2+h/8, vga.LightGreen)
	gfx.FillRect(bg, gfx.R(0, h-band/2, w, band/2), vga.Brown)

	return bg, nil
}

// mover is a rectangle bouncing inside the screen.
type mover struct {
	rect   gfx.Rect
	dx, dy int
}

// step advances the mover and reverses its direction when it reaches an
// edge of a w x h screen.
func (m *mover) step(w, h int) {
	m.rect.X += m.dx
	m.rect.Y += m.dy

	if m.rect.X <= 0 || m.rect.X >= w-m.rect.W {
		m.dx = -m.dx
	}
	if m.rect.Y <= 0 || m.rect.Y >= h-m.rect.H {
		m.dy = -m.dy
	}
}
