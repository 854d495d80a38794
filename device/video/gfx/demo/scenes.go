package demo

import (
	"github.com/TheBigEye/monarch-os/device/video/asset"
	"github.com/TheBigEye/monarch-os/device/video/font"
	"github.com/TheBigEye/monarch-os/device/video/gfx"
	"github.com/TheBigEye/monarch-os/device/video/vga"
	"github.com/TheBigEye/monarch-os/kernel"
	"github.com/TheBigEye/monarch-os/kernel/rng"
)

const (
	squareSize   = 64
	circleRadius = 32
	moveSpeed    = 2
)

// composition holds the surfaces shared by the animated scenes.
type composition struct {
	screen, background *gfx.Surface
	dirty              *gfx.DirtyRectList
}

func (s *Session) compose(caption string, dirtyCap int) (*composition, *kernel.Error) {
	if s.Display == nil {
		return nil, ErrNoDisplay
	}

	bg, err := s.background(caption)
	if err != nil {
		return nil, err
	}

	w, h := s.Display.Dimensions()
	screen, err := gfx.NewSurface(w, h)
	if err != nil {
		bg.Destroy()
		return nil, err
	}

	gfx.Blit(bg, nil, screen, nil)
	gfx.BlitToScreen(s.Display, screen, nil, 0, 0)

	return &composition{screen: screen, background: bg, dirty: gfx.NewDirtyRectList(dirtyCap)}, nil
}

func (c *composition) destroy() {
	c.screen.Destroy()
	c.background.Destroy()
}

// Bounce moves a square and a translucent circle around the screen,
// redrawing only the regions they cover.
func Bounce(s *Session) *kernel.Error {
	comp, err := s.compose("Graphics Test 01", 4)
	if err != nil {
		return err
	}
	defer comp.destroy()

	square, err := gfx.NewSurface(squareSize, squareSize)
	if err != nil {
		return err
	}
	defer square.Destroy()

	circle, err := gfx.NewSurface(2*circleRadius, 2*circleRadius)
	if err != nil {
		return err
	}
	defer circle.Destroy()

	square.Fill(vga.Green)
	circle.Fill(vga.Black)
	circle.SetColorKey(vga.Black)
	gfx.FillCircle(circle, circleRadius, circleRadius, circleRadius, vga.Red)

	w, h := comp.screen.Dimensions()
	sq := mover{rect: gfx.R(100, 100, squareSize, squareSize), dx: moveSpeed, dy: moveSpeed}
	ci := mover{rect: gfx.R(200-circleRadius, 200-circleRadius, 2*circleRadius, 2*circleRadius), dx: -moveSpeed, dy: moveSpeed}

	for frame := 0; frame < s.frames(256); frame++ {
		comp.dirty.Clear()
		comp.dirty.Add(sq.rect)
		comp.dirty.Add(ci.rect)

		sq.step(w, h)
		ci.step(w, h)

		comp.dirty.Add(sq.rect)
		comp.dirty.Add(ci.rect)
		comp.dirty.RestoreUnder(comp.screen, comp.background)

		gfx.Blit(square, nil, comp.screen, &sq.rect)

		comp.screen.SetBlendMode(gfx.BlendAlpha)
		gfx.Blit(circle, nil, comp.screen, &ci.rect)
		comp.screen.SetBlendMode(gfx.BlendReplace)

		comp.dirty.PresentDirty(s.Display, comp.screen)
		if !s.present(frame) {
			break
		}
	}

	return nil
}

// spriteScale enlarges the built-in bitmap for the sprite scene.
const spriteScale = 7

// Sprite bounces a large translucent sprite that switches between two
// frames of a sprite sheet.
func Sprite(s *Session) *kernel.Error {
	bitmap := asset.FindByName("butterfly")
	if bitmap == nil {
		return ErrMissingAsset
	}

	comp, err := s.compose("Graphics Test 02", 4)
	if err != nil {
		return err
	}
	defer comp.destroy()

	small, err := bitmap.NewSurface()
	if err != nil {
		return err
	}
	defer small.Destroy()

	large, err := gfx.Scale(small, spriteScale)
	if err != nil {
		return err
	}
	defer large.Destroy()

	// The sheet holds the sprite and a copy cropped to its middle rows
	// side by side.
	size := large.Width()
	sheet, err := gfx.NewSurface(2*size, size)
	if err != nil {
		return err
	}
	defer sheet.Destroy()

	sheet.Fill(vga.Black)
	sheet.SetColorKey(vga.Black)
	gfx.Blit(large, nil, sheet, nil)
	gfx.Blit(large, &gfx.Rect{X: 0, Y: size / 4, W: size, H: size / 2}, sheet, &gfx.Rect{X: size, Y: size / 4})

	var frames [2]*gfx.Surface
	for i := range frames {
		if frames[i], err = gfx.NewSprite(sheet, gfx.R(i*size, 0, size, size)); err != nil {
			return err
		}
		defer frames[i].Destroy()
	}

	w, h := comp.screen.Dimensions()
	m := mover{rect: gfx.R(100, 100, size, size), dx: moveSpeed, dy: moveSpeed}

	comp.screen.SetBlendMode(gfx.BlendAlpha)
	for frame := 0; frame < s.frames(256); frame++ {
		comp.dirty.Clear()
		comp.dirty.Add(m.rect)
		m.step(w, h)
		comp.dirty.Add(m.rect)
		comp.dirty.RestoreUnder(comp.screen, comp.background)

		gfx.Blit(frames[(frame/16)&1], nil, comp.screen, &m.rect)

		comp.dirty.PresentDirty(s.Display, comp.screen)
		if !s.present(frame) {
			break
		}
	}

	return nil
}

var textItems = [...]struct {
	text   string
	x, y   int
	dx, dy int
	fg, bg vga.Color
}{
	{"Hello BGL!", 50, 50, 2, 2, vga.White, vga.Black},
	{"Graphics Demo", 350, 50, -2, -2, vga.Green, vga.White},
	{"Pretty Cool", 50, 150, 2, -2, vga.Blue, vga.Yellow},
	{"Fast & Smooth", 350, 150, -2, 2, vga.DarkGray, vga.LightGray},
	{"Text Engine", 50, 250, 2, 2, vga.Cyan, vga.LightRed},
	{"Monarch OS", 350, 250, -2, -2, vga.Magenta, vga.LightGreen},
	{"Moving Text", 50, 350, 2, -2, vga.White, vga.Black},
	{"Demo System", 350, 350, -2, 2, vga.LightGray, vga.Magenta},
}

// Text bounces labels rendered at three different scales.
func Text(s *Session) *kernel.Error {
	comp, err := s.compose("Graphics Test 03", 2*len(textItems))
	if err != nil {
		return err
	}
	defer comp.destroy()

	base := s.font()
	var (
		fonts  [len(textItems)]*font.Font
		movers [len(textItems)]mover
	)
	for i, item := range textItems {
		fonts[i] = base.WithScale(i%3 + 1)
		tw, th := font.MeasureText(fonts[i], item.text)
		movers[i] = mover{rect: gfx.R(item.x, item.y, tw, th), dx: item.dx, dy: item.dy}
	}

	w, h := comp.screen.Dimensions()
	for frame := 0; frame < s.frames(512); frame++ {
		comp.dirty.Clear()
		for i := range movers {
			comp.dirty.Add(movers[i].rect)
			movers[i].step(w, h)
			comp.dirty.Add(movers[i].rect)
		}
		comp.dirty.RestoreUnder(comp.screen, comp.background)

		for i, item := range textItems {
			if err = font.DrawText(comp.screen, fonts[i], item.text, &movers[i].rect, item.fg, item.bg); err != nil {
				return err
			}
		}

		comp.dirty.PresentDirty(s.Display, comp.screen)
		if !s.present(frame) {
			break
		}
	}

	return nil
}

// Overlay composes a translucent, keyed overlay on top of the flipped
// background and presents the result once.
func Overlay(s *Session) *kernel.Error {
	if s.Display == nil {
		return ErrNoDisplay
	}

	wallpaper, err := s.background("")
	if err != nil {
		return err
	}
	defer wallpaper.Destroy()
	gfx.Flip(wallpaper, false, true)

	w, h := wallpaper.Dimensions()
	overlay, err := gfx.NewSurface(w, h)
	if err != nil {
		return err
	}
	defer overlay.Destroy()

	overlay.Fill(vga.Blue)
	overlay.SetColorKey(vga.Blue)
	gfx.FillRect(overlay, gfx.R(w/8, h/8, w*3/4, h*3/4), vga.Black)
	gfx.DrawRect(overlay, gfx.R(w/8, h/8, w*3/4, h*3/4), vga.White)
	font.DrawString(overlay, s.font(), "Overlay composition\n\rBlue pixels are transparent", w/8+8, h/8+8, vga.White, vga.Black)

	wallpaper.SetBlendMode(gfx.BlendAlpha)
	gfx.Blit(overlay, nil, wallpaper, &gfx.Rect{W: w, H: h})

	gfx.BlitToScreen(s.Display, wallpaper, nil, 0, 0)
	s.present(0)
	return nil
}

var clearColors = [...]vga.Color{vga.Black, vga.Green, vga.Cyan, vga.Red, vga.Magenta, vga.Brown, vga.Blue}

// Shapes cycles through a few solid colors and then draws the charset,
// some text and the hardware primitives directly on the display.
func Shapes(s *Session) *kernel.Error {
	if s.Display == nil {
		return ErrNoDisplay
	}

	d := s.Display
	for frame, c := range clearColors {
		d.Clear(c)
		if !s.present(frame) {
			return nil
		}
	}

	f := s.font()
	font.DrawCharset(d, f, vga.Yellow, vga.Blue)
	font.DrawString(d, f, "- Every pixel of mode 12h lives in four planes.\n\rWrites go through the map mask and the bit mask ...", 8, 72, vga.White, vga.Blue)
	font.DrawString(d, f, "- Surfaces are composed in memory and pushed to the\n\rscreen one dirty rectangle at a time", 8, 96, vga.White, vga.Blue)
	font.DrawString(d, f, "- Glyphs come from a 1bpp table, scaled in integer steps", 8, 120, vga.White, vga.Blue)

	d.Rect(vga.LightGreen, 16, 152, 128, 32, true)
	d.Line(vga.LightGreen, 16, 216, 144, 216)
	d.Line(vga.LightGreen, 16, 248, 144, 280)

	d.Circle(vga.LightRed, 80, 328, 32, false)
	d.Circle(vga.LightRed, 80, 408, 32, true)

	d.Line(vga.LightMagenta, 176, 152, 176, 440)

	s.present(len(clearColors))
	return nil
}

// noiseDotsPerFrame is the number of 2x2 dots plotted per noise frame.
const noiseDotsPerFrame = 1024

// Noise covers a white screen with random colored dots.
func Noise(s *Session) *kernel.Error {
	if s.Display == nil {
		return ErrNoDisplay
	}

	d := s.Display
	w, h := d.Dimensions()
	r := rng.New(s.Seed)

	d.Clear(vga.White)
	for frame := 0; frame < s.frames(256); frame++ {
		for i := 0; i < noiseDotsPerFrame; i++ {
			x, y := r.Range(0, w), r.Range(0, h)
			c := vga.Color(r.Range(0, vga.NumColors-1))

			d.SetPixel(c, x, y)
			d.SetPixel(c, x+1, y+1)
			d.SetPixel(c, x+1, y)
			d.SetPixel(c, x, y+1)
		}

		if !s.present(frame) {
			break
		}
	}

	return nil
}
