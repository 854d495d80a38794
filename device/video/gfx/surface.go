// Package gfx implements software surfaces and the blitter used to compose
// frames before they are pushed to the display.
package gfx

import (
	"github.com/TheBigEye/monarch-os/device/video/planar"
	"github.com/TheBigEye/monarch-os/device/video/vga"
	"github.com/TheBigEye/monarch-os/kernel"
	"github.com/TheBigEye/monarch-os/kernel/mem"
)

var (
	// ErrInvalidSize is returned when a surface is created with a
	// non-positive width or height.
	ErrInvalidSize = &kernel.Error{Module: "gfx", Message: "surface dimensions must be positive"}

	// ErrShortBitmap is returned when bitmap data is smaller than its
	// declared dimensions.
	ErrShortBitmap = &kernel.Error{Module: "gfx", Message: "bitmap data is shorter than its dimensions"}

	// ErrInvalidScale is returned by Scale for factors below 1.
	ErrInvalidScale = &kernel.Error{Module: "gfx", Message: "scale factor must be at least 1"}

	// allocator serves surface pixel buffers.
	allocator mem.Allocator = mem.Heap
)

// SetAllocator selects the allocator used for surfaces created from now on.
// Passing nil restores the Go heap allocator.
func SetAllocator(a mem.Allocator) {
	if a == nil {
		a = mem.Heap
	}
	allocator = a
}

// BlendMode selects how a blit combines source pixels with the pixels of
// the destination surface.
type BlendMode uint8

const (
	// BlendReplace overwrites destination pixels.
	BlendReplace BlendMode = iota

	// BlendAlpha mixes source and destination evenly, see vga.Blend.
	BlendAlpha
)

// Screen is a drawing target addressed in screen coordinates. It is
// implemented by the planar driver and by Surface.
type Screen interface {
	Dimensions() (int, int)
	SetPixel(c vga.Color, x, y int)
	Pixel(x, y int) vga.Color
	DrawBitmap(pixels []byte, x, y, w, h int) *kernel.Error
}

// Surface is a linear buffer holding one color index per pixel.
//
// All methods accept a nil or destroyed Surface and do nothing. Surfaces
// are not safe for concurrent use.
type Surface struct {
	width, height int
	pix           []byte
	alloc         mem.Allocator

	colorKey    vga.Color
	hasColorKey bool
	blendMode   BlendMode
}

// NewSurface returns a w x h surface filled with color 0.
func NewSurface(w, h int) (*Surface, *kernel.Error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}

	alloc := allocator
	pix, err := alloc.Alloc(mem.Size(w * h))
	if err != nil {
		return nil, err
	}
	mem.Memset(pix, 0)

	return &Surface{width: w, height: h, pix: pix, alloc: alloc}, nil
}

// NewSurfaceFrom returns a w x h surface holding a copy of a packed 4bpp
// bitmap. Rows are (w+1)/2 bytes long with the left pixel of each byte in
// the high nibble.
func NewSurfaceFrom(bitmap []byte, w, h int) (*Surface, *kernel.Error) {
	if w <= 0 || h <= 0 {
		return nil, ErrInvalidSize
	}
	if len(bitmap) < planar.PackedStride(w)*h {
		return nil, ErrShortBitmap
	}

	s, err := NewSurface(w, h)
	if err != nil {
		return nil, err
	}

	s.DrawBitmap(bitmap, 0, 0, w, h)
	return s, nil
}

// Destroy releases the pixel buffer. The surface behaves as an empty
// surface afterwards.
func (s *Surface) Destroy() {
	if s == nil || s.pix == nil {
		return
	}

	s.alloc.Free(s.pix)
	s.pix = nil
	s.width, s.height = 0, 0
}

// Width returns the surface width in pixels.
func (s *Surface) Width() int {
	if s == nil {
		return 0
	}
	return s.width
}

// Height returns the surface height in pixels.
func (s *Surface) Height() int {
	if s == nil {
		return 0
	}
	return s.height
}

// Dimensions returns the surface width and height.
func (s *Surface) Dimensions() (int, int) {
	return s.Width(), s.Height()
}

// Bounds returns the rectangle covered by the surface.
func (s *Surface) Bounds() Rect {
	return Rect{W: s.Width(), H: s.Height()}
}

// Fill sets every pixel to c.
func (s *Surface) Fill(c vga.Color) {
	if s == nil {
		return
	}
	mem.Memset(s.pix, uint8(c&0x0f))
}

// SetPixel sets the pixel at (x, y) to c. Out-of-range coordinates are
// ignored.
func (s *Surface) SetPixel(c vga.Color, x, y int) {
	if s == nil || x < 0 || y < 0 || x >= s.width || y >= s.height {
		return
	}
	s.pix[y*s.width+x] = uint8(c & 0x0f)
}

// Pixel returns the color at (x, y), or vga.Black for out-of-range
// coordinates.
func (s *Surface) Pixel(x, y int) vga.Color {
	if s == nil || x < 0 || y < 0 || x >= s.width || y >= s.height {
		return vga.Black
	}
	return vga.Color(s.pix[y*s.width+x])
}

// SetColorKey marks c as transparent when the surface is used as a blit
// source.
func (s *Surface) SetColorKey(c vga.Color) {
	if s == nil {
		return
	}
	s.colorKey, s.hasColorKey = c&0x0f, true
}

// ClearColorKey makes every pixel of the surface opaque again.
func (s *Surface) ClearColorKey() {
	if s == nil {
		return
	}
	s.hasColorKey = false
}

// ColorKey returns the transparent color and whether one is set.
func (s *Surface) ColorKey() (vga.Color, bool) {
	if s == nil {
		return vga.Black, false
	}
	return s.colorKey, s.hasColorKey
}

// SetBlendMode selects how blits into this surface combine pixels.
func (s *Surface) SetBlendMode(mode BlendMode) {
	if s == nil {
		return
	}
	s.blendMode = mode
}

// BlendMode returns the blend mode applied to blits into this surface.
func (s *Surface) BlendMode() BlendMode {
	if s == nil {
		return BlendReplace
	}
	return s.blendMode
}

// DrawBitmap decodes a w x h packed 4bpp bitmap into the surface with its
// top-left corner at (x, y), clipping it to the surface bounds.
func (s *Surface) DrawBitmap(pixels []byte, x, y, w, h int) *kernel.Error {
	if s == nil || w <= 0 || h <= 0 {
		return nil
	}

	stride := planar.PackedStride(w)
	if len(pixels) < stride*h {
		return ErrShortBitmap
	}

	clip := R(x, y, w, h).Intersect(s.Bounds())
	for row := clip.Y; row < clip.Y+clip.H; row++ {
		src := pixels[(row-y)*stride:]
		dst := s.pix[row*s.width:]
		for col := clip.X; col < clip.X+clip.W; col++ {
			sx := col - x
			packed := src[sx>>1]
			if sx&1 == 0 {
				dst[col] = packed >> 4
			} else {
				dst[col] = packed & 0x0f
			}
		}
	}

	return nil
}
