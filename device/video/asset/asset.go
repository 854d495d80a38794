// Package asset contains packed 4bpp bitmaps that are compiled into the
// kernel image.
package asset

import (
	"github.com/TheBigEye/monarch-os/device/video/gfx"
	"github.com/TheBigEye/monarch-os/device/video/planar"
	"github.com/TheBigEye/monarch-os/device/video/vga"
	"github.com/TheBigEye/monarch-os/kernel"
)

var (
	// The list of available bitmaps.
	availableBitmaps []*Bitmap
)

// Alignment defines the supported horizontal alignments for a bitmap that
// is drawn directly on the screen.
type Alignment uint8

const (
	// AlignLeft aligns the bitmap to the left side of the screen.
	AlignLeft Alignment = iota

	// AlignCenter aligns the bitmap to the center of the screen.
	AlignCenter

	// AlignRight aligns the bitmap to the right side of the screen.
	AlignRight
)

// Bitmap describes a packed 4bpp image using the VGA palette.
type Bitmap struct {
	// The name used to look up the bitmap.
	Name string

	// The width and height of the bitmap in pixels.
	Width  int
	Height int

	// Align specifies the horizontal alignment for the bitmap.
	Align Alignment

	// When Transparent is set, pixels with TransparentIndex are not drawn.
	Transparent      bool
	TransparentIndex vga.Color

	// The bitmap data comprises of Height rows of (Width+1)/2 bytes. The
	// high nibble of each byte holds the left pixel.
	Data []byte
}

// Valid reports whether Data holds all the pixels of the bitmap.
func (b *Bitmap) Valid() bool {
	return b.Width > 0 && b.Height > 0 && len(b.Data) >= planar.PackedStride(b.Width)*b.Height
}

// X returns the horizontal position of the bitmap on a screen of the given
// width according to its alignment.
func (b *Bitmap) X(screenWidth int) int {
	switch b.Align {
	case AlignCenter:
		return (screenWidth - b.Width) / 2
	case AlignRight:
		return screenWidth - b.Width
	default:
		return 0
	}
}

// NewSurface returns a surface holding a copy of the bitmap. The surface
// colorkey is set for transparent bitmaps.
func (b *Bitmap) NewSurface() (*gfx.Surface, *kernel.Error) {
	s, err := gfx.NewSurfaceFrom(b.Data, b.Width, b.Height)
	if err != nil {
		return nil, err
	}

	if b.Transparent {
		s.SetColorKey(b.TransparentIndex)
	}
	return s, nil
}

// Register adds b to the list of available bitmaps. Bitmaps that are
// unnamed or whose data is shorter than their dimensions are ignored.
func Register(b *Bitmap) {
	if b == nil || b.Name == "" || !b.Valid() {
		return
	}
	availableBitmaps = append(availableBitmaps, b)
}

// FindByName looks up a bitmap by name. If the bitmap is not found then the
// function returns nil.
func FindByName(name string) *Bitmap {
	for _, b := range availableBitmaps {
		if b.Name == name {
			return b
		}
	}

	return nil
}

// BestFit returns the bitmap whose height is closest to a tenth of the
// screen height.
func BestFit(screenWidth, screenHeight int) *Bitmap {
	var (
		best                *Bitmap
		bestDelta, absDelta int
		threshold           = screenHeight / 10
	)

	for _, b := range availableBitmaps {
		if b.Width > screenWidth || b.Height > screenHeight {
			continue
		}

		absDelta = b.Height - threshold
		if absDelta < 0 {
			absDelta = -absDelta
		}

		if best == nil || absDelta < bestDelta {
			best = b
			bestDelta = absDelta
		}
	}

	return best
}
