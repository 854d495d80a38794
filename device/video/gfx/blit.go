package gfx

import (
	"github.com/TheBigEye/monarch-os/device/video/planar"
	"github.com/TheBigEye/monarch-os/device/video/vga"
	"github.com/TheBigEye/monarch-os/kernel"
	"github.com/TheBigEye/monarch-os/kernel/mem"
)

// blitRegion describes a clipped copy of a w x h block from (sx, sy) in
// the source to (dx, dy) in the destination.
type blitRegion struct {
	sx, sy, dx, dy, w, h int
}

// clipRegion clips a copy of the src rectangle to (dx, dy) against a
// srcW x srcH source and a dstW x dstH destination. Pixels trimmed from one
// side shift the other side so that source and destination stay aligned.
func clipRegion(src Rect, srcW, srcH, dx, dy, dstW, dstH int) (blitRegion, bool) {
	reg := blitRegion{sx: src.X, sy: src.Y, dx: dx, dy: dy, w: src.W, h: src.H}

	if reg.sx < 0 {
		reg.dx -= reg.sx
		reg.w += reg.sx
		reg.sx = 0
	}
	if reg.sy < 0 {
		reg.dy -= reg.sy
		reg.h += reg.sy
		reg.sy = 0
	}
	if reg.dx < 0 {
		reg.sx -= reg.dx
		reg.w += reg.dx
		reg.dx = 0
	}
	if reg.dy < 0 {
		reg.sy -= reg.dy
		reg.h += reg.dy
		reg.dy = 0
	}

	if over := reg.sx + reg.w - srcW; over > 0 {
		reg.w -= over
	}
	if over := reg.sy + reg.h - srcH; over > 0 {
		reg.h -= over
	}
	if over := reg.dx + reg.w - dstW; over > 0 {
		reg.w -= over
	}
	if over := reg.dy + reg.h - dstH; over > 0 {
		reg.h -= over
	}

	return reg, reg.w > 0 && reg.h > 0
}

// Blit copies the srcRect region of src into dst with its top-left corner
// at the origin of dstRect. A nil srcRect selects the whole source. A nil
// dstRect places the copy at (0, 0); a dstRect with a positive width or
// height also limits the copied region to that size, extra source pixels
// are clipped, never scaled. Both rectangles are clipped to their surface.
//
// Source pixels matching the colorkey of src are skipped. When dst uses
// BlendAlpha the remaining pixels are mixed with the destination through
// vga.Blend, otherwise they replace it.
//
// Nil surfaces and empty rectangles make Blit a no-op.
func Blit(src *Surface, srcRect *Rect, dst *Surface, dstRect *Rect) {
	if src == nil || dst == nil || src.pix == nil || dst.pix == nil {
		return
	}

	sr := src.Bounds()
	if srcRect != nil {
		sr = *srcRect
	}
	if sr.Empty() {
		return
	}

	var dx, dy int
	if dstRect != nil {
		dx, dy = dstRect.X, dstRect.Y
		if dstRect.W > 0 && dstRect.W < sr.W {
			sr.W = dstRect.W
		}
		if dstRect.H > 0 && dstRect.H < sr.H {
			sr.H = dstRect.H
		}
	}

	reg, ok := clipRegion(sr, src.width, src.height, dx, dy, dst.width, dst.height)
	if !ok {
		return
	}

	key, useKey := src.ColorKey()
	copyRegion(src, dst, reg, key, useKey, dst.blendMode)
}

// copyRegion copies an already clipped region. Overlapping copies inside
// the same surface walk backwards when the destination follows the source.
func copyRegion(src, dst *Surface, reg blitRegion, key vga.Color, useKey bool, mode BlendMode) {
	rowStart, rowEnd, rowStep := 0, reg.h, 1
	colStart, colEnd, colStep := 0, reg.w, 1
	if src == dst && (reg.dy > reg.sy || (reg.dy == reg.sy && reg.dx > reg.sx)) {
		rowStart, rowEnd, rowStep = reg.h-1, -1, -1
		colStart, colEnd, colStep = reg.w-1, -1, -1
	}

	for row := rowStart; row != rowEnd; row += rowStep {
		srcRow := src.pix[(reg.sy+row)*src.width+reg.sx:]
		dstRow := dst.pix[(reg.dy+row)*dst.width+reg.dx:]

		if !useKey && mode == BlendReplace {
			copy(dstRow[:reg.w], srcRow[:reg.w])
			continue
		}

		for col := colStart; col != colEnd; col += colStep {
			c := srcRow[col]
			if useKey && vga.Color(c) == key {
				continue
			}
			if mode == BlendAlpha {
				c = uint8(vga.Blend(vga.Color(c), vga.Color(dstRow[col])))
			}
			dstRow[col] = c
		}
	}
}

// BlitToScreen draws the srcRect region of s (the whole surface if srcRect
// is nil) onto screen with its top-left corner at (x, y).
//
// Opaque surfaces are packed into a 4bpp bitmap and handed to
// screen.DrawBitmap. Surfaces with a colorkey are drawn pixel by pixel so
// that transparent pixels leave the screen untouched; the same path is used
// when the bitmap cannot be drawn, e.g. because a buffer allocation failed.
func BlitToScreen(screen Screen, s *Surface, srcRect *Rect, x, y int) {
	if screen == nil || s == nil || s.pix == nil {
		return
	}

	sr := s.Bounds()
	if srcRect != nil {
		sr = *srcRect
	}
	if sr.Empty() {
		return
	}

	screenW, screenH := screen.Dimensions()
	reg, ok := clipRegion(sr, s.width, s.height, x, y, screenW, screenH)
	if !ok {
		return
	}

	key, useKey := s.ColorKey()
	if !useKey && s.drawPacked(screen, reg) == nil {
		return
	}

	for row := 0; row < reg.h; row++ {
		srcRow := s.pix[(reg.sy+row)*s.width+reg.sx:]
		for col := 0; col < reg.w; col++ {
			c := vga.Color(srcRow[col])
			if useKey && c == key {
				continue
			}
			screen.SetPixel(c, reg.dx+col, reg.dy+row)
		}
	}
}

// drawPacked pushes the source part of reg to screen as a single bitmap.
func (s *Surface) drawPacked(screen Screen, reg blitRegion) *kernel.Error {
	buf, err := allocator.Alloc(mem.Size(planar.PackedStride(reg.w) * reg.h))
	if err != nil {
		return err
	}
	defer allocator.Free(buf)

	s.packRegion(buf, reg)
	return screen.DrawBitmap(buf, reg.dx, reg.dy, reg.w, reg.h)
}

// packRegion writes the source part of reg to buf as a packed 4bpp bitmap.
func (s *Surface) packRegion(buf []byte, reg blitRegion) {
	stride := planar.PackedStride(reg.w)
	for row := 0; row < reg.h; row++ {
		src := s.pix[(reg.sy+row)*s.width+reg.sx:]
		out := buf[row*stride : (row+1)*stride]
		for i := range out {
			out[i] = 0
		}

		for col := 0; col < reg.w; col++ {
			if col&1 == 0 {
				out[col>>1] = src[col] << 4
			} else {
				out[col>>1] |= src[col]
			}
		}
	}
}
