package gfx

import (
	"github.com/TheBigEye/monarch-os/device/video/raster"
	"github.com/TheBigEye/monarch-os/device/video/vga"
	"github.com/TheBigEye/monarch-os/kernel"
)

func (s *Surface) plotter(c vga.Color) raster.PlotFn {
	return func(x, y int) {
		s.SetPixel(c, x, y)
	}
}

// FillRect sets every pixel of r that lies inside s to c.
func FillRect(s *Surface, r Rect, c vga.Color) {
	if s == nil {
		return
	}

	r = r.Intersect(s.Bounds())
	for row := r.Y; row < r.Y+r.H; row++ {
		line := s.pix[row*s.width+r.X : row*s.width+r.X+r.W]
		for i := range line {
			line[i] = uint8(c & 0x0f)
		}
	}
}

// DrawRect draws the one pixel wide outline of r.
func DrawRect(s *Surface, r Rect, c vga.Color) {
	if s == nil || r.Empty() {
		return
	}
	raster.Rect(r.X, r.Y, r.W-1, r.H-1, false, s.plotter(c))
}

// DrawLine draws a line from (x0, y0) to (x1, y1), both end points included.
func DrawLine(s *Surface, x0, y0, x1, y1 int, c vga.Color) {
	if s == nil {
		return
	}
	raster.Line(x0, y0, x1, y1, s.plotter(c))
}

// DrawCircle draws the outline of a circle of radius r centered at
// (cx, cy).
func DrawCircle(s *Surface, cx, cy, r int, c vga.Color) {
	if s == nil {
		return
	}
	raster.Circle(cx, cy, r, s.plotter(c))
}

// FillCircle fills a circle of radius r centered at (cx, cy) using the
// same coverage rule as the planar driver.
func FillCircle(s *Surface, cx, cy, r int, c vga.Color) {
	if s == nil {
		return
	}
	raster.FilledCircle(cx, cy, r, s.plotter(c))
}

// Flip mirrors s in place around its vertical axis (horizontal) and/or its
// horizontal axis (vertical).
func Flip(s *Surface, horizontal, vertical bool) {
	if s == nil || s.pix == nil {
		return
	}

	if horizontal {
		for row := 0; row < s.height; row++ {
			line := s.pix[row*s.width : (row+1)*s.width]
			for l, r := 0, len(line)-1; l < r; l, r = l+1, r-1 {
				line[l], line[r] = line[r], line[l]
			}
		}
	}

	if vertical {
		for top, bottom := 0, s.height-1; top < bottom; top, bottom = top+1, bottom-1 {
			a := s.pix[top*s.width : (top+1)*s.width]
			b := s.pix[bottom*s.width : (bottom+1)*s.width]
			for i := range a {
				a[i], b[i] = b[i], a[i]
			}
		}
	}
}

// NewSprite returns a new surface holding a copy of the r region of sheet,
// clipped to the sheet bounds. The sprite inherits the sheet's colorkey
// and blend mode.
func NewSprite(sheet *Surface, r Rect) (*Surface, *kernel.Error) {
	if sheet == nil {
		return nil, ErrInvalidSize
	}

	r = r.Intersect(sheet.Bounds())
	sprite, err := NewSurface(r.W, r.H)
	if err != nil {
		return nil, err
	}

	copyRegion(sheet, sprite, blitRegion{sx: r.X, sy: r.Y, w: r.W, h: r.H}, vga.Black, false, BlendReplace)
	sprite.colorKey, sprite.hasColorKey = sheet.colorKey, sheet.hasColorKey
	sprite.blendMode = sheet.blendMode
	return sprite, nil
}

// Scale returns a copy of s enlarged by an integer factor using nearest
// neighbour sampling. The copy inherits the colorkey and blend mode of s.
func Scale(s *Surface, factor int) (*Surface, *kernel.Error) {
	if factor < 1 {
		return nil, ErrInvalidScale
	}
	if s == nil || s.pix == nil {
		return nil, ErrInvalidSize
	}

	out, err := NewSurface(s.width*factor, s.height*factor)
	if err != nil {
		return nil, err
	}

	for y := 0; y < out.height; y++ {
		src := s.pix[(y/factor)*s.width:]
		dst := out.pix[y*out.width : (y+1)*out.width]
		for x := range dst {
			dst[x] = src[x/factor]
		}
	}

	out.colorKey, out.hasColorKey = s.colorKey, s.hasColorKey
	out.blendMode = s.blendMode
	return out, nil
}
