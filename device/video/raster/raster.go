// Package raster implements the integer rasterizers shared by the planar
// driver and software surfaces. Each rasterizer reports the pixels it
// covers through a PlotFn; clipping is left to the plot target.
package raster

// PlotFn receives every pixel produced by a rasterizer.
type PlotFn func(x, y int)

// Line plots a Bresenham line from (x0, y0) to (x1, y1), both end points
// included. The walk only stops once the end point has been plotted.
func Line(x0, y0, x1, y1 int, plot PlotFn) {
	dx, sx := x1-x0, 1
	if dx < 0 {
		dx, sx = -dx, -1
	}

	dy, sy := -(y1 - y0), 1
	if dy > 0 {
		dy, sy = -dy, -1
	}

	err := dx + dy
	for {
		plot(x0, y0)
		if x0 == x1 && y0 == y1 {
			return
		}

		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Circle plots the outline of a circle using the midpoint algorithm. Every
// step plots all eight symmetric points, so points on the diagonals and axes
// may be reported more than once. Negative radii plot nothing.
func Circle(cx, cy, r int, plot PlotFn) {
	if r < 0 {
		return
	}

	x, y, p := 0, r, 1-r
	for x <= y {
		plot(cx+x, cy+y)
		plot(cx-x, cy+y)
		plot(cx+x, cy-y)
		plot(cx-x, cy-y)
		plot(cx+y, cy+x)
		plot(cx-y, cy+x)
		plot(cx+y, cy-x)
		plot(cx-y, cy-x)

		x++
		if p < 0 {
			p += 2*x + 1
		} else {
			y--
			p += 2*(x-y) + 1
		}
	}
}

// FilledCircle plots every point of the bounding box of a circle for which
// x*x + y*y < r*r - r. The tightened radius keeps the edge free of isolated
// pixels; it must not be relaxed to r*r.
func FilledCircle(cx, cy, r int, plot PlotFn) {
	if r < 0 {
		return
	}

	limit := r*r - r
	for y := -r; y <= r; y++ {
		for x := -r; x <= r; x++ {
			if x*x+y*y < limit {
				plot(cx+x, cy+y)
			}
		}
	}
}

// Rect plots the outline of the rectangle spanning (x, y) to (x+w, y+h)
// inclusive. When solid is set, the rows y through y+h-1 are filled too.
func Rect(x, y, w, h int, solid bool, plot PlotFn) {
	Line(x, y, x, y+h, plot)
	Line(x, y, x+w, y, plot)
	Line(x+w, y, x+w, y+h, plot)
	Line(x, y+h, x+w, y+h, plot)

	if !solid {
		return
	}

	for row := y; row < y+h; row++ {
		Line(x, row, x+w, row, plot)
	}
}
