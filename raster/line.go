// Package raster draws shape primitives onto a pixel buffer.
//
// All primitives use integer stepping and clip silently at the buffer
// edges: shapes may legitimately cross them. Only the angle stepping in
// [Arc] uses floating point.
package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Line draws a line between two points using integer Bresenham stepping.
// The plotted pixel set does not depend on the point order, and a line
// from a point to itself plots exactly that point.
func Line(dst draw.Image, a, b image.Point, c color.Color) {
	bresenham(dst, a.X, a.Y, b.X, b.Y, c)
}

// Polyline draws a line between each consecutive pair of points. A
// closed shape is drawn by repeating the first point at the end of the
// sequence.
func Polyline(dst draw.Image, points []image.Point, c color.Color) {
	for i := 1; i < len(points); i++ {
		bresenham(dst, points[i-1].X, points[i-1].Y, points[i].X, points[i].Y, c)
	}
}

// HorizontalLine draws a line between (x,y) and (x+w-1,y).
func HorizontalLine(dst draw.Image, x, y, w int, c color.Color) {
	bresenham(dst, x, y, x+w-1, y, c)
}

// VerticalLine draws a line between (x,y) and (x,y+h-1).
func VerticalLine(dst draw.Image, x, y, h int, c color.Color) {
	bresenham(dst, x, y, x, y+h-1, c)
}

// Generalized with integer.
func bresenham(dst draw.Image, x1, y1, x2, y2 int, c color.Color) {
	// Sorting the points in x-axis order halves the number of cases and
	// makes drawing a→b plot the same pixels as b→a.
	if x1 > x2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}

	dx, dy := x2-x1, y2-y1
	sy := 1
	if dy < 0 {
		dy, sy = -dy, -1
	}

	switch {

	// Is line a point?
	case dx == 0 && dy == 0:
		dst.Set(x1, y1, c)

	// Is line horizontal?
	case dy == 0:
		for x := x1; x <= x2; x++ {
			dst.Set(x, y1, c)
		}

	// Is line vertical?
	case dx == 0:
		for i := 0; i <= dy; i++ {
			dst.Set(x1, y1+i*sy, c)
		}

	// Is line a perfect diagonal?
	case dx == dy:
		for i := 0; i <= dx; i++ {
			dst.Set(x1+i, y1+i*sy, c)
		}

	// Wider than high: step in x, accumulate error in y.
	case dx > dy:
		x, y := x1, y1
		e, slope := dx, 2*dx
		for ; dx != 0; dx-- {
			dst.Set(x, y, c)
			x++
			e -= 2 * dy
			if e < 0 {
				y += sy
				e += slope
			}
		}
		dst.Set(x2, y2, c)

	// Higher than wide: step in y, accumulate error in x.
	default:
		x, y := x1, y1
		e, slope := dy, 2*dy
		for ; dy != 0; dy-- {
			dst.Set(x, y, c)
			y += sy
			e -= 2 * dx
			if e < 0 {
				x++
				e += slope
			}
		}
		dst.Set(x2, y2, c)
	}
}
