package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"
)

// Arc draws an elliptical arc around center with horizontal radius rx
// and vertical radius ry, from startDeg to endDeg. Angles are in
// degrees, measured from the positive x axis towards positive y, and
// normalized into [0,360). The sweep always runs in the increasing-angle
// direction and wraps past 360 when the end angle does not exceed the
// start angle, so equal start and end draw the full ellipse.
func Arc(dst draw.Image, center image.Point, rx, ry int, startDeg, endDeg float64, c color.Color) {
	maxR := rx
	if ry > maxR {
		maxR = ry
	}
	if maxR < 1 {
		dst.Set(center.X, center.Y, c)
		return
	}

	start := normDeg(startDeg)
	end := normDeg(endDeg)
	if end <= start {
		end += 360
	}

	// Step 1/maxR radians per plotted point, which keeps consecutive
	// points at most one pixel apart along the widest axis.
	step := (180 / math.Pi) / float64(maxR)

	for a := start; a < end; a += step {
		plotArcPoint(dst, center, rx, ry, a, c)
	}
	plotArcPoint(dst, center, rx, ry, end, c)
}

func plotArcPoint(dst draw.Image, center image.Point, rx, ry int, deg float64, c color.Color) {
	rad := deg * (math.Pi / 180)
	x := center.X + int(math.Round(float64(rx)*math.Cos(rad)))
	y := center.Y + int(math.Round(float64(ry)*math.Sin(rad)))
	dst.Set(x, y, c)
}

func normDeg(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}
