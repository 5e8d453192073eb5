package demo

import (
	"image"

	"github.com/BeatGlow/oledshow/pixel"
	"github.com/BeatGlow/oledshow/raster"
)

// Lines draws a closed triangle and two corner-to-corner diagonals.
func Lines(img pixel.Image) error {
	b := img.Bounds()

	// Top-center, bottom-left, bottom-right, back to the top to close
	// the shape.
	raster.Polyline(img, []image.Point{
		{X: 64, Y: 5},
		{X: 20, Y: 58},
		{X: 108, Y: 58},
		{X: 64, Y: 5},
	}, pixel.On)

	raster.Line(img, image.Pt(0, 0), image.Pt(b.Max.X-1, b.Max.Y-1), pixel.On)
	raster.Line(img, image.Pt(b.Max.X-1, 0), image.Pt(0, b.Max.Y-1), pixel.On)
	return nil
}
