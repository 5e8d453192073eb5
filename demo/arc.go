package demo

import (
	"image"

	"github.com/BeatGlow/oledshow/pixel"
	"github.com/BeatGlow/oledshow/raster"
)

// Arc draws two circular progress gauges: the value arc runs just
// inside the track arc.
func Arc(img pixel.Image) error {
	b := img.Bounds()
	drawCentered(img, labelFace, "Arc", topBaseline(labelFace, 2))

	cx, cy := b.Dx()/2, b.Dy()/2

	// Large gauge: 75% of a 270 degree track.
	large := image.Pt(cx-20, cy+6)
	raster.Arc(img, large, 24, 24, 0, 270, pixel.On)
	raster.Arc(img, large, 21, 21, 0, 0.75*270, pixel.On)

	// Small gauge: 40% of a full circle.
	small := image.Pt(cx+35, cy+6)
	raster.Arc(img, small, 14, 14, 0, 360, pixel.On)
	raster.Arc(img, small, 11, 11, 0, 0.40*360, pixel.On)
	return nil
}
