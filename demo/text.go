package demo

import (
	"github.com/BeatGlow/oledshow/pixel"
)

// Text shows three centered labels in the two available type sizes:
// a proportional heading and two small fixed-width captions.
func Text(img pixel.Image) error {
	b := img.Bounds()

	drawCentered(img, titleFace, "OLED Demo", topBaseline(titleFace, 2))
	drawCentered(img, labelFace, "128x64 pixels", b.Dy()/2+4)
	drawCentered(img, labelFace, "Go + periph.io", b.Dy()-2-labelFace.Metrics().Descent.Ceil())
	return nil
}
