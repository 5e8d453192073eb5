package demo

import (
	"image"

	"github.com/BeatGlow/oledshow/pixel"
	"github.com/BeatGlow/oledshow/raster"
)

// smiley is a 32x32 1-bit face, packed MSB first, 4 bytes per row. Set
// bits are drawn, clear bits show the background.
var smiley = &raster.Bitmap{
	W:      32,
	H:      32,
	Stride: 4,
	Pix: []byte{
		0x00, 0x03, 0xC0, 0x00,
		0x00, 0x1F, 0xF8, 0x00,
		0x00, 0x7F, 0xFE, 0x00,
		0x00, 0xFF, 0xFF, 0x00,
		0x01, 0xFF, 0xFF, 0x80,
		0x03, 0xFF, 0xFF, 0xC0,
		0x07, 0xFF, 0xFF, 0xE0,
		0x0F, 0xFF, 0xFF, 0xF0,
		0x0F, 0xFF, 0xFF, 0xF0,
		0x1F, 0x9F, 0xF9, 0xF8, // eyes start
		0x1F, 0x0F, 0xF0, 0xF8,
		0x3F, 0x0F, 0xF0, 0xFC,
		0x3F, 0x0F, 0xF0, 0xFC,
		0x3F, 0x9F, 0xF9, 0xFC, // eyes end
		0x3F, 0xFF, 0xFF, 0xFC,
		0x3F, 0xFF, 0xFF, 0xFC,
		0x3F, 0xFF, 0xFF, 0xFC,
		0x3F, 0xFF, 0xFF, 0xFC,
		0x3F, 0xFF, 0xFF, 0xFC,
		0x3E, 0xFF, 0xFF, 0x7C, // mouth starts
		0x1E, 0x7F, 0xFE, 0x78,
		0x1F, 0x3F, 0xFC, 0xF8,
		0x0F, 0x9F, 0xF9, 0xF0,
		0x0F, 0xC0, 0x03, 0xF0,
		0x07, 0xF0, 0x0F, 0xE0,
		0x03, 0xFF, 0xFF, 0xC0,
		0x01, 0xFF, 0xFF, 0x80,
		0x00, 0xFF, 0xFF, 0x00,
		0x00, 0x7F, 0xFE, 0x00,
		0x00, 0x1F, 0xF8, 0x00,
		0x00, 0x03, 0xC0, 0x00,
		0x00, 0x00, 0x00, 0x00,
	},
}

// Image blits the built-in bitmap to the center of the frame.
func Image(img pixel.Image) error {
	drawCentered(img, labelFace, "Bitmap", topBaseline(labelFace, 2))

	b := img.Bounds()
	origin := image.Pt((b.Dx()-smiley.W)/2, (b.Dy()-smiley.H)/2+6)
	raster.Blit(img, smiley, origin, pixel.On)
	return nil
}
