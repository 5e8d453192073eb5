package demo

import (
	"image"
	"image/draw"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/math/fixed"

	"github.com/BeatGlow/oledshow/pixel"
)

// titleFace is a 14px proportional face for headings, labelFace the
// small fixed-width face for captions.
var (
	titleFace font.Face
	labelFace font.Face = basicfont.Face7x13
)

func init() {
	f, err := truetype.Parse(goregular.TTF)
	if err != nil {
		// The font is compiled in; failing to parse it is a build
		// defect, not a runtime condition.
		panic("demo: parsing embedded font: " + err.Error())
	}
	titleFace = truetype.NewFace(f, &truetype.Options{
		Size:    14,
		DPI:     72,
		Hinting: font.HintingFull,
	})
}

// drawCentered draws s horizontally centered with its baseline at y.
func drawCentered(dst draw.Image, face font.Face, s string, y int) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(pixel.On),
		Face: face,
	}
	w := d.MeasureString(s).Ceil()
	d.Dot = fixed.P((dst.Bounds().Dx()-w)/2, y)
	d.DrawString(s)
}

// topBaseline returns the baseline for text whose top edge sits margin
// pixels from the top of the frame.
func topBaseline(face font.Face, margin int) int {
	return margin + face.Metrics().Ascent.Ceil()
}
