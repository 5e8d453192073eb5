package demo

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/BeatGlow/oledshow/pixel"
)

// Canvas dimensions, smaller than the frame so the composed region
// shows centered.
const (
	canvasW = 80
	canvasH = 48
)

// Canvas draws a freeform pixel pattern into an 8-bit grayscale canvas
// with direct pixel writes, then composes the canvas into the center of
// the frame: nested borders, an X of proportionally stepped diagonals,
// and dot grids in the corners.
func Canvas(img pixel.Image) error {
	canvas, err := pixel.New(pixel.L8, canvasW, canvasH)
	if err != nil {
		return err
	}

	p := painter{canvas: canvas, value: pixel.Gray8{Y: 0xff}}

	// Border at the edge and a second one 8 pixels in.
	p.hline(0, canvasW-1, 0)
	p.hline(0, canvasW-1, canvasH-1)
	p.vline(0, 0, canvasH-1)
	p.vline(canvasW-1, 0, canvasH-1)

	p.hline(8, canvasW-9, 8)
	p.hline(8, canvasW-9, canvasH-9)
	p.vline(8, 8, canvasH-9)
	p.vline(canvasW-9, 8, canvasH-9)

	// X across the inner area: as y advances, x moves across
	// proportionally.
	innerW, innerH := canvasW-18, canvasH-18
	for i := 0; i < innerH; i++ {
		y := 9 + i
		p.set(9+(i*innerW)/innerH, y)
		p.set(canvasW-10-(i*innerW)/innerH, y)
	}

	// Dot grid in each corner.
	for dy := 2; dy <= 6; dy += 2 {
		for dx := 2; dx <= 6; dx += 2 {
			p.set(dx, dy)
			p.set(canvasW-1-dx, dy)
			p.set(dx, canvasH-1-dy)
			p.set(canvasW-1-dx, canvasH-1-dy)
		}
	}
	if p.err != nil {
		return p.err
	}

	b := img.Bounds()
	r := image.Rect(0, 0, canvasW, canvasH).
		Add(image.Pt((b.Dx()-canvasW)/2, (b.Dy()-canvasH)/2))
	draw.Draw(img, r, canvas, image.Point{}, draw.Over)
	return nil
}

// painter writes single pixels with strict bounds checking and a sticky
// error, so a stray out-of-range coordinate surfaces instead of being
// clipped away.
type painter struct {
	canvas pixel.Image
	value  color.Color
	err    error
}

func (p *painter) set(x, y int) {
	if p.err == nil {
		p.err = p.canvas.SetPixel(x, y, p.value)
	}
}

func (p *painter) hline(x1, x2, y int) {
	for x := x1; x <= x2; x++ {
		p.set(x, y)
	}
}

func (p *painter) vline(x, y1, y2 int) {
	for y := y1; y <= y2; y++ {
		p.set(x, y)
	}
}
