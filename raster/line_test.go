package raster

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/BeatGlow/oledshow/pixel"
)

func TestLineSymmetry(t *testing.T) {
	pairs := []struct {
		a, b image.Point
	}{
		{image.Pt(0, 0), image.Pt(127, 63)},   // shallow
		{image.Pt(127, 0), image.Pt(0, 63)},   // shallow, falling
		{image.Pt(5, 2), image.Pt(9, 60)},     // steep
		{image.Pt(9, 60), image.Pt(12, 3)},    // steep, rising
		{image.Pt(10, 10), image.Pt(50, 10)},  // horizontal
		{image.Pt(10, 10), image.Pt(10, 50)},  // vertical
		{image.Pt(10, 10), image.Pt(40, 40)},  // diagonal
		{image.Pt(64, 5), image.Pt(20, 58)},   // triangle edge
		{image.Pt(-10, -5), image.Pt(30, 20)}, // partially clipped
	}
	for _, pair := range pairs {
		t.Run(pair.a.String()+pair.b.String(), func(it *testing.T) {
			fwd := pixel.NewMonoImage(128, 64)
			rev := pixel.NewMonoImage(128, 64)
			Line(fwd, pair.a, pair.b, pixel.On)
			Line(rev, pair.b, pair.a, pixel.On)
			if !bytes.Equal(fwd.Bytes(), rev.Bytes()) {
				it.Errorf("line %s-%s plots different pixels when reversed", pair.a, pair.b)
			}
		})
	}
}

func TestLineDegenerate(t *testing.T) {
	img := pixel.NewMonoImage(32, 32)
	p := image.Pt(7, 11)
	Line(img, p, p, pixel.On)

	lit := litPixels(img)
	if len(lit) != 1 || lit[0] != p {
		t.Errorf("expected exactly pixel %s lit, got %v", p, lit)
	}
}

func TestLineEndpoints(t *testing.T) {
	img := pixel.NewMonoImage(128, 64)
	a, b := image.Pt(3, 4), image.Pt(100, 59)
	Line(img, a, b, pixel.On)
	for _, p := range []image.Point{a, b} {
		if img.At(p.X, p.Y) != pixel.On {
			t.Errorf("endpoint %s not lit", p)
		}
	}
}

func TestLineClipsSilently(t *testing.T) {
	img := pixel.NewMonoImage(16, 16)

	// Both endpoints off the buffer; the crossing segment must still
	// light the in-bounds portion.
	Line(img, image.Pt(-8, 8), image.Pt(24, 8), pixel.On)
	if img.At(0, 8) != pixel.On || img.At(15, 8) != pixel.On {
		t.Error("expected the in-bounds span to be lit")
	}

	// Entirely off the buffer: nothing to draw, nothing to fail.
	img.Clear()
	Line(img, image.Pt(-10, -10), image.Pt(-2, -5), pixel.On)
	if n := len(litPixels(img)); n != 0 {
		t.Errorf("expected no lit pixels, got %d", n)
	}
}

func TestPolylineTriangle(t *testing.T) {
	points := []image.Point{
		{X: 64, Y: 5},
		{X: 20, Y: 58},
		{X: 108, Y: 58},
		{X: 64, Y: 5},
	}

	img := pixel.NewMonoImage(128, 64)
	Polyline(img, points, pixel.On)
	for _, p := range points {
		if img.At(p.X, p.Y) != pixel.On {
			t.Errorf("vertex %s not lit", p)
		}
	}

	// Every edge must be gap free: consecutive plotted pixels differ by
	// at most one in each axis.
	for i := 1; i < len(points); i++ {
		rec := &recorder{bounds: image.Rect(0, 0, 128, 64)}
		Line(rec, points[i-1], points[i], pixel.On)
		for j := 1; j < len(rec.points); j++ {
			prev, cur := rec.points[j-1], rec.points[j]
			if abs(cur.X-prev.X) > 1 || abs(cur.Y-prev.Y) > 1 {
				t.Fatalf("edge %s-%s has a gap between %s and %s",
					points[i-1], points[i], prev, cur)
			}
		}
	}
}

func TestHorizontalVerticalLine(t *testing.T) {
	img := pixel.NewMonoImage(32, 32)
	HorizontalLine(img, 2, 5, 10, pixel.On)
	VerticalLine(img, 20, 3, 10, pixel.On)

	for x := 2; x < 12; x++ {
		if img.At(x, 5) != pixel.On {
			t.Errorf("pixel (%d,5) not lit", x)
		}
	}
	for y := 3; y < 13; y++ {
		if img.At(20, y) != pixel.On {
			t.Errorf("pixel (20,%d) not lit", y)
		}
	}
	if n := len(litPixels(img)); n != 20 {
		t.Errorf("expected 20 lit pixels, got %d", n)
	}
}

// recorder captures Set calls in plot order.
type recorder struct {
	bounds image.Rectangle
	points []image.Point
}

func (r *recorder) ColorModel() color.Model { return pixel.MonoModel }
func (r *recorder) Bounds() image.Rectangle { return r.bounds }
func (r *recorder) At(x, y int) color.Color { return pixel.Off }

func (r *recorder) Set(x, y int, c color.Color) {
	r.points = append(r.points, image.Pt(x, y))
}

func litPixels(img *pixel.MonoImage) []image.Point {
	var lit []image.Point
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.At(x, y) == pixel.On {
				lit = append(lit, image.Pt(x, y))
			}
		}
	}
	return lit
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
