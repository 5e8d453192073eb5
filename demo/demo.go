// Package demo contains the drawing routines cycled on the display.
//
// Each routine draws one complete frame into a cleared buffer using the
// raster primitives and the text faces in this package. Adding a demo
// to the rotation means appending a descriptor to [All]; nothing else
// needs to change.
package demo

import (
	"github.com/BeatGlow/oledshow"
)

// All returns the demo rotation in display order.
func All() []oledshow.Demo {
	return []oledshow.Demo{
		{Name: "Text", Draw: Text},
		{Name: "Lines", Draw: Lines},
		{Name: "Arc", Draw: Arc},
		{Name: "Image", Draw: Image},
		{Name: "Canvas", Draw: Canvas},
	}
}
