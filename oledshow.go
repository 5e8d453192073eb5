// Package oledshow rotates a fixed set of drawing demos on a small
// monochrome OLED display.
//
// The package contains the frame rotation loop and drivers for the
// SH1106/SSD1306 panel family; the drawing routines themselves live in
// the demo subpackage and the buffer and shape primitives in pixel and
// raster.
package oledshow

import (
	"errors"
	"image"

	"github.com/BeatGlow/oledshow/pixel"
)

// Errors
var (
	// ErrNotReady is returned when the display has not completed its
	// power-up sequence, or has been shut down.
	ErrNotReady = errors.New("oledshow: display not ready")

	// ErrFormat is returned when a frame buffer format does not match
	// what the display expects.
	ErrFormat = errors.New("oledshow: unsupported buffer format")
)

// Display is a panel that rendered frames are flushed to.
type Display interface {
	// Bounds is the display bounding box (dimensions).
	Bounds() image.Rectangle

	// Ready reports whether the panel completed its power-up sequence.
	// It returns ErrNotReady if it did not.
	Ready() error

	// Flush writes the frame buffer to the panel.
	Flush(pixel.Image) error

	// SetContrast adjusts the contrast level.
	SetContrast(level uint8) error

	// Show toggles the display on or off.
	Show(bool) error

	// Close blanks the display and shuts the driver down. It does not
	// close the underlying bus connection.
	Close() error
}

// Config is the display configuration.
type Config struct {
	// Width of the display in pixels.
	Width int

	// Height of the display in pixels.
	Height int

	// Contrast level set during init, 0 means the driver default.
	Contrast uint8
}
