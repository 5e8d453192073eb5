// Package pixel implements packed frame buffers for small monochrome and
// grayscale pixel displays.
//
// The buffers are compatible with Go's native [image.Image] and
// [draw.Image] interfaces, and expose their packed backing store for
// handing off to a display driver.
package pixel
