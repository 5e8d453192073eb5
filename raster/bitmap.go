package raster

import (
	"image"
	"image/color"
	"image/draw"
)

// Bitmap is an immutable 1-bit per pixel bitmap, packed MSB first so
// that bit 7 of each byte is the leftmost pixel of its group. Set bits
// mark pixels to draw; clear bits are transparent.
type Bitmap struct {
	// W and H are the bitmap dimensions in pixels.
	W, H int

	// Stride is the number of bytes per row.
	Stride int

	// Pix is the packed source data, at least Stride*H bytes.
	Pix []byte
}

// Bit reports whether the bitmap pixel at (x, y) is set. Coordinates
// outside the bitmap are clear.
func (b *Bitmap) Bit(x, y int) bool {
	if x < 0 || y < 0 || x >= b.W || y >= b.H {
		return false
	}
	return b.Pix[y*b.Stride+x/8]&(0x80>>uint(x&7)) != 0
}

// Blit copies the set bits of bm onto dst in the given color, with the
// bitmap's top-left corner at origin. Pixels falling outside dst clip
// silently; a blit placed entirely off the buffer draws nothing.
func Blit(dst draw.Image, bm *Bitmap, origin image.Point, c color.Color) {
	for y := 0; y < bm.H; y++ {
		row := bm.Pix[y*bm.Stride : (y+1)*bm.Stride]
		for x := 0; x < bm.W; x++ {
			if row[x/8]&(0x80>>uint(x&7)) != 0 {
				dst.Set(origin.X+x, origin.Y+y, c)
			}
		}
	}
}
