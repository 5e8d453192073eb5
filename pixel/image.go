package pixel

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
)

// Errors returned by buffer operations.
var (
	// ErrSize is returned when a buffer cannot be allocated at the
	// requested dimensions.
	ErrSize = errors.New("pixel: invalid buffer size")

	// ErrBounds is returned by SetPixel for coordinates outside the
	// buffer. Shape primitives clip instead; a stray direct pixel write
	// is a bug in the caller and must not pass silently.
	ErrBounds = errors.New("pixel: coordinates out of bounds")
)

// maxPixels caps buffer allocations at 8M pixels, far beyond any panel
// this package targets.
const maxPixels = 1 << 23

// Format is the pixel packing format of a buffer.
type Format uint8

// Supported formats.
const (
	// Mono1 is 1 bit per pixel monochrome, MSB first.
	Mono1 Format = iota

	// L8 is 8 bits per pixel grayscale.
	L8
)

func (f Format) String() string {
	switch f {
	case Mono1:
		return "1-bit monochrome"
	case L8:
		return "8-bit grayscale"
	default:
		return fmt.Sprintf("format(%d)", uint8(f))
	}
}

// Image is a drawable frame buffer with a packed backing store.
type Image interface {
	draw.Image

	// SetPixel writes one pixel. Unlike Set, coordinates outside the
	// buffer return ErrBounds and leave the buffer unmodified.
	SetPixel(x, y int, c color.Color) error

	// Fill sets every pixel to c.
	Fill(color.Color)

	// Clear sets every pixel to black.
	Clear()

	// Format is the pixel packing format.
	Format() Format

	// Bytes is the packed backing store, stride-aligned and ready to
	// hand to a display driver.
	Bytes() []byte
}

// New allocates a zeroed buffer of the given format and dimensions.
func New(f Format, w, h int) (Image, error) {
	if w <= 0 || h <= 0 || w > maxPixels/h {
		return nil, fmt.Errorf("%w: %dx%d", ErrSize, w, h)
	}
	switch f {
	case Mono1:
		return NewMonoImage(w, h), nil
	case L8:
		return NewGray8Image(w, h), nil
	default:
		return nil, fmt.Errorf("pixel: unsupported format %s", f)
	}
}

// Buffer holds the pixel values and is the container used by the image
// formats in this package.
type Buffer struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix are the packed image pixels.
	Pix []byte

	// Stride is the Pix stride (in bytes) between vertically adjacent
	// pixels.
	Stride int
}

func (p *Buffer) Bounds() image.Rectangle {
	return p.Rect
}

func (p *Buffer) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}

func (p *Buffer) Bytes() []byte {
	return p.Pix
}

func makeBuffer(w, h, stride int) Buffer {
	return Buffer{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, stride*h),
		Stride: stride,
	}
}

// MonoImage is a 1-bit per pixel monochrome image, packed MSB first so
// that bit 7 of each byte is the leftmost pixel.
type MonoImage struct {
	Buffer
}

func NewMonoImage(w, h int) *MonoImage {
	return &MonoImage{
		Buffer: makeBuffer(w, h, (w+7)/8),
	}
}

func (p *MonoImage) ColorModel() color.Model {
	return MonoModel
}

func (p *MonoImage) Format() Format {
	return Mono1
}

func (p *MonoImage) PixOffset(x, y int) int {
	return y*p.Stride + x/8
}

func (p *MonoImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}

	if p.Pix[y*p.Stride+x/8]&(0x80>>uint(x&7)) != 0 {
		return On
	}
	return Off
}

func (p *MonoImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.set(x, y, c)
}

func (p *MonoImage) SetPixel(x, y int, c color.Color) error {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return fmt.Errorf("%w: (%d,%d)", ErrBounds, x, y)
	}
	p.set(x, y, c)
	return nil
}

func (p *MonoImage) set(x, y int, c color.Color) {
	var (
		index = y*p.Stride + x/8
		mask  = byte(0x80) >> uint(x&7)
	)
	if monoModel(c).(Mono).On {
		p.Pix[index] |= mask
	} else {
		p.Pix[index] &^= mask
	}
}

func (p *MonoImage) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// Gray8Image is an 8-bit per pixel grayscale image.
type Gray8Image struct {
	Buffer
}

func NewGray8Image(w, h int) *Gray8Image {
	return &Gray8Image{
		Buffer: makeBuffer(w, h, w),
	}
}

func (p *Gray8Image) ColorModel() color.Model {
	return Gray8Model
}

func (p *Gray8Image) Format() Format {
	return L8
}

func (p *Gray8Image) PixOffset(x, y int) int {
	return y*p.Stride + x
}

func (p *Gray8Image) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return Gray8{Y: p.Pix[y*p.Stride+x]}
}

func (p *Gray8Image) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}
	p.Pix[y*p.Stride+x] = gray8Model(c).(Gray8).Y
}

func (p *Gray8Image) SetPixel(x, y int, c color.Color) error {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return fmt.Errorf("%w: (%d,%d)", ErrBounds, x, y)
	}
	p.Pix[y*p.Stride+x] = gray8Model(c).(Gray8).Y
	return nil
}

func (p *Gray8Image) Fill(c color.Color) {
	value := gray8Model(c).(Gray8).Y
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// Interface checks.
var (
	_ Image = (*MonoImage)(nil)
	_ Image = (*Gray8Image)(nil)
)
