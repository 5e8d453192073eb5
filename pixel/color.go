package pixel

import "image/color"

// Models for the supported color types.
var (
	MonoModel  color.Model = color.ModelFunc(monoModel)
	Gray8Model color.Model = color.ModelFunc(gray8Model)
)

// On and Off are the two monochrome pixel values.
var (
	Off = Mono{false}
	On  = Mono{true}
)

// Mono represents a 1-bit monochrome color.
type Mono struct {
	On bool
}

func (c Mono) RGBA() (r, g, b, a uint32) {
	if c.On {
		return 0xffff, 0xffff, 0xffff, 0xffff
	}
	return 0, 0, 0, 0xffff
}

func monoModel(c color.Color) color.Color {
	if _, ok := c.(Mono); ok {
		return c
	}
	r, g, b, _ := c.RGBA()

	// Luma coefficients per the JFIF specification, scaled so that
	// 19595 + 38470 + 7471 equals 65536. The shift by 31 reduces the
	// 16-bit luma to a single on/off bit.
	y := (19595*r + 38470*g + 7471*b + 1<<15) >> 31

	return Mono{On: y != 0}
}

// Gray8 represents an 8-bit grayscale color.
type Gray8 struct {
	Y uint8
}

func (c Gray8) RGBA() (r, g, b, a uint32) {
	y := uint32(c.Y)
	y |= y << 8
	return y, y, y, 0xffff
}

func gray8Model(c color.Color) color.Color {
	if _, ok := c.(Gray8); ok {
		return c
	}
	r, g, b, _ := c.RGBA()
	y := (299*r + 587*g + 114*b + 500) / 1000
	return Gray8{Y: uint8(y >> 8)}
}
