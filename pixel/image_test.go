package pixel

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func TestMonoImage(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewMonoImage(size.X, size.Y)
	}, MonoModel)
}

func TestGray8Image(t *testing.T) {
	testImage(t, func(size image.Point) Image {
		return NewGray8Image(size.X, size.Y)
	}, Gray8Model)
}

func testImage(t *testing.T, f func(image.Point) Image, model color.Model) {
	t.Helper()
	testCases := []image.Point{
		image.Pt(1, 1),
		image.Pt(2, 2),
		image.Pt(128, 64),
		image.Pt(80, 48),
	}
	for _, test := range testCases {
		t.Run(test.String(), func(it *testing.T) {
			i := f(test)

			if v := i.Bounds().Size(); !v.Eq(test) {
				it.Errorf("expected image size %s, got %s", test, v)
			}

			if v := i.ColorModel(); v != model {
				it.Errorf("expected color model %T, got %T", model, v)
			}

			it.Run("in-bounds", func(itt *testing.T) {
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						c := testRandomColor()
						if err := i.SetPixel(x, y, c); err != nil {
							itt.Fatalf("SetPixel(%d,%d): %v", x, y, err)
						}
						if v := i.ColorModel().Convert(c); i.At(x, y) != v {
							itt.Fatalf("pixel (%d,%d) is %#+v, expected %#+v (%v)", x, y, i.At(x, y), v, c)
						}
					}
				}
			})

			it.Run("out-bounds", func(itt *testing.T) {
				i.Clear()
				before := append([]byte(nil), i.Bytes()...)
				for _, p := range []image.Point{
					{X: -1, Y: 0},
					{X: 0, Y: -1},
					{X: test.X, Y: 0},
					{X: 0, Y: test.Y},
					{X: test.X * 2, Y: test.Y * 2},
				} {
					if err := i.SetPixel(p.X, p.Y, On); !errors.Is(err, ErrBounds) {
						itt.Fatalf("SetPixel(%d,%d): expected ErrBounds, got %v", p.X, p.Y, err)
					}
					if v := i.At(p.X, p.Y); v != color.Transparent {
						itt.Fatalf("pixel (%d,%d) is %#+v, expected transparent", p.X, p.Y, v)
					}
					// Set must clip silently.
					i.Set(p.X, p.Y, On)
				}
				if !bytes.Equal(before, i.Bytes()) {
					itt.Error("out of bounds writes modified the buffer")
				}
			})

			it.Run("fill", func(itt *testing.T) {
				c := testRandomColor()
				i.Fill(c)

				// Fill must be indistinguishable from setting every
				// pixel individually.
				j := f(test)
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						j.Set(x, y, c)
					}
				}
				for y := 0; y < test.Y; y++ {
					for x := 0; x < test.X; x++ {
						if i.At(x, y) != j.At(x, y) {
							itt.Fatalf("pixel (%d,%d) is %#+v after fill, %#+v after set", x, y, i.At(x, y), j.At(x, y))
						}
					}
				}
			})

			it.Run("clear", func(itt *testing.T) {
				i.Clear()
				x := rand.Intn(test.X)
				y := rand.Intn(test.Y)
				if v := monoModel(i.At(x, y)); v != Off {
					itt.Fatalf("pixel (%d,%d) is not black", x, y)
				}
			})
		})
	}
}

func TestNew(t *testing.T) {
	t.Run("mono", func(it *testing.T) {
		i, err := New(Mono1, 128, 64)
		if err != nil {
			it.Fatal(err)
		}
		if _, ok := i.(*MonoImage); !ok {
			it.Fatalf("expected *MonoImage, got %T", i)
		}
		if want := 16 * 64; len(i.Bytes()) != want {
			it.Errorf("expected %d packed bytes, got %d", want, len(i.Bytes()))
		}
	})

	t.Run("gray", func(it *testing.T) {
		i, err := New(L8, 80, 48)
		if err != nil {
			it.Fatal(err)
		}
		if _, ok := i.(*Gray8Image); !ok {
			it.Fatalf("expected *Gray8Image, got %T", i)
		}
		if want := 80 * 48; len(i.Bytes()) != want {
			it.Errorf("expected %d packed bytes, got %d", want, len(i.Bytes()))
		}
	})

	t.Run("invalid-size", func(it *testing.T) {
		for _, size := range []image.Point{
			{X: 0, Y: 64},
			{X: 128, Y: 0},
			{X: -1, Y: 64},
			{X: 1 << 20, Y: 1 << 20},
		} {
			if _, err := New(Mono1, size.X, size.Y); !errors.Is(err, ErrSize) {
				it.Errorf("New(%s): expected ErrSize, got %v", size, err)
			}
		}
	})

	t.Run("unknown-format", func(it *testing.T) {
		if _, err := New(Format(0xff), 16, 16); err == nil {
			it.Error("expected error for unknown format")
		}
	})
}

func TestMonoImageStride(t *testing.T) {
	// Widths that are not a multiple of 8 round up to whole bytes.
	i := NewMonoImage(10, 4)
	if i.Stride != 2 {
		t.Errorf("expected stride 2, got %d", i.Stride)
	}
	if len(i.Pix) != 8 {
		t.Errorf("expected 8 packed bytes, got %d", len(i.Pix))
	}
}

func testRandomColor() color.Color {
	return color.RGBA{
		R: uint8(rand.Intn(255)),
		G: uint8(rand.Intn(255)),
		B: uint8(rand.Intn(255)),
		A: 0xFF,
	}
}
