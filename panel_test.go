package oledshow

import (
	"errors"
	"image"
	"testing"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/oledshow/pixel"
)

type fakeConn struct {
	commands [][]byte
	data     [][]byte
}

func (c *fakeConn) String() string         { return "fake bus" }
func (c *fakeConn) Close() error           { return nil }
func (c *fakeConn) Reset(gpio.Level) error { return nil }

func (c *fakeConn) Command(cmnd byte, args ...byte) error {
	c.commands = append(c.commands, append([]byte{cmnd}, args...))
	return nil
}

func (c *fakeConn) Data(data ...byte) error {
	c.data = append(c.data, append([]byte(nil), data...))
	return nil
}

func (c *fakeConn) clear() {
	c.commands = nil
	c.data = nil
}

func TestSH1106(t *testing.T) {
	bus := new(fakeConn)
	d, err := SH1106(bus, &Config{})
	if err != nil {
		t.Fatal(err)
	}

	if b := d.Bounds(); b != image.Rect(0, 0, 128, 64) {
		t.Errorf("expected 128x64 bounds, got %s", b)
	}
	if err := d.Ready(); err != nil {
		t.Errorf("expected display to be ready after init, got %v", err)
	}

	// Init flushes a blank frame: 8 pages of 128 columns.
	if len(bus.data) != 8 {
		t.Fatalf("expected 8 data pages during init, got %d", len(bus.data))
	}
	for page, data := range bus.data {
		if len(data) != 128 {
			t.Fatalf("page %d has %d bytes, expected 128", page, len(data))
		}
		for _, b := range data {
			if b != 0 {
				t.Fatalf("page %d is not blank", page)
			}
		}
	}

	t.Run("flush", func(it *testing.T) {
		bus.clear()
		frame := pixel.NewMonoImage(128, 64)

		// y=10 lands in page 1 bit 2, x=3 in column 3.
		if err := frame.SetPixel(3, 10, pixel.On); err != nil {
			it.Fatal(err)
		}
		if err := d.Flush(frame); err != nil {
			it.Fatal(err)
		}

		if len(bus.data) != 8 {
			it.Fatalf("expected 8 data pages, got %d", len(bus.data))
		}
		for page, data := range bus.data {
			for x, b := range data {
				var want byte
				if page == 1 && x == 3 {
					want = 1 << 2
				}
				if b != want {
					it.Fatalf("page %d column %d is %#02x, expected %#02x", page, x, b, want)
				}
			}
		}

		// Each page is addressed with the column offset of the 132
		// column controller RAM.
		addr := bus.commands[1]
		if len(addr) != 3 || addr[0] != setPageAddr|1 {
			it.Errorf("unexpected page 1 address command % #x", addr)
		}
		if addr[1] != setLowColumn|sh1106ColOffset {
			it.Errorf("unexpected low column command %#02x", addr[1])
		}
	})

	t.Run("wrong-format", func(it *testing.T) {
		gray := pixel.NewGray8Image(128, 64)
		if err := d.Flush(gray); !errors.Is(err, ErrFormat) {
			it.Errorf("expected ErrFormat, got %v", err)
		}
	})

	t.Run("wrong-size", func(it *testing.T) {
		small := pixel.NewMonoImage(64, 48)
		if err := d.Flush(small); err == nil {
			it.Error("expected an error flushing a mismatched frame")
		}
	})

	t.Run("close", func(it *testing.T) {
		if err := d.Close(); err != nil {
			it.Fatal(err)
		}
		if err := d.Ready(); !errors.Is(err, ErrNotReady) {
			it.Errorf("expected ErrNotReady after close, got %v", err)
		}
	})
}

func TestSH1106UnsupportedSize(t *testing.T) {
	if _, err := SH1106(new(fakeConn), &Config{Width: 100, Height: 60}); err == nil {
		t.Error("expected an error for an unsupported panel size")
	}
}

func TestSSD1306(t *testing.T) {
	bus := new(fakeConn)
	d, err := SSD1306(bus, &Config{})
	if err != nil {
		t.Fatal(err)
	}

	if b := d.Bounds(); b != image.Rect(0, 0, 128, 64) {
		t.Errorf("expected 128x64 bounds, got %s", b)
	}
	if err := d.Ready(); err != nil {
		t.Errorf("expected display to be ready after init, got %v", err)
	}

	bus.clear()
	frame := pixel.NewMonoImage(128, 64)
	if err := frame.SetPixel(127, 63, pixel.On); err != nil {
		t.Fatal(err)
	}
	if err := d.Flush(frame); err != nil {
		t.Fatal(err)
	}

	if len(bus.data) != 8 {
		t.Fatalf("expected 8 data pages, got %d", len(bus.data))
	}

	// y=63 is page 7 bit 7, x=127 the last column.
	last := bus.data[7]
	if last[127] != 0x80 {
		t.Errorf("expected last column of page 7 to be 0x80, got %#02x", last[127])
	}

	// Pages are addressed through the column address range.
	addr := bus.commands[0]
	if addr[0] != setColumnAddr {
		t.Errorf("expected column address command, got % #x", addr)
	}
}

func TestSSD1306UnsupportedSize(t *testing.T) {
	if _, err := SSD1306(new(fakeConn), &Config{Width: 100, Height: 60}); err == nil {
		t.Error("expected an error for an unsupported panel size")
	}
}
