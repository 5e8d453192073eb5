package oledshow

import (
	"fmt"
	"image"
	"time"

	"periph.io/x/conn/v3/gpio"

	"github.com/BeatGlow/oledshow/pixel"
)

// Command bytes shared by the SH1106/SSD1306 controller family.
const (
	setLowColumn          = 0x00
	setHighColumn         = 0x10
	setMemoryMode         = 0x20
	setColumnAddr         = 0x21
	setPageAddrRange      = 0x22
	setStartLine          = 0x40
	setContrast           = 0x81
	setChargePump         = 0x8D
	setSegmentRemap       = 0xA1
	setDisplayAllOnResume = 0xA4
	setNormalDisplay      = 0xA6
	setMultiplexRatio     = 0xA8
	setDisplayOff         = 0xAE
	setDisplayOn          = 0xAF
	setPageAddr           = 0xB0
	setComScanDec         = 0xC8
	setDisplayOffset      = 0xD3
	setDisplayClockDiv    = 0xD5
	setPrecharge          = 0xD9
	setComPins            = 0xDA
	setVComDetect         = 0xDB
)

// panel is the shared part of the page-addressed monochrome drivers.
type panel struct {
	c       Conn
	width   int
	height  int
	pages   int
	pageBuf []byte
	ready   bool
	halted  bool
}

func (d *panel) init(config *Config) error {
	if config.Width <= 0 || config.Height <= 0 || config.Height%8 != 0 {
		return fmt.Errorf("oledshow: unsupported panel size %dx%d", config.Width, config.Height)
	}
	d.width = config.Width
	d.height = config.Height
	d.pages = config.Height / 8
	d.pageBuf = make([]byte, d.width)
	return d.resetPulse()
}

// resetPulse cycles the reset line; connections without a reset pin
// ignore it.
func (d *panel) resetPulse() error {
	if err := d.c.Reset(gpio.High); err != nil {
		return err
	}
	time.Sleep(time.Millisecond)
	if err := d.c.Reset(gpio.Low); err != nil {
		return err
	}
	time.Sleep(10 * time.Millisecond)
	return d.c.Reset(gpio.High)
}

func (d *panel) command(command byte, args ...byte) error {
	return d.c.Command(command, args...)
}

func (d *panel) data(data ...byte) error {
	return d.c.Data(data...)
}

func (d *panel) Bounds() image.Rectangle {
	return image.Rect(0, 0, d.width, d.height)
}

func (d *panel) Ready() error {
	if !d.ready || d.halted {
		return ErrNotReady
	}
	return nil
}

func (d *panel) Show(show bool) error {
	if show {
		return d.command(setDisplayOn)
	}
	return d.command(setDisplayOff)
}

func (d *panel) SetContrast(level uint8) error {
	return d.command(setContrast, level)
}

func (d *panel) Close() error {
	if !d.halted {
		if err := d.Show(false); err != nil {
			return err
		}
		d.halted = true
	}
	return nil
}

// checkFrame verifies the frame buffer matches the panel.
func (d *panel) checkFrame(img pixel.Image) (*pixel.MonoImage, error) {
	mono, ok := img.(*pixel.MonoImage)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrFormat, img.Format())
	}
	if b := mono.Bounds(); b.Dx() != d.width || b.Dy() != d.height {
		return nil, fmt.Errorf("oledshow: frame is %dx%d, display is %dx%d",
			b.Dx(), b.Dy(), d.width, d.height)
	}
	return mono, nil
}

// repackPage converts one 8-row band of a horizontal MSB-first frame
// into the vertical-LSB layout the controller RAM expects, where each
// byte is an 8-pixel column with bit 0 at the top.
func (d *panel) repackPage(mono *pixel.MonoImage, page int) []byte {
	for x := 0; x < d.width; x++ {
		var v byte
		for bit := 0; bit < 8; bit++ {
			y := page*8 + bit
			if mono.Pix[y*mono.Stride+x/8]&(0x80>>uint(x&7)) != 0 {
				v |= 1 << uint(bit)
			}
		}
		d.pageBuf[x] = v
	}
	return d.pageBuf
}
