package oledshow

import (
	"fmt"

	"github.com/BeatGlow/oledshow/pixel"
)

const (
	ssd1306DefaultWidth  = 128
	ssd1306DefaultHeight = 64
)

type ssd1306 struct {
	panel
	colStart byte
	colEnd   byte
}

// SSD1306 is a driver for the Solomon Systech SSD1306 OLED display.
func SSD1306(conn Conn, config *Config) (Display, error) {
	d := &ssd1306{
		panel: panel{c: conn},
	}

	if config.Width == 0 {
		config.Width = ssd1306DefaultWidth
	}
	if config.Height == 0 {
		config.Height = ssd1306DefaultHeight
	}

	if err := d.init(config); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *ssd1306) String() string {
	return fmt.Sprintf("SSD1306 OLED %dx%d", d.width, d.height)
}

func (d *ssd1306) init(config *Config) (err error) {
	var (
		displayClockDiv byte
		comPins         byte
		colStart        byte
	)
	switch {
	case config.Width == 64 && config.Height == 32:
		displayClockDiv, comPins, colStart = 0x80, 0x12, 32
	case config.Width == 64 && config.Height == 48:
		displayClockDiv, comPins, colStart = 0x80, 0x12, 32
	case config.Width == 96 && config.Height == 16:
		displayClockDiv, comPins, colStart = 0x60, 0x02, 0
	case config.Width == 128 && config.Height == 32:
		displayClockDiv, comPins, colStart = 0x80, 0x02, 0
	case config.Width == 128 && config.Height == 64:
		displayClockDiv, comPins, colStart = 0x80, 0x12, 0
	default:
		return fmt.Errorf("oledshow: SSD1306 unsupported size %dx%d", config.Width, config.Height)
	}

	if err = d.panel.init(config); err != nil {
		return
	}
	d.colStart = colStart
	d.colEnd = colStart + byte(config.Width)

	if err = d.command(
		setDisplayOff,
		setDisplayClockDiv, displayClockDiv,
		setMultiplexRatio, byte(config.Height-1),
		setDisplayOffset, 0x00,
		setStartLine,
		setChargePump, 0x14,
		setMemoryMode, 0x00,
		setSegmentRemap,
		setComScanDec,
		setComPins, comPins,
		setPrecharge, 0xF1,
		setVComDetect, 0x40,
		setDisplayAllOnResume,
		setNormalDisplay,
	); err != nil {
		return err
	}

	contrast := config.Contrast
	if contrast == 0 {
		contrast = 0xCF
	}
	if err = d.SetContrast(contrast); err != nil {
		return
	}

	blank := pixel.NewMonoImage(d.width, d.height)
	d.ready = true
	if err = d.Flush(blank); err != nil {
		d.ready = false
		return
	}
	return d.Show(true)
}

func (d *ssd1306) Flush(img pixel.Image) error {
	mono, err := d.checkFrame(img)
	if err != nil {
		return err
	}
	for page := 0; page < d.pages; page++ {
		if err = d.command(
			setColumnAddr, d.colStart, d.colEnd-1,
			setStartLine,
			setPageAddrRange, 0x00, byte(page),
		); err != nil {
			return err
		}
		if err = d.data(d.repackPage(mono, page)...); err != nil {
			return err
		}
	}
	return nil
}
