package oledshow

import (
	"fmt"

	"github.com/BeatGlow/oledshow/pixel"
)

const (
	sh1106DefaultWidth  = 128
	sh1106DefaultHeight = 64

	// The SH1106 RAM is 132 columns wide; a 128 column panel sits
	// centered, 2 columns in.
	sh1106ColOffset = 2
)

type sh1106 struct {
	panel
}

// SH1106 is a driver for the Sino Wealth SH1106 OLED display.
func SH1106(conn Conn, config *Config) (Display, error) {
	d := &sh1106{
		panel: panel{c: conn},
	}

	if config.Width == 0 {
		config.Width = sh1106DefaultWidth
	}
	if config.Height == 0 {
		config.Height = sh1106DefaultHeight
	}

	if err := d.init(config); err != nil {
		return nil, err
	}
	return d, nil
}

func (d *sh1106) String() string {
	return fmt.Sprintf("SH1106 OLED %dx%d", d.width, d.height)
}

func (d *sh1106) init(config *Config) (err error) {
	var (
		multiplexRatio byte
		displayOffset  byte
	)
	switch {
	case config.Width == 128 && config.Height == 32:
		multiplexRatio, displayOffset = 0x20, 0x0f
	case config.Width == 128 && config.Height == 64:
		multiplexRatio, displayOffset = 0x3f, 0x00
	case config.Width == 128 && config.Height == 128:
		multiplexRatio, displayOffset = 0xff, 0x02
	default:
		return fmt.Errorf("oledshow: SH1106 unsupported size %dx%d", config.Width, config.Height)
	}

	if err = d.panel.init(config); err != nil {
		return
	}

	if err = d.command(
		setDisplayOff,
		setMemoryMode,
		setHighColumn, 0x80, setComScanDec,
		setLowColumn, 0x10, setStartLine,
		setSegmentRemap,
		setNormalDisplay,
		setMultiplexRatio, multiplexRatio,
		setDisplayAllOnResume,
		setDisplayOffset, displayOffset,
		setDisplayClockDiv, 0xF0,
		setPrecharge, 0x22,
		setComPins, 0x12,
		setVComDetect, 0x20,
		setChargePump, 0x14,
	); err != nil {
		return err
	}

	contrast := config.Contrast
	if contrast == 0 {
		contrast = 0x7f
	}
	if err = d.SetContrast(contrast); err != nil {
		return
	}

	// Flush a blank frame so stale controller RAM is never shown.
	blank := pixel.NewMonoImage(d.width, d.height)
	d.ready = true
	if err = d.Flush(blank); err != nil {
		d.ready = false
		return
	}
	return d.Show(true)
}

func (d *sh1106) Flush(img pixel.Image) error {
	mono, err := d.checkFrame(img)
	if err != nil {
		return err
	}
	for page := 0; page < d.pages; page++ {
		if err = d.command(
			setPageAddr|byte(page&0xf),
			setLowColumn|(sh1106ColOffset&0xf),
			setHighColumn|(sh1106ColOffset>>4),
		); err != nil {
			return err
		}
		if err = d.data(d.repackPage(mono, page)...); err != nil {
			return err
		}
	}
	return nil
}
