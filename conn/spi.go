package conn

import (
	"fmt"
	"os"

	"github.com/BeatGlow/oledshow/internal/ioctl"
)

const spiDevPath = "/dev/spidev"

// Definitions from <spi/spidev.h>
const (
	spiIOCMode        = 0x6b01
	spiIOCBitsPerWord = 0x6b03
	spiIOCMaxSpeedHz  = 0x6b04
)

// SPI implements the spidev interface.
type SPI struct {
	f           *os.File
	fd          uintptr
	bitsPerWord uint8
	maxSpeedHz  uint32
}

// OpenSPI opens the numbered SPI bus with the numbered device. The
// device usually corresponds to the CS pin for that bus.
func OpenSPI(bus, device int) (*SPI, error) {
	spidev := fmt.Sprintf("%s%d.%d", spiDevPath, bus, device)
	f, err := os.OpenFile(spidev, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}

	c := &SPI{
		f:  f,
		fd: f.Fd(),
	}
	if err = ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &c.bitsPerWord, spiIOCBitsPerWord), &c.bitsPerWord); err != nil {
		_ = f.Close()
		return nil, err
	}
	if err = ioctl.Do(c.fd, ioctl.Pointer(ioctl.Read, &c.maxSpeedHz, spiIOCMaxSpeedHz), &c.maxSpeedHz); err != nil {
		_ = f.Close()
		return nil, err
	}

	return c, nil
}

func (c *SPI) Close() error {
	return c.f.Close()
}

func (c *SPI) String() string {
	return fmt.Sprintf("SPI bits per word=%d max speed=%dHz", c.bitsPerWord, c.maxSpeedHz)
}

func (c *SPI) MaxSpeed() int {
	return int(c.maxSpeedHz)
}

func (c *SPI) SetMaxSpeed(v int) error {
	if v <= 0 {
		return nil
	}

	u := uint32(v)
	if c.maxSpeedHz != u {
		if err := ioctl.Do(c.fd, ioctl.Pointer(ioctl.Write, &u, spiIOCMaxSpeedHz), &u); err != nil {
			return err
		}
		c.maxSpeedHz = u
	}
	return nil
}

func (c *SPI) Write(b []byte) (n int, err error) {
	return c.f.Write(b)
}
