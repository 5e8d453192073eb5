package oledshow

import (
	"errors"
	"fmt"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"

	"github.com/BeatGlow/oledshow/conn"
)

// Conn errors.
var (
	ErrResetPin = errors.New("oledshow: reset GPIO pin is invalid")
	ErrDCPin    = errors.New("oledshow: data/command (DC) GPIO pin is invalid")
)

// Conn is the connection interface for communicating with the panel.
type Conn interface {
	String() string

	// Close the connection.
	Close() error

	// Reset sets the reset pin to the provided level. Connections
	// without a reset pin ignore the call.
	Reset(gpio.Level) error

	// Command sends a command byte with optional arguments.
	Command(byte, ...byte) error

	// Data sends data bytes.
	Data(...byte) error
}

// I2CConfig describes the I²C bus configuration.
type I2CConfig struct {
	// Device is the I²C device, use -1 to use the first available device.
	Device int

	// Addr is the I²C address.
	Addr uint8

	// Reset pin, optional.
	Reset gpio.PinOut
}

// DefaultI2CConfig are the default configuration values.
var DefaultI2CConfig = I2CConfig{
	Device: -1,
	Addr:   0x3c,
}

type i2cConn struct {
	*conn.I2C
	reset gpio.PinOut
}

// OpenI2C opens an I²C connection to the panel. The SH1106/SSD1306
// protocol prefixes every transfer with a control byte selecting the
// command or data register.
func OpenI2C(config *I2CConfig) (Conn, error) {
	if config == nil {
		config = new(I2CConfig)
		*config = DefaultI2CConfig
	}

	c, err := conn.OpenI2C(config.Device, config.Addr)
	if err != nil {
		return nil, err
	}

	return &i2cConn{
		I2C:   c,
		reset: config.Reset,
	}, nil
}

func (c *i2cConn) Command(cmnd byte, args ...byte) (err error) {
	_, err = c.I2C.Write(append([]byte{0x00, cmnd}, args...))
	return
}

func (c *i2cConn) Data(data ...byte) (err error) {
	_, err = c.I2C.Write(append([]byte{0x40}, data...))
	return
}

func (c *i2cConn) Reset(level gpio.Level) error {
	if c.reset == nil || c.reset == gpio.INVALID {
		return nil
	}
	return c.reset.Out(level)
}

// SPIConfig describes the SPI bus configuration.
type SPIConfig struct {
	Bus       int
	Device    int
	SpeedHz   uint32
	BatchSize uint

	// Reset pin, required.
	Reset gpio.PinOut

	// DC selects between data (high) and command (low) transfers.
	DC gpio.PinOut

	// CE is the chip enable pin, optional.
	CE gpio.PinOut
}

// DefaultSPIConfig are the default configuration values.
var DefaultSPIConfig = SPIConfig{
	SpeedHz:   8_000_000,
	BatchSize: 4096,
	Reset:     gpioreg.ByName("GPIO25"),
	DC:        gpioreg.ByName("GPIO24"),
}

type spiConn struct {
	bus       *conn.SPI
	reset     gpio.PinOut
	dc        gpio.PinOut
	dcLevel   gpio.Level
	cs        gpio.PinOut
	batchSize uint
}

// OpenSPI opens a 4-wire SPI connection to the panel.
func OpenSPI(config *SPIConfig) (Conn, error) {
	if config == nil {
		config = new(SPIConfig)
		*config = DefaultSPIConfig
	}

	if config.Reset == nil || config.Reset == gpio.INVALID {
		return nil, ErrResetPin
	}
	if config.DC == nil || config.DC == gpio.INVALID {
		return nil, ErrDCPin
	}
	if config.SpeedHz == 0 {
		config.SpeedHz = DefaultSPIConfig.SpeedHz
	}
	if config.BatchSize == 0 {
		config.BatchSize = DefaultSPIConfig.BatchSize
	}

	c, err := conn.OpenSPI(config.Bus, config.Device)
	if err != nil {
		return nil, err
	}

	if err = c.SetMaxSpeed(int(config.SpeedHz)); err != nil {
		_ = c.Close()
		return nil, err
	}

	return &spiConn{
		bus:       c,
		batchSize: config.BatchSize,
		reset:     config.Reset,
		dc:        config.DC,
		cs:        config.CE,
	}, nil
}

func (c *spiConn) String() string {
	return fmt.Sprintf("SPI bus %s", c.bus)
}

func (c *spiConn) Close() error {
	return c.bus.Close()
}

func (c *spiConn) Reset(level gpio.Level) error {
	return c.reset.Out(level)
}

func (c *spiConn) updateDC(level gpio.Level) error {
	if c.dcLevel != level {
		if err := c.dc.Out(level); err != nil {
			return err
		}
		c.dcLevel = level
	}
	return nil
}

func (c *spiConn) updateCS(level gpio.Level) error {
	if c.cs == nil {
		return nil
	}
	return c.cs.Out(level)
}

func (c *spiConn) Command(cmnd byte, args ...byte) (err error) {
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	if err = c.updateDC(gpio.Low); err != nil {
		return
	}
	if _, err = c.bus.Write([]byte{cmnd}); err != nil {
		return
	}
	if len(args) > 0 {
		if err = c.updateDC(gpio.High); err != nil {
			return
		}
		if err = c.writeChunked(args); err != nil {
			return
		}
	}
	return c.updateCS(gpio.High)
}

func (c *spiConn) Data(data ...byte) (err error) {
	if len(data) == 0 {
		return
	}
	if err = c.updateDC(gpio.High); err != nil {
		return
	}
	if err = c.updateCS(gpio.Low); err != nil {
		return
	}
	if err = c.writeChunked(data); err != nil {
		return
	}
	return c.updateCS(gpio.High)
}

// writeChunked splits large transfers into batchSize chunks, the
// spidev default transfer size limit.
func (c *spiConn) writeChunked(data []byte) (err error) {
	for len(data) > 0 {
		n := len(data)
		if n > int(c.batchSize) {
			n = int(c.batchSize)
		}
		if _, err = c.bus.Write(data[:n]); err != nil {
			return
		}
		data = data[n:]
	}
	return
}
