package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/host/v3"

	"github.com/BeatGlow/oledshow"
	"github.com/BeatGlow/oledshow/demo"
	"github.com/BeatGlow/oledshow/pixel"
)

func main() {
	widthFlag := flag.Int("width", 128, "Display width")
	heightFlag := flag.Int("height", 64, "Display height")
	durationFlag := flag.Duration("duration", oledshow.DefaultDuration, "How long each demo stays on screen")
	tickFlag := flag.Duration("tick", oledshow.DefaultTick, "Wait granularity during a demo window")
	contrastFlag := flag.Uint("contrast", 0, "Contrast level (0 = driver default)")
	i2cDeviceFlag := flag.Int("i2c-dev", oledshow.DefaultI2CConfig.Device, "I²C device number (default: use first available)")
	i2cAddrFlag := flag.Uint("i2c-addr", uint(oledshow.DefaultI2CConfig.Addr), "I²C device address")
	spiBusFlag := flag.Int("spi-bus", 0, "SPI bus")
	spiDeviceFlag := flag.Int("spi-dev", 0, "SPI device")
	resetPinFlag := flag.String("reset", "GPIO25", "Reset GPIO pin")
	dcPinFlag := flag.String("dc", "GPIO24", "Data/Command GPIO pin (DC)")
	cePinFlag := flag.String("ce", "GPIO8", "Chip enable GPIO pin")
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <i2c|spi> <sh1106|ssd1306>\n", os.Args[0])
		os.Exit(1)
	}

	if _, err := host.Init(); err != nil {
		fatal(err)
	}

	var (
		conn oledshow.Conn
		err  error
	)
	switch busType := flag.Arg(0); busType {
	case "i2c":
		conn, err = oledshow.OpenI2C(&oledshow.I2CConfig{
			Device: *i2cDeviceFlag,
			Addr:   uint8(*i2cAddrFlag),
			Reset:  gpioreg.ByName(*resetPinFlag),
		})
	case "spi":
		conn, err = oledshow.OpenSPI(&oledshow.SPIConfig{
			Bus:    *spiBusFlag,
			Device: *spiDeviceFlag,
			Reset:  gpioreg.ByName(*resetPinFlag),
			DC:     gpioreg.ByName(*dcPinFlag),
			CE:     gpioreg.ByName(*cePinFlag),
		})
	default:
		err = fmt.Errorf("unsupported bus type %q", busType)
	}
	if err != nil {
		fatal(err)
	}
	defer conn.Close()
	fmt.Printf("using connection: %s\n", conn)

	config := &oledshow.Config{
		Width:    *widthFlag,
		Height:   *heightFlag,
		Contrast: uint8(*contrastFlag),
	}
	var output oledshow.Display
	switch driver := strings.ToLower(flag.Arg(1)); driver {
	case "sh1106":
		output, err = oledshow.SH1106(conn, config)
	case "ssd1306":
		output, err = oledshow.SSD1306(conn, config)
	default:
		err = fmt.Errorf("unsupported driver %q", driver)
	}
	if err != nil {
		fatal(err)
	}
	defer output.Close()
	fmt.Printf("using driver: %s\n", output)

	frame, err := pixel.New(pixel.Mono1, config.Width, config.Height)
	if err != nil {
		fatal(err)
	}

	loop, err := oledshow.NewLoop(output, frame, demo.All(), &oledshow.LoopConfig{
		Duration: *durationFlag,
		Tick:     *tickFlag,
	})
	if err != nil {
		fatal(err)
	}
	if err := loop.Run(); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, "fatal: "+err.Error())
	os.Exit(1)
}
