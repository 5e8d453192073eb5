package oledshow

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/BeatGlow/oledshow/pixel"
)

// Rotation defaults.
const (
	// DefaultDuration is how long each demo stays on screen.
	DefaultDuration = 2 * time.Second

	// DefaultTick is the wait granularity while a demo is on screen.
	DefaultTick = 30 * time.Millisecond
)

// ErrNoDemos is returned when a loop is created with an empty rotation.
var ErrNoDemos = errors.New("oledshow: no demos to rotate")

// Demo is one entry in the rotation: a name for diagnostics and a
// routine that draws one complete frame into an already-cleared buffer.
// The routine must leave the buffer display-ready and must not retain a
// reference to it after returning.
type Demo struct {
	Name string
	Draw func(pixel.Image) error
}

// LoopConfig configures the rotation loop. The zero value selects the
// defaults.
type LoopConfig struct {
	// Duration each demo stays on screen.
	Duration time.Duration

	// Tick is the wait granularity during a demo's display window.
	Tick time.Duration

	// OnTick, when set, is invoked once per tick so a collaborating
	// drawing library can run deferred work.
	OnTick func()
}

// Loop rotates through a fixed sequence of demos on a display. The
// frame buffer is owned by the loop: it is cleared, drawn and flushed
// strictly sequentially, and never mutated during the wait phase.
type Loop struct {
	display  Display
	frame    pixel.Image
	demos    []Demo
	duration time.Duration
	tick     time.Duration
	onTick   func()
	sleep    func(time.Duration)
	current  int
}

// NewLoop creates a rotation loop over the given demo sequence. The
// sequence is fixed; it is not copied and must not be mutated.
func NewLoop(display Display, frame pixel.Image, demos []Demo, config *LoopConfig) (*Loop, error) {
	if len(demos) == 0 {
		return nil, ErrNoDemos
	}
	if config == nil {
		config = new(LoopConfig)
	}

	l := &Loop{
		display:  display,
		frame:    frame,
		demos:    demos,
		duration: config.Duration,
		tick:     config.Tick,
		onTick:   config.OnTick,
		sleep:    time.Sleep,
	}
	if l.duration <= 0 {
		l.duration = DefaultDuration
	}
	if l.tick <= 0 {
		l.tick = DefaultTick
	}
	return l, nil
}

// Current returns the index of the demo shown next.
func (l *Loop) Current() int {
	return l.current
}

// Run verifies once that the display is ready, then rotates demos until
// an error occurs. It does not return otherwise.
func (l *Loop) Run() error {
	if err := l.display.Ready(); err != nil {
		return err
	}
	for {
		if err := l.Step(); err != nil {
			return err
		}
	}
}

// Step shows the current demo for one full display window, then
// advances the rotation by one.
func (l *Loop) Step() error {
	d := l.demos[l.current]
	log.Printf("demo %d/%d: %s", l.current+1, len(l.demos), d.Name)

	l.frame.Clear()
	if err := d.Draw(l.frame); err != nil {
		return fmt.Errorf("oledshow: demo %s: %w", d.Name, err)
	}
	if err := l.display.Flush(l.frame); err != nil {
		return fmt.Errorf("oledshow: flush: %w", err)
	}

	// Wait out the display window in small increments, yielding to the
	// tick hook each time.
	for elapsed := time.Duration(0); elapsed < l.duration; elapsed += l.tick {
		if l.onTick != nil {
			l.onTick()
		}
		l.sleep(l.tick)
	}

	l.current = (l.current + 1) % len(l.demos)
	return nil
}
