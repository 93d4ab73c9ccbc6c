package sensors

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
)

// LED drives the reading-indicator LED, lit briefly once per cycle so an
// operator can see the monitor is alive.
type LED struct {
	pin gpio.PinIO
}

// NewLED binds the indicator LED by pin name.
func NewLED(name string) (*LED, error) {
	if err := initHost(); err != nil {
		return nil, fmt.Errorf("periph host init: %w", err)
	}

	pin := gpioreg.ByName(name)
	if pin == nil {
		return nil, fmt.Errorf("no GPIO pin named %q", name)
	}
	if err := pin.Out(gpio.Low); err != nil {
		return nil, fmt.Errorf("indicator pin %s: %w", name, err)
	}
	return &LED{pin: pin}, nil
}

// Flash lights the LED for the given duration. The sleep is deliberate: the
// loop runs one cycle at a time and the on-time is part of the cycle.
func (l *LED) Flash(d time.Duration) error {
	if err := l.pin.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(d)
	return l.pin.Out(gpio.Low)
}
