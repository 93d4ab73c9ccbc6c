// Package sensors contains the hardware bindings: the ADS1115 behind the
// two LDR channels, the DHT11 combined sensor, the indicator LED and the
// simulated sources used by the console binary.
package sensors

import (
	"fmt"
	"math"
	"sync"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/analog"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/devices/v3/ads1x15"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/light_monitor/internal/config"
	"github.com/relabs-tech/light_monitor/internal/light"
)

var (
	hostOnce    sync.Once
	hostInitErr error
)

// initHost initializes the periph host once.
func initHost() error {
	hostOnce.Do(func() {
		_, hostInitErr = host.Init()
	})
	return hostInitErr
}

// LDRChannel reads one LDR behind an ADS1115 channel. Read always returns a
// value: the conversion hardware is assumed present, so a bus hiccup is
// logged and the previous raw value reused for that cycle.
type LDRChannel struct {
	name string
	pin  analog.PinADC
	last light.RawIntensity
	log  zerolog.Logger
}

// NewLDRPair opens the ADS1115 on the given bus and binds the two
// configured channels.
func NewLDRPair(bus i2c.Bus, cfg *config.Config, log zerolog.Logger) (*LDRChannel, *LDRChannel, error) {
	if err := initHost(); err != nil {
		return nil, nil, fmt.Errorf("periph host init: %w", err)
	}

	adc, err := ads1x15.NewADS1115(bus, &ads1x15.Opts{I2cAddress: cfg.ADCI2CAddr})
	if err != nil {
		return nil, nil, fmt.Errorf("ADS1115 init: %w", err)
	}

	ch1, err := newLDRChannel(adc, cfg.LDR1Channel, "ldr1", log)
	if err != nil {
		return nil, nil, err
	}
	ch2, err := newLDRChannel(adc, cfg.LDR2Channel, "ldr2", log)
	if err != nil {
		return nil, nil, err
	}
	return ch1, ch2, nil
}

func newLDRChannel(adc *ads1x15.Dev, channel int, name string, log zerolog.Logger) (*LDRChannel, error) {
	ch, err := adcChannel(channel)
	if err != nil {
		return nil, err
	}
	// Single-shot conversions; the 15s cycle makes conversion speed
	// irrelevant.
	pin, err := adc.PinForChannel(ch, 3300*physic.MilliVolt, 1*physic.Hertz, ads1x15.SaveEnergy)
	if err != nil {
		return nil, fmt.Errorf("%s channel %d: %w", name, channel, err)
	}
	return &LDRChannel{name: name, pin: pin, log: log}, nil
}

func adcChannel(n int) (ads1x15.Channel, error) {
	switch n {
	case 0:
		return ads1x15.Channel0, nil
	case 1:
		return ads1x15.Channel1, nil
	case 2:
		return ads1x15.Channel2, nil
	case 3:
		return ads1x15.Channel3, nil
	default:
		return 0, fmt.Errorf("ADC channel must be 0-3, got %d", n)
	}
}

// Read returns the current raw intensity.
func (c *LDRChannel) Read() light.RawIntensity {
	sample, err := c.pin.Read()
	if err != nil {
		c.log.Warn().Err(err).Str("channel", c.name).Msg("ADC read failed, reusing last value")
		return c.last
	}

	raw := sample.Raw
	if raw < 0 {
		raw = 0
	}
	if raw > math.MaxUint16 {
		raw = math.MaxUint16
	}
	c.last = light.RawIntensity(raw)
	return c.last
}

// Halt stops conversions on the channel.
func (c *LDRChannel) Halt() error {
	return c.pin.Halt()
}
