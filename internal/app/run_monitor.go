package app

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"

	"github.com/relabs-tech/light_monitor/internal/config"
	"github.com/relabs-tech/light_monitor/internal/display"
	"github.com/relabs-tech/light_monitor/internal/env"
	"github.com/relabs-tech/light_monitor/internal/sensors"
)

// RunMonitor performs the peripheral handshake and starts the monitor loop
// on real hardware. It only returns on a startup failure; once the loop is
// running the process ends with the power supply.
func RunMonitor(cfg *config.Config, logger zerolog.Logger) error {
	// Initialize periph
	if _, err := host.Init(); err != nil {
		return fmt.Errorf("failed to initialize periph: %w", err)
	}

	// The display and the ADC share one I2C bus. It stays open for the
	// process lifetime.
	bus, err := i2creg.Open(cfg.I2CBus)
	if err != nil {
		return fmt.Errorf("failed to open I2C bus: %w", err)
	}

	renderer, err := display.NewOLED(bus, logger.With().Str("component", "display").Logger())
	if err != nil {
		return err
	}
	logger.Info().Msg("display initialized")

	ldr1, ldr2, err := sensors.NewLDRPair(bus, cfg, logger.With().Str("component", "adc").Logger())
	if err != nil {
		return err
	}
	logger.Info().Int("ldr1", cfg.LDR1Channel).Int("ldr2", cfg.LDR2Channel).Msg("LDR channels bound")

	trigger, err := sensors.NewDHTTrigger(cfg.DHTPin)
	if err != nil {
		return err
	}
	logger.Info().Str("pin", cfg.DHTPin).Msg("DHT11 initialized")

	// A missing indicator LED is not worth refusing to start over.
	var indicator Indicator
	if led, err := sensors.NewLED(cfg.IndicatorPin); err != nil {
		logger.Warn().Err(err).Str("pin", cfg.IndicatorPin).Msg("indicator LED unavailable")
	} else {
		indicator = led
	}

	monitor := &Monitor{
		LDR1:            ldr1,
		LDR2:            ldr2,
		Sampler:         env.NewSampler(trigger, time.Duration(cfg.EnvMinIntervalMS)*time.Millisecond),
		Renderer:        renderer,
		Indicator:       indicator,
		MaxDeltaPct:     cfg.MaxDeltaPct,
		CycleInterval:   time.Duration(cfg.CycleIntervalMS) * time.Millisecond,
		IndicatorOntime: time.Duration(cfg.IndicatorOntimeMS) * time.Millisecond,
		Log:             logger,
	}

	logger.Info().Dur("cycle", monitor.CycleInterval).Msg("starting monitor loop")
	monitor.Run()
	return nil
}
