// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text


package app

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/relabs-tech/light_monitor/internal/config"
	"github.com/relabs-tech/light_monitor/internal/display"
	"github.com/relabs-tech/light_monitor/internal/env"
	"github.com/relabs-tech/light_monitor/internal/sensors"
)

// RunConsole runs the full pipeline against simulated sensors and prints
// each cycle to stdout. Useful on a development machine without the board.
func RunConsole(cfg *config.Config, logger zerolog.Logger) error {
	ldr1 := sensors.NewSimulatedLDR(48000, 2500, 0)
	ldr2 := sensors.NewSimulatedLDR(48000, 2500, 0.2)

	monitor := &Monitor{
		LDR1:            ldr1,
		LDR2:            ldr2,
		Sampler:         env.NewSampler(sensors.NewSimulatedEnv(), time.Duration(cfg.EnvMinIntervalMS)*time.Millisecond),
		Renderer:        display.NewConsole(os.Stdout),
		MaxDeltaPct:     cfg.MaxDeltaPct,
		CycleInterval:   time.Duration(cfg.CycleIntervalMS) * time.Millisecond,
		IndicatorOntime: time.Duration(cfg.IndicatorOntimeMS) * time.Millisecond,
		Log:             logger,
	}

	monitor.Run()
	return nil
}
