// Copyright (c) 2026 Daniel Alarcon Rubio / Relabs Tech
// SPDX-License-Identifier: MIT
// See LICENSE file for full license text


package sensors

import (
	"math"
	"time"

	"github.com/relabs-tech/light_monitor/internal/light"
)

// SimulatedLDR generates a smooth changing light level for running the
// pipeline without hardware.
type SimulatedLDR struct {
	start time.Time
	base  float64
	swing float64
	phase float64
}

// NewSimulatedLDR returns a source oscillating around base by +-swing.
// Give the two channels slightly different phases to exercise the
// agreement check.
func NewSimulatedLDR(base, swing, phase float64) *SimulatedLDR {
	return &SimulatedLDR{start: time.Now(), base: base, swing: swing, phase: phase}
}

func (s *SimulatedLDR) Read() light.RawIntensity {
	elapsed := time.Since(s.start).Seconds()
	v := s.base + s.swing*math.Sin(elapsed/30+s.phase)
	if v < 0 {
		v = 0
	}
	if v > math.MaxUint16 {
		v = math.MaxUint16
	}
	return light.RawIntensity(v)
}

// SimulatedEnv generates slowly drifting room conditions.
type SimulatedEnv struct {
	start time.Time
}

func NewSimulatedEnv() *SimulatedEnv {
	return &SimulatedEnv{start: time.Now()}
}

func (s *SimulatedEnv) Trigger() (float64, float64, error) {
	elapsed := time.Since(s.start).Seconds()
	tempC := 21 + 2*math.Sin(elapsed/600)
	humidity := 45 + 5*math.Cos(elapsed/900)
	return tempC, humidity, nil
}
