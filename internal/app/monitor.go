// Package app wires the sensors, the sampler and the renderer into the
// monitor loop.
package app

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/relabs-tech/light_monitor/internal/display"
	"github.com/relabs-tech/light_monitor/internal/env"
	"github.com/relabs-tech/light_monitor/internal/light"
)

// AnalogChannel reads one light channel. The contract has no failure mode;
// hardware implementations absorb bus errors themselves.
type AnalogChannel interface {
	Read() light.RawIntensity
}

// Indicator signals that a reading has been taken.
type Indicator interface {
	Flash(d time.Duration) error
}

// Monitor holds the process-wide state: the sensor handles, the environment
// sampler with its cached reading, and the renderer. It is built once at
// startup and never torn down.
type Monitor struct {
	LDR1, LDR2 AnalogChannel
	Sampler    *env.Sampler
	Renderer   display.Renderer
	Indicator  Indicator // optional

	MaxDeltaPct     float64
	CycleInterval   time.Duration
	IndicatorOntime time.Duration

	Log zerolog.Logger
}

// Step runs one cycle of the pipeline: both light channels are read fresh,
// aggregated and paired with the environment reading for this tick. Tests
// drive Step directly with synthetic times instead of real time.
func (m *Monitor) Step(now time.Time) display.Snapshot {
	s1 := m.LDR1.Read()
	s2 := m.LDR2.Read()
	return display.Snapshot{
		Light: light.Aggregate(s1, s2, m.MaxDeltaPct),
		Env:   m.Sampler.Sample(now),
	}
}

// Run executes cycles forever with a fixed inter-cycle delay. There is no
// exit condition; the device is power-cycled rather than shut down.
func (m *Monitor) Run() {
	for {
		m.runCycle(time.Now())
		time.Sleep(m.CycleInterval)
	}
}

func (m *Monitor) runCycle(now time.Time) {
	snap := m.Step(now)

	if m.Indicator != nil {
		if err := m.Indicator.Flash(m.IndicatorOntime); err != nil {
			m.Log.Warn().Err(err).Msg("indicator flash failed")
		}
	}

	m.Renderer.Render(snap)

	m.Log.Debug().
		Uint16("s1", uint16(snap.Light.S1)).
		Uint16("s2", uint16(snap.Light.S2)).
		Float64("avg", snap.Light.Average).
		Float64("delta_pct", snap.Light.DeltaPct).
		Bool("valid", snap.Light.Valid).
		Float64("temp_f", snap.Env.TemperatureF).
		Float64("humidity", snap.Env.HumidityPct).
		Bool("stale", snap.Env.Stale).
		Msg("cycle")
}
