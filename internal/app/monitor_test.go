package app

import (
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/relabs-tech/light_monitor/internal/display"
	"github.com/relabs-tech/light_monitor/internal/env"
	"github.com/relabs-tech/light_monitor/internal/light"
)

// scriptedChannel returns scripted raw values, repeating the last one when
// exhausted.
type scriptedChannel struct {
	values []light.RawIntensity
	index  int
}

func (s *scriptedChannel) Read() light.RawIntensity {
	v := s.values[s.index]
	if s.index < len(s.values)-1 {
		s.index++
	}
	return v
}

type scriptedTrigger struct {
	tempC    float64
	humidity float64
	err      error
	calls    int
}

func (s *scriptedTrigger) Trigger() (float64, float64, error) {
	s.calls++
	if s.err != nil {
		return 0, 0, s.err
	}
	return s.tempC, s.humidity, nil
}

// recordingRenderer captures every rendered snapshot.
type recordingRenderer struct {
	frames []display.Snapshot
}

func (r *recordingRenderer) Render(snap display.Snapshot) {
	r.frames = append(r.frames, snap)
}

type countingIndicator struct {
	flashes int
	ontime  time.Duration
}

func (c *countingIndicator) Flash(d time.Duration) error {
	c.flashes++
	c.ontime = d
	return nil
}

func newTestMonitor(trig *scriptedTrigger, renderer display.Renderer) *Monitor {
	return &Monitor{
		LDR1:            &scriptedChannel{values: []light.RawIntensity{100, 100, 300}},
		LDR2:            &scriptedChannel{values: []light.RawIntensity{110, 200, 300}},
		Sampler:         env.NewSampler(trig, 20*time.Second),
		Renderer:        renderer,
		MaxDeltaPct:     10,
		CycleInterval:   15 * time.Second,
		IndicatorOntime: 125 * time.Millisecond,
		Log:             zerolog.Nop(),
	}
}

func TestStepAssemblesSnapshot(t *testing.T) {
	trig := &scriptedTrigger{tempC: 20, humidity: 45}
	m := newTestMonitor(trig, &recordingRenderer{})
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	snap := m.Step(now)
	if snap.Light.S1 != 100 || snap.Light.S2 != 110 {
		t.Errorf("expected light readings 100/110, got %d/%d", snap.Light.S1, snap.Light.S2)
	}
	if !snap.Light.Valid {
		t.Error("100/110 at 10 percent tolerance should be valid")
	}
	if snap.Env.TemperatureF != 68.0 || snap.Env.Stale {
		t.Errorf("expected fresh 68.0F environment reading, got %+v", snap.Env)
	}
}

func TestStepLightIsFreshEnvironmentIsCached(t *testing.T) {
	trig := &scriptedTrigger{tempC: 20, humidity: 45}
	m := newTestMonitor(trig, &recordingRenderer{})
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	first := m.Step(now)
	second := m.Step(now.Add(15 * time.Second))

	// Light data is recomputed from this cycle's samples.
	if second.Light.S2 != 200 {
		t.Errorf("expected second cycle to use fresh samples, got S2=%d", second.Light.S2)
	}
	if second.Light.Valid {
		t.Error("100/200 at 10 percent tolerance should be invalid")
	}

	// Environment data within the interval is the cached reading.
	if trig.calls != 1 {
		t.Errorf("expected one trigger call across both cycles, got %d", trig.calls)
	}
	if !second.Env.Stale {
		t.Error("second cycle environment reading should be stale")
	}
	if second.Env.TemperatureF != first.Env.TemperatureF {
		t.Error("cached environment values should carry over unchanged")
	}
}

func TestRunCycleRendersAndFlashes(t *testing.T) {
	trig := &scriptedTrigger{tempC: 20, humidity: 45}
	renderer := &recordingRenderer{}
	m := newTestMonitor(trig, renderer)
	indicator := &countingIndicator{}
	m.Indicator = indicator

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m.runCycle(now)
	m.runCycle(now.Add(15 * time.Second))

	if len(renderer.frames) != 2 {
		t.Fatalf("expected 2 rendered frames, got %d", len(renderer.frames))
	}
	if indicator.flashes != 2 {
		t.Errorf("expected 2 indicator flashes, got %d", indicator.flashes)
	}
	if indicator.ontime != 125*time.Millisecond {
		t.Errorf("expected 125ms on-time, got %v", indicator.ontime)
	}
}

func TestRunCycleSurvivesSensorFailure(t *testing.T) {
	trig := &scriptedTrigger{err: errors.New("sensor not ready")}
	renderer := &recordingRenderer{}
	m := newTestMonitor(trig, renderer)

	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	m.runCycle(now)

	if len(renderer.frames) != 1 {
		t.Fatalf("cycle with a failing sensor must still render, got %d frames", len(renderer.frames))
	}
	if !renderer.frames[0].Env.Stale {
		t.Error("failed trigger should render the stale sentinel reading")
	}
}
