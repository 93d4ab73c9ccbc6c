package display

import (
	"strings"
	"testing"
	"time"

	"github.com/relabs-tech/light_monitor/internal/env"
	"github.com/relabs-tech/light_monitor/internal/light"
)

func sampleSnapshot(stale bool) Snapshot {
	return Snapshot{
		Light: light.Aggregate(100, 110, 10),
		Env: env.Reading{
			TemperatureF: 68.0,
			HumidityPct:  45.0,
			SampledAt:    time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC),
			Stale:        stale,
		},
	}
}

func TestFrameLinesFields(t *testing.T) {
	lines := frameLines(sampleSnapshot(false))

	if !strings.Contains(lines[0], "S1") || !strings.Contains(lines[0], "100") {
		t.Errorf("row 1 missing S1 value: %q", lines[0])
	}
	if !strings.Contains(lines[0], "S2") || !strings.Contains(lines[0], "110") {
		t.Errorf("row 1 missing S2 value: %q", lines[0])
	}
	if !strings.Contains(lines[1], "Avg") || !strings.Contains(lines[1], "105") {
		t.Errorf("row 2 missing average: %q", lines[1])
	}
	if !strings.Contains(lines[1], "Rd") || !strings.Contains(lines[1], "10") {
		t.Errorf("row 2 missing raw delta: %q", lines[1])
	}
	if !strings.Contains(lines[2], "9.52") || !strings.Contains(lines[2], "Valid Y") {
		t.Errorf("row 3 missing delta pct or validity: %q", lines[2])
	}
	if !strings.Contains(lines[3], "68.0F") || !strings.Contains(lines[3], "45.0%") {
		t.Errorf("row 4 missing temperature or humidity: %q", lines[3])
	}
}

func TestFrameLinesFitDisplay(t *testing.T) {
	// Face7x13 fits 18 characters across 128 pixels.
	wide := Snapshot{
		Light: light.Aggregate(1, 65535, 10),
		Env:   env.Reading{TemperatureF: 104.0, HumidityPct: 99.9, Stale: true},
	}
	for _, snap := range []Snapshot{sampleSnapshot(true), wide} {
		for i, line := range frameLines(snap) {
			if len(line) > 18 {
				t.Errorf("row %d exceeds display width (%d chars): %q", i+1, len(line), line)
			}
		}
	}
}

func TestFrameLinesStaleMarker(t *testing.T) {
	fresh := frameLines(sampleSnapshot(false))
	stale := frameLines(sampleSnapshot(true))
	if strings.HasSuffix(fresh[3], "*") {
		t.Errorf("fresh reading should not be marked stale: %q", fresh[3])
	}
	if !strings.HasSuffix(stale[3], "*") {
		t.Errorf("stale reading should carry the marker: %q", stale[3])
	}
}

func TestFrameLinesInvalid(t *testing.T) {
	snap := Snapshot{Light: light.Aggregate(100, 200, 10)}
	lines := frameLines(snap)
	if !strings.Contains(lines[2], "Valid N") {
		t.Errorf("expected Valid N for divergent readings: %q", lines[2])
	}
}

func TestConsoleRender(t *testing.T) {
	var sb strings.Builder
	c := NewConsole(&sb)
	c.Render(sampleSnapshot(true))

	out := sb.String()
	for _, want := range []string{"S1=", "S2=", "Avg=", "Rd=", "Pct=", "Valid=Y", "T=68.0F", "H=45.0%", "(stale)"} {
		if !strings.Contains(out, want) {
			t.Errorf("console output missing %q: %q", want, out)
		}
	}
}
