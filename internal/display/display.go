// Package display renders the per-cycle snapshot. Renderers must not fail
// observably: there is no user-facing error channel on the device, so I/O
// problems are logged and swallowed at this boundary.
package display

import (
	"fmt"

	"github.com/relabs-tech/light_monitor/internal/env"
	"github.com/relabs-tech/light_monitor/internal/light"
)

// Snapshot is the full set of values shown for one refresh cycle. It exists
// only for the duration of one Render call.
type Snapshot struct {
	Light light.Snapshot
	Env   env.Reading
}

// Renderer commits one snapshot to an output device.
type Renderer interface {
	Render(Snapshot)
}

// frameLines lays the snapshot out as the fixed rows of the 128x64 frame.
// Face7x13 fits 4 rows of 18 characters, so the fields share rows:
// raw channel values, average and raw delta, percentage delta and validity,
// then temperature and humidity. A trailing '*' marks a stale environment
// reading carried over from an earlier cycle.
func frameLines(snap Snapshot) [4]string {
	valid := "N"
	if snap.Light.Valid {
		valid = "Y"
	}
	stale := ""
	if snap.Env.Stale {
		stale = "*"
	}
	return [4]string{
		fmt.Sprintf("S1 %5d  S2 %5d", snap.Light.S1, snap.Light.S2),
		fmt.Sprintf("Avg %5.0f Rd %5.0f", snap.Light.Average, snap.Light.DeltaAbs),
		fmt.Sprintf("Pct %6.2f Valid %s", snap.Light.DeltaPct, valid),
		fmt.Sprintf("T %5.1fF H %4.1f%%%s", snap.Env.TemperatureF, snap.Env.HumidityPct, stale),
	}
}
