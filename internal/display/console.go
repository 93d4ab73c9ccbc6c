package display

import (
	"fmt"
	"io"
)

// Console writes each snapshot as one line of text. Used by the console
// binary and anywhere a physical display is not attached.
type Console struct {
	w io.Writer
}

func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

func (c *Console) Render(snap Snapshot) {
	valid := "N"
	if snap.Light.Valid {
		valid = "Y"
	}
	stale := ""
	if snap.Env.Stale {
		stale = " (stale)"
	}
	fmt.Fprintf(
		c.w,
		"S1=%5d  S2=%5d  Avg=%7.1f  Rd=%5.0f  Pct=%6.2f  Valid=%s  T=%.1fF  H=%.1f%%%s\n",
		snap.Light.S1,
		snap.Light.S2,
		snap.Light.Average,
		snap.Light.DeltaAbs,
		snap.Light.DeltaPct,
		valid,
		snap.Env.TemperatureF,
		snap.Env.HumidityPct,
		stale,
	)
}
