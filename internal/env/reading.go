// Package env owns the combined temperature/humidity reading and the
// minimum-interval sampling policy layered in front of the sensor driver.
package env

import "time"

// Reading represents a single decoded temperature/humidity measurement.
// Stale marks a reading carried over from an earlier cycle because a fresh
// sample could not be taken this cycle.
type Reading struct {
	TemperatureF float64   `json:"temp_f"`
	HumidityPct  float64   `json:"humidity_pct"`
	SampledAt    time.Time `json:"sampled_at"`
	Stale        bool      `json:"stale"`
}

// CToF converts a Celsius reading to the Fahrenheit value shown on the
// display.
func CToF(c float64) float64 {
	return c*9/5 + 32
}
