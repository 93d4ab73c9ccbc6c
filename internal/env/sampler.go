package env

import "time"

// Trigger requests one fresh measurement from the combined sensor. The
// driver reports "called too soon" and communication/checksum problems the
// same way, as a non-nil error; the sampler does not distinguish them.
type Trigger interface {
	Trigger() (tempC, humidityPct float64, err error)
}

// Sampler enforces the minimum re-trigger interval of the combined sensor
// at the application level and caches the last good reading across cycles.
// It is owned by the single monitor loop and needs no locking.
type Sampler struct {
	trigger     Trigger
	minInterval time.Duration

	last       Reading
	lastSample time.Time
}

// NewSampler returns a sampler in its initial state: a zero-valued sentinel
// reading marked stale, so the display has something to show before the
// first successful trigger.
func NewSampler(t Trigger, minInterval time.Duration) *Sampler {
	return &Sampler{
		trigger:     t,
		minInterval: minInterval,
		last:        Reading{Stale: true},
	}
}

// Sample returns the reading for the current cycle. If the minimum interval
// since the last successful trigger has not elapsed the cached reading is
// returned stale and the hardware is not touched. A trigger failure also
// falls back to the cache and leaves the interval clock unchanged, so the
// next cycle retries as soon as the interval allows.
func (s *Sampler) Sample(now time.Time) Reading {
	if now.Sub(s.lastSample) < s.minInterval {
		return s.cached()
	}

	tempC, humidity, err := s.trigger.Trigger()
	if err != nil {
		return s.cached()
	}

	s.lastSample = now
	s.last = Reading{
		TemperatureF: CToF(tempC),
		HumidityPct:  humidity,
		SampledAt:    now,
	}
	return s.last
}

func (s *Sampler) cached() Reading {
	r := s.last
	r.Stale = true
	return r
}
