// Package light computes the aggregate view of the two redundant LDR
// channels: average, raw delta, percentage delta and the agreement check.
package light

// RawIntensity is a dimensionless light level from one LDR channel,
// in the converter's 16-bit range.
type RawIntensity uint16

// Snapshot is the aggregate of one pair of LDR readings taken in the
// same cycle. It is never mutated after Aggregate returns.
type Snapshot struct {
	S1       RawIntensity `json:"s1"`
	S2       RawIntensity `json:"s2"`
	Average  float64      `json:"average"`
	DeltaAbs float64      `json:"delta_abs"`
	DeltaPct float64      `json:"delta_pct"`
	Valid    bool         `json:"valid"`
}

// Aggregate combines the two channel readings. The percentage delta is the
// absolute difference expressed against the average; the pair is valid when
// that stays within maxDeltaPct. Two sensors disagreeing beyond the
// tolerance usually means one of them is shaded or misoriented.
//
// A zero average (both channels fully dark) leaves DeltaPct at zero and
// forces Valid to false rather than dividing by zero.
func Aggregate(s1, s2 RawIntensity, maxDeltaPct float64) Snapshot {
	snap := Snapshot{S1: s1, S2: s2}

	v1, v2 := float64(s1), float64(s2)
	snap.Average = (v1 + v2) / 2
	if v1 >= v2 {
		snap.DeltaAbs = v1 - v2
	} else {
		snap.DeltaAbs = v2 - v1
	}

	if snap.Average == 0 {
		return snap
	}

	snap.DeltaPct = snap.DeltaAbs / snap.Average * 100
	snap.Valid = snap.DeltaPct <= maxDeltaPct
	return snap
}
