package core

import "time"

// Speed control bounds. The raw value is the 0..100 position of the speed
// control; the mapped rate is the automaton step rate in generations/second.
const (
	RawMin = 0.0
	RawMax = 100.0

	MinRate = 0.2
	MaxRate = 1000.0

	// rawPivot splits the control into a linear low band and a quadratic
	// high band so slow rates stay easy to dial in precisely.
	rawPivot  = 25.0
	pivotRate = 1.0
)

// MapRate converts a raw control position in [0, 100] to a step rate in
// [MinRate, MaxRate]. Below the pivot the mapping is linear from 0.2 to
// 1 Hz; above it a quadratic ramp compresses 1 to 1000 Hz into the rest of
// the control travel. The two pieces meet at the pivot.
func MapRate(raw float64) float64 {
	if raw < RawMin {
		raw = RawMin
	}
	if raw > RawMax {
		raw = RawMax
	}
	if raw < rawPivot {
		return MinRate + raw/rawPivot*(pivotRate-MinRate)
	}
	t := (raw - rawPivot) / (RawMax - rawPivot)
	return pivotRate + t*t*(MaxRate-pivotRate)
}

// StepInterval returns the duration of one step at the given rate.
func StepInterval(rateHz float64) time.Duration {
	if rateHz <= 0 {
		rateHz = MinRate
	}
	return time.Duration(float64(time.Second) / rateHz)
}
