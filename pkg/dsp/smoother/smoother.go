// Package smoother provides an asymmetric one-pole smoothing filter,
// the building block behind gain smoothing and, reused with its
// attack/release semantics swapped, the noise-floor tracker's
// min-follower.
package smoother

import "github.com/cj-vana/automix/pkg/dsp/mathx"

// Smoother holds a current value and two coefficients derived from
// independent attack and release time constants. Process selects the
// attack coefficient when the input is rising above the current value,
// and the release coefficient otherwise.
type Smoother struct {
	current     float64
	attackCoef  float64
	releaseCoef float64
}

// New creates a Smoother with coefficients derived from attack/release
// time constants in milliseconds at the given sample rate.
func New(attackMs, releaseMs, sampleRate float64) *Smoother {
	s := &Smoother{}
	s.SetCoefficients(attackMs, releaseMs, sampleRate)
	return s
}

// SetCoefficients rederives both coefficients from time constants in
// milliseconds.
func (s *Smoother) SetCoefficients(attackMs, releaseMs, sampleRate float64) {
	s.attackCoef = mathx.TimeConstantToCoeff(attackMs, sampleRate)
	s.releaseCoef = mathx.TimeConstantToCoeff(releaseMs, sampleRate)
}

// Process advances the smoother by one step toward input and returns the
// new current value.
func (s *Smoother) Process(input float64) float64 {
	var coef float64
	if input > s.current {
		coef = s.attackCoef
	} else {
		coef = s.releaseCoef
	}
	s.current += coef * (input - s.current)
	return s.current
}

// SetImmediate assigns the current value directly, bypassing smoothing.
func (s *Smoother) SetImmediate(v float64) {
	s.current = v
}

// Current returns the smoother's current value without advancing it.
func (s *Smoother) Current() float64 {
	return s.current
}
