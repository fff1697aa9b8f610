// Package noisefloor implements the adaptive minimum-follower used to
// gate channel activity without a fixed threshold.
//
// It reuses the asymmetric one-pole smoother from pkg/dsp/smoother, but
// with its attack/release semantics intentionally swapped: the
// smoother's "attack" coefficient is driven from NoiseFloorFallMs
// (slow, so speech cannot lift the floor) and its "release" coefficient
// from NoiseFloorRiseMs (fast, so the floor descends quickly toward
// quiet). This is not a bug; preserve the swap.
package noisefloor

import (
	"github.com/cj-vana/automix/pkg/dsp/mathx"
	"github.com/cj-vana/automix/pkg/dsp/smoother"
)

const (
	// NoiseFloorRiseMs is the time constant for tracking downward
	// toward quiet. It lands in the smoother's release slot; see the
	// swap documented above.
	NoiseFloorRiseMs = 500.0

	// NoiseFloorFallMs is the time constant for tracking upward (the
	// smoother's attack slot), slow so speech cannot lift the floor.
	NoiseFloorFallMs = 5000.0

	// DefaultMarginDB is the default above-floor threshold for
	// "active".
	DefaultMarginDB = 6.0

	// InitialFloorDB is the high initial floor the tracker descends
	// from.
	InitialFloorDB = -60.0
)

// Tracker maintains an adaptive estimate of the quietest persistent
// signal level on a channel.
type Tracker struct {
	smoother     *smoother.Smoother
	floorLevel   float64
	marginLinear float64
	initialized  bool
}

// New creates a Tracker at the given sample rate with the default 6dB
// margin, primed to InitialFloorDB.
func New(sampleRate float64) *Tracker {
	t := &Tracker{}
	t.reinit(sampleRate)
	t.SetMarginDb(DefaultMarginDB)
	return t
}

func (t *Tracker) reinit(sampleRate float64) {
	// Swap preserved per the package doc: smoother attack <- fall time,
	// smoother release <- rise time.
	t.smoother = smoother.New(NoiseFloorFallMs, NoiseFloorRiseMs, sampleRate)
	t.floorLevel = mathx.DbToLinear(InitialFloorDB)
	t.smoother.SetImmediate(t.floorLevel)
	t.initialized = false
}

// SetMarginDb sets the above-floor threshold in dB that defines
// "active".
func (t *Tracker) SetMarginDb(marginDB float64) {
	t.marginLinear = mathx.DbToLinear(marginDB)
}

// Update feeds the current RMS level into the tracker. When the signal
// is near the floor, the floor tracks toward it; otherwise the floor is
// fed back to itself, so speech never lifts it.
func (t *Tracker) Update(rms float64) {
	if rms < t.floorLevel*t.marginLinear {
		t.floorLevel = t.smoother.Process(rms)
	} else {
		t.floorLevel = t.smoother.Process(t.floorLevel)
	}
	t.initialized = true
}

// IsActive reports whether rms is above the current floor plus margin.
func (t *Tracker) IsActive(rms float64) bool {
	return rms > t.floorLevel*t.marginLinear
}

// FloorLinear returns the current floor estimate in linear amplitude.
func (t *Tracker) FloorLinear() float64 {
	return t.floorLevel
}

// FloorDb returns the current floor estimate in decibels.
func (t *Tracker) FloorDb() float64 {
	return mathx.LinearToDb(t.floorLevel)
}

// Initialized reports whether Update has been called at least once
// since construction or the last Reset.
func (t *Tracker) Initialized() bool {
	return t.initialized
}

// Reset recreates the smoother, reprimes the floor to InitialFloorDB,
// and clears the initialized flag.
func (t *Tracker) Reset(sampleRate float64) {
	marginLinear := t.marginLinear
	t.reinit(sampleRate)
	t.marginLinear = marginLinear
}
