package noisefloor

import (
	"testing"

	"github.com/cj-vana/automix/pkg/dsp/mathx"
	"github.com/stretchr/testify/assert"
)

func TestInitialFloor(t *testing.T) {
	tr := New(48000)
	assert.InDelta(t, InitialFloorDB, tr.FloorDb(), 1e-6)
	assert.False(t, tr.Initialized())
}

func TestMonotoneActivity(t *testing.T) {
	// For a fixed floor, IsActive must be monotone non-decreasing in
	// rms.
	tr := New(48000)
	for i := 0; i < 1000; i++ {
		tr.Update(mathx.DbToLinear(-80))
	}

	prevActive := false
	for db := -100.0; db <= 0; db += 0.5 {
		active := tr.IsActive(mathx.DbToLinear(db))
		if prevActive && !active {
			t.Fatalf("activity not monotone at %v dB", db)
		}
		prevActive = active
	}
}

func TestResistsUpwardPull(t *testing.T) {
	sr := 48000.0
	tr := New(sr)

	// Converge to -80dB over a few seconds of quiet.
	quiet := mathx.DbToLinear(-80)
	quietSamples := int(sr * 3)
	for i := 0; i < quietSamples; i++ {
		tr.Update(quiet)
	}
	floorBefore := tr.FloorDb()
	assert.InDelta(t, -80, floorBefore, 1.0)

	// Inject 0.1s at -20dB.
	loud := mathx.DbToLinear(-20)
	loudSamples := int(sr * 0.1)
	for i := 0; i < loudSamples; i++ {
		tr.Update(loud)
	}

	floorAfter := tr.FloorDb()
	moved := floorAfter - floorBefore
	if moved < 0 {
		moved = -moved
	}
	assert.Less(t, moved, 3.0, "noise floor moved too much during brief loud burst")
}

func TestDescendsDuringSilence(t *testing.T) {
	sr := 48000.0
	tr := New(sr)
	quiet := mathx.DbToLinear(-90)
	for i := 0; i < int(sr*5); i++ {
		tr.Update(quiet)
	}
	assert.InDelta(t, -90, tr.FloorDb(), 2.0)
}

func TestResetRestoresInitialFloor(t *testing.T) {
	tr := New(48000)
	for i := 0; i < 1000; i++ {
		tr.Update(mathx.DbToLinear(-90))
	}
	tr.Reset(48000)
	assert.InDelta(t, InitialFloorDB, tr.FloorDb(), 1e-6)
	assert.False(t, tr.Initialized())
}
