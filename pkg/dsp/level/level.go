// Package level provides per-channel RMS level detection via a
// squared-sample ring buffer.
package level

import (
	"math"

	"github.com/cj-vana/automix/pkg/dsp/mathx"
	"github.com/cj-vana/automix/pkg/dsp/ring"
)

// DefaultWindowMs is the level detector's default RMS window.
const DefaultWindowMs = 20.0

// Detector wraps a ring.Buffer and exposes the current RMS in linear and
// dB form.
type Detector struct {
	window     *ring.Buffer
	sampleRate float64
	currentRMS float64
}

// New creates a Detector with the default 20ms window at sampleRate.
func New(sampleRate float64) *Detector {
	d := &Detector{sampleRate: sampleRate}
	d.window = ring.New(msToSamples(DefaultWindowMs, sampleRate))
	return d
}

// SetWindowMs changes the RMS window length in milliseconds.
func (d *Detector) SetWindowMs(ms float64) {
	d.window.SetWindowLen(msToSamples(ms, d.sampleRate))
}

// ProcessSample feeds one sample into the ring and returns the updated
// RMS. Non-finite input is sanitized to 0 before squaring.
func (d *Detector) ProcessSample(sample float32) float64 {
	s := float64(sample)
	if math.IsNaN(s) || math.IsInf(s, 0) {
		s = 0
	}
	d.window.Push(s * s)
	d.currentRMS = d.window.RMS()
	return d.currentRMS
}

// ProcessBlock feeds a full block into the ring, sanitizing non-finite
// samples to 0, and returns the RMS computed at the end of the block.
func (d *Detector) ProcessBlock(samples []float32) float64 {
	for _, s := range samples {
		x := float64(s)
		if math.IsNaN(x) || math.IsInf(x, 0) {
			x = 0
		}
		d.window.Push(x * x)
	}
	d.currentRMS = d.window.RMS()
	return d.currentRMS
}

// RMS returns the RMS level computed by the most recent Process call.
func (d *Detector) RMS() float64 {
	return d.currentRMS
}

// RMSDb returns the current RMS level in decibels.
func (d *Detector) RMSDb() float64 {
	return mathx.LinearToDb(d.currentRMS)
}

// Reset clears the ring buffer and the cached RMS value.
func (d *Detector) Reset() {
	d.window.Reset()
	d.currentRMS = 0
}

func msToSamples(ms, sampleRate float64) int {
	n := mathx.MsToSamples(ms, sampleRate)
	if n < 1 {
		n = 1
	}
	return n
}
