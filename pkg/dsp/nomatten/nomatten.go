// Package nomatten implements the stateless NOM (number-of-open-
// microphones) attenuation correction: each doubling of open
// microphones nominally adds 3dB of incoherent summed noise, and
// -10*log10(nom) compensates approximately.
package nomatten

import (
	"math"

	"github.com/cj-vana/automix/pkg/dsp/mathx"
)

// Atten tracks the last NOM attenuation computed.
type Atten struct {
	enabled bool
	lastNom float64
	attDb   float64
	attLin  float64
}

// New creates an Atten with attenuation enabled by default.
func New() *Atten {
	a := &Atten{enabled: true}
	a.reset()
	return a
}

func (a *Atten) reset() {
	a.attDb = 0
	a.attLin = 1
}

// SetEnabled enables or disables NOM attenuation. Disabling immediately
// zeroes the attenuation regardless of the last NOM value.
func (a *Atten) SetEnabled(enabled bool) {
	a.enabled = enabled
	if !enabled {
		a.reset()
	}
}

// Enabled reports whether NOM attenuation is active.
func (a *Atten) Enabled() bool {
	return a.enabled
}

// Update recomputes the attenuation for the given NOM count.
func (a *Atten) Update(nom float64) {
	a.lastNom = nom
	if a.enabled && nom > 1 {
		a.attDb = -10.0 * math.Log10(nom)
		a.attLin = mathx.DbToLinear(a.attDb)
		return
	}
	a.reset()
}

// LastNom returns the NOM count most recently passed to Update.
func (a *Atten) LastNom() float64 {
	return a.lastNom
}

// LinearAtten returns the current attenuation as a linear multiplier.
func (a *Atten) LinearAtten() float64 {
	return a.attLin
}

// Db returns the current attenuation in decibels.
func (a *Atten) Db() float64 {
	return a.attDb
}
