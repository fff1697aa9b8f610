// Package automix implements the per-block automatic microphone mixer
// pipeline: a Dugan-style gain-sharing automixer augmented with an
// adaptive noise-floor gate, last-microphone hold, NOM attenuation, and
// per-channel gain smoothing.
package automix

import (
	"math"

	"github.com/cj-vana/automix/pkg/dsp/gainshare"
	"github.com/cj-vana/automix/pkg/dsp/lastmic"
	"github.com/cj-vana/automix/pkg/dsp/nomatten"
)

// MaxChannels is the hard ceiling on configured channel count.
const MaxChannels = 32

// MaxBlockSize is the hard ceiling on samples processed in a single
// call.
const MaxBlockSize = 4096

// Engine owns a fixed-capacity array of per-channel units and the
// block-scoped scratch arrays the nine-phase pipeline needs. Its memory
// footprint is allocated once at construction and never reallocated
// during processing.
type Engine struct {
	numChannels int
	channels    [MaxChannels]*Channel

	params EngineParams

	lastMicHold *lastmic.Hold
	nomAtten    *nomatten.Atten

	globalMetering GlobalMetering

	lifetimeSamples uint64

	// Preallocated block-scoped scratch, sized MaxChannels rather
	// than the configured channel count so a reconfigure never needs
	// a reallocation.
	scratchRMS           [MaxChannels]float64
	scratchActive        [MaxChannels]bool
	scratchParticipating [MaxChannels]bool
	scratchWeights       [MaxChannels]float64
	scratchGains         [MaxChannels]float64
}

// New creates an Engine configured for numChannels (clamped to
// [1, MaxChannels]) at sampleRate.
func New(numChannels int, sampleRate float64) *Engine {
	if numChannels < 1 {
		numChannels = 1
	}
	if numChannels > MaxChannels {
		numChannels = MaxChannels
	}

	e := &Engine{
		numChannels: numChannels,
		params:      defaultEngineParams(sampleRate),
		lastMicHold: lastmic.New(sampleRate),
		nomAtten:    nomatten.New(),
	}
	for i := 0; i < MaxChannels; i++ {
		e.channels[i] = newChannel(i, sampleRate)
	}
	return e
}

// NumChannels returns the engine's configured channel count.
func (e *Engine) NumChannels() int {
	return e.numChannels
}

// Channel returns the channel unit at index i, or nil if out of range.
// Only indices below NumChannels are meaningful; higher slots exist but
// are inert.
func (e *Engine) Channel(i int) *Channel {
	if i < 0 || i >= MaxChannels {
		return nil
	}
	return e.channels[i]
}

// Process runs the nine-phase pipeline once over buffers, one slice per
// channel, in place. The number of channels processed is
// min(len(buffers), e.NumChannels()); the number of samples processed
// per channel is min of all buffer lengths, clamped to MaxBlockSize. A
// zero-sized block, zero channels, or global bypass is a no-op that
// leaves buffers untouched.
func (e *Engine) Process(buffers [][]float32) {
	n := len(buffers)
	if n > e.numChannels {
		n = e.numChannels
	}
	if n == 0 {
		return
	}

	numSamples := len(buffers[0])
	for i := 1; i < n; i++ {
		if len(buffers[i]) < numSamples {
			numSamples = len(buffers[i])
		}
	}
	if numSamples == 0 {
		return
	}
	if numSamples > MaxBlockSize {
		numSamples = MaxBlockSize
	}

	if e.params.GlobalBypass {
		return
	}

	e.processBlock(buffers, n, numSamples)
}

func (e *Engine) processBlock(buffers [][]float32, n, numSamples int) {
	rms := e.scratchRMS[:n]
	active := e.scratchActive[:n]
	participating := e.scratchParticipating[:n]
	weights := e.scratchWeights[:n]
	gains := e.scratchGains[:n]

	// Phase 0: participation resolution (mute/solo/bypass).
	anySolo := false
	for i := 0; i < n; i++ {
		if e.channels[i].params.Soloed {
			anySolo = true
			break
		}
	}
	for i := 0; i < n; i++ {
		p := e.channels[i].params
		participating[i] = !p.Muted && !p.Bypassed && (!anySolo || p.Soloed)
		weights[i] = p.Weight
	}

	// Phase 1: RMS level detection per channel.
	for i := 0; i < n; i++ {
		rms[i] = e.channels[i].detector.ProcessBlock(buffers[i][:numSamples])
	}

	// Phase 2: noise-floor tracker update, participating channels only.
	for i := 0; i < n; i++ {
		if participating[i] {
			e.channels[i].noiseFloor.Update(rms[i])
		}
	}

	// Phase 3: activity flag computation.
	for i := 0; i < n; i++ {
		a := participating[i] && e.channels[i].noiseFloor.IsActive(rms[i])
		active[i] = a
		e.channels[i].active = a
	}

	// Phase 4: last-mic-hold evaluation.
	holdChannel, hasHold := e.lastMicHold.Update(active, participating, n, numSamples)

	// Phase 5: Dugan gain-sharing.
	nom := gainshare.Compute(rms, weights, active, participating, n, hasHold, holdChannel, gains)

	// Phase 6: NOM attenuation.
	e.nomAtten.Update(nom)
	nomLinear := e.nomAtten.LinearAtten()

	// Phases 7-8: smooth and apply gain.
	for i := 0; i < n; i++ {
		ch := e.channels[i]
		p := ch.params

		var target float64
		switch {
		case participating[i]:
			target = gains[i] * nomLinear
		case p.Bypassed:
			target = 1.0
		default:
			target = 0.0
		}
		ch.rawGain = target

		if p.Bypassed {
			ch.smoother.SetImmediate(1.0)
			ch.smoothedGain = 1.0
			continue
		}

		buf := buffers[i][:numSamples]
		for s := 0; s < numSamples; s++ {
			x := float64(buf[s])
			if math.IsNaN(x) || math.IsInf(x, 0) {
				x = 0
			}
			g := ch.smoother.Process(target)
			buf[s] = float32(x * g)
		}
		ch.smoothedGain = ch.smoother.Current()
	}

	// Phase 9: counters and metering.
	e.lifetimeSamples += uint64(numSamples)
	for i := 0; i < n; i++ {
		e.channels[i].updateMetering(rms[i])
	}
	e.globalMetering = GlobalMetering{
		NomCount:         nom,
		NomAttenuationDb: e.nomAtten.Db(),
	}
}

// LifetimeSamples returns the total number of samples processed since
// construction.
func (e *Engine) LifetimeSamples() uint64 {
	return e.lifetimeSamples
}

// GlobalMetering returns a copy of the engine's last global metering
// snapshot.
func (e *Engine) GlobalMetering() GlobalMetering {
	return e.globalMetering
}

// Reset clears per-channel smoother/floor/ring-buffer state and the
// last-mic-hold and NOM-attenuation state, preserving all parameters.
func (e *Engine) Reset() {
	for i := 0; i < MaxChannels; i++ {
		e.channels[i].reset(e.params.SampleRate)
	}
	e.lastMicHold.Reset()
	e.nomAtten.Update(0)
	e.globalMetering = GlobalMetering{}
	e.lifetimeSamples = 0
}
