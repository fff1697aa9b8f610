package automix

import (
	"github.com/cj-vana/automix/pkg/dsp/level"
	"github.com/cj-vana/automix/pkg/dsp/mathx"
	"github.com/cj-vana/automix/pkg/dsp/noisefloor"
	"github.com/cj-vana/automix/pkg/dsp/smoother"
)

// Channel aggregates the per-channel DSP primitives and state: a level
// detector, a noise-floor tracker, a gain smoother, the channel's index
// and parameters, its last-computed raw and smoothed gain, its activity
// flag, and its metering snapshot. A Channel exclusively owns its
// detector, tracker, and smoother.
type Channel struct {
	index int

	params ChannelParams

	detector   *level.Detector
	noiseFloor *noisefloor.Tracker
	smoother   *smoother.Smoother

	rawGain      float64
	smoothedGain float64
	active       bool

	metering ChannelMetering
}

// newChannel creates a Channel at the given index with default
// parameters, initialized for sampleRate.
func newChannel(index int, sampleRate float64) *Channel {
	c := &Channel{
		index:  index,
		params: defaultChannelParams(),
	}
	c.detector = level.New(sampleRate)
	c.noiseFloor = noisefloor.New(sampleRate)
	c.smoother = smoother.New(defaultAttackMs, defaultReleaseMs, sampleRate)
	return c
}

// Params returns the channel's current parameters.
func (c *Channel) Params() ChannelParams {
	return c.params
}

// SetWeight clamps and sets the channel's linear weight.
func (c *Channel) SetWeight(w float64) {
	c.params.Weight = clamp(w, weightMin, weightMax)
}

// SetMuted sets the channel's mute flag.
func (c *Channel) SetMuted(m bool) {
	c.params.Muted = m
}

// SetSoloed sets the channel's solo flag.
func (c *Channel) SetSoloed(s bool) {
	c.params.Soloed = s
}

// SetBypassed sets the channel's bypass flag.
func (c *Channel) SetBypassed(b bool) {
	c.params.Bypassed = b
}

// Active reports the channel's last-computed activity flag.
func (c *Channel) Active() bool {
	return c.active
}

// SmoothedGain returns the last-applied smoothed gain.
func (c *Channel) SmoothedGain() float64 {
	return c.smoothedGain
}

// Metering returns a copy of the channel's last metering snapshot.
func (c *Channel) Metering() ChannelMetering {
	return c.metering
}

// setSmoothing forwards attack/release time constants to the gain
// smoother.
func (c *Channel) setSmoothing(attackMs, releaseMs, sampleRate float64) {
	c.smoother.SetCoefficients(attackMs, releaseMs, sampleRate)
}

// setNoiseFloorMargin forwards the margin in dB to the noise-floor
// tracker.
func (c *Channel) setNoiseFloorMargin(marginDb float64) {
	c.noiseFloor.SetMarginDb(marginDb)
}

// setWindowMs forwards the RMS window length in milliseconds to the
// level detector.
func (c *Channel) setWindowMs(ms float64) {
	c.detector.SetWindowMs(ms)
}

// updateMetering fills the channel's metering snapshot from the given
// input RMS, the channel's current smoothed gain, noise floor, and
// activity flag.
func (c *Channel) updateMetering(inputRMS float64) {
	c.metering = ChannelMetering{
		InputRMSDb:   mathx.LinearToDb(inputRMS),
		GainDb:       mathx.LinearToDb(c.smoothedGain),
		OutputRMSDb:  mathx.LinearToDb(inputRMS * c.smoothedGain),
		NoiseFloorDb: c.noiseFloor.FloorDb(),
		Active:       c.active,
	}
}

// reset clears the detector, floor tracker, smoother, gains, activity,
// and metering. Parameters are preserved.
func (c *Channel) reset(sampleRate float64) {
	c.detector.Reset()
	c.noiseFloor.Reset(sampleRate)
	c.smoother.SetImmediate(0)
	c.rawGain = 0
	c.smoothedGain = 0
	c.active = false
	c.metering = ChannelMetering{}
}
