package automix

// Parameter setters mutate engine-owned state without synchronization
// and must not be called concurrently with Process on the same engine;
// the host is responsible for serializing parameter updates with block
// processing. Out-of-range channel indices are silently ignored;
// out-of-range values are clamped.

// SetChannelWeight sets channel i's linear weight, clamped to [0,1].
func (e *Engine) SetChannelWeight(i int, weight float64) {
	if ch := e.validChannel(i); ch != nil {
		ch.SetWeight(weight)
	}
}

// SetChannelMute sets channel i's mute flag.
func (e *Engine) SetChannelMute(i int, muted bool) {
	if ch := e.validChannel(i); ch != nil {
		ch.SetMuted(muted)
	}
}

// SetChannelSolo sets channel i's solo flag.
func (e *Engine) SetChannelSolo(i int, soloed bool) {
	if ch := e.validChannel(i); ch != nil {
		ch.SetSoloed(soloed)
	}
}

// SetChannelBypass sets channel i's bypass flag.
func (e *Engine) SetChannelBypass(i int, bypassed bool) {
	if ch := e.validChannel(i); ch != nil {
		ch.SetBypassed(bypassed)
	}
}

// validChannel returns the channel at i if i names one of the engine's
// configured channels, else nil.
func (e *Engine) validChannel(i int) *Channel {
	if i < 0 || i >= e.numChannels {
		return nil
	}
	return e.channels[i]
}

// SetGlobalBypass enables or disables global bypass.
func (e *Engine) SetGlobalBypass(bypass bool) {
	e.params.GlobalBypass = bypass
}

// SetAttackMs sets the gain-smoothing attack time in milliseconds,
// clamped to [0.1, 100], and rewrites every channel's smoother
// coefficients.
func (e *Engine) SetAttackMs(ms float64) {
	e.params.AttackMs = clamp(ms, attackMsMin, attackMsMax)
	e.applySmoothing()
}

// SetReleaseMs sets the gain-smoothing release time in milliseconds,
// clamped to [1, 1000], and rewrites every channel's smoother
// coefficients.
func (e *Engine) SetReleaseMs(ms float64) {
	e.params.ReleaseMs = clamp(ms, releaseMsMin, releaseMsMax)
	e.applySmoothing()
}

func (e *Engine) applySmoothing() {
	for i := 0; i < MaxChannels; i++ {
		e.channels[i].setSmoothing(e.params.AttackMs, e.params.ReleaseMs, e.params.SampleRate)
	}
}

// SetHoldTimeMs sets the last-mic-hold duration in milliseconds,
// clamped to [0, 5000], recomputing the hold duration in samples.
func (e *Engine) SetHoldTimeMs(ms float64) {
	e.params.HoldMs = clamp(ms, holdMsMin, holdMsMax)
	e.lastMicHold.SetHoldMs(e.params.HoldMs, e.params.SampleRate)
}

// SetNoiseFloorMarginDb sets the noise-floor activity margin in dB,
// clamped to [0, 24], on every channel.
func (e *Engine) SetNoiseFloorMarginDb(db float64) {
	e.params.MarginDb = clamp(db, marginDbMin, marginDbMax)
	for i := 0; i < MaxChannels; i++ {
		e.channels[i].setNoiseFloorMargin(e.params.MarginDb)
	}
}

// SetRMSWindowMs sets the level detector's RMS window in milliseconds,
// clamped to [1, 100], on every channel.
func (e *Engine) SetRMSWindowMs(ms float64) {
	e.params.WindowMs = clamp(ms, windowMsMin, windowMsMax)
	for i := 0; i < MaxChannels; i++ {
		e.channels[i].setWindowMs(e.params.WindowMs)
	}
}

// SetNomAttenEnabled enables or disables NOM attenuation.
func (e *Engine) SetNomAttenEnabled(enabled bool) {
	e.params.NomEnabled = enabled
	e.nomAtten.SetEnabled(enabled)
}

// Params returns a copy of the engine's current parameters.
func (e *Engine) Params() EngineParams {
	return e.params
}
