package automix

// ChannelParams holds the user-controllable state for a single channel.
// It is mutated only from the host thread between blocks.
type ChannelParams struct {
	Weight   float64 // linear, [0,1]
	Muted    bool
	Soloed   bool
	Bypassed bool
}

// defaultChannelParams returns the default channel parameters:
// weight=1, all flags false.
func defaultChannelParams() ChannelParams {
	return ChannelParams{Weight: 1.0}
}

// EngineParams holds the engine-wide processing parameters.
type EngineParams struct {
	GlobalBypass bool
	AttackMs     float64
	ReleaseMs    float64
	HoldMs       float64
	MarginDb     float64
	WindowMs     float64
	SampleRate   float64
	NomEnabled   bool
}

// Parameter bounds applied by the setters.
const (
	weightMin = 0.0
	weightMax = 1.0

	attackMsMin = 0.1
	attackMsMax = 100.0

	releaseMsMin = 1.0
	releaseMsMax = 1000.0

	holdMsMin = 0.0
	holdMsMax = 5000.0

	marginDbMin = 0.0
	marginDbMax = 24.0

	windowMsMin = 1.0
	windowMsMax = 100.0
)

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func defaultEngineParams(sampleRate float64) EngineParams {
	return EngineParams{
		AttackMs:   defaultAttackMs,
		ReleaseMs:  defaultReleaseMs,
		HoldMs:     defaultHoldMs,
		MarginDb:   defaultMarginDb,
		WindowMs:   defaultWindowMs,
		SampleRate: sampleRate,
		NomEnabled: true,
	}
}

// Engine-wide defaults.
const (
	defaultAttackMs  = 5.0
	defaultReleaseMs = 150.0
	defaultHoldMs    = 500.0
	defaultMarginDb  = 6.0
	defaultWindowMs  = 20.0
)
