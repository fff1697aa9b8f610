package automix

// ChannelMetering is a by-value snapshot of one channel's metering
// state. The engine copies these out on read; nothing holds a live
// reference into engine-owned state.
type ChannelMetering struct {
	InputRMSDb   float64
	GainDb       float64
	OutputRMSDb  float64
	NoiseFloorDb float64
	Active       bool
}

// GlobalMetering is a by-value snapshot of the engine-wide metering
// state.
type GlobalMetering struct {
	NomCount         float64
	NomAttenuationDb float64
}
