// Package host exposes the engine through an opaque-handle boundary
// suitable for embedding in a non-Go host process. The registry pattern
// mirrors a plugin wrapper: instances live in a package-level map keyed
// by an incrementing ID, never by a Go pointer, so the handle value
// that crosses the boundary is safe to hold in foreign memory.
package host

import (
	"sync"

	"github.com/cj-vana/automix/pkg/automix"
)

// Handle identifies one engine instance across the boundary. Zero is
// never issued and always denotes "no instance."
type Handle uintptr

var (
	instances   = make(map[Handle]*automix.Engine)
	instancesMu sync.RWMutex
	nextHandle  Handle = 1
)

// Version is the semantic version reported across the boundary.
const Version = "1.0.0"

// Create constructs a new engine instance and returns its handle.
// Channel count is clamped to automix.MaxChannels by the engine itself.
func Create(numChannels uint32, sampleRate float32, maxBlockSize uint32) Handle {
	_ = maxBlockSize // advisory only; the engine sizes itself from numChannels alone
	e := automix.New(int(numChannels), float64(sampleRate))

	instancesMu.Lock()
	defer instancesMu.Unlock()
	h := nextHandle
	nextHandle++
	instances[h] = e
	return h
}

// Destroy releases an engine instance. A zero or unknown handle is a no-op.
func Destroy(h Handle) {
	if h == 0 {
		return
	}
	instancesMu.Lock()
	defer instancesMu.Unlock()
	delete(instances, h)
}

func lookup(h Handle) *automix.Engine {
	if h == 0 {
		return nil
	}
	instancesMu.RLock()
	defer instancesMu.RUnlock()
	return instances[h]
}

// Process runs one block through the engine in place. A nil handle or
// nil buffer set is a no-op.
func Process(h Handle, buffers [][]float32) {
	e := lookup(h)
	if e == nil || buffers == nil {
		return
	}
	e.Process(buffers)
}

// SetChannelWeight sets a channel's gain-share weight. Out-of-range
// channel indices are ignored by the engine.
func SetChannelWeight(h Handle, channel int, weight float32) {
	if e := lookup(h); e != nil {
		e.SetChannelWeight(channel, float64(weight))
	}
}

// SetChannelMute sets a channel's mute flag.
func SetChannelMute(h Handle, channel int, muted bool) {
	if e := lookup(h); e != nil {
		e.SetChannelMute(channel, muted)
	}
}

// SetChannelSolo sets a channel's solo flag.
func SetChannelSolo(h Handle, channel int, soloed bool) {
	if e := lookup(h); e != nil {
		e.SetChannelSolo(channel, soloed)
	}
}

// SetChannelBypass sets a channel's bypass flag.
func SetChannelBypass(h Handle, channel int, bypassed bool) {
	if e := lookup(h); e != nil {
		e.SetChannelBypass(channel, bypassed)
	}
}

// SetGlobalBypass sets the engine-wide bypass flag.
func SetGlobalBypass(h Handle, bypass bool) {
	if e := lookup(h); e != nil {
		e.SetGlobalBypass(bypass)
	}
}

// SetAttackMs sets the gain-smoother attack time in milliseconds.
func SetAttackMs(h Handle, ms float32) {
	if e := lookup(h); e != nil {
		e.SetAttackMs(float64(ms))
	}
}

// SetReleaseMs sets the gain-smoother release time in milliseconds.
func SetReleaseMs(h Handle, ms float32) {
	if e := lookup(h); e != nil {
		e.SetReleaseMs(float64(ms))
	}
}

// SetHoldTimeMs sets the last-mic hold duration in milliseconds.
func SetHoldTimeMs(h Handle, ms float32) {
	if e := lookup(h); e != nil {
		e.SetHoldTimeMs(float64(ms))
	}
}

// SetNomAttenEnabled toggles NOM attenuation.
func SetNomAttenEnabled(h Handle, enabled bool) {
	if e := lookup(h); e != nil {
		e.SetNomAttenEnabled(enabled)
	}
}

// ChannelMetering mirrors the boundary's five-field per-channel metering
// struct: four dB values and one activity flag.
type ChannelMetering struct {
	InputRMSDb   float32
	GainDb       float32
	OutputRMSDb  float32
	NoiseFloorDb float32
	Active       bool
}

// GlobalMetering mirrors the boundary's two-field global metering struct.
type GlobalMetering struct {
	NomCount         float32
	NomAttenuationDb float32
}

// GetChannelMetering fills out with a channel's metering snapshot and
// reports whether the handle and channel were valid.
func GetChannelMetering(h Handle, channel int, out *ChannelMetering) bool {
	if out == nil {
		return false
	}
	e := lookup(h)
	if e == nil {
		return false
	}
	m, ok := e.ChannelMetering(channel)
	if !ok {
		return false
	}
	out.InputRMSDb = float32(m.InputRMSDb)
	out.GainDb = float32(m.GainDb)
	out.OutputRMSDb = float32(m.OutputRMSDb)
	out.NoiseFloorDb = float32(m.NoiseFloorDb)
	out.Active = m.Active
	return true
}

// GetGlobalMetering fills out with the engine-wide metering snapshot.
func GetGlobalMetering(h Handle, out *GlobalMetering) bool {
	if out == nil {
		return false
	}
	e := lookup(h)
	if e == nil {
		return false
	}
	gm := e.GlobalMetering()
	out.NomCount = float32(gm.NomCount)
	out.NomAttenuationDb = float32(gm.NomAttenuationDb)
	return true
}

// GetAllChannelMetering fills dst with up to len(dst) channel metering
// snapshots and returns the number written.
func GetAllChannelMetering(h Handle, dst []ChannelMetering) int {
	e := lookup(h)
	if e == nil || dst == nil {
		return 0
	}
	n := e.NumChannels()
	if n > len(dst) {
		n = len(dst)
	}
	for i := 0; i < n; i++ {
		m, _ := e.ChannelMetering(i)
		dst[i] = ChannelMetering{
			InputRMSDb:   float32(m.InputRMSDb),
			GainDb:       float32(m.GainDb),
			OutputRMSDb:  float32(m.OutputRMSDb),
			NoiseFloorDb: float32(m.NoiseFloorDb),
			Active:       m.Active,
		}
	}
	return n
}
