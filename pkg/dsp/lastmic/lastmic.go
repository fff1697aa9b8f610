// Package lastmic implements the last-microphone hold behavior: pinning
// the most recently active channel to unity gain for a bounded duration
// after all channels go silent.
package lastmic

import "github.com/cj-vana/automix/pkg/dsp/mathx"

// DefaultHoldMs is the default hold duration.
const DefaultHoldMs = 500.0

// Hold tracks the last active channel and whether it is currently being
// held at unity gain.
type Hold struct {
	lastActiveChannel int // meaningful only while hasLastActive is set
	hasLastActive     bool
	holdCounter       int
	holdDuration      int // samples
	isHolding         bool
}

// New creates a Hold with the default 500ms duration at sampleRate.
func New(sampleRate float64) *Hold {
	h := &Hold{lastActiveChannel: -1}
	h.SetHoldMs(DefaultHoldMs, sampleRate)
	return h
}

// SetHoldMs sets the hold duration in milliseconds, converting to
// samples at sampleRate.
func (h *Hold) SetHoldMs(ms, sampleRate float64) {
	n := mathx.MsToSamples(ms, sampleRate)
	if n < 0 {
		n = 0
	}
	h.holdDuration = n
}

// IsHolding reports whether a channel is currently pinned at unity gain.
func (h *Hold) IsHolding() bool {
	return h.isHolding
}

// Update scans the first n entries of active/participating and returns
// the channel index to pin at unity gain this block, or (-1, false) if
// none. The highest-index participating-active channel in scan order
// wins ties; later entries override earlier ones deliberately, and the
// choice is observable through which channel gets held.
func (h *Hold) Update(active, participating []bool, n, blockSize int) (int, bool) {
	anyActive := false
	lastFound := -1
	for i := 0; i < n; i++ {
		if participating[i] && active[i] {
			anyActive = true
			lastFound = i
		}
	}

	if anyActive {
		h.lastActiveChannel = lastFound
		h.hasLastActive = true
		h.holdCounter = 0
		h.isHolding = false
		return -1, false
	}

	if h.holdDuration == 0 {
		h.isHolding = false
		return -1, false
	}

	if h.hasLastActive {
		c := h.lastActiveChannel
		if c >= n || !participating[c] {
			h.hasLastActive = false
			h.isHolding = false
			return -1, false
		}
		if h.holdCounter+blockSize < h.holdDuration {
			h.holdCounter += blockSize
			h.isHolding = true
			return c, true
		}
	}

	h.isHolding = false
	return -1, false
}

// Reset clears all hold state, including the recalled last-active
// channel.
func (h *Hold) Reset() {
	h.lastActiveChannel = -1
	h.hasLastActive = false
	h.holdCounter = 0
	h.isHolding = false
}
