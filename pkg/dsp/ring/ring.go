// Package ring provides a fixed-capacity running-sum ring buffer used by
// the level detector to compute a sliding-window RMS in O(1) per sample.
package ring

import "math"

// Capacity is the number of squared-sample slots held by a Buffer,
// sized for a 100ms window at 192kHz.
const Capacity = 19200

// Buffer accumulates squared samples over a sliding window and tracks
// their running sum so the mean (and therefore RMS) can be read in O(1).
type Buffer struct {
	slots       [Capacity]float64
	writeCursor int
	windowLen   int
	runningSum  float64
	writes      uint64
}

// New creates a Buffer with the given window length in samples, clamped
// to [1, Capacity].
func New(windowLen int) *Buffer {
	b := &Buffer{}
	b.SetWindowLen(windowLen)
	return b
}

// SetWindowLen changes the active window length, clamping to
// [1, Capacity], and resets the buffer.
func (b *Buffer) SetWindowLen(n int) {
	if n < 1 {
		n = 1
	}
	if n > Capacity {
		n = Capacity
	}
	b.windowLen = n
	b.Reset()
}

// WindowLen returns the current window length in samples.
func (b *Buffer) WindowLen() int {
	return b.windowLen
}

// Push adds a squared sample to the window, evicting the oldest slot in
// the window and clamping the running sum to guard against negative
// floating-point drift.
func (b *Buffer) Push(v float64) {
	b.runningSum -= b.slots[b.writeCursor]
	b.runningSum += v
	if b.runningSum < 0 {
		b.runningSum = 0
	}
	b.slots[b.writeCursor] = v
	b.writeCursor++
	if b.writeCursor >= b.windowLen {
		b.writeCursor = 0
	}
	b.writes++
}

// Mean returns the running mean of the values currently in the window,
// or 0 if nothing has been written yet.
func (b *Buffer) Mean() float64 {
	count := b.writes
	if count == 0 {
		return 0
	}
	if count > uint64(b.windowLen) {
		count = uint64(b.windowLen)
	}
	return b.runningSum / float64(count)
}

// RMS returns sqrt(Mean()).
func (b *Buffer) RMS() float64 {
	m := b.Mean()
	if m <= 0 {
		return 0
	}
	return math.Sqrt(m)
}

// Reset zeroes the active window region, the cursor, the sum, and the
// write count.
func (b *Buffer) Reset() {
	for i := 0; i < b.windowLen; i++ {
		b.slots[i] = 0
	}
	b.writeCursor = 0
	b.runningSum = 0
	b.writes = 0
}
