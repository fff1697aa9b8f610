// Package gainshare implements stateless Dugan-style gain-sharing: the
// sum of all channel gains is held near unity, distributed in
// proportion to each channel's current level.
package gainshare

import "github.com/cj-vana/automix/pkg/dsp/mathx"

// Compute fills gains[0:len] (zeroing unused slots among the first n)
// with each participating-active channel's share of the combined
// weighted level, and returns the NOM (number of open microphones)
// count.
//
// When every participating-active channel's weighted level sums to
// (near) zero, global silence has occurred: if lastMicChannel names a
// valid participating channel, it is pinned to unity gain and nom is
// reported as 1.0; otherwise every gain is zero.
func Compute(rms, weights []float64, active, participating []bool, n int, hasLastMic bool, lastMicChannel int, gains []float64) float64 {
	for i := range gains {
		gains[i] = 0
	}

	var weightedSum float64
	var nom float64

	for i := 0; i < n; i++ {
		if participating[i] && active[i] {
			weightedSum += rms[i] * weights[i]
			nom++
		}
	}

	if weightedSum > mathx.Epsilon {
		for i := 0; i < n; i++ {
			if participating[i] && active[i] {
				gains[i] = (rms[i] * weights[i]) / weightedSum
			}
		}
		return nom
	}

	if hasLastMic && lastMicChannel >= 0 && lastMicChannel < n && participating[lastMicChannel] {
		gains[lastMicChannel] = 1.0
		return 1.0
	}

	return 0
}
