package main

import "math/rand"

// generator produces a synthetic per-channel test signal: a fixed
// amplitude plus a small amount of dither noise, so the noise-floor
// tracker and activity gate have something to converge against even
// on a channel that is nominally "silent" (amplitude 0).
type generator struct {
	amplitude float64
	rng       *rand.Rand
}

func newGenerator(amplitude float64, seed int64) *generator {
	return &generator{amplitude: amplitude, rng: rand.New(rand.NewSource(seed))}
}

// fill writes blockSize synthetic samples into buf, which must already
// be sized to blockSize.
func (g *generator) fill(buf []float32) {
	for i := range buf {
		dither := (g.rng.Float64() - 0.5) * 0.0005
		buf[i] = float32(g.amplitude + dither)
	}
}
