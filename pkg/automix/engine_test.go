package automix

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewClampsChannelCount(t *testing.T) {
	e := New(0, 48000)
	assert.Equal(t, 1, e.NumChannels())

	e = New(MaxChannels+10, 48000)
	assert.Equal(t, MaxChannels, e.NumChannels())
}

func TestProcessZeroChannelsOrSamplesIsNoop(t *testing.T) {
	e := New(2, 48000)
	e.Process(nil)
	e.Process([][]float32{{}, {}})
	assert.Equal(t, uint64(0), e.LifetimeSamples())
}

func genBlock(n int, amplitude float32) []float32 {
	buf := make([]float32, n)
	for i := range buf {
		buf[i] = amplitude
	}
	return buf
}

func TestGlobalBypassLeavesBuffersUntouched(t *testing.T) {
	e := New(2, 48000)
	e.SetGlobalBypass(true)

	ch0 := genBlock(256, 0.5)
	ch1 := genBlock(256, 0.3)
	buffers := [][]float32{append([]float32{}, ch0...), append([]float32{}, ch1...)}

	e.Process(buffers)

	assert.Equal(t, ch0, buffers[0])
	assert.Equal(t, ch1, buffers[1])
}

func TestSingleActiveChannelConvergesToUnity(t *testing.T) {
	e := New(1, 48000)
	var lastSample float32
	for block := 0; block < 200; block++ {
		buf := genBlock(256, 0.5)
		e.Process([][]float32{buf})
		lastSample = buf[255]
	}
	assert.InDelta(t, 0.5, lastSample, 0.05)
	gm := e.GlobalMetering()
	assert.InDelta(t, 1.0, gm.NomCount, 1e-6)
}

func TestLouderChannelWins(t *testing.T) {
	e := New(2, 48000)
	var last0, last1 float32
	for block := 0; block < 200; block++ {
		buf0 := genBlock(256, 0.8)
		buf1 := genBlock(256, 0.1)
		e.Process([][]float32{buf0, buf1})
		last0, last1 = buf0[255], buf1[255]
	}
	abs := func(x float32) float32 {
		if x < 0 {
			return -x
		}
		return x
	}
	assert.Greater(t, abs(last0), abs(last1))
}

func TestMuteSilencesChannel(t *testing.T) {
	e := New(2, 48000)
	e.SetChannelMute(1, true)

	var last1 float32
	for block := 0; block < 200; block++ {
		buf0 := genBlock(256, 0.5)
		buf1 := genBlock(256, 0.5)
		e.Process([][]float32{buf0, buf1})
		last1 = buf1[255]
	}
	abs := last1
	if abs < 0 {
		abs = -abs
	}
	assert.Less(t, abs, float32(0.01))
}

func TestBypassUnityAfterOneBlock(t *testing.T) {
	e := New(2, 48000)
	e.SetChannelBypass(0, true)

	buf0 := genBlock(256, 0.5)
	buf1 := genBlock(256, 0.5)
	e.Process([][]float32{buf0, buf1})

	assert.InDelta(t, 0.5, buf0[255], 0.01)
}

func TestNaNRecovery(t *testing.T) {
	e := New(1, 48000)

	// Converge first.
	for block := 0; block < 50; block++ {
		buf := genBlock(256, 0.5)
		e.Process([][]float32{buf})
	}

	nanBlock := make([]float32, 256)
	for i := range nanBlock {
		nanBlock[i] = float32(nan())
	}
	e.Process([][]float32{nanBlock})
	for _, v := range nanBlock {
		assert.False(t, isNaNOrInf(v), "output not finite: %v", v)
	}

	// Subsequent normal blocks must also stay finite.
	for block := 0; block < 10; block++ {
		buf := genBlock(256, 0.5)
		e.Process([][]float32{buf})
		for _, v := range buf {
			assert.False(t, isNaNOrInf(v), "output not finite: %v", v)
		}
	}
}

func TestSoloExcludesOtherChannels(t *testing.T) {
	e := New(2, 48000)
	e.SetChannelSolo(0, true)

	var last0, last1 float32
	for block := 0; block < 200; block++ {
		buf0 := genBlock(256, 0.5)
		buf1 := genBlock(256, 0.5)
		e.Process([][]float32{buf0, buf1})
		last0, last1 = buf0[255], buf1[255]
	}
	assert.InDelta(t, 0.5, last0, 0.05)
	assert.Less(t, last1, float32(0.01))
}

func TestLastMicHoldReportsNomOfOne(t *testing.T) {
	e := New(2, 48000) // default 500ms hold = 24000 samples

	// Let channel 1 become the active talker.
	for block := 0; block < 100; block++ {
		buf0 := genBlock(256, 0)
		buf1 := genBlock(256, 0.5)
		e.Process([][]float32{buf0, buf1})
	}

	// Go silent. Once channel 1's RMS window drains, the hold pins it
	// at unity and the gain-share reports NOM as 1.0.
	for block := 0; block < 10; block++ {
		buf0 := genBlock(256, 0)
		buf1 := genBlock(256, 0)
		e.Process([][]float32{buf0, buf1})
	}
	assert.InDelta(t, 1.0, e.GlobalMetering().NomCount, 1e-9)
	assert.Greater(t, e.Channel(1).SmoothedGain(), 0.5)

	// Keep silent well past the hold duration; the hold expires and
	// everything reads silent.
	for block := 0; block < 200; block++ {
		buf0 := genBlock(256, 0)
		buf1 := genBlock(256, 0)
		e.Process([][]float32{buf0, buf1})
	}
	assert.InDelta(t, 0.0, e.GlobalMetering().NomCount, 1e-9)
}

func TestNaNRecoveryTwoChannels(t *testing.T) {
	e := New(2, 48000)
	for i := 0; i < 50; i++ {
		b0 := genBlock(256, 0.5)
		b1 := genBlock(256, 0.3)
		e.Process([][]float32{b0, b1})
	}

	// One channel goes non-finite; the other stays normal. Both
	// outputs must remain finite, this block and after.
	nanBlock := make([]float32, 256)
	for i := range nanBlock {
		nanBlock[i] = float32(nan())
	}
	normal := genBlock(256, 0.3)
	e.Process([][]float32{nanBlock, normal})

	for _, v := range nanBlock {
		assert.False(t, isNaNOrInf(v))
	}
	for _, v := range normal {
		assert.False(t, isNaNOrInf(v))
	}

	for i := 0; i < 10; i++ {
		b0 := genBlock(256, 0.5)
		b1 := genBlock(256, 0.3)
		e.Process([][]float32{b0, b1})
		for _, v := range b0 {
			assert.False(t, isNaNOrInf(v))
		}
		for _, v := range b1 {
			assert.False(t, isNaNOrInf(v))
		}
	}
}

func TestResetPreservesParameters(t *testing.T) {
	e := New(2, 48000)
	e.SetChannelWeight(0, 0.25)
	e.SetChannelMute(1, true)
	e.SetAttackMs(10)

	e.Reset()

	assert.Equal(t, 0.25, e.Channel(0).Params().Weight)
	assert.True(t, e.Channel(1).Params().Muted)
	assert.Equal(t, 10.0, e.Params().AttackMs)
	assert.Equal(t, uint64(0), e.LifetimeSamples())
}

func TestParameterSettersIgnoreOutOfRangeChannel(t *testing.T) {
	e := New(2, 48000)
	// Should not panic.
	e.SetChannelWeight(5, 0.5)
	e.SetChannelMute(-1, true)
}

func TestParameterClamping(t *testing.T) {
	e := New(1, 48000)
	e.SetChannelWeight(0, 5.0)
	assert.Equal(t, 1.0, e.Channel(0).Params().Weight)

	e.SetChannelWeight(0, -1.0)
	assert.Equal(t, 0.0, e.Channel(0).Params().Weight)

	e.SetAttackMs(1000)
	assert.Equal(t, attackMsMax, e.Params().AttackMs)

	e.SetReleaseMs(0)
	assert.Equal(t, releaseMsMin, e.Params().ReleaseMs)

	e.SetHoldTimeMs(-5)
	assert.Equal(t, holdMsMin, e.Params().HoldMs)

	e.SetNoiseFloorMarginDb(100)
	assert.Equal(t, marginDbMax, e.Params().MarginDb)
}
