// Command automixdemo is a synthetic-signal harness around pkg/automix.
// It is demo/ambient tooling, not part of the engine core: it builds a
// session from flags or a YAML file, feeds each channel a generated
// signal block by block on a single thread (the same call shape a real
// host would use), and logs the resulting metering snapshot.
package main

import (
	"math"
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"

	"github.com/cj-vana/automix/pkg/automix"
)

// cli defines automixdemo's command-line surface.
type cli struct {
	Config     string  `help:"YAML session file (channel weights/mute/solo/bypass/amplitude, engine timing)." type:"existingfile"`
	Channels   int     `help:"Channel count, used only when --config is omitted." default:"2"`
	SampleRate float64 `help:"Sample rate in Hz; overrides the session's sample rate (48000 unless the config file sets one)." name:"sample-rate"`
	BlockSize  int     `help:"Samples per block." default:"256" name:"block-size"`
	Blocks     int     `help:"Number of blocks to process." default:"50"`
	Quiet      bool    `help:"Suppress per-block metering logs; print only the final summary."`
}

func main() {
	var c cli
	kong.Parse(&c,
		kong.Name("automixdemo"),
		kong.Description("Drives the automix engine over a synthetic multi-channel signal."),
		kong.UsageOnError(),
	)

	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		Level:           log.InfoLevel,
	})
	if c.Quiet {
		logger.SetLevel(log.WarnLevel)
	}

	cfg := defaultSessionConfig()
	if c.Config != "" {
		loaded, err := loadSessionConfig(c.Config)
		if err != nil {
			logger.Fatal("failed to load config", "err", err)
		}
		cfg = loaded
	} else if c.Channels > 0 {
		cfg.Channels = synthesizeChannels(c.Channels)
	}
	if c.SampleRate > 0 {
		cfg.SampleRate = c.SampleRate
	}

	logger.Info("starting session", "channels", len(cfg.Channels), "sample_rate", cfg.SampleRate, "blocks", c.Blocks, "block_size", c.BlockSize)

	engine := buildEngine(cfg)
	gens := make([]*generator, len(cfg.Channels))
	for i, ch := range cfg.Channels {
		gens[i] = newGenerator(ch.Amplitude, int64(i)+1)
	}

	buffers := make([][]float32, len(cfg.Channels))
	for i := range buffers {
		buffers[i] = make([]float32, c.BlockSize)
	}

	for block := 0; block < c.Blocks; block++ {
		for i, g := range gens {
			g.fill(buffers[i])
		}
		engine.Process(buffers)

		if !c.Quiet {
			logBlockMetering(logger, block, engine, cfg.Channels)
		}
	}

	logger.Info("session complete", "lifetime_samples", engine.LifetimeSamples())
	gm := engine.GlobalMetering()
	logger.Info("final global metering", "nom_count", gm.NomCount, "nom_attenuation_db", gm.NomAttenuationDb)
}

// buildEngine constructs and configures an engine from cfg.
func buildEngine(cfg sessionConfig) *automix.Engine {
	e := automix.New(len(cfg.Channels), cfg.SampleRate)
	e.SetAttackMs(cfg.AttackMs)
	e.SetReleaseMs(cfg.ReleaseMs)
	e.SetHoldTimeMs(cfg.HoldMs)
	e.SetNoiseFloorMarginDb(cfg.MarginDb)
	e.SetRMSWindowMs(cfg.WindowMs)
	if cfg.NomEnabled != nil {
		e.SetNomAttenEnabled(*cfg.NomEnabled)
	}
	for i, ch := range cfg.Channels {
		e.SetChannelWeight(i, ch.Weight)
		e.SetChannelMute(i, ch.Muted)
		e.SetChannelSolo(i, ch.Soloed)
		e.SetChannelBypass(i, ch.Bypassed)
	}
	return e
}

// synthesizeChannels builds n channels alternating between a "speaking"
// and a "quiet" amplitude, for --channels runs without a config file.
func synthesizeChannels(n int) []channelConfig {
	chans := make([]channelConfig, n)
	for i := range chans {
		amp := 0.1
		if i%2 == 0 {
			amp = 0.5
		}
		chans[i] = channelConfig{Weight: 1, Amplitude: amp}
	}
	return chans
}

func logBlockMetering(logger *log.Logger, block int, e *automix.Engine, channels []channelConfig) {
	gm := e.GlobalMetering()
	for i, ch := range channels {
		m, ok := e.ChannelMetering(i)
		if !ok {
			continue
		}
		name := ch.Name
		if name == "" {
			name = "ch"
		}
		logger.Info("block metering",
			"block", block,
			"channel", name,
			"active", m.Active,
			"input_db", round1(m.InputRMSDb),
			"gain_db", round1(m.GainDb),
			"floor_db", round1(m.NoiseFloorDb),
			"nom", round1(gm.NomCount),
		)
	}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
