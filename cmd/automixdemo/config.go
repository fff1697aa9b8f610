package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// sessionConfig describes a demo mixing session loaded from YAML: the
// engine-wide parameters plus one entry per channel. It is demo-harness
// configuration, not a plug-in preset format.
type sessionConfig struct {
	SampleRate float64         `yaml:"sample_rate"`
	AttackMs   float64         `yaml:"attack_ms"`
	ReleaseMs  float64         `yaml:"release_ms"`
	HoldMs     float64         `yaml:"hold_ms"`
	MarginDb   float64         `yaml:"margin_db"`
	WindowMs   float64         `yaml:"window_ms"`
	NomEnabled *bool           `yaml:"nom_enabled"`
	Channels   []channelConfig `yaml:"channels"`
}

type channelConfig struct {
	Name     string  `yaml:"name"`
	Weight   float64 `yaml:"weight"`
	Muted    bool    `yaml:"muted"`
	Soloed   bool    `yaml:"soloed"`
	Bypassed bool    `yaml:"bypassed"`
	// Amplitude drives the demo's synthetic signal generator; the
	// engine itself has no notion of it.
	Amplitude float64 `yaml:"amplitude"`
}

// defaultSessionConfig returns a two-channel session at 48kHz using the
// engine's own defaults, used when no --config file is given.
func defaultSessionConfig() sessionConfig {
	return sessionConfig{
		SampleRate: 48000,
		AttackMs:   5,
		ReleaseMs:  150,
		HoldMs:     500,
		MarginDb:   6,
		WindowMs:   20,
		Channels: []channelConfig{
			{Name: "host", Weight: 1, Amplitude: 0.5},
			{Name: "guest", Weight: 1, Amplitude: 0.1},
		},
	}
}

// loadSessionConfig reads and parses a YAML session file.
func loadSessionConfig(path string) (sessionConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return sessionConfig{}, fmt.Errorf("reading config %q: %w", path, err)
	}
	cfg := defaultSessionConfig()
	cfg.Channels = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return sessionConfig{}, fmt.Errorf("parsing config %q: %w", path, err)
	}
	if len(cfg.Channels) == 0 {
		return sessionConfig{}, fmt.Errorf("config %q declares no channels", path)
	}
	return cfg, nil
}
