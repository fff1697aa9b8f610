package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSessionConfig(t *testing.T) {
	cfg, err := loadSessionConfig("testdata/session.yaml")
	require.NoError(t, err)

	assert.Equal(t, 48000.0, cfg.SampleRate)
	require.Len(t, cfg.Channels, 3)
	assert.Equal(t, "host", cfg.Channels[0].Name)
	assert.Equal(t, 0.8, cfg.Channels[2].Weight)
	require.NotNil(t, cfg.NomEnabled)
	assert.True(t, *cfg.NomEnabled)
}

func TestLoadSessionConfigMissingFile(t *testing.T) {
	_, err := loadSessionConfig("testdata/does-not-exist.yaml")
	assert.Error(t, err)
}

func TestLoadSessionConfigNoChannels(t *testing.T) {
	dir := t.TempDir()
	path := dir + "/empty.yaml"
	require.NoError(t, os.WriteFile(path, []byte("sample_rate: 48000\n"), 0o644))

	_, err := loadSessionConfig(path)
	assert.Error(t, err)
}

func TestDefaultSessionConfig(t *testing.T) {
	cfg := defaultSessionConfig()
	assert.Len(t, cfg.Channels, 2)
	assert.Equal(t, 5.0, cfg.AttackMs)
}
