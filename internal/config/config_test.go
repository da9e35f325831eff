package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)
	require.Equal(t, "four_bool", cfg.Engine.DefaultLabeler)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := DefaultConfig()
	cfg.Engine.DefaultLabeler = "naive"
	cfg.Engine.MaxNaiveTheories = 10
	require.NoError(t, cfg.Save(path))

	got, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "naive", got.Engine.DefaultLabeler)
	require.Equal(t, 10, got.Engine.MaxNaiveTheories)
}

func TestValidateRejectsUnknownLabeler(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Engine.DefaultLabeler = "bogus"
	require.Error(t, cfg.Validate())
}
