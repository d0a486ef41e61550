package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoundTrip(t *testing.T) {
	cfg := Default("Medici Family Bank")
	cfg.Ledger.Currency = "florins"
	cfg.Imports.Verbose = true

	path := filepath.Join(t.TempDir(), FileName)
	err := Save(path, cfg)
	require.NoError(t, err)

	got, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, cfg.Ledger.Name, got.Ledger.Name)
	assert.Equal(t, cfg.Ledger.Currency, got.Ledger.Currency)
	assert.Equal(t, cfg.Imports.Verbose, got.Imports.Verbose)
}

func TestDefaults(t *testing.T) {
	cfg := Default("My Ledger")
	assert.Equal(t, "My Ledger", cfg.Ledger.Name)
	assert.Equal(t, "ducats", cfg.Ledger.Currency)
	assert.False(t, cfg.Imports.Verbose)
}

func TestLoadMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
