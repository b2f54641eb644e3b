package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "acpcstars.hcl")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "nope.hcl"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	require.NoError(t, cfg.Validate())

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultWorkers, cfg.Converter.Workers)
}

func TestLoadConverterBlock(t *testing.T) {
	t.Parallel()

	path := writeConfig(t, `
converter {
  table          = "17"
  game           = "nolimit"
  big_blind      = 200
  workers        = 8
  describe_hands = true
}
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	c := cfg.Converter
	assert.Equal(t, "17", c.Table)
	assert.Equal(t, "nolimit", c.Game)
	assert.Equal(t, 200, c.BigBlind)
	assert.Equal(t, 8, c.Workers)
	assert.True(t, c.DescribeHands)
	assert.Equal(t, DefaultMaxRecords, c.MaxRecords)
	assert.Equal(t, DefaultLogLevel, c.LogLevel)
}

func TestLoadEmptyFileAppliesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(writeConfig(t, ""))
	require.NoError(t, err)
	require.NotNil(t, cfg.Converter)
	assert.Equal(t, DefaultWorkers, cfg.Converter.Workers)
	require.NoError(t, cfg.Validate())
}

func TestLoadRejectsBadHCL(t *testing.T) {
	t.Parallel()

	_, err := Load(writeConfig(t, "converter {\n  workers = \n"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "converter {\n  colour = \"red\"\n}\n"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		modify func(*ConverterSettings)
	}{
		{"unknown game", func(c *ConverterSettings) { c.Game = "stud" }},
		{"odd big blind", func(c *ConverterSettings) { c.BigBlind = 15 }},
		{"negative big blind", func(c *ConverterSettings) { c.BigBlind = -10 }},
		{"no workers", func(c *ConverterSettings) { c.Workers = 0 }},
		{"no records", func(c *ConverterSettings) { c.MaxRecords = 0 }},
		{"bad log level", func(c *ConverterSettings) { c.LogLevel = "loud" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg := Default()
			tt.modify(cfg.Converter)
			assert.Error(t, cfg.Validate())
		})
	}

	assert.Error(t, (&Config{}).Validate())
}
