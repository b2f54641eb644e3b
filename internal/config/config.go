// Package config loads the optional HCL run configuration.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"

	"github.com/lox/acpcstars/internal/acpc"
)

// Defaults applied to settings the file leaves out.
const (
	DefaultWorkers    = 4
	DefaultMaxRecords = 1_000_000
	DefaultLogLevel   = "info"
)

// Config represents the complete configuration file.
type Config struct {
	Converter *ConverterSettings `hcl:"converter,block"`
}

// ConverterSettings controls a conversion run. Zero values for Table, Game
// and BigBlind mean "take it from the log header or the game default".
type ConverterSettings struct {
	Table         string `hcl:"table,optional"`
	Game          string `hcl:"game,optional"`
	BigBlind      int    `hcl:"big_blind,optional"`
	Workers       int    `hcl:"workers,optional"`
	MaxRecords    int    `hcl:"max_records,optional"`
	LogLevel      string `hcl:"log_level,optional"`
	DescribeHands bool   `hcl:"describe_hands,optional"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Converter: &ConverterSettings{
		Workers:    DefaultWorkers,
		MaxRecords: DefaultMaxRecords,
		LogLevel:   DefaultLogLevel,
	}}
}

// Load reads an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if filename == "" {
		return Default(), nil
	}
	if _, err := os.Stat(filename); errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	var cfg Config
	diags = gohcl.DecodeBody(file.Body, nil, &cfg)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	if cfg.Converter == nil {
		cfg.Converter = &ConverterSettings{}
	}
	c := cfg.Converter
	if c.Workers == 0 {
		c.Workers = DefaultWorkers
	}
	if c.MaxRecords == 0 {
		c.MaxRecords = DefaultMaxRecords
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	return &cfg, nil
}

// Validate checks the run-level settings.
func (c *Config) Validate() error {
	s := c.Converter
	if s == nil {
		return fmt.Errorf("missing converter block")
	}
	if s.Game != "" {
		if _, err := acpc.ParseGameType(s.Game); err != nil {
			return err
		}
	}
	if s.BigBlind < 0 || s.BigBlind%2 != 0 {
		return fmt.Errorf("big_blind must be a positive even number, got %d", s.BigBlind)
	}
	if s.Workers < 1 {
		return fmt.Errorf("workers must be at least 1, got %d", s.Workers)
	}
	if s.MaxRecords < 1 {
		return fmt.Errorf("max_records must be at least 1, got %d", s.MaxRecords)
	}
	switch s.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level: %q", s.LogLevel)
	}
	return nil
}
