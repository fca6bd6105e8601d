package core

import (
	"errors"
	"testing"
	"time"
)

func validConfig() Config {
	cfg := DefaultConfig()
	cfg.Models = []string{"a", "b", "c"}
	cfg.AggregatorModel = "agg"
	cfg.Endpoint = "http://localhost:11434/v1"
	return cfg
}

func TestConfig_Defaults(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.NumLayers != 1 || cfg.AgentsPerLayer != 3 {
		t.Fatalf("unexpected layer defaults: %+v", cfg)
	}
	if cfg.EmitInterval != time.Second || !cfg.StatusEnabled {
		t.Fatalf("unexpected status defaults: %+v", cfg)
	}
	if cfg.RequestTimeout != 0 {
		t.Fatalf("request timeout should default to disabled, got %v", cfg.RequestTimeout)
	}
}

func TestConfig_ValidateOK(t *testing.T) {
	if err := validConfig().Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}
}

func TestConfig_ValidateFailures(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"no models", func(c *Config) { c.Models = nil }},
		{"no aggregator", func(c *Config) { c.AggregatorModel = "" }},
		{"no endpoint", func(c *Config) { c.Endpoint = "" }},
		{"zero layers", func(c *Config) { c.NumLayers = 0 }},
		{"zero agents", func(c *Config) { c.AgentsPerLayer = 0 }},
		{"agents exceed models", func(c *Config) { c.AgentsPerLayer = 4 }},
		{"negative interval", func(c *Config) { c.EmitInterval = -time.Second }},
		{"negative timeout", func(c *Config) { c.RequestTimeout = -time.Second }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected a validation failure")
			}

			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("expected *ConfigError, got %T (%v)", err, err)
			}
		})
	}
}
