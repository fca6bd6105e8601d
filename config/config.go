// Package config loads pipeline settings from YAML files and AGENTBLEND_*
// environment variables, layered over the core defaults.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/hupe1980/agentblend/core"
)

// DefaultEndpoint is the OpenAI-compatible endpoint assumed when neither the
// file nor the environment names one. It matches a local Ollama install.
const DefaultEndpoint = "http://localhost:11434/v1"

// fileConfig is the YAML schema. Pointer fields distinguish absent keys from
// explicit zero values, so a file only overrides what it actually sets.
// Durations are written in Go syntax ("250ms", "1m30s").
type fileConfig struct {
	Models          []string `yaml:"models"`
	AggregatorModel string   `yaml:"aggregator_model"`
	Endpoint        string   `yaml:"endpoint"`
	NumLayers       *int     `yaml:"num_layers"`
	AgentsPerLayer  *int     `yaml:"agents_per_layer"`
	EmitInterval    string   `yaml:"emit_interval"`
	StatusEnabled   *bool    `yaml:"status_enabled"`
	RequestTimeout  string   `yaml:"request_timeout"`
}

// Load assembles a core.Config from three layers: the core defaults, an
// optional YAML file, and AGENTBLEND_* environment variables, each layer
// overriding the previous one. An empty path skips the file layer; a
// non-empty path must point at an existing file. Environment variables
// referenced in the file as ${VAR} are expanded before parsing.
//
// Load never validates the result. Validation runs when the config is used
// for a run, so a partially assembled config can still be completed in code.
func Load(path string) (core.Config, error) {
	cfg := core.DefaultConfig()
	cfg.Endpoint = DefaultEndpoint

	if path != "" {
		if err := applyFile(&cfg, path); err != nil {
			return core.Config{}, err
		}
	}

	applyEnv(&cfg)

	return cfg, nil
}

func applyFile(cfg *core.Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var fc fileConfig

	expanded := os.ExpandEnv(string(data))
	if err := yaml.Unmarshal([]byte(expanded), &fc); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if len(fc.Models) > 0 {
		cfg.Models = fc.Models
	}
	if fc.AggregatorModel != "" {
		cfg.AggregatorModel = fc.AggregatorModel
	}
	if fc.Endpoint != "" {
		cfg.Endpoint = fc.Endpoint
	}
	if fc.NumLayers != nil {
		cfg.NumLayers = *fc.NumLayers
	}
	if fc.AgentsPerLayer != nil {
		cfg.AgentsPerLayer = *fc.AgentsPerLayer
	}
	if fc.StatusEnabled != nil {
		cfg.StatusEnabled = *fc.StatusEnabled
	}

	if fc.EmitInterval != "" {
		d, err := time.ParseDuration(fc.EmitInterval)
		if err != nil {
			return fmt.Errorf("parse emit_interval: %w", err)
		}

		cfg.EmitInterval = d
	}

	if fc.RequestTimeout != "" {
		d, err := time.ParseDuration(fc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("parse request_timeout: %w", err)
		}

		cfg.RequestTimeout = d
	}

	return nil
}

// applyEnv layers AGENTBLEND_* overrides on top of the config. Unparsable
// numeric values are ignored rather than failing the load.
func applyEnv(cfg *core.Config) {
	if v := os.Getenv("AGENTBLEND_MODELS"); v != "" {
		var models []string

		for _, m := range strings.Split(v, ",") {
			if m = strings.TrimSpace(m); m != "" {
				models = append(models, m)
			}
		}

		if len(models) > 0 {
			cfg.Models = models
		}
	}
	if v := os.Getenv("AGENTBLEND_AGGREGATOR"); v != "" {
		cfg.AggregatorModel = v
	}
	if v := os.Getenv("AGENTBLEND_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("AGENTBLEND_LAYERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.NumLayers = n
		}
	}
	if v := os.Getenv("AGENTBLEND_AGENTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.AgentsPerLayer = n
		}
	}
}
