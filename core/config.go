package core

import (
	"fmt"
	"time"
)

// Config carries the per-run settings for one pipeline invocation. A Config
// is read-only once the run starts; the pipeline never mutates the caller's
// value. The config package loads Config values from YAML files and
// environment variables.
type Config struct {
	// Models is the candidate pool sampled for each layer.
	Models []string

	// AggregatorModel synthesizes prior outputs: it serves every agent slot
	// in layers beyond the first and produces the final answer.
	AggregatorModel string

	// Endpoint is the OpenAI-compatible base URL the default backend posts
	// to ({Endpoint}/chat/completions).
	Endpoint string

	// NumLayers is the number of sequential agent layers.
	NumLayers int

	// AgentsPerLayer is how many models are sampled per layer. It must not
	// exceed the number of models that survive validation.
	AgentsPerLayer int

	// EmitInterval is the minimum spacing between non-terminal status
	// emissions.
	EmitInterval time.Duration

	// StatusEnabled toggles status reporting entirely.
	StatusEnabled bool

	// RequestTimeout bounds each individual backend call. Zero disables the
	// per-call deadline, so a layer waits as long as its slowest agent.
	RequestTimeout time.Duration
}

// DefaultConfig returns the baseline settings: one layer, three agents per
// layer, at most one status emission per second, no per-call deadline.
// Models, AggregatorModel and Endpoint must still be supplied by the caller.
func DefaultConfig() Config {
	return Config{
		NumLayers:      1,
		AgentsPerLayer: 3,
		EmitInterval:   time.Second,
		StatusEnabled:  true,
	}
}

// Validate reports the first structural problem as a *ConfigError. The
// stronger check that AgentsPerLayer fits the validated pool runs inside the
// pipeline, once it knows which models actually respond.
func (c Config) Validate() error {
	if len(c.Models) == 0 || c.AggregatorModel == "" || c.Endpoint == "" {
		return &ConfigError{Reason: "models, aggregator model, or endpoint not set"}
	}
	if c.NumLayers < 1 {
		return &ConfigError{Reason: fmt.Sprintf("number of layers must be at least 1, got %d", c.NumLayers)}
	}
	if c.AgentsPerLayer < 1 {
		return &ConfigError{Reason: fmt.Sprintf("agents per layer must be at least 1, got %d", c.AgentsPerLayer)}
	}
	if c.AgentsPerLayer > len(c.Models) {
		return &ConfigError{Reason: fmt.Sprintf("not enough models available: required %d, available %d", c.AgentsPerLayer, len(c.Models))}
	}
	if c.EmitInterval < 0 {
		return &ConfigError{Reason: "emit interval must not be negative"}
	}
	if c.RequestTimeout < 0 {
		return &ConfigError{Reason: "request timeout must not be negative"}
	}
	return nil
}
