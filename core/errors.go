package core

import (
	"errors"
	"fmt"
)

// ErrNoMessages indicates the supplied conversation holds no turns to read a
// seed prompt from.
var ErrNoMessages = errors.New("no messages found in the conversation")

// ConfigError reports missing or invalid per-run settings, including an
// AgentsPerLayer that exceeds the validated model pool. It is fatal and
// surfaces before any layer work starts.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "configuration error: " + e.Reason
}

// ValidationError reports that no configured model survived probing.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "model validation failed: " + e.Reason
}

// LayerError reports a layer in which every dispatched agent call failed.
// Layer is the 1-based layer number.
type LayerError struct {
	Layer int
}

func (e *LayerError) Error() string {
	return fmt.Sprintf("no valid responses received from any agent in layer %d", e.Layer)
}

// AggregationError wraps a failed final aggregation call.
type AggregationError struct {
	Err error
}

func (e *AggregationError) Error() string {
	if e.Err == nil {
		return "failed to generate final response"
	}
	return fmt.Sprintf("failed to generate final response: %v", e.Err)
}

// Unwrap exposes the underlying backend failure.
func (e *AggregationError) Unwrap() error { return e.Err }
