// Package backend defines the completion client contract used by the
// mixture engine. A Client answers exactly one prompt against one named
// model; the engine owns all fan-out, ordering, and retry-free semantics
// on top of it.
//
// Implementations live in the backend/openai and backend/anthropic
// subpackages. MockClient provides a scriptable in-memory implementation
// for tests and examples.
package backend

import "context"

// Client issues a single prompt completion against a named model.
type Client interface {
	// Complete sends prompt to model and returns the completion text.
	// Failures are reported as *Error so callers can distinguish an
	// unknown model from a transport or protocol problem. A single call
	// maps to a single request; clients never retry on their own.
	Complete(ctx context.Context, model, prompt string) (string, error)
}
