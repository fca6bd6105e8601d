package core

import (
	"time"

	"github.com/google/uuid"
)

// StatusLevel is the severity attached to a status event.
type StatusLevel string

const (
	// StatusLevelInfo marks ordinary progress updates.
	StatusLevelInfo StatusLevel = "info"

	// StatusLevelError marks failures, both tolerated per-agent ones and
	// terminal run failures.
	StatusLevelError StatusLevel = "error"
)

// StatusEvent is one progress or error notification produced while a run is
// in flight. Events are transient: they are handed to the sink and never
// retained. Done marks the terminal event of a run; sink adapters derive the
// wire status ("in_progress" vs "complete") from it.
type StatusEvent struct {
	ID          string      `json:"id"`
	RunID       string      `json:"run_id"`
	Timestamp   time.Time   `json:"timestamp"`
	Level       StatusLevel `json:"level"`
	Description string      `json:"description"`
	Done        bool        `json:"done"`
}

// Sink receives status events from a Reporter. Delivery is serialized, so
// implementations do not need their own locking against the Reporter. A Send
// error is logged and swallowed; status reporting never affects pipeline
// correctness.
type Sink interface {
	Send(ev StatusEvent) error
}

// SinkFunc adapts a plain function to the Sink interface.
type SinkFunc func(ev StatusEvent) error

// Send invokes the function.
func (f SinkFunc) Send(ev StatusEvent) error { return f(ev) }

// NewID returns a fresh random identifier.
func NewID() string {
	return uuid.NewString()
}
