package testutil

import (
	"sync"

	"github.com/hupe1980/agentblend/core"
)

// EventCollector is a core.Sink that records every event it receives.
// Safe for concurrent use; layer goroutines emit through the same reporter.
type EventCollector struct {
	mu     sync.Mutex
	events []core.StatusEvent
}

// NewEventCollector creates an empty collector.
func NewEventCollector() *EventCollector {
	return &EventCollector{}
}

// Send implements core.Sink.
func (c *EventCollector) Send(ev core.StatusEvent) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.events = append(c.events, ev)
	return nil
}

// Events returns a copy of all recorded events in arrival order.
func (c *EventCollector) Events() []core.StatusEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]core.StatusEvent, len(c.events))
	copy(out, c.events)
	return out
}

// Descriptions returns the recorded event descriptions in arrival order.
func (c *EventCollector) Descriptions() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.events))
	for i, ev := range c.events {
		out[i] = ev.Description
	}
	return out
}

// Terminal returns the events with the done flag set.
func (c *EventCollector) Terminal() []core.StatusEvent {
	c.mu.Lock()
	defer c.mu.Unlock()
	var out []core.StatusEvent
	for _, ev := range c.events {
		if ev.Done {
			out = append(out, ev)
		}
	}
	return out
}
