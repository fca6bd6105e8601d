// Package sink provides core.Sink adapters for delivering status events to
// observers: line-delimited JSON writers, websocket connections, loggers,
// and fan-out composition.
//
// All adapters render events with the same wire frame:
//
//	{"type":"status","data":{"status":"in_progress","level":"info","description":"...","done":false}}
//
// where status flips to "complete" on the terminal event of a run.
package sink

import (
	"errors"

	"github.com/hupe1980/agentblend/core"
)

// Frame is the wire representation of one status event.
type Frame struct {
	Type string    `json:"type"`
	Data FrameData `json:"data"`
}

// FrameData carries the event payload.
type FrameData struct {
	Status      string `json:"status"`
	Level       string `json:"level"`
	Description string `json:"description"`
	Done        bool   `json:"done"`
}

// NewFrame renders a status event as its wire frame. Status is
// "in_progress" for every event except the terminal one, which carries
// "complete".
func NewFrame(ev core.StatusEvent) Frame {
	status := "in_progress"
	if ev.Done {
		status = "complete"
	}

	return Frame{
		Type: "status",
		Data: FrameData{
			Status:      status,
			Level:       string(ev.Level),
			Description: ev.Description,
			Done:        ev.Done,
		},
	}
}

// Multi fans every event out to all sinks. Every sink sees every event even
// when earlier sinks fail; the failures are joined into one error.
func Multi(sinks ...core.Sink) core.Sink {
	return core.SinkFunc(func(ev core.StatusEvent) error {
		var errs []error

		for _, s := range sinks {
			if s == nil {
				continue
			}
			if err := s.Send(ev); err != nil {
				errs = append(errs, err)
			}
		}

		return errors.Join(errs...)
	})
}
