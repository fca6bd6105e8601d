package sink

import (
	"github.com/hupe1980/agentblend/core"
	"github.com/hupe1980/agentblend/logging"
)

// Logger forwards events to a logging.Logger: error-level events through
// Error, everything else through Info.
type Logger struct {
	logger logging.Logger
}

// NewLogger creates a sink backed by the given logger. A nil logger discards
// every event.
func NewLogger(logger logging.Logger) *Logger {
	if logger == nil {
		logger = logging.NoOpLogger{}
	}

	return &Logger{logger: logger}
}

// Send implements core.Sink.
func (s *Logger) Send(ev core.StatusEvent) error {
	if ev.Level == core.StatusLevelError {
		s.logger.Error(ev.Description, "run_id", ev.RunID, "done", ev.Done)
		return nil
	}

	s.logger.Info(ev.Description, "run_id", ev.RunID, "done", ev.Done)

	return nil
}
