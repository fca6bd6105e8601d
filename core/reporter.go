package core

import (
	"sync"
	"time"

	"github.com/hupe1980/agentblend/logging"
)

// ReporterOptions configures a Reporter.
type ReporterOptions struct {
	// Interval is the minimum spacing between non-terminal emissions.
	Interval time.Duration

	// Enabled toggles reporting entirely. A disabled reporter drops
	// terminal events too.
	Enabled bool

	// Clock supplies the time source used for throttling.
	Clock Clock

	// RunID is stamped onto every event.
	RunID string

	// Logger receives sink failures.
	Logger logging.Logger
}

// Reporter throttles status events on their way to a sink. Non-terminal
// events pass only when at least Interval has elapsed since the previous
// event that passed; terminal events always pass, so observers see
// completion or failure even under heavy suppression. Every event that
// passes advances the throttle timestamp.
//
// A Reporter is safe for concurrent use; the agent goroutines of a layer
// emit through the same instance.
type Reporter struct {
	sink     Sink
	interval time.Duration
	enabled  bool
	clock    Clock
	runID    string
	logger   logging.Logger

	mu       sync.Mutex
	lastEmit time.Time
}

// NewReporter builds a Reporter for one run. A nil sink yields a reporter
// that silently drops everything.
func NewReporter(sink Sink, optFns ...func(o *ReporterOptions)) *Reporter {
	opts := ReporterOptions{
		Enabled: true,
		Clock:   SystemClock(),
		Logger:  logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Clock == nil {
		opts.Clock = SystemClock()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Reporter{
		sink:     sink,
		interval: opts.Interval,
		enabled:  opts.Enabled,
		clock:    opts.Clock,
		runID:    opts.RunID,
		logger:   opts.Logger,
	}
}

// Emit sends one status event through the throttle. done marks the terminal
// event of the run and bypasses the interval check.
func (r *Reporter) Emit(level StatusLevel, description string, done bool) {
	if r.sink == nil || !r.enabled {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.clock.Now()
	if !done && !r.lastEmit.IsZero() && now.Sub(r.lastEmit) < r.interval {
		return
	}

	ev := StatusEvent{
		ID:          NewID(),
		RunID:       r.runID,
		Timestamp:   now,
		Level:       level,
		Description: description,
		Done:        done,
	}

	if err := r.sink.Send(ev); err != nil {
		r.logger.Warn("status sink rejected event", "run_id", r.runID, "error", err)
	}

	r.lastEmit = now
}

// Progress emits a non-terminal info event.
func (r *Reporter) Progress(description string) {
	r.Emit(StatusLevelInfo, description, false)
}

// Completed emits the terminal info event of a successful run.
func (r *Reporter) Completed(description string) {
	r.Emit(StatusLevelInfo, description, true)
}

// Failed emits the terminal error event of a failed run.
func (r *Reporter) Failed(description string) {
	r.Emit(StatusLevelError, description, true)
}
