package runner

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/hupe1980/agentblend"
	"github.com/hupe1980/agentblend/core"
	"github.com/hupe1980/agentblend/logging"
	"github.com/hupe1980/agentblend/session"
)

// Options holds dependency and configuration overrides passed to New().
type Options struct {
	// Store persists session conversations across runs.
	// Defaults to the in-memory implementation.
	Store core.ConversationStore

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger

	// EventBufferSize sets the per-run status channel buffering. When the
	// buffer is full, further events are dropped rather than stalling the
	// pipeline; status delivery is advisory.
	EventBufferSize int
}

// Run is a handle to one launched synthesis run.
type Run struct {
	// ID uniquely identifies the run.
	ID string

	// SessionID names the conversation the run extends.
	SessionID string

	// Events streams the run's status updates. The channel closes when the
	// run finishes. A consumer that falls more than the buffer size behind
	// loses events, never the run itself.
	Events <-chan core.StatusEvent

	done   chan struct{}
	answer string
	err    error
}

// Wait blocks until the run finishes or ctx is done, then returns the final
// assistant text or the run's error. Wait does not consume Events; both can
// be used together.
func (r *Run) Wait(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case <-r.done:
		return r.answer, r.err
	}
}

// Runner coordinates synthesis runs: it resolves session conversations,
// launches the pipeline, streams status events, and persists results.
// Public methods are safe for concurrent use.
type Runner struct {
	blend           *agentblend.AgentBlend
	store           core.ConversationStore
	logger          logging.Logger
	eventBufferSize int

	activeRuns map[string]context.CancelFunc
	mu         sync.RWMutex
}

// New constructs a Runner with optional overrides.
func New(blend *agentblend.AgentBlend, optFns ...func(o *Options)) *Runner {
	opts := Options{
		Store:           session.NewInMemoryStore(),
		Logger:          logging.NoOpLogger{},
		EventBufferSize: 100,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Store == nil {
		opts.Store = session.NewInMemoryStore()
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	return &Runner{
		blend:           blend,
		store:           opts.Store,
		logger:          opts.Logger,
		eventBufferSize: opts.EventBufferSize,
		activeRuns:      make(map[string]context.CancelFunc),
	}
}

// Start launches an asynchronous run that extends the session's stored
// conversation with prompt. The user turn is persisted immediately; the
// assistant turn is persisted only when the run succeeds. An unknown
// session id starts a fresh conversation.
func (r *Runner) Start(ctx context.Context, sessionID, prompt string, cfg core.Config) (*Run, error) {
	if err := r.store.Append(sessionID, core.Message{Role: core.RoleUser, Content: prompt}); err != nil {
		return nil, fmt.Errorf("failed to persist user turn for session %q: %w", sessionID, err)
	}

	conv, err := r.store.Get(sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to load session %q: %w", sessionID, err)
	}

	runID := core.NewID()
	events := make(chan core.StatusEvent, r.eventBufferSize)

	ctx, cancel := context.WithCancel(ctx)

	r.mu.Lock()
	r.activeRuns[runID] = cancel
	r.mu.Unlock()

	run := &Run{
		ID:        runID,
		SessionID: sessionID,
		Events:    events,
		done:      make(chan struct{}),
	}

	sink := core.SinkFunc(func(ev core.StatusEvent) error {
		select {
		case events <- ev:
			return nil
		default:
			return errors.New("status buffer full, event dropped")
		}
	})

	r.logger.Info("run launched", "run_id", runID, "session_id", sessionID)

	go func() {
		defer close(run.done)

		defer func() {
			r.mu.Lock()
			delete(r.activeRuns, runID)
			r.mu.Unlock()

			cancel()
			close(events)
		}()

		updated, err := r.blend.Run(ctx, conv, cfg, sink)
		if err != nil {
			run.err = err
			r.logger.Error("run failed", "run_id", runID, "session_id", sessionID, "error", err)

			return
		}

		if err := r.store.Put(sessionID, updated); err != nil {
			run.err = fmt.Errorf("failed to persist conversation for session %q: %w", sessionID, err)
			r.logger.Error("run result not persisted", "run_id", runID, "session_id", sessionID, "error", err)

			return
		}

		run.answer, _ = updated.LastContent()

		r.logger.Info("run completed", "run_id", runID, "session_id", sessionID)
	}()

	return run, nil
}

// RunSync is the synchronous convenience path: it starts a run, drains its
// events, and returns the final assistant text.
func (r *Runner) RunSync(ctx context.Context, sessionID, prompt string, cfg core.Config) (string, error) {
	run, err := r.Start(ctx, sessionID, prompt, cfg)
	if err != nil {
		return "", err
	}

	for range run.Events {
	}

	return run.Wait(ctx)
}

// Cancel aborts the run with the given id. It reports whether a matching
// in-flight run existed.
func (r *Runner) Cancel(runID string) bool {
	r.mu.RLock()
	cancel, ok := r.activeRuns[runID]
	r.mu.RUnlock()

	if ok {
		cancel()
	}

	return ok
}

// Active returns the ids of all in-flight runs in lexical order.
func (r *Runner) Active() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.activeRuns))
	for id := range r.activeRuns {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	return ids
}
