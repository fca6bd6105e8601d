package engine

import (
	"context"
	"fmt"

	"github.com/hupe1980/agentblend/backend"
	"github.com/hupe1980/agentblend/core"
	"github.com/hupe1980/agentblend/logging"
)

// Options configures an Engine instance using the functional options pattern.
type Options struct {
	// Logger receives run lifecycle and failure diagnostics.
	// Defaults to NoOp logger if nil.
	Logger logging.Logger

	// Clock supplies timestamps for status events and drives emission
	// throttling. Defaults to the system clock. Tests inject a fake.
	Clock core.Clock

	// Sampler selects the agent slots of each layer from the validated
	// model pool. Defaults to uniform random sampling without replacement.
	// Tests inject a deterministic implementation.
	Sampler Sampler
}

// Engine orchestrates one complete response synthesis run: model
// validation, sequential layer execution with concurrent agent fan-out,
// and the final aggregation call.
//
// Responsibilities:
//   - Model validation: probe every configured model, keep the ones that answer
//   - Layer execution: sample agents per layer, dispatch them concurrently,
//     collect outputs in dispatch order
//   - Aggregation: synthesize layer outputs into the single final answer
//   - Status reporting: one reporter per run, throttled, terminal event on
//     every outcome
//
// Concurrency model:
//   - Layers run strictly in sequence; layer n+1 sees layer n's outputs
//   - Within a layer, one goroutine per agent slot, joined before the layer
//     completes; a failing slot never cancels its siblings
//   - The Engine itself holds no per-run state, so a single instance can
//     serve concurrent Run calls
//
// Example:
//
//	client := openai.New(func(o *openai.Options) { o.BaseURL = cfg.Endpoint })
//	eng := engine.New(client, func(o *engine.Options) { o.Logger = logger })
//
//	updated, err := eng.Run(ctx, conv, cfg, sink)
type Engine struct {
	client  backend.Client
	logger  logging.Logger
	clock   core.Clock
	sampler Sampler
}

// New creates a new Engine on top of the given backend client.
func New(client backend.Client, optFns ...func(o *Options)) *Engine {
	opts := Options{
		Logger:  logging.NoOpLogger{},
		Clock:   core.SystemClock(),
		Sampler: NewRandSampler(nil),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	if opts.Clock == nil {
		opts.Clock = core.SystemClock()
	}
	if opts.Sampler == nil {
		opts.Sampler = NewRandSampler(nil)
	}

	return &Engine{
		client:  client,
		logger:  opts.Logger,
		clock:   opts.Clock,
		sampler: opts.Sampler,
	}
}

// Run executes one synthesis run against conv and returns a new conversation
// with the final answer appended as an assistant turn. The input conversation
// is never mutated. Progress flows to sink through a throttled reporter; a
// nil sink or cfg.StatusEnabled=false silently disables reporting.
//
// The run fails fast on configuration problems, before any backend call:
//   - *core.ConfigError: cfg incomplete or inconsistent
//   - core.ErrNoMessages: conv holds no turn to read the prompt from
//
// Backend-dependent failures:
//   - *core.ValidationError: no configured model survived probing
//   - *core.ConfigError: fewer validated models than AgentsPerLayer
//   - *core.LayerError: every agent of one layer failed
//   - *core.AggregationError: the final aggregation call failed
//
// A cancelled context surfaces as the context's error. Unless reporting is
// disabled, every run emits exactly one terminal status event: info on
// success, error otherwise.
func (e *Engine) Run(ctx context.Context, conv core.Conversation, cfg core.Config, sink core.Sink) (core.Conversation, error) {
	runID := core.NewID()

	reporter := core.NewReporter(sink, func(o *core.ReporterOptions) {
		o.Interval = cfg.EmitInterval
		o.Enabled = cfg.StatusEnabled
		o.Clock = e.clock
		o.RunID = runID
		o.Logger = e.logger
	})

	e.logger.Info("run started", "run_id", runID, "layers", cfg.NumLayers, "agents_per_layer", cfg.AgentsPerLayer)

	reporter.Progress("Starting Mixture of Agents process")

	updated, err := e.process(ctx, conv, cfg, reporter)
	if err != nil {
		reporter.Failed(err.Error())
		e.logger.Error("run failed", "run_id", runID, "error", err)

		return nil, err
	}

	reporter.Completed("Mixture of Agents process completed")
	e.logger.Info("run completed", "run_id", runID)

	return updated, nil
}

// process runs the pipeline stages in order. It never emits terminal status
// events; Run owns the single terminal emission for both outcomes.
func (e *Engine) process(ctx context.Context, conv core.Conversation, cfg core.Config, reporter *core.Reporter) (core.Conversation, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prompt, ok := conv.LastContent()
	if !ok {
		return nil, core.ErrNoMessages
	}

	valid, err := e.validateModels(ctx, cfg, reporter)
	if err != nil {
		return nil, err
	}

	if cfg.AgentsPerLayer > len(valid) {
		return nil, &core.ConfigError{
			Reason: fmt.Sprintf("not enough models available: required %d, available %d", cfg.AgentsPerLayer, len(valid)),
		}
	}

	allOutputs := make([][]string, 0, cfg.NumLayers)

	var previous []string

	for layer := 1; layer <= cfg.NumLayers; layer++ {
		reporter.Progress(fmt.Sprintf("Processing layer %d/%d", layer, cfg.NumLayers))

		outputs, err := e.runLayer(ctx, layer, prompt, previous, valid, cfg, reporter)
		if err != nil {
			return nil, err
		}

		allOutputs = append(allOutputs, outputs)
		previous = outputs

		reporter.Progress(fmt.Sprintf("Completed layer %d/%d", layer, cfg.NumLayers))
	}

	reporter.Progress("Creating final aggregator prompt")

	final := finalPrompt(prompt, allOutputs)

	reporter.Progress("Generating final response")

	answer, err := e.complete(ctx, cfg, cfg.AggregatorModel, final)
	if err != nil {
		return nil, &core.AggregationError{Err: err}
	}

	return conv.Append(core.RoleAssistant, answer), nil
}

// complete issues one backend call, bounded by cfg.RequestTimeout when set.
func (e *Engine) complete(ctx context.Context, cfg core.Config, model, prompt string) (string, error) {
	if cfg.RequestTimeout > 0 {
		var cancel context.CancelFunc

		ctx, cancel = context.WithTimeout(ctx, cfg.RequestTimeout)
		defer cancel()
	}

	return e.client.Complete(ctx, model, prompt)
}
