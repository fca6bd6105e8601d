// Package agentblend provides a high-level façade over the layered response
// synthesis engine. One run takes a conversation, queries several models in
// concurrent layers, folds their outputs through an aggregator model, and
// returns the conversation with the synthesized answer appended. Most
// applications interact with this package by:
//  1. Creating an AgentBlend via New() (optionally injecting a backend
//     client, logger, or sampler)
//  2. Building a core.Config with the model pool, aggregator model, and
//     endpoint
//  3. Calling Run (full conversation in/out) or RunPrompt (single prompt,
//     answer text out), optionally passing a status sink for progress events
//
// The façade delegates orchestration to engine.Engine while keeping setup
// concise. Defaults are safe for local development against an
// OpenAI-compatible endpoint; production deployments typically supply a
// structured logger and their own backend client.
package agentblend

import (
	"context"
	"net/http"

	"github.com/hupe1980/agentblend/backend"
	"github.com/hupe1980/agentblend/backend/openai"
	"github.com/hupe1980/agentblend/core"
	"github.com/hupe1980/agentblend/engine"
	"github.com/hupe1980/agentblend/logging"
)

// Options configures the AgentBlend instance.
type Options struct {
	// Client answers every model call. Nil selects the OpenAI-compatible
	// default client, built per run from the configuration's Endpoint.
	Client backend.Client

	// APIKey authenticates the default client. Ignored when Client is set;
	// local endpoints usually need none.
	APIKey string

	// HTTPClient replaces the default client's transport. Ignored when
	// Client is set.
	HTTPClient *http.Client

	// Logger (defaults to NoOp logger if nil)
	Logger logging.Logger

	// Clock supplies event timestamps and throttling time. Defaults to the
	// system clock.
	Clock core.Clock

	// Sampler selects the agent slots of each layer. Defaults to uniform
	// random sampling without replacement.
	Sampler engine.Sampler
}

// AgentBlend is the high-level façade over the synthesis engine.
type AgentBlend struct {
	opts Options
}

// New creates a new AgentBlend instance with optional overrides.
func New(optFns ...func(o *Options)) *AgentBlend {
	opts := Options{
		Logger: logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &AgentBlend{opts: opts}
}

// Run executes one synthesis run over conv with the given configuration and
// returns a new conversation ending in the synthesized assistant turn. The
// input conversation is never mutated. Status events flow to sink, throttled
// per cfg; a nil sink disables reporting.
func (b *AgentBlend) Run(ctx context.Context, conv core.Conversation, cfg core.Config, sink core.Sink) (core.Conversation, error) {
	client := b.opts.Client
	if client == nil {
		client = openai.New(func(o *openai.Options) {
			o.BaseURL = cfg.Endpoint
			o.APIKey = b.opts.APIKey
			o.HTTPClient = b.opts.HTTPClient
		})
	}

	eng := engine.New(client, func(o *engine.Options) {
		o.Logger = b.opts.Logger
		o.Clock = b.opts.Clock
		o.Sampler = b.opts.Sampler
	})

	return eng.Run(ctx, conv, cfg, sink)
}

// RunPrompt is a convenience wrapper for one-shot use: it wraps prompt in a
// user turn, runs it, and returns only the synthesized answer text.
func (b *AgentBlend) RunPrompt(ctx context.Context, prompt string, cfg core.Config, sink core.Sink) (string, error) {
	conv := core.Conversation{{Role: core.RoleUser, Content: prompt}}

	updated, err := b.Run(ctx, conv, cfg, sink)
	if err != nil {
		return "", err
	}

	answer, _ := updated.LastContent()

	return answer, nil
}
