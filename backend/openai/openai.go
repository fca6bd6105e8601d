// Package openai implements backend.Client on top of the OpenAI Chat
// Completions API. Pointing BaseURL at any OpenAI-compatible endpoint
// (such as an Ollama server exposing /v1) works the same way.
package openai

import (
	"context"
	"errors"
	"net/http"

	"github.com/hupe1980/agentblend/backend"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// Options configure the OpenAI backend client.
// Extend via functional options without breaking callers.
type Options struct {
	// BaseURL selects the endpoint. Empty keeps the SDK default
	// (api.openai.com).
	BaseURL string

	// APIKey authenticates requests. Local endpoints typically accept
	// any value, including none.
	APIKey string

	// HTTPClient replaces the SDK transport when non-nil.
	HTTPClient *http.Client
}

// Client calls an OpenAI-compatible chat completions endpoint, one prompt
// per request.
type Client struct {
	client *openai.Client
}

// New creates a new OpenAI backend client using the official SDK client.
// Retries are disabled so that one Complete call is exactly one request.
func New(optFns ...func(o *Options)) *Client {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	clientOpts := []option.RequestOption{option.WithMaxRetries(0)}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	client := openai.NewClient(clientOpts...)

	return NewFromClient(&client)
}

// NewFromClient creates a new OpenAI backend client from an existing SDK
// client. The caller keeps responsibility for the client's retry and
// transport configuration.
func NewFromClient(client *openai.Client) *Client {
	return &Client{client: client}
}

// Complete implements backend.Client.
func (c *Client) Complete(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.client.Chat.Completions.New(ctx, openai.ChatCompletionNewParams{
		Model: model,
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(prompt),
		},
	})
	if err != nil {
		return "", classify(model, err)
	}

	if len(resp.Choices) == 0 {
		return "", backend.NewError(backend.KindProtocol, model, errors.New("response contained no choices"))
	}

	return resp.Choices[0].Message.Content, nil
}

// classify maps SDK errors onto backend error kinds. API errors carry an
// HTTP status; anything else never reached the endpoint.
func classify(model string, err error) *backend.Error {
	var apiErr *openai.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusNotFound {
			return backend.NewError(backend.KindNotFound, model, err)
		}
		return backend.NewError(backend.KindProtocol, model, err)
	}
	return backend.NewError(backend.KindTransport, model, err)
}
