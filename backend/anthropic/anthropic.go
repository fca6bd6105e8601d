// Package anthropic implements backend.Client on top of the Anthropic
// Messages API.
package anthropic

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/hupe1980/agentblend/backend"
)

// Options configure the Anthropic backend client (API key, endpoint,
// completion cap). Extend via functional options to preserve stability.
type Options struct {
	// APIKey authenticates requests. Empty falls back to the
	// ANTHROPIC_API_KEY environment variable.
	APIKey string

	// BaseURL overrides the API endpoint when non-empty.
	BaseURL string

	// MaxTokens caps the completion length. The Messages API rejects
	// requests without a positive value.
	MaxTokens int64

	// HTTPClient replaces the SDK transport when non-nil.
	HTTPClient *http.Client
}

// Client calls the Anthropic Messages API, one prompt per request.
type Client struct {
	client *anthropic.Client
	opts   Options
}

// New creates a new Anthropic backend client using the official SDK client.
// Retries are disabled so that one Complete call is exactly one request.
func New(optFns ...func(o *Options)) *Client {
	opts := Options{
		MaxTokens: 4096,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	clientOpts := []option.RequestOption{option.WithMaxRetries(0)}
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}
	if opts.BaseURL != "" {
		clientOpts = append(clientOpts, option.WithBaseURL(opts.BaseURL))
	}
	if opts.HTTPClient != nil {
		clientOpts = append(clientOpts, option.WithHTTPClient(opts.HTTPClient))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Client{
		client: &client,
		opts:   opts,
	}
}

// NewFromClient creates a new Anthropic backend client from an existing SDK
// client. The caller keeps responsibility for the client's retry and
// transport configuration.
func NewFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Client {
	opts := Options{
		MaxTokens: 4096,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Client{
		client: client,
		opts:   opts,
	}
}

// Complete implements backend.Client. The completion text is the
// concatenation of all text blocks in the response.
func (c *Client) Complete(ctx context.Context, model, prompt string) (string, error) {
	resp, err := c.client.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(model),
		MaxTokens: c.opts.MaxTokens,
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
	})
	if err != nil {
		return "", classify(model, err)
	}

	var sb strings.Builder

	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.AsText().Text)
		}
	}

	if sb.Len() == 0 {
		return "", backend.NewError(backend.KindProtocol, model, errors.New("response contained no text blocks"))
	}

	return sb.String(), nil
}

// classify maps SDK errors onto backend error kinds. API errors carry an
// HTTP status; anything else never reached the endpoint.
func classify(model string, err error) *backend.Error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		if apiErr.StatusCode == http.StatusNotFound {
			return backend.NewError(backend.KindNotFound, model, err)
		}
		return backend.NewError(backend.KindProtocol, model, err)
	}
	return backend.NewError(backend.KindTransport, model, err)
}
