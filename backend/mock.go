package backend

import (
	"context"
	"errors"
	"sync"
)

// Call records a single Complete invocation received by a MockClient.
type Call struct {
	Model  string
	Prompt string
}

// MockClient is a scriptable in-memory Client for testing and examples.
// Canned responses and errors are keyed by model name; CompleteFn, when
// set, takes over every call after it has been recorded. Models with no
// registration fail with KindNotFound, mirroring a backend that does not
// serve them. Safe for concurrent use.
type MockClient struct {
	// CompleteFn overrides the canned lookup when non-nil.
	CompleteFn func(ctx context.Context, model, prompt string) (string, error)

	mu        sync.Mutex
	responses map[string]string
	errs      map[string]error
	calls     []Call
}

// NewMockClient creates an empty mock client.
func NewMockClient() *MockClient {
	return &MockClient{
		responses: make(map[string]string),
		errs:      make(map[string]error),
	}
}

// SetResponse registers a canned completion for a model.
func (m *MockClient) SetResponse(model, text string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[model] = text
	delete(m.errs, model)
}

// SetError registers a failure for a model. Every Complete call targeting
// the model returns err until SetResponse replaces it.
func (m *MockClient) SetError(model string, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.errs[model] = err
	delete(m.responses, model)
}

// Complete implements Client.
func (m *MockClient) Complete(ctx context.Context, model, prompt string) (string, error) {
	m.mu.Lock()
	m.calls = append(m.calls, Call{Model: model, Prompt: prompt})
	fn := m.CompleteFn
	err, hasErr := m.errs[model]
	text, hasText := m.responses[model]
	m.mu.Unlock()

	if fn != nil {
		return fn(ctx, model, prompt)
	}
	if hasErr {
		return "", err
	}
	if hasText {
		return text, nil
	}
	return "", NewError(KindNotFound, model, errors.New("no response registered"))
}

// Calls returns a copy of all recorded calls in arrival order.
func (m *MockClient) Calls() []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]Call, len(m.calls))
	copy(out, m.calls)
	return out
}

// CallsFor returns the recorded calls that targeted model.
func (m *MockClient) CallsFor(model string) []Call {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []Call
	for _, c := range m.calls {
		if c.Model == model {
			out = append(out, c)
		}
	}
	return out
}
