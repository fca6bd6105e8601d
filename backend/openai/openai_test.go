package openai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/hupe1980/agentblend/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type chatRequest struct {
	Model    string `json:"model"`
	Messages []struct {
		Role    string `json:"role"`
		Content string `json:"content"`
	} `json:"messages"`
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(func(o *Options) {
		o.BaseURL = srv.URL
		o.APIKey = "test"
	})
}

func TestClientComplete(t *testing.T) {
	var got chatRequest

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/chat/completions", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"hello there"}}]}`))
	})

	text, err := client.Complete(context.Background(), "llama3", "say hello")
	require.NoError(t, err)
	assert.Equal(t, "hello there", text)

	assert.Equal(t, "llama3", got.Model)
	require.Len(t, got.Messages, 1)
	assert.Equal(t, "user", got.Messages[0].Role)
	assert.Equal(t, "say hello", got.Messages[0].Content)
}

func TestClientUnknownModel(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":{"message":"model \"ghost\" not found","type":"invalid_request_error","code":"model_not_found"}}`))
	})

	_, err := client.Complete(context.Background(), "ghost", "hi")
	require.Error(t, err)
	assert.True(t, backend.IsNotFound(err))

	var be *backend.Error
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "ghost", be.Model)
}

func TestClientServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom"}}`))
	})

	_, err := client.Complete(context.Background(), "llama3", "hi")
	require.Error(t, err)
	assert.True(t, backend.IsProtocol(err))
	assert.False(t, backend.IsNotFound(err))
}

func TestClientEmptyChoices(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"choices":[]}`))
	})

	_, err := client.Complete(context.Background(), "llama3", "hi")
	require.Error(t, err)
	assert.True(t, backend.IsProtocol(err))
}

func TestClientTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := New(func(o *Options) {
		o.BaseURL = srv.URL
		o.APIKey = "test"
	})

	_, err := client.Complete(context.Background(), "llama3", "hi")
	require.Error(t, err)
	assert.True(t, backend.IsTransport(err))
}

func TestClientDoesNotRetry(t *testing.T) {
	var requests atomic.Int64

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"boom"}}`))
	})

	_, err := client.Complete(context.Background(), "llama3", "hi")
	require.Error(t, err)
	assert.Equal(t, int64(1), requests.Load())
}
