package agentblend

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/agentblend/backend"
	"github.com/hupe1980/agentblend/core"
	"github.com/hupe1980/agentblend/internal/testutil"
)

func newTestBlend() (*AgentBlend, *backend.MockClient) {
	client := backend.NewMockClient()
	client.SetResponse("a", "answer a")
	client.SetResponse("b", "answer b")
	client.SetResponse("c", "answer c")
	client.SetResponse("agg", "FINAL")

	blend := New(func(o *Options) {
		o.Client = client
	})

	return blend, client
}

func testConfig() core.Config {
	cfg := core.DefaultConfig()
	cfg.Models = []string{"a", "b", "c"}
	cfg.AggregatorModel = "agg"
	cfg.Endpoint = "http://localhost:11434/v1"
	cfg.AgentsPerLayer = 2
	cfg.EmitInterval = 0
	return cfg
}

func TestRunAppendsAssistantTurn(t *testing.T) {
	blend, _ := newTestBlend()

	collector := testutil.NewEventCollector()
	conv := testutil.NewConversationBuilder().User("question").Build()

	updated, err := blend.Run(context.Background(), conv, testConfig(), collector)
	require.NoError(t, err)

	require.Len(t, updated, 2)
	assert.Equal(t, core.RoleAssistant, updated[1].Role)
	assert.Equal(t, "FINAL", updated[1].Content)

	require.Len(t, conv, 1)

	terminal := collector.Terminal()
	require.Len(t, terminal, 1)
	assert.Equal(t, "Mixture of Agents process completed", terminal[0].Description)
}

func TestRunPrompt(t *testing.T) {
	blend, client := newTestBlend()

	answer, err := blend.RunPrompt(context.Background(), "question", testConfig(), nil)
	require.NoError(t, err)
	assert.Equal(t, "FINAL", answer)

	var sawQuestion bool
	for _, call := range client.Calls() {
		if call.Prompt == "question" {
			sawQuestion = true
		}
	}
	assert.True(t, sawQuestion, "layer agents should receive the user prompt")
}

func TestRunPromptConfigError(t *testing.T) {
	blend, _ := newTestBlend()

	answer, err := blend.RunPrompt(context.Background(), "question", core.Config{}, nil)
	require.Error(t, err)

	var cfgErr *core.ConfigError
	assert.ErrorAs(t, err, &cfgErr)
	assert.Empty(t, answer)
}

func TestRunDefaultsToEndpointClient(t *testing.T) {
	// Without an injected client the façade builds one from cfg.Endpoint;
	// an unreachable endpoint fails every probe, so validation fails.
	blend := New()

	cfg := testConfig()
	cfg.Endpoint = "http://127.0.0.1:1/v1"

	conv := testutil.NewConversationBuilder().User("question").Build()

	_, err := blend.Run(context.Background(), conv, cfg, nil)
	require.Error(t, err)

	var valErr *core.ValidationError
	assert.ErrorAs(t, err, &valErr)
}
