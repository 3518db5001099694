package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389-research/mux-evals/internal/capability"
	"github.com/2389-research/mux-evals/internal/types"
)

func TestFactoryUnknownProvider(t *testing.T) {
	_, err := New(context.Background(), "watson", capability.Static{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.NewError(types.LLM_PROVIDER_NOT_FOUND, "")))
}

func TestFactoryMissingCredential(t *testing.T) {
	for _, provider := range []string{"anthropic", "openai", "gemini", "ollama"} {
		_, err := New(context.Background(), provider, capability.Static{})
		require.Error(t, err, provider)
		assert.True(t, errors.Is(err, types.NewError(types.LLM_PROVIDER_UNAUTHORIZED, "")), provider)
	}
}

func TestFactoryConstructsClient(t *testing.T) {
	caps := capability.Static{"ANTHROPIC_API_KEY": "sk-ant-test"}
	client, err := New(context.Background(), "anthropic", caps)
	require.NoError(t, err)
	assert.Equal(t, "anthropic", client.Name())
}

func TestDefaultModelFor(t *testing.T) {
	assert.Equal(t, DefaultAnthropicModel, DefaultModelFor("anthropic"))
	assert.Equal(t, DefaultGeminiModel, DefaultModelFor("google"))
	assert.Equal(t, "", DefaultModelFor("unknown"))
}
