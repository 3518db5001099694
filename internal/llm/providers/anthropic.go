package providers

import (
	"github.com/tmc/langchaingo/llms/anthropic"

	"github.com/2389-research/mux-evals/internal/llm"
)

// DefaultAnthropicModel is used when a request does not name a model.
const DefaultAnthropicModel = "claude-sonnet-4-20250514"

// NewAnthropicClient creates a client for Anthropic's Claude models.
func NewAnthropicClient(apiKey string) (llm.Client, error) {
	if apiKey == "" {
		return nil, llm.NewAuthError("anthropic")
	}

	client, err := anthropic.New(
		anthropic.WithToken(apiKey),
		anthropic.WithModel(DefaultAnthropicModel),
	)
	if err != nil {
		return nil, llm.NewInitError("anthropic", err)
	}

	return &langchainClient{name: "anthropic", model: client}, nil
}
