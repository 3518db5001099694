package providers

import (
	"github.com/tmc/langchaingo/llms/openai"

	"github.com/2389-research/mux-evals/internal/llm"
)

// DefaultOpenAIModel is used when a request does not name a model.
const DefaultOpenAIModel = "gpt-4o-mini"

// NewOpenAIClient creates a client for OpenAI's GPT models.
func NewOpenAIClient(apiKey string) (llm.Client, error) {
	if apiKey == "" {
		return nil, llm.NewAuthError("openai")
	}

	client, err := openai.New(
		openai.WithToken(apiKey),
		openai.WithModel(DefaultOpenAIModel),
	)
	if err != nil {
		return nil, llm.NewInitError("openai", err)
	}

	return &langchainClient{name: "openai", model: client}, nil
}
