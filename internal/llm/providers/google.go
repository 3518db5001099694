package providers

import (
	"context"

	"github.com/tmc/langchaingo/llms/googleai"

	"github.com/2389-research/mux-evals/internal/llm"
)

// DefaultGeminiModel is used when a request does not name a model.
const DefaultGeminiModel = "gemini-2.0-flash"

// NewGeminiClient creates a client for Google's Gemini models.
// The googleai transport dials during construction, so it takes a context.
func NewGeminiClient(ctx context.Context, apiKey string) (llm.Client, error) {
	if apiKey == "" {
		return nil, llm.NewAuthError("gemini")
	}

	client, err := googleai.New(ctx,
		googleai.WithAPIKey(apiKey),
		googleai.WithDefaultModel(DefaultGeminiModel),
	)
	if err != nil {
		return nil, llm.NewInitError("gemini", err)
	}

	return &langchainClient{name: "gemini", model: client}, nil
}
