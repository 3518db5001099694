package providers

import (
	"context"

	"github.com/2389-research/mux-evals/internal/capability"
	"github.com/2389-research/mux-evals/internal/llm"
)

// DefaultModelFor returns the default model identifier for a provider name,
// or empty for an unknown provider.
func DefaultModelFor(provider string) string {
	switch provider {
	case "anthropic":
		return DefaultAnthropicModel
	case "openai":
		return DefaultOpenAIModel
	case "gemini", "google":
		return DefaultGeminiModel
	case "ollama":
		return DefaultOllamaModel
	default:
		return ""
	}
}

// New creates a client for the named provider, pulling its credential from the
// capability provider. Returns LLM_PROVIDER_NOT_FOUND for unknown names and
// LLM_PROVIDER_UNAUTHORIZED when the credential is unset.
func New(ctx context.Context, provider string, caps capability.Provider) (llm.Client, error) {
	switch provider {
	case "anthropic":
		return NewAnthropicClient(caps.APIKeyFor("anthropic"))
	case "openai":
		return NewOpenAIClient(caps.APIKeyFor("openai"))
	case "gemini", "google":
		return NewGeminiClient(ctx, caps.APIKeyFor("gemini"))
	case "ollama":
		return NewOllamaClient(caps.APIKeyFor("ollama"))
	default:
		return nil, llm.NewProviderNotFoundError(provider)
	}
}
