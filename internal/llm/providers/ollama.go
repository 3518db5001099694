package providers

import (
	"github.com/tmc/langchaingo/llms/ollama"

	"github.com/2389-research/mux-evals/internal/llm"
)

// DefaultOllamaModel is used when a request does not name a model.
const DefaultOllamaModel = "llama3.2"

// NewOllamaClient creates a client for a local Ollama server.
// serverURL comes from OLLAMA_HOST; there is no API key.
func NewOllamaClient(serverURL string) (llm.Client, error) {
	if serverURL == "" {
		return nil, llm.NewAuthError("ollama")
	}

	client, err := ollama.New(
		ollama.WithServerURL(serverURL),
		ollama.WithModel(DefaultOllamaModel),
	)
	if err != nil {
		return nil, llm.NewInitError("ollama", err)
	}

	return &langchainClient{name: "ollama", model: client}, nil
}
