package eval

import (
	"context"
	"strings"

	"github.com/2389-research/mux-evals/internal/capability"
	"github.com/2389-research/mux-evals/internal/llm"
)

// runLLMEval exercises a single provider backend directly: one basic
// completion per provider, plus a streaming scenario for anthropic. The case
// is skipped when the provider's credential is absent.
func (r *Runner) runLLMEval(ctx context.Context, c Case) Outcome {
	provider := strings.ToLower(c.Provider)
	if provider == "" {
		provider = strings.ToLower(r.defaultProvider)
	}

	key, known := capability.KeyFor(provider)
	if !known {
		return Skipf("Unknown LLM provider: %s", provider)
	}
	if !r.caps.Has(key) {
		return Skipf("%s not set", key)
	}

	client, err := r.clients(ctx, provider)
	if err != nil {
		return Failf("LLM client init failed: %v", err)
	}
	model := r.modelFor(provider)

	switch provider {
	case "anthropic":
		switch c.ID {
		case "llm-001":
			return r.basicCompletion(ctx, client, model, "Anthropic")
		case "llm-002":
			return r.streamingCompletion(ctx, client, model)
		default:
			return Skipf("Unknown anthropic eval: %s", c.ID)
		}

	case "openai":
		if c.ID != "llm-003" {
			return Skipf("Unknown openai eval: %s", c.ID)
		}
		return r.basicCompletion(ctx, client, model, "OpenAI")

	case "ollama":
		if c.ID != "llm-004" {
			return Skipf("Unknown ollama eval: %s", c.ID)
		}
		return r.basicCompletion(ctx, client, model, "Ollama")

	case "gemini", "google":
		if c.ID != "llm-005" {
			return Skipf("Unknown gemini eval: %s", c.ID)
		}
		return r.basicCompletion(ctx, client, model, "Gemini")

	default:
		return Skipf("Unknown LLM provider: %s", provider)
	}
}

// basicCompletion verifies the provider answers a trivial prompt at all.
func (r *Runner) basicCompletion(ctx context.Context, client llm.Client, model, label string) Outcome {
	resp, err := client.Complete(ctx, llm.CompletionRequest{
		Model:     model,
		Messages:  []llm.Message{llm.NewUserMessage("Say 'hello' and nothing else.")},
		MaxTokens: 50,
	})
	if err != nil {
		return Failf("%s API error: %v", label, err)
	}
	if resp.Text() == "" {
		return Failf("Empty response from %s", label)
	}
	return Pass()
}

// streamingCompletion verifies at least one content-bearing chunk arrives and
// no chunk carries an error. The trailing finish marker every stream delivers
// does not count as an event.
func (r *Runner) streamingCompletion(ctx context.Context, client llm.Client, model string) Outcome {
	chunks, err := client.Stream(ctx, llm.CompletionRequest{
		Model:     model,
		Messages:  []llm.Message{llm.NewUserMessage("Count from 1 to 3.")},
		MaxTokens: 100,
	})
	if err != nil {
		return Failf("Stream error: %v", err)
	}

	gotEvent := false
	for chunk := range chunks {
		if chunk.Error != nil {
			return Failf("Stream error: %v", chunk.Error)
		}
		if chunk.Delta.Content != "" {
			gotEvent = true
		}
	}
	if !gotEvent {
		return Failf("No streaming events received")
	}
	return Pass()
}
