// Package llm defines the provider-neutral client abstraction the eval harness
// uses to talk to LLM backends, plus the message and request value types shared
// with the transcript store.
package llm

import "context"

// Client defines the interface all LLM provider clients implement.
// It is the request/response contract the harness needs from the agent
// runtime's provider layer; transports live in the providers subpackage.
type Client interface {
	// Name returns the provider name (e.g., "anthropic", "openai", "gemini")
	Name() string

	// Complete sends a completion request and returns the full response.
	// This is a blocking call that waits for the entire response.
	Complete(ctx context.Context, req CompletionRequest) (*CompletionResponse, error)

	// Stream sends a completion request and streams the response as it's
	// generated. The returned channel emits StreamChunk items until completion
	// or error, and is closed when streaming is complete.
	Stream(ctx context.Context, req CompletionRequest) (<-chan StreamChunk, error)
}
