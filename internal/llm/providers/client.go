// Package providers holds LLM provider clients built on langchaingo transports,
// plus a mock client for tests.
package providers

import (
	"context"

	"github.com/tmc/langchaingo/llms"

	"github.com/2389-research/mux-evals/internal/llm"
)

// langchainClient adapts a langchaingo model to the harness llm.Client
// interface. All real providers share this implementation and differ only in
// how the underlying transport is constructed.
type langchainClient struct {
	name  string
	model llms.Model
}

// Name returns the provider name.
func (c *langchainClient) Name() string {
	return c.name
}

// Complete sends a blocking completion request.
func (c *langchainClient) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, llm.TranslateError(c.name, err)
	}

	resp, err := c.model.GenerateContent(ctx, toLangchainMessages(req), buildCallOptions(req)...)
	if err != nil {
		return nil, llm.TranslateError(c.name, err)
	}

	return fromLangchainResponse(resp, req.Model), nil
}

// Stream sends a completion request and forwards incremental content on the
// returned channel. The channel is closed when generation finishes; a transport
// failure is delivered as a final chunk carrying the error.
func (c *langchainClient) Stream(ctx context.Context, req llm.CompletionRequest) (<-chan llm.StreamChunk, error) {
	if err := req.Validate(); err != nil {
		return nil, llm.TranslateError(c.name, err)
	}

	chunks := make(chan llm.StreamChunk, 10)

	callOpts := buildStreamingCallOptions(req, func(ctx context.Context, chunk []byte) error {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case chunks <- llm.StreamChunk{Delta: llm.StreamDelta{Content: string(chunk)}}:
			return nil
		}
	})

	go func() {
		defer close(chunks)
		_, err := c.model.GenerateContent(ctx, toLangchainMessages(req), callOpts...)
		if err != nil {
			chunks <- llm.StreamChunk{Error: llm.TranslateError(c.name, err)}
			return
		}
		chunks <- llm.StreamChunk{FinishReason: llm.FinishReasonStop}
	}()

	return chunks, nil
}
