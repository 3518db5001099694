package providers

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/2389-research/mux-evals/internal/llm"
)

// MockCall records one request made to the mock client.
type MockCall struct {
	Request llm.CompletionRequest
}

// MockClient implements llm.Client for tests. It replays canned responses in
// order (cycling when exhausted) and records every request it receives.
type MockClient struct {
	mu            sync.Mutex
	responses     []string
	responseIndex int
	calls         []MockCall
	err           error
}

// NewMockClient creates a mock client that replays the given responses.
func NewMockClient(responses ...string) *MockClient {
	return &MockClient{responses: responses}
}

// NewFailingMockClient creates a mock client whose calls all fail with err.
func NewFailingMockClient(err error) *MockClient {
	return &MockClient{err: err}
}

// Name returns the provider name.
func (m *MockClient) Name() string {
	return "mock"
}

// Complete replays the next canned response.
func (m *MockClient) Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResponse, error) {
	m.mu.Lock()
	m.calls = append(m.calls, MockCall{Request: req})

	if m.err != nil {
		m.mu.Unlock()
		return nil, m.err
	}
	if len(m.responses) == 0 {
		m.mu.Unlock()
		return nil, fmt.Errorf("mock: no responses configured")
	}

	response := m.responses[m.responseIndex%len(m.responses)]
	m.responseIndex++
	m.mu.Unlock()

	return &llm.CompletionResponse{
		ID:           uuid.New().String(),
		Model:        req.Model,
		Message:      llm.NewAssistantMessage(response),
		FinishReason: llm.FinishReasonStop,
		Usage: llm.TokenUsage{
			PromptTokens:     10,
			CompletionTokens: len(response) / 4,
			TotalTokens:      10 + len(response)/4,
		},
	}, nil
}

// Stream replays the next canned response as a single chunk.
func (m *MockClient) Stream(ctx context.Context, req llm.CompletionRequest) (<-chan llm.StreamChunk, error) {
	resp, err := m.Complete(ctx, req)
	if err != nil {
		return nil, err
	}

	chunks := make(chan llm.StreamChunk, 2)
	chunks <- llm.StreamChunk{Delta: llm.StreamDelta{Role: llm.RoleAssistant, Content: resp.Message.Content}}
	chunks <- llm.StreamChunk{FinishReason: llm.FinishReasonStop}
	close(chunks)
	return chunks, nil
}

// Calls returns a copy of all recorded requests.
func (m *MockClient) Calls() []MockCall {
	m.mu.Lock()
	defer m.mu.Unlock()
	calls := make([]MockCall, len(m.calls))
	copy(calls, m.calls)
	return calls
}
