package providers

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389-research/mux-evals/internal/llm"
)

func TestMockClientReplaysResponses(t *testing.T) {
	mock := NewMockClient("first", "second")
	req := llm.CompletionRequest{
		Model:    "mock-model",
		Messages: []llm.Message{llm.NewUserMessage("hi")},
	}

	resp, err := mock.Complete(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Text())

	resp, err = mock.Complete(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "second", resp.Text())

	// Cycles back around
	resp, err = mock.Complete(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "first", resp.Text())

	assert.Len(t, mock.Calls(), 3)
}

func TestMockClientRecordsRequests(t *testing.T) {
	mock := NewMockClient("ok")
	req := llm.CompletionRequest{
		Model:    "mock-model",
		Messages: []llm.Message{llm.NewUserMessage("what is 2 + 2?")},
	}
	_, err := mock.Complete(context.Background(), req)
	require.NoError(t, err)

	calls := mock.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "what is 2 + 2?", calls[0].Request.Messages[0].Content)
}

func TestMockClientFailure(t *testing.T) {
	boom := errors.New("connection reset")
	mock := NewFailingMockClient(boom)

	_, err := mock.Complete(context.Background(), llm.CompletionRequest{
		Model:    "mock-model",
		Messages: []llm.Message{llm.NewUserMessage("hi")},
	})
	assert.ErrorIs(t, err, boom)
}

func TestMockClientStream(t *testing.T) {
	mock := NewMockClient("streamed text")
	chunks, err := mock.Stream(context.Background(), llm.CompletionRequest{
		Model:    "mock-model",
		Messages: []llm.Message{llm.NewUserMessage("hi")},
	})
	require.NoError(t, err)

	var content string
	var sawFinish bool
	for chunk := range chunks {
		content += chunk.Delta.Content
		if chunk.FinishReason == llm.FinishReasonStop {
			sawFinish = true
		}
	}
	assert.Equal(t, "streamed text", content)
	assert.True(t, sawFinish)
}
