// Package transcript defines conversation persistence keyed by agent
// identifier, as consumed by the eval harness: save replaces, load reports
// absence explicitly.
package transcript

import (
	"context"
	"sync"

	"github.com/2389-research/mux-evals/internal/llm"
)

// Store persists conversation transcripts keyed by agent identifier.
type Store interface {
	// Save stores the messages for an agent, replacing any prior transcript
	// under the same identifier.
	Save(ctx context.Context, agentID string, messages []llm.Message) error

	// Load retrieves the transcript for an agent. The bool reports whether a
	// transcript exists; an absent transcript is not an error.
	Load(ctx context.Context, agentID string) ([]llm.Message, bool, error)
}

// MemoryStore is an in-memory Store. Saved and loaded messages are copied, so
// callers cannot mutate stored state through retained slices.
type MemoryStore struct {
	mu          sync.RWMutex
	transcripts map[string][]llm.Message
}

// NewMemoryStore creates an empty in-memory transcript store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{transcripts: make(map[string][]llm.Message)}
}

// Save stores a copy of messages under agentID, replacing any prior content.
func (s *MemoryStore) Save(ctx context.Context, agentID string, messages []llm.Message) error {
	stored := make([]llm.Message, len(messages))
	copy(stored, messages)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.transcripts[agentID] = stored
	return nil
}

// Load retrieves a copy of the transcript for agentID.
func (s *MemoryStore) Load(ctx context.Context, agentID string) ([]llm.Message, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stored, ok := s.transcripts[agentID]
	if !ok {
		return nil, false, nil
	}

	messages := make([]llm.Message, len(stored))
	copy(messages, stored)
	return messages, true, nil
}
