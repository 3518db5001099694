package eval

import (
	"context"

	"github.com/2389-research/mux-evals/internal/llm"
	"github.com/2389-research/mux-evals/internal/transcript"
)

// runTranscriptEval exercises the transcript store: save, load, miss,
// tool-use fidelity, and overwrite semantics. Each scenario gets a fresh
// in-memory store.
func (r *Runner) runTranscriptEval(ctx context.Context, c Case) Outcome {
	store := transcript.NewMemoryStore()

	conversation := []llm.Message{
		llm.NewUserMessage("Hello"),
		llm.NewAssistantMessage("Hi there"),
	}

	switch c.ID {
	case "transcript-001":
		if err := store.Save(ctx, "test-agent", conversation); err != nil {
			return Failf("Save failed: %v", err)
		}
		return Pass()

	case "transcript-002":
		if err := store.Save(ctx, "test-agent", conversation); err != nil {
			return Failf("Save failed: %v", err)
		}
		loaded, found, err := store.Load(ctx, "test-agent")
		if err != nil {
			return Failf("Load failed: %v", err)
		}
		if !found {
			return Failf("Failed to load transcript")
		}
		if len(loaded) != 2 {
			return Failf("Expected 2 messages, got %d", len(loaded))
		}
		return Pass()

	case "transcript-003":
		_, found, err := store.Load(ctx, "nonexistent")
		if err != nil {
			return Failf("Load failed: %v", err)
		}
		if found {
			return Failf("Expected miss for missing transcript")
		}
		return Pass()

	case "transcript-004":
		messages := []llm.Message{
			llm.NewToolUseMessage("tool-1", "bash", `{"command":"ls"}`),
		}
		if err := store.Save(ctx, "test-agent", messages); err != nil {
			return Failf("Save failed: %v", err)
		}
		loaded, found, err := store.Load(ctx, "test-agent")
		if err != nil {
			return Failf("Load failed: %v", err)
		}
		if !found {
			return Failf("Transcript not found")
		}
		if len(loaded[0].ToolCalls) == 0 {
			return Failf("Tool use not preserved")
		}
		if name := loaded[0].ToolCalls[0].Name; name != "bash" {
			return Failf("Expected tool name 'bash', got '%s'", name)
		}
		return Pass()

	case "transcript-005":
		if err := store.Save(ctx, "test-agent", []llm.Message{llm.NewUserMessage("First")}); err != nil {
			return Failf("First save failed: %v", err)
		}
		if err := store.Save(ctx, "test-agent", []llm.Message{llm.NewUserMessage("Second")}); err != nil {
			return Failf("Second save failed: %v", err)
		}
		loaded, found, err := store.Load(ctx, "test-agent")
		if err != nil {
			return Failf("Load failed: %v", err)
		}
		if !found {
			return Failf("Transcript not found")
		}
		if loaded[0].Content != "Second" {
			return Failf("Expected 'Second', got '%s'", loaded[0].Content)
		}
		return Pass()

	default:
		return Skipf("Unknown transcript eval: %s", c.ID)
	}
}
