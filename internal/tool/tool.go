// Package tool defines the tool collaborator surface the eval harness
// exercises: a name/description/schema/execute contract and an in-memory
// registry with thread-safe operations.
package tool

import "context"

// Tool represents an atomic operation an agent can invoke. Implementations
// validate their own parameters and return an error rather than panicking on
// bad input.
type Tool interface {
	// Name returns the unique identifier for this tool
	Name() string

	// Description returns a human-readable description of what this tool does
	Description() string

	// Schema returns the JSON-schema-shaped parameter description for this tool
	Schema() map[string]any

	// Execute runs the tool with the given parameters.
	// Context is used for cancellation and deadlines.
	Execute(ctx context.Context, params map[string]any) (Result, error)
}

// Result is the outcome of a successful tool execution.
type Result struct {
	// Content is the textual result handed back to the model
	Content string `json:"content"`
}

// TextResult creates a Result with the given content.
func TextResult(content string) Result {
	return Result{Content: content}
}
