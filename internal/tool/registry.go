package tool

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/2389-research/mux-evals/internal/types"
)

// Registry manages tool registration, lookup, and execution.
// All operations are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool to the registry.
// Returns TOOL_ALREADY_EXISTS if a tool with the same name is registered.
func (r *Registry) Register(t Tool) error {
	if t == nil {
		return types.NewError(types.TOOL_INVALID_INPUT, "tool cannot be nil")
	}

	name := t.Name()
	if name == "" {
		return types.NewError(types.TOOL_INVALID_INPUT, "tool name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[name]; exists {
		return types.NewError(types.TOOL_ALREADY_EXISTS, fmt.Sprintf("tool %q already registered", name))
	}

	r.tools[name] = t
	return nil
}

// Get retrieves a tool by name. The bool reports whether it was found.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// List returns the names of all registered tools, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Execute runs a tool by name with the given parameters.
// Returns TOOL_NOT_FOUND for an unregistered name and TOOL_EXECUTION_FAILED
// wrapping the tool's own error.
func (r *Registry) Execute(ctx context.Context, name string, params map[string]any) (Result, error) {
	t, ok := r.Get(name)
	if !ok {
		return Result{}, types.NewError(types.TOOL_NOT_FOUND, fmt.Sprintf("tool %q not found", name))
	}

	result, err := t.Execute(ctx, params)
	if err != nil {
		return Result{}, types.WrapError(types.TOOL_EXECUTION_FAILED, fmt.Sprintf("tool %q failed", name), err)
	}
	return result, nil
}
