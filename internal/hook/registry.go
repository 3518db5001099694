package hook

import (
	"context"
	"sync"
)

// Registry holds hooks and fires events at them in registration order.
// All operations are safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	hooks []Hook
}

// NewRegistry creates an empty hook registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register appends a hook. Hooks fire in the order they were registered.
func (r *Registry) Register(h Hook) {
	if h == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.hooks = append(r.hooks, h)
}

// Len returns the number of registered hooks.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.hooks)
}

// Fire delivers the event to every hook in registration order.
// The first Block action short-circuits the chain and is returned; a hook
// error aborts the chain. With no blocks, Fire returns Continue.
func (r *Registry) Fire(ctx context.Context, event Event) (Action, error) {
	r.mu.RLock()
	hooks := make([]Hook, len(r.hooks))
	copy(hooks, r.hooks)
	r.mu.RUnlock()

	for _, h := range hooks {
		action, err := h.OnEvent(ctx, event)
		if err != nil {
			return Continue(), err
		}
		if action.IsBlock() {
			return action, nil
		}
	}
	return Continue(), nil
}
