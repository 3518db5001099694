package hook

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFireInRegistrationOrder(t *testing.T) {
	r := NewRegistry()
	var order []string

	for _, name := range []string{"first", "second"} {
		name := name
		r.Register(Func(func(ctx context.Context, event Event) (Action, error) {
			order = append(order, name)
			return Continue(), nil
		}))
	}

	action, err := r.Fire(context.Background(), Event{Type: EventPreToolUse, ToolName: "test"})
	require.NoError(t, err)
	assert.False(t, action.IsBlock())
	assert.Equal(t, []string{"first", "second"}, order)
}

func TestFireBlockShortCircuits(t *testing.T) {
	r := NewRegistry()
	var secondFired bool

	r.Register(Func(func(ctx context.Context, event Event) (Action, error) {
		if event.Type == EventPreToolUse && event.ToolName == "dangerous" {
			return Block("Tool dangerous is blocked"), nil
		}
		return Continue(), nil
	}))
	r.Register(Func(func(ctx context.Context, event Event) (Action, error) {
		secondFired = true
		return Continue(), nil
	}))

	action, err := r.Fire(context.Background(), Event{Type: EventPreToolUse, ToolName: "dangerous"})
	require.NoError(t, err)
	assert.True(t, action.IsBlock())
	assert.Equal(t, "Tool dangerous is blocked", action.Reason)
	assert.False(t, secondFired)

	// A different tool name passes through both hooks.
	action, err = r.Fire(context.Background(), Event{Type: EventPreToolUse, ToolName: "safe"})
	require.NoError(t, err)
	assert.False(t, action.IsBlock())
	assert.True(t, secondFired)
}

func TestFireHookError(t *testing.T) {
	r := NewRegistry()
	boom := errors.New("hook exploded")
	r.Register(Func(func(ctx context.Context, event Event) (Action, error) {
		return Continue(), boom
	}))

	_, err := r.Fire(context.Background(), Event{Type: EventAgentStart, AgentID: "a1"})
	assert.ErrorIs(t, err, boom)
}

func TestFireEmptyRegistry(t *testing.T) {
	r := NewRegistry()
	action, err := r.Fire(context.Background(), Event{Type: EventIteration, AgentID: "a1", Iteration: 2})
	require.NoError(t, err)
	assert.False(t, action.IsBlock())
	assert.Equal(t, 0, r.Len())
}

func TestRegisterNilIgnored(t *testing.T) {
	r := NewRegistry()
	r.Register(nil)
	assert.Equal(t, 0, r.Len())
}
