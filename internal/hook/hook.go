// Package hook defines the hook collaborator surface the eval harness
// exercises: observers registered against runtime events, fired in
// registration order, with the ability to block an operation.
package hook

import "context"

// EventType identifies the runtime moment a hook observes.
type EventType string

const (
	EventPreToolUse  EventType = "pre_tool_use"
	EventPostToolUse EventType = "post_tool_use"
	EventAgentStart  EventType = "agent_start"
	EventAgentStop   EventType = "agent_stop"
	EventIteration   EventType = "iteration"
)

// String returns the string representation of the EventType.
func (t EventType) String() string {
	return string(t)
}

// Event carries the context of a runtime moment to registered hooks.
// Fields beyond Type are populated per event type: ToolName/Input for
// tool-use events, Result additionally for post-tool-use, AgentID and
// Iteration for agent lifecycle events.
type Event struct {
	Type      EventType      `json:"type"`
	ToolName  string         `json:"tool_name,omitempty"`
	Input     map[string]any `json:"input,omitempty"`
	Result    string         `json:"result,omitempty"`
	AgentID   string         `json:"agent_id,omitempty"`
	Iteration int            `json:"iteration,omitempty"`
}

// ActionKind discriminates hook outcomes.
type ActionKind string

const (
	ActionContinue ActionKind = "continue"
	ActionBlock    ActionKind = "block"
)

// Action is a hook's decision about the observed operation.
type Action struct {
	Kind   ActionKind `json:"kind"`
	Reason string     `json:"reason,omitempty"`
}

// IsBlock reports whether the action blocks the operation.
func (a Action) IsBlock() bool {
	return a.Kind == ActionBlock
}

// Continue creates an action that lets the operation proceed.
func Continue() Action {
	return Action{Kind: ActionContinue}
}

// Block creates an action that stops the operation with a reason.
func Block(reason string) Action {
	return Action{Kind: ActionBlock, Reason: reason}
}

// Hook observes runtime events and may block the observed operation.
type Hook interface {
	// OnEvent is called for every fired event. Returning a Block action
	// stops the operation; returning an error aborts the hook chain.
	OnEvent(ctx context.Context, event Event) (Action, error)
}

// Func adapts a plain function to the Hook interface.
type Func func(ctx context.Context, event Event) (Action, error)

// OnEvent implements Hook.
func (f Func) OnEvent(ctx context.Context, event Event) (Action, error) {
	return f(ctx, event)
}
