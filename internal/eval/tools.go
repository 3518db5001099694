package eval

import (
	"context"
	"strings"

	"github.com/ohler55/ojg/oj"

	"github.com/2389-research/mux-evals/internal/tool"
	"github.com/2389-research/mux-evals/internal/tool/builtins"
)

// runToolEval exercises the tool registry and the builtin fixture tools. Each
// scenario gets a fresh registry so cases cannot observe each other's state.
func (r *Runner) runToolEval(ctx context.Context, c Case) Outcome {
	registry := tool.NewRegistry()
	for _, t := range []tool.Tool{builtins.Add{}, builtins.Divide{}, builtins.Greet{}, builtins.GetInfo{}} {
		if err := registry.Register(t); err != nil {
			return Failf("Tool registration failed: %v", err)
		}
	}

	switch c.ID {
	case "tool-001":
		// Basic execution: adding 2 and 3 yields a result containing 5.
		t, ok := registry.Get("add")
		if !ok {
			return Failf("Tool 'add' not found")
		}
		result, err := t.Execute(ctx, map[string]any{"a": float64(2), "b": float64(3)})
		if err != nil {
			return Failf("Execution failed: %v", err)
		}
		if !strings.Contains(result.Content, "5") {
			return Failf("Expected '5', got: %s", result.Content)
		}
		return Pass()

	case "tool-002":
		// A tool that was never registered must not resolve.
		if _, ok := registry.Get("nonexistent"); ok {
			return Failf("Expected lookup miss for nonexistent tool")
		}
		return Pass()

	case "tool-003":
		// Division by zero surfaces as an execution error.
		t, _ := registry.Get("divide")
		if _, err := t.Execute(ctx, map[string]any{"a": float64(10), "b": float64(0)}); err == nil {
			return Failf("Expected error for division by zero")
		}
		return Pass()

	case "tool-004":
		t, _ := registry.Get("greet")
		result, err := t.Execute(ctx, map[string]any{"name": "World"})
		if err != nil {
			return Failf("Execution failed: %v", err)
		}
		if !strings.Contains(result.Content, "World") {
			return Failf("Expected 'World' in result, got: %s", result.Content)
		}
		return Pass()

	case "tool-005":
		t, _ := registry.Get("get_info")
		result, err := t.Execute(ctx, map[string]any{})
		if err != nil {
			return Failf("Execution failed: %v", err)
		}
		if _, err := oj.ParseString(result.Content); err != nil {
			return Failf("Result is not valid JSON: %s", result.Content)
		}
		return Pass()

	default:
		return Skipf("Unknown tool eval: %s", c.ID)
	}
}
