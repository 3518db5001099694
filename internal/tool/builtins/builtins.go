// Package builtins provides the fixture tools the eval scenarios execute:
// arithmetic, greeting, structured info, and a stateful counter.
package builtins

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"sync/atomic"

	"github.com/2389-research/mux-evals/internal/tool"
)

// numberSchema is the shared schema for two-operand arithmetic tools.
func numberSchema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"a": map[string]any{"type": "number"},
			"b": map[string]any{"type": "number"},
		},
		"required": []string{"a", "b"},
	}
}

// numberParam extracts a numeric parameter, defaulting to 0 when absent or
// not a number. JSON decoding delivers numbers as float64.
func numberParam(params map[string]any, key string) float64 {
	if n, ok := params[key].(float64); ok {
		return n
	}
	return 0
}

// Add adds two numbers.
type Add struct{}

func (Add) Name() string           { return "add" }
func (Add) Description() string    { return "Adds two numbers" }
func (Add) Schema() map[string]any { return numberSchema() }

func (Add) Execute(ctx context.Context, params map[string]any) (tool.Result, error) {
	a := numberParam(params, "a")
	b := numberParam(params, "b")
	return tool.TextResult(strconv.FormatFloat(a+b, 'f', -1, 64)), nil
}

// Divide divides two numbers, rejecting a zero divisor.
type Divide struct{}

func (Divide) Name() string           { return "divide" }
func (Divide) Description() string    { return "Divides two numbers" }
func (Divide) Schema() map[string]any { return numberSchema() }

func (Divide) Execute(ctx context.Context, params map[string]any) (tool.Result, error) {
	a := numberParam(params, "a")
	b := numberParam(params, "b")
	if b == 0 {
		return tool.Result{}, errors.New("division by zero")
	}
	return tool.TextResult(strconv.FormatFloat(a/b, 'f', -1, 64)), nil
}

// Greet returns a greeting for a name.
type Greet struct{}

func (Greet) Name() string        { return "greet" }
func (Greet) Description() string { return "Returns greeting" }

func (Greet) Schema() map[string]any {
	return map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name": map[string]any{"type": "string"},
		},
		"required": []string{"name"},
	}
}

func (Greet) Execute(ctx context.Context, params map[string]any) (tool.Result, error) {
	name, ok := params["name"].(string)
	if !ok || name == "" {
		name = "World"
	}
	return tool.TextResult("Hello, " + name + "!"), nil
}

// GetInfo returns a fixed info object as JSON.
type GetInfo struct{}

func (GetInfo) Name() string        { return "get_info" }
func (GetInfo) Description() string { return "Returns info object" }

func (GetInfo) Schema() map[string]any {
	return map[string]any{"type": "object", "properties": map[string]any{}}
}

func (GetInfo) Execute(ctx context.Context, params map[string]any) (tool.Result, error) {
	info, err := json.Marshal(map[string]string{"version": "1.0", "name": "mux"})
	if err != nil {
		return tool.Result{}, err
	}
	return tool.TextResult(string(info)), nil
}

// Counter increments an internal counter on each execution.
type Counter struct {
	count atomic.Int64
}

// NewCounter creates a counter tool starting at zero.
func NewCounter() *Counter {
	return &Counter{}
}

func (*Counter) Name() string        { return "counter" }
func (*Counter) Description() string { return "Increments counter" }

func (*Counter) Schema() map[string]any {
	return map[string]any{"type": "object", "properties": map[string]any{}}
}

func (c *Counter) Execute(ctx context.Context, params map[string]any) (tool.Result, error) {
	n := c.count.Add(1)
	return tool.TextResult("Count: " + strconv.FormatInt(n, 10)), nil
}

// Count returns the number of times the counter has executed.
func (c *Counter) Count() int64 {
	return c.count.Load()
}
