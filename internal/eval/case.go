package eval

import (
	"fmt"

	"github.com/2389-research/mux-evals/internal/types"
)

// Category selects which handler an eval case is dispatched to.
const (
	CategoryTools      = "tools"
	CategoryHooks      = "hooks"
	CategoryAgent      = "agent"
	CategorySubagent   = "subagent"
	CategoryTranscript = "transcript"
	CategoryMCP        = "mcp"
	CategoryLLM        = "llm"
)

// DefaultProvider is assumed for llm-category cases that name no provider.
const DefaultProvider = "anthropic"

// Case is one declarative eval definition: a given/when/then record with a
// category selecting its handler and optional capability requirements.
type Case struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Category    string `json:"category"`

	// Provider names the LLM backend for llm-category cases.
	Provider string `json:"provider,omitempty"`

	// RequiresKey names an environment credential that must be present for
	// this case to run at all.
	RequiresKey string `json:"requires_key,omitempty"`

	Given types.Value `json:"given"`
	When  types.Value `json:"when"`
	Then  types.Value `json:"then"`
}

// Status classifies an eval outcome.
type Status string

const (
	StatusPass Status = "pass"
	StatusFail Status = "fail"
	StatusSkip Status = "skip"
)

// String returns the string representation of the Status.
func (s Status) String() string {
	return string(s)
}

// Outcome is the result of running one eval case. Fail and Skip always carry
// a human-readable reason; Pass carries none.
type Outcome struct {
	Status Status `json:"status"`
	Reason string `json:"reason,omitempty"`
}

// Pass creates a passing outcome.
func Pass() Outcome {
	return Outcome{Status: StatusPass}
}

// Failf creates a failing outcome with a formatted reason.
func Failf(format string, args ...any) Outcome {
	return Outcome{Status: StatusFail, Reason: fmt.Sprintf(format, args...)}
}

// Skipf creates a skipped outcome with a formatted reason.
func Skipf(format string, args ...any) Outcome {
	return Outcome{Status: StatusSkip, Reason: fmt.Sprintf(format, args...)}
}
