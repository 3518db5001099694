package eval

import (
	"context"
	"fmt"
	"strings"

	"github.com/2389-research/mux-evals/internal/llm"
	"github.com/2389-research/mux-evals/internal/types"
)

// DefaultJudgeModel is the model used to grade free-form outputs unless
// overridden on the command line.
const DefaultJudgeModel = "gpt-5-mini"

const judgePromptTemplate = `You are an eval judge. Evaluate whether the following output meets the criteria.

TASK: %s

OUTPUT:
%s

CRITERIA: %s

Respond with EXACTLY this format:
VERDICT: PASS or FAIL
REASON: One sentence explanation

Example:
VERDICT: PASS
REASON: The output correctly answers the question.`

// Verdict is a judge's grading of one output.
type Verdict struct {
	Passed bool
	Reason string
}

// Judge grades free-form LLM output against natural-language criteria by
// making a second model call and parsing its VERDICT/REASON response.
type Judge struct {
	client llm.Client
	model  string
}

// NewJudge creates a Judge backed by the given client. An empty model falls
// back to DefaultJudgeModel.
func NewJudge(client llm.Client, model string) *Judge {
	if model == "" {
		model = DefaultJudgeModel
	}
	return &Judge{client: client, model: model}
}

// Model returns the model the judge grades with.
func (j *Judge) Model() string {
	return j.model
}

// Evaluate asks the judge model whether output satisfies criteria for the
// given task. Transport failures surface as JUDGE_CALL_FAILED; an unparseable
// response is treated as a failing verdict, never an error.
func (j *Judge) Evaluate(ctx context.Context, task, output, criteria string) (Verdict, error) {
	prompt := fmt.Sprintf(judgePromptTemplate, task, output, criteria)

	resp, err := j.client.Complete(ctx, llm.CompletionRequest{
		Model:     j.model,
		Messages:  []llm.Message{llm.NewUserMessage(prompt)},
		MaxTokens: 200,
	})
	if err != nil {
		return Verdict{}, types.WrapError(types.JUDGE_CALL_FAILED, "judge completion failed", err)
	}

	return parseVerdict(resp.Text()), nil
}

// parseVerdict extracts the pass/fail verdict and reason from a judge
// response. The verdict is a substring check, so a response that quotes
// "VERDICT: PASS" anywhere counts as passing. A missing REASON line yields
// "No reason provided".
func parseVerdict(text string) Verdict {
	v := Verdict{
		Passed: strings.Contains(text, "VERDICT: PASS"),
		Reason: "No reason provided",
	}
	for _, line := range strings.Split(text, "\n") {
		if rest, ok := strings.CutPrefix(strings.TrimSpace(line), "REASON:"); ok {
			v.Reason = strings.TrimSpace(rest)
			break
		}
	}
	return v
}
