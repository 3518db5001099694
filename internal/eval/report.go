package eval

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Summary tallies the outcome of a run.
type Summary struct {
	Passed  int `json:"passed"`
	Failed  int `json:"failed"`
	Skipped int `json:"skipped"`
}

// Total returns the number of cases counted.
func (s Summary) Total() int {
	return s.Passed + s.Failed + s.Skipped
}

// Result is one case outcome in a machine-readable report.
type Result struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Category string `json:"category"`
	Status   string `json:"status"`
	Reason   string `json:"reason,omitempty"`
}

// Report is the machine-readable run report emitted in JSON mode.
type Report struct {
	Runner  string   `json:"runner"`
	Results []Result `json:"results"`
	Summary struct {
		Passed  int `json:"passed"`
		Failed  int `json:"failed"`
		Skipped int `json:"skipped"`
		Total   int `json:"total"`
	} `json:"summary"`
}

var (
	passLabel = color.New(color.FgGreen, color.Bold).SprintFunc()
	failLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	skipLabel = color.New(color.FgYellow, color.Bold).SprintFunc()
	banner    = color.New(color.FgCyan, color.Bold).SprintFunc()
	dim       = color.New(color.Faint).SprintFunc()
	green     = color.New(color.FgGreen).SprintFunc()
	red       = color.New(color.FgRed).SprintFunc()
	yellow    = color.New(color.FgYellow).SprintFunc()
)

// Reporter streams human-readable outcome lines as cases finish, or collects
// them for a single JSON report. In failures-only mode, pass and skip lines
// are suppressed.
type Reporter struct {
	out          io.Writer
	failuresOnly bool
	jsonOutput   bool

	results []Result
	summary Summary
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer, failuresOnly, jsonOutput bool) *Reporter {
	return &Reporter{out: out, failuresOnly: failuresOnly, jsonOutput: jsonOutput}
}

// Start announces the run. JSON mode emits no banner.
func (r *Reporter) Start(total int) {
	if r.jsonOutput {
		return
	}
	fmt.Fprintf(r.out, "\n%s %d evals\n\n", banner("Running"), total)
}

// Record counts one outcome and emits its line (or buffers it in JSON mode).
func (r *Reporter) Record(c Case, outcome Outcome) {
	switch outcome.Status {
	case StatusPass:
		r.summary.Passed++
	case StatusFail:
		r.summary.Failed++
	case StatusSkip:
		r.summary.Skipped++
	}

	if r.jsonOutput {
		r.results = append(r.results, Result{
			ID:       c.ID,
			Name:     c.Name,
			Category: c.Category,
			Status:   outcome.Status.String(),
			Reason:   outcome.Reason,
		})
		return
	}

	switch outcome.Status {
	case StatusPass:
		if !r.failuresOnly {
			fmt.Fprintf(r.out, "%s %s - %s\n", passLabel("PASS"), c.ID, c.Name)
		}
	case StatusFail:
		fmt.Fprintf(r.out, "%s %s - %s\n       %s\n", failLabel("FAIL"), c.ID, c.Name, dim(outcome.Reason))
	case StatusSkip:
		if !r.failuresOnly {
			fmt.Fprintf(r.out, "%s %s - %s\n       %s\n", skipLabel("SKIP"), c.ID, c.Name, dim(outcome.Reason))
		}
	}
}

// Finish emits the run summary (or the full JSON report) and returns the
// tally.
func (r *Reporter) Finish() Summary {
	if r.jsonOutput {
		report := Report{Runner: "go", Results: r.results}
		if report.Results == nil {
			report.Results = []Result{}
		}
		report.Summary.Passed = r.summary.Passed
		report.Summary.Failed = r.summary.Failed
		report.Summary.Skipped = r.summary.Skipped
		report.Summary.Total = r.summary.Total()

		out, err := json.MarshalIndent(report, "", "  ")
		if err == nil {
			fmt.Fprintln(r.out, string(out))
		}
		return r.summary
	}

	failedText := fmt.Sprintf("%d", r.summary.Failed)
	if r.summary.Failed > 0 {
		failedText = red(failedText)
	}
	fmt.Fprintf(r.out, "\n%s: %s passed, %s failed, %s skipped\n\n",
		color.New(color.Bold).Sprint("Results"),
		green(fmt.Sprintf("%d", r.summary.Passed)),
		failedText,
		yellow(fmt.Sprintf("%d", r.summary.Skipped)))
	return r.summary
}
