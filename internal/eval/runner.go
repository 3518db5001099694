package eval

import (
	"context"
	"log/slog"

	"github.com/2389-research/mux-evals/internal/capability"
	"github.com/2389-research/mux-evals/internal/llm"
	"github.com/2389-research/mux-evals/internal/llm/providers"
)

// ClientFactory builds an LLM client for a named provider. The runner uses it
// for agent and llm category cases; tests substitute mock clients here.
type ClientFactory func(ctx context.Context, provider string) (llm.Client, error)

// Runner executes eval cases, gating each on required credentials and
// dispatching it to its category handler.
type Runner struct {
	caps            capability.Provider
	judge           *Judge
	clients         ClientFactory
	defaultProvider string
	models          map[string]string
	verbose         bool
	log             *slog.Logger
}

// Option configures a Runner.
type Option func(*Runner)

// WithJudge attaches a judge for grading free-form outputs. Without one, the
// agent category is skipped.
func WithJudge(j *Judge) Option {
	return func(r *Runner) { r.judge = j }
}

// WithVerbose enables payload logging for each case.
func WithVerbose(v bool) Option {
	return func(r *Runner) { r.verbose = v }
}

// WithClientFactory overrides how LLM clients are built.
func WithClientFactory(f ClientFactory) Option {
	return func(r *Runner) { r.clients = f }
}

// WithDefaultProvider overrides the provider assumed for llm cases that name
// none.
func WithDefaultProvider(provider string) Option {
	return func(r *Runner) {
		if provider != "" {
			r.defaultProvider = provider
		}
	}
}

// WithModelOverrides replaces the default model per provider.
func WithModelOverrides(models map[string]string) Option {
	return func(r *Runner) { r.models = models }
}

// WithLogger sets the runner's logger.
func WithLogger(log *slog.Logger) Option {
	return func(r *Runner) { r.log = log }
}

// NewRunner creates a Runner with the given capability provider.
func NewRunner(caps capability.Provider, opts ...Option) *Runner {
	r := &Runner{
		caps:            caps,
		defaultProvider: DefaultProvider,
		clients: func(ctx context.Context, provider string) (llm.Client, error) {
			return providers.New(ctx, provider, caps)
		},
		log: slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes every case in order, streaming each outcome to the reporter,
// and returns the final tally.
func (r *Runner) Run(ctx context.Context, cases []Case, report *Reporter) Summary {
	report.Start(len(cases))
	for _, c := range cases {
		outcome := r.RunCase(ctx, c)
		report.Record(c, outcome)
	}
	return report.Finish()
}

// RunCase executes one case: the credential gate first, then the handler for
// its category. An unknown category is a skip, not an error.
func (r *Runner) RunCase(ctx context.Context, c Case) Outcome {
	if c.RequiresKey != "" && !r.caps.Has(c.RequiresKey) {
		return Skipf("%s not set", c.RequiresKey)
	}

	if r.verbose {
		r.log.Info("running eval",
			"id", c.ID,
			"category", c.Category,
			"given", c.Given.String(),
			"when", c.When.String(),
			"then", c.Then.String())
	}

	switch c.Category {
	case CategoryTools:
		return r.runToolEval(ctx, c)
	case CategoryHooks:
		return r.runHookEval(ctx, c)
	case CategoryAgent:
		return r.runAgentEval(ctx, c)
	case CategorySubagent:
		return Skipf("Subagent evals require full agent orchestration")
	case CategoryTranscript:
		return r.runTranscriptEval(ctx, c)
	case CategoryMCP:
		return Skipf("MCP evals require running MCP server")
	case CategoryLLM:
		return r.runLLMEval(ctx, c)
	default:
		return Skipf("Unknown category: %s", c.Category)
	}
}

// modelFor returns the model used for a provider, honoring configured
// overrides.
func (r *Runner) modelFor(provider string) string {
	if model, ok := r.models[provider]; ok && model != "" {
		return model
	}
	return providers.DefaultModelFor(provider)
}
