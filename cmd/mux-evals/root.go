package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/2389-research/mux-evals/internal/capability"
	"github.com/2389-research/mux-evals/internal/config"
	"github.com/2389-research/mux-evals/internal/eval"
	"github.com/2389-research/mux-evals/internal/llm/providers"
)

var (
	evalsPath    string
	categoryFlag string
	idFlag       string
	judgeModel   string
	envFile      string
	configFile   string
	verbose      bool
	failuresOnly bool
	jsonOutput   bool

	// exitCode is set by the run and consumed by main after the command
	// returns: 1 when any eval failed, 0 otherwise.
	exitCode = exitSuccess

	// extraRunnerOptions is appended to the runner's options; tests use it to
	// substitute LLM clients.
	extraRunnerOptions []eval.Option
)

var rootCmd = &cobra.Command{
	Use:   "mux-evals",
	Short: "Runs the mux eval suite",
	Long: `mux-evals loads given/when/then eval definitions from JSONL files,
gates each case on the credentials it requires, executes it against the
subsystem its category names, and reports pass/fail/skip results.

Free-form LLM output is graded by a judge model when OPENAI_API_KEY is set;
without it, judge-dependent cases are skipped.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRootCmd,
}

func init() {
	rootCmd.Flags().StringVar(&evalsPath, "evals", "", "Path to evals directory or specific .jsonl file")
	rootCmd.Flags().StringVar(&categoryFlag, "category", "", "Only run evals in this category")
	rootCmd.Flags().StringVar(&idFlag, "id", "", "Only run the eval with this id")
	rootCmd.Flags().StringVar(&judgeModel, "judge-model", "", "Model used to grade free-form outputs")
	rootCmd.Flags().StringVar(&envFile, "env-file", "", "Dotenv file loaded before credential gating")
	rootCmd.Flags().StringVar(&configFile, "config", "", "Path to YAML run configuration")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log eval payloads as cases run")
	rootCmd.Flags().BoolVar(&failuresOnly, "failures-only", false, "Only print failing evals")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "Output results as a JSON report")
}

// Execute runs the root command with signal handling.
func Execute(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return rootCmd.ExecuteContext(ctx)
}

func runRootCmd(cmd *cobra.Command, args []string) error {
	log := newLogger(verbose)
	slog.SetDefault(log)

	cfg, err := loadRunConfig()
	if err != nil {
		return err
	}

	caps := capability.NewEnvProvider()
	dotenv := cfg.EnvFile
	if dotenv == "" {
		dotenv = ".env"
	}
	if err := caps.LoadDotEnv(dotenv); err != nil {
		return err
	}

	cases, err := eval.Load(cfg.EvalsPath, eval.Filter{Category: categoryFlag, ID: idFlag})
	if err != nil {
		return err
	}

	opts := []eval.Option{
		eval.WithVerbose(verbose),
		eval.WithLogger(log),
		eval.WithDefaultProvider(cfg.DefaultProvider),
		eval.WithModelOverrides(cfg.Models),
	}
	if caps.Has("OPENAI_API_KEY") {
		judgeClient, err := providers.NewOpenAIClient(caps.Get("OPENAI_API_KEY"))
		if err != nil {
			return err
		}
		opts = append(opts, eval.WithJudge(eval.NewJudge(judgeClient, cfg.JudgeModel)))
	} else {
		log.Debug("OPENAI_API_KEY not set, judge-dependent evals will be skipped")
	}
	opts = append(opts, extraRunnerOptions...)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	runner := eval.NewRunner(caps, opts...)
	reporter := eval.NewReporter(cmd.OutOrStdout(), failuresOnly, jsonOutput)

	summary := runner.Run(ctx, cases, reporter)
	if summary.Failed > 0 {
		exitCode = exitFailures
	}
	return nil
}

// defaultConfigFile is looked for in the working directory when --config is
// not given. Its absence is not an error.
const defaultConfigFile = "mux-evals.yaml"

// loadRunConfig merges the optional config file with command-line flags.
// Flags win over file values, which win over defaults. An explicit --config
// path must exist; the default location may not.
func loadRunConfig() (*config.Config, error) {
	var cfg *config.Config
	var err error
	if configFile != "" {
		cfg, err = config.Load(configFile)
	} else {
		cfg, err = config.LoadWithDefaults(defaultConfigFile)
	}
	if err != nil {
		return nil, err
	}

	if evalsPath != "" {
		cfg.EvalsPath = evalsPath
	}
	if judgeModel != "" {
		cfg.JudgeModel = judgeModel
	}
	if envFile != "" {
		cfg.EnvFile = envFile
	}
	return cfg, nil
}

// newLogger builds the process logger: info-level text to stderr, debug when
// verbose.
func newLogger(verbose bool) *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
