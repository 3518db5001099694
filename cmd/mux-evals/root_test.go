package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/2389-research/mux-evals/internal/eval"
	"github.com/2389-research/mux-evals/internal/llm"
	"github.com/2389-research/mux-evals/internal/llm/providers"
)

func TestMain(m *testing.M) {
	color.NoColor = true
	os.Exit(m.Run())
}

func resetFlags(t *testing.T) {
	t.Helper()
	t.Cleanup(func() {
		evalsPath = ""
		categoryFlag = ""
		idFlag = ""
		judgeModel = ""
		envFile = ""
		configFile = ""
		verbose = false
		failuresOnly = false
		jsonOutput = false
		exitCode = exitSuccess
		extraRunnerOptions = nil
	})
}

func TestLoadRunConfigDefaults(t *testing.T) {
	resetFlags(t)

	cfg, err := loadRunConfig()
	require.NoError(t, err)
	assert.Equal(t, "../../evals", cfg.EvalsPath)
	assert.Equal(t, "gpt-5-mini", cfg.JudgeModel)
}

func TestLoadRunConfigDefaultFileDiscovered(t *testing.T) {
	resetFlags(t)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, defaultConfigFile),
		[]byte("judge_model: gpt-4o\n"), 0o644))
	t.Chdir(dir)

	cfg, err := loadRunConfig()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4o", cfg.JudgeModel)
	assert.Equal(t, "../../evals", cfg.EvalsPath)
}

func TestLoadRunConfigFlagsWinOverFile(t *testing.T) {
	resetFlags(t)

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("judge_model: gpt-4o\nevals_path: /from/file\n"), 0o644))

	configFile = path
	judgeModel = "gpt-4.1"

	cfg, err := loadRunConfig()
	require.NoError(t, err)
	assert.Equal(t, "gpt-4.1", cfg.JudgeModel)
	assert.Equal(t, "/from/file", cfg.EvalsPath)
}

func TestRunRootCmdEndToEnd(t *testing.T) {
	resetFlags(t)

	dir := t.TempDir()
	evals := filepath.Join(dir, "cases.jsonl")
	require.NoError(t, os.WriteFile(evals, []byte(
		`{"id":"tool-001","name":"Add","category":"tools","given":{},"when":{},"then":{}}
{"id":"mcp-001","name":"MCP","category":"mcp","given":{},"when":{},"then":{}}
`), 0o644))

	evalsPath = evals
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)

	require.NoError(t, runRootCmd(rootCmd, nil))
	assert.Equal(t, exitSuccess, exitCode)
	assert.Contains(t, out.String(), "tool-001")
	assert.Contains(t, out.String(), "1 passed, 0 failed, 1 skipped")
}

func TestRunRootCmdFailureSetsExitCode(t *testing.T) {
	resetFlags(t)
	t.Setenv("ANTHROPIC_API_KEY", "test-key")

	dir := t.TempDir()
	evals := filepath.Join(dir, "cases.jsonl")
	require.NoError(t, os.WriteFile(evals, []byte(
		`{"id":"llm-001","name":"Basic","category":"llm","given":{},"when":{},"then":{}}
`), 0o644))

	evalsPath = evals
	// An empty completion makes the basic provider eval fail deterministically.
	extraRunnerOptions = []eval.Option{
		eval.WithClientFactory(func(ctx context.Context, provider string) (llm.Client, error) {
			return providers.NewMockClient(""), nil
		}),
	}

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	defer rootCmd.SetOut(nil)

	require.NoError(t, runRootCmd(rootCmd, nil))
	assert.Equal(t, exitFailures, exitCode)
	assert.Contains(t, out.String(), "Empty response from Anthropic")
	assert.Contains(t, out.String(), "0 passed, 1 failed, 0 skipped")
}

func TestRunRootCmdMissingEvalsPath(t *testing.T) {
	resetFlags(t)

	evalsPath = filepath.Join(t.TempDir(), "missing")
	err := runRootCmd(rootCmd, nil)
	require.Error(t, err)
}
