// Package config loads the optional YAML run configuration. Flags take
// precedence over file values, which take precedence over defaults.
package config

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/2389-research/mux-evals/internal/eval"
	"github.com/2389-research/mux-evals/internal/types"
)

// Config is the run configuration.
type Config struct {
	// EvalsPath is the eval definitions directory or a single .jsonl file.
	EvalsPath string `yaml:"evals_path"`

	// JudgeModel is the model used to grade free-form outputs.
	JudgeModel string `yaml:"judge_model"`

	// DefaultProvider is assumed for llm cases that name no provider.
	DefaultProvider string `yaml:"default_provider"`

	// EnvFile is an optional dotenv file loaded before credential gating.
	EnvFile string `yaml:"env_file"`

	// Models overrides the default model per provider.
	Models map[string]string `yaml:"models"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() *Config {
	return &Config{
		EvalsPath:       "../../evals",
		JudgeModel:      eval.DefaultJudgeModel,
		DefaultProvider: eval.DefaultProvider,
	}
}

// Load reads and validates a config file. ${VAR} references in string values
// are interpolated from the environment; unset variables are left verbatim.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, types.WrapError(types.CONFIG_LOAD_FAILED, fmt.Sprintf("failed to read config file %s", path), err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, types.WrapError(types.CONFIG_PARSE_FAILED, fmt.Sprintf("failed to parse config file %s", path), err)
	}

	cfg.EvalsPath = interpolateString(cfg.EvalsPath)
	cfg.JudgeModel = interpolateString(cfg.JudgeModel)
	cfg.DefaultProvider = interpolateString(cfg.DefaultProvider)
	cfg.EnvFile = interpolateString(cfg.EnvFile)
	for provider, model := range cfg.Models {
		cfg.Models[provider] = interpolateString(model)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadWithDefaults loads a config file, falling back to defaults when the
// file does not exist.
func LoadWithDefaults(path string) (*Config, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	return Load(path)
}

// Validate checks the configuration for usable values.
func (c *Config) Validate() error {
	if c.EvalsPath == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "evals_path must not be empty")
	}
	if c.JudgeModel == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "judge_model must not be empty")
	}
	if c.DefaultProvider == "" {
		return types.NewError(types.CONFIG_VALIDATION_FAILED, "default_provider must not be empty")
	}
	return nil
}

var envRef = regexp.MustCompile(`\$\{([^}]+)\}`)

// interpolateString replaces ${VAR_NAME} with environment variable values,
// leaving unset references untouched.
func interpolateString(s string) string {
	return envRef.ReplaceAllStringFunc(s, func(match string) string {
		name := strings.TrimSuffix(strings.TrimPrefix(match, "${"), "}")
		if value := os.Getenv(name); value != "" {
			return value
		}
		return match
	})
}
