package llm

import (
	"strings"

	"github.com/2389-research/mux-evals/internal/types"
)

// NewAuthError creates an error for a missing or rejected provider credential.
func NewAuthError(provider string) *types.HarnessError {
	return types.NewError(types.LLM_PROVIDER_UNAUTHORIZED, "missing or invalid credential for provider "+provider)
}

// NewInitError creates an error for a provider client that failed to construct.
func NewInitError(provider string, cause error) *types.HarnessError {
	return types.WrapError(types.LLM_PROVIDER_INIT_FAILED, "failed to initialize provider "+provider, cause)
}

// NewProviderNotFoundError creates an error for an unknown provider name.
func NewProviderNotFoundError(provider string) *types.HarnessError {
	return types.NewError(types.LLM_PROVIDER_NOT_FOUND, "unknown provider: "+provider)
}

// TranslateError converts a raw provider transport error into a coded error,
// marking rate-limit and timeout failures retryable.
func TranslateError(provider string, cause error) *types.HarnessError {
	if cause == nil {
		return nil
	}

	msg := strings.ToLower(cause.Error())
	switch {
	case strings.Contains(msg, "rate limit"), strings.Contains(msg, "429"),
		strings.Contains(msg, "timeout"), strings.Contains(msg, "deadline exceeded"):
		err := types.NewRetryableError(types.LLM_COMPLETION_FAILED, provider+" request failed")
		err.Cause = cause
		return err
	case strings.Contains(msg, "401"), strings.Contains(msg, "unauthorized"),
		strings.Contains(msg, "invalid api key"), strings.Contains(msg, "invalid x-api-key"):
		return types.WrapError(types.LLM_PROVIDER_UNAUTHORIZED, provider+" rejected credentials", cause)
	default:
		return types.WrapError(types.LLM_COMPLETION_FAILED, provider+" request failed", cause)
	}
}
