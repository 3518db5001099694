package types

import (
	"errors"
	"fmt"
)

// ErrorCode represents a namespaced error code for mux-evals errors.
type ErrorCode string

// Eval loading error codes
const (
	EVAL_LOAD_FAILED     ErrorCode = "EVAL_LOAD_FAILED"
	EVAL_PAYLOAD_INVALID ErrorCode = "EVAL_PAYLOAD_INVALID"
)

// Judge error codes
const (
	JUDGE_CALL_FAILED ErrorCode = "JUDGE_CALL_FAILED"
)

// Configuration error codes
const (
	CONFIG_LOAD_FAILED       ErrorCode = "CONFIG_LOAD_FAILED"
	CONFIG_PARSE_FAILED      ErrorCode = "CONFIG_PARSE_FAILED"
	CONFIG_VALIDATION_FAILED ErrorCode = "CONFIG_VALIDATION_FAILED"
)

// LLM error codes
const (
	LLM_PROVIDER_NOT_FOUND    ErrorCode = "LLM_PROVIDER_NOT_FOUND"
	LLM_PROVIDER_INIT_FAILED  ErrorCode = "LLM_PROVIDER_INIT_FAILED"
	LLM_PROVIDER_UNAUTHORIZED ErrorCode = "LLM_PROVIDER_UNAUTHORIZED"
	LLM_COMPLETION_FAILED     ErrorCode = "LLM_COMPLETION_FAILED"
	LLM_STREAMING_FAILED      ErrorCode = "LLM_STREAMING_FAILED"
	LLM_INVALID_REQUEST       ErrorCode = "LLM_INVALID_REQUEST"
)

// Tool error codes
const (
	TOOL_NOT_FOUND        ErrorCode = "TOOL_NOT_FOUND"
	TOOL_ALREADY_EXISTS   ErrorCode = "TOOL_ALREADY_EXISTS"
	TOOL_INVALID_INPUT    ErrorCode = "TOOL_INVALID_INPUT"
	TOOL_EXECUTION_FAILED ErrorCode = "TOOL_EXECUTION_FAILED"
)

// Transcript error codes
const (
	TRANSCRIPT_SAVE_FAILED ErrorCode = "TRANSCRIPT_SAVE_FAILED"
	TRANSCRIPT_LOAD_FAILED ErrorCode = "TRANSCRIPT_LOAD_FAILED"
)

// HarnessError represents a structured error with error code, message, and optional cause.
// It supports error wrapping and retryability hints for error handling logic.
type HarnessError struct {
	Code      ErrorCode
	Message   string
	Retryable bool
	Cause     error
}

// Error implements the error interface, returning a formatted error message.
// Format: "[CODE] message" or "[CODE] message: cause" if cause exists.
func (e *HarnessError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause error for error unwrapping chains.
func (e *HarnessError) Unwrap() error {
	return e.Cause
}

// Is checks if the target error matches this error by error code.
// Returns true if target is a HarnessError with the same Code.
func (e *HarnessError) Is(target error) bool {
	var harnessErr *HarnessError
	if errors.As(target, &harnessErr) {
		return e.Code == harnessErr.Code
	}
	return false
}

// NewError creates a new non-retryable HarnessError with the given code and message.
func NewError(code ErrorCode, message string) *HarnessError {
	return &HarnessError{
		Code:    code,
		Message: message,
	}
}

// NewRetryableError creates a new retryable HarnessError with the given code and message.
// Use this for transient errors that may succeed on retry (e.g., network timeouts).
func NewRetryableError(code ErrorCode, message string) *HarnessError {
	return &HarnessError{
		Code:      code,
		Message:   message,
		Retryable: true,
	}
}

// WrapError creates a new non-retryable HarnessError that wraps an existing error.
// The wrapped error is accessible via Unwrap() for error chain inspection.
func WrapError(code ErrorCode, message string, cause error) *HarnessError {
	return &HarnessError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf extracts the ErrorCode from an error chain.
// Returns an empty code if the chain contains no HarnessError.
func CodeOf(err error) ErrorCode {
	var harnessErr *HarnessError
	if errors.As(err, &harnessErr) {
		return harnessErr.Code
	}
	return ""
}
