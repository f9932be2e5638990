// Package errors provides error types and diagnostics for GitQuill.
package errors

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrorCode represents the category of an error.
type ErrorCode int

const (
	// ErrNoStagedChanges means there is nothing to commit.
	ErrNoStagedChanges ErrorCode = iota + 1
	// ErrMissingAPIKey means the resolved provider has no API key configured.
	ErrMissingAPIKey
	// ErrInvalidConfig means the configuration could not be loaded or is invalid.
	ErrInvalidConfig
	// ErrGitCommandFailed means an underlying git invocation failed.
	ErrGitCommandFailed
	// ErrInteractiveIO means the editor or prompt I/O failed mid-session.
	ErrInteractiveIO
	// ErrProviderFailed means a provider call failed. Recovered locally by
	// the session via the fallback message; never fatal on its own.
	ErrProviderFailed
)

// String returns a human-readable name for the error code.
func (c ErrorCode) String() string {
	switch c {
	case ErrNoStagedChanges:
		return "NoStagedChanges"
	case ErrMissingAPIKey:
		return "MissingAPIKey"
	case ErrInvalidConfig:
		return "InvalidConfig"
	case ErrGitCommandFailed:
		return "GitCommandFailed"
	case ErrInteractiveIO:
		return "InteractiveIO"
	case ErrProviderFailed:
		return "ProviderFailed"
	default:
		return "Unknown"
	}
}

// AppError represents an application error with context.
type AppError struct {
	Code       ErrorCode
	Message    string
	Cause      error
	Suggestion string
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError.
func New(code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

// Wrap wraps an error with a code and message.
func Wrap(err error, code ErrorCode, message string) *AppError {
	return &AppError{Code: code, Message: message, Cause: err}
}

// GetAppError extracts an AppError from an error chain, or nil.
func GetAppError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return nil
}

// GetExitCode returns the process exit code for an error. Every fatal error
// exits 1; 0 is reserved for success and user cancellation.
func GetExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}

// NewNoStagedChangesError creates an error for an empty staged diff.
func NewNoStagedChangesError() *AppError {
	return &AppError{
		Code:       ErrNoStagedChanges,
		Message:    "no staged changes found",
		Suggestion: "Use 'git add <files>' to stage changes before generating a commit message",
	}
}

// NewMissingAPIKeyError creates an error for a missing API key.
func NewMissingAPIKeyError(provider string) *AppError {
	return &AppError{
		Code:       ErrMissingAPIKey,
		Message:    fmt.Sprintf("API key is required for %s provider", provider),
		Suggestion: "Set it with 'gitquill config set provider.api_key <your-key>' or the GITQUILL_PROVIDER_API_KEY environment variable",
	}
}

// NewInvalidConfigError creates an error for invalid configuration.
func NewInvalidConfigError(message string) *AppError {
	return &AppError{
		Code:       ErrInvalidConfig,
		Message:    message,
		Suggestion: "Run 'gitquill config init' to create a valid configuration file",
	}
}

// NewGitError creates an error for git command failures. The command output
// is preserved so hook rejections and similar failures reach the user intact.
func NewGitError(err error, output string) *AppError {
	appErr := &AppError{
		Code:    ErrGitCommandFailed,
		Message: "git command failed",
		Cause:   err,
	}
	if strings.TrimSpace(output) != "" {
		appErr.Message = fmt.Sprintf("git command failed: %s", strings.TrimSpace(output))
	}
	return appErr
}

// NewInteractiveIOError creates an error for editor or prompt failures.
func NewInteractiveIOError(err error, message string) *AppError {
	return &AppError{
		Code:    ErrInteractiveIO,
		Message: message,
		Cause:   err,
	}
}

// NewProviderError creates an error for provider call failures.
func NewProviderError(provider string, err error) *AppError {
	return &AppError{
		Code:    ErrProviderFailed,
		Message: fmt.Sprintf("%s provider error", provider),
		Cause:   err,
	}
}

// FormatError formats an error for user display. API keys are masked.
func FormatError(err error) string {
	if err == nil {
		return ""
	}

	var sb strings.Builder
	sb.WriteString("Error: ")

	if appErr := GetAppError(err); appErr != nil {
		sb.WriteString(SanitizeErrorMessage(appErr.Error()))
		if appErr.Suggestion != "" {
			sb.WriteString("\n  Suggestion: ")
			sb.WriteString(appErr.Suggestion)
		}
	} else {
		sb.WriteString(SanitizeErrorMessage(err.Error()))
	}

	return sb.String()
}

// apiKeyPattern matches common API key shapes (OpenAI sk-..., Anthropic sk-ant-...).
var apiKeyPattern = regexp.MustCompile(`sk-[a-zA-Z0-9_-]{16,}`)

// SanitizeErrorMessage masks any API keys embedded in an error message.
func SanitizeErrorMessage(msg string) string {
	return apiKeyPattern.ReplaceAllStringFunc(msg, func(match string) string {
		if len(match) <= 4 {
			return "****"
		}
		return strings.Repeat("*", len(match)-4) + match[len(match)-4:]
	})
}
