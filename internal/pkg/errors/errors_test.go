package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetExitCode(t *testing.T) {
	assert.Equal(t, 0, GetExitCode(nil))
	assert.Equal(t, 1, GetExitCode(errors.New("anything")))
	assert.Equal(t, 1, GetExitCode(NewNoStagedChangesError()))
	assert.Equal(t, 1, GetExitCode(NewGitError(errors.New("exit 128"), "")))
}

func TestAppError_WrapAndUnwrap(t *testing.T) {
	cause := errors.New("connection refused")
	err := Wrap(cause, ErrProviderFailed, "openai provider error")

	assert.Equal(t, ErrProviderFailed, err.Code)
	assert.Contains(t, err.Error(), "openai provider error")
	assert.Contains(t, err.Error(), "connection refused")
	assert.True(t, errors.Is(err, cause))
}

func TestGetAppError(t *testing.T) {
	appErr := NewMissingAPIKeyError("openai")
	wrapped := fmt.Errorf("outer: %w", appErr)

	got := GetAppError(wrapped)
	require.NotNil(t, got)
	assert.Equal(t, ErrMissingAPIKey, got.Code)

	assert.Nil(t, GetAppError(errors.New("plain")))
	assert.Nil(t, GetAppError(nil))
}

func TestNewGitError_PreservesOutput(t *testing.T) {
	err := NewGitError(errors.New("exit status 1"), "pre-commit hook rejected\n")

	assert.Contains(t, err.Error(), "pre-commit hook rejected")
	assert.Equal(t, ErrGitCommandFailed, err.Code)
}

func TestSanitizeErrorMessage(t *testing.T) {
	msg := SanitizeErrorMessage("401 unauthorized with key sk-abcdefghijklmnopqrstuvwx")

	assert.NotContains(t, msg, "sk-abcdefghijklmnopqrstuvwx")
	assert.Contains(t, msg, "uvwx")

	// Short strings that merely resemble keys are untouched.
	assert.Equal(t, "sk-short", SanitizeErrorMessage("sk-short"))
}

func TestFormatError(t *testing.T) {
	assert.Equal(t, "", FormatError(nil))

	out := FormatError(NewNoStagedChangesError())
	assert.Contains(t, out, "Error: no staged changes found")
	assert.Contains(t, out, "Suggestion:")
	assert.Contains(t, out, "git add")

	out = FormatError(errors.New("plain failure"))
	assert.Equal(t, "Error: plain failure", out)
}

func TestErrorCodeString(t *testing.T) {
	assert.Equal(t, "NoStagedChanges", ErrNoStagedChanges.String())
	assert.Equal(t, "ProviderFailed", ErrProviderFailed.String())
	assert.Equal(t, "Unknown", ErrorCode(999).String())
}
