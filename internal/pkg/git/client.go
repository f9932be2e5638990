// Package git provides Git operations for GitQuill.
package git

import (
	"context"
	"os/exec"
	"regexp"
	"strings"
	"time"

	apperrors "github.com/gitquill/gitquill/internal/pkg/errors"
)

const (
	// CommandTimeout is the default timeout for git commands.
	CommandTimeout = 10 * time.Second
)

// Client defines the interface for Git operations.
type Client interface {
	// HasStagedChanges reports whether the index differs from HEAD.
	HasStagedChanges(ctx context.Context) (bool, error)
	// StagedDiff returns the unified diff of staged changes.
	StagedDiff(ctx context.Context) (string, error)
	// Commit creates a commit with the given message. The message is passed
	// as a single argv element, so embedded quotes and newlines survive.
	Commit(ctx context.Context, message string) error
	// RemoteURL returns the configured URL of the named remote.
	RemoteURL(ctx context.Context, remote string) (string, error)
}

// DefaultClient implements the Client interface using exec.CommandContext.
type DefaultClient struct {
	// workDir is the working directory for git commands.
	// If empty, uses the current directory.
	workDir string
}

// NewClient creates a new DefaultClient.
func NewClient() *DefaultClient {
	return &DefaultClient{}
}

// NewClientWithWorkDir creates a new DefaultClient with a specific working directory.
func NewClientWithWorkDir(workDir string) *DefaultClient {
	return &DefaultClient{workDir: workDir}
}

// HasStagedChanges checks if there are any staged changes in the repository.
func (c *DefaultClient) HasStagedChanges(ctx context.Context) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "diff", "--cached", "--quiet")
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	err := cmd.Run()
	if err != nil {
		// Exit code 1 means the index differs from HEAD.
		if exitErr, ok := err.(*exec.ExitError); ok && exitErr.ExitCode() == 1 {
			return true, nil
		}
		return false, apperrors.NewGitError(err, "")
	}
	return false, nil
}

// StagedDiff retrieves the staged diff as a single string. The diff is
// captured once per session; regeneration reuses the captured value.
func (c *DefaultClient) StagedDiff(ctx context.Context) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "diff", "--cached")
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", apperrors.NewGitError(err, string(exitErr.Stderr))
		}
		return "", apperrors.NewGitError(err, "")
	}

	return string(output), nil
}

// Commit executes a git commit with the given message.
func (c *DefaultClient) Commit(ctx context.Context, message string) error {
	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "commit", "-m", message)
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	output, err := cmd.CombinedOutput()
	if err != nil {
		return apperrors.NewGitError(err, string(output))
	}
	return nil
}

// RemoteURL returns the configured URL of the named remote.
func (c *DefaultClient) RemoteURL(ctx context.Context, remote string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, CommandTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "git", "config", "--get", "remote."+remote+".url")
	if c.workDir != "" {
		cmd.Dir = c.workDir
	}

	output, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", apperrors.NewGitError(err, string(exitErr.Stderr))
		}
		return "", apperrors.NewGitError(err, "")
	}

	url := strings.TrimSpace(string(output))
	if url == "" {
		return "", apperrors.NewGitError(nil, "remote "+remote+" has no URL configured")
	}
	return url, nil
}

// scpLikeURLPattern matches git@host:owner/repo style remote URLs.
var scpLikeURLPattern = regexp.MustCompile(`^(?:ssh://)?(?:[a-zA-Z0-9._-]+@)?([a-zA-Z0-9._-]+)[:/](.+)$`)

// NormalizeRemoteURL converts a git remote URL into a browsable https URL.
// Examples:
//   - "git@github.com:user/repo.git" -> "https://github.com/user/repo"
//   - "https://github.com/user/repo.git" -> "https://github.com/user/repo"
func NormalizeRemoteURL(raw string) string {
	url := strings.TrimSpace(raw)
	url = strings.TrimSuffix(url, ".git")

	if strings.HasPrefix(url, "http://") || strings.HasPrefix(url, "https://") {
		return url
	}

	if m := scpLikeURLPattern.FindStringSubmatch(url); m != nil {
		return "https://" + m[1] + "/" + strings.TrimPrefix(m[2], "/")
	}

	return url
}
