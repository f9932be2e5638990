// Package app wires the interactive commit session together.
package app

import (
	"context"
	"strings"

	"github.com/gitquill/gitquill/internal/pkg/ai"
	apperrors "github.com/gitquill/gitquill/internal/pkg/errors"
	"github.com/gitquill/gitquill/internal/pkg/git"
	"github.com/gitquill/gitquill/internal/pkg/message"
	"github.com/gitquill/gitquill/internal/pkg/ui"
)

// Options controls session behavior.
type Options struct {
	// DryRun prints the accepted message without committing.
	DryRun bool
}

// Session drives the interactive commit loop: generate a candidate, show it,
// then accept, edit, regenerate, or quit based on user input.
type Session struct {
	git      git.Client
	provider ai.Provider
	prompter ui.Prompter
}

// NewSession creates a new Session.
func NewSession(gitClient git.Client, provider ai.Provider, prompter ui.Prompter) *Session {
	return &Session{
		git:      gitClient,
		provider: provider,
		prompter: prompter,
	}
}

// Run executes one complete session. The staged diff is captured once up
// front; regeneration reuses it even if the index changes mid-session.
// Returns nil on commit, dry-run, and user cancellation.
func (s *Session) Run(ctx context.Context, opts Options) error {
	hasChanges, err := s.git.HasStagedChanges(ctx)
	if err != nil {
		return err
	}
	if !hasChanges {
		return apperrors.NewNoStagedChangesError()
	}

	diff, err := s.git.StagedDiff(ctx)
	if err != nil {
		return err
	}
	if strings.TrimSpace(diff) == "" {
		return apperrors.NewNoStagedChangesError()
	}

	candidate := s.generate(ctx, diff)

	for {
		s.prompter.ShowMessage(candidate, message.Lint(candidate))

		choice, err := s.prompter.ReadChoice()
		if err != nil {
			return apperrors.NewInteractiveIOError(err, "failed to read input")
		}

		switch choice {
		case "e":
			edited, err := s.prompter.EditMessage(candidate)
			if err != nil {
				return apperrors.NewInteractiveIOError(err, "failed to edit message")
			}
			candidate = edited
		case "r":
			candidate = s.generate(ctx, diff)
		case "q":
			s.prompter.ShowSuccess("Commit cancelled")
			return nil
		default:
			// Enter and any unrecognized input both accept the candidate.
			if opts.DryRun {
				s.prompter.ShowSuccess("Dry run, no commit created")
				return nil
			}
			if err := s.git.Commit(ctx, candidate); err != nil {
				return err
			}
			s.prompter.ShowSuccess("Commit created")
			return nil
		}
	}
}

// generate asks the provider for a commit message. Provider failures are
// absorbed: the session continues with a fixed fallback message and the
// failure is logged to the diagnostic channel.
func (s *Session) generate(ctx context.Context, diff string) string {
	spinner := s.prompter.ShowSpinner("Generating commit message...")
	spinner.Start()
	msg, err := s.provider.GenerateCommit(ctx, diff)
	spinner.Stop()

	if err != nil {
		apperrors.Warn("%s provider failed, using fallback message: %v", s.provider.Name(), err)
		return ai.FallbackMessage
	}
	return msg
}
