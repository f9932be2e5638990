package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gitquill/gitquill/internal/app"
	"github.com/gitquill/gitquill/internal/pkg/ai"
	"github.com/gitquill/gitquill/internal/pkg/config"
	apperrors "github.com/gitquill/gitquill/internal/pkg/errors"
	"github.com/gitquill/gitquill/internal/pkg/git"
	"github.com/gitquill/gitquill/internal/pkg/security"
	"github.com/gitquill/gitquill/internal/pkg/ui"
)

// CommitFlags holds the flags for the commit command.
type CommitFlags struct {
	DryRun bool
	Yes    bool
}

// NewCommitCmd creates the commit command.
func NewCommitCmd() *cobra.Command {
	flags := &CommitFlags{}

	cmd := &cobra.Command{
		Use:   "commit",
		Short: "Generate and commit with an AI-generated message",
		Long: `Generate a commit message from your staged changes, then review it
interactively before committing.

At the prompt, press Enter to commit, 'e' to edit the message in your
editor, 'r' to regenerate, or 'q' to quit without committing.

Examples:
  gitquill commit              # Interactive commit
  gitquill commit --yes        # Auto-accept generated message
  gitquill commit --dry-run    # Generate without committing`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommit(cmd, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Generate message without committing")
	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip interactive confirmation and commit immediately")

	return cmd
}

// runCommit executes the commit workflow.
func runCommit(cmd *cobra.Command, flags *CommitFlags) error {
	// No overall session deadline: the user may sit at the prompt or in
	// the editor indefinitely. Provider and git calls carry their own
	// timeouts.
	ctx := context.Background()

	verbose, _ := cmd.Flags().GetBool("verbose")
	configPath, _ := cmd.Flags().GetString("config")
	providerOverride, _ := cmd.Flags().GetString("provider")
	modelOverride, _ := cmd.Flags().GetString("model")
	maxTokensOverride, _ := cmd.Flags().GetInt("max-tokens")

	apperrors.SetVerbose(verbose)

	cfgMgr, err := config.NewManager(configPath)
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInvalidConfig, "failed to create config manager")
	}

	if !cfgMgr.ConfigExists() {
		if err := ui.RunInteractiveSetup(cfgMgr); err != nil {
			return fmt.Errorf("setup failed: %w", err)
		}
	}

	// Flag overrides are applied before Load so they win over env and file.
	// They never persist to the config file.
	if providerOverride != "" {
		cfgMgr.SetOverride("provider.name", providerOverride)
		apperrors.Debug("Provider overridden via flag: %s", providerOverride)
	}
	if modelOverride != "" {
		cfgMgr.SetOverride("provider.model", modelOverride)
		apperrors.Debug("Model overridden via flag: %s", modelOverride)
	}
	if maxTokensOverride > 0 {
		cfgMgr.SetOverride("provider.max_tokens", maxTokensOverride)
	}

	cfg, err := cfgMgr.Load()
	if err != nil {
		return apperrors.Wrap(err, apperrors.ErrInvalidConfig, "failed to load config")
	}

	providerName := ai.CanonicalName(cfg.Provider.Name)

	// Fail fast on a bad key before any network call.
	if err := security.ValidateAPIKeyFormat(providerName, cfg.Provider.APIKey); err != nil {
		return apperrors.Wrap(err, apperrors.ErrInvalidConfig, "invalid API key")
	}

	if verbose {
		apperrors.Info("Using provider: %s", providerName)
		apperrors.Info("Using model: %s", cfg.Provider.Model)
		if cfg.Provider.APIKey != "" {
			apperrors.Info("API key: %s", security.MaskAPIKey(cfg.Provider.APIKey))
		}
	}

	gitClient := git.NewClient()

	provider := ai.Resolve(cfg.Provider.Name)(ai.ProviderConfig{
		APIKey:    cfg.Provider.APIKey,
		Model:     cfg.Provider.Model,
		Endpoint:  cfg.Provider.Endpoint,
		MaxTokens: cfg.Provider.MaxTokens,
	})
	apperrors.Debug("AI provider created: %s", provider.Name())

	var prompter ui.Prompter
	if flags.Yes {
		prompter = ui.NewAutoPrompter()
	} else {
		prompter = ui.NewTerminalPrompter(cfg.UI.ColorEnabled, cfg.UI.Editor)
	}

	session := app.NewSession(gitClient, provider, prompter)

	return session.Run(ctx, app.Options{DryRun: flags.DryRun})
}
