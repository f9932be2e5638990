// Package cmd contains the CLI command definitions for GitQuill.
package cmd

import (
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for the GitQuill CLI.
func NewRootCmd(version, commitHash, date string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "gitquill",
		Short: "AI-powered git commit message generator",
		Long: `GitQuill is an AI-powered command-line tool that generates
commit messages from your staged changes.

It reads your staged git diff, sends it to a configurable AI provider
(OpenAI, Anthropic, Ollama), and presents an interactive loop to
accept, edit, or regenerate the message before committing.`,
		Version: version,
		// Bare invocation runs the commit workflow.
		RunE: func(cmd *cobra.Command, args []string) error {
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			yes, _ := cmd.Flags().GetBool("yes")

			flags := &CommitFlags{
				DryRun: dryRun,
				Yes:    yes,
			}

			return runCommit(cmd, flags)
		},
	}

	rootCmd.SetVersionTemplate(`GitQuill {{.Version}}
Commit: ` + commitHash + `
Built:  ` + date + "\n")

	// Global flags
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().String("config", "", "Config file path (default: ~/.gitquill/config.yaml)")
	rootCmd.PersistentFlags().String("provider", "", "AI provider to use (openai, anthropic, ollama)")
	rootCmd.PersistentFlags().String("model", "", "AI model to use")
	rootCmd.PersistentFlags().Int("max-tokens", 0, "Maximum tokens for the generated message")

	// Commit flags on the root command for the default action
	rootCmd.Flags().Bool("dry-run", false, "Generate message without committing")
	rootCmd.Flags().BoolP("yes", "y", false, "Skip interactive confirmation and commit immediately")

	rootCmd.AddCommand(NewCommitCmd())
	rootCmd.AddCommand(NewGenerateCmd())
	rootCmd.AddCommand(NewConfigCmd())
	rootCmd.AddCommand(NewBrowseCmd())
	rootCmd.AddCommand(NewCompletionCmd())
	rootCmd.AddCommand(NewMenuCmd())

	return rootCmd
}
