package cmd

import (
	"github.com/spf13/cobra"
)

// NewGenerateCmd creates the generate command as an alias for commit --dry-run.
func NewGenerateCmd() *cobra.Command {
	flags := &CommitFlags{
		DryRun: true,
	}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a commit message without committing",
		Long: `Generate a commit message from your staged changes without
actually committing.

This is equivalent to running 'gitquill commit --dry-run'.

Examples:
  gitquill generate         # Generate and display message
  gitquill generate --yes   # Skip interactive prompt`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCommit(cmd, flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.Yes, "yes", "y", false, "Skip interactive confirmation")

	return cmd
}
