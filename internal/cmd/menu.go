package cmd

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

// NewMenuCmd creates an interactive menu that dispatches to other commands.
func NewMenuCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "menu",
		Short: "Pick a command interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			var choice string

			err := huh.NewSelect[string]().
				Title("What would you like to do?").
				Options(
					huh.NewOption("Commit with an AI-generated message", "commit"),
					huh.NewOption("Generate a message without committing", "generate"),
					huh.NewOption("Open the remote in a browser", "browse"),
					huh.NewOption("List configuration", "config list"),
				).
				Value(&choice).
				Run()
			if err != nil {
				return err
			}

			target, targetArgs, err := cmd.Root().Find(strings.Fields(choice))
			if err != nil {
				return err
			}
			return target.RunE(target, targetArgs)
		},
	}
}
