package cmd

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gitquill/gitquill/internal/pkg/git"
)

// browserOpener launches the system browser. Injectable for tests.
var browserOpener = openBrowser

// NewBrowseCmd creates the browse command.
func NewBrowseCmd() *cobra.Command {
	var remote string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Open the repository remote in a browser",
		Long: `Open the repository's remote URL in the default web browser.

SSH-style remote URLs (git@host:owner/repo.git) are converted to their
https equivalents before opening.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			gitClient := git.NewClient()

			rawURL, err := gitClient.RemoteURL(context.Background(), remote)
			if err != nil {
				return err
			}

			url := git.NormalizeRemoteURL(rawURL)
			fmt.Printf("Opening %s\n", url)
			return browserOpener(url)
		},
	}

	cmd.Flags().StringVar(&remote, "remote", "origin", "Remote to open")

	return cmd
}

// browserCommand returns the launcher command and base arguments for the
// given platform.
func browserCommand(goos string) (string, []string) {
	switch goos {
	case "darwin":
		return "open", nil
	case "windows":
		return "rundll32", []string{"url.dll,FileProtocolHandler"}
	default:
		return "xdg-open", nil
	}
}

// openBrowser opens the URL with the platform's default browser.
func openBrowser(url string) error {
	name, args := browserCommand(runtime.GOOS)
	args = append(args, url)
	if err := exec.Command(name, args...).Start(); err != nil {
		return fmt.Errorf("failed to open browser: %w", err)
	}
	return nil
}
