// Package main is the entry point for the GitQuill CLI application.
// GitQuill is an AI-powered command-line tool that generates Git commit
// messages from staged changes.
package main

import (
	"fmt"
	"os"

	"github.com/gitquill/gitquill/internal/cmd"
	apperrors "github.com/gitquill/gitquill/internal/pkg/errors"
)

// Version information - set via ldflags during build
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	rootCmd := cmd.NewRootCmd(version, commit, date)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, apperrors.FormatError(err))
		os.Exit(apperrors.GetExitCode(err))
	}
}
