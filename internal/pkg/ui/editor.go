package ui

import (
	"fmt"
	"os"
	"os/exec"
	"strings"
)

// resolveEditor picks the editor to launch for message editing.
// Priority: configured editor > $EDITOR > $VISUAL > vi.
func resolveEditor(configured string) string {
	if configured != "" {
		return configured
	}
	if editor := os.Getenv("EDITOR"); editor != "" {
		return editor
	}
	if editor := os.Getenv("VISUAL"); editor != "" {
		return editor
	}
	return "vi"
}

// editWithExternalEditor writes content to a temp file, opens the editor on
// it, and returns the trimmed result. The temp file is removed whether the
// editor succeeds or not.
func editWithExternalEditor(editor, content string) (string, error) {
	tmpFile, err := os.CreateTemp("", "gitquill-commit-*.txt")
	if err != nil {
		return "", fmt.Errorf("failed to create temp file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer os.Remove(tmpPath)

	if _, err := tmpFile.WriteString(content); err != nil {
		tmpFile.Close()
		return "", fmt.Errorf("failed to write to temp file: %w", err)
	}
	tmpFile.Close()

	cmd := exec.Command(editor, tmpPath)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		return "", fmt.Errorf("editor failed: %w", err)
	}

	edited, err := os.ReadFile(tmpPath)
	if err != nil {
		return "", fmt.Errorf("failed to read edited file: %w", err)
	}

	return strings.TrimSpace(string(edited)), nil
}
