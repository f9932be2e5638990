// Package message provides commit message lint checks for GitQuill.
package message

import (
	"fmt"
	"regexp"
	"strings"
)

// ValidCommitTypes contains all valid Conventional Commits types.
var ValidCommitTypes = []string{
	"feat", "fix", "docs", "style", "refactor",
	"test", "chore", "perf", "ci", "build", "revert",
}

// MaxSubjectLength is the recommended maximum length for commit subject lines.
const MaxSubjectLength = 72

// conventionalCommitRegex matches the Conventional Commits format.
// Format: <type>(<scope>): <subject> or <type>: <subject>
var conventionalCommitRegex = regexp.MustCompile(`^(feat|fix|docs|style|refactor|test|chore|perf|ci|build|revert)(\([^)]+\))?:\s*(.+)$`)

// Lint returns advisory warnings for a commit message candidate. Warnings
// are shown alongside the candidate; they never block the session.
func Lint(raw string) []string {
	var warnings []string

	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"message is empty"}
	}

	subject := strings.SplitN(raw, "\n", 2)[0]

	if !conventionalCommitRegex.MatchString(subject) {
		warnings = append(warnings, "subject does not follow Conventional Commits format")
	}

	if len(subject) > MaxSubjectLength {
		warnings = append(warnings, fmt.Sprintf("subject line exceeds %d characters", MaxSubjectLength))
	}

	if strings.HasSuffix(subject, ".") {
		warnings = append(warnings, "subject line ends with a period")
	}

	return warnings
}
