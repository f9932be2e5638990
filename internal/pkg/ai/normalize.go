// Package ai provides LLM provider implementations for GitQuill.
package ai

import "strings"

// FallbackMessage is the fixed commit message substituted when a provider
// call fails, so the interactive loop always has a candidate to show.
const FallbackMessage = "chore: update code"

// Normalize cleans raw model output into a displayable commit message.
// Models sometimes quote their entire answer; a single wrapping pair of
// double quotes is stripped. Applied identically by every provider.
func Normalize(raw string) string {
	s := strings.TrimSpace(raw)
	if len(s) >= 2 && strings.HasPrefix(s, `"`) && strings.HasSuffix(s, `"`) {
		s = strings.TrimSpace(s[1 : len(s)-1])
	}
	return s
}
