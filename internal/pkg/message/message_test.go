package message

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLint(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		wantWarnings int
		wantContains string
	}{
		{
			name:         "conventional message is clean",
			input:        "feat: add provider registry",
			wantWarnings: 0,
		},
		{
			name:         "scoped conventional message is clean",
			input:        "fix(git): quote commit messages",
			wantWarnings: 0,
		},
		{
			name:         "non-conventional format",
			input:        "added some stuff",
			wantWarnings: 1,
			wantContains: "Conventional Commits",
		},
		{
			name:         "long subject line",
			input:        "feat: " + strings.Repeat("x", 80),
			wantWarnings: 1,
			wantContains: "72 characters",
		},
		{
			name:         "trailing period",
			input:        "feat: add registry.",
			wantWarnings: 1,
			wantContains: "period",
		},
		{
			name:         "empty message",
			input:        "   ",
			wantWarnings: 1,
			wantContains: "empty",
		},
		{
			name:         "only subject line is checked",
			input:        "feat: add registry\n\n" + strings.Repeat("y", 200),
			wantWarnings: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			warnings := Lint(tt.input)
			assert.Len(t, warnings, tt.wantWarnings)
			if tt.wantContains != "" {
				assert.Contains(t, strings.Join(warnings, "\n"), tt.wantContains)
			}
		})
	}
}

func TestLint_MultipleWarnings(t *testing.T) {
	warnings := Lint(strings.Repeat("z", 90) + ".")

	assert.GreaterOrEqual(t, len(warnings), 2)
}
