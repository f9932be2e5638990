package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain message", input: "feat: add parser", want: "feat: add parser"},
		{name: "wrapped in quotes", input: `"feat: add parser"`, want: "feat: add parser"},
		{name: "surrounding whitespace", input: "  feat: add parser\n", want: "feat: add parser"},
		{name: "quotes and whitespace", input: "  \"feat: add parser\"  ", want: "feat: add parser"},
		{name: "whitespace inside quotes", input: `" feat: add parser "`, want: "feat: add parser"},
		{name: "leading quote only", input: `"feat: add parser`, want: `"feat: add parser`},
		{name: "trailing quote only", input: `feat: add parser"`, want: `feat: add parser"`},
		{name: "interior quotes kept", input: `fix: handle "quoted" args`, want: `fix: handle "quoted" args`},
		{name: "only one wrapping pair stripped", input: `""feat: x""`, want: `"feat: x"`},
		{name: "empty", input: "", want: ""},
		{name: "bare quote pair", input: `""`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.input))
		})
	}
}

func TestFallbackMessageIsValid(t *testing.T) {
	// The fallback must survive normalization unchanged.
	assert.Equal(t, FallbackMessage, Normalize(FallbackMessage))
	assert.NotEmpty(t, FallbackMessage)
}
