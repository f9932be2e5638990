package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveEditor(t *testing.T) {
	t.Setenv("EDITOR", "")
	t.Setenv("VISUAL", "")

	assert.Equal(t, "nano", resolveEditor("nano"))
	assert.Equal(t, "vi", resolveEditor(""))

	t.Setenv("VISUAL", "emacs")
	assert.Equal(t, "emacs", resolveEditor(""))

	t.Setenv("EDITOR", "vim")
	assert.Equal(t, "vim", resolveEditor(""))

	// Configured editor wins over environment.
	assert.Equal(t, "nano", resolveEditor("nano"))
}

func TestEditWithExternalEditor(t *testing.T) {
	// "true" exits 0 without touching the file, so the seeded content
	// comes back trimmed.
	edited, err := editWithExternalEditor("true", "feat: seeded message\n")

	require.NoError(t, err)
	assert.Equal(t, "feat: seeded message", edited)
}

func TestEditWithExternalEditor_EditorFails(t *testing.T) {
	_, err := editWithExternalEditor("false", "feat: seeded message")

	assert.Error(t, err)
}

func TestReadChoice_TrimsAndLowercases(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "\n", want: ""},
		{input: "E\n", want: "e"},
		{input: "  R  \n", want: "r"},
		{input: "Q\n", want: "q"},
		{input: "commit it\n", want: "commit it"},
	}

	for _, tt := range tests {
		p := newTerminalPrompter(false, "", strings.NewReader(tt.input))
		got, err := p.ReadChoice()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestReadChoice_EOFWithoutInput(t *testing.T) {
	p := newTerminalPrompter(false, "", strings.NewReader(""))

	_, err := p.ReadChoice()

	assert.Error(t, err)
}
