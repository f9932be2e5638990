package ai

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPromptTemplate_RenderUserPrompt(t *testing.T) {
	tmpl := NewPromptTemplate()

	rendered, err := tmpl.RenderUserPrompt("diff --git a/main.go b/main.go\n+func main() {}")

	require.NoError(t, err)
	assert.Contains(t, rendered, "diff --git a/main.go b/main.go")
	assert.Contains(t, rendered, "+func main() {}")
}

func TestPromptTemplate_SystemPrompt(t *testing.T) {
	tmpl := NewPromptTemplate()

	system := tmpl.GetSystemPrompt()

	assert.NotEmpty(t, system)
	assert.Contains(t, system, "commit message")
}
