// Package ai provides LLM provider implementations for GitQuill.
package ai

import (
	"bytes"
	"text/template"
)

// DefaultSystemPrompt is the system prompt shared by all providers.
const DefaultSystemPrompt = `You are an expert at writing git commit messages.

Format Requirements:
- Use Conventional Commits format: <type>(<scope>): <subject>
- Types: feat, fix, docs, style, refactor, test, chore, perf, ci, build, revert
- Subject: imperative mood, no period, max 72 characters

Rules:
1. Be concise and specific
2. Use present tense ("add" not "added")
3. Describe the change, not the mechanics

Output only the commit message itself, no explanations and no quotes.`

// defaultUserPromptTemplate renders the user message containing the diff.
const defaultUserPromptTemplate = `Write a commit message for the following staged changes:

{{.Diff}}`

// promptData is the data passed to the user prompt template.
type promptData struct {
	Diff string
}

// PromptTemplate renders the system and user prompts sent to a provider.
type PromptTemplate struct {
	systemPrompt string
	userTemplate *template.Template
}

// NewPromptTemplate creates a PromptTemplate with the default prompts.
func NewPromptTemplate() *PromptTemplate {
	return &PromptTemplate{
		systemPrompt: DefaultSystemPrompt,
		userTemplate: template.Must(template.New("user").Parse(defaultUserPromptTemplate)),
	}
}

// GetSystemPrompt returns the system prompt.
func (t *PromptTemplate) GetSystemPrompt() string {
	return t.systemPrompt
}

// RenderUserPrompt renders the user prompt for the given diff.
func (t *PromptTemplate) RenderUserPrompt(diff string) (string, error) {
	var buf bytes.Buffer
	if err := t.userTemplate.Execute(&buf, promptData{Diff: diff}); err != nil {
		return "", err
	}
	return buf.String(), nil
}
