// Package ui provides interactive terminal UI components for GitQuill.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Spinner provides loading animation functionality.
type Spinner interface {
	Start()
	Stop()
	UpdateText(text string)
}

// Prompter defines the interface for the interactive review loop.
type Prompter interface {
	// ShowMessage displays a commit message candidate with lint warnings.
	ShowMessage(message string, warnings []string)
	// ReadChoice reads one line of user input, trimmed and lowercased.
	ReadChoice() (string, error)
	// EditMessage opens an editor seeded with the current candidate and
	// returns the edited text.
	EditMessage(current string) (string, error)
	// ShowSpinner creates a spinner for loading states.
	ShowSpinner(text string) Spinner
	// ShowError displays an error message.
	ShowError(err error)
	// ShowSuccess displays a success message.
	ShowSuccess(message string)
}

// TerminalPrompter implements Prompter for an interactive terminal.
type TerminalPrompter struct {
	colorEnabled bool
	editor       string
	reader       *bufio.Reader
	styles       *styles
}

// styles holds the lipgloss styles for UI rendering.
type styles struct {
	title      lipgloss.Style
	subject    lipgloss.Style
	warning    lipgloss.Style
	footer     lipgloss.Style
	success    lipgloss.Style
	errorStyle lipgloss.Style
}

// NewTerminalPrompter creates a new TerminalPrompter reading from stdin.
func NewTerminalPrompter(colorEnabled bool, editor string) *TerminalPrompter {
	return newTerminalPrompter(colorEnabled, editor, os.Stdin)
}

func newTerminalPrompter(colorEnabled bool, editor string, input io.Reader) *TerminalPrompter {
	p := &TerminalPrompter{
		colorEnabled: colorEnabled,
		editor:       editor,
		reader:       bufio.NewReader(input),
	}
	p.initStyles()
	return p
}

// initStyles initializes the lipgloss styles.
func (p *TerminalPrompter) initStyles() {
	if !p.colorEnabled {
		p.styles = &styles{
			title:      lipgloss.NewStyle(),
			subject:    lipgloss.NewStyle(),
			warning:    lipgloss.NewStyle(),
			footer:     lipgloss.NewStyle(),
			success:    lipgloss.NewStyle(),
			errorStyle: lipgloss.NewStyle(),
		}
		return
	}

	p.styles = &styles{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39")),
		subject: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("220")),
		warning: lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")),
		footer: lipgloss.NewStyle().
			Foreground(lipgloss.Color("245")).
			Italic(true),
		success: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42")),
		errorStyle: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("196")),
	}
}

// ShowMessage displays the current commit message candidate.
func (p *TerminalPrompter) ShowMessage(message string, warnings []string) {
	fmt.Println()
	fmt.Println(p.styles.title.Render("Proposed Commit Message"))
	fmt.Println(strings.Repeat("-", 50))
	fmt.Println(p.styles.subject.Render(message))
	fmt.Println(strings.Repeat("-", 50))

	for _, w := range warnings {
		fmt.Println(p.styles.warning.Render("  warning: " + w))
	}
	fmt.Println()
}

// ReadChoice prompts for the next action and reads one input line.
func (p *TerminalPrompter) ReadChoice() (string, error) {
	fmt.Print(p.styles.footer.Render("Press Enter to commit, [e]dit, [r]egenerate, [q]uit: "))

	line, err := p.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF && line != "" {
			return strings.ToLower(strings.TrimSpace(line)), nil
		}
		return "", err
	}

	return strings.ToLower(strings.TrimSpace(line)), nil
}

// EditMessage opens an external editor seeded with the current candidate.
func (p *TerminalPrompter) EditMessage(current string) (string, error) {
	return editWithExternalEditor(resolveEditor(p.editor), current)
}

// ShowSpinner creates and returns a spinner for loading states.
func (p *TerminalPrompter) ShowSpinner(text string) Spinner {
	return newBubbleSpinner(text)
}

// ShowError displays an error message to the user.
func (p *TerminalPrompter) ShowError(err error) {
	if err == nil {
		return
	}
	fmt.Println()
	fmt.Println(p.styles.errorStyle.Render("Error: " + err.Error()))
	fmt.Println()
}

// ShowSuccess displays a success message to the user.
func (p *TerminalPrompter) ShowSuccess(message string) {
	fmt.Println()
	fmt.Println(p.styles.success.Render("[OK] " + message))
	fmt.Println()
}

// AutoPrompter implements Prompter for non-interactive mode (--yes flag).
// Every candidate is accepted as-is.
type AutoPrompter struct{}

// NewAutoPrompter creates a new AutoPrompter.
func NewAutoPrompter() *AutoPrompter {
	return &AutoPrompter{}
}

// ShowMessage prints the candidate without decoration for piping.
func (p *AutoPrompter) ShowMessage(message string, warnings []string) {
	fmt.Println(message)
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
}

// ReadChoice always accepts in non-interactive mode.
func (p *AutoPrompter) ReadChoice() (string, error) {
	return "", nil
}

// EditMessage returns the message unchanged in non-interactive mode.
func (p *AutoPrompter) EditMessage(current string) (string, error) {
	return current, nil
}

// ShowSpinner returns a no-op spinner in non-interactive mode.
func (p *AutoPrompter) ShowSpinner(text string) Spinner {
	return &noopSpinner{}
}

// ShowError displays an error message.
func (p *AutoPrompter) ShowError(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "Error: %s\n", err.Error())
}

// ShowSuccess displays a success message.
func (p *AutoPrompter) ShowSuccess(message string) {
	fmt.Println(message)
}

// noopSpinner is a no-op implementation of Spinner.
type noopSpinner struct{}

func (s *noopSpinner) Start()            {}
func (s *noopSpinner) Stop()             {}
func (s *noopSpinner) UpdateText(string) {}
