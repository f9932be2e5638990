package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/huh"

	"github.com/gitquill/gitquill/internal/pkg/config"
)

// RunInteractiveSetup runs the first-use setup wizard using huh forms.
func RunInteractiveSetup(cfgMgr *config.ViperManager) error {
	fmt.Println("No configuration found. Let's set up GitQuill!")
	fmt.Println()

	// Creates the config file and directory; already-exists is fine.
	_ = cfgMgr.Init()

	var provider string

	err := huh.NewSelect[string]().
		Title("Select AI Provider").
		Options(
			huh.NewOption("OpenAI", "openai"),
			huh.NewOption("Anthropic", "anthropic"),
			huh.NewOption("Ollama (Local)", "ollama"),
		).
		Value(&provider).
		Run()
	if err != nil {
		return err
	}

	var apiKey string
	var model string
	var endpoint string

	switch provider {
	case "openai":
		model = "gpt-4o-mini"
	case "anthropic":
		model = "claude-3-5-haiku-latest"
	case "ollama":
		model = "codellama"
		endpoint = "http://localhost:11434"
	}

	fields := []huh.Field{}

	if provider != "ollama" {
		fields = append(fields,
			huh.NewInput().
				Title("API Key").
				Description("Enter your API key").
				Value(&apiKey).
				Password(true).
				Validate(func(s string) error {
					if len(strings.TrimSpace(s)) < 5 {
						return fmt.Errorf("api key too short")
					}
					return nil
				}),
		)
	}

	fields = append(fields,
		huh.NewInput().
			Title("Model Name").
			Description("Model to use").
			Value(&model).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("model name cannot be empty")
				}
				return nil
			}),
	)

	if provider == "ollama" {
		fields = append(fields,
			huh.NewInput().
				Title("Server URL").
				Description("Ollama server address").
				Value(&endpoint),
		)
	}

	err = huh.NewForm(huh.NewGroup(fields...)).Run()
	if err != nil {
		return err
	}

	if err := cfgMgr.Set("provider.name", provider); err != nil {
		return fmt.Errorf("failed to set provider: %w", err)
	}

	if err := cfgMgr.Set("provider.api_key", apiKey); err != nil {
		return fmt.Errorf("failed to set api key: %w", err)
	}

	if err := cfgMgr.Set("provider.model", model); err != nil {
		return fmt.Errorf("failed to set model: %w", err)
	}

	if endpoint != "" {
		if err := cfgMgr.Set("provider.endpoint", endpoint); err != nil {
			return fmt.Errorf("failed to set endpoint: %w", err)
		}
	}

	fmt.Printf("\nConfiguration saved to %s\n", cfgMgr.GetConfigPath())
	fmt.Println("Setup complete! You can now use GitQuill.")
	fmt.Println()

	return nil
}
