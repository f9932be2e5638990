// Package config provides configuration management for GitQuill.
package config

// Config represents the complete GitQuill configuration.
type Config struct {
	Provider ProviderConfig `mapstructure:"provider"`
	UI       UIConfig       `mapstructure:"ui"`
}

// ProviderConfig contains AI provider settings.
type ProviderConfig struct {
	Name      string `mapstructure:"name"`
	APIKey    string `mapstructure:"api_key"`
	Model     string `mapstructure:"model"`
	Endpoint  string `mapstructure:"endpoint"`
	MaxTokens int    `mapstructure:"max_tokens"`
}

// UIConfig contains UI-related settings.
type UIConfig struct {
	Editor       string `mapstructure:"editor"`
	ColorEnabled bool   `mapstructure:"color_enabled"`
}

// Manager defines the interface for configuration management.
type Manager interface {
	Load() (*Config, error)
	Set(key string, value string) error
	Get(key string) (string, error)
	Init() error
	List() map[string]interface{}
	GetConfigPath() string
	ConfigExists() bool
}
