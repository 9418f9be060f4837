package llm

import (
	"fmt"
	"time"
)

// Provider identifies a text generation backend
type Provider string

const (
	ProviderOpenAI      Provider = "openai"
	ProviderHuggingFace Provider = "huggingface"
	ProviderAnthropic   Provider = "anthropic"
	ProviderGemini      Provider = "gemini"
)

// Config holds the settings a client is constructed with
type Config struct {
	Provider Provider      `yaml:"provider"`
	APIKey   string        `yaml:"apiKey,omitempty"`
	Model    string        `yaml:"model,omitempty"`
	BaseURL  string        `yaml:"baseURL,omitempty"`
	Timeout  time.Duration `yaml:"timeout,omitempty"` // zero leaves the transport default in place
}

// DefaultModel returns the model used when none is configured
func (p Provider) DefaultModel() string {
	switch p {
	case ProviderOpenAI:
		return "gpt-4"
	case ProviderHuggingFace:
		return "bigcode/starcoder"
	case ProviderAnthropic:
		return "claude-haiku-4-5-20251001"
	case ProviderGemini:
		return "gemini-2.5-flash"
	}
	return ""
}

// APIKeyEnv returns the environment variable conventionally holding the provider key
func (p Provider) APIKeyEnv() string {
	switch p {
	case ProviderOpenAI:
		return "OPENAI_API_KEY"
	case ProviderHuggingFace:
		return "HF_API_KEY"
	case ProviderAnthropic:
		return "ANTHROPIC_API_KEY"
	case ProviderGemini:
		return "GEMINI_API_KEY"
	}
	return ""
}

// Init fills defaults
func (c *Config) Init() {
	if c.Model == "" {
		c.Model = c.Provider.DefaultModel()
	}
}

// Validate checks the configuration
func (c *Config) Validate() error {
	switch c.Provider {
	case ProviderOpenAI, ProviderHuggingFace, ProviderAnthropic, ProviderGemini:
	case "":
		return fmt.Errorf("provider is required")
	default:
		return fmt.Errorf("unsupported provider: %s", c.Provider)
	}
	if c.APIKey == "" {
		return fmt.Errorf("%s api key not found, please set the %s environment variable", c.Provider, c.Provider.APIKeyEnv())
	}
	if c.Timeout < 0 {
		return fmt.Errorf("timeout must not be negative")
	}
	return nil
}
