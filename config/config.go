// Package config loads junitgen settings from a YAML file, a .env file and the process environment.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/viant/afs"
	"github.com/viant/junitgen/llm"
	"gopkg.in/yaml.v3"
)

// DefaultEnvFile is loaded when no env file is configured
const DefaultEnvFile = ".env"

// Config holds everything a junitgen run needs
type Config struct {
	LLM                  llm.Config  `yaml:"llm"`
	ClassOptions         llm.Options `yaml:"classOptions,omitempty"`
	MethodOptions        llm.Options `yaml:"methodOptions,omitempty"`
	SourceDir            string      `yaml:"sourceDir,omitempty"`
	TestDir              string      `yaml:"testDir,omitempty"`
	File                 string      `yaml:"file,omitempty"` // single file relative to SourceDir
	SkipExisting         bool        `yaml:"skipExisting,omitempty"`
	SkipUnchanged        bool        `yaml:"skipUnchanged,omitempty"`
	LegacyInterfaceCheck bool        `yaml:"legacyInterfaceCheck,omitempty"`
	ExcludePrivate       bool        `yaml:"excludePrivate,omitempty"`
	Manifest             string      `yaml:"manifest,omitempty"` // defaults to <TestDir>/.junitgen.yaml
	EnvFile              string      `yaml:"envFile,omitempty"`
}

// Load reads the optional YAML file at URL, then the env file, then picks the
// API key of the configured provider from the environment when none is set.
// An empty URL skips the YAML step.
func Load(ctx context.Context, URL string) (*Config, error) {
	ret := &Config{}
	if URL != "" {
		data, err := afs.New().DownloadWithURL(ctx, URL)
		if err != nil {
			return nil, fmt.Errorf("failed to read config %v: %w", URL, err)
		}
		if err = yaml.Unmarshal(data, ret); err != nil {
			return nil, fmt.Errorf("failed to decode config %v: %w", URL, err)
		}
	}
	if err := ret.loadEnv(); err != nil {
		return nil, err
	}
	return ret, nil
}

func (c *Config) loadEnv() error {
	envFile := c.EnvFile
	if envFile == "" {
		envFile = DefaultEnvFile
	}
	if err := godotenv.Load(envFile); err != nil {
		if c.EnvFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to load env file %v: %w", envFile, err)
		}
	}
	return nil
}

// Init fills defaults, provider is used when none was configured
func (c *Config) Init(provider llm.Provider) {
	if c.LLM.Provider == "" {
		c.LLM.Provider = provider
	}
	if c.LLM.APIKey == "" {
		if name := c.LLM.Provider.APIKeyEnv(); name != "" {
			c.LLM.APIKey = os.Getenv(name)
		}
	}
	c.LLM.Init()
	c.ClassOptions = c.ClassOptions.WithDefaults(llm.ClassOptions())
	c.MethodOptions = c.MethodOptions.WithDefaults(llm.MethodOptions())
}

// SetModel overrides the model for every flow
func (c *Config) SetModel(model string) {
	if model == "" {
		return
	}
	c.LLM.Model = model
	c.ClassOptions.Model = model
	c.MethodOptions.Model = model
}

// Validate checks the configuration, it runs once before any client is created
func (c *Config) Validate() error {
	if err := c.LLM.Validate(); err != nil {
		return err
	}
	for name, options := range map[string]llm.Options{"classOptions": c.ClassOptions, "methodOptions": c.MethodOptions} {
		if options.MaxTokens <= 0 {
			return fmt.Errorf("%s.maxTokens must be positive", name)
		}
		if options.Temperature < 0 || options.Temperature > 2 {
			return fmt.Errorf("%s.temperature must be between 0 and 2", name)
		}
		if options.TopP < 0 || options.TopP > 1 {
			return fmt.Errorf("%s.topP must be between 0 and 1", name)
		}
	}
	return nil
}

// ValidateTree checks the settings of the source tree flow
func (c *Config) ValidateTree() error {
	if c.SourceDir == "" {
		return fmt.Errorf("source directory is required")
	}
	if c.TestDir == "" {
		return fmt.Errorf("test directory is required")
	}
	return nil
}
