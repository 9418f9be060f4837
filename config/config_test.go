package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/junitgen/llm"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	location := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	return location
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	envFile := writeFile(t, dir, "junitgen.env", "ANTHROPIC_API_KEY=from-env-file\n")
	location := writeFile(t, dir, "junitgen.yaml", `
llm:
  provider: anthropic
  timeout: 30s
sourceDir: src/main/java
testDir: src/test/java
skipExisting: true
classOptions:
  model: claude-sonnet-4-5
envFile: `+envFile+`
`)
	t.Setenv("ANTHROPIC_API_KEY", "")
	require.NoError(t, os.Unsetenv("ANTHROPIC_API_KEY"))

	cfg, err := Load(context.Background(), location)
	require.NoError(t, err)
	cfg.Init(llm.ProviderOpenAI)

	assert.Equal(t, llm.ProviderAnthropic, cfg.LLM.Provider)
	assert.Equal(t, "from-env-file", cfg.LLM.APIKey)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, llm.ProviderAnthropic.DefaultModel(), cfg.LLM.Model)
	assert.Equal(t, "src/main/java", cfg.SourceDir)
	assert.True(t, cfg.SkipExisting)
	assert.Equal(t, "claude-sonnet-4-5", cfg.ClassOptions.Model)
	assert.Equal(t, llm.ClassMaxTokens, cfg.ClassOptions.MaxTokens)
	assert.Equal(t, llm.MethodOptions(), cfg.MethodOptions)
	assert.NoError(t, cfg.Validate())
	assert.NoError(t, cfg.ValidateTree())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()
	_, err := Load(context.Background(), filepath.Join(dir, "missing.yaml"))
	assert.Error(t, err)

	location := writeFile(t, dir, "bad.yaml", "llm: [")
	_, err = Load(context.Background(), location)
	assert.Error(t, err)

	location = writeFile(t, dir, "env.yaml", "envFile: "+filepath.Join(dir, "absent.env"))
	_, err = Load(context.Background(), location)
	assert.Error(t, err, "an explicitly configured env file must exist")
}

func TestConfig_Init(t *testing.T) {
	t.Setenv("HF_API_KEY", "hf-key")
	cfg := &Config{}
	cfg.Init(llm.ProviderHuggingFace)
	assert.Equal(t, "hf-key", cfg.LLM.APIKey)
	assert.Equal(t, "bigcode/starcoder", cfg.LLM.Model)

	cfg = &Config{LLM: llm.Config{Provider: llm.ProviderHuggingFace, APIKey: "explicit"}}
	cfg.Init(llm.ProviderOpenAI)
	assert.Equal(t, "explicit", cfg.LLM.APIKey)
}

func TestLoad_PartialOptions(t *testing.T) {
	location := writeFile(t, t.TempDir(), "junitgen.yaml", `
llm:
  provider: openai
  apiKey: key
classOptions:
  maxTokens: 800
methodOptions:
  temperature: 0.7
`)
	cfg, err := Load(context.Background(), location)
	require.NoError(t, err)
	cfg.Init("")

	expectedClass := llm.ClassOptions()
	expectedClass.MaxTokens = 800
	assert.Equal(t, expectedClass, cfg.ClassOptions)
	expectedMethod := llm.MethodOptions()
	expectedMethod.Temperature = 0.7
	assert.Equal(t, expectedMethod, cfg.MethodOptions)
	assert.NoError(t, cfg.Validate())
}

func TestConfig_SetModel(t *testing.T) {
	cfg := &Config{}
	cfg.Init(llm.ProviderOpenAI)
	cfg.SetModel("gpt-4o")
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
	assert.Equal(t, "gpt-4o", cfg.ClassOptions.Model)
	assert.Equal(t, "gpt-4o", cfg.MethodOptions.Model)

	cfg.SetModel("")
	assert.Equal(t, "gpt-4o", cfg.LLM.Model)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{LLM: llm.Config{Provider: llm.ProviderOpenAI, APIKey: "key"}}
		cfg.Init("")
		return cfg
	}
	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "missing key", mutate: func(c *Config) { c.LLM.APIKey = "" }, wantErr: true},
		{name: "zero tokens", mutate: func(c *Config) { c.MethodOptions.MaxTokens = -1 }, wantErr: true},
		{name: "temperature", mutate: func(c *Config) { c.ClassOptions.Temperature = 3 }, wantErr: true},
		{name: "top p", mutate: func(c *Config) { c.ClassOptions.TopP = 1.5 }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}

	assert.Error(t, (&Config{TestDir: "t"}).ValidateTree())
	assert.Error(t, (&Config{SourceDir: "s"}).ValidateTree())
}
