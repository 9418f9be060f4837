package testgen

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/junitgen/config"
	"github.com/viant/junitgen/generator"
	"github.com/viant/junitgen/llm"
	"github.com/viant/junitgen/manifest"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

// scriptedClient answers with a test class named after the class in the prompt, or fails for classes listed in failures
type scriptedClient struct {
	failures map[string]error
	calls    int
}

func (c *scriptedClient) Name() string { return "scripted" }

func (c *scriptedClient) Generate(ctx context.Context, prompt string, options llm.Options) (string, error) {
	c.calls++
	name := between(prompt, "- Class Name: ", "\n")
	if err, ok := c.failures[name]; ok {
		return "", err
	}
	return fmt.Sprintf("```java\nclass %sTest {}\n```", name), nil
}

func between(text, prefix, suffix string) string {
	_, after, _ := strings.Cut(text, prefix)
	before, _, _ := strings.Cut(after, suffix)
	return before
}

var sources = map[string]string{
	"com/example/Pet.java":          "package com.example;\n\npublic class Pet {\n    private String name;\n    public String getName() { return name; }\n}\n",
	"com/example/Owner.java":        "package com.example;\n\npublic class Owner {\n    public int count() { return 0; }\n}\n",
	"com/example/PetTest.java":      "package com.example;\n\nclass PetTest {}\n",
	"com/example/package-info.java": "package com.example;\n",
	"com/example/Repository.java":   "package com.example;\n\npublic interface Repository {\n    Pet find(long id);\n}\n",
	"com/example/Status.java":       "package com.example;\n\npublic enum Status { ACTIVE, INACTIVE }\n",
	"com/example/Broken.java":       "package com.example;\n\npublic class Broken {\n    void run( {\n}\n",
	"com/example/Shapes.java":       "package com.example;\n\ninterface Shape { double area(); }\n\nclass Shapes implements Shape {\n    public double area() { return 0; }\n}\n",
	"com/example/model/Vet.java":    "package com.example.model;\n\n// the interface comes later\npublic class Vet {\n    public String specialty() { return \"\"; }\n}\n",
}

func setup(t *testing.T) (*config.Config, string, string) {
	t.Helper()
	root := t.TempDir()
	src := filepath.Join(root, "src", "main", "java")
	test := filepath.Join(root, "src", "test", "java")
	for name, content := range sources {
		location := filepath.Join(src, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(location), 0o755))
		require.NoError(t, os.WriteFile(location, []byte(content), 0o644))
	}
	return &config.Config{SourceDir: src, TestDir: test}, src, test
}

func newService(t *testing.T, cfg *config.Config, client llm.Client, opts ...Option) *Service {
	t.Helper()
	service, err := New(cfg, generator.New(client), opts...)
	require.NoError(t, err)
	return service
}

func TestService_Run(t *testing.T) {
	cfg, _, test := setup(t)
	client := &scriptedClient{failures: map[string]error{"Owner": fmt.Errorf("openai: %w", llm.ErrRateLimit)}}
	core, logs := observer.New(zapcore.InfoLevel)

	summary, err := newService(t, cfg, client, WithLogger(zap.New(core))).Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, len(sources), summary.Found)
	assert.Equal(t, 3, summary.Processed)
	assert.Equal(t, 1, summary.Placeholders)
	assert.Equal(t, map[string]int{
		SkipTestFile:   1,
		SkipNotClass:   1,
		SkipInterface:  1,
		SkipNoClass:    2,
		SkipParseError: 1,
	}, summary.Skipped)
	assert.Equal(t, 3, client.calls)

	pet, err := os.ReadFile(filepath.Join(test, "com", "example", "PetTest.java"))
	require.NoError(t, err)
	assert.Equal(t, "class PetTest {}\n", string(pet))

	owner, err := os.ReadFile(filepath.Join(test, "com", "example", "OwnerTest.java"))
	require.NoError(t, err)
	assert.Contains(t, string(owner), generator.FailureMarker)
	assert.Contains(t, string(owner), "package com.example;")
	assert.Contains(t, string(owner), "fail(")

	_, err = os.Stat(filepath.Join(test, "com", "example", "model", "VetTest.java"))
	assert.NoError(t, err, "structural check keeps classes mentioning interface in comments")
	_, err = os.Stat(filepath.Join(test, "com", "example", "RepositoryTest.java"))
	assert.True(t, os.IsNotExist(err))
	_, err = os.Stat(filepath.Join(test, manifest.Filename))
	assert.True(t, os.IsNotExist(err), "manifest is only kept with skip unchanged")

	assert.Equal(t, 1, logs.FilterMessage("test generation completed").Len())
	assert.Equal(t, 1, logs.FilterMessage("failed to parse, skipping").Len())
}

func TestService_Run_LegacyInterfaceCheck(t *testing.T) {
	cfg, _, _ := setup(t)
	cfg.LegacyInterfaceCheck = true
	summary, err := newService(t, cfg, &scriptedClient{}).Run(context.Background())
	require.NoError(t, err)
	// Vet mentions "interface" in a comment, Shapes declares one before the class
	assert.Equal(t, 2, summary.Skipped[SkipInterface])
	assert.Equal(t, 2, summary.Processed)
}

func TestService_Run_SingleFile(t *testing.T) {
	cfg, _, test := setup(t)
	cfg.File = filepath.Join("com", "example", "model", "Vet.java")
	client := &scriptedClient{}
	summary, err := newService(t, cfg, client).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Found)
	assert.Equal(t, []string{filepath.Join(test, "com", "example", "model", "VetTest.java")}, summary.Outputs)
	assert.Equal(t, 1, client.calls)

	cfg.File = "Missing.java"
	_, err = newService(t, cfg, client).Run(context.Background())
	assert.Error(t, err, "read failures are fatal")

	cfg.File = filepath.Join("..", "other", "Pet.java")
	client.calls = 0
	_, err = newService(t, cfg, client).Run(context.Background())
	assert.Error(t, err, "files outside the source tree are rejected")
	assert.Zero(t, client.calls)
}

func TestService_Run_SkipExisting(t *testing.T) {
	cfg, _, test := setup(t)
	cfg.SkipExisting = true
	existing := filepath.Join(test, "com", "example", "PetTest.java")
	require.NoError(t, os.MkdirAll(filepath.Dir(existing), 0o755))
	require.NoError(t, os.WriteFile(existing, []byte("// hand written"), 0o644))

	client := &scriptedClient{}
	summary, err := newService(t, cfg, client).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped[SkipExisting])
	assert.Equal(t, 2, client.calls)

	content, err := os.ReadFile(existing)
	require.NoError(t, err)
	assert.Equal(t, "// hand written", string(content))
}

func TestService_Run_SkipUnchanged(t *testing.T) {
	cfg, src, test := setup(t)
	cfg.SkipUnchanged = true
	client := &scriptedClient{failures: map[string]error{"Owner": fmt.Errorf("openai: %w", llm.ErrNetwork)}}

	_, err := newService(t, cfg, client).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, client.calls)
	_, err = os.Stat(filepath.Join(test, manifest.Filename))
	require.NoError(t, err)

	client.calls = 0
	summary, err := newService(t, cfg, client).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, summary.Skipped[SkipUnchanged])
	assert.Equal(t, 1, client.calls, "placeholder output is regenerated")

	pet := filepath.Join(src, "com", "example", "Pet.java")
	require.NoError(t, os.WriteFile(pet, []byte(sources["com/example/Pet.java"]+"// changed\n"), 0o644))
	client.calls = 0
	summary, err = newService(t, cfg, client).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped[SkipUnchanged])
	assert.Equal(t, 2, client.calls)

	vetTest := filepath.Join(test, "com", "example", "model", "VetTest.java")
	require.NoError(t, os.Remove(vetTest))
	client.calls = 0
	summary, err = newService(t, cfg, client).Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, summary.Skipped[SkipUnchanged], "only Pet is left unchanged with its test in place")
	assert.Equal(t, 2, client.calls, "the deleted test and the placeholder are regenerated")
	_, err = os.Stat(vetTest)
	assert.NoError(t, err)
}

func TestService_Run_Cancelled(t *testing.T) {
	cfg, _, _ := setup(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	client := &scriptedClient{}
	_, err := newService(t, cfg, client).Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, client.calls)
}

func TestNew_RequiresDirectories(t *testing.T) {
	_, err := New(&config.Config{SourceDir: "src"}, generator.New(&scriptedClient{}))
	assert.Error(t, err)
}
