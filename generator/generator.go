// Package generator turns prompts into JUnit test code.
//
// Remote failures never reach the caller: they are logged and replaced with a
// placeholder test that compiles and fails, so the output can always be written.
package generator

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/viant/junitgen/inspector/info"
	"github.com/viant/junitgen/llm"
	"github.com/viant/junitgen/prompt"
	"go.uber.org/zap"
)

var (
	// ErrMalformedResponse is reported when model output lacks the expected delimiter
	ErrMalformedResponse = errors.New("malformed response: missing \"{\"")
	// ErrNoClass is reported when the analyzed file has no usable class
	ErrNoClass = errors.New("no class found")
)

// Result is the outcome of a generation
type Result struct {
	Code        string // generated or placeholder code, never empty
	Err         error  // cause when Placeholder is set
	Placeholder bool
}

// Generator generates tests with a text generation client
type Generator struct {
	client        llm.Client
	logger        *zap.Logger
	classOptions  llm.Options
	methodOptions llm.Options
}

// Option configures a Generator
type Option func(*Generator)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithClassOptions overrides the options used for test class generation
func WithClassOptions(options llm.Options) Option {
	return func(g *Generator) {
		g.classOptions = options
	}
}

// WithMethodOptions overrides the options used for test method generation
func WithMethodOptions(options llm.Options) Option {
	return func(g *Generator) {
		g.methodOptions = options
	}
}

// New creates a Generator
func New(client llm.Client, opts ...Option) *Generator {
	ret := &Generator{
		client:        client,
		logger:        zap.NewNop(),
		classOptions:  llm.ClassOptions(),
		methodOptions: llm.MethodOptions(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret
}

// TestClass generates a complete test class for an analyzed file using the chat prompt
func (g *Generator) TestClass(ctx context.Context, aFile *info.File) *Result {
	if !aFile.HasClass() {
		cause := ErrNoClass
		reason := "Unknown error"
		if aFile != nil && aFile.ParseError != "" {
			cause = fmt.Errorf("%w: %s", ErrNoClass, aFile.ParseError)
			reason = aFile.ParseError
		}
		return &Result{
			Code:        "// Could not generate tests due to parsing error: " + reason,
			Err:         cause,
			Placeholder: true,
		}
	}
	packageName := aFile.Package
	if packageName == info.UnknownPackage {
		packageName = ""
	}
	className := aFile.Class.Name

	text, err := g.generate(ctx, prompt.TestClass(aFile), g.classOptions)
	if err != nil {
		return g.classPlaceholder(packageName, className, err)
	}
	return &Result{Code: StripFences(text)}
}

// TestMethod generates a single test method for a method signature using the completion prompt
func (g *Generator) TestMethod(ctx context.Context, signature, className string) *Result {
	text, err := g.generate(ctx, prompt.TestMethod(signature, className), g.methodOptions)
	if err != nil {
		return g.methodPlaceholder(signature, className, err)
	}
	extraction := ExtractBody(text)
	if extraction.Malformed {
		return g.methodPlaceholder(signature, className, ErrMalformedResponse)
	}
	body := strings.TrimRight(strings.TrimLeft(extraction.Body, "\n"), " \t\n")
	return &Result{Code: prompt.TestMethodHeader(signature) + body + "\n}"}
}

// TestSkeleton continues a test class skeleton for packageName.className using the completion prompt
func (g *Generator) TestSkeleton(ctx context.Context, packageName, className string) *Result {
	text, err := g.generate(ctx, prompt.TestSkeleton(packageName, className), g.classOptions)
	if err != nil {
		return g.classPlaceholder(packageName, className, err)
	}
	extraction := ExtractTail(text)
	if extraction.Malformed {
		return g.classPlaceholder(packageName, className, ErrMalformedResponse)
	}
	return &Result{Code: closeBlock(prompt.TestClassHeader(packageName, className) + extraction.Body)}
}

// generate calls the client, a panicking client is reported as a remote failure
func (g *Generator) generate(ctx context.Context, text string, options llm.Options) (output string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", llm.ErrRemote, r)
		}
	}()
	return g.client.Generate(ctx, text, options)
}

func (g *Generator) classPlaceholder(packageName, className string, err error) *Result {
	g.logger.Warn("failed to generate test class",
		zap.String("provider", g.client.Name()),
		zap.String("class", className),
		zap.Error(err))
	return &Result{Code: ClassPlaceholder(packageName, className, err), Err: err, Placeholder: true}
}

func (g *Generator) methodPlaceholder(signature, className string, err error) *Result {
	g.logger.Warn("failed to generate test method",
		zap.String("provider", g.client.Name()),
		zap.String("class", className),
		zap.String("signature", signature),
		zap.Error(err))
	return &Result{Code: MethodPlaceholder(signature, err), Err: err, Placeholder: true}
}
