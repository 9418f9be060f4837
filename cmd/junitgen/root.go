package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/junitgen/config"
	"github.com/viant/junitgen/generator"
	"github.com/viant/junitgen/inspector/repository"
	"github.com/viant/junitgen/llm"
	"github.com/viant/junitgen/testgen"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	exampleMethod = "public int add(int a, int b) { return a + b; }"
	exampleClass  = "Calculator"
)

type app struct {
	configURL string
	verbose   bool
	provider  string
	model     string
	logger    *zap.Logger
	fs        afs.Service
}

func newRootCommand() *cobra.Command {
	a := &app{logger: zap.NewNop(), fs: afs.New()}
	root := &cobra.Command{
		Use:           "junitgen",
		Short:         "Generate JUnit 5 tests for Java sources",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loggerConfig := zap.NewProductionConfig()
			loggerConfig.Encoding = "console"
			if a.verbose {
				loggerConfig.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
			}
			logger, err := loggerConfig.Build()
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	root.PersistentFlags().StringVarP(&a.configURL, "config", "c", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable verbose logging")
	root.PersistentFlags().StringVar(&a.provider, "provider", "", "Text generation provider: openai, huggingface, anthropic, gemini")
	root.PersistentFlags().StringVar(&a.model, "model", "", "Model to use, defaults to the provider's model")
	root.AddCommand(a.generateCommand(), a.methodCommand(), a.classCommand())
	return root
}

// loadConfig reads the configuration once and validates it, defaultProvider applies when none is configured
func (a *app) loadConfig(ctx context.Context, defaultProvider llm.Provider) (*config.Config, error) {
	cfg, err := config.Load(ctx, a.configURL)
	if err != nil {
		return nil, err
	}
	if a.provider != "" {
		cfg.LLM.Provider = llm.Provider(a.provider)
	}
	cfg.Init(defaultProvider)
	cfg.SetModel(a.model)
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *app) newGenerator(ctx context.Context, cfg *config.Config) (*generator.Generator, error) {
	client, err := llm.New(ctx, cfg.LLM)
	if err != nil {
		return nil, err
	}
	return generator.New(client,
		generator.WithLogger(a.logger),
		generator.WithClassOptions(cfg.ClassOptions),
		generator.WithMethodOptions(cfg.MethodOptions)), nil
}

func (a *app) generateCommand() *cobra.Command {
	var src, test, single string
	var skipExisting, skipUnchanged, legacy, noPriv bool
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a test class for every Java class under a source tree",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := a.loadConfig(ctx, llm.ProviderOpenAI)
			if err != nil {
				return err
			}
			if src != "" {
				cfg.SourceDir = src
			}
			if test != "" {
				cfg.TestDir = test
			}
			if single != "" {
				cfg.File = single
			}
			cfg.SkipExisting = cfg.SkipExisting || skipExisting
			cfg.SkipUnchanged = cfg.SkipUnchanged || skipUnchanged
			cfg.LegacyInterfaceCheck = cfg.LegacyInterfaceCheck || legacy
			cfg.ExcludePrivate = cfg.ExcludePrivate || noPriv
			if err = a.detectDirectories(ctx, cfg); err != nil {
				return err
			}
			gen, err := a.newGenerator(ctx, cfg)
			if err != nil {
				return err
			}
			service, err := testgen.New(cfg, gen, testgen.WithLogger(a.logger))
			if err != nil {
				return err
			}
			summary, err := service.Run(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Test generation completed: %d written (%d placeholders), %d skipped of %d files\n",
				summary.Processed, summary.Placeholders, summary.SkippedTotal(), summary.Found)
			return nil
		},
	}
	flags := cmd.Flags()
	flags.StringVar(&src, "src", "", "Source directory containing Java files, defaults to the project's src/main/java")
	flags.StringVar(&test, "test", "", "Output directory for test files, defaults to the project's src/test/java")
	flags.StringVar(&single, "file", "", "Process a specific Java file only (relative to src)")
	flags.BoolVar(&skipExisting, "skip-existing", false, "Skip files that already have tests")
	flags.BoolVar(&skipUnchanged, "skip-unchanged", false, "Skip files unchanged since their last generation")
	flags.BoolVar(&legacy, "legacy-interface-check", false, "Detect interfaces with the source text heuristic")
	flags.BoolVar(&noPriv, "exclude-private", false, "Leave private members out of prompts")
	return cmd
}

// detectDirectories fills missing source and test folders from the enclosing Maven or Gradle project
func (a *app) detectDirectories(ctx context.Context, cfg *config.Config) error {
	if cfg.SourceDir != "" && cfg.TestDir != "" {
		return nil
	}
	location := "."
	if cfg.SourceDir != "" {
		location = cfg.SourceDir
	}
	project, err := repository.New().DetectProject(ctx, location)
	if err != nil {
		return fmt.Errorf("failed to detect project: %w", err)
	}
	if project.Build == repository.BuildNone {
		return cfg.ValidateTree()
	}
	a.logger.Info("detected project", zap.String("name", project.Name), zap.String("build", string(project.Build)), zap.String("root", project.RootPath))
	if cfg.SourceDir == "" {
		cfg.SourceDir = project.SourceDir()
	}
	if cfg.TestDir == "" {
		cfg.TestDir = project.TestDir()
	}
	return nil
}

func (a *app) methodCommand() *cobra.Command {
	var signature, className, output string
	cmd := &cobra.Command{
		Use:   "method",
		Short: "Generate a single test method for a method signature",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := a.loadConfig(ctx, llm.ProviderHuggingFace)
			if err != nil {
				return err
			}
			gen, err := a.newGenerator(ctx, cfg)
			if err != nil {
				return err
			}
			if signature == "" || className == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "No method signature provided. Here's an example:")
				signature, className, output = exampleMethod, exampleClass, ""
			}
			result := gen.TestMethod(ctx, signature, className)
			return a.emit(cmd, output, result.Code, "Test method")
		},
	}
	cmd.Flags().StringVar(&signature, "method", "", "Java method signature to generate a test for")
	cmd.Flags().StringVar(&className, "class-name", "", "Class name for the method")
	cmd.Flags().StringVar(&output, "output", "", "Output file path, prints to stdout when empty")
	return cmd
}

func (a *app) classCommand() *cobra.Command {
	var packageName, className, output string
	cmd := &cobra.Command{
		Use:   "class",
		Short: "Generate a test class from a package and class name",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg, err := a.loadConfig(ctx, llm.ProviderHuggingFace)
			if err != nil {
				return err
			}
			gen, err := a.newGenerator(ctx, cfg)
			if err != nil {
				return err
			}
			result := gen.TestSkeleton(ctx, packageName, className)
			return a.emit(cmd, output, result.Code, "Test class")
		},
	}
	cmd.Flags().StringVar(&packageName, "package", "", "Package of the class under test")
	cmd.Flags().StringVar(&className, "class-name", "", "Class under test")
	cmd.Flags().StringVar(&output, "output", "", "Output file path, prints to stdout when empty")
	_ = cmd.MarkFlagRequired("package")
	_ = cmd.MarkFlagRequired("class-name")
	return cmd
}

// emit prints code or saves it to output
func (a *app) emit(cmd *cobra.Command, output, code, label string) error {
	if output == "" {
		fmt.Fprintln(cmd.OutOrStdout(), code)
		return nil
	}
	ctx := cmd.Context()
	if parent := filepath.Dir(output); parent != "." {
		exists, err := a.fs.Exists(ctx, parent)
		if err != nil {
			return fmt.Errorf("failed to check %v: %w", parent, err)
		}
		if !exists {
			if err = a.fs.Create(ctx, parent, file.DefaultDirOsMode, true); err != nil {
				return fmt.Errorf("failed to create %v: %w", parent, err)
			}
		}
	}
	if err := a.fs.Upload(ctx, output, file.DefaultFileOsMode, strings.NewReader(code)); err != nil {
		return fmt.Errorf("failed to write %v: %w", output, err)
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s saved to %s\n", label, output)
	return nil
}
