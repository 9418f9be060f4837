// Package testgen walks a Java source tree and writes a generated JUnit test for every class it finds.
package testgen

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"github.com/viant/junitgen/config"
	"github.com/viant/junitgen/generator"
	"github.com/viant/junitgen/inspector/info"
	"github.com/viant/junitgen/inspector/java"
	"github.com/viant/junitgen/inspector/repository"
	"github.com/viant/junitgen/manifest"
	"go.uber.org/zap"
)

// Skip reasons
const (
	SkipTestFile   = "test file"
	SkipNotClass   = "not a class file"
	SkipExisting   = "test already exists"
	SkipUnchanged  = "source unchanged"
	SkipParseError = "parse error"
	SkipNoClass    = "no class found"
	SkipInterface  = "interface"
)

// Summary counts the outcome of a run
type Summary struct {
	Found        int            // candidate source files
	Processed    int            // test files written
	Placeholders int            // written test files holding a placeholder
	Skipped      map[string]int // skipped files by reason
	Outputs      []string       // written test files
}

func (s *Summary) skip(reason string) {
	s.Skipped[reason]++
}

// SkippedTotal returns the number of skipped files
func (s *Summary) SkippedTotal() int {
	total := 0
	for _, count := range s.Skipped {
		total += count
	}
	return total
}

// Service generates tests for a source tree, one file at a time
type Service struct {
	config    *config.Config
	generator *generator.Generator
	inspector *java.Inspector
	fs        afs.Service
	logger    *zap.Logger
}

// Option configures a Service
type Option func(*Service)

// WithLogger sets the logger
func WithLogger(logger *zap.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithFS sets the file system used for reading sources and writing tests
func WithFS(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// New creates a Service
func New(cfg *config.Config, gen *generator.Generator, opts ...Option) (*Service, error) {
	if err := cfg.ValidateTree(); err != nil {
		return nil, err
	}
	ret := &Service{
		config:    cfg,
		generator: gen,
		inspector: java.NewInspector(&info.Config{IncludePrivate: !cfg.ExcludePrivate}),
		fs:        afs.New(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(ret)
	}
	return ret, nil
}

// Run processes every candidate file. Per-file generation failures end up as placeholders,
// only read, write and enumeration errors stop the run.
func (s *Service) Run(ctx context.Context) (*Summary, error) {
	summary := &Summary{Skipped: map[string]int{}}
	sources, err := s.sources(ctx)
	if err != nil {
		return nil, err
	}
	summary.Found = len(sources)
	s.logger.Info("found java files", zap.Int("count", len(sources)), zap.String("src", s.config.SourceDir))

	var aManifest *manifest.Manifest
	if s.config.SkipUnchanged {
		if aManifest, err = manifest.Load(ctx, s.fs, s.manifestURL()); err != nil {
			return nil, err
		}
	}
	for _, source := range sources {
		if err = ctx.Err(); err != nil {
			break
		}
		if err = s.process(ctx, source, aManifest, summary); err != nil {
			break
		}
	}
	if aManifest != nil {
		if saveErr := aManifest.Save(ctx); saveErr != nil && err == nil {
			err = saveErr
		}
	}
	if err != nil {
		return summary, err
	}
	s.logger.Info("test generation completed",
		zap.Int("processed", summary.Processed),
		zap.Int("placeholders", summary.Placeholders),
		zap.Int("skipped", summary.SkippedTotal()))
	return summary, nil
}

func (s *Service) sources(ctx context.Context) ([]string, error) {
	if s.config.File != "" {
		return []string{filepath.Join(s.config.SourceDir, s.config.File)}, nil
	}
	return repository.Sources(ctx, s.fs, s.config.SourceDir)
}

func (s *Service) manifestURL() string {
	if s.config.Manifest != "" {
		return s.config.Manifest
	}
	return filepath.Join(s.config.TestDir, manifest.Filename)
}

func (s *Service) process(ctx context.Context, source string, aManifest *manifest.Manifest, summary *Summary) error {
	if IsTestFile(source) {
		summary.skip(SkipTestFile)
		return nil
	}
	if !IsClassFile(source) {
		summary.skip(SkipNotClass)
		return nil
	}
	logger := s.logger.With(zap.String("file", source))
	logger.Info("processing")

	output, err := OutputPath(source, s.config.SourceDir, s.config.TestDir)
	if err != nil {
		return err
	}
	if s.config.SkipExisting {
		exists, err := s.fs.Exists(ctx, output)
		if err != nil {
			return fmt.Errorf("failed to check %v: %w", output, err)
		}
		if exists {
			logger.Info("test already exists, skipping", zap.String("output", output))
			summary.skip(SkipExisting)
			return nil
		}
	}

	src, err := s.fs.DownloadWithURL(ctx, source)
	if err != nil {
		return fmt.Errorf("failed to read %v: %w", source, err)
	}
	key := relative(s.config.SourceDir, source)
	var hash string
	if aManifest != nil {
		if hash, err = manifest.Hash(src); err != nil {
			return err
		}
		if aManifest.Unchanged(key, hash) {
			exists, err := s.fs.Exists(ctx, output)
			if err != nil {
				return fmt.Errorf("failed to check %v: %w", output, err)
			}
			if exists {
				logger.Info("source unchanged, skipping")
				summary.skip(SkipUnchanged)
				return nil
			}
			logger.Info("source unchanged but test is missing, regenerating", zap.String("output", output))
		}
	}

	aFile := s.inspector.InspectSource(src, source)
	if aFile.ParseError != "" {
		logger.Warn("failed to parse, skipping", zap.String("error", aFile.ParseError))
		summary.skip(SkipParseError)
		return nil
	}
	if !aFile.HasClass() {
		logger.Info("no class found, skipping")
		summary.skip(SkipNoClass)
		return nil
	}
	if s.isInterface(aFile) {
		logger.Info("skipping interface", zap.String("class", aFile.Class.Name))
		summary.skip(SkipInterface)
		return nil
	}

	logger.Info("generating test", zap.String("class", aFile.Class.Name))
	result := s.generator.TestClass(ctx, aFile)
	if err = s.write(ctx, output, result.Code); err != nil {
		return err
	}
	logger.Info("test file saved", zap.String("output", output), zap.Bool("placeholder", result.Placeholder))
	summary.Processed++
	summary.Outputs = append(summary.Outputs, output)
	if result.Placeholder {
		summary.Placeholders++
	}
	if aManifest != nil {
		aManifest.Record(key, &manifest.Entry{Hash: hash, Output: relative(s.config.TestDir, output), Placeholder: result.Placeholder})
	}
	return nil
}

func (s *Service) isInterface(aFile *info.File) bool {
	if s.config.LegacyInterfaceCheck {
		return LooksLikeInterface(aFile.Source, aFile.Class.Name)
	}
	return aFile.FirstDeclaration().IsInterface()
}

// relative returns location relative to root in slash form, or location itself when outside root
func relative(root, location string) string {
	if rel, err := filepath.Rel(root, location); err == nil && !strings.HasPrefix(rel, "..") {
		return filepath.ToSlash(rel)
	}
	return filepath.ToSlash(location)
}

// write stores code at location, creating parent folders as needed
func (s *Service) write(ctx context.Context, location, code string) error {
	parent := filepath.Dir(location)
	exists, err := s.fs.Exists(ctx, parent)
	if err != nil {
		return fmt.Errorf("failed to check %v: %w", parent, err)
	}
	if !exists {
		if err = s.fs.Create(ctx, parent, file.DefaultDirOsMode, true); err != nil {
			return fmt.Errorf("failed to create %v: %w", parent, err)
		}
	}
	if err = s.fs.Upload(ctx, location, file.DefaultFileOsMode, strings.NewReader(code)); err != nil {
		return fmt.Errorf("failed to write %v: %w", location, err)
	}
	return nil
}
