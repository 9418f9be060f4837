package repository

import "path/filepath"

// Build identifies the build tool of a Java project
type Build string

const (
	BuildMaven  Build = "maven"
	BuildGradle Build = "gradle"
	BuildNone   Build = "none"
)

const (
	// MainSourceDir is the conventional source folder relative to the project root
	MainSourceDir = "src/main/java"
	// TestSourceDir is the conventional test folder relative to the project root
	TestSourceDir = "src/test/java"
)

// Project represents information about a detected Java project
type Project struct {
	RootPath string // Absolute path to the project root directory
	Build    Build  // Build tool owning the root
	Name     string // Name of the project (extracted from build descriptors)
	Origin   string // git origin URL, when the project lives in a git repository
}

// SourceDir returns the main source folder of the project
func (p *Project) SourceDir() string {
	return filepath.Join(p.RootPath, filepath.FromSlash(MainSourceDir))
}

// TestDir returns the test source folder of the project
func (p *Project) TestDir() string {
	return filepath.Join(p.RootPath, filepath.FromSlash(TestSourceDir))
}
