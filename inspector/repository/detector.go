package repository

import (
	"bufio"
	"context"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/viant/afs"
)

// Detector identifies Java project root folders
type Detector struct {
	fs afs.Service
	// build descriptor marker files, in priority order
	markers []string
}

// New creates a new project detector instance
func New() *Detector {
	return &Detector{
		fs: afs.New(),
		markers: []string{
			"pom.xml",             // Maven
			"build.gradle",        // Gradle
			"build.gradle.kts",    // Gradle Kotlin DSL
			"settings.gradle",     // Gradle multi project
			"settings.gradle.kts", // Gradle multi project, Kotlin DSL
		},
	}
}

// DetectProject identifies the project root for the given path, a path outside any
// Maven or Gradle project yields a project rooted at the path itself
func (d *Detector) DetectProject(ctx context.Context, location string) (*Project, error) {
	absPath, err := filepath.Abs(location)
	if err != nil {
		return nil, err
	}
	startDir := absPath
	fileInfo, err := os.Stat(absPath)
	if err != nil {
		return nil, err
	}
	if !fileInfo.IsDir() {
		startDir = filepath.Dir(absPath)
	}

	project := &Project{Build: BuildNone, RootPath: startDir, Name: filepath.Base(startDir)}
	rootPath, marker := d.findProjectRoot(startDir)
	if rootPath != "" {
		project.RootPath = rootPath
		project.Build = buildOf(marker)
		project.Name = d.extractProjectName(ctx, rootPath, marker)
	}
	if gitRoot := findGitRoot(project.RootPath); gitRoot != "" {
		project.Origin = extractGitOrigin(gitRoot)
	}
	return project, nil
}

// findProjectRoot searches up from startDir for a build descriptor
func (d *Detector) findProjectRoot(startDir string) (string, string) {
	dir := startDir
	for {
		for _, marker := range d.markers {
			if _, err := os.Stat(filepath.Join(dir, marker)); err == nil {
				return dir, marker
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", ""
}

// findGitRoot finds the root of the git repository containing the given directory
func findGitRoot(startDir string) string {
	dir := startDir
	homeDir := os.Getenv("HOME")
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return dir
		}
		parent := filepath.Dir(dir)
		if parent == dir || parent == homeDir {
			return ""
		}
		dir = parent
	}
}

// extractGitOrigin extracts the origin URL from git config
func extractGitOrigin(gitRoot string) string {
	file, err := os.Open(filepath.Join(gitRoot, ".git", "config"))
	if err != nil {
		return ""
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	foundRemote := false
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, "[") {
			foundRemote = line == `[remote "origin"]`
			continue
		}
		if foundRemote && strings.HasPrefix(line, "url = ") {
			return strings.TrimPrefix(line, "url = ")
		}
	}
	return ""
}

var gradleNameRegex = regexp.MustCompile(`(?:rootProject|project)\.name\s*=\s*['"]([^'"]+)['"]`)

// extractProjectName reads the project name from the build descriptor, falling back to the folder name
func (d *Detector) extractProjectName(ctx context.Context, rootPath, marker string) string {
	fallback := filepath.Base(rootPath)
	switch buildOf(marker) {
	case BuildMaven:
		data, err := d.fs.DownloadWithURL(ctx, filepath.Join(rootPath, marker))
		if err != nil {
			return fallback
		}
		if pom, err := ParsePom(data); err == nil && pom.ProjectName() != "" {
			return strings.TrimSpace(pom.ProjectName())
		}
	case BuildGradle:
		for _, candidate := range []string{"settings.gradle", "settings.gradle.kts", marker} {
			data, err := d.fs.DownloadWithURL(ctx, filepath.Join(rootPath, candidate))
			if err != nil {
				continue
			}
			if matches := gradleNameRegex.FindSubmatch(data); len(matches) == 2 {
				return string(matches[1])
			}
		}
	}
	return fallback
}

// buildOf identifies the build tool based on the marker file
func buildOf(marker string) Build {
	switch {
	case marker == "pom.xml":
		return BuildMaven
	case strings.Contains(marker, ".gradle"):
		return BuildGradle
	}
	return BuildNone
}
