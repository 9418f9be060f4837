package testgen

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"
)

const (
	javaExt        = ".java"
	testFileSuffix = "Test.java"
)

var classFilePattern = regexp.MustCompile(`[A-Z][a-zA-Z0-9]*\.java$`)

// OutputPath maps a source file under srcDir to its test file under testDir: src/pkg/Foo.java -> test/pkg/FooTest.java
func OutputPath(sourceFile, srcDir, testDir string) (string, error) {
	rel, err := filepath.Rel(srcDir, sourceFile)
	if err != nil {
		return "", fmt.Errorf("failed to resolve %v relative to %v: %w", sourceFile, srcDir, err)
	}
	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%v is outside of %v", sourceFile, srcDir)
	}
	rel = strings.TrimSuffix(rel, filepath.Ext(rel))
	return filepath.Join(testDir, rel) + testFileSuffix, nil
}

// IsTestFile returns true for files named like a test
func IsTestFile(name string) bool {
	return strings.HasSuffix(filepath.Base(name), testFileSuffix)
}

// IsClassFile returns true for file names that look like a Java class, package-info.java and module-info.java do not
func IsClassFile(name string) bool {
	return classFilePattern.MatchString(filepath.Base(name))
}

// LooksLikeInterface reports whether "interface" occurs in the lower-cased source before the first
// occurrence of className. className is matched as given, so a name with upper case letters is
// never found and the whole source is searched.
func LooksLikeInterface(source, className string) bool {
	before, _, _ := strings.Cut(strings.ToLower(source), className)
	return strings.Contains(before, "interface")
}
