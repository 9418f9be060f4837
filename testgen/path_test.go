package testgen

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutputPath(t *testing.T) {
	tests := []struct {
		name     string
		source   string
		src      string
		test     string
		expected string
	}{
		{name: "nested package", source: "src/pkg/Foo.java", src: "src", test: "test", expected: "test/pkg/FooTest.java"},
		{name: "root package", source: "src/Foo.java", src: "src", test: "out/test", expected: "out/test/FooTest.java"},
		{name: "maven layout", source: "app/src/main/java/com/acme/Order.java", src: "app/src/main/java", test: "app/src/test/java", expected: "app/src/test/java/com/acme/OrderTest.java"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actual, err := OutputPath(filepath.FromSlash(tt.source), filepath.FromSlash(tt.src), filepath.FromSlash(tt.test))
			require.NoError(t, err)
			assert.Equal(t, filepath.FromSlash(tt.expected), actual)
		})
	}

	_, err := OutputPath("/abs/Foo.java", "relative", "test")
	assert.Error(t, err)

	for _, outside := range []string{"other/Foo.java", "src/../other/Foo.java", "../Foo.java"} {
		_, err = OutputPath(filepath.FromSlash(outside), "src", "test")
		assert.Error(t, err, outside)
	}
	actual, err := OutputPath(filepath.FromSlash("src/..pkg/Foo.java"), "src", "test")
	require.NoError(t, err)
	assert.Equal(t, filepath.FromSlash("test/..pkg/FooTest.java"), actual)
}

func TestSkipPredicates(t *testing.T) {
	tests := []struct {
		fileName string
		isTest   bool
		isClass  bool
	}{
		{fileName: "src/Foo.java", isClass: true},
		{fileName: "src/FooTest.java", isTest: true, isClass: true},
		{fileName: "src/package-info.java"},
		{fileName: "src/module-info.java"},
		{fileName: "src/myClass.java", isClass: true},
		{fileName: "src/Foo.java.bak"},
	}
	for _, tt := range tests {
		t.Run(tt.fileName, func(t *testing.T) {
			assert.Equal(t, tt.isTest, IsTestFile(tt.fileName))
			assert.Equal(t, tt.isClass, IsClassFile(tt.fileName))
		})
	}
}

func TestLooksLikeInterface(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		className string
		expected  bool
	}{
		{name: "interface keyword", source: "public interface repo { }", className: "repo", expected: true},
		{name: "plain class", source: "public class service { }", className: "service"},
		{name: "mixed case name searches the whole source", source: "public class Pet implements Named { } interface Named {}", className: "Pet", expected: true},
		{name: "comment before class", source: "// wraps the interface\npublic class impl {}", className: "impl", expected: true},
		{name: "class name inside comment", source: "// implements the interface\npublic class impl {}", className: "impl"},
		{name: "mention after class", source: "class impl { /* interface */ }", className: "impl"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, LooksLikeInterface(tt.source, tt.className))
		})
	}
}
