package generator

import (
	"fmt"
	"strings"

	"github.com/viant/junitgen/prompt"
)

// FailureMarker starts every comment embedded in placeholder output
const FailureMarker = "Error generating test"

// MethodPlaceholder returns a failing test method stub for signature
func MethodPlaceholder(signature string, cause error) string {
	var b strings.Builder
	fmt.Fprintf(&b, "// %s: %s\n", FailureMarker, describe(cause))
	b.WriteString(prompt.TestMethodHeader(signature))
	b.WriteString("    // TODO: Implement test\n")
	b.WriteString("    fail(\"Test generation failed\");\n")
	b.WriteString("}")
	return b.String()
}

// ClassPlaceholder returns a compilable test class whose only test fails
func ClassPlaceholder(packageName, className string, cause error) string {
	var b strings.Builder
	if packageName != "" {
		fmt.Fprintf(&b, "package %s;\n\n", packageName)
	}
	b.WriteString(strings.Join(prompt.Imports, "\n"))
	b.WriteString("\n\n/**\n")
	fmt.Fprintf(&b, " * %s: %s\n", FailureMarker, describe(cause))
	b.WriteString(" */\n")
	fmt.Fprintf(&b, "class %s {\n", prompt.TestClassName(className))
	b.WriteString(`
    @BeforeEach
    void setUp() {
        // TODO: Set up test environment
    }

    @AfterEach
    void tearDown() {
        // TODO: Clean up test environment
    }

    @Test
    void testExample() {
        // TODO: Implement tests
        fail("Tests not implemented yet");
    }
}`)
	return b.String()
}

// describe flattens an error into a single line safe to embed in a comment
func describe(cause error) string {
	if cause == nil {
		return "unknown error"
	}
	text := strings.Join(strings.Fields(cause.Error()), " ")
	return strings.ReplaceAll(text, "*/", "* /")
}
