// Package prompt renders analyzed Java sources into test generation prompts.
package prompt

import (
	"fmt"
	"strings"

	"github.com/viant/junitgen/inspector/info"
)

// Imports are the JUnit 5 imports every generated test class starts with
var Imports = []string{
	"import org.junit.jupiter.api.Test;",
	"import org.junit.jupiter.api.BeforeEach;",
	"import org.junit.jupiter.api.AfterEach;",
	"import static org.junit.jupiter.api.Assertions.*;",
}

// TestClassName returns the name of the test class generated for className
func TestClassName(className string) string {
	return className + "Test"
}

// TestClass builds a chat prompt asking for a complete JUnit 5 test class.
// The caller must ensure aFile.Class is set.
func TestClass(aFile *info.File) string {
	class := aFile.Class
	var b strings.Builder

	b.WriteString("\nYou are a Java expert specialized in writing high-quality JUnit 5 tests.\n")
	b.WriteString("Your task is to create comprehensive unit tests for the following Java class.\n\n")

	b.WriteString("Java Class Information:\n")
	fmt.Fprintf(&b, "- Package: %s\n", aFile.Package)
	fmt.Fprintf(&b, "- Class Name: %s\n\n", class.Name)

	b.WriteString("Fields:\n")
	b.WriteString(fieldSummary(class.Fields))
	b.WriteString("\n\n")

	b.WriteString("Methods:\n")
	b.WriteString(methodSummary(class.Methods))
	b.WriteString("\n\n")

	b.WriteString("Source Code:\n")
	b.WriteString("```java\n")
	b.WriteString(aFile.Source)
	b.WriteString("\n```\n\n")

	b.WriteString("Requirements for the JUnit tests:\n")
	fmt.Fprintf(&b, "1. Create a complete, compilable JUnit 5 test class named \"%s\"\n", TestClassName(class.Name))
	b.WriteString("2. Include the proper package statement and imports\n")
	b.WriteString("3. Use @Test, @BeforeEach, and @AfterEach annotations appropriately\n")
	b.WriteString("4. Test all public methods thoroughly, including edge cases\n")
	b.WriteString("5. Use appropriate assertions from org.junit.jupiter.api.Assertions\n")
	b.WriteString("6. For each test method, provide a brief comment explaining what it tests\n")
	b.WriteString("7. Use Mockito for mocking dependencies when needed\n")
	b.WriteString("8. Handle exceptions appropriately if methods throw exceptions\n")
	b.WriteString("9. Aim for high code coverage\n")
	b.WriteString("10. The tests should be well-structured and follow best practices\n\n")

	b.WriteString("Your response should only contain the complete Java test class code, starting with the package statement.\n")
	return b.String()
}

func fieldSummary(fields []info.Field) string {
	lines := make([]string, 0, len(fields))
	for _, field := range fields {
		lines = append(lines, fmt.Sprintf("- Field: %s\n  Type: %s\n  Modifiers: %s",
			field.Name, field.Type, strings.Join(field.Modifiers, ", ")))
	}
	return strings.Join(lines, "\n")
}

func methodSummary(methods []info.Method) string {
	lines := make([]string, 0, len(methods))
	for _, method := range methods {
		lines = append(lines, fmt.Sprintf("- Method: %s\n  Return Type: %s\n  Parameters: %s\n  Modifiers: %s",
			method.Name, method.ReturnType, info.JoinParameters(method.Parameters), strings.Join(method.Modifiers, ", ")))
	}
	return strings.Join(lines, "\n")
}

// MethodName extracts the method name from a "<modifiers> <returnType> <name>(<params>)" signature:
// the second whitespace separated token cut at the first "(".
// Signatures of any other shape yield a wrong or empty name.
func MethodName(signature string) string {
	tokens := strings.Fields(signature)
	if len(tokens) < 2 {
		return ""
	}
	name := tokens[1]
	if idx := strings.Index(name, "("); idx != -1 {
		name = name[:idx]
	}
	return name
}

// TestMethodHeader returns the opening lines of the generated test method
func TestMethodHeader(signature string) string {
	return "@Test\nvoid test" + MethodName(signature) + "() {\n"
}

// TestMethod builds a completion prompt for a single test method
func TestMethod(signature, className string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "\n// Given the following Java method from class %s, \n", className)
	b.WriteString("// write a JUnit 5 test method that tests this method thoroughly.\n\n")
	b.WriteString(signature)
	b.WriteString("\n\n// Test method:\n")
	b.WriteString(TestMethodHeader(signature))
	return b.String()
}

// TestClassHeader returns the package, imports and opening line of a test class
func TestClassHeader(packageName, className string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "package %s;\n\n", packageName)
	b.WriteString(strings.Join(Imports, "\n"))
	fmt.Fprintf(&b, "\n\nclass %s {\n", TestClassName(className))
	return b.String()
}

// TestSkeleton builds a completion prompt that continues a test class skeleton
func TestSkeleton(packageName, className string) string {
	var b strings.Builder
	b.WriteString("\n// Generate a complete JUnit 5 test class for the following Java class:\n")
	fmt.Fprintf(&b, "// Class name: %s\n", className)
	fmt.Fprintf(&b, "// Package: %s\n\n", packageName)
	b.WriteString(TestClassHeader(packageName, className))
	return b.String()
}
