package java

import (
	"context"
	"fmt"
	"os"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/java"
	"github.com/viant/junitgen/inspector/info"
)

// Inspector provides functionality to inspect Java code and extract class information
type Inspector struct {
	config *info.Config
}

// NewInspector creates a new Java Inspector with the provided configuration
func NewInspector(config *info.Config) *Inspector {
	if config == nil {
		config = info.DefaultConfig()
	}
	return &Inspector{
		config: config,
	}
}

// InspectFile reads and analyzes a Java source file.
// Only read failures are returned as errors, parse failures are recorded in File.ParseError
func (i *Inspector) InspectFile(filename string) (*info.File, error) {
	src, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return i.InspectSource(src, filename), nil
}

// InspectSource analyzes Java source code held in memory
func (i *Inspector) InspectSource(src []byte, filename string) *info.File {
	aFile := &info.File{
		Path:    filename,
		Package: info.UnknownPackage,
		Imports: []string{},
		Source:  string(src),
	}

	parser := sitter.NewParser()
	parser.SetLanguage(java.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil {
		aFile.ParseError = fmt.Sprintf("failed to parse source: %v", err)
		return aFile
	}
	defer tree.Close()

	rootNode := tree.RootNode()
	if rootNode.HasError() {
		aFile.ParseError = describeSyntaxError(rootNode, src)
		return aFile
	}

	i.processJavaFile(aFile, rootNode, src)
	return aFile
}

// processJavaFile extracts package, imports and the first class from a parsed file
func (i *Inspector) processJavaFile(aFile *info.File, rootNode *sitter.Node, src []byte) {
	for j := 0; j < int(rootNode.NamedChildCount()); j++ {
		childNode := rootNode.NamedChild(j)
		switch childNode.Type() {
		case "package_declaration":
			if name := parsePackageDeclaration(childNode, src); name != "" {
				aFile.Package = name
			}
		case "import_declaration":
			if path := parseImportDeclaration(childNode, src); path != "" {
				aFile.Imports = append(aFile.Imports, path)
			}
		case "class_declaration", "interface_declaration", "enum_declaration",
			"record_declaration", "annotation_type_declaration":
			declaration := parseTypeDeclaration(childNode, src)
			if declaration == nil {
				continue
			}
			aFile.Declarations = append(aFile.Declarations, *declaration)
			if declaration.Kind == info.KindClass && aFile.Class == nil {
				aFile.Class = i.parseClassDeclaration(childNode, src)
			}
		}
	}
}

// describeSyntaxError locates the first ERROR or MISSING node and renders its position
func describeSyntaxError(rootNode *sitter.Node, src []byte) string {
	node := findErrorNode(rootNode)
	if node == nil {
		return "syntax error"
	}
	point := node.StartPoint()
	if node.IsMissing() {
		return fmt.Sprintf("syntax error at line %d, column %d: missing %s", point.Row+1, point.Column+1, node.Type())
	}
	snippet := strings.TrimSpace(node.Content(src))
	if idx := strings.IndexByte(snippet, '\n'); idx != -1 {
		snippet = snippet[:idx]
	}
	if len(snippet) > 40 {
		snippet = snippet[:40]
	}
	if snippet == "" {
		return fmt.Sprintf("syntax error at line %d, column %d", point.Row+1, point.Column+1)
	}
	return fmt.Sprintf("syntax error at line %d, column %d: unexpected %q", point.Row+1, point.Column+1, snippet)
}

func findErrorNode(node *sitter.Node) *sitter.Node {
	if node == nil {
		return nil
	}
	if node.Type() == "ERROR" || node.IsMissing() {
		return node
	}
	if !node.HasError() {
		return nil
	}
	for j := 0; j < int(node.ChildCount()); j++ {
		if found := findErrorNode(node.Child(j)); found != nil {
			return found
		}
	}
	return nil
}
