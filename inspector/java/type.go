package java

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
)

// parseJavaType renders a type node as a type string, one "[]" per array dimension
func parseJavaType(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	switch node.Type() {
	case "array_type":
		elementNode := node.ChildByFieldName("element")
		if elementNode == nil && node.NamedChildCount() > 0 {
			elementNode = node.NamedChild(0)
		}
		return parseJavaType(elementNode, source) + arraySuffix(node.ChildByFieldName("dimensions"), source)
	case "void_type":
		return "void"
	default:
		return normalizeTypeName(node.Content(source))
	}
}

// arraySuffix returns "[]" repeated once per dimension of a dimensions node
func arraySuffix(dimensionsNode *sitter.Node, source []byte) string {
	if dimensionsNode == nil {
		return ""
	}
	return strings.Repeat("[]", arrayDimensions(dimensionsNode.Content(source)))
}

// arrayDimensions counts bracket pairs in dimensions text such as "[] @NonNull []"
func arrayDimensions(text string) int {
	return strings.Count(text, "[")
}

// normalizeTypeName collapses whitespace inside a type, e.g. "Map< String , Integer >"
func normalizeTypeName(name string) string {
	name = strings.Join(strings.Fields(name), " ")
	name = strings.ReplaceAll(name, "< ", "<")
	name = strings.ReplaceAll(name, " >", ">")
	name = strings.ReplaceAll(name, " ,", ",")
	return name
}
