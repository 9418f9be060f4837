package java

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/viant/junitgen/inspector/info"
)

// parsePackageDeclaration extracts the package name from a Java source file
func parsePackageDeclaration(node *sitter.Node, source []byte) string {
	if node.Type() != "package_declaration" {
		return ""
	}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "scoped_identifier", "identifier":
			return child.Content(source)
		}
	}
	return ""
}

// parseImportDeclaration extracts the imported path, wildcard imports keep their ".*" suffix
func parseImportDeclaration(node *sitter.Node, source []byte) string {
	if node.Type() != "import_declaration" {
		return ""
	}
	var path string
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		switch child.Type() {
		case "scoped_identifier", "identifier":
			path = child.Content(source)
		case "asterisk":
			if path != "" {
				path += ".*"
			}
		}
	}
	return path
}

// parseTypeDeclaration extracts the kind and name of a top-level type declaration
func parseTypeDeclaration(node *sitter.Node, source []byte) *info.Declaration {
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	var kind info.DeclarationKind
	switch node.Type() {
	case "class_declaration":
		kind = info.KindClass
	case "interface_declaration":
		kind = info.KindInterface
	case "enum_declaration":
		kind = info.KindEnum
	case "record_declaration":
		kind = info.KindRecord
	case "annotation_type_declaration":
		kind = info.KindAnnotation
	default:
		return nil
	}
	return &info.Declaration{Kind: kind, Name: nameNode.Content(source)}
}

// parseClassDeclaration extracts fields and methods of a class
func (i *Inspector) parseClassDeclaration(node *sitter.Node, source []byte) *info.Class {
	if node.Type() != "class_declaration" {
		return nil
	}
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	class := &info.Class{
		Name:    nameNode.Content(source),
		Fields:  []info.Field{},
		Methods: []info.Method{},
	}

	bodyNode := node.ChildByFieldName("body")
	if bodyNode == nil {
		return class
	}
	for j := 0; j < int(bodyNode.NamedChildCount()); j++ {
		child := bodyNode.NamedChild(j)
		switch child.Type() {
		case "field_declaration":
			for _, field := range parseFieldDeclaration(child, source) {
				if i.skip(field.Modifiers) {
					continue
				}
				class.Fields = append(class.Fields, field)
			}
		case "method_declaration":
			method := parseMethodDeclaration(child, source)
			if method != nil && !i.skip(method.Modifiers) {
				class.Methods = append(class.Methods, *method)
			}
		case "constructor_declaration":
			constructorName := ""
			if constructorNameNode := child.ChildByFieldName("name"); constructorNameNode != nil {
				constructorName = constructorNameNode.Content(source)
			}
			if constructorName == class.Name {
				class.HasConstructor = true
				continue
			}
			// a constructor-shaped member with a foreign name is a method missing its return type
			method := parseConstructorDeclaration(child, source)
			if method != nil && !i.skip(method.Modifiers) {
				class.Methods = append(class.Methods, *method)
			}
		}
	}
	return class
}

func (i *Inspector) skip(modifiers []string) bool {
	return !i.config.IncludePrivate && info.HasModifier(modifiers, "private")
}

// parseFieldDeclaration returns one field per declared variable
func parseFieldDeclaration(node *sitter.Node, source []byte) []info.Field {
	if node.Type() != "field_declaration" {
		return nil
	}
	typeNode := node.ChildByFieldName("type")
	if typeNode == nil {
		return nil
	}
	fieldType := parseJavaType(typeNode, source)
	modifiers := parseModifiers(node, source)

	var fields []info.Field
	for i := 0; i < int(node.NamedChildCount()); i++ {
		declarator := node.NamedChild(i)
		if declarator.Type() != "variable_declarator" {
			continue
		}
		nameNode := declarator.ChildByFieldName("name")
		if nameNode == nil {
			continue
		}
		fields = append(fields, info.Field{
			Name:      nameNode.Content(source),
			Type:      fieldType + arraySuffix(declarator.ChildByFieldName("dimensions"), source),
			Modifiers: append([]string{}, modifiers...),
		})
	}
	return fields
}

// parseMethodDeclaration extracts method information from a class
func parseMethodDeclaration(node *sitter.Node, source []byte) *info.Method {
	if node.Type() != "method_declaration" {
		return nil
	}
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}

	returnType := info.Void
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		returnType = parseJavaType(typeNode, source)
	}
	// legacy form: int values()[]
	returnType += arraySuffix(node.ChildByFieldName("dimensions"), source)

	return &info.Method{
		Name:       nameNode.Content(source),
		ReturnType: returnType,
		Parameters: parseParameters(node.ChildByFieldName("parameters"), source),
		Modifiers:  parseModifiers(node, source),
		Throws:     parseThrows(node, source),
	}
}

// parseConstructorDeclaration converts a constructor-shaped declaration into a void method
func parseConstructorDeclaration(node *sitter.Node, source []byte) *info.Method {
	if node.Type() != "constructor_declaration" {
		return nil
	}
	nameNode := node.ChildByFieldName("name")
	if nameNode == nil {
		return nil
	}
	return &info.Method{
		Name:       nameNode.Content(source),
		ReturnType: info.Void,
		Parameters: parseParameters(node.ChildByFieldName("parameters"), source),
		Modifiers:  parseModifiers(node, source),
		Throws:     parseThrows(node, source),
	}
}

// parseParameters extracts formal and variadic parameters
func parseParameters(parametersNode *sitter.Node, source []byte) []info.Parameter {
	params := []info.Parameter{}
	if parametersNode == nil {
		return params
	}
	for i := 0; i < int(parametersNode.NamedChildCount()); i++ {
		paramNode := parametersNode.NamedChild(i)
		switch paramNode.Type() {
		case "formal_parameter":
			paramTypeNode := paramNode.ChildByFieldName("type")
			paramNameNode := paramNode.ChildByFieldName("name")
			if paramTypeNode == nil || paramNameNode == nil {
				continue
			}
			params = append(params, info.Parameter{
				Name: paramNameNode.Content(source),
				Type: parseJavaType(paramTypeNode, source) + arraySuffix(paramNode.ChildByFieldName("dimensions"), source),
			})
		case "spread_parameter":
			var paramType, paramName string
			for j := 0; j < int(paramNode.NamedChildCount()); j++ {
				child := paramNode.NamedChild(j)
				switch child.Type() {
				case "modifiers":
				case "variable_declarator":
					if nameNode := child.ChildByFieldName("name"); nameNode != nil {
						paramName = nameNode.Content(source)
					}
					paramType += arraySuffix(child.ChildByFieldName("dimensions"), source)
				default:
					if paramType == "" {
						paramType = parseJavaType(child, source)
					}
				}
			}
			if paramType == "" || paramName == "" {
				continue
			}
			params = append(params, info.Parameter{Name: paramName, Type: paramType + "..."})
		}
	}
	return params
}

// parseModifiers returns keyword modifiers in source order, annotations excluded
func parseModifiers(node *sitter.Node, source []byte) []string {
	modifiers := []string{}
	var modifiersNode *sitter.Node
	for i := 0; i < int(node.NamedChildCount()); i++ {
		if child := node.NamedChild(i); child.Type() == "modifiers" {
			modifiersNode = child
			break
		}
	}
	if modifiersNode == nil {
		return modifiers
	}
	for i := 0; i < int(modifiersNode.ChildCount()); i++ {
		modifier := modifiersNode.Child(i)
		switch modifier.Type() {
		case "annotation", "marker_annotation", "comment", "line_comment", "block_comment":
			continue
		}
		text := strings.TrimSpace(modifier.Content(source))
		if text == "" || info.HasModifier(modifiers, text) {
			continue
		}
		modifiers = append(modifiers, text)
	}
	return modifiers
}

// parseThrows extracts declared exception types
func parseThrows(node *sitter.Node, source []byte) []string {
	throws := []string{}
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() != "throws" {
			continue
		}
		for j := 0; j < int(child.NamedChildCount()); j++ {
			throws = append(throws, parseJavaType(child.NamedChild(j), source))
		}
	}
	return throws
}
