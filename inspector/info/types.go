package info

import "strings"

// Void is the return type assumed when a method declares none
const Void = "void"

// Class represents a parsed Java class
type Class struct {
	Name           string   // Class name
	HasConstructor bool     // Whether the class declares a constructor
	Fields         []Field  // Declared fields, one per variable
	Methods        []Method // Declared methods, constructors excluded
}

// Method returns the first method with the given name or nil
func (c *Class) Method(name string) *Method {
	for i := range c.Methods {
		if c.Methods[i].Name == name {
			return &c.Methods[i]
		}
	}
	return nil
}

// Field returns the field with the given name or nil
func (c *Class) Field(name string) *Field {
	for i := range c.Fields {
		if c.Fields[i].Name == name {
			return &c.Fields[i]
		}
	}
	return nil
}

// Field represents a class field
type Field struct {
	Name      string
	Type      string
	Modifiers []string
}

// Method represents a class method
type Method struct {
	Name       string
	ReturnType string
	Parameters []Parameter
	Modifiers  []string
	Throws     []string
}

// IsPublic returns true if the method carries the public modifier
func (m *Method) IsPublic() bool {
	return HasModifier(m.Modifiers, "public")
}

// Signature returns a canonical "<modifiers> <returnType> <name>(<params>)" rendering
func (m *Method) Signature() string {
	builder := &strings.Builder{}
	for _, modifier := range m.Modifiers {
		builder.WriteString(modifier)
		builder.WriteString(" ")
	}
	builder.WriteString(m.ReturnType)
	builder.WriteString(" ")
	builder.WriteString(m.Name)
	builder.WriteString("(")
	builder.WriteString(JoinParameters(m.Parameters))
	builder.WriteString(")")
	if len(m.Throws) > 0 {
		builder.WriteString(" throws ")
		builder.WriteString(strings.Join(m.Throws, ", "))
	}
	return builder.String()
}

// Parameter represents a method parameter
type Parameter struct {
	Name string
	Type string
}

// JoinParameters renders parameters as "type name" pairs separated by ", "
func JoinParameters(params []Parameter) string {
	parts := make([]string, 0, len(params))
	for _, param := range params {
		parts = append(parts, param.Type+" "+param.Name)
	}
	return strings.Join(parts, ", ")
}

// HasModifier checks if modifiers contain the given keyword
func HasModifier(modifiers []string, modifier string) bool {
	for _, candidate := range modifiers {
		if candidate == modifier {
			return true
		}
	}
	return false
}
