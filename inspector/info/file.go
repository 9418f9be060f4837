package info

// UnknownPackage is used when a source file has no package declaration
const UnknownPackage = "unknown"

// File represents an analyzed Java source file
type File struct {
	Path         string        // File path
	Package      string        // Package name, UnknownPackage if not declared
	Imports      []string      // Imported paths in declaration order
	Class        *Class        // First top-level class, nil if none
	Declarations []Declaration // Top-level type declarations in source order
	Source       string        // Raw file content
	ParseError   string        // Parse failure message, empty on success
}

// HasClass returns true if the file parsed and declares a class
func (f *File) HasClass() bool {
	return f != nil && f.ParseError == "" && f.Class != nil
}

// FirstDeclaration returns the first top-level type declaration or nil
func (f *File) FirstDeclaration() *Declaration {
	if f == nil || len(f.Declarations) == 0 {
		return nil
	}
	return &f.Declarations[0]
}

// DeclarationKind represents the keyword a top-level type is declared with
type DeclarationKind string

const (
	KindClass      DeclarationKind = "class"
	KindInterface  DeclarationKind = "interface"
	KindEnum       DeclarationKind = "enum"
	KindRecord     DeclarationKind = "record"
	KindAnnotation DeclarationKind = "@interface"
)

// Declaration represents a top-level type declaration
type Declaration struct {
	Kind DeclarationKind
	Name string
}

// IsInterface returns true for interface and annotation type declarations
func (d *Declaration) IsInterface() bool {
	return d != nil && (d.Kind == KindInterface || d.Kind == KindAnnotation)
}
