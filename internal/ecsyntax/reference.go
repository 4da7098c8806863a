package ecsyntax

import "github.com/yulcrypt/yul2ec/internal/ecpath"

// Definition introduces a new target variable: a procedure parameter, a
// local, or a temporary. Type is nil when the definition carries no
// explicit annotation, in which case EffectiveType reports Default.
type Definition struct {
	Identifier string
	Type       *Type
}

// NewDefinition builds a Definition with an explicit type.
func NewDefinition(identifier string, t Type) Definition {
	return Definition{Identifier: identifier, Type: &t}
}

// EffectiveType returns the definition's annotated type, or Default if
// unannotated.
func (d Definition) EffectiveType() Type {
	if d.Type != nil {
		return *d.Type
	}
	return Default
}

// Reference points to a previously defined variable, qualified by the
// target path at which it is visible. An empty Path denotes a bare,
// unqualified identifier (the reference is local to the current procedure);
// a non-empty Path denotes a cross-module reference.
type Reference struct {
	Identifier string
	Path       ecpath.Path
}

// Reference produces a bare reference to this definition (empty path); the
// translator fills in a qualified path when the definition lives outside
// the current procedure.
func (d Definition) Reference() Reference {
	return Reference{Identifier: d.Identifier, Path: ecpath.Empty()}
}

// AtPath produces a reference to identifier qualified with the given path.
func AtPath(identifier string, path ecpath.Path) Reference {
	return Reference{Identifier: identifier, Path: path}
}
