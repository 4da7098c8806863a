// Package symtab implements the translator's symbol table: a mapping from
// fully qualified Yul names to what they resolve to on the target side,
// with scope-aware lookup.
package symtab

import (
	"github.com/yulcrypt/yul2ec/internal/ecpath"
	"github.com/yulcrypt/yul2ec/internal/ecsyntax"
	"github.com/yulcrypt/yul2ec/internal/yulast"
	"github.com/yulcrypt/yul2ec/internal/yulpath"
)

// FullName is the fully qualified name of a Yul variable or function: the
// name as written in source, plus the lexical path to the scope it was
// declared in. FullName is the symbol table's key.
type FullName struct {
	Name yulast.Name
	Path yulpath.Path
}

// CustomName builds a FullName for a user-defined identifier.
func CustomName(identifier string, path yulpath.Path) FullName {
	return FullName{Name: yulast.UserName(identifier), Path: path}
}

// key renders the canonical map key for a FullName: the Yul Name's string
// form is not ambiguous across builtin/user-defined boundary since builtin
// mnemonics and Yul identifiers share no syntax (a user identifier cannot
// equal a reserved mnemonic in valid Yul), so a simple string concatenation
// is an exact encoding.
func (f FullName) key() string {
	return f.Name.String() + "@" + f.Path.Key()
}

// DefinitionLocation is where a custom (non-builtin) definition lives on
// the target side.
type DefinitionLocation struct {
	Identifier string
	Path       ecpath.Path
}

// Reference builds a target Reference to this location, relative to
// relativeTo: a bare (path-less) reference when the two paths match,
// otherwise a fully qualified cross-module reference.
func (loc DefinitionLocation) Reference(relativeTo ecpath.Path) ecsyntax.Reference {
	path := loc.Path
	if loc.Path.Equal(relativeTo) {
		path = ecpath.Empty()
	}
	return ecsyntax.Reference{Identifier: loc.Identifier, Path: path}
}

// KindSpecific distinguishes what flavor of target definition a Custom
// description points to.
type KindSpecific int

const (
	KindFunction KindSpecific = iota
	KindProc
	KindVariable
)

// BuiltinKind distinguishes whether a Builtin description is a binary or
// unary operator.
type BuiltinKind int

const (
	BuiltinBinaryOp BuiltinKind = iota
	BuiltinUnaryOp
)

// Builtin describes a Yul builtin mnemonic's fixed target rendering.
type Builtin struct {
	Kind     BuiltinKind
	BinaryOp ecsyntax.BinaryOp // valid when Kind == BuiltinBinaryOp
	UnaryOp  ecsyntax.UnaryOp  // valid when Kind == BuiltinUnaryOp
}

// Custom describes a user-defined symbol: its kind and where it lives on
// the target side.
type Custom struct {
	Specific KindSpecific
	Location DefinitionLocation
}

// DescriptionKind distinguishes whether a Description is Builtin or Custom.
type DescriptionKind int

const (
	DescBuiltin DescriptionKind = iota
	DescCustom
)

// Description is what a symbol resolves to: either a fixed builtin
// rendering, or a custom, user-defined location.
type Description struct {
	Kind    DescriptionKind
	Builtin Builtin // valid when Kind == DescBuiltin
	Custom  Custom  // valid when Kind == DescCustom
}

// DefinitionInfo is the symbol table's value type: what a FullName resolves
// to, plus its target type.
type DefinitionInfo struct {
	Description Description
	Type        ecsyntax.Type
}

// Variable builds the DefinitionInfo recorded for a custom variable
// definition at the given location.
func Variable(location DefinitionLocation, t ecsyntax.Type) DefinitionInfo {
	return DefinitionInfo{
		Description: Description{
			Kind:   DescCustom,
			Custom: Custom{Specific: KindVariable, Location: location},
		},
		Type: t,
	}
}

// Table is the symbol table: a mapping from FullName to DefinitionInfo with
// scope-aware lookup.
type Table struct {
	entries map[string]DefinitionInfo
}

// New creates an empty Table.
func New() *Table {
	return &Table{entries: make(map[string]DefinitionInfo)}
}

// Insert records info at the exact FullName given, overwriting any prior
// entry at that exact key.
func (t *Table) Insert(name FullName, info DefinitionInfo) {
	t.entries[name.key()] = info
}

// Get looks up name at its exact path only (no scope search).
func (t *Table) Get(name FullName) (DefinitionInfo, bool) {
	info, ok := t.entries[name.key()]
	return info, ok
}

// Lookup searches for identifier starting at path and then at each of
// path's proper prefixes, leaf to root, returning the first match. This is
// the scope-aware lookup used to resolve identifier references and call
// targets.
func (t *Table) Lookup(identifier yulast.Name, path yulpath.Path) (DefinitionInfo, bool) {
	for _, p := range path.Parents() {
		if info, ok := t.Get(FullName{Name: identifier, Path: p}); ok {
			return info, true
		}
	}
	return DefinitionInfo{}, false
}
