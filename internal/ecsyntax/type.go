package ecsyntax

import (
	"fmt"
	"strings"
)

// Effect distinguishes the kind of global context a target definition reads
// or writes: EVM memory, persistent storage, transient storage, or anything
// else (gas, block info, call environment).
type Effect int

const (
	EffectMemory Effect = iota
	EffectStorage
	EffectTransientStorage
	EffectOther
)

func (e Effect) String() string {
	switch e {
	case EffectMemory:
		return "mem"
	case EffectStorage:
		return "storage"
	case EffectTransientStorage:
		return "transient_storage"
	default:
		return "context"
	}
}

// TypeKind distinguishes the shape of a Type value.
type TypeKind int

const (
	TypeUnknown TypeKind = iota
	TypeUnit
	TypeBool
	TypeInteger
	TypeInt
	TypeUInt
	TypeCustom
	TypeTuple
	TypeArrow
	TypeContext
)

// Type is an EasyCrypt type. The current Yul dialect collapses every value
// to a single 256-bit word, so Default is what the translator actually
// emits everywhere; the richer shape exists because the target language
// itself distinguishes these cases.
type Type struct {
	Kind    TypeKind
	Size    int     // valid for TypeInt, TypeUInt
	Custom  string  // valid for TypeCustom
	Effect  Effect  // valid for TypeContext
	Tuple   []Type  // valid for TypeTuple
	Arrow   *Arrow  // valid for TypeArrow
}

// Arrow is a function/procedure type former: domain -> codomain.
type Arrow struct {
	Domain   Type
	Codomain Type
}

// Default is the type assigned to every identifier: an unsigned 256-bit
// word, matching the EVM machine word size.
var Default = Type{Kind: TypeUInt, Size: 256}

func Unit() Type    { return Type{Kind: TypeUnit} }
func Bool() Type    { return Type{Kind: TypeBool} }
func Integer() Type { return Type{Kind: TypeInteger} }
func UInt(size int) Type { return Type{Kind: TypeUInt, Size: size} }
func Int(size int) Type  { return Type{Kind: TypeInt, Size: size} }
func Context(e Effect) Type { return Type{Kind: TypeContext, Effect: e} }

// ArrowOf builds a function type from a domain type to a codomain type.
func ArrowOf(domain, codomain Type) Type {
	return Type{Kind: TypeArrow, Arrow: &Arrow{Domain: domain, Codomain: codomain}}
}

// OfTypes collapses a list of component types to Unit (if empty), the sole
// type (if one), or a Tuple (otherwise) — the standard rule used for both
// parameter lists and result lists (arrow domains and codomains, and a
// proc's return type).
func OfTypes(types []Type) Type {
	switch len(types) {
	case 0:
		return Unit()
	case 1:
		return types[0]
	default:
		return Type{Kind: TypeTuple, Tuple: types}
	}
}

func (t Type) String() string {
	switch t.Kind {
	case TypeUnit:
		return "unit"
	case TypeBool:
		return "bool"
	case TypeInteger:
		return "int"
	case TypeInt:
		return fmt.Sprintf("int%d", t.Size)
	case TypeUInt:
		return fmt.Sprintf("uint%d", t.Size)
	case TypeCustom:
		return t.Custom
	case TypeArrow:
		return fmt.Sprintf("%s->%s", t.Arrow.Domain, t.Arrow.Codomain)
	case TypeTuple:
		parts := make([]string, len(t.Tuple))
		for i, c := range t.Tuple {
			parts[i] = c.String()
		}
		return "(" + strings.Join(parts, " * ") + ")"
	case TypeContext:
		return t.Effect.String()
	default:
		return "Unknown"
	}
}
