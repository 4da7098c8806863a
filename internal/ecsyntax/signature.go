package ecsyntax

// SignatureKind distinguishes whether a Signature belongs to a pure
// function (an `op`) or a statement-bodied procedure (a `proc`).
type SignatureKind int

const (
	SignatureFunction SignatureKind = iota
	SignatureProcedure
)

// Signature is the parameter list and return type shared by Function and
// Proc definitions.
type Signature struct {
	Parameters []Definition
	ReturnType Type
	Kind       SignatureKind
}

// ReturnsUnit reports whether the signature's return type is Unit — the
// condition that controls whether a call to it, used in statement
// position, needs a temporary to capture its result.
func (s Signature) ReturnsUnit() bool {
	return s.ReturnType.Kind == TypeUnit
}

// Function is a pure, single-expression-bodied target definition: `op NAME
// (params) : type = expr.`
type Function struct {
	Name      string
	Signature Signature
	Body      Expression
}

// Proc is a statement-bodied target definition: `proc NAME (params) : type
// = { locals; statements }`.
type Proc struct {
	Name      string
	Signature Signature
	Locals    []Definition
	Body      Block
}
