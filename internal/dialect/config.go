// Package dialect supplies the translator with everything that is
// particular to one target convention: how literals are wrapped, how
// integer conditions become booleans, and the fixed table of standard
// (builtin) definitions every Yul program can call without a prior
// declaration.
package dialect

import (
	"github.com/yulcrypt/yul2ec/internal/ecpath"
	"github.com/yulcrypt/yul2ec/internal/ecsyntax"
	"github.com/yulcrypt/yul2ec/internal/symtab"
	"github.com/yulcrypt/yul2ec/internal/yulast"
	"github.com/yulcrypt/yul2ec/internal/yulpath"
)

// Config parameterizes the translator over a target convention. The
// default (and, at present, only) implementation is Standard.
type Config interface {
	// WrapLiteral wraps a freshly translated literal expression in
	// whatever the target's word-representation constructor is.
	WrapLiteral(lit ecsyntax.Literal) ecsyntax.Expression

	// IntToBool coerces a 256-bit-word-typed expression into a target
	// bool, for use as an if or while (for-loop) condition. Switch-case
	// comparisons are built with `=` directly and do not pass through it.
	IntToBool(expr ecsyntax.Expression) ecsyntax.Expression

	// StandardDefinitions returns the fixed table of (FullName,
	// DefinitionInfo) entries pre-populated into every symbol table
	// before translation begins, one per recognized Yul builtin.
	StandardDefinitions() []StandardDefinition
}

// StandardDefinition pairs a symbol table key with the info it should
// resolve to.
type StandardDefinition struct {
	Name symtab.FullName
	Info symtab.DefinitionInfo
}

// Standard is the default target convention: 256-bit words wrapped with
// `W256.of_int`, conditions coerced with `bool_of_uint256`, and the full
// Yul/EVM builtin mnemonic set wired to either a direct operator or an
// assumed prelude procedure/function of the same name.
type Standard struct{}

var _ Config = Standard{}

func (Standard) WrapLiteral(lit ecsyntax.Literal) ecsyntax.Expression {
	call := ecsyntax.FunctionCall{
		Target:    w256Of("of_int"),
		Arguments: []ecsyntax.Expression{ecsyntax.LiteralExpr(lit)},
	}
	return ecsyntax.FnCallExpr(call)
}

func (Standard) IntToBool(expr ecsyntax.Expression) ecsyntax.Expression {
	call := ecsyntax.FunctionCall{
		Target:    ecsyntax.Reference{Identifier: "bool_of_uint256"},
		Arguments: []ecsyntax.Expression{expr},
	}
	return ecsyntax.FnCallExpr(call)
}

func w256Of(member string) ecsyntax.Reference {
	path := ecpath.Empty().Push(ecpath.Step{Kind: ecpath.Module, Name: "W256"})
	return ecsyntax.AtPath(member, path)
}

func (Standard) StandardDefinitions() []StandardDefinition {
	defs := make([]StandardDefinition, 0, len(binaryBuiltins)+len(unaryBuiltins)+len(procBuiltins))

	for builtin, op := range binaryBuiltins {
		defs = append(defs, standardBinary(builtin, op))
	}
	for builtin, op := range unaryBuiltins {
		defs = append(defs, standardUnary(builtin, op))
	}
	for builtin, sig := range procBuiltins {
		defs = append(defs, standardProc(builtin, sig))
	}

	return defs
}

// binaryBuiltins maps every Yul builtin representable as one of the
// target's binary operators.
var binaryBuiltins = map[yulast.Builtin]ecsyntax.BinaryOp{
	yulast.Add: ecsyntax.Add,
	yulast.Sub: ecsyntax.Sub,
	yulast.Mul: ecsyntax.Mul,
	yulast.Div: ecsyntax.Div,
	yulast.Mod: ecsyntax.Mod,
	yulast.Eq:  ecsyntax.Eq,
	yulast.Or:  ecsyntax.Or,
	yulast.Xor: ecsyntax.Xor,
	yulast.And: ecsyntax.And,
	yulast.Exp: ecsyntax.Exp,
}

// unaryBuiltins maps every Yul builtin representable as one of the
// target's unary operators. `not` is Yul's bitwise complement; it is the
// only Yul builtin with a direct unary-operator counterpart in the target
// language (iszero has no standalone boolean-negation form and is instead
// wired as a prelude procedure below).
var unaryBuiltins = map[yulast.Builtin]ecsyntax.UnaryOp{
	yulast.Not: ecsyntax.Not,
}

// procSig is the arity and result shape of a builtin wired as a prelude
// procedure: ReturnsUnit distinguishes a value-producing opcode (which gets
// a temporary at call sites) from a pure side-effect opcode (which, at
// statement root, needs no temporary at all).
type procSig struct {
	Arity       int
	ReturnsUnit bool
}

// procBuiltins lists every remaining Yul/EVM builtin, each wired as a
// zero-argument-path reference to an assumed prelude procedure of the same
// mnemonic. These are the opcodes with side effects (storage, memory, call,
// log, environment queries) that have no direct EasyCrypt operator
// counterpart; the target module is expected to either import or stub a
// prelude declaring them.
var procBuiltins = map[yulast.Builtin]procSig{
	yulast.Sdiv:           {2, false},
	yulast.Smod:           {2, false},
	yulast.Lt:             {2, false},
	yulast.Gt:             {2, false},
	yulast.Slt:            {2, false},
	yulast.Sgt:            {2, false},
	yulast.Iszero:         {1, false},
	yulast.Byte:           {2, false},
	yulast.Shl:            {2, false},
	yulast.Shr:            {2, false},
	yulast.Sar:            {2, false},
	yulast.Addmod:         {3, false},
	yulast.Mulmod:         {3, false},
	yulast.Signextend:     {2, false},
	yulast.Keccak256:      {2, false},
	yulast.Pop:            {1, true},
	yulast.Mload:          {1, false},
	yulast.Mstore:         {2, true},
	yulast.Mstore8:        {2, true},
	yulast.Sload:          {1, false},
	yulast.Sstore:         {2, true},
	yulast.Tload:          {1, false},
	yulast.Tstore:         {2, true},
	yulast.Msize:          {0, false},
	yulast.Gas:            {0, false},
	yulast.Address:        {0, false},
	yulast.Balance:        {1, false},
	yulast.Selfbalance:    {0, false},
	yulast.Caller:         {0, false},
	yulast.Callvalue:      {0, false},
	yulast.Calldataload:   {1, false},
	yulast.Calldatasize:   {0, false},
	yulast.Calldatacopy:   {3, true},
	yulast.Codesize:       {0, false},
	yulast.Codecopy:       {3, true},
	yulast.Extcodesize:    {1, false},
	yulast.Extcodecopy:    {4, true},
	yulast.Returndatasize: {0, false},
	yulast.Returndatacopy: {3, true},
	yulast.Extcodehash:    {1, false},
	yulast.Mcopy:          {3, true},
	yulast.Create:         {3, false},
	yulast.Create2:        {4, false},
	yulast.Call:           {7, false},
	yulast.Callcode:       {7, false},
	yulast.Delegatecall:   {6, false},
	yulast.Staticcall:     {6, false},
	yulast.Return:         {2, true},
	yulast.Revert:         {2, true},
	yulast.Selfdestruct:   {1, true},
	yulast.Invalid:        {0, true},
	yulast.Log0:           {2, true},
	yulast.Log1:           {3, true},
	yulast.Log2:           {4, true},
	yulast.Log3:           {5, true},
	yulast.Log4:           {6, true},
	yulast.Chainid:        {0, false},
	yulast.Basefee:        {0, false},
	yulast.Blobbasefee:    {0, false},
	yulast.Blobhash:       {1, false},
	yulast.Origin:         {0, false},
	yulast.Gasprice:       {0, false},
	yulast.Blockhash:      {1, false},
	yulast.Coinbase:       {0, false},
	yulast.Timestamp:      {0, false},
	yulast.Number:         {0, false},
	yulast.Difficulty:     {0, false},
	yulast.Prevrandao:     {0, false},
	yulast.Gaslimit:       {0, false},
	yulast.Stop:           {0, true},
}

func standardBinary(b yulast.Builtin, op ecsyntax.BinaryOp) StandardDefinition {
	return StandardDefinition{
		Name: symtab.FullName{Name: yulast.BuiltinName(b), Path: yulpath.Empty()},
		Info: symtab.DefinitionInfo{
			Description: symtab.Description{
				Kind:    symtab.DescBuiltin,
				Builtin: symtab.Builtin{Kind: symtab.BuiltinBinaryOp, BinaryOp: op},
			},
			Type: arrowType(2, ecsyntax.Default),
		},
	}
}

func standardUnary(b yulast.Builtin, op ecsyntax.UnaryOp) StandardDefinition {
	return StandardDefinition{
		Name: symtab.FullName{Name: yulast.BuiltinName(b), Path: yulpath.Empty()},
		Info: symtab.DefinitionInfo{
			Description: symtab.Description{
				Kind:    symtab.DescBuiltin,
				Builtin: symtab.Builtin{Kind: symtab.BuiltinUnaryOp, UnaryOp: op},
			},
			Type: arrowType(1, ecsyntax.Default),
		},
	}
}

func standardProc(b yulast.Builtin, sig procSig) StandardDefinition {
	location := symtab.DefinitionLocation{Identifier: b.String()}
	codomain := ecsyntax.Default
	if sig.ReturnsUnit {
		codomain = ecsyntax.Unit()
	}
	return StandardDefinition{
		Name: symtab.FullName{Name: yulast.BuiltinName(b), Path: yulpath.Empty()},
		Info: symtab.DefinitionInfo{
			Description: symtab.Description{
				Kind: symtab.DescCustom,
				Custom: symtab.Custom{
					Specific: symtab.KindProc,
					Location: location,
				},
			},
			Type: arrowType(sig.Arity, codomain),
		},
	}
}

func arrowType(arity int, codomain ecsyntax.Type) ecsyntax.Type {
	inputs := make([]ecsyntax.Type, arity)
	for i := range inputs {
		inputs[i] = ecsyntax.Default
	}
	return ecsyntax.ArrowOf(ecsyntax.OfTypes(inputs), codomain)
}
