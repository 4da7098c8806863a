// Package ecprint pretty-prints an EasyCrypt module produced by the
// translator back into EasyCrypt source text.
package ecprint

import (
	"fmt"
	"strings"

	"github.com/yulcrypt/yul2ec/internal/ecsyntax"
)

const anonymousModuleName = "ANONYMOUS"

// Preamble is the fixed EasyCrypt prelude expected ahead of every emitted
// module: the three theories a translated module's ops and procs assume are
// in scope, plus the placeholder op backing every string-literal reference.
const Preamble = "require import UInt256 PurePrimops YulPrimops.\nop STRING : int = 0.\n"

// printer is a low-level indentation-aware text sink: print appends
// without a trailing newline, println appends one, and increase/decrease
// Indent control the prefix written at the start of the next line.
type printer struct {
	out    strings.Builder
	indent int
	atBOL  bool
}

func newPrinter() *printer {
	return &printer{atBOL: true}
}

func (p *printer) print(s string) {
	if p.atBOL && s != "" {
		p.out.WriteString(strings.Repeat("  ", p.indent))
		p.atBOL = false
	}
	p.out.WriteString(s)
}

func (p *printer) println(s string) {
	p.print(s)
	p.out.WriteByte('\n')
	p.atBOL = true
}

func (p *printer) increaseIndent() { p.indent++ }
func (p *printer) decreaseIndent() {
	if p.indent > 0 {
		p.indent--
	}
}

// Module renders a complete EasyCrypt module to source text.
func Module(m *ecsyntax.Module) string {
	p := newPrinter()
	p.visitModule(m)
	return p.out.String()
}

func (p *printer) visitModule(m *ecsyntax.Module) {
	name := m.Name
	if name == "" {
		name = anonymousModuleName
	}

	p.println(fmt.Sprintf("(* Begin %s *)", name))

	names := m.NamesOrdered()
	for _, n := range names {
		def := m.Definitions[n]
		if def.Kind == ecsyntax.TopFunction {
			p.visitTopDefinition(def)
			p.println("")
		}
	}

	p.print("module ")
	p.print(name)
	p.println(" = {")
	p.increaseIndent()

	for _, n := range names {
		def := m.Definitions[n]
		if def.Kind == ecsyntax.TopProc {
			p.visitTopDefinition(def)
			p.println("")
		}
	}

	p.println("")
	p.decreaseIndent()
	p.println("}.")
	p.println(fmt.Sprintf("(* End %s *)", name))
}

func (p *printer) visitTopDefinition(def ecsyntax.TopDefinition) {
	switch def.Kind {
	case ecsyntax.TopProc:
		p.visitProc(*def.Proc)
	case ecsyntax.TopFunction:
		p.visitFunction(*def.Function)
	}
}

func (p *printer) visitFunction(fn ecsyntax.Function) {
	p.print(fmt.Sprintf("op %s", fn.Name))
	p.visitSignature(fn.Signature)
	p.print(" = ")
	p.visitExpression(fn.Body)
	p.println(".")
}

func (p *printer) visitProc(proc ecsyntax.Proc) {
	p.print("proc ")
	p.print(proc.Name)
	p.visitSignature(proc.Signature)
	p.println(" = {")
	p.visitLocals(proc.Locals)
	p.visitStatements(proc.Body.Statements)
	p.println("}")
}

func (p *printer) visitLocals(locals []ecsyntax.Definition) {
	groups := groupByType(locals)
	for _, g := range groups {
		p.print("var ")
		for i, def := range g.defs {
			if i > 0 {
				p.print(", ")
			}
			p.print(def.Identifier)
		}
		p.print(": ")
		p.print(g.typ.String())
		p.println(";")
	}
}

type localGroup struct {
	typ  ecsyntax.Type
	defs []ecsyntax.Definition
}

// groupByType partitions locals by their effective type, preserving first-
// seen type order so output is deterministic.
func groupByType(locals []ecsyntax.Definition) []localGroup {
	index := map[string]int{}
	var groups []localGroup
	for _, def := range locals {
		t := def.EffectiveType()
		key := t.String()
		if i, ok := index[key]; ok {
			groups[i].defs = append(groups[i].defs, def)
			continue
		}
		index[key] = len(groups)
		groups = append(groups, localGroup{typ: t, defs: []ecsyntax.Definition{def}})
	}
	return groups
}

func (p *printer) visitSignature(sig ecsyntax.Signature) {
	if sig.Kind != ecsyntax.SignatureFunction || len(sig.Parameters) > 0 {
		p.print("(")
		for i, def := range sig.Parameters {
			if i > 0 {
				p.print(", ")
			}
			p.print(fmt.Sprintf("%s : %s", def.Identifier, def.EffectiveType()))
		}
		p.print(")")
	}
	p.print(fmt.Sprintf(": %s", sig.ReturnType))
}

func (p *printer) visitReference(ref ecsyntax.Reference) {
	for _, step := range ref.Path.Steps {
		p.print(step.String())
		p.print(".")
	}
	p.print(ref.Identifier)
}

func (p *printer) visitLiteral(lit ecsyntax.Literal) {
	switch lit.Kind {
	case ecsyntax.LiteralInt:
		p.print(lit.Int)
	case ecsyntax.LiteralBool:
		p.print(fmt.Sprintf("%t", lit.Bool))
	case ecsyntax.LiteralStringPlaceholder:
		p.print("STRING (*")
		p.print(lit.Text)
		p.print("*)")
	}
}

var binaryOpSymbols = map[ecsyntax.BinaryOp]string{
	ecsyntax.Add: "+",
	ecsyntax.Sub: "-",
	ecsyntax.Mul: "*",
	ecsyntax.Mod: "%%",
	ecsyntax.And: "/\\",
	ecsyntax.Or:  "\\/",
	ecsyntax.Xor: "^",
	ecsyntax.Div: "/",
	ecsyntax.Eq:  "=",
	ecsyntax.Exp: "**",
}

var unaryOpSymbols = map[ecsyntax.UnaryOp]string{
	ecsyntax.Neg: "-",
	ecsyntax.Not: "!",
}

func (p *printer) visitExpression(e ecsyntax.Expression) {
	switch e.Kind {
	case ecsyntax.ExprUnary:
		p.print("(")
		p.print(unaryOpSymbols[e.UnaryOp])
		p.print(" ")
		p.visitExpression(e.Operands[0])
		p.print(")")
	case ecsyntax.ExprBinary:
		p.print("(")
		p.visitExpression(e.Operands[0])
		p.print(" ")
		p.print(binaryOpSymbols[e.BinaryOp])
		p.print(" ")
		p.visitExpression(e.Operands[1])
		p.print(")")
	case ecsyntax.ExprFnCall:
		p.visitFunctionCall(*e.Call)
	case ecsyntax.ExprLiteral:
		p.visitLiteral(e.Literal)
	case ecsyntax.ExprReference:
		p.visitReference(e.Reference)
	case ecsyntax.ExprTuple:
		p.print("(")
		for i, elem := range e.Operands {
			if i > 0 {
				p.print(", ")
			}
			p.visitExpression(elem)
		}
		p.print(")")
	}
}

func (p *printer) visitFunctionCall(call ecsyntax.FunctionCall) {
	if len(call.Arguments) > 0 {
		p.print("(")
		p.visitReference(call.Target)
		for _, arg := range call.Arguments {
			p.print(" ")
			p.visitExpression(arg)
		}
		p.print(")")
		return
	}
	p.visitReference(call.Target)
}

func (p *printer) visitProcCall(call ecsyntax.ProcCall) {
	p.visitReference(call.Target)
	p.print("(")
	for i, arg := range call.Arguments {
		if i > 0 {
			p.print(", ")
		}
		p.visitExpression(arg)
	}
	p.print(")")
}

func printLHSReferences(p *printer, refs []ecsyntax.Reference) {
	switch len(refs) {
	case 0:
		return
	case 1:
		p.visitReference(refs[0])
	default:
		p.print("(")
		for i, r := range refs {
			if i > 0 {
				p.print(",")
			}
			p.visitReference(r)
		}
		p.print(")")
	}
}

func statementFollowedBySemicolon(s ecsyntax.Statement) bool {
	switch s.Kind {
	case ecsyntax.StmtBlock, ecsyntax.StmtIfConditional, ecsyntax.StmtWhileLoop:
		return false
	default:
		return true
	}
}

func (p *printer) visitStatement(s ecsyntax.Statement) {
	switch s.Kind {
	case ecsyntax.StmtExpression:
		p.visitExpression(s.Expr)
	case ecsyntax.StmtBlock:
		p.visitBlock(s.Block)
	case ecsyntax.StmtIfConditional:
		p.visitIfConditional(*s.If)
	case ecsyntax.StmtEAssignment:
		printLHSReferences(p, s.Targets)
		if len(s.Targets) > 0 {
			p.print(" <- ")
		}
		p.visitExpression(s.Value)
	case ecsyntax.StmtPAssignment:
		printLHSReferences(p, s.Targets)
		if len(s.Targets) > 0 {
			p.print(" <@ ")
		}
		p.visitProcCall(*s.Call)
	case ecsyntax.StmtReturn:
		p.print("return ")
		p.visitExpression(s.Expr)
	case ecsyntax.StmtWhileLoop:
		p.visitWhileLoop(*s.While)
	}
}

func (p *printer) visitBlock(b ecsyntax.Block) {
	p.println("{")
	p.visitStatements(b.Statements)
	p.println("}")
}

func (p *printer) visitStatements(stmts []ecsyntax.Statement) {
	p.increaseIndent()
	for _, s := range stmts {
		p.visitStatement(s)
		if statementFollowedBySemicolon(s) {
			p.print(";")
		}
		p.println("")
	}
	p.println("")
	p.decreaseIndent()
}

func (p *printer) visitIfConditional(cond ecsyntax.IfConditional) {
	p.print("if (")
	p.visitExpression(cond.Condition)
	p.println(")")

	if !cond.Yes.IsBlock() {
		p.print(" { ")
	}
	p.visitStatement(cond.Yes)
	if !cond.Yes.IsBlock() {
		p.println(" } ")
	}
	if cond.No != nil {
		p.println("")
		p.print("else ")
		p.visitStatement(*cond.No)
	}
}

func (p *printer) visitWhileLoop(w ecsyntax.WhileLoop) {
	p.print("while (")
	p.visitExpression(w.Condition)
	p.println(")")

	if !w.Body.IsBlock() {
		p.print(" { ")
	}
	p.visitStatement(w.Body)
	if !w.Body.IsBlock() {
		p.println(" } ")
	}
}
