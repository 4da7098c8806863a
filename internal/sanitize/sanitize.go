// Package sanitize implements the post-order rewrite that makes every
// identifier in a translated module safe to print as EasyCrypt source: it
// replaces `$` with `_`, and prepends `_` to any identifier that is
// capitalized or collides with an EasyCrypt keyword.
package sanitize

import (
	"strings"
	"unicode"

	"github.com/yulcrypt/yul2ec/internal/ecsyntax"
)

// keywords is the EasyCrypt reference manual's lexical keyword list
// (Section 2.1, "Lexical Categories").
var keywords = map[string]bool{
	"abbrev": true, "abort": true, "abstract": true, "admit": true, "admitted": true,
	"algebra": true, "alias": true, "apply": true, "as": true, "assert": true,
	"assumption": true, "async": true, "auto": true, "axiom": true, "axiomatized": true,
	"beta": true, "by": true, "byequiv": true, "byphoare": true, "bypr": true,
	"call": true, "case": true, "cfold": true, "change": true, "class": true,
	"clear": true, "clone": true, "congr": true, "conseq": true, "const": true,
	"cut": true, "debug": true, "declare": true, "delta": true, "do": true,
	"done": true, "dump": true, "eager": true, "elif": true, "elim": true,
	"else": true, "end": true, "equiv": true, "eta": true, "exact": true,
	"exfalso": true, "exists": true, "expect": true, "export": true, "fel": true,
	"field": true, "fieldeq": true, "first": true, "fission": true, "forall": true,
	"fun": true, "fusion": true, "glob": true, "goal": true, "have": true,
	"hint": true, "hoare": true, "idtac": true, "if": true, "import": true,
	"in": true, "include": true, "inductive": true, "inline": true, "instance": true,
	"iota": true, "islossless": true, "kill": true, "last": true, "left": true,
	"lemma": true, "let": true, "local": true, "logic": true, "modpath": true,
	"module": true, "move": true, "nosmt": true, "notation": true, "of": true,
	"op": true, "phoare": true, "pose": true, "Pr": true, "pr_bounded": true,
	"pragma": true, "pred": true, "print": true, "proc": true, "progress": true,
	"proof": true, "prover": true, "qed": true, "rcondf": true, "rcondt": true,
	"realize": true, "reflexivity": true, "remove": true, "rename": true, "replace": true,
	"require": true, "res": true, "return": true, "rewrite": true, "right": true,
	"ring": true, "ringeq": true, "rnd": true, "rwnormal": true, "search": true,
	"section": true, "Self": true, "seq": true, "sim": true, "simplify": true,
	"skip": true, "smt": true, "solve": true, "sp": true, "split": true,
	"splitwhile": true, "strict": true, "subst": true, "suff": true, "swap": true,
	"symmetry": true, "then": true, "theory": true, "time": true, "timeout": true,
	"Top": true, "transitivity": true, "trivial": true, "try": true, "type": true,
	"undo": true, "unroll": true, "var": true, "while": true, "why3": true,
	"with": true, "wlog": true, "wp": true, "zeta": true,
}

func identifier(name string) string {
	result := strings.ReplaceAll(name, "$", "_")
	startsUppercase := name != "" && unicode.IsUpper(rune(name[0]))
	if startsUppercase || keywords[name] {
		result = "_" + result
	}
	return result
}

func definition(d ecsyntax.Definition) ecsyntax.Definition {
	d.Identifier = identifier(d.Identifier)
	return d
}

func reference(r ecsyntax.Reference) ecsyntax.Reference {
	r.Identifier = identifier(r.Identifier)
	return r
}

func references(rs []ecsyntax.Reference) []ecsyntax.Reference {
	result := make([]ecsyntax.Reference, len(rs))
	for i, r := range rs {
		result[i] = reference(r)
	}
	return result
}

func signature(sig ecsyntax.Signature) ecsyntax.Signature {
	params := make([]ecsyntax.Definition, len(sig.Parameters))
	for i, p := range sig.Parameters {
		params[i] = definition(p)
	}
	sig.Parameters = params
	return sig
}

func expression(e ecsyntax.Expression) ecsyntax.Expression {
	switch e.Kind {
	case ecsyntax.ExprUnary:
		return ecsyntax.UnaryExpr(e.UnaryOp, expression(e.Operands[0]))
	case ecsyntax.ExprBinary:
		return ecsyntax.BinaryExpr(e.BinaryOp, expression(e.Operands[0]), expression(e.Operands[1]))
	case ecsyntax.ExprFnCall:
		return ecsyntax.FnCallExpr(ecsyntax.FunctionCall{
			Target:    reference(e.Call.Target),
			Arguments: expressions(e.Call.Arguments),
		})
	case ecsyntax.ExprReference:
		return ecsyntax.ReferenceExpr(reference(e.Reference))
	case ecsyntax.ExprTuple:
		return ecsyntax.TupleExpr(expressions(e.Operands))
	default: // ExprLiteral
		return e
	}
}

func expressions(es []ecsyntax.Expression) []ecsyntax.Expression {
	result := make([]ecsyntax.Expression, len(es))
	for i, e := range es {
		result[i] = expression(e)
	}
	return result
}

func statement(s ecsyntax.Statement) ecsyntax.Statement {
	switch s.Kind {
	case ecsyntax.StmtExpression:
		return ecsyntax.ExpressionStmt(expression(s.Expr))
	case ecsyntax.StmtBlock:
		return ecsyntax.BlockStmt(block(s.Block))
	case ecsyntax.StmtIfConditional:
		var no *ecsyntax.Statement
		if s.If.No != nil {
			n := statement(*s.If.No)
			no = &n
		}
		return ecsyntax.IfStmt(expression(s.If.Condition), statement(s.If.Yes), no)
	case ecsyntax.StmtEAssignment:
		return ecsyntax.EAssignment(references(s.Targets), expression(s.Value))
	case ecsyntax.StmtPAssignment:
		return ecsyntax.PAssignment(references(s.Targets), ecsyntax.ProcCall{
			Target:    reference(s.Call.Target),
			Arguments: expressions(s.Call.Arguments),
		})
	case ecsyntax.StmtReturn:
		return ecsyntax.ReturnStmt(expression(s.Expr))
	case ecsyntax.StmtWhileLoop:
		return ecsyntax.WhileStmt(expression(s.While.Condition), statement(s.While.Body))
	default:
		return s
	}
}

func block(b ecsyntax.Block) ecsyntax.Block {
	statements := make([]ecsyntax.Statement, len(b.Statements))
	for i, s := range b.Statements {
		statements[i] = statement(s)
	}
	return ecsyntax.Block{Statements: statements}
}

func function(f ecsyntax.Function) ecsyntax.Function {
	f.Name = identifier(f.Name)
	f.Signature = signature(f.Signature)
	f.Body = expression(f.Body)
	return f
}

func proc(p ecsyntax.Proc) ecsyntax.Proc {
	p.Name = identifier(p.Name)
	p.Signature = signature(p.Signature)
	locals := make([]ecsyntax.Definition, len(p.Locals))
	for i, l := range p.Locals {
		locals[i] = definition(l)
	}
	p.Locals = locals
	p.Body = block(p.Body)
	return p
}

// Module rewrites every identifier in m and returns the sanitized result.
// The input is left unmodified.
func Module(m *ecsyntax.Module) *ecsyntax.Module {
	result := ecsyntax.NewModule(identifier(m.Name))
	for _, name := range m.NamesOrdered() {
		def := m.Definitions[name]
		switch def.Kind {
		case ecsyntax.TopProc:
			result.Add(ecsyntax.ProcDefinition(proc(*def.Proc)))
		case ecsyntax.TopFunction:
			result.Add(ecsyntax.FunctionDefinition(function(*def.Function)))
		}
	}
	return result
}
