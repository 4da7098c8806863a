package translator

import "github.com/yulcrypt/yul2ec/internal/ecsyntax"

// StatementContext accumulates every local the translator introduces while
// lowering one function body: each `let`-bound variable and for-loop
// temporary declared anywhere inside it, regardless of nesting depth, since
// the scope-flattening pass puts them all on the enclosing proc directly.
type StatementContext struct {
	Locals []ecsyntax.Definition
}

func newStatementContext() *StatementContext {
	return &StatementContext{}
}

func (c *StatementContext) addLocal(def ecsyntax.Definition) {
	c.Locals = append(c.Locals, def)
}

// ExprContext accumulates the statements and temporaries produced while
// lowering a single expression. A side-effecting procedure call nested
// inside an expression cannot be printed in expression position, so it is
// hoisted into a PAssignment prepended to Statements; the expression itself
// is left holding only a bare reference to the captured result.
type ExprContext struct {
	Statements []ecsyntax.Statement
	Locals     []ecsyntax.Definition
}

func newExprContext() *ExprContext {
	return &ExprContext{}
}

func (c *ExprContext) addStatement(s ecsyntax.Statement) {
	c.Statements = append(c.Statements, s)
}

func (c *ExprContext) addLocal(def ecsyntax.Definition) {
	c.Locals = append(c.Locals, def)
}

// addAssignment hoists a procedure call whose result is captured into tmp,
// returning a bare reference to it for use in the enclosing expression.
func (c *ExprContext) addAssignment(tmp ecsyntax.Definition, call ecsyntax.ProcCall) ecsyntax.Reference {
	c.addLocal(tmp)
	ref := tmp.Reference()
	c.addStatement(ecsyntax.PAssignment([]ecsyntax.Reference{ref}, call))
	return ref
}

// addVoidCall hoists a procedure call whose result is unit and thus
// discarded entirely: no target reference is bound.
func (c *ExprContext) addVoidCall(call ecsyntax.ProcCall) {
	c.addStatement(ecsyntax.PAssignment(nil, call))
}
