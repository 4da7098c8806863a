package translator

import (
	"github.com/yulcrypt/yul2ec/internal/ecsyntax"
	"github.com/yulcrypt/yul2ec/internal/yulast"
)

// translateFunctionDefinition lowers one Yul function (or the implicit
// BODY function standing in for an object's code block) into a Proc,
// appended directly to the result module. The function's own callable
// entry in the symbol table is seeded ahead of time by collect, not
// inserted here, so that sibling and recursive calls resolve regardless of
// textual order.
func (t *Translator) translateFunctionDefinition(fd *yulast.FunctionDefinition) error {
	t.yulTracker.EnterFunction(fd.Identifier)
	t.ecTracker.EnterProcedure(fd.Identifier)

	params := make([]ecsyntax.Definition, len(fd.Arguments))
	for i, arg := range fd.Arguments {
		params[i] = ecsyntax.NewDefinition(arg.Inner, ecsyntax.Default)
		t.defineVariable(arg.Inner, ecsyntax.Default)
	}

	results := make([]ecsyntax.Definition, len(fd.Result))
	for i, res := range fd.Result {
		results[i] = ecsyntax.NewDefinition(res.Inner, ecsyntax.Default)
		t.defineVariable(res.Inner, ecsyntax.Default)
	}
	returnType := ecsyntax.OfTypes(definitionTypes(results))

	sctx := newStatementContext()
	body, err := t.translateBlock(fd.Body, sctx)
	if err != nil {
		return err
	}

	locals := localsFor(params, results, sctx.Locals)

	if returnType.Kind != ecsyntax.TypeUnit {
		packed := make([]ecsyntax.Expression, len(results))
		for i, res := range results {
			packed[i] = ecsyntax.ReferenceExpr(res.Reference())
		}
		body.Statements = append(body.Statements, ecsyntax.ReturnStmt(ecsyntax.TupleExpr(packed)))
	}

	proc := ecsyntax.Proc{
		Name: fd.Identifier,
		Signature: ecsyntax.Signature{
			Parameters: params,
			ReturnType: returnType,
			Kind:       ecsyntax.SignatureProcedure,
		},
		Locals: locals,
		Body:   body,
	}
	t.result.Add(ecsyntax.ProcDefinition(proc))

	if err := t.ecTracker.Leave(); err != nil {
		return err
	}
	return t.yulTracker.Leave()
}

func definitionTypes(defs []ecsyntax.Definition) []ecsyntax.Type {
	types := make([]ecsyntax.Type, len(defs))
	for i, d := range defs {
		types[i] = d.EffectiveType()
	}
	return types
}

// localsFor computes a Proc's declared locals: the formal parameters that
// are also return values (a Yul function may both take and return the same
// binding), followed by every return value, followed by every variable
// declared anywhere in the function body.
func localsFor(params, results, contextLocals []ecsyntax.Definition) []ecsyntax.Definition {
	resultNames := make(map[string]bool, len(results))
	for _, r := range results {
		resultNames[r.Identifier] = true
	}

	var locals []ecsyntax.Definition
	for _, p := range params {
		if resultNames[p.Identifier] {
			locals = append(locals, p)
		}
	}
	locals = append(locals, results...)
	locals = append(locals, contextLocals...)
	return locals
}
