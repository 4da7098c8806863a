package translator

import (
	"github.com/yulcrypt/yul2ec/internal/ecsyntax"
	"github.com/yulcrypt/yul2ec/internal/xerrors"
	"github.com/yulcrypt/yul2ec/internal/yulast"
)

// translateBlock lowers a Yul block into a flat EasyCrypt Block. Yul's
// lexical nesting is erased by path-qualified symbol lookup alone: the
// resulting statements are spliced directly into the enclosing procedure
// body, with no block-scoped EasyCrypt construct of their own.
func (t *Translator) translateBlock(block *yulast.Block, sctx *StatementContext) (ecsyntax.Block, error) {
	t.yulTracker.EnterBlock()

	var statements []ecsyntax.Statement
	for _, stmt := range block.Statements {
		produced, err := t.translateStatement(stmt, sctx)
		if err != nil {
			return ecsyntax.Block{}, err
		}
		statements = append(statements, produced...)
	}

	if err := t.yulTracker.Leave(); err != nil {
		return ecsyntax.Block{}, err
	}
	return ecsyntax.Block{Statements: statements}, nil
}

// translateStatement lowers one Yul statement into zero or more EasyCrypt
// statements. A nested function definition produces none here: it is
// appended directly to the result module as its own top-level Proc.
func (t *Translator) translateStatement(stmt yulast.Statement, sctx *StatementContext) ([]ecsyntax.Statement, error) {
	switch s := stmt.(type) {
	case *yulast.FunctionDefinition:
		if err := t.translateFunctionDefinition(s); err != nil {
			return nil, err
		}
		return nil, nil
	case *yulast.VariableDeclaration:
		return t.translateVariableDeclaration(s, sctx)
	case *yulast.Assignment:
		return t.translateAssignment(s, sctx)
	case *yulast.If:
		return t.translateIf(s, sctx)
	case *yulast.Switch:
		return t.translateSwitch(s, sctx)
	case *yulast.ForLoop:
		return t.translateForLoop(s, sctx)
	case *yulast.NestedBlock:
		inner, err := t.translateBlock(s.Block, sctx)
		if err != nil {
			return nil, err
		}
		return []ecsyntax.Statement{ecsyntax.BlockStmt(inner)}, nil
	case *yulast.ExpressionStatement:
		return t.translateExpressionStatement(s, sctx)
	case *yulast.Continue:
		return nil, xerrors.NewUnsupported("continue", "early-exit statements are not translated")
	case *yulast.Break:
		return nil, xerrors.NewUnsupported("break", "early-exit statements are not translated")
	case *yulast.Leave:
		return nil, xerrors.NewUnsupported("leave", "early-exit statements are not translated")
	default:
		return nil, xerrors.NewInternal("unrecognized Yul statement type %T", stmt)
	}
}

func (t *Translator) translateVariableDeclaration(decl *yulast.VariableDeclaration, sctx *StatementContext) ([]ecsyntax.Statement, error) {
	defs := make([]ecsyntax.Definition, len(decl.Bindings))
	for i, b := range decl.Bindings {
		defs[i] = ecsyntax.NewDefinition(b.Inner, ecsyntax.Default)
		t.defineVariable(b.Inner, ecsyntax.Default)
		sctx.addLocal(defs[i])
	}

	if decl.Initializer == nil {
		return nil, nil
	}

	targets := make([]ecsyntax.Reference, len(defs))
	for i, d := range defs {
		targets[i] = d.Reference()
	}
	return t.assignExpression(sctx, targets, decl.Initializer)
}

func (t *Translator) translateAssignment(a *yulast.Assignment, sctx *StatementContext) ([]ecsyntax.Statement, error) {
	targets := make([]ecsyntax.Reference, len(a.Targets))
	for i, ident := range a.Targets {
		ref, err := t.resolveReference(ident.Inner)
		if err != nil {
			return nil, err
		}
		targets[i] = ref
	}
	return t.assignExpression(sctx, targets, a.Value)
}

// assignExpression transpiles expr in non-root (value-producing) position
// and appends an EAssignment of its result to targets, after any hoisted
// statements the expression required.
func (t *Translator) assignExpression(sctx *StatementContext, targets []ecsyntax.Reference, expr yulast.Expression) ([]ecsyntax.Statement, error) {
	ectx := newExprContext()
	value, err := t.transpileExpression(expr, ectx)
	if err != nil {
		return nil, err
	}
	sctx.Locals = append(sctx.Locals, ectx.Locals...)
	statements := append(ectx.Statements, ecsyntax.EAssignment(targets, value))
	return statements, nil
}

func (t *Translator) translateExpressionStatement(es *yulast.ExpressionStatement, sctx *StatementContext) ([]ecsyntax.Statement, error) {
	ectx := newExprContext()
	result, err := t.transpileExpressionRoot(es.Expression, ectx)
	sctx.Locals = append(sctx.Locals, ectx.Locals...)
	if err != nil {
		return nil, err
	}
	statements := ectx.Statements
	if result != nil {
		statements = append(statements, ecsyntax.ExpressionStmt(*result))
	}
	return statements, nil
}

func (t *Translator) translateIf(s *yulast.If, sctx *StatementContext) ([]ecsyntax.Statement, error) {
	t.yulTracker.EnterIfCond()
	ectx := newExprContext()
	cond, err := t.transpileExpression(s.Condition, ectx)
	if err != nil {
		return nil, err
	}
	if err := t.yulTracker.Leave(); err != nil {
		return nil, err
	}
	sctx.Locals = append(sctx.Locals, ectx.Locals...)
	statements := ectx.Statements
	boolCond := t.config.IntToBool(cond)

	t.yulTracker.EnterIfThen()
	body, err := t.translateBlock(s.Body, sctx)
	if err != nil {
		return nil, err
	}
	if err := t.yulTracker.Leave(); err != nil {
		return nil, err
	}

	statements = append(statements, ecsyntax.IfStmt(boolCond, ecsyntax.BlockStmt(body), nil))
	return statements, nil
}

// translateSwitch transpiles the switch expression once into a single
// temporary, then builds a right-nested if/else-if chain comparing that
// temporary against each case literal in turn, falling through to the
// default arm (or nothing) at the end of the chain.
func (t *Translator) translateSwitch(s *yulast.Switch, sctx *StatementContext) ([]ecsyntax.Statement, error) {
	ectx := newExprContext()
	value, err := t.transpileExpression(s.Expression, ectx)
	if err != nil {
		return nil, err
	}
	sctx.Locals = append(sctx.Locals, ectx.Locals...)
	statements := ectx.Statements

	tmp := t.newTmpDefinitionHere()
	sctx.addLocal(tmp)
	statements = append(statements, ecsyntax.EAssignment([]ecsyntax.Reference{tmp.Reference()}, value))

	var chain *ecsyntax.Statement
	if s.Default != nil {
		t.yulTracker.EnterIfThen()
		defaultBlock, err := t.translateBlock(s.Default, sctx)
		if err != nil {
			return nil, err
		}
		if err := t.yulTracker.Leave(); err != nil {
			return nil, err
		}
		st := ecsyntax.BlockStmt(defaultBlock)
		chain = &st
	}

	for i := len(s.Cases) - 1; i >= 0; i-- {
		c := s.Cases[i]
		litExpr, err := t.transpileLiteral(c.Literal)
		if err != nil {
			return nil, err
		}
		// Unlike a Yul `if` condition, a switch case comparison already
		// produces a target bool (the result of `=`), not a uint256 whose
		// truthiness needs coercing: it must not be passed through IntToBool.
		cond := ecsyntax.BinaryExpr(ecsyntax.Eq, ecsyntax.ReferenceExpr(tmp.Reference()), litExpr)

		t.yulTracker.EnterIfThen()
		body, err := t.translateBlock(c.Block, sctx)
		if err != nil {
			return nil, err
		}
		if err := t.yulTracker.Leave(); err != nil {
			return nil, err
		}

		arm := ecsyntax.IfStmt(cond, ecsyntax.BlockStmt(body), chain)
		chain = &arm
	}

	if chain == nil {
		return statements, nil
	}
	return append(statements, *chain), nil
}

// translateForLoop lowers `for { init } cond { post } { body }` into
// `{ init; condStatements; while (cond) { body; post; condStatements } }`:
// the condition expression's hoisted statements must be re-run before every
// re-check, so they are duplicated at both the pre-loop position and the
// tail of the loop body.
func (t *Translator) translateForLoop(f *yulast.ForLoop, sctx *StatementContext) ([]ecsyntax.Statement, error) {
	scopePath := t.yulTracker.Here()

	t.yulTracker.EnterFor1()
	prevOverride := t.declareAt
	t.declareAt = &scopePath
	init, err := t.translateBlock(f.Init, sctx)
	t.declareAt = prevOverride
	if err != nil {
		return nil, err
	}
	if err := t.yulTracker.Leave(); err != nil {
		return nil, err
	}

	t.yulTracker.EnterFor2()
	condCtx := newExprContext()
	condValue, err := t.transpileExpression(f.Condition, condCtx)
	if err != nil {
		return nil, err
	}
	if err := t.yulTracker.Leave(); err != nil {
		return nil, err
	}
	sctx.Locals = append(sctx.Locals, condCtx.Locals...)
	condStatements := condCtx.Statements
	cond := t.config.IntToBool(condValue)

	t.yulTracker.EnterFor3()
	post, err := t.translateBlock(f.Post, sctx)
	if err != nil {
		return nil, err
	}
	if err := t.yulTracker.Leave(); err != nil {
		return nil, err
	}

	body, err := t.translateBlock(f.Body, sctx)
	if err != nil {
		return nil, err
	}

	var loopBody []ecsyntax.Statement
	loopBody = append(loopBody, body.Statements...)
	loopBody = append(loopBody, post.Statements...)
	loopBody = append(loopBody, condStatements...)

	var statements []ecsyntax.Statement
	statements = append(statements, init.Statements...)
	statements = append(statements, condStatements...)
	statements = append(statements, ecsyntax.WhileStmt(cond, ecsyntax.BlockStmt(ecsyntax.Block{Statements: loopBody})))
	return statements, nil
}
