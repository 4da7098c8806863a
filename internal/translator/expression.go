package translator

import (
	"math/big"

	"github.com/yulcrypt/yul2ec/internal/ecsyntax"
	"github.com/yulcrypt/yul2ec/internal/symtab"
	"github.com/yulcrypt/yul2ec/internal/xerrors"
	"github.com/yulcrypt/yul2ec/internal/yulast"
)

// transpileExpression lowers a Yul expression into a target Expression,
// hoisting any side-effecting procedure call it contains into ectx.
func (t *Translator) transpileExpression(expr yulast.Expression, ectx *ExprContext) (ecsyntax.Expression, error) {
	switch e := expr.(type) {
	case *yulast.Literal:
		return t.transpileLiteral(e)
	case *yulast.IdentifierRef:
		ref, err := t.resolveReference(e.Inner)
		if err != nil {
			return ecsyntax.Expression{}, err
		}
		return ecsyntax.ReferenceExpr(ref), nil
	case *yulast.FunctionCall:
		result, err := t.transpileFunctionCall(e, ectx, false)
		if err != nil {
			return ecsyntax.Expression{}, err
		}
		if result == nil {
			return ecsyntax.Expression{}, xerrors.NewInternal("call to %q produced no value in expression position", e.Name.String())
		}
		return *result, nil
	default:
		return ecsyntax.Expression{}, xerrors.NewInternal("unrecognized Yul expression type %T", expr)
	}
}

// transpileExpressionRoot lowers expr exactly like transpileExpression,
// except that a call to a unit-returning procedure sitting at the root of a
// statement collapses to nil: its side effect is already fully captured as
// a hoisted, result-less PAssignment in ectx, leaving no expression to
// print at the statement itself.
func (t *Translator) transpileExpressionRoot(expr yulast.Expression, ectx *ExprContext) (*ecsyntax.Expression, error) {
	call, ok := expr.(*yulast.FunctionCall)
	if !ok {
		v, err := t.transpileExpression(expr, ectx)
		if err != nil {
			return nil, err
		}
		return &v, nil
	}
	return t.transpileFunctionCall(call, ectx, true)
}

// transpileExpressionList lowers a Yul argument list left to right,
// accumulating every hoisted statement into the single shared ectx so
// left-to-right evaluation order is preserved across arguments.
func (t *Translator) transpileExpressionList(exprs []yulast.Expression, ectx *ExprContext) ([]ecsyntax.Expression, error) {
	result := make([]ecsyntax.Expression, len(exprs))
	for i, e := range exprs {
		v, err := t.transpileExpression(e, ectx)
		if err != nil {
			return nil, err
		}
		result[i] = v
	}
	return result, nil
}

func (t *Translator) transpileLiteral(lit *yulast.Literal) (ecsyntax.Expression, error) {
	switch lit.Kind {
	case yulast.LiteralDecimal:
		return t.config.WrapLiteral(ecsyntax.IntLiteral(lit.Text)), nil
	case yulast.LiteralHex:
		dec, err := hexToDecimal(lit.Text)
		if err != nil {
			return ecsyntax.Expression{}, err
		}
		return t.config.WrapLiteral(ecsyntax.IntLiteral(dec)), nil
	case yulast.LiteralBool:
		digit := "0"
		if lit.Value {
			digit = "1"
		}
		return t.config.WrapLiteral(ecsyntax.IntLiteral(digit)), nil
	case yulast.LiteralString:
		return ecsyntax.LiteralExpr(ecsyntax.StringPlaceholder(lit.Text)), nil
	default:
		return ecsyntax.Expression{}, xerrors.NewInternal("unrecognized Yul literal kind %d", lit.Kind)
	}
}

func hexToDecimal(hex string) (string, error) {
	n, ok := new(big.Int).SetString(hex, 16)
	if !ok {
		return "", xerrors.NewMalformed("invalid hex literal %q", hex)
	}
	return n.String(), nil
}

// transpileFunctionCall lowers a Yul call. A builtin binary/unary op
// becomes a direct operator expression; a custom function becomes a direct
// call expression; a custom procedure is side-effecting and cannot be
// printed in expression position, so its result (unless unit, and the call
// sits at statement root) is hoisted into a fresh temporary and the call
// itself replaced with a bare reference to it.
func (t *Translator) transpileFunctionCall(call *yulast.FunctionCall, ectx *ExprContext, isRoot bool) (*ecsyntax.Expression, error) {
	info, target, err := t.resolveCallTarget(call.Name)
	if err != nil {
		return nil, err
	}

	switch info.Description.Kind {
	case symtab.DescBuiltin:
		args, err := t.transpileExpressionList(call.Arguments, ectx)
		if err != nil {
			return nil, err
		}
		switch info.Description.Builtin.Kind {
		case symtab.BuiltinBinaryOp:
			if len(args) != 2 {
				return nil, xerrors.NewInternal("binary builtin %q called with %d arguments", call.Name.String(), len(args))
			}
			v := ecsyntax.BinaryExpr(info.Description.Builtin.BinaryOp, args[0], args[1])
			return &v, nil
		case symtab.BuiltinUnaryOp:
			if len(args) != 1 {
				return nil, xerrors.NewInternal("unary builtin %q called with %d arguments", call.Name.String(), len(args))
			}
			v := ecsyntax.UnaryExpr(info.Description.Builtin.UnaryOp, args[0])
			return &v, nil
		default:
			return nil, xerrors.NewInternal("unrecognized builtin kind for %q", call.Name.String())
		}

	case symtab.DescCustom:
		switch info.Description.Custom.Specific {
		case symtab.KindFunction:
			args, err := t.transpileExpressionList(call.Arguments, ectx)
			if err != nil {
				return nil, err
			}
			v := ecsyntax.FnCallExpr(ecsyntax.FunctionCall{Target: target, Arguments: args})
			return &v, nil

		case symtab.KindProc:
			args, err := t.transpileExpressionList(call.Arguments, ectx)
			if err != nil {
				return nil, err
			}
			procCall := ecsyntax.ProcCall{Target: target, Arguments: args}
			returnsUnit := info.Type.Kind == ecsyntax.TypeArrow && info.Type.Arrow.Codomain.Kind == ecsyntax.TypeUnit

			if returnsUnit && isRoot {
				ectx.addVoidCall(procCall)
				return nil, nil
			}

			tmp := t.newTmpDefinitionHere()
			ref := ectx.addAssignment(tmp, procCall)
			v := ecsyntax.ReferenceExpr(ref)
			return &v, nil

		default:
			return nil, xerrors.NewInternal("call target %q resolves to a variable, not a callable", call.Name.String())
		}

	default:
		return nil, xerrors.NewInternal("unrecognized description kind for %q", call.Name.String())
	}
}
