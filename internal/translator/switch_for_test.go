package translator

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yulcrypt/yul2ec/internal/dialect"
	"github.com/yulcrypt/yul2ec/internal/ecprint"
	"github.com/yulcrypt/yul2ec/internal/ecsyntax"
	"github.com/yulcrypt/yul2ec/internal/yulast"
)

// TestTranslate_SwitchBecomesIfChain checks that a switch with two cases
// and a default lowers to one temporary holding the scrutinee and a
// right-nested if/else-if/else chain comparing it against each case.
func TestTranslate_SwitchBecomesIfChain(t *testing.T) {
	fn := &yulast.FunctionDefinition{
		Identifier: "classify",
		Arguments:  []*yulast.Identifier{{Inner: "x"}},
		Body: &yulast.Block{Statements: []yulast.Statement{
			&yulast.Switch{
				Expression: ident("x"),
				Cases: []*yulast.Case{
					{Literal: lit("0"), Block: &yulast.Block{}},
					{Literal: lit("1"), Block: &yulast.Block{}},
				},
				Default: &yulast.Block{},
			},
		}},
	}

	obj := &yulast.Object{
		Identifier: "Switches",
		Code:       &yulast.Code{Block: &yulast.Block{Statements: []yulast.Statement{fn}}},
	}

	mod, err := Translate(dialect.Standard{}, obj)
	require.NoError(t, err)

	proc := mod.Definitions["classify"].Proc
	require.Len(t, proc.Body.Statements, 2)
	require.Equal(t, ecsyntax.StmtEAssignment, proc.Body.Statements[0].Kind)

	top := proc.Body.Statements[1]
	require.Equal(t, ecsyntax.StmtIfConditional, top.Kind)
	// A switch-case comparison is a raw `=` test, never wrapped in
	// bool_of_uint256 the way an `if` condition is: the comparison already
	// yields a target bool.
	require.Equal(t, ecsyntax.ExprBinary, top.If.Condition.Kind)
	require.Equal(t, ecsyntax.Eq, top.If.Condition.BinaryOp)
	require.NotNil(t, top.If.No)
	require.Equal(t, ecsyntax.StmtIfConditional, top.If.No.Kind)
	require.NotNil(t, top.If.No.If.No)
	require.Equal(t, ecsyntax.StmtBlock, top.If.No.If.No.Kind)

	out := ecprint.Module(mod)
	require.Contains(t, out, "if (")
	require.Contains(t, out, "else")
}

// TestTranslate_ForLoopBecomesWhile checks the init/cond/post lowering:
// `for { let i := 0 } lt(i, 10) { i := add(i, 1) } { mstore(i, i) }`
// becomes `i := 0; tmp0 <@ lt(i, 10); while (cond) { mstore(i, i);
// i := add(i,1); tmp0 <@ lt(i, 10) }`.
func TestTranslate_ForLoopBecomesWhile(t *testing.T) {
	fn := &yulast.FunctionDefinition{
		Identifier: "loop",
		Body: &yulast.Block{Statements: []yulast.Statement{
			&yulast.ForLoop{
				Init: &yulast.Block{Statements: []yulast.Statement{
					&yulast.VariableDeclaration{
						Bindings:    []*yulast.Identifier{{Inner: "i"}},
						Initializer: lit("0"),
					},
				}},
				Condition: &yulast.FunctionCall{
					Name:      yulast.BuiltinName(yulast.Lt),
					Arguments: []yulast.Expression{ident("i"), lit("10")},
				},
				Post: &yulast.Block{Statements: []yulast.Statement{
					&yulast.Assignment{
						Targets: []*yulast.Identifier{{Inner: "i"}},
						Value: &yulast.FunctionCall{
							Name:      yulast.BuiltinName(yulast.Add),
							Arguments: []yulast.Expression{ident("i"), lit("1")},
						},
					},
				}},
				Body: &yulast.Block{Statements: []yulast.Statement{
					&yulast.ExpressionStatement{
						Expression: &yulast.FunctionCall{
							Name:      yulast.BuiltinName(yulast.Mstore),
							Arguments: []yulast.Expression{ident("i"), ident("i")},
						},
					},
				}},
			},
		}},
	}

	obj := &yulast.Object{
		Identifier: "Loops",
		Code:       &yulast.Code{Block: &yulast.Block{Statements: []yulast.Statement{fn}}},
	}

	mod, err := Translate(dialect.Standard{}, obj)
	require.NoError(t, err)

	proc := mod.Definitions["loop"].Proc
	// init's `let i := 0` plus the condition's hoisted `lt` proc call (`lt`
	// is wired as a prelude procedure, not a direct operator, so even a
	// side-effect-free comparison needs a temporary) both precede the while.
	require.Len(t, proc.Body.Statements, 3)
	require.Equal(t, ecsyntax.StmtEAssignment, proc.Body.Statements[0].Kind)
	require.Equal(t, ecsyntax.StmtPAssignment, proc.Body.Statements[1].Kind)

	while := proc.Body.Statements[2]
	require.Equal(t, ecsyntax.StmtWhileLoop, while.Kind)
	require.Equal(t, ecsyntax.StmtBlock, while.While.Body.Kind)
	// body (mstore void call), post (i := add(i,1)), then the condition's
	// hoisted lt call duplicated so it is re-evaluated before the re-check.
	require.Len(t, while.While.Body.Block.Statements, 3)
	require.Equal(t, ecsyntax.StmtPAssignment, while.While.Body.Block.Statements[0].Kind)
	require.Equal(t, ecsyntax.StmtEAssignment, while.While.Body.Block.Statements[1].Kind)
	require.Equal(t, ecsyntax.StmtPAssignment, while.While.Body.Block.Statements[2].Kind)

	out := ecprint.Module(mod)
	require.Contains(t, out, "while (")
}
