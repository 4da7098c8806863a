package translator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yulcrypt/yul2ec/internal/dialect"
	"github.com/yulcrypt/yul2ec/internal/ecprint"
	"github.com/yulcrypt/yul2ec/internal/ecsyntax"
	"github.com/yulcrypt/yul2ec/internal/yulast"
)

func lit(decimal string) *yulast.Literal {
	return &yulast.Literal{Kind: yulast.LiteralDecimal, Text: decimal}
}

func ident(name string) *yulast.IdentifierRef {
	return &yulast.IdentifierRef{Inner: name}
}

// TestTranslate_FunctionCallHoisting builds:
//
//	object "Test" {
//	  code {
//	    function add1(x) -> y { y := add(x, 1) }
//	    mstore(0, add1(5))
//	  }
//	}
//
// and checks that the value-returning call to add1 is hoisted into a
// temporary while the void builtin call mstore, sitting at statement root,
// is not wrapped in any further expression statement.
func TestTranslate_FunctionCallHoisting(t *testing.T) {
	add1 := &yulast.FunctionDefinition{
		Identifier: "add1",
		Arguments:  []*yulast.Identifier{{Inner: "x"}},
		Result:     []*yulast.Identifier{{Inner: "y"}},
		Body: &yulast.Block{Statements: []yulast.Statement{
			&yulast.Assignment{
				Targets: []*yulast.Identifier{{Inner: "y"}},
				Value: &yulast.FunctionCall{
					Name:      yulast.BuiltinName(yulast.Add),
					Arguments: []yulast.Expression{ident("x"), lit("1")},
				},
			},
		}},
	}

	mstoreCall := &yulast.ExpressionStatement{
		Expression: &yulast.FunctionCall{
			Name: yulast.BuiltinName(yulast.Mstore),
			Arguments: []yulast.Expression{
				lit("0"),
				&yulast.FunctionCall{
					Name:      yulast.UserName("add1"),
					Arguments: []yulast.Expression{lit("5")},
				},
			},
		},
	}

	obj := &yulast.Object{
		Identifier: "Test",
		Code: &yulast.Code{
			Block: &yulast.Block{Statements: []yulast.Statement{add1, mstoreCall}},
		},
	}

	mod, err := Translate(dialect.Standard{}, obj)
	require.NoError(t, err)
	require.Equal(t, "_Test", mod.Name)

	_, hasAdd1 := mod.Definitions["add1"]
	require.True(t, hasAdd1, "expected a top-level add1 proc")
	_, hasBody := mod.Definitions["_"+yulast.ImplicitCodeFunctionName]
	require.True(t, hasBody, "expected the implicit BODY proc")

	add1Proc := mod.Definitions["add1"].Proc
	require.Equal(t, ecsyntax.SignatureProcedure, add1Proc.Signature.Kind)
	// y is a return value but not also a parameter, x is a parameter not
	// also returned: locals = [] ++ [y] ++ [] (no context locals; the
	// assignment rewrites an existing binding, it declares nothing new).
	require.Len(t, add1Proc.Locals, 1)
	require.Equal(t, "y", add1Proc.Locals[0].Identifier)

	bodyProc := mod.Definitions["_"+yulast.ImplicitCodeFunctionName].Proc
	// One hidden temporary captures add1's result; mstore's own void call
	// contributes no local at all.
	require.Len(t, bodyProc.Locals, 1)
	require.Equal(t, "tmp0", bodyProc.Locals[0].Identifier)

	out := ecprint.Module(mod)
	require.Contains(t, out, "proc add1")
	require.Contains(t, out, "tmp0 <@ add1(")
	require.Contains(t, out, "mstore(")
	// The void mstore call must not additionally appear wrapped as a bare
	// expression statement result (no dangling "mstore(...);\nmstore(...)"
	// duplicate) — a single PAssignment with no captured target.
	require.Equal(t, 1, strings.Count(out, "mstore("))
}

// TestTranslate_RecursiveFunctionResolves exercises the definition
// collector: a function calling itself must resolve even though nothing
// has registered its own name by the time its body is walked.
func TestTranslate_RecursiveFunctionResolves(t *testing.T) {
	countdown := &yulast.FunctionDefinition{
		Identifier: "countdown",
		Arguments:  []*yulast.Identifier{{Inner: "n"}},
		Body: &yulast.Block{Statements: []yulast.Statement{
			&yulast.ExpressionStatement{
				Expression: &yulast.FunctionCall{
					Name:      yulast.UserName("countdown"),
					Arguments: []yulast.Expression{ident("n")},
				},
			},
		}},
	}

	obj := &yulast.Object{
		Identifier: "Recur",
		Code: &yulast.Code{
			Block: &yulast.Block{Statements: []yulast.Statement{countdown}},
		},
	}

	mod, err := Translate(dialect.Standard{}, obj)
	require.NoError(t, err)

	proc := mod.Definitions["countdown"].Proc
	require.True(t, proc.Signature.ReturnsUnit())

	out := ecprint.Module(mod)
	require.Contains(t, out, "countdown(")
}

// TestTranslate_SiblingProcCallIsBare checks that a call from one
// top-level function to another, both declared side by side inside the
// implicit BODY block, prints as a bare reference rather than a spuriously
// qualified one.
func TestTranslate_SiblingProcCallIsBare(t *testing.T) {
	helper := &yulast.FunctionDefinition{
		Identifier: "helper",
		Result:     []*yulast.Identifier{{Inner: "r"}},
		Body: &yulast.Block{Statements: []yulast.Statement{
			&yulast.Assignment{
				Targets: []*yulast.Identifier{{Inner: "r"}},
				Value:   lit("1"),
			},
		}},
	}
	caller := &yulast.FunctionDefinition{
		Identifier: "caller",
		Body: &yulast.Block{Statements: []yulast.Statement{
			&yulast.ExpressionStatement{
				Expression: &yulast.FunctionCall{Name: yulast.UserName("helper")},
			},
		}},
	}

	obj := &yulast.Object{
		Identifier: "Siblings",
		Code: &yulast.Code{
			Block: &yulast.Block{Statements: []yulast.Statement{helper, caller}},
		},
	}

	mod, err := Translate(dialect.Standard{}, obj)
	require.NoError(t, err)

	out := ecprint.Module(mod)
	require.Contains(t, out, "<@ helper(")
	require.NotContains(t, out, "Siblings.helper")
}
