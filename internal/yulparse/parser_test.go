package yulparse

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yulcrypt/yul2ec/internal/yulast"
)

func TestParse_ObjectWithFunctionAndCall(t *testing.T) {
	source := `
object "Test" {
  code {
    function add1(x) -> y {
      y := add(x, 1)
    }
    mstore(0, add1(5))
  }
}
`
	obj, err := Parse(source)
	require.NoError(t, err)
	require.Equal(t, "Test", obj.Identifier)
	require.Nil(t, obj.InnerObject)
	require.Len(t, obj.Code.Block.Statements, 2)

	fn, ok := obj.Code.Block.Statements[0].(*yulast.FunctionDefinition)
	require.True(t, ok, "expected a function definition as the first statement")
	require.Equal(t, "add1", fn.Identifier)
	require.Len(t, fn.Arguments, 1)
	require.Equal(t, "x", fn.Arguments[0].Inner)
	require.Len(t, fn.Result, 1)
	require.Equal(t, "y", fn.Result[0].Inner)
	require.Len(t, fn.Body.Statements, 1)

	assign, ok := fn.Body.Statements[0].(*yulast.Assignment)
	require.True(t, ok, "expected an assignment inside add1's body")
	require.Len(t, assign.Targets, 1)
	require.Equal(t, "y", assign.Targets[0].Inner)
	call, ok := assign.Value.(*yulast.FunctionCall)
	require.True(t, ok)
	require.True(t, call.Name.IsBuiltin)
	require.Equal(t, yulast.Add, call.Name.Builtin)

	es, ok := obj.Code.Block.Statements[1].(*yulast.ExpressionStatement)
	require.True(t, ok, "expected the mstore call as the second statement")
	mstoreCall, ok := es.Expression.(*yulast.FunctionCall)
	require.True(t, ok)
	require.Equal(t, yulast.Mstore, mstoreCall.Name.Builtin)
	require.Len(t, mstoreCall.Arguments, 2)
	nested, ok := mstoreCall.Arguments[1].(*yulast.FunctionCall)
	require.True(t, ok, "expected add1(5) nested as mstore's second argument")
	require.False(t, nested.Name.IsBuiltin)
	require.Equal(t, "add1", nested.Name.User)
}

func TestParse_IfSwitchForLoop(t *testing.T) {
	source := `
object "Control" {
  code {
    function f(x) {
      if lt(x, 10) {
        mstore(0, x)
      }
      switch x
      case 0 { mstore(1, 1) }
      case 1 { mstore(1, 2) }
      default { mstore(1, 3) }
      for { let i := 0 } lt(i, x) { i := add(i, 1) } {
        mstore(i, i)
      }
    }
  }
}
`
	obj, err := Parse(source)
	require.NoError(t, err)

	fn := obj.Code.Block.Statements[0].(*yulast.FunctionDefinition)
	require.Len(t, fn.Body.Statements, 3)

	ifStmt, ok := fn.Body.Statements[0].(*yulast.If)
	require.True(t, ok)
	require.Len(t, ifStmt.Body.Statements, 1)

	sw, ok := fn.Body.Statements[1].(*yulast.Switch)
	require.True(t, ok)
	require.Len(t, sw.Cases, 2)
	require.NotNil(t, sw.Default)
	require.Equal(t, yulast.LiteralDecimal, sw.Cases[0].Literal.Kind)
	require.Equal(t, "0", sw.Cases[0].Literal.Text)

	loop, ok := fn.Body.Statements[2].(*yulast.ForLoop)
	require.True(t, ok)
	require.Len(t, loop.Init.Statements, 1)
	require.Len(t, loop.Post.Statements, 1)
	require.Len(t, loop.Body.Statements, 1)
}

func TestParse_HexLiteralAndMultiAssignment(t *testing.T) {
	source := `
object "Hex" {
  code {
    function f() -> a, b {
      a := 0x2a
      a, b := g()
    }
  }
}
`
	obj, err := Parse(source)
	require.NoError(t, err)

	fn := obj.Code.Block.Statements[0].(*yulast.FunctionDefinition)
	require.Len(t, fn.Result, 2)

	first := fn.Body.Statements[0].(*yulast.Assignment)
	lit := first.Value.(*yulast.Literal)
	require.Equal(t, yulast.LiteralHex, lit.Kind)
	require.Equal(t, "2a", lit.Text)

	second := fn.Body.Statements[1].(*yulast.Assignment)
	require.Len(t, second.Targets, 2)
	require.Equal(t, "a", second.Targets[0].Inner)
	require.Equal(t, "b", second.Targets[1].Inner)
}

func TestParse_RejectsMalformedObject(t *testing.T) {
	_, err := Parse(`object "Bad" { let x := 1 }`)
	require.Error(t, err)
}
