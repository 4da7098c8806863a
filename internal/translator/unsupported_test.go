package translator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yulcrypt/yul2ec/internal/dialect"
	"github.com/yulcrypt/yul2ec/internal/xerrors"
	"github.com/yulcrypt/yul2ec/internal/yulast"
)

func requireUnsupported(t *testing.T, err error) {
	t.Helper()
	require.Error(t, err)
	var unsupported *xerrors.Unsupported
	require.True(t, errors.As(err, &unsupported), "expected an Unsupported error, got %v", err)
}

func objectWithBody(stmts ...yulast.Statement) *yulast.Object {
	return &yulast.Object{
		Identifier: "Unsupported",
		Code:       &yulast.Code{Block: &yulast.Block{Statements: stmts}},
	}
}

func TestTranslate_RejectsContinue(t *testing.T) {
	_, err := Translate(dialect.Standard{}, objectWithBody(&yulast.Continue{}))
	requireUnsupported(t, err)
}

func TestTranslate_RejectsBreak(t *testing.T) {
	_, err := Translate(dialect.Standard{}, objectWithBody(&yulast.Break{}))
	requireUnsupported(t, err)
}

func TestTranslate_RejectsLeave(t *testing.T) {
	_, err := Translate(dialect.Standard{}, objectWithBody(&yulast.Leave{}))
	requireUnsupported(t, err)
}
