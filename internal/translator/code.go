package translator

import "github.com/yulcrypt/yul2ec/internal/yulast"

// translateCode lowers an object's `code` block by wrapping it in the
// implicit BODY function and translating that like any other function
// definition.
func (t *Translator) translateCode(code *yulast.Code) error {
	t.yulTracker.EnterCode()

	fd := yulast.ImplicitCodeFunction(code)
	if err := t.translateFunctionDefinition(fd); err != nil {
		return err
	}

	return t.yulTracker.Leave()
}
