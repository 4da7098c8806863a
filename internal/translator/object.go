package translator

import "github.com/yulcrypt/yul2ec/internal/yulast"

// translateObject lowers one Yul object: its code block, and recursively
// its inner object if one is present. Every definition produced, at any
// nesting depth, is added to the single result module created in
// Translate — Yul objects nest only to scope identifiers, not to produce
// separate EasyCrypt modules.
func (t *Translator) translateObject(obj *yulast.Object) error {
	t.yulTracker.EnterObject(obj.Identifier)
	t.ecTracker.EnterModule(obj.Identifier)

	if err := t.translateCode(obj.Code); err != nil {
		return err
	}

	if obj.InnerObject != nil {
		if err := t.translateObject(obj.InnerObject); err != nil {
			return err
		}
	}

	if err := t.ecTracker.Leave(); err != nil {
		return err
	}
	return t.yulTracker.Leave()
}
