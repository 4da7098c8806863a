// Package translator lowers a parsed Yul object tree into an EasyCrypt
// module: a two-pass symbol resolver (a definition collector ahead of the
// main walk), an expression lifter that hoists side-effecting calls into
// temporaries, a statement transpiler for block/if/switch/for, and finally
// the name-sanitizer pass, wired together behind the single Translate entry
// point.
package translator

import (
	"github.com/yulcrypt/yul2ec/internal/dialect"
	"github.com/yulcrypt/yul2ec/internal/ecpath"
	"github.com/yulcrypt/yul2ec/internal/ecsyntax"
	"github.com/yulcrypt/yul2ec/internal/sanitize"
	"github.com/yulcrypt/yul2ec/internal/symtab"
	"github.com/yulcrypt/yul2ec/internal/xerrors"
	"github.com/yulcrypt/yul2ec/internal/yulast"
	"github.com/yulcrypt/yul2ec/internal/yulpath"
)

// Translator lowers one Yul object tree into one EasyCrypt module. A
// Translator is single-use: construct one per Translate call.
type Translator struct {
	config  dialect.Config
	symbols *symtab.Table
	tmpGen  *NameGenerator

	yulTracker *yulpath.Tracker
	ecTracker  *ecpath.Tracker

	// declareAt, when non-nil, overrides the path under which the next
	// variable declarations are registered in the symbol table. It exists
	// for for-loop initializers: a variable bound in a for-loop's init
	// block is visible in the loop's condition, post, and body — its
	// sibling regions, not its descendants — so it must be registered at
	// the for-loop's own enclosing path rather than the deeper path the
	// tracker is actually sitting at while walking the init block.
	declareAt *yulpath.Path

	result *ecsyntax.Module
}

func newTranslator(config dialect.Config) *Translator {
	return &Translator{
		config:     config,
		symbols:    symtab.New(),
		tmpGen:     NewNameGenerator(),
		yulTracker: yulpath.NewTracker(),
		ecTracker:  ecpath.NewTracker(),
	}
}

// Translate lowers object into a complete, sanitized EasyCrypt module.
func Translate(config dialect.Config, object *yulast.Object) (*ecsyntax.Module, error) {
	t := newTranslator(config)
	t.result = ecsyntax.NewModule(object.Identifier)

	for _, def := range config.StandardDefinitions() {
		t.symbols.Insert(def.Name, def.Info)
	}

	collected, err := collect(object)
	if err != nil {
		return nil, err
	}
	for _, def := range collected {
		t.symbols.Insert(def.Name, def.Info)
	}

	if err := t.translateObject(object); err != nil {
		return nil, err
	}

	return sanitize.Module(t.result), nil
}

// ecPathForYulPath derives a target-side path from a Yul-side path: only
// Object and Function steps survive, renamed to Module and Procedure
// respectively. Every other Yul step kind (Block, IfCond, IfThen, For1-3)
// is lexical structure the scope-flattening pass erases, so it contributes
// nothing to the target path.
func ecPathForYulPath(yp yulpath.Path) ecpath.Path {
	ep := ecpath.Empty()
	for _, step := range yp.Steps {
		switch step.Kind {
		case yulpath.Object:
			ep = ep.Push(ecpath.Step{Kind: ecpath.Module, Name: step.Name})
		case yulpath.Function:
			ep = ep.Push(ecpath.Step{Kind: ecpath.Procedure, Name: step.Name})
		}
	}
	return ep
}

// defineVariable registers identifier as a variable at the tracker's
// current Yul path (or at the declareAt override, if one is set), with its
// target location at the current EasyCrypt path.
func (t *Translator) defineVariable(identifier string, typ ecsyntax.Type) {
	yulPath := t.yulTracker.Here()
	if t.declareAt != nil {
		yulPath = *t.declareAt
	}
	loc := symtab.DefinitionLocation{Identifier: identifier, Path: t.ecTracker.Here()}
	name := symtab.CustomName(identifier, yulPath)
	t.symbols.Insert(name, symtab.Variable(loc, typ))
}

// newTmpDefinitionHere allocates and registers a fresh temporary at the
// current scope, returning the Definition introducing it.
func (t *Translator) newTmpDefinitionHere() ecsyntax.Definition {
	name := t.tmpGen.Next()
	t.defineVariable(name, ecsyntax.Default)
	return ecsyntax.NewDefinition(name, ecsyntax.Default)
}

// resolveReference looks up identifier as a variable, visible from the
// tracker's current Yul path, and produces a target Reference to it.
func (t *Translator) resolveReference(identifier string) (ecsyntax.Reference, error) {
	info, ok := t.symbols.Lookup(yulast.UserName(identifier), t.yulTracker.Here())
	if !ok {
		return ecsyntax.Reference{}, xerrors.NewInternal("unresolved identifier %q", identifier)
	}
	if info.Description.Kind != symtab.DescCustom || info.Description.Custom.Specific != symtab.KindVariable {
		return ecsyntax.Reference{}, xerrors.NewInternal("identifier %q does not resolve to a variable", identifier)
	}
	return info.Description.Custom.Location.Reference(t.ecTracker.Here()), nil
}

// resolveCallTarget looks up name as a callable, visible from the
// tracker's current Yul path, and produces the target Reference a Custom
// call site should address (the zero Reference for a Builtin, whose
// rendering never names a callee).
func (t *Translator) resolveCallTarget(name yulast.Name) (symtab.DefinitionInfo, ecsyntax.Reference, error) {
	info, ok := t.symbols.Lookup(name, t.yulTracker.Here())
	if !ok {
		return symtab.DefinitionInfo{}, ecsyntax.Reference{}, xerrors.NewInternal("unresolved call target %q", name.String())
	}
	var target ecsyntax.Reference
	if info.Description.Kind == symtab.DescCustom {
		// Custom call targets are always Procs or Functions, which live at
		// their enclosing module only (see collector.visitFunctionDefinition):
		// compare against the module chain alone, not the calling
		// procedure's own path, so two sibling procs in the same module
		// address each other bare.
		target = info.Description.Custom.Location.Reference(t.ecTracker.Here().ModuleOnly())
	}
	return info, target, nil
}
