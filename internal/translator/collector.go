package translator

import (
	"github.com/yulcrypt/yul2ec/internal/dialect"
	"github.com/yulcrypt/yul2ec/internal/ecsyntax"
	"github.com/yulcrypt/yul2ec/internal/symtab"
	"github.com/yulcrypt/yul2ec/internal/yulast"
	"github.com/yulcrypt/yul2ec/internal/yulpath"
)

// collect walks object once, ahead of the main translation pass, recording
// every function definition's own FullName and target location. Seeding
// the symbol table with this map before translating a single statement is
// what lets a call resolve a sibling function defined later in the same
// block, or itself (direct recursion) — translating strictly in textual
// order, with each function only registering itself as it is reached,
// could resolve neither.
func collect(object *yulast.Object) ([]dialect.StandardDefinition, error) {
	c := &collector{tracker: yulpath.NewTracker()}
	c.visitObject(object)
	return c.defs, nil
}

type collector struct {
	tracker   *yulpath.Tracker
	declareAt *yulpath.Path
	defs      []dialect.StandardDefinition
}

func (c *collector) visitObject(o *yulast.Object) {
	c.tracker.EnterObject(o.Identifier)
	c.visitCode(o.Code)
	if o.InnerObject != nil {
		c.visitObject(o.InnerObject)
	}
	_ = c.tracker.Leave()
}

func (c *collector) visitCode(code *yulast.Code) {
	c.tracker.EnterCode()
	c.visitFunctionDefinition(yulast.ImplicitCodeFunction(code))
	_ = c.tracker.Leave()
}

func (c *collector) visitFunctionDefinition(fd *yulast.FunctionDefinition) {
	enclosing := c.tracker.Here()

	c.tracker.EnterFunction(fd.Identifier)
	c.visitBlock(fd.Body)
	_ = c.tracker.Leave()

	// A Proc's location is its enclosing module only, never a procedure: in
	// EasyCrypt every proc/function is a flat top-level module member, no
	// matter how deeply Yul nested its textual definition (a function
	// declared inside BODY's block is still a sibling of BODY, not a
	// member of it).
	location := symtab.DefinitionLocation{
		Identifier: fd.Identifier,
		Path:       ecPathForYulPath(enclosing).ModuleOnly(),
	}
	c.defs = append(c.defs, dialect.StandardDefinition{
		Name: symtab.CustomName(fd.Identifier, enclosing),
		Info: symtab.DefinitionInfo{
			Description: symtab.Description{
				Kind: symtab.DescCustom,
				Custom: symtab.Custom{
					Specific: symtab.KindProc,
					Location: location,
				},
			},
			Type: arrowTypeFor(fd),
		},
	})
}

func arrowTypeFor(fd *yulast.FunctionDefinition) ecsyntax.Type {
	inputs := make([]ecsyntax.Type, len(fd.Arguments))
	for i := range inputs {
		inputs[i] = ecsyntax.Default
	}
	outputs := make([]ecsyntax.Type, len(fd.Result))
	for i := range outputs {
		outputs[i] = ecsyntax.Default
	}
	return ecsyntax.ArrowOf(ecsyntax.OfTypes(inputs), ecsyntax.OfTypes(outputs))
}

func (c *collector) visitBlock(b *yulast.Block) {
	c.tracker.EnterBlock()
	for _, stmt := range b.Statements {
		c.visitStatement(stmt)
	}
	_ = c.tracker.Leave()
}

func (c *collector) visitStatement(stmt yulast.Statement) {
	switch s := stmt.(type) {
	case *yulast.FunctionDefinition:
		c.visitFunctionDefinition(s)
	case *yulast.VariableDeclaration:
		for _, b := range s.Bindings {
			c.addVariable(b.Inner)
		}
	case *yulast.If:
		c.tracker.EnterIfCond()
		_ = c.tracker.Leave()
		c.tracker.EnterIfThen()
		c.visitBlock(s.Body)
		_ = c.tracker.Leave()
	case *yulast.Switch:
		for _, cs := range s.Cases {
			c.tracker.EnterIfThen()
			c.visitBlock(cs.Block)
			_ = c.tracker.Leave()
		}
		if s.Default != nil {
			c.tracker.EnterIfThen()
			c.visitBlock(s.Default)
			_ = c.tracker.Leave()
		}
	case *yulast.ForLoop:
		scopePath := c.tracker.Here()
		c.tracker.EnterFor1()
		prev := c.declareAt
		c.declareAt = &scopePath
		c.visitBlock(s.Init)
		c.declareAt = prev
		_ = c.tracker.Leave()

		c.tracker.EnterFor3()
		c.visitBlock(s.Post)
		_ = c.tracker.Leave()

		c.visitBlock(s.Body)
	case *yulast.NestedBlock:
		c.visitBlock(s.Block)
	}
}

func (c *collector) addVariable(identifier string) {
	yulPath := c.tracker.Here()
	if c.declareAt != nil {
		yulPath = *c.declareAt
	}
	loc := symtab.DefinitionLocation{Identifier: identifier, Path: ecPathForYulPath(yulPath)}
	c.defs = append(c.defs, dialect.StandardDefinition{
		Name: symtab.CustomName(identifier, yulPath),
		Info: symtab.Variable(loc, ecsyntax.Default),
	})
}
