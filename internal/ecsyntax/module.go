package ecsyntax

import "sort"

// TopDefinitionKind distinguishes whether a top-level module member is a
// Proc or a Function.
type TopDefinitionKind int

const (
	TopProc TopDefinitionKind = iota
	TopFunction
)

// TopDefinition is a named, top-level module member: either a Proc or a
// Function.
type TopDefinition struct {
	Kind     TopDefinitionKind
	Proc     *Proc
	Function *Function
}

func ProcDefinition(p Proc) TopDefinition {
	return TopDefinition{Kind: TopProc, Proc: &p}
}

func FunctionDefinition(f Function) TopDefinition {
	return TopDefinition{Kind: TopFunction, Function: &f}
}

// Name returns the definition's identifier.
func (d TopDefinition) Name() string {
	if d.Kind == TopProc {
		return d.Proc.Name
	}
	return d.Function.Name
}

// Module is the translation unit's single output: a named EasyCrypt module
// containing every function and procedure produced from one Yul object.
type Module struct {
	Name        string
	Definitions map[string]TopDefinition
}

// NewModule creates an empty, named Module.
func NewModule(name string) *Module {
	return &Module{Name: name, Definitions: make(map[string]TopDefinition)}
}

// Add inserts or replaces a top-level definition, keyed by its name.
func (m *Module) Add(def TopDefinition) {
	m.Definitions[def.Name()] = def
}

// NamesOrdered returns every definition's name in sorted order, giving the
// printer a deterministic emission order.
func (m *Module) NamesOrdered() []string {
	names := make([]string, 0, len(m.Definitions))
	for name := range m.Definitions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
