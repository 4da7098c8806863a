package yulast

// Visitor walks a Yul syntax tree. Each method corresponds to one node kind,
// matching the specification's description of a double-dispatch-free walker
// over a closed set of node variants (no subtype polymorphism is needed
// since Statement/Expression are closed interfaces).
type Visitor interface {
	VisitObject(*Object)
	VisitCode(*Code)
	VisitBlock(*Block)
	VisitStatement(Statement)
	VisitFunctionDefinition(*FunctionDefinition)
	VisitVariableDeclaration(*VariableDeclaration)
	VisitAssignment(*Assignment)
	VisitIf(*If)
	VisitSwitch(*Switch)
	VisitForLoop(*ForLoop)
}

// BaseVisitor provides default (recurse-and-do-nothing) implementations of
// every Visitor method, so a concrete visitor can embed it and override only
// the methods it cares about — the pattern used throughout the example
// corpus for visitor base classes.
type BaseVisitor struct {
	Self Visitor
}

func (v *BaseVisitor) self() Visitor {
	if v.Self != nil {
		return v.Self
	}
	return v
}

func (v *BaseVisitor) VisitObject(o *Object) {
	self := v.self()
	self.VisitCode(o.Code)
	if o.InnerObject != nil {
		self.VisitObject(o.InnerObject)
	}
}

func (v *BaseVisitor) VisitCode(c *Code) {
	v.self().VisitBlock(c.Block)
}

func (v *BaseVisitor) VisitBlock(b *Block) {
	self := v.self()
	for _, stmt := range b.Statements {
		self.VisitStatement(stmt)
	}
}

func (v *BaseVisitor) VisitStatement(stmt Statement) {
	self := v.self()
	switch s := stmt.(type) {
	case *FunctionDefinition:
		self.VisitFunctionDefinition(s)
	case *VariableDeclaration:
		self.VisitVariableDeclaration(s)
	case *Assignment:
		self.VisitAssignment(s)
	case *If:
		self.VisitIf(s)
	case *Switch:
		self.VisitSwitch(s)
	case *ForLoop:
		self.VisitForLoop(s)
	case *NestedBlock:
		self.VisitBlock(s.Block)
	case *ExpressionStatement, *Continue, *Break, *Leave:
		// Leaf statements: nothing further to recurse into.
	}
}

func (v *BaseVisitor) VisitFunctionDefinition(fd *FunctionDefinition) {
	v.self().VisitBlock(fd.Body)
}

func (v *BaseVisitor) VisitVariableDeclaration(*VariableDeclaration) {}

func (v *BaseVisitor) VisitAssignment(*Assignment) {}

func (v *BaseVisitor) VisitIf(i *If) {
	v.self().VisitBlock(i.Body)
}

func (v *BaseVisitor) VisitSwitch(s *Switch) {
	self := v.self()
	for _, c := range s.Cases {
		self.VisitBlock(c.Block)
	}
	if s.Default != nil {
		self.VisitBlock(s.Default)
	}
}

func (v *BaseVisitor) VisitForLoop(f *ForLoop) {
	self := v.self()
	self.VisitBlock(f.Init)
	self.VisitBlock(f.Post)
	self.VisitBlock(f.Body)
}
