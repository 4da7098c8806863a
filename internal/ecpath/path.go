// Package ecpath implements the EasyCrypt-side lexical path and its
// tracker. It mirrors internal/yulpath's shape, but the target dialect's
// lexical structure is flatter: only modules and procedures nest, since the
// scope-flattening pass collapses every Yul block, if-branch, and for-loop
// region into the enclosing procedure before anything is printed.
package ecpath

import (
	"strings"

	"github.com/yulcrypt/yul2ec/internal/xerrors"
)

// StepKind identifies the kind of lexical region a Step represents.
type StepKind int

const (
	Module StepKind = iota
	Procedure
)

// Step is one lexical region on the target side: a named module or a named
// procedure.
type Step struct {
	Kind StepKind
	Name string
}

func (s Step) String() string {
	return s.Name
}

// Path is an ordered sequence of target-side steps from the root of the
// EasyCrypt module tree.
type Path struct {
	Steps []Step
}

// Empty returns the root path.
func Empty() Path {
	return Path{}
}

// Push returns a new path with step appended.
func (p Path) Push(step Step) Path {
	next := make([]Step, len(p.Steps)+1)
	copy(next, p.Steps)
	next[len(p.Steps)] = step
	return Path{Steps: next}
}

// Pop returns the path with its last step removed.
func (p Path) Pop() (Path, error) {
	if len(p.Steps) == 0 {
		return Path{}, xerrors.NewInternal("cannot pop the root EasyCrypt path")
	}
	return Path{Steps: p.Steps[:len(p.Steps)-1]}, nil
}

// Equal reports whether two paths have identical step sequences.
func (p Path) Equal(other Path) bool {
	if len(p.Steps) != len(other.Steps) {
		return false
	}
	for i := range p.Steps {
		if p.Steps[i] != other.Steps[i] {
			return false
		}
	}
	return true
}

// ModuleOnly strips any trailing Procedure step, returning just the chain
// of enclosing modules. Every Proc and Function is a flat, top-level
// member of its enclosing module regardless of how deeply the Yul source
// nested its definition, so two call sites anywhere inside the same module
// must compare equal under ModuleOnly even when they sit in different
// procedures.
func (p Path) ModuleOnly() Path {
	steps := make([]Step, 0, len(p.Steps))
	for _, step := range p.Steps {
		if step.Kind == Module {
			steps = append(steps, step)
		}
	}
	return Path{Steps: steps}
}

// Key renders a canonical string encoding suitable for use as a map key.
func (p Path) Key() string {
	var b strings.Builder
	for i, step := range p.Steps {
		if i > 0 {
			b.WriteByte('/')
		}
		b.WriteString(step.String())
	}
	return b.String()
}

func (p Path) String() string {
	return "/" + p.Key()
}

// Tracker maintains the current target-side Path as the translator emits
// modules and procedures.
type Tracker struct {
	current Path
}

// NewTracker creates a Tracker positioned at the root path.
func NewTracker() *Tracker {
	return &Tracker{current: Empty()}
}

// Here returns the current path.
func (t *Tracker) Here() Path {
	return t.current
}

// Leave pops the most recently entered step.
func (t *Tracker) Leave() error {
	parent, err := t.current.Pop()
	if err != nil {
		return err
	}
	t.current = parent
	return nil
}

func (t *Tracker) EnterModule(name string)    { t.current = t.current.Push(Step{Kind: Module, Name: name}) }
func (t *Tracker) EnterProcedure(name string) { t.current = t.current.Push(Step{Kind: Procedure, Name: name}) }
