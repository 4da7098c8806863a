// Package yulpath implements the Yul-side lexical path and its tracker.
//
// Yul has richer lexical structure than the EasyCrypt target: besides
// objects, functions, and blocks, it has per-branch `if`/`switch` regions and
// three `for`-loop subregions. A Path is the ordered sequence of steps from
// the root of the Yul syntax tree to the current position; it both qualifies
// identifiers (as part of a symbol-table FullName) and drives scope lookup
// via Parents.
package yulpath

import (
	"fmt"
	"strings"

	"github.com/yulcrypt/yul2ec/internal/xerrors"
)

// StepKind identifies the kind of lexical region a Step represents.
type StepKind int

const (
	Object StepKind = iota
	Code
	Function
	Block
	IfCond
	IfThen
	For1 // for-loop initializer
	For2 // for-loop condition
	For3 // for-loop post
)

func (k StepKind) String() string {
	switch k {
	case Object:
		return "object"
	case Code:
		return "code"
	case Function:
		return "function"
	case Block:
		return "block"
	case IfCond:
		return "if-cond"
	case IfThen:
		return "if-then"
	case For1:
		return "for1"
	case For2:
		return "for2"
	case For3:
		return "for3"
	default:
		return "?"
	}
}

// Step is one lexical region on the way from the root of the Yul syntax
// tree. Name is populated for Object and Function steps and empty
// otherwise.
type Step struct {
	Kind StepKind
	Name string
}

func (s Step) String() string {
	if s.Name == "" {
		return s.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", s.Kind, s.Name)
}

// Path is an ordered sequence of steps from the root of the Yul syntax tree.
// The empty path (nil Steps) denotes the root. Paths are value types: safe
// to copy, compare, and use as map keys via Key.
type Path struct {
	Steps []Step
}

// Empty returns the root path.
func Empty() Path {
	return Path{}
}

// Push returns a new path with step appended; the receiver is left
// unmodified.
func (p Path) Push(step Step) Path {
	next := make([]Step, len(p.Steps)+1)
	copy(next, p.Steps)
	next[len(p.Steps)] = step
	return Path{Steps: next}
}

// Pop returns the path with its last step removed. It is an internal error
// to pop the root path.
func (p Path) Pop() (Path, error) {
	if len(p.Steps) == 0 {
		return Path{}, xerrors.NewInternal("cannot pop the root Yul path")
	}
	return Path{Steps: p.Steps[:len(p.Steps)-1]}, nil
}

// Parents returns the path itself plus all proper prefixes, in leaf-to-root
// order (deepest first, root last). Used for scope-aware symbol lookup.
func (p Path) Parents() []Path {
	result := make([]Path, 0, len(p.Steps)+1)
	for i := len(p.Steps); i >= 0; i-- {
		result = append(result, Path{Steps: p.Steps[:i]})
	}
	return result
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

// Key renders a canonical string encoding suitable for use as a map key,
// since Path itself (containing a slice) is not comparable.
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
