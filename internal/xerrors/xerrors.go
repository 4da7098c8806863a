// Package xerrors defines the translator's error taxonomy.
//
// Every fallible operation in this module returns one of three kinds of
// error: an internal invariant violation, an unimplemented Yul construct, or
// a malformed intermediate result from a sub-translation. All three render
// as a short Rust/Clang-style diagnostic so the CLI can print something a
// human can act on without the translator itself knowing about terminals.
package xerrors

import "fmt"

// Internal signals a broken invariant: an unresolvable identifier, an empty
// environment stack on Leave, wrong arity on a builtin, a reference to a
// builtin, a call to a variable, two named modules merged together. These
// indicate bugs in the translator, not problems with the input program.
type Internal struct {
	Message string
}

func (e *Internal) Error() string {
	return fmt.Sprintf("internal error: %s", e.Message)
}

// NewInternal builds an Internal error with a formatted message.
func NewInternal(format string, args ...any) error {
	return &Internal{Message: fmt.Sprintf(format, args...)}
}

// Unsupported signals a Yul statement or expression shape whose translation
// is not implemented.
type Unsupported struct {
	Construct string
	Detail    string
}

func (e *Unsupported) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("unsupported construct: %s", e.Construct)
	}
	return fmt.Sprintf("unsupported construct: %s (%s)", e.Construct, e.Detail)
}

// NewUnsupported builds an Unsupported error naming the construct and an
// optional explanatory detail.
func NewUnsupported(construct, detail string) error {
	return &Unsupported{Construct: construct, Detail: detail}
}

// Malformed signals that a sub-translation returned a shape the caller did
// not expect — e.g. an argument-list element that produced statements where
// a pure expression was required.
type Malformed struct {
	Message string
}

func (e *Malformed) Error() string {
	return fmt.Sprintf("malformed input: %s", e.Message)
}

// NewMalformed builds a Malformed error with a formatted message.
func NewMalformed(format string, args ...any) error {
	return &Malformed{Message: fmt.Sprintf(format, args...)}
}

// Diagnostic renders err as a multi-line, Rust/Clang-style snippet anchored
// at (line, column) in source, when source is non-empty. It falls back to
// err.Error() when no position information is available.
func Diagnostic(err error, source string, line, column int) string {
	if source == "" || line <= 0 {
		return err.Error()
	}
	lines := splitLines(source)
	if line > len(lines) {
		return err.Error()
	}
	lineContent := lines[line-1]

	out := fmt.Sprintf("%s\n", err.Error())
	out += fmt.Sprintf("  --> %d:%d\n", line, column)
	out += "   |\n"
	out += fmt.Sprintf("%2d | %s\n", line, lineContent)
	out += "   | "
	if column > 0 && column <= len(lineContent)+1 {
		for i := 0; i < column-1; i++ {
			out += " "
		}
		out += "^"
	}
	return out
}

func splitLines(s string) []string {
	var lines []string
	start := 0
	for i, r := range s {
		if r == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	lines = append(lines, s[start:])
	return lines
}
