// Command yul2ec translates one or more Yul object source files into
// EasyCrypt modules, printed to stdout or to one file per object.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/spf13/cobra"

	"github.com/yulcrypt/yul2ec/internal/dialect"
	"github.com/yulcrypt/yul2ec/internal/ecprint"
	"github.com/yulcrypt/yul2ec/internal/translator"
	"github.com/yulcrypt/yul2ec/internal/xerrors"
	"github.com/yulcrypt/yul2ec/internal/yullex"
	"github.com/yulcrypt/yul2ec/internal/yulparse"
)

// version is overridden at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var outputDir string
	var preamble bool

	cmd := &cobra.Command{
		Use:           "yul2ec [files...]",
		Short:         "Translate Yul objects into EasyCrypt modules",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(args, outputDir, preamble)
		},
	}

	cmd.Flags().StringVarP(&outputDir, "output", "o", "", "write one <object-name>.ec file per input here, instead of stdout")
	cmd.Flags().BoolVar(&preamble, "preamble", true, "emit the EasyCrypt preamble before each translated module")
	return cmd
}

func runTranslate(paths []string, outputDir string, preamble bool) error {
	for _, path := range paths {
		if err := translateOne(path, outputDir, preamble); err != nil {
			return fmt.Errorf("%s: %w", path, annotate(err, path))
		}
	}
	return nil
}

func translateOne(path, outputDir string, preamble bool) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	object, err := yulparse.Parse(string(source))
	if err != nil {
		return err
	}

	module, err := translator.Translate(dialect.Standard{}, object)
	if err != nil {
		return err
	}

	out := ecprint.Module(module)
	if preamble {
		out = ecprint.Preamble + out
	}

	if outputDir == "" {
		fmt.Print(out)
		return nil
	}
	return writeModuleFile(outputDir, module.Name, out)
}

func writeModuleFile(dir, moduleName, content string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}
	name := moduleName
	if name == "" {
		name = "module"
	}
	return os.WriteFile(filepath.Join(dir, name+".ec"), []byte(content), 0o644)
}

// annotate enriches a parse error with a source snippet and, for an
// unexpected-identifier failure, the closest Yul keyword it might have
// meant, the same "did you mean" courtesy a typo in a command name gets
// from a fuzzy string match against the known keyword set.
func annotate(err error, path string) error {
	var parseErr *yulparse.ParseError
	if pe, ok := err.(*yulparse.ParseError); ok {
		parseErr = pe
	}
	var lexErr *yullex.LexError
	if le, ok := err.(*yullex.LexError); ok {
		lexErr = le
	}
	if parseErr == nil && lexErr == nil {
		return err
	}

	source, readErr := os.ReadFile(path)
	if readErr != nil {
		return err
	}

	line, column := 0, 0
	if parseErr != nil {
		line, column = parseErr.Line, parseErr.Column
	} else {
		line, column = lexErr.Line, lexErr.Column
	}

	diagnostic := xerrors.Diagnostic(err, string(source), line, column)
	if suggestion := suggestKeyword(err.Error()); suggestion != "" {
		diagnostic += fmt.Sprintf("\n  did you mean %q?", suggestion)
	}
	return fmt.Errorf("%s", diagnostic)
}

// suggestKeyword extracts a quoted token from a parser error message and,
// if it's close to a Yul keyword, returns the nearest one.
func suggestKeyword(message string) string {
	token := quotedToken(message)
	if token == "" {
		return ""
	}
	candidates := make([]string, 0, len(yullex.Keywords))
	for keyword := range yullex.Keywords {
		candidates = append(candidates, keyword)
	}
	ranks := fuzzy.RankFindFold(token, candidates)
	if len(ranks) == 0 {
		return ""
	}
	best := ranks[0]
	for _, r := range ranks[1:] {
		if r.Distance < best.Distance {
			best = r
		}
	}
	if best.Distance == 0 || best.Distance > 2 {
		return ""
	}
	return best.Target
}

// quotedToken returns the contents of the first double-quoted substring in
// message, the offending token every parser/lexer error message here
// names that way.
func quotedToken(message string) string {
	last := -1
	start := -1
	for i, r := range message {
		if r != '"' {
			continue
		}
		if start == -1 {
			start = i
			continue
		}
		last = i
		return message[start+1 : last]
	}
	return ""
}
