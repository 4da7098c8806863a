package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, contents string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestTranslateOne_StdoutIncludesPreambleByDefault(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "simple.yul", `object "Test" { code {} object "Test_deployed" { code { let x } } }`)

	out, err := captureStdout(t, func() error {
		return translateOne(path, "", true)
	})
	require.NoError(t, err)
	require.Contains(t, out, "require import UInt256 PurePrimops YulPrimops.")
	require.Contains(t, out, "module _Test = {")
	require.Contains(t, out, "var x: uint256;")
}

func TestTranslateOne_NoPreambleOmitsRequireImport(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "simple.yul", `object "Test" { code {} object "Test_deployed" { code { let x } } }`)

	out, err := captureStdout(t, func() error {
		return translateOne(path, "", false)
	})
	require.NoError(t, err)
	require.NotContains(t, out, "require import")
}

func TestTranslateOne_OutputDirWritesOneFilePerObject(t *testing.T) {
	srcDir := t.TempDir()
	outDir := t.TempDir()
	path := writeTempFile(t, srcDir, "simple.yul", `object "Test" { code {} object "Test_deployed" { code { let x } } }`)

	err := translateOne(path, outDir, true)
	require.NoError(t, err)

	written, err := os.ReadFile(filepath.Join(outDir, "_Test.ec"))
	require.NoError(t, err)
	require.Contains(t, string(written), "module _Test = {")
}

func TestRunTranslate_MalformedObjectReportsDiagnostic(t *testing.T) {
	dir := t.TempDir()
	path := writeTempFile(t, dir, "bad.yul", `object "Bad" { let x := 1 }`)

	err := runTranslate([]string{path}, "", true)
	require.Error(t, err)
	require.Contains(t, err.Error(), path)
}

func TestSuggestKeyword_ClosesTypoToSwitch(t *testing.T) {
	suggestion := suggestKeyword(`expected a statement, found IDENTIFIER "swich"`)
	require.Equal(t, "switch", suggestion)
}

func TestSuggestKeyword_NoCloseMatchReturnsEmpty(t *testing.T) {
	suggestion := suggestKeyword(`expected a statement, found IDENTIFIER "zzzzzzzzzzz"`)
	require.Empty(t, suggestion)
}

func TestQuotedToken_ExtractsFirstQuotedSubstring(t *testing.T) {
	require.Equal(t, "functoin", quotedToken(`expected a statement, found IDENTIFIER "functoin"`))
	require.Empty(t, quotedToken("no quotes here"))
}

// captureStdout redirects os.Stdout for the duration of fn and returns
// whatever it wrote, since translateOne prints directly to it.
func captureStdout(t *testing.T, fn func() error) (string, error) {
	t.Helper()
	r, w, err := os.Pipe()
	require.NoError(t, err)
	original := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = original }()

	fnErr := fn()
	require.NoError(t, w.Close())

	buf := make([]byte, 0, 4096)
	chunk := make([]byte, 4096)
	for {
		n, readErr := r.Read(chunk)
		buf = append(buf, chunk[:n]...)
		if readErr != nil {
			break
		}
	}
	return string(buf), fnErr
}
