package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	semver "github.com/Masterminds/semver/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizon-lang/astkit/internal/cli"
)

const pointDocument = `
unit:
  declarations:
    - class:
        name: Point
        members:
          - field: {keyword: final, type: int, names: [x, y]}
    - function:
        name: main
        body:
          modifier: async
          block:
            - expr: {await: {call: {name: run}}}
`

func execute(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	var out, errOut bytes.Buffer
	gs := &globalState{stdout: &out, stderr: &errOut}
	root := newRootCommand(gs)
	root.SetArgs(append([]string{"--color", "never"}, args...))
	err = root.Execute()
	return out.String(), errOut.String(), err
}

func writeDocument(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "point.yaml")
	require.NoError(t, os.WriteFile(path, []byte(pointDocument), 0o644))
	return path
}

func TestPrintCommand(t *testing.T) {
	out, _, err := execute(t, "print", writeDocument(t))
	require.NoError(t, err)
	assert.Equal(t, "class Point {final int x, y;}\nmain() async {await run();}\n", out)
}

func TestPrintSimplified(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fold.yaml")
	doc := "unit:\n  declarations:\n    - var: {keyword: var, vars: [{name: n, init: {binary: {op: \"*\", left: 6, right: 7}}}]}\n"
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o644))

	out, _, err := execute(t, "print", "--simplify", path)
	require.NoError(t, err)
	assert.Equal(t, "var n = 42;\n", out)

	out, _, err = execute(t, "print", path)
	require.NoError(t, err)
	assert.Equal(t, "var n = 6 * 7;\n", out)
}

func TestBuildCommand(t *testing.T) {
	path := writeDocument(t)
	outDir := filepath.Join(t.TempDir(), "gen")

	out, stderr, err := execute(t, "build", "--out", outDir, path)
	require.NoError(t, err)
	assert.Equal(t, "wrote "+filepath.Join(outDir, "point.dart")+"\n", out)
	assert.Contains(t, stderr, "msg=built")
	assert.FileExists(t, filepath.Join(outDir, "point.dart"))

	out, _, err = execute(t, "build", "--out", outDir, "--diff", path)
	require.NoError(t, err)
	assert.Empty(t, out)

	_, _, err = execute(t, "build", "--check", "--lang-version", "1.0.0", path)
	assert.Error(t, err)
}

func TestBuildOptionsShareShapeCheck(t *testing.T) {
	gs := &globalState{cfg: &cli.Config{LangVersion: semver.MustParse("1.5.0"), Workers: 3}}

	opts := gs.buildOptions("gen", true, true)
	assert.Equal(t, cli.BuildOptions{OutDir: "gen", LangVersion: "1.5.0", Workers: 3, Simplify: true}, opts)
	assert.Empty(t, gs.buildOptions("gen", false, false).LangVersion)

	for _, cmd := range []string{"build", "watch"} {
		found, _, err := newRootCommand(gs).Find([]string{cmd})
		require.NoError(t, err)
		assert.NotNil(t, found.Flags().Lookup("check"), cmd)
		assert.NotNil(t, found.Flags().Lookup("simplify"), cmd)
	}
}

func TestCheckCommand(t *testing.T) {
	path := writeDocument(t)

	out, _, err := execute(t, "check", "--lang-version", "2.0.0", path)
	require.NoError(t, err)
	assert.Equal(t, "ok "+path+" (needs 1.9.0)\n", out)

	out, _, err = execute(t, "check", "--lang-version", "1.5.0", path)
	require.Error(t, err)
	assert.Contains(t, out, "async-body requires language 1.9.0, target is 1.5.0")
	assert.Contains(t, out, "2 | main() async {await run();}")
}

func TestDumpCommand(t *testing.T) {
	out, _, err := execute(t, "dump", writeDocument(t))
	require.NoError(t, err)
	assert.Contains(t, out, "CompilationUnit\n  ClassDeclaration \"class\" \"{\" \"}\"\n")
	assert.Contains(t, out, " AwaitExpression \"await\"\n")

	out, _, err = execute(t, "dump", "--spans", writeDocument(t))
	require.NoError(t, err)
	assert.Contains(t, out, "ClassDeclaration \"class\" \"{\" \"}\" point.yaml:1:1-30")
}

func TestLocateCommand(t *testing.T) {
	out, _, err := execute(t, "locate", writeDocument(t), "2:15")
	require.NoError(t, err)
	assert.Contains(t, out, "AwaitExpression point.yaml:2:15-26\n")

	_, _, err = execute(t, "locate", writeDocument(t), "2")
	assert.Error(t, err)
}

func TestParseLineColumn(t *testing.T) {
	line, column, err := parseLineColumn("3:14")
	require.NoError(t, err)
	assert.Equal(t, 3, line)
	assert.Equal(t, 14, column)

	for _, bad := range []string{"3", "0:1", "1:x", ":"} {
		_, _, err := parseLineColumn(bad)
		assert.Error(t, err, bad)
	}
}

func TestVersionCommand(t *testing.T) {
	out, _, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "astgen v")

	out, _, err = execute(t, "version", "--json")
	require.NoError(t, err)
	assert.Contains(t, out, `"tool": "astgen"`)
}

func TestInvalidConfiguration(t *testing.T) {
	_, _, err := execute(t, "--log-level", "loud", "version")
	assert.Error(t, err)

	_, _, err = execute(t, "--lang-version", "x", "print", writeDocument(t))
	assert.Error(t, err)
}
