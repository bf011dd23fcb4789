package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	asterrors "github.com/orizon-lang/astkit/internal/errors"
)

const mainDocument = `
unit:
  declarations:
    - function:
        name: main
        returns: void
        body: {block: [{return: null}]}
`

const asyncDocument = `
unit:
  directives:
    - import: {uri: "dart:async"}
  declarations:
    - function:
        name: main
        body:
          modifier: async
          block:
            - expr: {await: {call: {name: run}}}
`

func writeDocument(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestOutputPath(t *testing.T) {
	assert.Equal(t, "a/main.dart", OutputPath("a/main.yaml", ""))
	assert.Equal(t, "a/main.dart", OutputPath("a/main.yml", ""))
	assert.Equal(t, "a/main.txt.dart", OutputPath("a/main.txt", ""))
	assert.Equal(t, filepath.Join("out", "main.dart"), OutputPath("a/main.yaml", "out"))
}

func TestBuildFile(t *testing.T) {
	dir := t.TempDir()
	path := writeDocument(t, dir, "main.yaml", mainDocument)

	r, err := BuildFile(path, BuildOptions{})
	require.NoError(t, err)
	assert.True(t, r.Changed)
	assert.Equal(t, filepath.Join(dir, "main.dart"), r.Output)
	assert.Greater(t, r.Nodes, 3)

	out, err := os.ReadFile(r.Output)
	require.NoError(t, err)
	assert.Equal(t, "void main() {return;}\n", string(out))

	r, err = BuildFile(path, BuildOptions{})
	require.NoError(t, err)
	assert.False(t, r.Changed)
}

func TestBuildFileDiff(t *testing.T) {
	dir := t.TempDir()
	path := writeDocument(t, dir, "main.yaml", mainDocument)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "main.dart"), []byte("void main() {}\n"), 0o644))

	r, err := BuildFile(path, BuildOptions{Diff: true})
	require.NoError(t, err)
	assert.True(t, r.Changed)
	assert.Contains(t, r.Diff, "@@ -1,1 +1,1 @@")
	assert.Contains(t, r.Diff, "-void main() {}")
	assert.Contains(t, r.Diff, "+void main() {return;}")

	out, err := os.ReadFile(filepath.Join(dir, "main.dart"))
	require.NoError(t, err)
	assert.Equal(t, "void main() {}\n", string(out), "diff mode must not write")
}

func TestBuildFileRejectsNewerShapes(t *testing.T) {
	path := writeDocument(t, t.TempDir(), "async.yaml", asyncDocument)

	_, err := BuildFile(path, BuildOptions{LangVersion: "1.0.0"})
	require.Error(t, err)
	assert.ErrorIs(t, err, asterrors.ErrUnsupportedShape)

	_, err = BuildFile(path, BuildOptions{LangVersion: "2.0.0"})
	assert.NoError(t, err)
}

func TestBuildFileSimplify(t *testing.T) {
	path := writeDocument(t, t.TempDir(), "fold.yaml", `
unit:
  declarations:
    - function:
        name: f
        returns: int
        body:
          block:
            - if: {cond: {binary: {op: "<", left: 1, right: 2}}, then: {return: 1}, else: {return: 2}}
            - return: 3
`)

	r, err := BuildFile(path, BuildOptions{Simplify: true})
	require.NoError(t, err)
	out, err := os.ReadFile(r.Output)
	require.NoError(t, err)
	assert.Equal(t, "int f() {return 1;}\n", string(out))
}

func TestBuildInOrder(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "gen")
	paths := []string{
		writeDocument(t, dir, "a.yaml", mainDocument),
		writeDocument(t, dir, "b.yaml", asyncDocument),
		writeDocument(t, dir, "c.yaml", mainDocument),
	}

	logger, hook := test.NewNullLogger()
	results, err := Build(context.Background(), logger, paths, BuildOptions{OutDir: out, Workers: 2})
	require.NoError(t, err)
	require.Len(t, results, 3)
	for i, r := range results {
		assert.Equal(t, paths[i], r.Input)
	}
	assert.FileExists(t, filepath.Join(out, "b.dart"))
	assert.Len(t, hook.AllEntries(), 3)
	assert.Equal(t, "built", hook.LastEntry().Message)
}

func TestBuildStopsOnError(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeDocument(t, dir, "good.yaml", mainDocument),
		writeDocument(t, dir, "bad.yaml", "unit: {bogus: 1}\n"),
	}

	logger, hook := test.NewNullLogger()
	_, err := Build(context.Background(), logger, paths, BuildOptions{Workers: 1})
	require.Error(t, err)
	assert.ErrorIs(t, err, asterrors.ErrInvalidDocument)

	var failed *logrus.Entry
	for _, e := range hook.AllEntries() {
		if e.Level == logrus.ErrorLevel {
			failed = e
		}
	}
	require.NotNil(t, failed)
	assert.Equal(t, paths[1], failed.Data["file"])
}

func TestCheckFile(t *testing.T) {
	path := writeDocument(t, t.TempDir(), "async.yaml", asyncDocument)

	report, err := CheckFile(path, "1.0.0")
	require.NoError(t, err)
	assert.False(t, report.OK())
	assert.Equal(t, 2, report.Diagnostic.ErrorCount())
	assert.Equal(t, "1.9.0", report.Minimum.String())

	rendered := report.Render()
	assert.Contains(t, rendered, "async-body requires language 1.9.0, target is 1.0.0")
	assert.Contains(t, rendered, "main() async {await run();}")
	assert.Contains(t, rendered, "^^^^^^^^^^^")
	assert.Contains(t, rendered, "2 error(s)\n")

	report, err = CheckFile(path, "2.0.0")
	require.NoError(t, err)
	assert.True(t, report.OK())

	_, err = CheckFile(path, "not-a-version")
	assert.Error(t, err)
}

func TestLocate(t *testing.T) {
	path := writeDocument(t, t.TempDir(), "async.yaml", asyncDocument)

	// Line 2 is "main() async {await run();}"; column 15 is the await.
	loc, err := Locate(path, 2, 15)
	require.NoError(t, err)
	assert.Equal(t, "AwaitExpression", loc.Name)
	assert.Equal(t, "await run()", loc.Text)
	assert.Equal(t, 2, loc.Span.Start.Line)
	assert.Contains(t, loc.Excerpt, "^^^^^^^^^^^")

	loc, err = Locate(path, 1, 8)
	require.NoError(t, err)
	assert.Equal(t, "SimpleStringLiteral", loc.Name)

	_, err = Locate(path, 9, 1)
	assert.Error(t, err)
}

func TestLoadConfigDefaults(t *testing.T) {
	v := viper.New()
	SetDefaults(v)

	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, cfg.LogLevel)
	assert.Equal(t, ColorAuto, cfg.Color)
	assert.Equal(t, "2.0.0", cfg.LangVersion.String())
	assert.GreaterOrEqual(t, cfg.Workers, 1)
}

func TestLoadConfigInvalid(t *testing.T) {
	tests := []struct {
		key   string
		value interface{}
	}{
		{KeyLogLevel, "loud"},
		{KeyColor, "sometimes"},
		{KeyLangVersion, "one"},
		{KeyWorkers, 0},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			v := viper.New()
			SetDefaults(v)
			v.Set(tt.key, tt.value)
			_, err := LoadConfig(v)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestNewViperReadsFileAndEnv(t *testing.T) {
	dir := t.TempDir()
	cfgFile := writeDocument(t, dir, "astgen.yaml", "lang-version: 1.8.0\nworkers: 3\n")
	t.Setenv("ASTGEN_LOG_LEVEL", "debug")

	v, err := NewViper(cfgFile)
	require.NoError(t, err)
	cfg, err := LoadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, "1.8.0", cfg.LangVersion.String())
	assert.Equal(t, 3, cfg.Workers)
	assert.Equal(t, logrus.DebugLevel, cfg.LogLevel)

	broken := writeDocument(t, dir, "broken.yaml", "workers: [\n")
	_, err = NewViper(broken)
	assert.Error(t, err)
}

func TestUseColor(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.True(t, (&Config{Color: ColorAlways}).UseColor(f))
	assert.False(t, (&Config{Color: ColorNever}).UseColor(f))
	assert.False(t, (&Config{Color: ColorAuto}).UseColor(f))
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&Config{LogLevel: logrus.WarnLevel}, &buf, false)
	logger.Info("hidden")
	logger.WithField("file", "a.yaml").Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "level=warning")
	assert.Contains(t, buf.String(), "file=a.yaml")
}

func TestWriteVersion(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteVersion(&buf, "astgen", false))
	assert.True(t, strings.HasPrefix(buf.String(), "astgen v"+Version+"\n"))

	buf.Reset()
	require.NoError(t, WriteVersion(&buf, "astgen", true))
	var decoded struct {
		Tool string      `json:"tool"`
		Info VersionInfo `json:"version_info"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "astgen", decoded.Tool)
	assert.Equal(t, Version, decoded.Info.Version)
}

func TestWatcherRebuildsOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := writeDocument(t, dir, "main.yaml", mainDocument)
	writeDocument(t, dir, "other.yaml", mainDocument)

	logger, _ := test.NewNullLogger()
	w, err := NewWatcher(logger, []string{path})
	require.NoError(t, err)
	w.Settle = 20 * time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rebuilt := make(chan string, 4)
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx, func(p string) { rebuilt <- p }) }()

	writeDocument(t, dir, "other.yaml", asyncDocument)
	writeDocument(t, dir, "main.yaml", asyncDocument)

	abs, err := filepath.Abs(path)
	require.NoError(t, err)
	select {
	case got := <-rebuilt:
		assert.Equal(t, abs, got)
	case <-time.After(5 * time.Second):
		t.Fatal("no rebuild after write")
	}

	cancel()
	require.NoError(t, <-done)
}
