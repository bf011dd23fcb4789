package printer

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	af "github.com/orizon-lang/astkit/internal/astfactory"
)

func TestDump(t *testing.T) {
	ret := af.ReturnStatement(af.Integer(1))

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, ret, DumpOptions{}))
	assert.Equal(t, "ReturnStatement \"return\" \";\"\n  IntegerLiteral \"1\"\n", buf.String())
}

func TestDumpWithSpans(t *testing.T) {
	ret := af.ReturnStatement(af.Integer(1))
	result := Print("", ret)

	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, ret, DumpOptions{Result: result}))
	assert.Equal(t, "ReturnStatement \"return\" \";\" 1:1-10\n  IntegerLiteral \"1\" 1:8-9\n", buf.String())
}

func TestDumpColor(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Dump(&buf, af.Identifier("x"), DumpOptions{Color: true}))
	assert.Contains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "SimpleIdentifier")
}

func TestColorEnabledWithoutTerminal(t *testing.T) {
	f, err := os.CreateTemp(t.TempDir(), "out")
	require.NoError(t, err)
	defer f.Close()

	assert.False(t, ColorEnabled(f))
	assert.False(t, ColorEnabled(nil))
}
