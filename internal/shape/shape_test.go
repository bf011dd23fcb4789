package shape

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/orizon-lang/astkit/internal/ast"
	af "github.com/orizon-lang/astkit/internal/astfactory"
	asterrors "github.com/orizon-lang/astkit/internal/errors"
	"github.com/orizon-lang/astkit/internal/token"
)

func asyncMain() *ast.FunctionDeclaration {
	body := af.AsyncBlockFunctionBody(af.ExpressionStatement(af.AwaitExpression(af.Identifier("f"))))
	return af.FunctionDeclaration(nil, token.NoKeyword, "main", af.FunctionExpression(nil, body))
}

func TestCheckAsyncBody(t *testing.T) {
	fn := asyncMain()

	violations, err := Check(fn, "1.0.0")
	require.NoError(t, err)
	require.Len(t, violations, 2)
	assert.Equal(t, AsyncBody, violations[0].Feature)
	assert.Same(t, fn.FunctionExpression.Body, violations[0].Node)
	assert.Equal(t, "1.9.0", violations[0].Requires.String())
	assert.Equal(t, Await, violations[1].Feature)

	violations, err = Check(fn, "2.0.0")
	require.NoError(t, err)
	assert.Empty(t, violations)
}

func TestCheckPrereleaseTargets(t *testing.T) {
	tests := []struct {
		version    string
		violations int
	}{
		{"2.0.0-dev.1", 0},
		{"1.9.0-beta.2", 0},
		{"1.8.5-dev", 2},
		{"1.0.0-alpha", 2},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			violations, err := Check(asyncMain(), tt.version)
			require.NoError(t, err)
			assert.Len(t, violations, tt.violations)
		})
	}
}

func TestCheckInvalidVersion(t *testing.T) {
	_, err := Check(af.Identifier("x"), "not-a-version")
	assert.Error(t, err)
}

func TestDetect(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want []Feature
	}{
		{"plain body", af.BlockFunctionBody(), nil},
		{"async generator", af.AsyncGeneratorBlockFunctionBody(), []Feature{AsyncGenerator}},
		{"sync generator", af.SyncGeneratorBlockFunctionBody(), []Feature{SyncGenerator}},
		{"async arrow", af.AsyncExpressionFunctionBody(af.Integer(1)), []Feature{AsyncBody}},
		{"enum", af.EnumDeclarationFromStrings("E", "a"), []Feature{Enum}},
		{"deferred import", af.ImportDirective(af.ImportOptions{URI: "a.dart", Deferred: true, Prefix: "a"}),
			[]Feature{DeferredImport}},
		{"plain import", af.ImportDirective(af.ImportOptions{URI: "a.dart"}), nil},
		{"await for", af.AwaitForEachStatementWithIdentifier(af.Identifier("x"), af.Identifier("xs"), af.Block()),
			[]Feature{AwaitFor}},
		{"for in", af.ForEachStatementWithIdentifier(af.Identifier("x"), af.Identifier("xs"), af.Block()), nil},
		{"yield", af.YieldStatement(af.Integer(1)), []Feature{Yield}},
		{"cascade", af.CascadeExpression(af.Identifier("a"), af.CascadedPropertyAccess("b")), []Feature{Cascade}},
		{"rethrow", af.RethrowExpression(), []Feature{Rethrow}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Detect(tt.node))
		})
	}
}

func TestMinimumVersion(t *testing.T) {
	assert.Equal(t, "1.0.0", MinimumVersion(af.Identifier("x")).String())
	assert.Equal(t, "1.8.0", MinimumVersion(af.EnumDeclarationFromStrings("E", "a")).String())
	assert.Equal(t, "1.9.0", MinimumVersion(asyncMain()).String())
}

func TestSupported(t *testing.T) {
	ok, err := Supported(DeferredImport, "1.5.9")
	require.NoError(t, err)
	assert.False(t, ok)

	ok, err = Supported(DeferredImport, "1.6.0")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Supported(Cascade, "2.0.0-dev.1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Supported(DeferredImport, "1.6.0-dev.2")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = Supported(DeferredImport, "1.5.9-dev")
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = Supported(Feature("nope"), "1.0.0")
	assert.Error(t, err)
}

func TestFeaturesOrdered(t *testing.T) {
	features := Features()
	require.Len(t, features, len(introduced))
	for i := 1; i < len(features); i++ {
		assert.False(t, features[i].Introduced().LessThan(features[i-1].Introduced()))
	}
	assert.Nil(t, Feature("nope").Introduced())
}

func TestViolationErr(t *testing.T) {
	violations, err := Check(af.EnumDeclarationFromStrings("E", "a"), "1.0.0")
	require.NoError(t, err)
	require.Len(t, violations, 1)

	verr := violations[0].Err("1.0.0")
	assert.True(t, errors.Is(verr, asterrors.ErrUnsupportedShape))
	var std *asterrors.StandardError
	require.ErrorAs(t, verr, &std)
	assert.Equal(t, "1.8.0", std.Context["requires"])
}
