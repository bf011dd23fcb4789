package astfactory

import (
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/orizon-lang/astkit/internal/ast"
	"github.com/orizon-lang/astkit/internal/token"
)

// ===== Identifiers =====

// Identifier creates a simple identifier.
func Identifier(name string) *ast.SimpleIdentifier {
	return ast.NewSimpleIdentifier(token.FromTypeAndText(token.Identifier, name))
}

// PrefixedIdentifier creates "prefix.name". Use PropertyAccess when the
// target is an arbitrary expression rather than an import prefix.
func PrefixedIdentifier(prefix, name *ast.SimpleIdentifier) *ast.PrefixedIdentifier {
	return ast.NewPrefixedIdentifier(prefix, tok(token.Period), name)
}

// PrefixedIdentifierFromStrings creates "prefix.name" from plain names.
func PrefixedIdentifierFromStrings(prefix, name string) *ast.PrefixedIdentifier {
	return PrefixedIdentifier(Identifier(prefix), Identifier(name))
}

// LibraryIdentifier creates a dotted library name such as "app.main".
func LibraryIdentifier(components ...string) *ast.LibraryIdentifier {
	return ast.NewLibraryIdentifier(identifiers(components))
}

// LibraryIdentifierOf creates a dotted library name from identifier nodes.
func LibraryIdentifierOf(components ...*ast.SimpleIdentifier) *ast.LibraryIdentifier {
	return ast.NewLibraryIdentifier(List(components...))
}

// ===== Literals =====

// Integer creates an integer literal whose token text is the decimal form of
// value.
func Integer(value int64) *ast.IntegerLiteral {
	return ast.NewIntegerLiteral(token.FromTypeAndText(token.Int, strconv.FormatInt(value, 10)), big.NewInt(value))
}

// Double creates a floating point literal. The token text always parses back
// to value and carries a decimal point or exponent.
func Double(value float64) *ast.DoubleLiteral {
	text := strconv.FormatFloat(value, 'f', -1, 64)
	if a := math.Abs(value); a != 0 && (a >= 1e21 || a < 1e-6) {
		text = strconv.FormatFloat(value, 'e', -1, 64)
	}
	if !strings.ContainsAny(text, ".eEnN") {
		text += ".0"
	}
	return ast.NewDoubleLiteral(token.FromTypeAndText(token.Double, text), value)
}

// String creates a single-quoted string literal. content is used verbatim
// between the quotes; no escaping is applied.
func String(content string) *ast.SimpleStringLiteral {
	return ast.NewSimpleStringLiteral(token.FromText("'"+content+"'"), content)
}

// Boolean creates true or false.
func Boolean(value bool) *ast.BooleanLiteral {
	if value {
		return ast.NewBooleanLiteral(kw(token.KwTrue), true)
	}
	return ast.NewBooleanLiteral(kw(token.KwFalse), false)
}

// Null creates the null literal.
func Null() *ast.NullLiteral {
	return ast.NewNullLiteral(kw(token.KwNull))
}

// AdjacentStrings creates juxtaposed string literals, 'a' 'b'.
func AdjacentStrings(literals ...ast.StringLiteral) *ast.AdjacentStrings {
	return ast.NewAdjacentStrings(List(literals...))
}

// StringInterpolation creates an interpolated string from its parts.
func StringInterpolation(elements ...ast.InterpolationElement) *ast.StringInterpolation {
	return ast.NewStringInterpolation(List(elements...))
}

// InterpolationExpression creates "${expression}".
func InterpolationExpression(expression ast.Expression) *ast.InterpolationExpression {
	return ast.NewInterpolationExpression(tok(token.StringInterpolationExpression), expression,
		tok(token.CloseCurlyBracket))
}

// InterpolationIdentifier creates "$name", which has no closing bracket.
func InterpolationIdentifier(name string) *ast.InterpolationExpression {
	return ast.NewInterpolationExpression(tok(token.StringInterpolationIdentifier), Identifier(name), nil)
}

// InterpolationString creates a literal run inside an interpolated string.
// contents is the source text, value its unescaped meaning.
func InterpolationString(contents, value string) *ast.InterpolationString {
	return ast.NewInterpolationString(token.FromText(contents), value)
}

// SymbolLiteral creates "#a.b.c".
func SymbolLiteral(components ...string) *ast.SymbolLiteral {
	parts := make([]*token.Token, 0, len(components))
	for _, c := range components {
		parts = append(parts, token.FromTypeAndText(token.Identifier, c))
	}
	return ast.NewSymbolLiteral(tok(token.Hash), parts)
}

// ListLiteralOptions selects the optional prefix of a list literal.
type ListLiteralOptions struct {
	Const         bool
	TypeArguments *ast.TypeArgumentList
}

// ListLiteral creates "const <T>[elements]".
func ListLiteral(opts ListLiteralOptions, elements ...ast.Expression) *ast.ListLiteral {
	return ast.NewListLiteral(optKeywordIf(opts.Const, token.KwConst), opts.TypeArguments,
		tok(token.OpenSquareBracket), List(elements...), tok(token.CloseSquareBracket))
}

// MapLiteralOptions selects the optional prefix of a map literal.
type MapLiteralOptions struct {
	Const         bool
	TypeArguments *ast.TypeArgumentList
}

// MapLiteral creates "const <K, V>{entries}".
func MapLiteral(opts MapLiteralOptions, entries ...*ast.MapLiteralEntry) *ast.MapLiteral {
	return ast.NewMapLiteral(optKeywordIf(opts.Const, token.KwConst), opts.TypeArguments,
		tok(token.OpenCurlyBracket), List(entries...), tok(token.CloseCurlyBracket))
}

// MapLiteralEntry creates "'key': value" with a string key.
func MapLiteralEntry(key string, value ast.Expression) *ast.MapLiteralEntry {
	return ast.NewMapLiteralEntry(String(key), tok(token.Colon), value)
}

// MapLiteralEntryOf creates "key: value" with an arbitrary key expression.
func MapLiteralEntryOf(key, value ast.Expression) *ast.MapLiteralEntry {
	return ast.NewMapLiteralEntry(key, tok(token.Colon), value)
}
