package ast

import (
	"math/big"
	"strings"

	"github.com/orizon-lang/astkit/internal/token"
)

// ===== Identifiers =====

// SimpleIdentifier is a leaf wrapping one identifier token.
type SimpleIdentifier struct {
	baseNode
	Token *token.Token
}

func NewSimpleIdentifier(tok *token.Token) *SimpleIdentifier {
	return &SimpleIdentifier{Token: tok}
}

func (n *SimpleIdentifier) BeginToken() *token.Token           { return n.Token }
func (n *SimpleIdentifier) EndToken() *token.Token             { return n.Token }
func (n *SimpleIdentifier) ChildEntities() []interface{}       { return entities(n.Token) }
func (n *SimpleIdentifier) Accept(visitor Visitor) interface{} { return visitor.VisitSimpleIdentifier(n) }
func (n *SimpleIdentifier) expressionNode()                    {}
func (n *SimpleIdentifier) Name() string                       { return n.Token.Lexeme() }

// PrefixedIdentifier is "prefix.identifier" where the prefix is a simple
// identifier such as a library prefix.
type PrefixedIdentifier struct {
	baseNode
	Prefix     *SimpleIdentifier
	Period     *token.Token
	Identifier *SimpleIdentifier
}

func NewPrefixedIdentifier(prefix *SimpleIdentifier, period *token.Token, identifier *SimpleIdentifier) *PrefixedIdentifier {
	n := &PrefixedIdentifier{Period: period}
	n.Prefix = becomeParentOf(n, prefix)
	n.Identifier = becomeParentOf(n, identifier)
	return n
}

func (n *PrefixedIdentifier) BeginToken() *token.Token { return beginOf(n) }
func (n *PrefixedIdentifier) EndToken() *token.Token   { return endOf(n) }
func (n *PrefixedIdentifier) ChildEntities() []interface{} {
	return entities(n.Prefix, n.Period, n.Identifier)
}
func (n *PrefixedIdentifier) Accept(visitor Visitor) interface{} {
	return visitor.VisitPrefixedIdentifier(n)
}
func (n *PrefixedIdentifier) expressionNode() {}
func (n *PrefixedIdentifier) Name() string {
	return n.Prefix.Name() + "." + n.Identifier.Name()
}

// LibraryIdentifier is a dotted library name such as "app.util".
type LibraryIdentifier struct {
	baseNode
	Components *NodeList[*SimpleIdentifier]
}

func NewLibraryIdentifier(components []*SimpleIdentifier) *LibraryIdentifier {
	n := &LibraryIdentifier{}
	n.Components = newNodeListOf(n, components)
	return n
}

func (n *LibraryIdentifier) BeginToken() *token.Token     { return n.Components.BeginToken() }
func (n *LibraryIdentifier) EndToken() *token.Token       { return n.Components.EndToken() }
func (n *LibraryIdentifier) ChildEntities() []interface{} { return entities(n.Components) }
func (n *LibraryIdentifier) Accept(visitor Visitor) interface{} {
	return visitor.VisitLibraryIdentifier(n)
}
func (n *LibraryIdentifier) expressionNode() {}
func (n *LibraryIdentifier) Name() string {
	parts := make([]string, 0, n.Components.Len())
	for _, c := range n.Components.All() {
		parts = append(parts, c.Name())
	}
	return strings.Join(parts, ".")
}

// ===== Scalar literals =====

// IntegerLiteral holds both the literal token and the parsed value; the
// token text always parses back to Value.
type IntegerLiteral struct {
	baseNode
	Literal *token.Token
	Value   *big.Int
}

func NewIntegerLiteral(literal *token.Token, value *big.Int) *IntegerLiteral {
	return &IntegerLiteral{Literal: literal, Value: value}
}

func (n *IntegerLiteral) BeginToken() *token.Token           { return n.Literal }
func (n *IntegerLiteral) EndToken() *token.Token             { return n.Literal }
func (n *IntegerLiteral) ChildEntities() []interface{}       { return entities(n.Literal) }
func (n *IntegerLiteral) Accept(visitor Visitor) interface{} { return visitor.VisitIntegerLiteral(n) }
func (n *IntegerLiteral) expressionNode()                    {}
func (n *IntegerLiteral) literalNode()                       {}

// DoubleLiteral holds the literal token and the parsed value.
type DoubleLiteral struct {
	baseNode
	Literal *token.Token
	Value   float64
}

func NewDoubleLiteral(literal *token.Token, value float64) *DoubleLiteral {
	return &DoubleLiteral{Literal: literal, Value: value}
}

func (n *DoubleLiteral) BeginToken() *token.Token           { return n.Literal }
func (n *DoubleLiteral) EndToken() *token.Token             { return n.Literal }
func (n *DoubleLiteral) ChildEntities() []interface{}       { return entities(n.Literal) }
func (n *DoubleLiteral) Accept(visitor Visitor) interface{} { return visitor.VisitDoubleLiteral(n) }
func (n *DoubleLiteral) expressionNode()                    {}
func (n *DoubleLiteral) literalNode()                       {}

// BooleanLiteral is "true" or "false".
type BooleanLiteral struct {
	baseNode
	Literal *token.Token
	Value   bool
}

func NewBooleanLiteral(literal *token.Token, value bool) *BooleanLiteral {
	return &BooleanLiteral{Literal: literal, Value: value}
}

func (n *BooleanLiteral) BeginToken() *token.Token           { return n.Literal }
func (n *BooleanLiteral) EndToken() *token.Token             { return n.Literal }
func (n *BooleanLiteral) ChildEntities() []interface{}       { return entities(n.Literal) }
func (n *BooleanLiteral) Accept(visitor Visitor) interface{} { return visitor.VisitBooleanLiteral(n) }
func (n *BooleanLiteral) expressionNode()                    {}
func (n *BooleanLiteral) literalNode()                       {}

// NullLiteral is "null".
type NullLiteral struct {
	baseNode
	Literal *token.Token
}

func NewNullLiteral(literal *token.Token) *NullLiteral {
	return &NullLiteral{Literal: literal}
}

func (n *NullLiteral) BeginToken() *token.Token           { return n.Literal }
func (n *NullLiteral) EndToken() *token.Token             { return n.Literal }
func (n *NullLiteral) ChildEntities() []interface{}       { return entities(n.Literal) }
func (n *NullLiteral) Accept(visitor Visitor) interface{} { return visitor.VisitNullLiteral(n) }
func (n *NullLiteral) expressionNode()                    {}
func (n *NullLiteral) literalNode()                       {}

// ===== Strings =====

// SimpleStringLiteral is a quoted string without interpolation. Literal holds
// the quoted source text, Value the unquoted content.
type SimpleStringLiteral struct {
	baseNode
	Literal *token.Token
	Value   string
}

func NewSimpleStringLiteral(literal *token.Token, value string) *SimpleStringLiteral {
	return &SimpleStringLiteral{Literal: literal, Value: value}
}

func (n *SimpleStringLiteral) BeginToken() *token.Token     { return n.Literal }
func (n *SimpleStringLiteral) EndToken() *token.Token       { return n.Literal }
func (n *SimpleStringLiteral) ChildEntities() []interface{} { return entities(n.Literal) }
func (n *SimpleStringLiteral) Accept(visitor Visitor) interface{} {
	return visitor.VisitSimpleStringLiteral(n)
}
func (n *SimpleStringLiteral) expressionNode()    {}
func (n *SimpleStringLiteral) literalNode()       {}
func (n *SimpleStringLiteral) stringLiteralNode() {}

// AdjacentStrings is a sequence of string literals written next to each other.
type AdjacentStrings struct {
	baseNode
	Strings *NodeList[StringLiteral]
}

func NewAdjacentStrings(strings []StringLiteral) *AdjacentStrings {
	n := &AdjacentStrings{}
	n.Strings = newNodeListOf(n, strings)
	return n
}

func (n *AdjacentStrings) BeginToken() *token.Token           { return n.Strings.BeginToken() }
func (n *AdjacentStrings) EndToken() *token.Token             { return n.Strings.EndToken() }
func (n *AdjacentStrings) ChildEntities() []interface{}       { return entities(n.Strings) }
func (n *AdjacentStrings) Accept(visitor Visitor) interface{} { return visitor.VisitAdjacentStrings(n) }
func (n *AdjacentStrings) expressionNode()                    {}
func (n *AdjacentStrings) literalNode()                       {}
func (n *AdjacentStrings) stringLiteralNode()                 {}

// StringInterpolation is a string literal with embedded expressions.
type StringInterpolation struct {
	baseNode
	Elements *NodeList[InterpolationElement]
}

func NewStringInterpolation(elements []InterpolationElement) *StringInterpolation {
	n := &StringInterpolation{}
	n.Elements = newNodeListOf(n, elements)
	return n
}

func (n *StringInterpolation) BeginToken() *token.Token     { return n.Elements.BeginToken() }
func (n *StringInterpolation) EndToken() *token.Token       { return n.Elements.EndToken() }
func (n *StringInterpolation) ChildEntities() []interface{} { return entities(n.Elements) }
func (n *StringInterpolation) Accept(visitor Visitor) interface{} {
	return visitor.VisitStringInterpolation(n)
}
func (n *StringInterpolation) expressionNode()    {}
func (n *StringInterpolation) literalNode()       {}
func (n *StringInterpolation) stringLiteralNode() {}

// InterpolationExpression is "${expr}" or "$identifier". RightBracket is nil
// for the identifier form.
type InterpolationExpression struct {
	baseNode
	LeftBracket  *token.Token
	Expression   Expression
	RightBracket *token.Token
}

func NewInterpolationExpression(leftBracket *token.Token, expression Expression, rightBracket *token.Token) *InterpolationExpression {
	n := &InterpolationExpression{LeftBracket: leftBracket, RightBracket: rightBracket}
	n.Expression = becomeParentOf(n, expression)
	return n
}

func (n *InterpolationExpression) BeginToken() *token.Token { return n.LeftBracket }
func (n *InterpolationExpression) EndToken() *token.Token   { return endOf(n) }
func (n *InterpolationExpression) ChildEntities() []interface{} {
	return entities(n.LeftBracket, n.Expression, n.RightBracket)
}
func (n *InterpolationExpression) Accept(visitor Visitor) interface{} {
	return visitor.VisitInterpolationExpression(n)
}
func (n *InterpolationExpression) interpolationElementNode() {}

// InterpolationString is a literal run of characters inside an interpolated
// string.
type InterpolationString struct {
	baseNode
	Contents *token.Token
	Value    string
}

func NewInterpolationString(contents *token.Token, value string) *InterpolationString {
	return &InterpolationString{Contents: contents, Value: value}
}

func (n *InterpolationString) BeginToken() *token.Token     { return n.Contents }
func (n *InterpolationString) EndToken() *token.Token       { return n.Contents }
func (n *InterpolationString) ChildEntities() []interface{} { return entities(n.Contents) }
func (n *InterpolationString) Accept(visitor Visitor) interface{} {
	return visitor.VisitInterpolationString(n)
}
func (n *InterpolationString) interpolationElementNode() {}

// SymbolLiteral is "#a.b.c".
type SymbolLiteral struct {
	baseNode
	Poundsign  *token.Token
	Components []*token.Token
}

func NewSymbolLiteral(poundsign *token.Token, components []*token.Token) *SymbolLiteral {
	return &SymbolLiteral{Poundsign: poundsign, Components: components}
}

func (n *SymbolLiteral) BeginToken() *token.Token { return n.Poundsign }
func (n *SymbolLiteral) EndToken() *token.Token   { return endOf(n) }
func (n *SymbolLiteral) ChildEntities() []interface{} {
	return entities(n.Poundsign, n.Components)
}
func (n *SymbolLiteral) Accept(visitor Visitor) interface{} { return visitor.VisitSymbolLiteral(n) }
func (n *SymbolLiteral) expressionNode()                    {}
func (n *SymbolLiteral) literalNode()                       {}

// ===== Collection literals =====

// ListLiteral is "[a, b]", optionally const and typed.
type ListLiteral struct {
	baseNode
	ConstKeyword  *token.Token
	TypeArguments *TypeArgumentList
	LeftBracket   *token.Token
	Elements      *NodeList[Expression]
	RightBracket  *token.Token
}

func NewListLiteral(constKeyword *token.Token, typeArguments *TypeArgumentList, leftBracket *token.Token,
	elements []Expression, rightBracket *token.Token) *ListLiteral {
	n := &ListLiteral{ConstKeyword: constKeyword, LeftBracket: leftBracket, RightBracket: rightBracket}
	n.TypeArguments = becomeParentOf(n, typeArguments)
	n.Elements = newNodeListOf(n, elements)
	return n
}

func (n *ListLiteral) BeginToken() *token.Token { return beginOf(n) }
func (n *ListLiteral) EndToken() *token.Token   { return n.RightBracket }
func (n *ListLiteral) ChildEntities() []interface{} {
	return entities(n.ConstKeyword, n.TypeArguments, n.LeftBracket, n.Elements, n.RightBracket)
}
func (n *ListLiteral) Accept(visitor Visitor) interface{} { return visitor.VisitListLiteral(n) }
func (n *ListLiteral) expressionNode()                    {}
func (n *ListLiteral) literalNode()                       {}

// MapLiteral is "{k : v}", optionally const and typed.
type MapLiteral struct {
	baseNode
	ConstKeyword  *token.Token
	TypeArguments *TypeArgumentList
	LeftBracket   *token.Token
	Entries       *NodeList[*MapLiteralEntry]
	RightBracket  *token.Token
}

func NewMapLiteral(constKeyword *token.Token, typeArguments *TypeArgumentList, leftBracket *token.Token,
	entries []*MapLiteralEntry, rightBracket *token.Token) *MapLiteral {
	n := &MapLiteral{ConstKeyword: constKeyword, LeftBracket: leftBracket, RightBracket: rightBracket}
	n.TypeArguments = becomeParentOf(n, typeArguments)
	n.Entries = newNodeListOf(n, entries)
	return n
}

func (n *MapLiteral) BeginToken() *token.Token { return beginOf(n) }
func (n *MapLiteral) EndToken() *token.Token   { return n.RightBracket }
func (n *MapLiteral) ChildEntities() []interface{} {
	return entities(n.ConstKeyword, n.TypeArguments, n.LeftBracket, n.Entries, n.RightBracket)
}
func (n *MapLiteral) Accept(visitor Visitor) interface{} { return visitor.VisitMapLiteral(n) }
func (n *MapLiteral) expressionNode()                    {}
func (n *MapLiteral) literalNode()                       {}

// MapLiteralEntry is "key : value".
type MapLiteralEntry struct {
	baseNode
	Key       Expression
	Separator *token.Token
	Value     Expression
}

func NewMapLiteralEntry(key Expression, separator *token.Token, value Expression) *MapLiteralEntry {
	n := &MapLiteralEntry{Separator: separator}
	n.Key = becomeParentOf(n, key)
	n.Value = becomeParentOf(n, value)
	return n
}

func (n *MapLiteralEntry) BeginToken() *token.Token { return beginOf(n) }
func (n *MapLiteralEntry) EndToken() *token.Token   { return endOf(n) }
func (n *MapLiteralEntry) ChildEntities() []interface{} {
	return entities(n.Key, n.Separator, n.Value)
}
func (n *MapLiteralEntry) Accept(visitor Visitor) interface{} { return visitor.VisitMapLiteralEntry(n) }
