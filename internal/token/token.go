// Package token defines the lexical units that AST nodes are bounded by.
//
// Tokens are immutable values. A scanner would produce them from source text;
// the AST factory fabricates them through the constructors in this file
// (FromType, FromKeyword, FromTypeAndText, FromText), all of which produce
// tokens at offset zero. Tokens know nothing about the nodes that hold them.
package token

import "fmt"

// Type is the kind tag of a token.
type Type int

// Token types. Types with a fixed spelling carry it in typeInfo.
const (
	EOF Type = iota
	Identifier
	KeywordToken
	Int
	Double
	String
	ScriptTag

	// Grouping
	OpenParen
	CloseParen
	OpenCurlyBracket
	CloseCurlyBracket
	OpenSquareBracket
	CloseSquareBracket
	StringInterpolationExpression
	StringInterpolationIdentifier

	// Punctuation
	Semicolon
	Comma
	Period
	PeriodPeriod
	Colon
	Question
	At
	Hash
	Function

	// Operators
	Eq
	EqEq
	BangEq
	Bang
	Lt
	LtEq
	Gt
	GtEq
	LtLt
	GtGt
	Plus
	PlusPlus
	Minus
	MinusMinus
	Star
	Slash
	TildeSlash
	Percent
	Tilde
	Ampersand
	AmpersandAmpersand
	Bar
	BarBar
	Caret
	QuestionQuestion
	Index
	IndexEq

	// Compound assignment
	PlusEq
	MinusEq
	StarEq
	SlashEq
	TildeSlashEq
	PercentEq
	AmpersandEq
	BarEq
	CaretEq
	LtLtEq
	GtGtEq
	QuestionQuestionEq

	typeCount
)

type typeInfo struct {
	name   string
	lexeme string
}

var types = [typeCount]typeInfo{
	EOF:          {"EOF", ""},
	Identifier:   {"IDENTIFIER", ""},
	KeywordToken: {"KEYWORD", ""},
	Int:          {"INT", ""},
	Double:       {"DOUBLE", ""},
	String:       {"STRING", ""},
	ScriptTag:    {"SCRIPT_TAG", ""},

	OpenParen:                     {"OPEN_PAREN", "("},
	CloseParen:                    {"CLOSE_PAREN", ")"},
	OpenCurlyBracket:              {"OPEN_CURLY_BRACKET", "{"},
	CloseCurlyBracket:             {"CLOSE_CURLY_BRACKET", "}"},
	OpenSquareBracket:             {"OPEN_SQUARE_BRACKET", "["},
	CloseSquareBracket:            {"CLOSE_SQUARE_BRACKET", "]"},
	StringInterpolationExpression: {"STRING_INTERPOLATION_EXPRESSION", "${"},
	StringInterpolationIdentifier: {"STRING_INTERPOLATION_IDENTIFIER", "$"},

	Semicolon:    {"SEMICOLON", ";"},
	Comma:        {"COMMA", ","},
	Period:       {"PERIOD", "."},
	PeriodPeriod: {"PERIOD_PERIOD", ".."},
	Colon:        {"COLON", ":"},
	Question:     {"QUESTION", "?"},
	At:           {"AT", "@"},
	Hash:         {"HASH", "#"},
	Function:     {"FUNCTION", "=>"},

	Eq:                 {"EQ", "="},
	EqEq:               {"EQ_EQ", "=="},
	BangEq:             {"BANG_EQ", "!="},
	Bang:               {"BANG", "!"},
	Lt:                 {"LT", "<"},
	LtEq:               {"LT_EQ", "<="},
	Gt:                 {"GT", ">"},
	GtEq:               {"GT_EQ", ">="},
	LtLt:               {"LT_LT", "<<"},
	GtGt:               {"GT_GT", ">>"},
	Plus:               {"PLUS", "+"},
	PlusPlus:           {"PLUS_PLUS", "++"},
	Minus:              {"MINUS", "-"},
	MinusMinus:         {"MINUS_MINUS", "--"},
	Star:               {"STAR", "*"},
	Slash:              {"SLASH", "/"},
	TildeSlash:         {"TILDE_SLASH", "~/"},
	Percent:            {"PERCENT", "%"},
	Tilde:              {"TILDE", "~"},
	Ampersand:          {"AMPERSAND", "&"},
	AmpersandAmpersand: {"AMPERSAND_AMPERSAND", "&&"},
	Bar:                {"BAR", "|"},
	BarBar:             {"BAR_BAR", "||"},
	Caret:              {"CARET", "^"},
	QuestionQuestion:   {"QUESTION_QUESTION", "??"},
	Index:              {"INDEX", "[]"},
	IndexEq:            {"INDEX_EQ", "[]="},

	PlusEq:             {"PLUS_EQ", "+="},
	MinusEq:            {"MINUS_EQ", "-="},
	StarEq:             {"STAR_EQ", "*="},
	SlashEq:            {"SLASH_EQ", "/="},
	TildeSlashEq:       {"TILDE_SLASH_EQ", "~/="},
	PercentEq:          {"PERCENT_EQ", "%="},
	AmpersandEq:        {"AMPERSAND_EQ", "&="},
	BarEq:              {"BAR_EQ", "|="},
	CaretEq:            {"CARET_EQ", "^="},
	LtLtEq:             {"LT_LT_EQ", "<<="},
	GtGtEq:             {"GT_GT_EQ", ">>="},
	QuestionQuestionEq: {"QUESTION_QUESTION_EQ", "??="},
}

// String returns the upper-case name of the token type.
func (t Type) String() string {
	if t >= 0 && t < typeCount {
		return types[t].name
	}
	return fmt.Sprintf("UNKNOWN(%d)", int(t))
}

// Lexeme returns the fixed spelling of the type, or "" for types whose text
// varies (identifiers, literals, keywords).
func (t Type) Lexeme() string {
	if t >= 0 && t < typeCount {
		return types[t].lexeme
	}
	return ""
}

// IsOperator reports whether the type has a fixed operator spelling.
func (t Type) IsOperator() bool {
	return t >= Eq && t < typeCount
}

// IsAssignmentOperator reports whether the type is "=" or a compound assignment.
func (t Type) IsAssignmentOperator() bool {
	return t == Eq || (t >= PlusEq && t <= QuestionQuestionEq)
}

// TypeByLexeme finds the fixed-spelling type for an operator or punctuation
// lexeme such as "+=" or "..".
func TypeByLexeme(lexeme string) (Type, bool) {
	if lexeme == "" {
		return EOF, false
	}
	for t := Type(0); t < typeCount; t++ {
		if types[t].lexeme == lexeme {
			return t, true
		}
	}
	return EOF, false
}

// Token is a single lexical unit.
type Token struct {
	typ     Type
	keyword Keyword
	lexeme  string
	offset  int
}

// New creates a token with explicit text at the given source offset.
func New(typ Type, lexeme string, offset int) *Token {
	return &Token{typ: typ, lexeme: lexeme, offset: offset}
}

// NewKeyword creates a keyword token at the given source offset.
func NewKeyword(keyword Keyword, offset int) *Token {
	return &Token{typ: KeywordToken, keyword: keyword, lexeme: keyword.Lexeme(), offset: offset}
}

// FromType creates a token carrying only a type tag; its lexeme is the type's
// fixed spelling.
func FromType(typ Type) *Token {
	return New(typ, typ.Lexeme(), 0)
}

// FromKeyword creates a token for a reserved word.
func FromKeyword(keyword Keyword) *Token {
	return NewKeyword(keyword, 0)
}

// FromTypeAndText creates a token with explicit literal text, for identifiers
// and numeric literals.
func FromTypeAndText(typ Type, text string) *Token {
	return New(typ, text, 0)
}

// FromText creates a string-typed token holding arbitrary text. It is used for
// contextual words that are not reserved ("show", "hide", "of", "native") and
// for already-quoted literal text.
func FromText(text string) *Token {
	return New(String, text, 0)
}

// Type returns the kind tag.
func (t *Token) Type() Type { return t.typ }

// Keyword returns the reserved word this token spells, or NoKeyword.
func (t *Token) Keyword() Keyword { return t.keyword }

// Lexeme returns the token text.
func (t *Token) Lexeme() string { return t.lexeme }

// Offset returns the 0-based byte offset of the token in its source.
func (t *Token) Offset() int { return t.offset }

// Length returns the length of the lexeme in bytes.
func (t *Token) Length() int { return len(t.lexeme) }

// End returns the offset one past the last byte of the token.
func (t *Token) End() int { return t.offset + len(t.lexeme) }

// IsKeyword reports whether the token is the given reserved word.
func (t *Token) IsKeyword(k Keyword) bool {
	return t != nil && t.typ == KeywordToken && t.keyword == k
}

// String returns the lexeme.
func (t *Token) String() string {
	if t == nil {
		return "<nil>"
	}
	return t.lexeme
}
