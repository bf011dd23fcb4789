package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromTypeUsesFixedSpelling(t *testing.T) {
	tok := FromType(OpenParen)
	assert.Equal(t, OpenParen, tok.Type())
	assert.Equal(t, "(", tok.Lexeme())
	assert.Equal(t, NoKeyword, tok.Keyword())
	assert.Equal(t, 0, tok.Offset())
}

func TestFromKeyword(t *testing.T) {
	tok := FromKeyword(KwClass)
	assert.Equal(t, KeywordToken, tok.Type())
	assert.Equal(t, "class", tok.Lexeme())
	assert.True(t, tok.IsKeyword(KwClass))
	assert.False(t, tok.IsKeyword(KwEnum))
}

func TestFromTypeAndTextAndFromText(t *testing.T) {
	id := FromTypeAndText(Identifier, "foo")
	assert.Equal(t, Identifier, id.Type())
	assert.Equal(t, "foo", id.Lexeme())

	show := FromText("show")
	assert.Equal(t, String, show.Type())
	assert.Equal(t, "show", show.Lexeme())
}

func TestTypeByLexeme(t *testing.T) {
	tests := []struct {
		lexeme string
		want   Type
	}{
		{"+", Plus},
		{"+=", PlusEq},
		{"..", PeriodPeriod},
		{"=>", Function},
		{"~/=", TildeSlashEq},
	}
	for _, tt := range tests {
		t.Run(tt.lexeme, func(t *testing.T) {
			got, ok := TypeByLexeme(tt.lexeme)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	_, ok := TypeByLexeme("")
	assert.False(t, ok)
	_, ok = TypeByLexeme("<=>")
	assert.False(t, ok)
}

func TestAssignmentOperators(t *testing.T) {
	assert.True(t, Eq.IsAssignmentOperator())
	assert.True(t, PlusEq.IsAssignmentOperator())
	assert.True(t, QuestionQuestionEq.IsAssignmentOperator())
	assert.False(t, EqEq.IsAssignmentOperator())
	assert.False(t, Semicolon.IsOperator())
	assert.True(t, Plus.IsOperator())
}

func TestLookupKeyword(t *testing.T) {
	k, ok := LookupKeyword("while")
	require.True(t, ok)
	assert.Equal(t, KwWhile, k)

	_, ok = LookupKeyword("async")
	assert.False(t, ok, "async is contextual, not reserved")
}

func TestTokenEnd(t *testing.T) {
	tok := New(Identifier, "value", 10)
	assert.Equal(t, 15, tok.End())
	assert.Equal(t, 5, tok.Length())
	assert.Equal(t, "UNKNOWN(999)", Type(999).String())

	var nilTok *Token
	assert.Equal(t, "<nil>", nilTok.String())
}
