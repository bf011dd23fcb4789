// Package astfactory builds fully tokenized syntax trees without a scanner or
// parser.
//
// Every function synthesizes the tokens its node needs (keywords, brackets,
// separators) and calls the matching ast constructor. Optional tokens are
// created exactly when the part they introduce is present: an else keyword
// only with an else statement, a period only with a constructor name, and so
// on. The factory keeps no state; all tokens sit at offset zero until the tree
// is printed.
//
// Repeated children are accepted as variadic arguments. Passing an existing
// slice with xs... produces the same tree as listing the elements, because
// the node lists copy their input.
package astfactory

import (
	"github.com/orizon-lang/astkit/internal/ast"
	"github.com/orizon-lang/astkit/internal/token"
)

// List returns a fresh slice holding elements. It never aliases its argument.
func List[E any](elements ...E) []E {
	out := make([]E, len(elements))
	copy(out, elements)
	return out
}

func tok(typ token.Type) *token.Token {
	return token.FromType(typ)
}

func kw(keyword token.Keyword) *token.Token {
	return token.FromKeyword(keyword)
}

// optKeyword returns a keyword token, or nil for token.NoKeyword.
func optKeyword(keyword token.Keyword) *token.Token {
	if keyword == token.NoKeyword {
		return nil
	}
	return token.FromKeyword(keyword)
}

// optKeywordIf returns a keyword token when present is true.
func optKeywordIf(present bool, keyword token.Keyword) *token.Token {
	if !present {
		return nil
	}
	return token.FromKeyword(keyword)
}

// contextual creates a token for a word that is only a keyword in context,
// such as async, await, yield, on, show or of.
func contextual(word string) *token.Token {
	return token.FromTypeAndText(token.Identifier, word)
}

// optContextual returns a contextual word token when present is true.
func optContextual(present bool, word string) *token.Token {
	if !present {
		return nil
	}
	return contextual(word)
}

// optIdentifier returns an identifier for name, or nil when name is empty.
func optIdentifier(name string) *ast.SimpleIdentifier {
	if name == "" {
		return nil
	}
	return Identifier(name)
}

// optTok returns a token of typ when present is true.
func optTok(present bool, typ token.Type) *token.Token {
	if !present {
		return nil
	}
	return token.FromType(typ)
}

func identifiers(names []string) []*ast.SimpleIdentifier {
	out := make([]*ast.SimpleIdentifier, 0, len(names))
	for _, name := range names {
		out = append(out, Identifier(name))
	}
	return out
}
