// Package printer renders syntax trees as canonical single-line source and
// records where every token was written, so that trees built without a
// scanner still get real source spans.
package printer

import (
	"github.com/orizon-lang/astkit/internal/ast"
	"github.com/orizon-lang/astkit/internal/position"
	"github.com/orizon-lang/astkit/internal/token"
)

// ToSource returns the canonical source text of node, or "" for nil.
func ToSource(node ast.Node) string {
	return Print("", node).Source
}

// Print renders node and returns the source together with the offset each
// token was written at. filename names the resulting source file in spans.
func Print(filename string, node ast.Node) *Result {
	w := newSourceWriter()
	if !ast.IsNil(node) {
		node.Accept(w)
	}
	source := w.buffer.String()
	return &Result{
		Source:  source,
		offsets: w.offsets,
		file:    position.NewSourceFile(filename, source),
	}
}

// Result is printed source plus the placement of its tokens.
type Result struct {
	Source  string
	offsets map[*token.Token]int
	file    *position.SourceFile
}

// File returns the printed source as a position.SourceFile.
func (r *Result) File() *position.SourceFile {
	return r.file
}

// Offset returns where t was written. ok is false for tokens the printer
// never emitted, such as tokens of another tree.
func (r *Result) Offset(t *token.Token) (offset int, ok bool) {
	if t == nil {
		return -1, false
	}
	offset, ok = r.offsets[t]
	return offset, ok
}

// Range returns the printed offset and length of node, from the start of its
// begin token to the end of its end token.
func (r *Result) Range(node ast.Node) (offset, length int, ok bool) {
	if ast.IsNil(node) {
		return -1, 0, false
	}
	begin, end := node.BeginToken(), node.EndToken()
	start, ok := r.Offset(begin)
	if !ok {
		return -1, 0, false
	}
	last, ok := r.Offset(end)
	if !ok {
		return -1, 0, false
	}
	stop := last + len(end.Lexeme())
	if stop < start {
		return -1, 0, false
	}
	return start, stop - start, true
}

// Span returns the source span of node, or the zero Span when node was not
// part of the printed tree.
func (r *Result) Span(node ast.Node) position.Span {
	offset, length, ok := r.Range(node)
	if !ok {
		return position.Span{}
	}
	return r.file.SpanFromRange(offset, length)
}

// Text returns the printed text of node.
func (r *Result) Text(node ast.Node) string {
	offset, length, ok := r.Range(node)
	if !ok {
		return ""
	}
	return r.Source[offset : offset+length]
}

// NodeAt returns the innermost node under root whose printed range contains
// offset, or nil.
func (r *Result) NodeAt(root ast.Node, offset int) ast.Node {
	var found ast.Node
	ast.Inspect(root, func(n ast.Node) bool {
		start, length, ok := r.Range(n)
		if !ok || offset < start || offset >= start+length {
			return !ok
		}
		found = n
		return true
	})
	return found
}
