package cli

import (
	"fmt"

	"github.com/orizon-lang/astkit/internal/ast"
	"github.com/orizon-lang/astkit/internal/document"
	"github.com/orizon-lang/astkit/internal/position"
	"github.com/orizon-lang/astkit/internal/printer"
)

// Location is the innermost node found at a line and column of a printed
// document.
type Location struct {
	Node    ast.Node
	Name    string
	Span    position.Span
	Text    string
	Excerpt string
}

// Locate decodes the document at path, prints it with printer.PrintFile and
// returns the node under the 1-based line and column of that output.
func Locate(path string, line, column int) (*Location, error) {
	unit, err := document.DecodeFile(path)
	if err != nil {
		return nil, err
	}
	return LocateIn(path, unit, line, column)
}

// LocateIn is Locate for an already decoded unit.
func LocateIn(filename string, unit *ast.CompilationUnit, line, column int) (*Location, error) {
	result := printer.PrintFile(filename, unit)
	offset := result.File().OffsetFromPosition(position.Position{Filename: filename, Line: line, Column: column})
	if offset < 0 {
		return nil, fmt.Errorf("%d:%d is outside the printed source", line, column)
	}

	node := result.NodeAt(unit, offset)
	if node == nil {
		return nil, fmt.Errorf("no node at %d:%d", line, column)
	}

	loc := &Location{Node: node, Name: ast.NodeName(node), Span: result.Span(node), Text: result.Text(node)}
	sources := position.NewSourceMap()
	sources.AddFile(filename, result.Source)
	loc.Excerpt = position.NewSpanHighlighter(sources).HighlightSpan(loc.Span)
	return loc, nil
}
