package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/orizon-lang/astkit/internal/ast"
	"github.com/orizon-lang/astkit/internal/token"
)

// DumpOptions controls Dump output.
type DumpOptions struct {
	// Color enables ANSI colouring regardless of the writer.
	Color bool
	// Result, when set, adds the printed span of every node.
	Result *Result
}

// ColorEnabled reports whether f is a terminal that should get colour.
func ColorEnabled(f *os.File) bool {
	if f == nil || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type dumpPalette struct {
	node, token, span *color.Color
}

func newDumpPalette(enabled bool) dumpPalette {
	p := dumpPalette{
		node:  color.New(color.FgCyan, color.Bold),
		token: color.New(color.FgGreen),
		span:  color.New(color.Faint),
	}
	for _, c := range []*color.Color{p.node, p.token, p.span} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Dump writes an indented tree of node to w: one line per node holding the
// node kind, the lexemes of the tokens the node owns directly and, when
// opts.Result is set, the node's span in the printed source.
func Dump(w io.Writer, node ast.Node, opts DumpOptions) error {
	d := &treeDumper{palette: newDumpPalette(opts.Color), result: opts.Result}
	if !ast.IsNil(node) {
		d.dump(node, 0)
	}
	_, err := io.WriteString(w, d.out.String())
	return err
}

type treeDumper struct {
	out     strings.Builder
	palette dumpPalette
	result  *Result
}

func (d *treeDumper) dump(n ast.Node, indent int) {
	d.out.WriteString(strings.Repeat("  ", indent))
	d.out.WriteString(d.palette.node.Sprint(ast.NodeName(n)))

	for _, e := range n.ChildEntities() {
		if t, ok := e.(*token.Token); ok {
			d.out.WriteString(" ")
			d.out.WriteString(d.palette.token.Sprint(fmt.Sprintf("%q", t.Lexeme())))
		}
	}
	if d.result != nil {
		if span := d.result.Span(n); span.IsValid() {
			d.out.WriteString(" ")
			d.out.WriteString(d.palette.span.Sprint(span.String()))
		}
	}
	d.out.WriteString("\n")

	for _, child := range ast.Children(n) {
		d.dump(child, indent+1)
	}
}
