package printer

import (
	"strings"

	"github.com/orizon-lang/astkit/internal/ast"
	"github.com/orizon-lang/astkit/internal/position"
)

// FormatText applies minimal, safe formatting:
// - converts CRLF and CR line endings to LF
// - trims trailing spaces/tabs on each line
// - ensures exactly one trailing newline.
func FormatText(text string) string {
	norm := strings.ReplaceAll(text, "\r\n", "\n")
	norm = strings.ReplaceAll(norm, "\r", "\n")
	if norm == "" {
		return "\n"
	}

	lines := strings.Split(norm, "\n")
	// Drop final empty due to trailing newline; we'll re-add exactly one later.
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " \t")
	}
	return strings.Join(lines, "\n") + "\n"
}

// FormatFile renders a node as file content. A compilation unit is laid out
// by PrintFile; any other node is printed with ToSource.
func FormatFile(node ast.Node) string {
	if unit, ok := node.(*ast.CompilationUnit); ok && unit != nil {
		return PrintFile("", unit).Source
	}
	return FormatText(ToSource(node))
}

// PrintFile renders unit with its script tag, each directive and each
// declaration on a line of its own, recording token offsets like Print.
// The source always ends with a single newline.
func PrintFile(filename string, unit *ast.CompilationUnit) *Result {
	w := newSourceWriter()
	if unit != nil {
		w.mark(unit.StartToken)
		if unit.ScriptTag != nil {
			w.node(unit.ScriptTag)
			w.text("\n")
		}
		writeLines(w, unit.Directives)
		writeLines(w, unit.Declarations)
		w.mark(unit.EndOfFile)
	}
	if w.buffer.Len() == 0 {
		w.text("\n")
	}
	source := w.buffer.String()
	return &Result{
		Source:  source,
		offsets: w.offsets,
		file:    position.NewSourceFile(filename, source),
	}
}

func writeLines[T ast.Node](w *sourceWriter, list *ast.NodeList[T]) {
	if list == nil {
		return
	}
	for _, n := range list.All() {
		w.node(n)
		w.text("\n")
	}
}
