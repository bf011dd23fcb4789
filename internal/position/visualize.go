package position

import (
	"fmt"
	"strings"
)

// SpanHighlighter renders excerpts of printed source with a caret line under
// a span.
type SpanHighlighter struct {
	sourceMap *SourceMap
	// Context is the number of lines shown before and after the span.
	Context int
}

// NewSpanHighlighter creates a new span highlighter.
func NewSpanHighlighter(sourceMap *SourceMap) *SpanHighlighter {
	return &SpanHighlighter{sourceMap: sourceMap, Context: 2}
}

// HighlightSpan returns the lines around span with the covered bytes marked
// by carets. An empty span is marked with a single caret.
func (sh *SpanHighlighter) HighlightSpan(span Span) string {
	if !span.IsValid() {
		return "Invalid span"
	}

	file := sh.sourceMap.GetFile(span.Start.Filename)
	if file == nil {
		return fmt.Sprintf("File not found: %s", span.Start.Filename)
	}

	var result strings.Builder
	fmt.Fprintf(&result, "--> %s\n", span.String())

	startLine := max(1, span.Start.Line-sh.Context)
	endLine := min(len(file.Lines), span.End.Line+sh.Context)

	for lineNum := startLine; lineNum <= endLine; lineNum++ {
		line := file.GetLine(lineNum)
		fmt.Fprintf(&result, "%4d | %s\n", lineNum, line)
		if lineNum >= span.Start.Line && lineNum <= span.End.Line {
			sh.addHighlighting(&result, lineNum, line, span)
		}
	}

	return result.String()
}

// addHighlighting writes the caret line for one source line of span.
func (sh *SpanHighlighter) addHighlighting(result *strings.Builder, lineNum int, line string, span Span) {
	startCol, endCol := 1, len(line)+1
	if lineNum == span.Start.Line {
		startCol = span.Start.Column
	}
	if lineNum == span.End.Line {
		endCol = span.End.Column
	}
	if endCol <= startCol {
		endCol = startCol + 1
	}

	result.WriteString("     | ")
	for i := 1; i < startCol; i++ {
		if i <= len(line) && line[i-1] == '\t' {
			result.WriteByte('\t')
		} else {
			result.WriteByte(' ')
		}
	}
	result.WriteString(strings.Repeat("^", endCol-startCol))
	result.WriteByte('\n')
}

// ErrorVisualizer renders diagnostics with highlighted excerpts.
type ErrorVisualizer struct {
	highlighter *SpanHighlighter
}

// NewErrorVisualizer creates a new error visualizer.
func NewErrorVisualizer(sourceMap *SourceMap) *ErrorVisualizer {
	return &ErrorVisualizer{highlighter: NewSpanHighlighter(sourceMap)}
}

// VisualizeError renders one error followed by its excerpt.
func (ev *ErrorVisualizer) VisualizeError(err Error) string {
	return fmt.Sprintf("error: %s\n%s", err.String(), ev.highlighter.HighlightSpan(err.Span))
}

// VisualizeDiagnostic renders every error of diag in position order.
func (ev *ErrorVisualizer) VisualizeDiagnostic(diag *Diagnostic) string {
	if !diag.HasErrors() {
		return "No errors.\n"
	}
	diag.Sort()

	var result strings.Builder
	for _, err := range diag.Errors {
		result.WriteString(ev.VisualizeError(err))
		result.WriteString("\n")
	}
	fmt.Fprintf(&result, "%d error(s)\n", diag.ErrorCount())
	return result.String()
}
