package position

import (
	"strings"
	"testing"
)

func TestSpanHighlighterBasic(t *testing.T) {
	sourceMap := NewSourceMap()
	file := sourceMap.AddFile("a.dart", "class A {}\nclass B extends A {}\nclass C {}")

	highlighter := NewSpanHighlighter(sourceMap)
	result := highlighter.HighlightSpan(file.SpanFromRange(19, 9))

	expectedStrings := []string{
		"--> a.dart:2:9-18",
		"   1 | class A {}",
		"   2 | class B extends A {}",
		"     |         ^^^^^^^^^",
		"   3 | class C {}",
	}
	for _, expected := range expectedStrings {
		if !strings.Contains(result, expected) {
			t.Errorf("HighlightSpan result should contain %q, got:\n%s", expected, result)
		}
	}
}

func TestSpanHighlighterMultiLine(t *testing.T) {
	sourceMap := NewSourceMap()
	file := sourceMap.AddFile("a.dart", "f() {\n  g();\n}")

	highlighter := NewSpanHighlighter(sourceMap)
	highlighter.Context = 0
	result := highlighter.HighlightSpan(file.SpanFromRange(4, 10))

	lines := strings.Split(strings.TrimRight(result, "\n"), "\n")
	want := []string{
		"--> a.dart:1:5-3:2",
		"   1 | f() {",
		"     |     ^",
		"   2 |   g();",
		"     | ^^^^^^",
		"   3 | }",
		"     | ^",
	}
	if len(lines) != len(want) {
		t.Fatalf("got %d lines, want %d:\n%s", len(lines), len(want), result)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Errorf("line %d = %q, want %q", i, lines[i], want[i])
		}
	}
}

func TestSpanHighlighterEmptySpan(t *testing.T) {
	sourceMap := NewSourceMap()
	file := sourceMap.AddFile("a.dart", "x;")

	result := NewSpanHighlighter(sourceMap).HighlightSpan(file.SpanFromRange(1, 0))
	if !strings.Contains(result, "     |  ^\n") {
		t.Errorf("empty span should get a single caret, got:\n%s", result)
	}
}

func TestSpanHighlighterInvalid(t *testing.T) {
	highlighter := NewSpanHighlighter(NewSourceMap())

	if got := highlighter.HighlightSpan(Span{}); got != "Invalid span" {
		t.Errorf("HighlightSpan(zero) = %q", got)
	}

	span := Span{
		Start: Position{Filename: "missing.dart", Line: 1, Column: 1, Offset: 0},
		End:   Position{Filename: "missing.dart", Line: 1, Column: 2, Offset: 1},
	}
	if got := highlighter.HighlightSpan(span); got != "File not found: missing.dart" {
		t.Errorf("HighlightSpan(missing) = %q", got)
	}
}

func TestVisualizeDiagnostic(t *testing.T) {
	sourceMap := NewSourceMap()
	file := sourceMap.AddFile("a.dart", "enum E {a}\nf() async {}")

	diag := NewDiagnostic()
	diag.AddError(file.SpanFromRange(15, 5), "shape", "async body requires 1.9.0")
	diag.AddError(file.SpanFromRange(0, 10), "shape", "enum requires 1.8.0")

	result := NewErrorVisualizer(sourceMap).VisualizeDiagnostic(diag)

	enumAt := strings.Index(result, "enum requires")
	asyncAt := strings.Index(result, "async body requires")
	if enumAt < 0 || asyncAt < 0 || enumAt > asyncAt {
		t.Errorf("errors should be reported in position order, got:\n%s", result)
	}
	if !strings.Contains(result, "2 error(s)\n") {
		t.Errorf("summary missing, got:\n%s", result)
	}
}

func TestVisualizeDiagnosticEmpty(t *testing.T) {
	result := NewErrorVisualizer(NewSourceMap()).VisualizeDiagnostic(NewDiagnostic())
	if result != "No errors.\n" {
		t.Errorf("VisualizeDiagnostic(empty) = %q", result)
	}
}
