package position

import (
	"testing"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		name     string
		expected string
		pos      Position
		isValid  bool
	}{
		{
			name:     "Valid position with filename",
			pos:      Position{Filename: "out/point.dart", Line: 10, Column: 5, Offset: 100},
			isValid:  true,
			expected: "point.dart:10:5",
		},
		{
			name:     "Valid position without filename",
			pos:      Position{Line: 1, Column: 1, Offset: 0},
			isValid:  true,
			expected: "1:1",
		},
		{
			name:    "Invalid position - zero line",
			pos:     Position{Line: 0, Column: 1},
			isValid: false,
		},
		{
			name:    "Invalid position - negative offset",
			pos:     Position{Line: 1, Column: 1, Offset: -1},
			isValid: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.pos.IsValid(); got != tt.isValid {
				t.Errorf("Position.IsValid() = %v, want %v", got, tt.isValid)
			}
			if tt.isValid {
				if got := tt.pos.String(); got != tt.expected {
					t.Errorf("Position.String() = %v, want %v", got, tt.expected)
				}
			}
		})
	}
}

func TestPositionComparison(t *testing.T) {
	pos1 := Position{Filename: "a.dart", Line: 1, Column: 5, Offset: 4}
	pos2 := Position{Filename: "a.dart", Line: 1, Column: 10, Offset: 9}
	pos3 := Position{Filename: "0.dart", Line: 1, Column: 1, Offset: 0}

	if !pos1.Before(pos2) {
		t.Error("pos1 should be before pos2")
	}
	if pos2.Before(pos1) {
		t.Error("pos2 should not be before pos1")
	}
	if !pos3.Before(pos1) {
		t.Error("pos3 should be before pos1 (different filename)")
	}
}

func TestSpanString(t *testing.T) {
	file := NewSourceFile("out/a.dart", "class A {}\nclass B {}")

	if got := file.SpanFromRange(0, 10).String(); got != "a.dart:1:1-11" {
		t.Errorf("single line String() = %q", got)
	}
	if got := file.SpanFromRange(6, 15).String(); got != "a.dart:1:7-2:11" {
		t.Errorf("multi line String() = %q", got)
	}
	if got := NewSourceFile("", "x").SpanFromRange(0, 1).String(); got != "1:1-2" {
		t.Errorf("unnamed String() = %q", got)
	}
}

func TestSourceFilePositionConversion(t *testing.T) {
	content := "void main() {\n  print(1);\n}"
	file := NewSourceFile("main.dart", content)

	tests := []struct {
		name     string
		expected Position
		offset   int
	}{
		{
			name:     "Start of file",
			offset:   0,
			expected: Position{Filename: "main.dart", Line: 1, Column: 1, Offset: 0},
		},
		{
			name:     "Start of second line",
			offset:   14,
			expected: Position{Filename: "main.dart", Line: 2, Column: 1, Offset: 14},
		},
		{
			name:     "Middle of second line",
			offset:   16,
			expected: Position{Filename: "main.dart", Line: 2, Column: 3, Offset: 16},
		},
		{
			name:     "End of file",
			offset:   len(content),
			expected: Position{Filename: "main.dart", Line: 3, Column: 2, Offset: len(content)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := file.PositionFromOffset(tt.offset)
			if pos != tt.expected {
				t.Errorf("PositionFromOffset(%d) = %v, want %v", tt.offset, pos, tt.expected)
			}
			if offset := file.OffsetFromPosition(pos); offset != tt.offset {
				t.Errorf("OffsetFromPosition(%v) = %d, want %d", pos, offset, tt.offset)
			}
		})
	}
}

func TestInvalidPositions(t *testing.T) {
	file := NewSourceFile("a.dart", "ab\ncd")

	if pos := file.PositionFromOffset(-1); pos.IsValid() {
		t.Errorf("PositionFromOffset(-1) = %v, want invalid", pos)
	}
	if pos := file.PositionFromOffset(6); pos.IsValid() {
		t.Errorf("PositionFromOffset(6) = %v, want invalid", pos)
	}
	if got := file.OffsetFromPosition(Position{Line: 3, Column: 1}); got != -1 {
		t.Errorf("OffsetFromPosition(line 3) = %d, want -1", got)
	}
	if got := file.OffsetFromPosition(Position{Line: 2, Column: 9}); got != -1 {
		t.Errorf("OffsetFromPosition(col 9) = %d, want -1", got)
	}
	if span := file.SpanFromRange(4, 5); span.IsValid() {
		t.Errorf("SpanFromRange(4, 5) = %v, want zero span", span)
	}
}

func TestSourceFileGetLine(t *testing.T) {
	file := NewSourceFile("a.dart", "var x = 1;\nvar y = 2;")

	if got := file.GetLine(2); got != "var y = 2;" {
		t.Errorf("GetLine(2) = %q", got)
	}
	if got := file.GetLine(3); got != "" {
		t.Errorf("GetLine(3) = %q, want empty", got)
	}
}

func TestSourceMap(t *testing.T) {
	sm := NewSourceMap()
	b := sm.AddFile("b.dart", "part of lib;")
	sm.AddFile("a.dart", "library lib;")

	if sm.GetFile("b.dart") != b {
		t.Error("GetFile should return the added file")
	}
	if sm.GetFile("missing.dart") != nil {
		t.Error("GetFile should return nil for unknown files")
	}
	if got := sm.AddFile("b.dart", "part of app;"); sm.GetFile("b.dart") != got {
		t.Error("AddFile should replace an existing file")
	}
}

func TestDiagnostic(t *testing.T) {
	file := NewSourceFile("a.dart", "f() async => await g();")
	diag := NewDiagnostic()

	if diag.HasErrors() {
		t.Error("new diagnostic should be empty")
	}

	diag.AddError(file.SpanFromRange(13, 9), "shape", "await requires 1.9.0")
	diag.AddError(file.SpanFromRange(4, 5), "shape", "async requires 1.9.0")
	diag.Sort()

	if diag.ErrorCount() != 2 {
		t.Fatalf("ErrorCount() = %d, want 2", diag.ErrorCount())
	}
	if got := diag.Errors[0].String(); got != "a.dart:1:5: shape: async requires 1.9.0" {
		t.Errorf("Errors[0].String() = %q", got)
	}
	if got := diag.Errors[1].String(); got != "a.dart:1:14: shape: await requires 1.9.0" {
		t.Errorf("Errors[1].String() = %q", got)
	}
}
