// Package position maps byte offsets in printed source to lines and columns.
// Synthetic trees carry no source locations of their own; once a tree has
// been printed, the offsets recorded by the printer are resolved here into
// positions and spans that can be reported and highlighted.
package position

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
)

// Position represents a single point in source code
type Position struct {
	Filename string // Source file name
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Offset   int    // 0-based byte offset in source
}

// IsValid returns true if the position is valid
func (p Position) IsValid() bool {
	return p.Line > 0 && p.Column > 0 && p.Offset >= 0
}

// String returns a string representation of the position
func (p Position) String() string {
	if p.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", filepath.Base(p.Filename), p.Line, p.Column)
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Before returns true if this position comes before other
func (p Position) Before(other Position) bool {
	if p.Filename != other.Filename {
		return p.Filename < other.Filename
	}
	return p.Offset < other.Offset
}

// Span is the half-open range [Start, End) of printed source.
type Span struct {
	Start Position
	End   Position
}

// IsValid returns true if the span is valid
func (s Span) IsValid() bool {
	return s.Start.IsValid() && s.End.IsValid() &&
		s.Start.Filename == s.End.Filename &&
		s.Start.Offset <= s.End.Offset
}

// String returns a string representation of the span
func (s Span) String() string {
	prefix := ""
	if s.Start.Filename != "" {
		prefix = filepath.Base(s.Start.Filename) + ":"
	}
	if s.Start.Line == s.End.Line {
		return fmt.Sprintf("%s%d:%d-%d", prefix, s.Start.Line, s.Start.Column, s.End.Column)
	}
	return fmt.Sprintf("%s%d:%d-%d:%d", prefix, s.Start.Line, s.Start.Column, s.End.Line, s.End.Column)
}

// SourceFile is a named piece of printed source with precomputed line
// starts.
type SourceFile struct {
	Filename   string
	Content    string
	Lines      []string
	lineStarts []int
}

// NewSourceFile creates a new source file from content
func NewSourceFile(filename, content string) *SourceFile {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &SourceFile{
		Filename:   filename,
		Content:    content,
		Lines:      strings.Split(content, "\n"),
		lineStarts: starts,
	}
}

// GetLine returns the specified line (1-based) or empty string if invalid
func (sf *SourceFile) GetLine(lineNum int) string {
	if lineNum < 1 || lineNum > len(sf.Lines) {
		return ""
	}
	return sf.Lines[lineNum-1]
}

// PositionFromOffset converts a byte offset to a Position. Columns count
// bytes. An offset equal to the content length is the end-of-file position.
func (sf *SourceFile) PositionFromOffset(offset int) Position {
	if offset < 0 || offset > len(sf.Content) {
		return Position{}
	}
	line := sort.Search(len(sf.lineStarts), func(i int) bool { return sf.lineStarts[i] > offset }) - 1
	return Position{
		Filename: sf.Filename,
		Line:     line + 1,
		Column:   offset - sf.lineStarts[line] + 1,
		Offset:   offset,
	}
}

// OffsetFromPosition converts a Position to a byte offset, or -1 when the
// position lies outside the file.
func (sf *SourceFile) OffsetFromPosition(pos Position) int {
	if pos.Line < 1 || pos.Column < 1 || pos.Line > len(sf.lineStarts) {
		return -1
	}
	offset := sf.lineStarts[pos.Line-1] + pos.Column - 1
	if offset > len(sf.Content) {
		return -1
	}
	return offset
}

// SpanFromRange converts an offset and length into a span. It returns the
// zero Span when the range does not fit the file.
func (sf *SourceFile) SpanFromRange(offset, length int) Span {
	if offset < 0 || length < 0 || offset+length > len(sf.Content) {
		return Span{}
	}
	return Span{Start: sf.PositionFromOffset(offset), End: sf.PositionFromOffset(offset + length)}
}

// SourceMap holds the printed sources of several documents.
type SourceMap struct {
	files map[string]*SourceFile
}

// NewSourceMap creates a new source map
func NewSourceMap() *SourceMap {
	return &SourceMap{files: make(map[string]*SourceFile)}
}

// AddFile adds a source file to the map
func (sm *SourceMap) AddFile(filename, content string) *SourceFile {
	file := NewSourceFile(filename, content)
	sm.files[filename] = file
	return file
}

// GetFile returns the source file for the given filename
func (sm *SourceMap) GetFile(filename string) *SourceFile {
	return sm.files[filename]
}

// Error is a problem found in a tree, located by the span of the offending
// node in the printed source.
type Error struct {
	Span    Span
	Message string
	Kind    string // e.g. "shape", "document"
}

// String returns a formatted error message
func (e Error) String() string {
	return fmt.Sprintf("%s: %s: %s", e.Span.Start.String(), e.Kind, e.Message)
}

// Diagnostic collects the errors found in one printed tree.
type Diagnostic struct {
	Errors []Error
}

// NewDiagnostic creates an empty diagnostic.
func NewDiagnostic() *Diagnostic {
	return &Diagnostic{Errors: make([]Error, 0)}
}

// AddError adds an error to the diagnostic
func (d *Diagnostic) AddError(span Span, kind, message string) {
	d.Errors = append(d.Errors, Error{Span: span, Message: message, Kind: kind})
}

// Sort orders errors by their start position.
func (d *Diagnostic) Sort() {
	sort.SliceStable(d.Errors, func(i, j int) bool { return d.Errors[i].Span.Start.Before(d.Errors[j].Span.Start) })
}

// HasErrors returns true if there are any errors
func (d *Diagnostic) HasErrors() bool {
	return len(d.Errors) > 0
}

// ErrorCount returns the number of errors
func (d *Diagnostic) ErrorCount() int {
	return len(d.Errors)
}
