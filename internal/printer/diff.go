package printer

import (
	"fmt"
	"strings"
)

// DiffOptions controls diff generation.
type DiffOptions struct {
	Context     int  // Number of context lines around each change
	IgnoreSpace bool // Ignore trailing whitespace differences
}

// DefaultDiffOptions returns default diff options.
func DefaultDiffOptions() DiffOptions {
	return DiffOptions{Context: 3}
}

// DiffResult represents the result of a diff operation.
type DiffResult struct {
	Hunks      []Hunk
	Stats      DiffStat
	HasChanges bool
}

// Hunk represents a contiguous block of changes.
type Hunk struct {
	Lines         []Line
	OriginalStart int
	OriginalCount int
	ModifiedStart int
	ModifiedCount int
}

// Header returns the unified "@@ -a,b +c,d @@" header of the hunk.
func (h Hunk) Header() string {
	return fmt.Sprintf("@@ -%d,%d +%d,%d @@", h.OriginalStart, h.OriginalCount, h.ModifiedStart, h.ModifiedCount)
}

// Line represents a single line in a diff.
type Line struct {
	Content string
	Type    LineType
}

// LineType represents the type of a diff line.
type LineType int

const (
	LineTypeContext LineType = iota // Unchanged context line
	LineTypeAdded                   // Added line (+)
	LineTypeRemoved                 // Removed line (-)
)

func (t LineType) prefix() string {
	switch t {
	case LineTypeAdded:
		return "+"
	case LineTypeRemoved:
		return "-"
	default:
		return " "
	}
}

// DiffStat contains statistics about changes.
type DiffStat struct {
	LinesAdded   int
	LinesRemoved int
}

// Diff compares two printed sources line by line.
func Diff(original, modified string, opts DiffOptions) *DiffResult {
	a, b := splitLines(original), splitLines(modified)
	ca, cb := a, b
	if opts.IgnoreSpace {
		ca, cb = trimLines(a), trimLines(b)
	}

	script := editScript(ca, cb)
	result := &DiffResult{Hunks: groupHunks(script, a, b, max(0, opts.Context))}
	for _, op := range script {
		switch op.kind {
		case LineTypeAdded:
			result.Stats.LinesAdded++
		case LineTypeRemoved:
			result.Stats.LinesRemoved++
		}
	}
	result.HasChanges = len(result.Hunks) > 0
	return result
}

// FormatDiff renders result as a unified diff, or "" when nothing changed.
func FormatDiff(filename string, result *DiffResult) string {
	if result == nil || !result.HasChanges {
		return ""
	}

	var output strings.Builder
	fmt.Fprintf(&output, "--- %s\t(previous)\n", filename)
	fmt.Fprintf(&output, "+++ %s\t(generated)\n", filename)
	for _, hunk := range result.Hunks {
		output.WriteString(hunk.Header())
		output.WriteByte('\n')
		for _, line := range hunk.Lines {
			output.WriteString(line.Type.prefix())
			output.WriteString(line.Content)
			output.WriteByte('\n')
		}
	}
	return output.String()
}

func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n")
}

func trimLines(lines []string) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = strings.TrimRight(line, " \t")
	}
	return out
}

// editOp is one step of an edit script. ai and bi are 0-based line indexes
// into the original and modified text; the one that does not apply is the
// position the step happens at.
type editOp struct {
	kind   LineType
	ai, bi int
}

// editScript computes a shortest edit script from the longest common
// subsequence table of a and b.
func editScript(a, b []string) []editOp {
	n, m := len(a), len(b)
	lcs := make([][]int, n+1)
	for i := range lcs {
		lcs[i] = make([]int, m+1)
	}
	for i := n - 1; i >= 0; i-- {
		for j := m - 1; j >= 0; j-- {
			if a[i] == b[j] {
				lcs[i][j] = lcs[i+1][j+1] + 1
			} else {
				lcs[i][j] = max(lcs[i+1][j], lcs[i][j+1])
			}
		}
	}

	script := make([]editOp, 0, n+m)
	i, j := 0, 0
	for i < n || j < m {
		switch {
		case i < n && j < m && a[i] == b[j]:
			script = append(script, editOp{LineTypeContext, i, j})
			i++
			j++
		case i < n && (j == m || lcs[i+1][j] >= lcs[i][j+1]):
			script = append(script, editOp{LineTypeRemoved, i, j})
			i++
		default:
			script = append(script, editOp{LineTypeAdded, i, j})
			j++
		}
	}
	return script
}

// groupHunks cuts the edit script into hunks, keeping context lines of
// unchanged text around every change and merging changes whose context
// would overlap.
func groupHunks(script []editOp, a, b []string, context int) []Hunk {
	var hunks []Hunk
	prevEnd := 0
	for start := 0; start < len(script); {
		if script[start].kind == LineTypeContext {
			start++
			continue
		}

		lo := max(prevEnd, start-context)
		last := start
		for hi := start + 1; hi < len(script); hi++ {
			if script[hi].kind != LineTypeContext {
				last = hi
			} else if hi-last > 2*context {
				break
			}
		}
		end := min(last+1+context, len(script))

		h := Hunk{OriginalStart: script[lo].ai + 1, ModifiedStart: script[lo].bi + 1}
		for _, op := range script[lo:end] {
			switch op.kind {
			case LineTypeContext:
				h.Lines = append(h.Lines, Line{Content: a[op.ai], Type: op.kind})
				h.OriginalCount++
				h.ModifiedCount++
			case LineTypeRemoved:
				h.Lines = append(h.Lines, Line{Content: a[op.ai], Type: op.kind})
				h.OriginalCount++
			case LineTypeAdded:
				h.Lines = append(h.Lines, Line{Content: b[op.bi], Type: op.kind})
				h.ModifiedCount++
			}
		}
		if h.OriginalCount == 0 {
			h.OriginalStart--
		}
		if h.ModifiedCount == 0 {
			h.ModifiedStart--
		}
		hunks = append(hunks, h)
		prevEnd, start = end, end
	}
	return hunks
}
