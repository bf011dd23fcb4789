package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiffReplacedLine(t *testing.T) {
	result := Diff("a\nb\nc\n", "a\nx\nc\n", DiffOptions{Context: 1})
	require.True(t, result.HasChanges)
	require.Len(t, result.Hunks, 1)
	assert.Equal(t, DiffStat{LinesAdded: 1, LinesRemoved: 1}, result.Stats)

	want := "--- f\t(previous)\n" +
		"+++ f\t(generated)\n" +
		"@@ -1,3 +1,3 @@\n" +
		" a\n" +
		"-b\n" +
		"+x\n" +
		" c\n"
	assert.Equal(t, want, FormatDiff("f", result))
}

func TestDiffIdentical(t *testing.T) {
	result := Diff("a\nb\n", "a\nb\n", DefaultDiffOptions())
	assert.False(t, result.HasChanges)
	assert.Empty(t, FormatDiff("f", result))
}

func TestDiffSeparateHunks(t *testing.T) {
	original := "1\n2\n3\n4\n5\n6\n7\n8\n"
	modified := "0\n2\n3\n4\n5\n6\n7\n9\n"

	result := Diff(original, modified, DiffOptions{Context: 1})
	require.Len(t, result.Hunks, 2)
	assert.Equal(t, "@@ -1,2 +1,2 @@", result.Hunks[0].Header())
	assert.Equal(t, "@@ -7,2 +7,2 @@", result.Hunks[1].Header())
}

func TestDiffFromEmpty(t *testing.T) {
	result := Diff("", "a\n", DefaultDiffOptions())
	require.Len(t, result.Hunks, 1)
	assert.Equal(t, "@@ -0,0 +1,1 @@", result.Hunks[0].Header())
}

func TestDiffIgnoreSpace(t *testing.T) {
	result := Diff("a  \n", "a\n", DiffOptions{IgnoreSpace: true})
	assert.False(t, result.HasChanges)
}
