package toml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestArrayPlainValues(t *testing.T) {
	root, errs := Parse("a = [1, 2, 3]\n")
	require.Empty(t, errs)
	require.Empty(t, root.Errors())

	a := findEntry(t, root.Entries(), "a")
	arr := a.Value().Array()
	require.False(t, arr.IsArrayOfTables())
	require.Len(t, arr.Items(), 3)
	require.Equal(t, "2", arr.Items()[1].IntegerText())
}

func TestArrayOfTablesSpanExtension(t *testing.T) {
	root, errs := Parse("[[x]]\nn = 1\n[[x]]\nn = 2\n[y]\nm = 3\n")
	require.Empty(t, errs)
	require.Empty(t, root.Errors())

	x := findEntry(t, root.Entries(), "x")
	arr := x.Value().Array()
	require.Len(t, arr.Items(), 2)

	item0 := arr.Items()[0]
	_, end0 := item0.TextRange()
	_, end1 := arr.Items()[1].TextRange()

	// item0's range should stop at the second [[x]] header, not reach [y].
	require.Less(t, end0, end1)

	_, fullEnd := a2Range(t, root)
	require.LessOrEqual(t, end1, fullEnd)
}

func a2Range(t *testing.T, root *Root) (uint32, uint32) {
	t.Helper()
	y := findEntry(t, root.Entries(), "y")
	return y.TextRange()
}
