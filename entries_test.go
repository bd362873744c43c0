package toml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntriesStringRendersKeyValuePairs(t *testing.T) {
	root, errs := Parse("a = 1\nb = \"x\"\n")
	require.Empty(t, errs)
	require.Empty(t, root.Errors())
	require.Equal(t, `{a = 1, b = x}`, root.Entries().String())
}

func TestTopLevelTableConflictsWithDottedKeyOnlyWhenProperlyNested(t *testing.T) {
	// a.b defines "a" via a dotted key; [a] later redefines it as a full
	// table, which is the TopLevelTableDefined conflict (S5). A disjoint
	// header must NOT trigger it.
	root, errs := Parse("z.y = 1\n[q]\nm = 2\n")
	require.Empty(t, errs)
	require.Empty(t, root.Errors())
}

func TestDuplicateHeaderDetection(t *testing.T) {
	root, errs := Parse("[a]\nx = 1\n[a]\ny = 2\n")
	require.Empty(t, errs)

	require.Len(t, root.Errors(), 1)
	require.Equal(t, ErrDuplicateKey, root.Errors()[0].Kind())
}

func TestArrayOfTablesConflictsWithPlainTable(t *testing.T) {
	root, errs := Parse("[a]\nx = 1\n[[a]]\ny = 2\n")
	require.Empty(t, errs)

	require.Len(t, root.Errors(), 1)
	require.Equal(t, ErrExpectedTableArray, root.Errors()[0].Kind())
}
