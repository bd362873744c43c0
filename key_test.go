package toml

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tamasfe/go-tomldom/internal/syntax"
)

func mustKey(t *testing.T, src string) KeyNode {
	t.Helper()
	root, errs := syntax.Parse(src)
	require.Empty(t, errs)
	keyEl := root.FirstChild().FirstChild()
	require.Equal(t, syntax.KEY, keyEl.Kind())
	k, ok := newKeyNode(keyEl)
	require.True(t, ok)
	return k
}

func TestKeyNodeFullKeyString(t *testing.T) {
	k := mustKey(t, "a.b.c = 1\n")
	require.Equal(t, 3, k.KeyCount())
	require.Equal(t, "a.b.c", k.FullKeyString())
	require.Equal(t, []string{"a", "b", "c"}, k.KeysStr())
}

func TestKeyNodeIsPartOfAndContains(t *testing.T) {
	a := mustKey(t, "a.b = 1\n")
	ab := mustKey(t, "a.b.c = 1\n")

	require.True(t, a.IsPartOf(ab))
	require.False(t, ab.IsPartOf(a))
	require.True(t, ab.Contains(a))
	require.False(t, a.Contains(ab))
}

func TestKeyNodeCommonPrefixCount(t *testing.T) {
	a := mustKey(t, "a.b.x = 1\n")
	b := mustKey(t, "a.b.y = 1\n")
	require.Equal(t, 2, a.CommonPrefixCount(b))

	c := mustKey(t, "z = 1\n")
	require.Equal(t, 0, a.CommonPrefixCount(c))
}

func TestKeyNodeEqKeys(t *testing.T) {
	a := mustKey(t, "a.b = 1\n").WithIndex(3)
	b := mustKey(t, "a.b = 1\n").WithIndex(7)
	require.True(t, a.EqKeys(b))
	require.NotEqual(t, a.Index(), b.Index())
}

func TestKeyNodeOuterInner(t *testing.T) {
	k := mustKey(t, "a.b.c = 1\n")

	outer2 := k.Outer(2)
	require.Equal(t, []string{"a", "b"}, outer2.KeysStr())

	inner1 := k.Inner(1)
	require.Equal(t, []string{"b", "c"}, inner1.KeysStr())

	// at least one ident always remains, regardless of how large n is
	require.Equal(t, []string{"a"}, k.Outer(0).KeysStr())
	require.Equal(t, []string{"c"}, k.Inner(100).KeysStr())
}

func TestKeyNodePrefixAndLast(t *testing.T) {
	k := mustKey(t, "a.b.c = 1\n")
	require.Equal(t, []string{"a", "b"}, k.Prefix().KeysStr())
	require.Equal(t, []string{"c"}, k.Last().KeysStr())

	single := mustKey(t, "a = 1\n")
	require.Equal(t, []string{"a"}, single.Prefix().KeysStr())
	require.Equal(t, []string{"a"}, single.Last().KeysStr())
}

func TestKeyNodeWithPrefixAndWithoutPrefix(t *testing.T) {
	prefix := mustKey(t, "a.b = 1\n")
	suffix := mustKey(t, "c.d = 1\n").WithIndex(5)

	combined := suffix.WithPrefix(prefix)
	require.Equal(t, []string{"a", "b", "c", "d"}, combined.KeysStr())
	// the index comes from the prefix, not from the suffix's 5
	require.Equal(t, prefix.Index(), combined.Index())

	stripped := combined.WithoutPrefix(prefix)
	require.Equal(t, []string{"c", "d"}, stripped.KeysStr())
}

func TestKeyNodeQuotedIdentUnquoted(t *testing.T) {
	k := mustKey(t, "\"a.b\".c = 1\n")
	require.Equal(t, 2, k.KeyCount())
	require.Equal(t, []string{"a.b", "c"}, k.KeysStr())
}
