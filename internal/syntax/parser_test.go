package syntax

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseSimpleEntry(t *testing.T) {
	root, errs := Parse("a = 1\n")
	require.Empty(t, errs)
	require.Equal(t, ROOT, root.Kind())
	require.Len(t, root.Children(), 1)

	entry := root.FirstChild()
	require.Equal(t, ENTRY, entry.Kind())

	key := entry.FirstChild()
	require.Equal(t, KEY, key.Kind())
	require.Len(t, key.Children(), 1)
	require.Equal(t, "a", key.FirstChild().Text())

	value := entry.NthChild(1)
	require.Equal(t, VALUE, value.Kind())
	require.Equal(t, INTEGER, value.FirstChild().Kind())
	require.Equal(t, "1", value.FirstChild().Text())
}

func TestParseDottedKey(t *testing.T) {
	root, errs := Parse("a.b.c = 1\n")
	require.Empty(t, errs)

	key := root.FirstChild().FirstChild()
	require.Equal(t, KEY, key.Kind())
	require.Len(t, key.Children(), 3)
	require.Equal(t, "a", key.NthChild(0).Text())
	require.Equal(t, "b", key.NthChild(1).Text())
	require.Equal(t, "c", key.NthChild(2).Text())
}

func TestParseTableHeader(t *testing.T) {
	root, errs := Parse("[a.b]\nx = 1\n")
	require.Empty(t, errs)
	require.Len(t, root.Children(), 2)

	header := root.NthChild(0)
	require.Equal(t, TABLE_HEADER, header.Kind())
	require.Equal(t, "[a.b]", header.Text())
}

func TestParseArrayTableHeader(t *testing.T) {
	root, errs := Parse("[[x]]\nn=1\n[[x]]\nn=2\n")
	require.Empty(t, errs)
	require.Len(t, root.Children(), 4)
	require.Equal(t, TABLE_ARRAY_HEADER, root.NthChild(0).Kind())
	require.Equal(t, TABLE_ARRAY_HEADER, root.NthChild(2).Kind())
}

func TestParseInlineTableAndArray(t *testing.T) {
	root, errs := Parse(`a = { x = 1, y = [1, 2, 3] }` + "\n")
	require.Empty(t, errs)

	entry := root.FirstChild()
	value := entry.NthChild(1).FirstChild()
	require.Equal(t, INLINE_TABLE, value.Kind())
	require.Len(t, value.Children(), 2)

	yEntry := value.NthChild(1)
	yValue := yEntry.NthChild(1).FirstChild()
	require.Equal(t, ARRAY, yValue.Kind())
	require.Len(t, yValue.Children(), 3)
}

func TestParseStrings(t *testing.T) {
	root, errs := Parse("a = \"hi\"\nb = 'lit'\nc = \"\"\"multi\nline\"\"\"\n")
	require.Empty(t, errs)
	require.Len(t, root.Children(), 3)

	require.Equal(t, STRING, root.NthChild(0).NthChild(1).FirstChild().Kind())
	require.Equal(t, STRING_LITERAL, root.NthChild(1).NthChild(1).FirstChild().Kind())
	require.Equal(t, MULTI_LINE_STRING, root.NthChild(2).NthChild(1).FirstChild().Kind())
}

func TestParseIntegerReprs(t *testing.T) {
	root, _ := Parse("a = 0xFF\nb = 0o17\nc = 0b101\nd = 42\n")
	kinds := []Kind{INTEGER_HEX, INTEGER_OCT, INTEGER_BIN, INTEGER}
	for i, k := range kinds {
		require.Equal(t, k, root.NthChild(i).NthChild(1).FirstChild().Kind())
	}
}

func TestParseMalformedLineRecovers(t *testing.T) {
	root, errs := Parse("a = \nb = 2\n")
	require.NotEmpty(t, errs)
	require.Len(t, root.Children(), 2)
	require.Equal(t, ENTRY, root.NthChild(1).Kind())
	require.Equal(t, "b", root.NthChild(1).FirstChild().FirstChild().Text())
}
