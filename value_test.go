package toml

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueScalarKinds(t *testing.T) {
	root, errs := Parse("b = true\ni = 42\nh = 0xFF\no = 0o17\nbin = 0b101\nf = 3.14\ns = \"hi\\tthere\"\nl = 'raw\\n'\nd = 1979-05-27T07:32:00Z\n")
	require.Empty(t, errs)
	require.Empty(t, root.Errors())

	b := findEntry(t, root.Entries(), "b")
	require.Equal(t, ValueBool, b.Value().Kind())
	require.True(t, b.Value().Bool())

	i := findEntry(t, root.Entries(), "i")
	require.Equal(t, ValueInteger, i.Value().Kind())
	require.Equal(t, IntegerDec, i.Value().IntegerRepr())
	require.Equal(t, "42", i.Value().IntegerText())

	h := findEntry(t, root.Entries(), "h")
	require.Equal(t, IntegerHex, h.Value().IntegerRepr())

	o := findEntry(t, root.Entries(), "o")
	require.Equal(t, IntegerOct, o.Value().IntegerRepr())

	bin := findEntry(t, root.Entries(), "bin")
	require.Equal(t, IntegerBin, bin.Value().IntegerRepr())

	f := findEntry(t, root.Entries(), "f")
	require.Equal(t, ValueFloat, f.Value().Kind())
	require.Equal(t, "3.14", f.Value().FloatText())

	s := findEntry(t, root.Entries(), "s")
	require.Equal(t, ValueStringKind, s.Value().Kind())
	require.Equal(t, StringBasic, s.Value().StringKind())
	require.Equal(t, "hi\tthere", s.Value().StringContent())

	l := findEntry(t, root.Entries(), "l")
	require.Equal(t, StringLiteral, l.Value().StringKind())
	require.Equal(t, `raw\n`, l.Value().StringContent())

	d := findEntry(t, root.Entries(), "d")
	require.Equal(t, ValueDate, d.Value().Kind())
	require.Equal(t, "1979-05-27T07:32:00Z", d.Value().DateText())
}

func TestValueMultiLineStringTrimsLeadingNewline(t *testing.T) {
	root, errs := Parse("s = \"\"\"\nfirst line\"\"\"\n")
	require.Empty(t, errs)
	s := findEntry(t, root.Entries(), "s")
	require.Equal(t, StringMultiLine, s.Value().StringKind())
	require.Equal(t, "first line", s.Value().StringContent())
}

func TestValueInvalidOnMissingValue(t *testing.T) {
	root, _ := Parse("a =\n")
	a := findEntry(t, root.Entries(), "a")
	require.False(t, a.Value().IsValid())
}

func TestValueUnicodeEscapes(t *testing.T) {
	root, errs := Parse("a = \"\\u0041\"\nb = \"\\U0001F600\"\n")
	require.Empty(t, errs)
	require.Empty(t, root.Errors())

	a := findEntry(t, root.Entries(), "a")
	require.True(t, a.Value().IsValid())
	require.Equal(t, "A", a.Value().StringContent())

	b := findEntry(t, root.Entries(), "b")
	require.True(t, b.Value().IsValid())
	require.Equal(t, "\U0001F600", b.Value().StringContent())
}

func TestValueMalformedEscapeIsInvalid(t *testing.T) {
	root, errs := Parse("a = \"bad\\qescape\"\n")
	require.Empty(t, errs)
	a := findEntry(t, root.Entries(), "a")
	require.False(t, a.Value().IsValid())
	require.Equal(t, ValueInvalid, a.Value().Kind())
}

func TestValueUnterminatedStringIsInvalid(t *testing.T) {
	root, _ := Parse("a = \"bad\\\"\n")
	a := findEntry(t, root.Entries(), "a")
	require.False(t, a.Value().IsValid())
}
