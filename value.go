package toml

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/tamasfe/go-tomldom/internal/syntax"
)

// IntegerRepr identifies the textual base an integer literal was written in.
// The DOM never decodes the numeric value itself (decoding belongs to a
// consumer, not the semantic layer) but keeps the repr because formatting
// and hover tooling need to round-trip it.
type IntegerRepr int

const (
	IntegerDec IntegerRepr = iota
	IntegerBin
	IntegerOct
	IntegerHex
)

func (r IntegerRepr) String() string {
	switch r {
	case IntegerBin:
		return "bin"
	case IntegerOct:
		return "oct"
	case IntegerHex:
		return "hex"
	default:
		return "dec"
	}
}

// StringKind identifies which of TOML's four string forms produced a
// StringValue.
type StringKind int

const (
	StringBasic StringKind = iota
	StringMultiLine
	StringLiteral
	StringMultiLineLiteral
)

func (k StringKind) String() string {
	switch k {
	case StringMultiLine:
		return "multi-line"
	case StringLiteral:
		return "literal"
	case StringMultiLineLiteral:
		return "multi-line literal"
	default:
		return "basic"
	}
}

// ValueKind discriminates the Value union.
type ValueKind int

const (
	ValueInvalid ValueKind = iota
	ValueEmpty
	ValueBool
	ValueStringKind
	ValueInteger
	ValueFloat
	ValueDate
	ValueArrayKind
	ValueTableKind
)

// Value is a tagged union over TOML's scalar and compound value forms,
// grounded on taplo's ValueNode enum. Exactly one of the typed accessors is
// meaningful for a given Kind(); calling the wrong one returns that field's
// zero value (nil for Array and Table).
type Value struct {
	kind ValueKind

	syntax *syntax.Element

	boolVal bool

	stringKind    StringKind
	stringContent string

	integerRepr IntegerRepr
	integerText string

	floatText string
	dateText  string

	array *Array
	table *Table
}

// Kind reports which variant this Value holds.
func (v Value) Kind() ValueKind { return v.kind }

// IsValid reports whether the value lifted successfully; Invalid and Empty
// both report false, matching taplo's ValueNode::is_valid.
func (v Value) IsValid() bool {
	return v.kind != ValueInvalid && v.kind != ValueEmpty
}

// Syntax returns the concrete-syntax element the value was lifted from, or
// nil for ValueEmpty.
func (v Value) Syntax() *syntax.Element { return v.syntax }

// TextRange returns the value's byte range. For Table and Array values this
// delegates to their own TextRange, which accounts for the span pass's
// next-entry/next-header extension; other kinds report their bare syntax
// range.
func (v Value) TextRange() (uint32, uint32) {
	switch v.kind {
	case ValueTableKind:
		return v.table.TextRange()
	case ValueArrayKind:
		return v.array.TextRange()
	}
	if v.syntax == nil {
		return 0, 0
	}
	return v.syntax.TextRange()
}

// Bool returns the boolean payload. Only valid when Kind() == ValueBool.
func (v Value) Bool() bool { return v.boolVal }

// IntegerRepr returns the literal base. Only valid when Kind() == ValueInteger.
func (v Value) IntegerRepr() IntegerRepr { return v.integerRepr }

// IntegerText returns the raw (still-prefixed, underscore-containing) integer
// literal text. Only valid when Kind() == ValueInteger.
func (v Value) IntegerText() string { return v.integerText }

// FloatText returns the raw float literal text. Only valid when
// Kind() == ValueFloat.
func (v Value) FloatText() string { return v.floatText }

// DateText returns the raw date/time literal text. Only valid when
// Kind() == ValueDate.
func (v Value) DateText() string { return v.dateText }

// StringKind returns which of the four string forms produced the value.
// Only valid when Kind() == ValueStringKind.
func (v Value) StringKind() StringKind { return v.stringKind }

// StringContent returns the unescaped, unquoted string content. Only valid
// when Kind() == ValueStringKind.
func (v Value) StringContent() string { return v.stringContent }

// Array returns the array payload. Only valid when Kind() == ValueArrayKind.
func (v Value) Array() *Array { return v.array }

// Table returns the table payload (header, inline, or pseudo). Only valid when
// Kind() == ValueTableKind.
func (v Value) Table() *Table { return v.table }

// String renders the value as plain text: strings as their unescaped
// content without quotes, numbers, booleans and dates as their literal
// text, arrays as "[a, b]" and tables as "{k = v, ...}".
func (v Value) String() string {
	switch v.kind {
	case ValueBool:
		return strconv.FormatBool(v.boolVal)
	case ValueStringKind:
		return v.stringContent
	case ValueInteger:
		return v.integerText
	case ValueFloat:
		return v.floatText
	case ValueDate:
		return v.dateText
	case ValueArrayKind:
		return v.array.String()
	case ValueTableKind:
		return v.table.String()
	default:
		return ""
	}
}

// newValue lifts a bare value element (scalar, ARRAY, or INLINE_TABLE;
// never a VALUE wrapper, which callers unwrap first) into a Value. Unlike
// taplo's ValueNode::cast this never returns "no match": unrecognized or
// unescapable syntax becomes ValueInvalid, keeping lift total.
func newValue(el *syntax.Element) Value {
	if el == nil {
		return Value{kind: ValueEmpty}
	}

	switch el.Kind() {
	case syntax.BOOL:
		return Value{kind: ValueBool, syntax: el, boolVal: el.Text() == "true"}
	case syntax.STRING, syntax.STRING_LITERAL, syntax.MULTI_LINE_STRING, syntax.MULTI_LINE_STRING_LITERAL:
		kind, content, ok := unquoteString(el.Kind(), el.Text())
		if !ok {
			return Value{kind: ValueInvalid, syntax: el}
		}
		return Value{kind: ValueStringKind, syntax: el, stringKind: kind, stringContent: content}
	case syntax.INTEGER, syntax.INTEGER_BIN, syntax.INTEGER_HEX, syntax.INTEGER_OCT:
		return Value{kind: ValueInteger, syntax: el, integerRepr: integerReprOf(el.Kind()), integerText: el.Text()}
	case syntax.FLOAT:
		return Value{kind: ValueFloat, syntax: el, floatText: el.Text()}
	case syntax.DATE:
		return Value{kind: ValueDate, syntax: el, dateText: el.Text()}
	case syntax.ARRAY:
		return Value{kind: ValueArrayKind, syntax: el, array: newArray(el)}
	case syntax.INLINE_TABLE:
		return Value{kind: ValueTableKind, syntax: el, table: newInlineTable(el)}
	case syntax.ERROR:
		return Value{kind: ValueInvalid, syntax: el}
	default:
		return Value{kind: ValueInvalid, syntax: el}
	}
}

func integerReprOf(k syntax.Kind) IntegerRepr {
	switch k {
	case syntax.INTEGER_BIN:
		return IntegerBin
	case syntax.INTEGER_HEX:
		return IntegerHex
	case syntax.INTEGER_OCT:
		return IntegerOct
	default:
		return IntegerDec
	}
}

// unquoteString strips delimiters and resolves basic-string escapes,
// mirroring StringNode::cast. A malformed escape makes the whole string
// unusable and is reported via ok=false, matching spec.md §4.5's "malformed
// escapes yield no node" (the caller falls back to ValueInvalid).
func unquoteString(k syntax.Kind, text string) (StringKind, string, bool) {
	switch k {
	case syntax.STRING:
		inner := strings.TrimPrefix(strings.TrimSuffix(text, `"`), `"`)
		content, ok := unescapeBasic(inner)
		return StringBasic, content, ok
	case syntax.MULTI_LINE_STRING:
		inner := strings.TrimSuffix(strings.TrimPrefix(text, `"""`), `"""`)
		inner = strings.TrimPrefix(inner, "\n")
		content, ok := unescapeBasic(inner)
		return StringMultiLine, content, ok
	case syntax.STRING_LITERAL:
		inner := strings.TrimPrefix(strings.TrimSuffix(text, `'`), `'`)
		return StringLiteral, inner, true
	case syntax.MULTI_LINE_STRING_LITERAL:
		inner := strings.TrimSuffix(strings.TrimPrefix(text, `'''`), `'''`)
		inner = strings.TrimPrefix(inner, "\n")
		return StringMultiLineLiteral, inner, true
	default:
		return 0, "", false
	}
}

var basicEscapes = map[byte]byte{
	'n': '\n', 't': '\t', 'r': '\r', '"': '"', '\\': '\\', 'b': '\b', 'f': '\f',
}

// unescapeBasic resolves basic-string escape sequences: the single-character
// escapes, \uXXXX/\UXXXXXXXX unicode escapes, and a line-ending backslash
// (backslash followed by only whitespace up to and including a newline,
// which TOML trims entirely). Anything else after a backslash, including a
// trailing backslash with nothing following it, is malformed and reported
// via ok=false.
func unescapeBasic(s string) (string, bool) {
	if !strings.ContainsRune(s, '\\') {
		return s, true
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		if i+1 >= len(s) {
			return "", false
		}
		next := s[i+1]
		if repl, ok := basicEscapes[next]; ok {
			b.WriteByte(repl)
			i++
			continue
		}
		if next == 'u' || next == 'U' {
			width := 4
			if next == 'U' {
				width = 8
			}
			if i+2+width > len(s) {
				return "", false
			}
			hex := s[i+2 : i+2+width]
			cp, err := strconv.ParseUint(hex, 16, 32)
			if err != nil || !utf8.ValidRune(rune(cp)) {
				return "", false
			}
			b.WriteRune(rune(cp))
			i += 1 + width
			continue
		}
		if j, ok := skipLineEndingBackslash(s, i+1); ok {
			i = j - 1
			continue
		}
		return "", false
	}
	return b.String(), true
}

// skipLineEndingBackslash checks whether s[from:] is all whitespace up to
// and including a newline, as required for a TOML line-ending backslash to
// apply. It returns the index just past the trimmed whitespace and true if
// so, or (from, false) otherwise.
func skipLineEndingBackslash(s string, from int) (int, bool) {
	i := from
	sawNewline := false
	for i < len(s) {
		switch s[i] {
		case ' ', '\t':
			i++
		case '\n':
			i++
			sawNewline = true
		case '\r':
			i++
		default:
			if sawNewline {
				return i, true
			}
			return from, false
		}
	}
	return i, sawNewline
}
