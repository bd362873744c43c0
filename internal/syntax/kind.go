// Package syntax provides the concrete syntax tree that the DOM lift pass
// consumes. It knows nothing about TOML semantics: dotted keys, arrays of
// tables, and duplicate detection are all the DOM's job. This package only
// tokenizes and shapes source bytes into a tree of Elements. The tree keeps
// the byte range of every element, but it is not lossless: whitespace,
// comments and punctuation tokens (brackets, '=', '.', ',') are not kept as
// elements.
package syntax

import "fmt"

// Kind identifies the syntactic role of an Element.
type Kind int

const (
	// Invalid is the zero value; it never appears in a real tree.
	Invalid Kind = iota

	// ROOT is the root of the tree. Its children are TABLE_HEADER,
	// TABLE_ARRAY_HEADER, and ENTRY nodes, in source order.
	ROOT

	// TABLE_HEADER is a `[a.b.c]` table header.
	TABLE_HEADER
	// TABLE_ARRAY_HEADER is a `[[a.b.c]]` array-of-tables header.
	TABLE_ARRAY_HEADER
	// ENTRY is a `key = value` line, possibly with a dotted key.
	ENTRY
	// KEY wraps one or more IDENT tokens, separated by DOT.
	KEY
	// VALUE wraps exactly one value node (scalar, ARRAY, or INLINE_TABLE).
	VALUE

	// STRING is a basic `"..."` string.
	STRING
	// STRING_LITERAL is a literal `'...'` string.
	STRING_LITERAL
	// MULTI_LINE_STRING is a `"""..."""` string.
	MULTI_LINE_STRING
	// MULTI_LINE_STRING_LITERAL is a `'''...'''` string.
	MULTI_LINE_STRING_LITERAL

	// INTEGER is a decimal integer.
	INTEGER
	// INTEGER_HEX is a `0x`-prefixed integer.
	INTEGER_HEX
	// INTEGER_OCT is a `0o`-prefixed integer.
	INTEGER_OCT
	// INTEGER_BIN is a `0b`-prefixed integer.
	INTEGER_BIN
	// FLOAT is a floating point literal.
	FLOAT
	// BOOL is `true` or `false`.
	BOOL
	// DATE is any of the TOML date/time literal forms.
	DATE

	// ARRAY is a `[ ... ]` value array.
	ARRAY
	// INLINE_TABLE is a `{ ... }` inline table.
	INLINE_TABLE

	// IDENT is one segment of a key (bare or quoted).
	IDENT
	// EQ is the `=` token of an entry.
	EQ
	// DOT is the `.` token separating key segments.
	DOT
	// COMMA is the `,` token separating array/inline-table items.
	COMMA
	// LBRACKET, RBRACKET are `[` and `]`. An array-of-tables header is
	// recognized by the parser from two adjacent LBRACKET tokens, not by the
	// lexer, so that nested array values (`[[1,2],[3]]`) tokenize the same
	// way regardless of position.
	LBRACKET
	RBRACKET
	// LBRACE, RBRACE are `{` and `}`.
	LBRACE
	RBRACE

	// COMMENT is a `# ...` trivia token. The parser skips it, so it never
	// appears in the tree handed to the DOM.
	COMMENT

	// ERROR marks a token or node the parser could not make sense of; the
	// byte range is preserved so a caller can still highlight it.
	ERROR

	// NEWLINE and EOF are lexer-internal line delimiters. The parser
	// consumes them to find entry/header boundaries; they never survive
	// into the tree handed to the DOM.
	NEWLINE
	EOF
)

var kindNames = [...]string{
	Invalid:                   "INVALID",
	ROOT:                      "ROOT",
	TABLE_HEADER:              "TABLE_HEADER",
	TABLE_ARRAY_HEADER:        "TABLE_ARRAY_HEADER",
	ENTRY:                     "ENTRY",
	KEY:                       "KEY",
	VALUE:                     "VALUE",
	STRING:                    "STRING",
	STRING_LITERAL:            "STRING_LITERAL",
	MULTI_LINE_STRING:         "MULTI_LINE_STRING",
	MULTI_LINE_STRING_LITERAL: "MULTI_LINE_STRING_LITERAL",
	INTEGER:                   "INTEGER",
	INTEGER_HEX:               "INTEGER_HEX",
	INTEGER_OCT:               "INTEGER_OCT",
	INTEGER_BIN:               "INTEGER_BIN",
	FLOAT:                     "FLOAT",
	BOOL:                      "BOOL",
	DATE:                      "DATE",
	ARRAY:                     "ARRAY",
	INLINE_TABLE:              "INLINE_TABLE",
	IDENT:                     "IDENT",
	EQ:                        "EQ",
	DOT:                       "DOT",
	COMMA:                     "COMMA",
	LBRACKET:                  "LBRACKET",
	RBRACKET:                  "RBRACKET",
	LBRACE:                    "LBRACE",
	RBRACE:                    "RBRACE",
	COMMENT:                   "COMMENT",
	ERROR:                     "ERROR",
	NEWLINE:                   "NEWLINE",
	EOF:                       "EOF",
}

func (k Kind) String() string {
	if int(k) >= 0 && int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// IsValueKind reports whether k is a scalar, array, or inline-table kind
// that can appear directly under a VALUE node.
func (k Kind) IsValueKind() bool {
	switch k {
	case STRING, STRING_LITERAL, MULTI_LINE_STRING, MULTI_LINE_STRING_LITERAL,
		INTEGER, INTEGER_HEX, INTEGER_OCT, INTEGER_BIN, FLOAT, BOOL, DATE,
		ARRAY, INLINE_TABLE:
		return true
	default:
		return false
	}
}

// IsIntegerKind reports whether k is one of the four integer representations.
func (k Kind) IsIntegerKind() bool {
	switch k {
	case INTEGER, INTEGER_HEX, INTEGER_OCT, INTEGER_BIN:
		return true
	default:
		return false
	}
}

// IsStringKind reports whether k is one of the four string representations.
func (k Kind) IsStringKind() bool {
	switch k {
	case STRING, STRING_LITERAL, MULTI_LINE_STRING, MULTI_LINE_STRING_LITERAL:
		return true
	default:
		return false
	}
}
