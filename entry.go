package toml

import "github.com/tamasfe/go-tomldom/internal/syntax"

// Entry is a single `key = value` binding, grounded on taplo's EntryNode.
// Before the normalize pass its Key may have more than one segment (a
// dotted key); after normalize every Entry's Key has exactly one segment
// and any extra segments have become nested pseudo-Tables.
type Entry struct {
	syntax *syntax.Element
	key    KeyNode
	value  Value

	// nextEntry is the span-pass extension offset: table/array-of-tables
	// headers report an effective range that reaches past their own
	// syntax, up to the start of the next unrelated header.
	nextEntry    uint32
	hasNextEntry bool
}

// Key returns the entry's key.
func (e *Entry) Key() KeyNode { return e.key }

// Value returns the entry's value.
func (e *Entry) Value() Value { return e.value }

// Syntax returns the concrete-syntax element the entry was lifted from.
func (e *Entry) Syntax() *syntax.Element { return e.syntax }

// TextRange returns the entry's effective range, extended by the span
// pass if the entry is a table or array-of-tables header.
func (e *Entry) TextRange() (uint32, uint32) {
	start, end := e.syntax.TextRange()
	if e.hasNextEntry && e.nextEntry > end {
		end = e.nextEntry
	}
	return start, end
}

// newEntry lifts an ENTRY syntax element. It reports ok=false only when the
// element carries no usable key, mirroring EntryNode::cast; a missing or
// malformed value still yields an Entry whose Value is ValueInvalid rather
// than failing the whole entry, since the syntax layer already flagged it.
func newEntry(el *syntax.Element) (*Entry, bool) {
	if el.Kind() != syntax.ENTRY {
		return nil, false
	}
	keyEl := el.FirstChild()
	if keyEl == nil || keyEl.Kind() != syntax.KEY {
		return nil, false
	}
	key, ok := newKeyNode(keyEl)
	if !ok {
		return nil, false
	}

	var val Value
	if valEl := el.NthChild(1); valEl != nil && valEl.Kind() == syntax.VALUE {
		val = newValue(valEl.FirstChild())
	} else {
		val = Value{kind: ValueInvalid}
	}

	return &Entry{syntax: el, key: key, value: val}, true
}

// normalize turns a dotted-key entry into nested single-segment pseudo-
// tables, e.g. `a.b.c = 1` becomes entry "a" -> Table{entry "b" -> Table{
// entry "c" -> 1}}. Grounded on EntryNode::normalize.
func (e *Entry) normalize() {
	for e.key.KeyCount() > 1 {
		outer := e.key.Prefix()
		inner := e.key.Last()

		isArrayTable := e.value.kind == ValueTableKind && e.value.table.array

		innerEntry := &Entry{
			syntax: e.syntax,
			key:    inner,
			value:  e.value,
		}

		e.value = Value{
			kind:   ValueTableKind,
			syntax: inner.Syntax(),
			table: &Table{
				syntax:  inner.Syntax(),
				array:   isArrayTable,
				pseudo:  true,
				entries: Entries{innerEntry},
			},
		}
		e.key = outer
	}
}
