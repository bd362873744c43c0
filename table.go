package toml

import "github.com/tamasfe/go-tomldom/internal/syntax"

// Table is a TOML table: the value of a `[header]`, the value of a dotted
// key after normalization, or an inline `{ ... }` table. Grounded on
// taplo's TableNode.
type Table struct {
	syntax *syntax.Element

	// array marks a Table as one item of an array-of-tables; cleared once
	// the merge pass has folded it into an Array.
	array bool

	// pseudo tables are synthesized by the merge/normalize passes and have
	// no originating `[header]` in source.
	pseudo bool

	entries Entries

	nextEntry    uint32
	hasNextEntry bool
}

// Entries returns the table's direct entries.
func (t *Table) Entries() Entries { return t.entries }

// IsPartOfArray reports whether this table still carries the
// array-of-tables membership flag of a `[[x]]` header. The merge pass
// clears it on the tables it folds into an Array, so items of a merged
// array of tables report false.
func (t *Table) IsPartOfArray() bool { return t.array }

// IsInline reports whether the table originated from a `{ ... }` literal.
// Inline tables reject further dotted-key modification during merge.
func (t *Table) IsInline() bool {
	return t.syntax != nil && t.syntax.Kind() == syntax.INLINE_TABLE
}

// IsPseudo reports whether the table was synthesized by merge/normalize
// rather than corresponding to source syntax.
func (t *Table) IsPseudo() bool { return t.pseudo }

// Syntax returns the concrete-syntax element the table was lifted from.
func (t *Table) Syntax() *syntax.Element { return t.syntax }

// TextRange returns the table's effective range: its own syntax, covering
// every entry's range, extended by the span pass's next-entry offset.
func (t *Table) TextRange() (uint32, uint32) {
	start, end := uint32(0), uint32(0)
	if t.syntax != nil {
		start, end = t.syntax.TextRange()
	}
	if r := t.entries.TextRange(); r != nil {
		if r.Start < start || (start == 0 && end == 0) {
			start = r.Start
		}
		if r.End > end {
			end = r.End
		}
	}
	if t.hasNextEntry && t.nextEntry > end {
		end = t.nextEntry
	}
	return start, end
}

func (t *Table) String() string {
	return t.entries.String()
}

// newTableHeader lifts a TABLE_HEADER or TABLE_ARRAY_HEADER element into an
// (empty, entry-less) Table shell; the caller is responsible for extracting
// its Key separately, matching how the lift pass uses both the Table and
// its header Key independently. Grounded on TableNode::cast.
func newTableHeader(el *syntax.Element) (*Table, bool) {
	switch el.Kind() {
	case syntax.TABLE_HEADER, syntax.TABLE_ARRAY_HEADER:
		keyEl := el.FirstChild()
		if keyEl == nil || keyEl.Kind() != syntax.KEY {
			return nil, false
		}
		return &Table{syntax: el, array: el.Kind() == syntax.TABLE_ARRAY_HEADER}, true
	default:
		return nil, false
	}
}

// newInlineTable lifts an INLINE_TABLE element. Every malformed child entry
// is simply dropped, matching Cast's filter_map semantics in the original.
func newInlineTable(el *syntax.Element) *Table {
	t := &Table{syntax: el}
	for _, c := range el.Children() {
		entry, ok := newEntry(c)
		if !ok {
			continue
		}
		t.entries = append(t.entries, entry)
	}
	return t
}
