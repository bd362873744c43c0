package toml

import (
	"strings"

	"github.com/tamasfe/go-tomldom/internal/syntax"
)

// Entries is an ordered list of Entry, used by both Root and Table.
// Grounded on taplo's Entries newtype over Vec<EntryNode>.
type Entries []*Entry

// Range is a half-open [Start, End) byte range.
type Range struct {
	Start uint32
	End   uint32
}

// TextRange returns the range covering every entry's key-through-value
// span, or nil if there are no entries.
func (es Entries) TextRange() *Range {
	var r *Range
	for _, e := range es {
		_, vEnd := e.value.TextRange()
		kStart, _ := e.key.TextRange()
		if r == nil {
			r = &Range{Start: kStart, End: vEnd}
			continue
		}
		if vEnd > r.End {
			r.End = vEnd
		}
	}
	return r
}

func (es Entries) String() string {
	var b strings.Builder
	b.WriteByte('{')
	for i, e := range es {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(e.key.FullKeyString())
		b.WriteString(" = ")
		b.WriteString(e.value.String())
	}
	b.WriteByte('}')
	return b.String()
}

func stripBrackets(s string) string {
	s = strings.TrimLeft(s, "[")
	s = strings.TrimRight(s, "]")
	return s
}

// hasPrefixSegments reports whether candidate starts with prefix (plain
// string-prefix comparison of bracket-stripped header text). This mirrors
// a known fragility in the reference implementation: it compares raw text
// rather than parsed Key segments, so a header like `[ab]` would
// (incorrectly) be treated as a sub-header of `[a]`. Documented in
// DESIGN.md rather than silently "fixed", since span-pass behavior is
// explicitly called out as an open question to preserve as-is.
func hasPrefixSegments(candidate, prefix string) bool {
	return strings.HasPrefix(candidate, prefix)
}

// setTableSpans assigns next_entry offsets to every TABLE_HEADER entry
// (extending its range up to, but not including, the next header that is
// not textually prefixed by it) and next_header_start offsets to every
// TABLE_ARRAY_HEADER entry's array the same way, then recurses into the
// resulting Table/Array values. Grounded on Entries::set_table_spans.
func (es Entries) setTableSpans(root *syntax.Element, end uint32, hasEnd bool) {
	for _, entry := range es {
		kind := entry.syntax.Kind()

		if kind == syntax.TABLE_HEADER || kind == syntax.TABLE_ARRAY_HEADER {
			headerText := stripBrackets(entry.syntax.Text())
			_, headerEnd := entry.syntax.TextRange()

			found := false
			for _, n := range root.Children() {
				nStart, _ := n.TextRange()
				if nStart < headerEnd {
					continue
				}
				if kind == syntax.TABLE_HEADER {
					if n.Kind() != syntax.TABLE_HEADER && n.Kind() != syntax.TABLE_ARRAY_HEADER {
						continue
					}
				} else if n.Kind() != syntax.TABLE_ARRAY_HEADER {
					continue
				}

				otherText := stripBrackets(n.Text())
				if kind == syntax.TABLE_HEADER {
					if !hasPrefixSegments(otherText, headerText) {
						entry.nextEntry, entry.hasNextEntry = nStart, true
						found = true
						break
					}
				} else {
					if !hasPrefixSegments(otherText, headerText) || otherText == headerText {
						entry.nextEntry, entry.hasNextEntry = nStart, true
						found = true
						break
					}
				}
			}
			if !found {
				entry.nextEntry, entry.hasNextEntry = end, hasEnd
			}
		}

		switch entry.value.kind {
		case ValueTableKind:
			entry.value.table.nextEntry, entry.value.table.hasNextEntry = entry.nextEntry, entry.hasNextEntry
			entry.value.table.entries.setTableSpans(root, end, hasEnd)
		case ValueArrayKind:
			if entry.value.array.tables {
				entry.value.array.nextHeaderStart, entry.value.array.hasNextHeaderStart = entry.nextEntry, entry.hasNextEntry
				entry.value.array.setTableSpans(root, end, hasEnd)
			}
		}
	}
}

// merge rewrites flat, possibly dotted entries into nested tables and
// arrays-of-tables, attempting a pairwise merge of each entry against
// every entry already placed. Grounded on Entries::merge; the pairwise
// scan is intentionally O(n^2) per level (see spec Open Question #2) —
// correctness depends on encountering candidate "old" entries in
// insertion order, which a plain slice scan preserves.
func (es *Entries) merge(errs *[]Error) {
	old := *es
	newEntries := make(Entries, 0, len(old))

	for _, entry := range old {
		entry.key = entry.key.WithIndex(0)

		inserted := false
		skip := false
		for _, existing := range newEntries {
			merged, err := mergeEntry(existing, entry, errs)
			if err != nil {
				*errs = append(*errs, *err)
				skip = true
				break
			}
			if merged {
				skip = true
				inserted = true
				break
			}
		}
		if skip {
			continue
		}

		if entry.value.kind == ValueTableKind && entry.value.table.array {
			t := entry.value.table
			t.array = false
			entry.value = Value{
				kind:   ValueArrayKind,
				syntax: t.syntax,
				array:  &Array{syntax: t.syntax, tables: true, items: []Value{entry.value}},
			}
		}
		newEntries = append(newEntries, entry)
		_ = inserted
	}

	*es = newEntries
}

// normalize expands every entry's dotted key into nested pseudo-tables,
// using an explicit worklist instead of recursion so deeply nested inline
// tables and arrays don't blow the stack (spec §9 "Recursion").
func (es *Entries) normalize() {
	worklist := []*Entries{es}

	for len(worklist) > 0 {
		cur := worklist[len(worklist)-1]
		worklist = worklist[:len(worklist)-1]

		for _, entry := range *cur {
			entry.normalize()

			switch entry.value.kind {
			case ValueArrayKind:
				arrStack := []*Array{entry.value.array}
				for len(arrStack) > 0 {
					arr := arrStack[len(arrStack)-1]
					arrStack = arrStack[:len(arrStack)-1]
					for i := range arr.items {
						item := &arr.items[i]
						switch item.kind {
						case ValueArrayKind:
							arrStack = append(arrStack, item.array)
						case ValueTableKind:
							worklist = append(worklist, &item.table.entries)
						}
					}
				}
			case ValueTableKind:
				worklist = append(worklist, &entry.value.table.entries)
			}
		}
	}
}

// mergeEntry tries to fold newEntry into oldEntry in place. It returns
// (true, nil) on a successful merge, (false, nil) if the two entries are
// unrelated (caller should try the next candidate or insert newEntry
// as-is), or (false, err) if they are related but structurally
// incompatible. Grounded on Entries::merge_entry.
func mergeEntry(oldEntry, newEntry *Entry, errs *[]Error) (bool, *Error) {
	oldKey, newKey := oldEntry.key, newEntry.key

	if oldKey.IsPartOf(newKey) {
		switch oldEntry.value.kind {
		case ValueTableKind:
			t := oldEntry.value.table
			if t.IsInline() {
				e := newInlineTableError(oldEntry.key, newEntry.key)
				return false, &e
			}
			toInsert := &Entry{syntax: newEntry.syntax, key: newKey.WithoutPrefix(oldKey), value: newEntry.value}
			t.entries = append(t.entries, toInsert)
			t.entries.merge(errs)
			return true, nil

		case ValueArrayKind:
			oldArr := oldEntry.value.array
			if !oldArr.tables {
				e := newExpectedTableArrayError(oldEntry.key, newEntry.key)
				return false, &e
			}

			if oldKey.EqKeys(newKey) && newEntry.value.kind == ValueTableKind && newEntry.value.table.array {
				newEntry.value.table.array = false
				oldArr.items = append(oldArr.items, newEntry.value)
				return true, nil
			}

			last := &oldArr.items[len(oldArr.items)-1]
			arrT := last.table
			toInsert := &Entry{syntax: newEntry.syntax, key: newKey.WithoutPrefix(oldKey), value: newEntry.value}
			arrT.entries = append(arrT.entries, toInsert)
			arrT.entries.merge(errs)
			return true, nil

		default:
			e := newExpectedTableError(oldEntry.key, newEntry.key)
			return false, &e
		}
	}

	if newKey.IsPartOf(oldKey) {
		newOld := &Entry{syntax: newEntry.syntax, key: newEntry.key, value: newEntry.value}
		merged, err := mergeEntry(newOld, oldEntry, errs)
		if err != nil {
			return false, err
		}
		if merged {
			*oldEntry = *newOld
			return true, nil
		}
		return false, nil
	}

	if common := oldKey.CommonPrefixCount(newKey); common > 0 {
		commonPrefix := oldKey.Outer(common)

		a := &Entry{syntax: oldEntry.syntax, key: oldKey.WithoutPrefix(commonPrefix), value: oldEntry.value}
		b := &Entry{syntax: newEntry.syntax, key: newKey.WithoutPrefix(commonPrefix), value: newEntry.value}

		oldEntry.key = commonPrefix
		oldEntry.value = Value{
			kind:   ValueTableKind,
			syntax: oldEntry.syntax,
			table:  &Table{syntax: oldEntry.syntax, pseudo: true, entries: Entries{a, b}},
		}
		return true, nil
	}

	return false, nil
}
