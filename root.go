package toml

import "github.com/tamasfe/go-tomldom/internal/syntax"

// Root is the top of the DOM: the result of lifting, merging, normalizing,
// and span-assigning a concrete syntax tree. Grounded on taplo's RootNode;
// constructing it never panics and never fails — if the document is
// malformed, the errors slice is non-empty and the tree is a best-effort
// reconstruction rather than a complete one.
//
// Once built, a Root is immutable: nothing in this package mutates it
// further.
type Root struct {
	syntax  *syntax.Element
	errors  []Error
	entries Entries
}

// Entries returns the root's top-level entries, after merge/normalize (or
// the flat lift-pass result if lift-time errors prevented those passes).
func (r *Root) Entries() Entries { return r.entries }

// Errors returns every semantic error accumulated while lifting.
func (r *Root) Errors() []Error { return r.errors }

// Syntax returns the concrete-syntax ROOT element the DOM was lifted from.
func (r *Root) Syntax() *syntax.Element { return r.syntax }

// TextRange returns the root's range, which is always the whole document.
func (r *Root) TextRange() (uint32, uint32) {
	return r.syntax.TextRange()
}

// Parse tokenizes and parses src, then lifts the result into a DOM. Syntax
// errors from the parser are returned alongside the Root; they are
// independent of (and never duplicated into) Root.Errors(), which only
// ever holds semantic errors, per spec.md §7.
func Parse(src string) (*Root, []syntax.SyntaxError) {
	tree, synErrs := syntax.Parse(src)
	return Lift(tree), synErrs
}

// keyEntry pairs a lift-time key with its entry, used by the small
// insertion-ordered association list the lift pass builds its flat
// key->entry map from. A linear scan is acceptable at TOML scale per
// spec.md §9 ("Ordered map as insertion-ordered dictionary").
type keyEntry struct {
	key   KeyNode
	entry *Entry
}

type entryIndex struct {
	items []keyEntry
}

func keysEqual(a, b KeyNode) bool {
	return a.EqKeys(b) && a.Index() == b.Index()
}

func (ix *entryIndex) get(k KeyNode) (*Entry, bool) {
	for _, it := range ix.items {
		if keysEqual(it.key, k) {
			return it.entry, true
		}
	}
	return nil, false
}

// findReverseEqKeys searches in reverse insertion order for an entry whose
// key matches k under eq_keys (ignoring index), mirroring the lift pass's
// "we don't know the last index" header-collision search.
func (ix *entryIndex) findReverseEqKeys(k KeyNode) (KeyNode, *Entry, bool) {
	for i := len(ix.items) - 1; i >= 0; i-- {
		if ix.items[i].key.EqKeys(k) {
			return ix.items[i].key, ix.items[i].entry, true
		}
	}
	return KeyNode{}, nil, false
}

func (ix *entryIndex) insert(k KeyNode, e *Entry) {
	ix.items = append(ix.items, keyEntry{key: k, entry: e})
}

// Lift walks the top-level children of a ROOT syntax element and builds a
// semantically validated Root, running the lift, merge, normalize, and
// span passes described in spec.md §4. rootEl need not literally be a
// ROOT-kind element, but callers should only pass what syntax.Parse
// returns.
func Lift(rootEl *syntax.Element) *Root {
	var entries entryIndex
	var prefixes []*KeyNode // parallel to entries.items; prefix in effect when each entry was inserted
	var prefix *KeyNode
	var tables [][]KeyNode // per-index registry of header keys seen so far
	var errs []Error

outer:
	for _, child := range rootEl.Children() {
		switch child.Kind() {
		case syntax.TABLE_HEADER, syntax.TABLE_ARRAY_HEADER:
			tbl, ok := newTableHeader(child)
			if !ok {
				start, end := child.TextRange()
				errs = append(errs, newSpannedError(Range{Start: start, End: end}, "table has no key"))
				continue
			}
			keyEl := child.FirstChild()
			key, ok := newKeyNode(keyEl)
			if !ok {
				start, end := child.TextRange()
				errs = append(errs, newSpannedError(Range{Start: start, End: end}, "table has no key"))
				// Ambiguous source behavior (spec §9 open question #1): we
				// continue with the previous prefix rather than resetting
				// it, matching the reference implementation.
				continue
			}

			existingKey, existingEntry, found := entries.findReverseEqKeys(key)
			inserted := false
			if found {
				existingIsTableArray := existingEntry.value.kind == ValueTableKind && existingEntry.value.table.array
				newIsTableArray := tbl.array

				switch {
				case existingIsTableArray && !newIsTableArray:
					errs = append(errs, newExpectedTableArrayError(existingEntry.key, key))
				case !existingIsTableArray && newIsTableArray:
					errs = append(errs, newExpectedTableArrayError(key, existingEntry.key))
				case !existingIsTableArray && !newIsTableArray:
					errs = append(errs, newDuplicateKeyError(existingEntry.key, key))
				default:
					key = key.WithIndex(existingKey.Index() + 1)
					e := &Entry{syntax: tbl.syntax, key: key, value: Value{kind: ValueTableKind, syntax: tbl.syntax, table: tbl}}
					entries.insert(key, e)
					inserted = true
				}
			} else {
				e := &Entry{syntax: tbl.syntax, key: key, value: Value{kind: ValueTableKind, syntax: tbl.syntax, table: tbl}}
				entries.insert(key, e)
				inserted = true
			}

			// TopLevelTableDefined: an earlier dotted entry whose key
			// contains this header's key but whose recorded prefix has
			// fewer segments than the header's key count.
			for i := len(entries.items) - 2; i >= 0; i-- {
				k2 := entries.items[i].key
				e2 := entries.items[i].entry
				if i >= len(prefixes) || e2.syntax.Kind() != syntax.ENTRY {
					continue
				}
				common := 0
				if p2 := prefixes[i]; p2 != nil {
					common = p2.CommonPrefixCount(key)
				}
				if k2.KeyCount() > key.KeyCount() && k2.Contains(key) && common < key.KeyCount() {
					errs = append(errs, newTopLevelTableDefinedError(key, e2.key))
				}
			}

			if inserted {
				prefixes = append(prefixes, nil)
			}

			idx := key.Index()
			for len(tables) <= idx {
				tables = append(tables, nil)
			}
			tables[idx] = append(tables[idx], key)

			pcopy := key
			prefix = &pcopy

		case syntax.ENTRY:
			entry, ok := newEntry(child)
			if !ok {
				continue
			}

			insertKey := entry.key
			if prefix != nil {
				insertKey = entry.key.WithPrefix(*prefix)
			}

			if prefix != nil && insertKey.Index() < len(tables) {
				sameIndexTables := tables[insertKey.Index()]
				strippedInsert := insertKey.WithoutPrefix(*prefix)
				for i, t := range sameIndexTables {
					if strippedInsert.Contains(t.WithoutPrefix(*prefix)) {
						if i != len(sameIndexTables)-1 {
							errs = append(errs, newTopLevelTableDefinedError(t, entry.key))
							continue outer
						}
						break
					}
				}
			}

			if existing, found := entries.get(insertKey); found {
				errs = append(errs, newDuplicateKeyError(existing.key, entry.key))
				continue
			}

			entry.key = insertKey
			entries.insert(insertKey, entry)
			prefixes = append(prefixes, prefix)
		}
	}

	checkArrayOfTablesOrdering(entries, &errs)

	finalEntries := make(Entries, 0, len(entries.items))
	for _, it := range entries.items {
		finalEntries = append(finalEntries, it.entry)
	}

	if len(errs) == 0 {
		finalEntries.merge(&errs)
		finalEntries.normalize()
	}

	_, rootEnd := rootEl.TextRange()
	finalEntries.setTableSpans(rootEl, rootEnd+1, true)

	return &Root{syntax: rootEl, errors: errs, entries: finalEntries}
}

// checkArrayOfTablesOrdering reproduces a narrow, intentionally-preserved
// quirk of the reference lift pass: entries are grouped by their lift-time
// Key.Index(), and only the very first entry of the first non-empty group
// is ever checked for "a plain sub-table defined before its array-of-tables
// sibling". Every other group, and every other entry within the checked
// group, is left unexamined — the original's loop body unconditionally
// breaks out after one iteration regardless of what it found. Spec.md's
// Open Question #2 calls out that implementers must preserve lift-pass
// ordering assumptions rather than "fix" them.
func checkArrayOfTablesOrdering(entries entryIndex, errs *[]Error) {
	maxIndex := -1
	for _, it := range entries.items {
		if it.key.Index() > maxIndex {
			maxIndex = it.key.Index()
		}
	}
	if maxIndex < 0 {
		return
	}

	groups := make([][]keyEntry, maxIndex+1)
	for _, it := range entries.items {
		groups[it.key.Index()] = append(groups[it.key.Index()], it)
	}

	for groupIdx, group := range groups {
		if len(group) == 0 {
			continue
		}
		if groupIdx == 0 {
			first := group[0]
			isTableArray := first.entry.value.kind == ValueTableKind && first.entry.value.table.array
			if !isTableArray {
				for _, other := range group {
					if other.entry.value.kind == ValueTableKind &&
						other.key.IsPartOf(first.key) && other.entry.value.table.array {
						*errs = append(*errs, newExpectedTableArrayError(other.key, first.key))
						break
					}
				}
			}
		}
		break
	}
}
