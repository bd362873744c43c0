package toml

import "github.com/tamasfe/go-tomldom/internal/syntax"

// Array is an ordered list of Values: either a plain `[ ... ]` value array,
// or — once the merge pass has folded repeated `[[x]]` headers together —
// an array of tables. Grounded on taplo's ArrayNode.
type Array struct {
	syntax *syntax.Element

	// tables marks this as an array-of-tables: every item is a Table with
	// array=false (its own array-membership flag was cleared on merge).
	tables bool

	items []Value

	nextHeaderStart    uint32
	hasNextHeaderStart bool
}

// Items returns the array's values in source order.
func (a *Array) Items() []Value { return a.items }

// IsArrayOfTables reports whether every item is a Table produced by
// merging repeated `[[x]]` headers.
func (a *Array) IsArrayOfTables() bool { return a.tables }

// Syntax returns the concrete-syntax element the array was lifted from.
func (a *Array) Syntax() *syntax.Element { return a.syntax }

// TextRange returns the array's effective range, covering every item and
// extended by the span pass's next-header offset for arrays of tables.
func (a *Array) TextRange() (uint32, uint32) {
	start, end := uint32(0), uint32(0)
	if a.syntax != nil {
		start, end = a.syntax.TextRange()
	}
	for _, it := range a.items {
		s, e := it.TextRange()
		if s < start {
			start = s
		}
		if e > end {
			end = e
		}
	}
	if a.hasNextHeaderStart && a.nextHeaderStart > end {
		end = a.nextHeaderStart
	}
	return start, end
}

func (a *Array) String() string {
	var b []byte
	b = append(b, '[')
	for i, it := range a.items {
		if i > 0 {
			b = append(b, ", "...)
		}
		b = append(b, it.String()...)
	}
	b = append(b, ']')
	return string(b)
}

// newArray lifts an ARRAY syntax element. Malformed items are dropped
// rather than surfacing ValueInvalid entries, matching ArrayNode::cast's
// filter_map semantics.
func newArray(el *syntax.Element) *Array {
	a := &Array{syntax: el}
	for _, c := range el.Children() {
		v := newValue(c)
		if v.kind == ValueInvalid {
			continue
		}
		a.items = append(a.items, v)
	}
	return a
}

// setTableSpans extends every item Table's next-entry offset to the start
// of the next TABLE_ARRAY_HEADER whose stripped header text does not have
// this item's header text as a prefix (or which is textually identical,
// since identical headers delimit successive array-of-tables items rather
// than nesting). Grounded on ArrayNode::set_table_spans.
func (a *Array) setTableSpans(root *syntax.Element, end uint32, hasEnd bool) {
	if !a.tables {
		return
	}
	for i := range a.items {
		item := &a.items[i]
		if item.kind != ValueTableKind {
			continue
		}
		tbl := item.table
		headerText := stripBrackets(tbl.syntax.Text())

		found := false
		_, tblEnd := tbl.syntax.TextRange()
		for _, n := range root.Children() {
			nStart, _ := n.TextRange()
			if nStart < tblEnd {
				continue
			}
			if n.Kind() != syntax.TABLE_ARRAY_HEADER {
				continue
			}
			otherText := stripBrackets(n.Text())
			if !hasPrefixSegments(otherText, headerText) || otherText == headerText {
				tbl.nextEntry = nStart
				tbl.hasNextEntry = true
				found = true
				break
			}
		}
		if !found {
			tbl.nextEntry, tbl.hasNextEntry = end, hasEnd
		}
		tbl.entries.setTableSpans(root, end, hasEnd)
	}
}
