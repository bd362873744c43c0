package syntax

// Element is a node or token of the syntax tree: the "opaque
// syntax handle" that DOM nodes keep a back-reference to so they can
// recover a byte range and a kind without cloning source bytes.
//
// Unlike the teacher's internal/ast.Node, Element carries its own byte
// range directly (Start/End) rather than relying on a parent to recompute
// it from Data lengths, because the DOM's span pass needs to compare and
// extend ranges across sibling headers.
type Element struct {
	kind     Kind
	start    uint32
	end      uint32
	text     string
	children []*Element
}

// NewToken creates a leaf Element (a single lexer token).
func NewToken(kind Kind, start, end uint32, text string) *Element {
	return &Element{kind: kind, start: start, end: end, text: text}
}

// NewNode creates an interior Element from already-built children. Start
// and end are derived by covering every child's range; an empty child list
// yields a zero-width element at offset 0, which callers should avoid.
func NewNode(kind Kind, children ...*Element) *Element {
	n := &Element{kind: kind, children: children}
	for _, c := range children {
		if c == nil {
			continue
		}
		n.cover(c)
	}
	return n
}

func (n *Element) cover(c *Element) {
	if n.start == 0 && n.end == 0 {
		n.start, n.end = c.start, c.end
		return
	}
	if c.start < n.start {
		n.start = c.start
	}
	if c.end > n.end {
		n.end = c.end
	}
}

// Kind returns the element's syntactic kind.
func (n *Element) Kind() Kind {
	if n == nil {
		return Invalid
	}
	return n.kind
}

// TextRange returns the half-open [start, end) byte range of the element.
func (n *Element) TextRange() (uint32, uint32) {
	if n == nil {
		return 0, 0
	}
	return n.start, n.end
}

// SetRange overrides the element's byte range. Used by the parser for
// interior nodes (table headers) whose effective range includes delimiter
// tokens (brackets) that are not kept as tree children.
func (n *Element) SetRange(start, end uint32) {
	if n != nil {
		n.start, n.end = start, end
	}
}

// Text returns the raw source text of the element. For interior nodes this
// is only populated if explicitly set via SetText (used for header
// re-stringification in the span pass); leaves always carry their token
// text.
func (n *Element) Text() string {
	if n == nil {
		return ""
	}
	return n.text
}

// SetText overrides the cached text of an interior node. Used by the parser
// to stash the header's source text (brackets included) for the span pass,
// which needs to compare header strings without re-walking tokens.
func (n *Element) SetText(s string) {
	if n != nil {
		n.text = s
	}
}

// Children returns the element's direct children (nodes and tokens alike),
// in source order. The returned slice must not be mutated.
func (n *Element) Children() []*Element {
	if n == nil {
		return nil
	}
	return n.children
}

// FirstChild returns the first child, or nil if there are none.
func (n *Element) FirstChild() *Element {
	if n == nil || len(n.children) == 0 {
		return nil
	}
	return n.children[0]
}

// NthChild returns the i-th child (0-indexed), or nil if out of range.
func (n *Element) NthChild(i int) *Element {
	if n == nil || i < 0 || i >= len(n.children) {
		return nil
	}
	return n.children[i]
}

// ChildrenOfKind returns every direct child with the given kind, in order.
func (n *Element) ChildrenOfKind(k Kind) []*Element {
	var out []*Element
	for _, c := range n.Children() {
		if c.Kind() == k {
			out = append(out, c)
		}
	}
	return out
}

// Iterator walks an element's children one at a time, mirroring the
// spec's `children_with_tokens() -> iterator` external interface.
type Iterator struct {
	elems []*Element
	idx   int
}

// ChildrenWithTokens returns an Iterator over the element's direct children.
func (n *Element) ChildrenWithTokens() *Iterator {
	return &Iterator{elems: n.Children(), idx: -1}
}

// Next advances the iterator and reports whether a new element is available.
func (it *Iterator) Next() bool {
	it.idx++
	return it.idx < len(it.elems)
}

// Node returns the current element. Only valid after a Next call returned
// true.
func (it *Iterator) Node() *Element {
	if it.idx < 0 || it.idx >= len(it.elems) {
		return nil
	}
	return it.elems[it.idx]
}
