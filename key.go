package toml

import (
	"strings"

	"github.com/tamasfe/go-tomldom/internal/syntax"
)

// KeyNode is an ordered, non-empty sequence of identifier segments, as it
// appears on an entry or a table/array-of-tables header.
//
// It is grounded on taplo's KeyNode (dom.rs): rather than cloning a sub-slice
// of identifiers every time a view is narrowed (outer/inner/with_prefix/...),
// a KeyNode keeps a single shared ident slice plus a left/right mask so
// sibling views stay O(1) to produce. index additionally distinguishes
// multiple array-of-tables entries that otherwise share the same dotted key.
type KeyNode struct {
	syntax *syntax.Element

	idents []*syntax.Element // shared; never mutated in place
	left   int                // masked-out idents on the left
	right  int                // masked-out idents on the right
	index  int                // disambiguates array-of-tables keys
}

// newKeyNode builds a KeyNode from a parsed KEY element. It reports ok=false
// if the element carries no IDENT children, which should never happen for a
// syntactically well-formed KEY node but is handled defensively since the
// syntax tree can contain recovered/partial trees.
func newKeyNode(el *syntax.Element) (KeyNode, bool) {
	if el.Kind() != syntax.KEY {
		return KeyNode{}, false
	}
	idents := el.ChildrenOfKind(syntax.IDENT)
	if len(idents) == 0 {
		return KeyNode{}, false
	}
	return KeyNode{syntax: el, idents: idents}, true
}

// Syntax returns the concrete-syntax element this key was lifted from.
func (k KeyNode) Syntax() *syntax.Element { return k.syntax }

// TextRange returns the byte range covering every visible ident.
func (k KeyNode) TextRange() (uint32, uint32) {
	visible := k.visibleIdents()
	start, _ := visible[0].TextRange()
	_, end := visible[len(visible)-1].TextRange()
	for _, id := range visible {
		s, e := id.TextRange()
		if s < start {
			start = s
		}
		if e > end {
			end = e
		}
	}
	return start, end
}

func (k KeyNode) visibleIdents() []*syntax.Element {
	return k.idents[k.left : len(k.idents)-k.right]
}

// KeyCount returns the number of visible ident segments. Never zero.
func (k KeyNode) KeyCount() int {
	return len(k.idents) - k.left - k.right
}

// Index distinguishes array-of-tables keys that otherwise share the same
// dotted path; it has no bearing on string equality.
func (k KeyNode) Index() int { return k.index }

// KeysStr returns the unquoted string value of each visible ident, in order.
func (k KeyNode) KeysStr() []string {
	visible := k.visibleIdents()
	out := make([]string, len(visible))
	for i, id := range visible {
		out[i] = unquoteIdent(id.Text())
	}
	return out
}

func unquoteIdent(s string) string {
	if len(s) >= 2 && (s[0] == '"' || s[0] == '\'') && s[len(s)-1] == s[0] {
		return s[1 : len(s)-1]
	}
	return s
}

// FullKeyString joins the visible idents with '.', e.g. "a.b.c".
func (k KeyNode) FullKeyString() string {
	return strings.Join(k.KeysStr(), ".")
}

// String implements fmt.Stringer as FullKeyString.
func (k KeyNode) String() string {
	return k.FullKeyString()
}

// IsPartOf reports whether k's idents are a prefix of other's idents,
// ignoring Index. A key is always part of itself.
func (k KeyNode) IsPartOf(other KeyNode) bool {
	if other.KeyCount() < k.KeyCount() {
		return false
	}
	a, b := k.KeysStr(), other.KeysStr()
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// Contains reports whether other is part of k (the reverse of IsPartOf).
func (k KeyNode) Contains(other KeyNode) bool {
	return other.IsPartOf(k)
}

// CommonPrefixCount counts the shared leading idents between k and other,
// ignoring Index.
func (k KeyNode) CommonPrefixCount(other KeyNode) int {
	a, b := k.KeysStr(), other.KeysStr()
	n := 0
	for n < len(a) && n < len(b) && a[n] == b[n] {
		n++
	}
	return n
}

// EqKeys reports whether k and other have the same idents in the same
// order, ignoring Index.
func (k KeyNode) EqKeys(other KeyNode) bool {
	return k.KeyCount() == other.KeyCount() && k.IsPartOf(other)
}

// Outer retains n idents from the left, e.g. outer.inner.leaf with n=2
// becomes outer.inner. At least one ident always remains.
func (k KeyNode) Outer(n int) KeyNode {
	visible := k.KeyCount()
	skip := visible - 1
	if rem := visible - n; rem < skip {
		skip = rem
	}
	if skip < 0 {
		skip = 0
	}
	k.right += skip
	return k
}

// Inner skips n idents from the left, e.g. outer.inner.leaf with n=1
// becomes inner.leaf. At least one ident always remains.
func (k KeyNode) Inner(n int) KeyNode {
	skip := k.KeyCount() - 1
	if n < skip {
		skip = n
	}
	k.left += skip
	return k
}

// WithPrefix returns a copy of k with other's idents prepended, inheriting
// other's Index. The underlying ident slice is copied once here, since the
// result's identity no longer matches either input's shared slice.
func (k KeyNode) WithPrefix(other KeyNode) KeyNode {
	visible := k.visibleIdents()
	otherVisible := other.visibleIdents()

	merged := make([]*syntax.Element, 0, len(otherVisible)+len(visible))
	merged = append(merged, otherVisible...)
	merged = append(merged, visible...)

	return KeyNode{
		syntax: k.syntax,
		idents: merged,
		left:   0,
		right:  0,
		index:  other.index,
	}
}

// WithoutPrefix removes other's leading idents from k, if they match.
func (k KeyNode) WithoutPrefix(other KeyNode) KeyNode {
	n := k.CommonPrefixCount(other)
	if n > 0 {
		return k.Inner(n)
	}
	return k
}

// WithIndex returns a copy of k carrying the given Index.
func (k KeyNode) WithIndex(index int) KeyNode {
	k.index = index
	return k
}

// Prefix returns the key with its last ident dropped, e.g. a.b.c => a.b.
func (k KeyNode) Prefix() KeyNode {
	return k.Outer(k.KeyCount() - 1)
}

// Last returns the key with everything but its last ident dropped, e.g.
// a.b.c => c.
func (k KeyNode) Last() KeyNode {
	return k.Inner(k.KeyCount())
}
