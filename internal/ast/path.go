package ast

import (
	"strings"

	"ember/internal/source"
)

// Element is one segment of a dotted import path: the identifier text plus
// the span it was written at. Synthesized segments carry a zero Span.
// Name is expected to be interned so equal identifiers share storage.
type Element struct {
	Name string
	Span source.Span
}

// SameAs reports name-only sameness, ignoring the span.
func (e Element) SameAs(other Element) bool {
	return e.Name == other.Name
}

// Path is an undifferentiated dotted name sequence from an import
// declaration, like Foo.Bar. It is a non-owning view over contiguous Element
// storage owned by an ImportDecl or an Arena; a Path must not outlive that
// storage and is never mutated after construction.
//
// The first element of a full import path always names a top-level module.
// Whether the trailing elements are submodules or a scoped declaration name
// is decided by the derivation on ImportPath; most code should consume
// ModulePath or AccessPath, which carry that meaning.
type Path struct {
	raw []Element
}

// NewPath wraps raw without copying it.
func NewPath(raw []Element) Path {
	return Path{raw: raw}
}

// Raw exposes the backing elements. Callers must treat it as read-only.
func (p Path) Raw() []Element {
	return p.raw
}

func (p Path) Size() int {
	return len(p.raw)
}

func (p Path) Empty() bool {
	return len(p.raw) == 0
}

func (p Path) At(i int) Element {
	return p.raw[i]
}

func (p Path) Front() Element {
	return p.raw[0]
}

func (p Path) Back() Element {
	return p.raw[len(p.raw)-1]
}

// Equal reports exact equality: same names at the same spans.
func (p Path) Equal(other Path) bool {
	if len(p.raw) != len(other.raw) {
		return false
	}
	for i := range p.raw {
		if p.raw[i] != other.raw[i] {
			return false
		}
	}
	return true
}

// SameAs reports whether both paths spell the same identifiers in the same
// order, ignoring spans.
func (p Path) SameAs(other Path) bool {
	if len(p.raw) != len(other.raw) {
		return false
	}
	for i := range p.raw {
		if p.raw[i].Name != other.raw[i].Name {
			return false
		}
	}
	return true
}

// Less orders paths lexicographically by segment text, usable for sorting.
func (p Path) Less(other Path) bool {
	n := min(len(p.raw), len(other.raw))
	for i := 0; i < n; i++ {
		if p.raw[i].Name != other.raw[i].Name {
			return p.raw[i].Name < other.raw[i].Name
		}
	}
	return len(p.raw) < len(other.raw)
}

// TopLevelPath returns the first segment as a length-1 view.
// Panics on an empty path.
func (p Path) TopLevelPath() Path {
	if p.Empty() {
		panic("ast: top-level slice of an empty path")
	}
	return Path{raw: p.raw[:1]}
}

// ParentPath returns everything but the last segment.
// Panics on an empty path.
func (p Path) ParentPath() Path {
	if p.Empty() {
		panic("ast: parent slice of an empty path")
	}
	return Path{raw: p.raw[:len(p.raw)-1]}
}

// SourceSpan covers the whole path, from the first segment to the last.
// Empty paths yield the zero span.
func (p Path) SourceSpan() source.Span {
	if p.Empty() {
		return source.Span{}
	}
	return p.raw[0].Span.Cover(p.raw[len(p.raw)-1].Span)
}

// String renders the path in dotted form.
func (p Path) String() string {
	var b strings.Builder
	for i := range p.raw {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(p.raw[i].Name)
	}
	return b.String()
}
