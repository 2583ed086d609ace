package ast

import (
	"strings"

	"golang.org/x/text/unicode/norm"

	"ember/internal/source"
)

// PathBuilder accumulates path elements in a private scratch buffer.
// Transient views are bound to the builder's lifetime; CopyTo produces a
// durable run inside caller-supplied storage. Not safe for concurrent use.
type PathBuilder struct {
	scratch []Element
}

// NewPathBuilder creates a builder seeded with elems.
func NewPathBuilder(elems ...Element) *PathBuilder {
	b := &PathBuilder{
		scratch: make([]Element, 0, max(len(elems), 4)),
	}
	b.scratch = append(b.scratch, elems...)
	return b
}

// SplitImportText seeds a builder by splitting text on sep. Segment names
// are NFC-normalized and interned; spans are absent. Best-effort: it does
// not validate identifier syntax, and empty pieces are kept so callers can
// diagnose them.
func SplitImportText(in *source.Interner, text string, sep byte) *PathBuilder {
	b := NewPathBuilder()
	for len(text) > 0 {
		next := text
		if i := strings.IndexByte(text, sep); i >= 0 {
			next, text = text[:i], text[i+1:]
		} else {
			text = ""
		}
		b.Push(in.Intern(norm.NFC.String(next)), source.Span{})
	}
	return b
}

// Push appends one segment.
func (b *PathBuilder) Push(name string, span source.Span) {
	b.scratch = append(b.scratch, Element{Name: name, Span: span})
}

// Pop removes the last segment. Panics if the builder is empty.
func (b *PathBuilder) Pop() {
	if len(b.scratch) == 0 {
		panic("ast: pop from an empty path builder")
	}
	b.scratch = b.scratch[:len(b.scratch)-1]
}

func (b *PathBuilder) Len() int {
	return len(b.scratch)
}

func (b *PathBuilder) Empty() bool {
	return len(b.scratch) == 0
}

// Transient returns a view over the builder's own scratch buffer. The view
// is valid only while the builder lives and is not mutated further.
func (b *PathBuilder) Transient() Path {
	return NewPath(b.scratch)
}

// CopyTo copies the accumulated segments into arena and returns the durable
// run. The run's lifetime is the arena's, not the builder's.
func (b *PathBuilder) CopyTo(arena *Arena[Element]) []Element {
	return arena.AppendRun(b.scratch)
}
