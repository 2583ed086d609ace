package ast

import (
	"testing"

	"ember/internal/source"
)

func elems(names ...string) []Element {
	out := make([]Element, 0, len(names))
	for i, name := range names {
		out = append(out, Element{
			Name: name,
			Span: source.Span{File: 1, Start: uint32(i * 10), End: uint32(i*10 + len(name))},
		})
	}
	return out
}

func expectPanic(t *testing.T, what string) {
	t.Helper()
	if r := recover(); r == nil {
		t.Errorf("%s did not panic", what)
	}
}

func TestPath_SlicesAndAccessors(t *testing.T) {
	p := NewPath(elems("Foo", "Bar", "Baz"))

	if p.Size() != 3 || p.Empty() {
		t.Fatalf("Size() = %d, Empty() = %v", p.Size(), p.Empty())
	}
	if p.Front().Name != "Foo" || p.Back().Name != "Baz" || p.At(1).Name != "Bar" {
		t.Errorf("accessors returned wrong elements: %s %s %s",
			p.Front().Name, p.At(1).Name, p.Back().Name)
	}

	parent := p.ParentPath()
	if parent.Size() != 2 || parent.Back().Name != "Bar" {
		t.Errorf("ParentPath() = %q, want Foo.Bar", parent.String())
	}
	top := p.TopLevelPath()
	if top.Size() != 1 || top.Front().Name != "Foo" {
		t.Errorf("TopLevelPath() = %q, want Foo", top.String())
	}

	// Shrinking the parent all the way down keeps the size rule
	// parent.Size() == p.Size()-1 at every step.
	for q := p; !q.Empty(); q = q.ParentPath() {
		if !q.Empty() {
			want := q.Size() - 1
			if got := q.ParentPath().Size(); got != want {
				t.Errorf("ParentPath().Size() = %d, want %d", got, want)
			}
		}
	}
}

func TestPath_SliceOfEmptyPanics(t *testing.T) {
	t.Run("parent", func(t *testing.T) {
		defer expectPanic(t, "ParentPath of empty path")
		NewPath(nil).ParentPath()
	})
	t.Run("top-level", func(t *testing.T) {
		defer expectPanic(t, "TopLevelPath of empty path")
		NewPath(nil).TopLevelPath()
	})
}

func TestPath_EqualAndSameAs(t *testing.T) {
	atPos := NewPath(elems("Foo", "Bar"))
	elsewhere := []Element{
		{Name: "Foo", Span: source.Span{File: 2, Start: 100, End: 103}},
		{Name: "Bar", Span: source.Span{File: 2, Start: 104, End: 107}},
	}
	moved := NewPath(elsewhere)

	if !atPos.SameAs(moved) || !moved.SameAs(atPos) {
		t.Errorf("SameAs must ignore spans and be symmetric")
	}
	if !atPos.SameAs(atPos) {
		t.Errorf("SameAs must be reflexive")
	}
	if atPos.Equal(moved) {
		t.Errorf("Equal must compare spans; differently placed paths compared equal")
	}
	if !atPos.Equal(NewPath(atPos.Raw())) {
		t.Errorf("Equal is false for an identical view")
	}
	if atPos.SameAs(NewPath(elems("Foo"))) {
		t.Errorf("SameAs ignored a length mismatch")
	}
	if atPos.SameAs(NewPath(elems("Foo", "Qux"))) {
		t.Errorf("SameAs ignored a name mismatch")
	}
}

func TestPath_Less(t *testing.T) {
	tests := []struct {
		name string
		a, b []string
		want bool
	}{
		{"prefix orders first", []string{"Foo"}, []string{"Foo", "Bar"}, true},
		{"text decides", []string{"Alpha", "Zed"}, []string{"Beta"}, true},
		{"equal paths", []string{"Foo", "Bar"}, []string{"Foo", "Bar"}, false},
		{"later segment decides", []string{"Foo", "Apple"}, []string{"Foo", "Pear"}, true},
		{"reverse", []string{"Foo", "Pear"}, []string{"Foo", "Apple"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := NewPath(elems(tt.a...)), NewPath(elems(tt.b...))
			if got := a.Less(b); got != tt.want {
				t.Errorf("Less(%q, %q) = %v, want %v", a.String(), b.String(), got, tt.want)
			}
		})
	}
}

func TestPath_SourceSpanAndString(t *testing.T) {
	p := NewPath(elems("Foo", "Bar", "Baz"))
	span := p.SourceSpan()
	if span.Start != 0 || span.End != 23 || span.File != 1 {
		t.Errorf("SourceSpan() = %+v, want cover of first and last segments", span)
	}
	if p.String() != "Foo.Bar.Baz" {
		t.Errorf("String() = %q, want %q", p.String(), "Foo.Bar.Baz")
	}
	if got := (Path{}).SourceSpan(); got != (source.Span{}) {
		t.Errorf("empty path SourceSpan() = %+v, want zero", got)
	}
}

func TestImportPath_Derivation(t *testing.T) {
	full := NewImportPath(elems("A", "B", "C"))

	unscopedMod := full.ModulePath(false)
	if unscopedMod.String() != "A.B.C" {
		t.Errorf("ModulePath(false) = %q, want A.B.C", unscopedMod.String())
	}
	if !unscopedMod.HasSubmodule() || unscopedMod.SubmodulePath().String() != "B.C" {
		t.Errorf("submodule chain = %q, want B.C", unscopedMod.SubmodulePath().String())
	}

	scopedMod := full.ModulePath(true)
	if scopedMod.String() != "A.B" {
		t.Errorf("ModulePath(true) = %q, want A.B", scopedMod.String())
	}

	access := full.AccessPath(true)
	if access.Size() != 1 || access.Front().Name != "C" {
		t.Errorf("AccessPath(true) = %q, want C", access.String())
	}
	if got := full.AccessPath(false); !got.Empty() {
		t.Errorf("AccessPath(false) = %q, want empty", got.String())
	}
}

func TestImportPath_ScopedDerivationTooShortPanics(t *testing.T) {
	single := NewImportPath(elems("Solo"))

	t.Run("access", func(t *testing.T) {
		defer expectPanic(t, "scoped AccessPath of a 1-segment path")
		single.AccessPath(true)
	})
	t.Run("module", func(t *testing.T) {
		defer expectPanic(t, "scoped ModulePath of a 1-segment path")
		single.ModulePath(true)
	})
}

func TestViewConstructors_Invariants(t *testing.T) {
	t.Run("empty import path", func(t *testing.T) {
		defer expectPanic(t, "NewImportPath(nil)")
		NewImportPath(nil)
	})
	t.Run("empty module path", func(t *testing.T) {
		defer expectPanic(t, "NewModulePath(nil)")
		NewModulePath(nil)
	})
	t.Run("oversized access path", func(t *testing.T) {
		defer expectPanic(t, "NewAccessPath with two segments")
		NewAccessPath(elems("A", "B"))
	})
	if got := NewAccessPath(nil); !got.Empty() {
		t.Errorf("NewAccessPath(nil) is not empty")
	}
}

func TestAccessPath_Matches(t *testing.T) {
	empty := AccessPath{}
	for _, name := range []string{"anything", "Point", ""} {
		if !empty.Matches(name) {
			t.Errorf("empty access path must match %q", name)
		}
	}

	scoped := NewAccessPath(elems("Point"))
	if !scoped.Matches("Point") {
		t.Errorf("access path Point does not match Point")
	}
	for _, name := range []string{"point", "Pointer", "Line"} {
		if scoped.Matches(name) {
			t.Errorf("access path Point unexpectedly matches %q", name)
		}
	}
}

func TestImportKind_Scoped(t *testing.T) {
	if KindModule.Scoped() {
		t.Errorf("module imports must be unscoped")
	}
	for _, k := range []ImportKind{KindType, KindTag, KindFn, KindLet} {
		if !k.Scoped() {
			t.Errorf("%s imports must be scoped", k)
		}
	}

	if kind, ok := KindFromKeyword("fn"); !ok || kind != KindFn {
		t.Errorf("KindFromKeyword(fn) = (%v, %v)", kind, ok)
	}
	if _, ok := KindFromKeyword("import"); ok {
		t.Errorf("KindFromKeyword accepted a non-kind keyword")
	}
}
