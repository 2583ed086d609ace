package source

import (
	"testing"
)

func TestFileSet_AddVirtualAndResolve(t *testing.T) {
	fs := NewFileSet()
	content := []byte("import Foo\nimport Bar.Baz\n")
	id := fs.AddVirtual("mem.em", content)

	f := fs.Get(id)
	if f.Flags&FileVirtual == 0 {
		t.Errorf("virtual file missing FileVirtual flag")
	}

	// "Bar" starts at offset 18 on line 2.
	start, _ := fs.Resolve(Span{File: id, Start: 18, End: 21})
	if start.Line != 2 || start.Col != 8 {
		t.Errorf("Resolve start = %+v, want line 2 col 8", start)
	}
}

func TestFileSet_GetLatest(t *testing.T) {
	fs := NewFileSet()
	first := fs.AddVirtual("a.em", []byte("import A\n"))
	second := fs.AddVirtual("a.em", []byte("import A\nimport B\n"))

	if first == second {
		t.Fatalf("repeated Add returned the same FileID")
	}
	latest, ok := fs.GetLatest("a.em")
	if !ok || latest != second {
		t.Errorf("GetLatest = (%d, %v), want (%d, true)", latest, ok, second)
	}
	if fs.Len() != 2 {
		t.Errorf("Len() = %d, want 2", fs.Len())
	}
}

func TestFile_GetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("lines.em", []byte("one\ntwo\nthree"))
	f := fs.Get(id)

	tests := []struct {
		line uint32
		want string
	}{
		{0, ""},
		{1, "one"},
		{2, "two"},
		{3, "three"},
		{4, ""},
	}
	for _, tt := range tests {
		if got := f.GetLine(tt.line); got != tt.want {
			t.Errorf("GetLine(%d) = %q, want %q", tt.line, got, tt.want)
		}
	}
}
