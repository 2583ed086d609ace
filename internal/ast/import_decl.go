package ast

import "ember/internal/source"

// ImportDecl represents one import declaration. It owns the element storage
// that its path views alias, so the views stay valid as long as the decl
// does.
type ImportDecl struct {
	Elems     []Element
	Kind      ImportKind
	Options   ImportOptions
	Filename  string // source file granted by a private import, "" if none
	SPIGroups []string
	Span      source.Span
}

// Path returns the full dotted path as written.
func (d *ImportDecl) Path() ImportPath {
	return NewImportPath(d.Elems)
}

// ModulePath returns the module portion of the path for this decl's kind.
func (d *ImportDecl) ModulePath() ModulePath {
	return d.Path().ModulePath(d.Kind.Scoped())
}

// AccessPath returns the declaration scope of the path for this decl's kind.
func (d *ImportDecl) AccessPath() AccessPath {
	return d.Path().AccessPath(d.Kind.Scoped())
}
