package ast

// ImportKind classifies what kind of entity an import declaration names.
type ImportKind uint8

const (
	// KindModule imports a whole module; all other kinds scope the import
	// to a single top-level declaration.
	KindModule ImportKind = iota
	KindType
	KindTag
	KindFn
	KindLet
)

// Scoped reports whether imports of this kind name a single declaration.
func (k ImportKind) Scoped() bool {
	return k != KindModule
}

func (k ImportKind) String() string {
	switch k {
	case KindModule:
		return "module"
	case KindType:
		return "type"
	case KindTag:
		return "tag"
	case KindFn:
		return "fn"
	case KindLet:
		return "let"
	default:
		return "invalid"
	}
}

// KindFromKeyword maps a declaration keyword to its import kind.
func KindFromKeyword(word string) (ImportKind, bool) {
	switch word {
	case "type":
		return KindType, true
	case "tag":
		return KindTag, true
	case "fn":
		return KindFn, true
	case "let":
		return KindLet, true
	default:
		return KindModule, false
	}
}

// ImportPath is the full dotted path of an import declaration.
// Invariant: at least one segment.
type ImportPath struct {
	Path
}

// NewImportPath wraps raw. Panics if raw is empty.
func NewImportPath(raw []Element) ImportPath {
	if len(raw) == 0 {
		panic("ast: import path must contain a module name")
	}
	return ImportPath{Path: NewPath(raw)}
}

// ModulePath extracts the portion of the path naming the module to load,
// including submodules. When the import is scoped the last segment names a
// declaration and is dropped.
func (p ImportPath) ModulePath(scoped bool) ModulePath {
	if scoped {
		return NewModulePath(p.raw[:len(p.raw)-1])
	}
	return NewModulePath(p.raw)
}

// AccessPath extracts the portion of the path that scopes the import to one
// declaration. Unscoped imports have an empty access path. Panics when a
// scoped path has fewer than two segments: a scoped import needs at least a
// module name and a declaration name.
func (p ImportPath) AccessPath(scoped bool) AccessPath {
	if !scoped {
		return AccessPath{}
	}
	if len(p.raw) < 2 {
		panic("ast: scoped import path must contain a declaration name")
	}
	return NewAccessPath(p.raw[len(p.raw)-1:])
}

// ModulePath names the module an import resolves against. The first segment
// is a top-level module; any further segments chain into submodules.
// Invariant: at least one segment.
type ModulePath struct {
	Path
}

// NewModulePath wraps raw. Panics if raw is empty.
func NewModulePath(raw []Element) ModulePath {
	if len(raw) == 0 {
		panic("ast: module path must contain a top-level module")
	}
	return ModulePath{Path: NewPath(raw)}
}

// HasSubmodule reports whether the path chains below the top-level module.
func (p ModulePath) HasSubmodule() bool {
	return len(p.raw) != 1
}

// SubmodulePath returns the chain below the top-level module.
func (p ModulePath) SubmodulePath() Path {
	return NewPath(p.raw[1:])
}

// AccessPath restricts a scoped import to a single declaration. Only
// top-level declarations can be scoped to, so the path holds zero or one
// segments; empty means the import covers the whole module. The zero value
// is the empty access path.
type AccessPath struct {
	Path
}

// NewAccessPath wraps raw. Panics if raw holds more than one segment.
func NewAccessPath(raw []Element) AccessPath {
	if len(raw) > 1 {
		panic("ast: nested scoped imports are not supported")
	}
	return AccessPath{Path: NewPath(raw)}
}

// Matches reports whether the scope of this import includes name.
// An empty access path matches every name.
func (p AccessPath) Matches(name string) bool {
	return p.Empty() || p.Front().Name == name
}
