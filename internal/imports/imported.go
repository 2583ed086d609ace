package imports

import (
	"ember/internal/ast"
	"ember/internal/modules"
)

// ImportedModule pairs the module a resolved import points at with the
// access path restricting the import to a single declaration.
type ImportedModule struct {
	// Access is empty for whole-module imports.
	Access ast.AccessPath
	// Module is never nil.
	Module *modules.Module
}

// NewImportedModule builds the record. Panics on a nil module.
func NewImportedModule(access ast.AccessPath, module *modules.Module) ImportedModule {
	if module == nil {
		panic("imports: imported module must not be nil")
	}
	return ImportedModule{Access: access, Module: module}
}

// Equal reports strict equality: same module and exactly equal access
// paths, spans included.
func (im ImportedModule) Equal(other ImportedModule) bool {
	return im.Module == other.Module && im.Access.Equal(other.Access.Path)
}

// SameAs reports semantic sameness: same module and name-only equal access
// paths. Records that differ only by where the import was written are the
// same for lookup purposes.
func (im ImportedModule) SameAs(other ImportedModule) bool {
	return im.Module == other.Module && im.Access.SameAs(other.Access.Path)
}

// sameKey is the hash key for semantic sameness. Access paths hold at most
// one element, so the front name plus the length captures them fully.
type sameKey struct {
	module     modules.ModuleID
	accessName string
	accessLen  int
}

func keyOf(im ImportedModule) sameKey {
	k := sameKey{module: im.Module.ID, accessLen: im.Access.Size()}
	if !im.Access.Empty() {
		k.accessName = im.Access.Front().Name
	}
	return k
}

// RemoveDuplicates collapses records that are SameAs each other down to one
// representative each, in a single hashing pass. Which representative
// survives is unspecified; input order is not meaningful and is not
// preserved beyond first occurrence.
func RemoveDuplicates(records []ImportedModule) []ImportedModule {
	seen := make(map[sameKey]struct{}, len(records))
	out := records[:0]
	for _, rec := range records {
		k := keyOf(rec)
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, rec)
	}
	return out
}

// Compare is a total order over records for deterministic placement in
// sorted containers: module ID first, then access front name, then access
// length. It is an in-run tie-breaking discipline, not a semantic relation;
// records RemoveDuplicates would collapse can still compare unequal here.
func Compare(a, b ImportedModule) int {
	switch {
	case a.Module.ID < b.Module.ID:
		return -1
	case a.Module.ID > b.Module.ID:
		return 1
	}
	an, bn := "", ""
	if !a.Access.Empty() {
		an = a.Access.Front().Name
	}
	if !b.Access.Empty() {
		bn = b.Access.Front().Name
	}
	switch {
	case an < bn:
		return -1
	case an > bn:
		return 1
	}
	switch {
	case a.Access.Size() < b.Access.Size():
		return -1
	case a.Access.Size() > b.Access.Size():
		return 1
	}
	return 0
}

// Order is the strict-weak form of Compare, for sort predicates.
func Order(a, b ImportedModule) bool {
	return Compare(a, b) < 0
}
