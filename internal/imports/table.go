package imports

import (
	"sort"
)

// Table is one file's working set of resolved imports, in declaration order
// with implicit records appended.
type Table struct {
	Records []ImportedModuleDesc
}

// Add appends a record.
func (t *Table) Add(desc ImportedModuleDesc) {
	t.Records = append(t.Records, desc)
}

// Modules returns the deduplicated imported-module working set for name
// lookup, sorted by Order so placement is deterministic within a run.
func (t *Table) Modules() []ImportedModule {
	mods := make([]ImportedModule, 0, len(t.Records))
	for _, rec := range t.Records {
		mods = append(mods, rec.Module)
	}
	mods = RemoveDuplicates(mods)
	sort.Slice(mods, func(i, j int) bool { return Order(mods[i], mods[j]) })
	return mods
}

// VisibleTo returns the modules whose import scope covers name, empty
// access paths included.
func (t *Table) VisibleTo(name string) []ImportedModule {
	var out []ImportedModule
	for _, im := range t.Modules() {
		if im.Access.Matches(name) {
			out = append(out, im)
		}
	}
	return out
}
