package driver

import (
	"fmt"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/imports"
	"ember/internal/modules"
	"ember/internal/source"
)

// FileTable is one file's resolved import table.
type FileTable struct {
	Path   string
	FileID source.FileID
	Table  imports.Table
	Bag    *diag.Bag
}

// BuildImplicitInfo translates a manifest's [implicit] section into the
// implicit-import description, resolving the pre-declared additional
// modules against the registry.
func BuildImplicitInfo(man modules.Manifest, reg *modules.Registry) (imports.ImplicitImportInfo, error) {
	kind, err := imports.ParseStdlibKind(man.Implicit.Stdlib)
	if err != nil {
		return imports.ImplicitImportInfo{}, fmt.Errorf("[implicit]: %w", err)
	}
	info := imports.ImplicitImportInfo{
		Stdlib:             kind,
		ImportUnderlying:   man.Implicit.Underlying,
		BridgingHeaderPath: man.Implicit.BridgingHeader,
		ModuleNames:        man.Implicit.Modules,
	}
	for _, add := range man.Implicit.Additional {
		m, ok := reg.Lookup(add.Module)
		if !ok {
			return imports.ImplicitImportInfo{}, fmt.Errorf(
				"[implicit]: additional module %q is not declared", add.Module)
		}
		info.AdditionalModules = append(info.AdditionalModules, imports.AdditionalModule{
			Module:   m,
			Exported: add.Exported,
		})
	}
	return info, nil
}

// Resolver turns scanned import declarations into per-file import tables.
// Read-only after construction, so one resolver can serve many files.
type Resolver struct {
	registry *modules.Registry
	implicit []imports.ImportedModuleDesc
}

// NewResolver precomputes the implicit import records every file receives.
// packageName is the manifest's own module, imported as the underlying
// foreign half when info requests it.
func NewResolver(reg *modules.Registry, packageName string, info imports.ImplicitImportInfo) (*Resolver, error) {
	in := source.NewInterner()
	arena := ast.NewArena[ast.Element](16)

	var pending []imports.AttributedImport[*modules.Module]
	addModule := func(m *modules.Module, options ast.ImportOptions) {
		pending = append(pending, imports.NewAttributedImport(m, options, "", nil))
	}

	switch info.Stdlib {
	case imports.StdlibNone:
	case imports.StdlibCore, imports.StdlibStd:
		m, ok := reg.Lookup(info.Stdlib.String())
		if !ok {
			return nil, fmt.Errorf("stdlib tier %q has no registered module", info.Stdlib)
		}
		addModule(m, 0)
	}

	for _, name := range info.ModuleNames {
		builder := ast.SplitImportText(in, name, '.')
		if builder.Empty() {
			return nil, fmt.Errorf("implicit module name is empty")
		}
		path := ast.NewModulePath(builder.CopyTo(arena))
		m, ok := reg.Resolve(path)
		if !ok {
			return nil, fmt.Errorf("implicit module %q is not declared", name)
		}
		addModule(m, 0)
	}

	for _, add := range info.AdditionalModules {
		var options ast.ImportOptions
		if add.Exported {
			options = options.With(ast.ImportExported)
		}
		addModule(add.Module, options)
	}

	if info.ImportUnderlying {
		m, ok := reg.Lookup(packageName)
		if !ok {
			return nil, fmt.Errorf("underlying module %q is not registered", packageName)
		}
		addModule(m, 0)
	}

	// One record per (module, options, filename) triple.
	seen := make(map[imports.MapKey[*modules.Module]]struct{}, len(pending))
	descs := make([]imports.ImportedModuleDesc, 0, len(pending))
	for _, imp := range pending {
		key := imports.Key(imp)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		descs = append(descs, imports.NewAttributedImport(
			imports.NewImportedModule(ast.AccessPath{}, imp.Module),
			imp.Options, imp.Filename, imp.SPIGroups))
	}

	return &Resolver{registry: reg, implicit: descs}, nil
}

// ImplicitRecords returns the records injected into every file's table.
func (r *Resolver) ImplicitRecords() []imports.ImportedModuleDesc {
	return r.implicit
}

// ResolveFiles resolves each scan result in order, publishing per-file
// resolve progress to sink.
func (r *Resolver) ResolveFiles(results []ScanResult, sink ProgressSink) []FileTable {
	if sink == nil {
		sink = NopSink{}
	}
	tables := make([]FileTable, len(results))
	for i, res := range results {
		sink.Publish(Event{File: res.Path, Stage: StageResolve, Status: StatusWorking})
		tables[i] = r.ResolveFile(res)
		status := StatusDone
		if tables[i].Bag.HasErrors() {
			status = StatusError
		}
		sink.Publish(Event{File: res.Path, Stage: StageResolve, Status: status})
	}
	return tables
}

// ResolveFile resolves every scanned declaration of one file against the
// registry and appends the implicit records. Diagnostics are added to the
// scan's bag.
func (r *Resolver) ResolveFile(res ScanResult) FileTable {
	reporter := diag.BagReporter{Bag: res.Bag}
	seen := make(map[string]source.Span)

	var table imports.Table
	for i := range res.Decls {
		decl := &res.Decls[i]
		modPath := decl.ModulePath()

		mod, ok := r.registry.Resolve(modPath)
		if !ok {
			diag.ReportError(reporter, diag.ResolveUnknownModule, modPath.SourceSpan(),
				fmt.Sprintf("cannot resolve module %q", modPath.String())).Emit()
			continue
		}

		if decl.Kind == ast.KindModule {
			key := modPath.String()
			if prev, dup := seen[key]; dup {
				builder := diag.ReportWarning(reporter, diag.ResolveDuplicateImport, decl.Span,
					fmt.Sprintf("module %q already imported", key))
				if prev != (source.Span{}) {
					builder.WithNote(prev, "previous import here")
				}
				builder.Emit()
				continue
			}
			seen[key] = decl.Span
		}

		table.Add(imports.NewAttributedImport(
			imports.NewImportedModule(decl.AccessPath(), mod),
			decl.Options, decl.Filename, decl.SPIGroups))
	}

	table.Records = append(table.Records, r.implicit...)

	return FileTable{
		Path:   res.Path,
		FileID: res.FileID,
		Table:  table,
		Bag:    res.Bag,
	}
}
