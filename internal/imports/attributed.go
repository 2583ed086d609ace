package imports

import (
	"ember/internal/ast"
)

// AttributedImport pairs a module descriptor of any shape with the options
// and attribute payload of the import declaration that produced it.
type AttributedImport[M any] struct {
	Module  M
	Options ast.ImportOptions

	// Filename is the source file granted access by a private import.
	Filename string

	// SPIGroups lists the SPI group names the import opts into.
	SPIGroups []string
}

// ImportedModuleDesc is the attributed form of a fully resolved import.
type ImportedModuleDesc = AttributedImport[ImportedModule]

// NewAttributedImport validates the option invariant at construction: an
// import cannot be both exported and implementation-only. Values carrying
// ImportReserved bypass the check; that bit is reserved for synthetic
// records.
func NewAttributedImport[M any](module M, options ast.ImportOptions, filename string, spiGroups []string) AttributedImport[M] {
	if options.Contains(ast.ImportExported|ast.ImportImplementationOnly) &&
		!options.Contains(ast.ImportReserved) {
		panic("imports: exported and implementation-only are mutually exclusive")
	}
	return AttributedImport[M]{
		Module:    module,
		Options:   options,
		Filename:  filename,
		SPIGroups: spiGroups,
	}
}

// MapKey is a comparable projection of an AttributedImport for use as a
// built-in map key. SPI groups do not participate: two imports differing
// only in their groups collide, and callers merge the group lists.
type MapKey[M comparable] struct {
	Module   M
	Options  ast.ImportOptions
	Filename string
}

// Key projects imp onto its map key.
func Key[M comparable](imp AttributedImport[M]) MapKey[M] {
	return MapKey[M]{
		Module:   imp.Module,
		Options:  imp.Options,
		Filename: imp.Filename,
	}
}
