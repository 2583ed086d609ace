package imports

import (
	"fmt"

	"ember/internal/ast"
	"ember/internal/modules"
)

// StdlibKind selects which standard-library tier is implicitly imported
// into every file of a package.
type StdlibKind uint8

const (
	// StdlibNone imports no standard library at all.
	StdlibNone StdlibKind = iota
	// StdlibCore imports only the minimal core builtins (no_std packages).
	StdlibCore
	// StdlibStd imports the full standard library.
	StdlibStd
)

func (k StdlibKind) String() string {
	switch k {
	case StdlibNone:
		return "none"
	case StdlibCore:
		return "core"
	case StdlibStd:
		return "std"
	default:
		return "invalid"
	}
}

// ParseStdlibKind maps a manifest stdlib tier string onto its kind.
func ParseStdlibKind(s string) (StdlibKind, error) {
	switch s {
	case "none":
		return StdlibNone, nil
	case "core":
		return StdlibCore, nil
	case "std", "":
		return StdlibStd, nil
	default:
		return StdlibNone, fmt.Errorf("unknown stdlib tier %q", s)
	}
}

// ImplicitImport is a module the compiler injects into a file's imports
// without the user writing a declaration.
type ImplicitImport struct {
	Module  *modules.Module
	Options ast.ImportOptions
}

// Equal compares module identity and the raw option bits.
func (ii ImplicitImport) Equal(other ImplicitImport) bool {
	return ii.Module == other.Module && ii.Options == other.Options
}

// AdditionalModule is an already-resolved module to import implicitly,
// independently tagged as re-exported or not.
type AdditionalModule struct {
	Module   *modules.Module
	Exported bool
}

// ImplicitImportInfo describes every import a package's files receive
// without writing one.
type ImplicitImportInfo struct {
	// Stdlib is the standard-library tier to auto-import.
	Stdlib StdlibKind

	// ImportUnderlying requests an import of the foreign-language half of
	// the package's own module.
	ImportUnderlying bool

	// BridgingHeaderPath is empty when the package has no bridging header.
	BridgingHeaderPath string

	// ModuleNames are extra modules to import by dotted name.
	ModuleNames []string

	// AdditionalModules are extra already-resolved modules.
	AdditionalModules []AdditionalModule
}
