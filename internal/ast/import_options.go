package ast

// ImportOptions encode the attributes of an import declaration.
type ImportOptions uint8

const (
	// ImportExported re-exports the imported module to anyone importing
	// the parent module.
	ImportExported ImportOptions = 1 << iota
	// ImportTestable grants access to testable declarations in the
	// imported module.
	ImportTestable
	// ImportPrivate grants one source file access to private declarations
	// in the imported module.
	ImportPrivate
	// ImportImplementationOnly marks the imported module as an
	// implementation detail of this file. Mutually exclusive with
	// ImportExported.
	ImportImplementationOnly
	// ImportSPIAccessControl grants access to the named SPI groups.
	ImportSPIAccessControl
)

// ImportReserved marks synthetic option values. It is never produced by the
// scanner; values carrying it bypass the Exported/ImplementationOnly
// exclusion check.
const ImportReserved ImportOptions = 0x80

// With returns the options with flags added.
func (o ImportOptions) With(flags ImportOptions) ImportOptions {
	return o | flags
}

// Without returns the options with flags removed.
func (o ImportOptions) Without(flags ImportOptions) ImportOptions {
	return o &^ flags
}

// Union returns the combination of both option sets.
func (o ImportOptions) Union(other ImportOptions) ImportOptions {
	return o | other
}

// Intersect returns the options present in both sets.
func (o ImportOptions) Intersect(other ImportOptions) ImportOptions {
	return o & other
}

// Contains reports whether every flag in flags is set.
func (o ImportOptions) Contains(flags ImportOptions) bool {
	return o&flags == flags
}

// ContainsAny reports whether at least one flag in flags is set.
func (o ImportOptions) ContainsAny(flags ImportOptions) bool {
	return o&flags != 0
}

// Strings returns a slice of textual flag labels.
func (o ImportOptions) Strings() []string {
	if o == 0 {
		return nil
	}
	labels := make([]string, 0, 5)
	if o&ImportExported != 0 {
		labels = append(labels, "exported")
	}
	if o&ImportTestable != 0 {
		labels = append(labels, "testable")
	}
	if o&ImportPrivate != 0 {
		labels = append(labels, "private")
	}
	if o&ImportImplementationOnly != 0 {
		labels = append(labels, "implementation-only")
	}
	if o&ImportSPIAccessControl != 0 {
		labels = append(labels, "spi")
	}
	if o&ImportReserved != 0 {
		labels = append(labels, "reserved")
	}
	return labels
}
