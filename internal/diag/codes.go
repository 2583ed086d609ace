package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Import scanning
	ScanInfo             Code = 1000
	ScanUnknownAttribute Code = 1001
	ScanBadAttributeArgs Code = 1002
	ScanMissingPath      Code = 1003
	ScanBadPathSegment   Code = 1004
	ScanConflictingAttrs Code = 1005
	ScanScopedPathShort  Code = 1006
	ScanTrailingTokens   Code = 1007

	// Import resolution
	ResolveInfo            Code = 2000
	ResolveUnknownModule   Code = 2001
	ResolveDuplicateImport Code = 2002
)

var codeDescription = map[Code]string{
	UnknownCode:            "Unknown diagnostic",
	ScanInfo:               "Import scan information",
	ScanUnknownAttribute:   "Unknown import attribute",
	ScanBadAttributeArgs:   "Malformed import attribute arguments",
	ScanMissingPath:        "Import declaration is missing a path",
	ScanBadPathSegment:     "Malformed import path segment",
	ScanConflictingAttrs:   "@exported and @implementationOnly are mutually exclusive",
	ScanScopedPathShort:    "Scoped import needs a module name and a declaration name",
	ScanTrailingTokens:     "Unexpected tokens after import path",
	ResolveInfo:            "Import resolution information",
	ResolveUnknownModule:   "Cannot resolve module path",
	ResolveDuplicateImport: "Module already imported",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("IMP%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("RES%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
