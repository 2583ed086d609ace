package driver

import (
	"fmt"
	"strconv"
	"strings"

	"fortio.org/safecast"
	"golang.org/x/text/unicode/norm"

	"ember/internal/ast"
	"ember/internal/diag"
	"ember/internal/source"
)

// ScanResult holds the import declarations scanned out of one source file.
type ScanResult struct {
	Path   string
	FileID source.FileID
	Decls  []ast.ImportDecl
	Bag    *diag.Bag
}

// ScanFile loads path into fset and scans its leading import block.
func ScanFile(fset *source.FileSet, path string, maxDiagnostics int) (ScanResult, error) {
	fileID, err := fset.Load(path)
	if err != nil {
		return ScanResult{}, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return ScanContent(fset, fileID, maxDiagnostics), nil
}

// ScanContent scans the leading import block of an already-loaded file.
// Imports must appear before any other declaration; scanning stops at the
// first line that is neither blank, a comment, nor an import.
func ScanContent(fset *source.FileSet, fileID source.FileID, maxDiagnostics int) ScanResult {
	file := fset.Get(fileID)
	bag := diag.NewBag(maxDiagnostics)
	sc := &importScanner{
		fileID:   fileID,
		strings:  source.NewInterner(),
		elems:    ast.NewArena[ast.Element](16),
		reporter: diag.BagReporter{Bag: bag},
	}

	content := file.Content
	offset := 0
	for offset < len(content) {
		lineEnd := offset
		for lineEnd < len(content) && content[lineEnd] != '\n' {
			lineEnd++
		}
		line := string(content[offset:lineEnd])
		base := mustU32(offset)

		trimmed := strings.TrimSpace(line)
		switch {
		case trimmed == "" || strings.HasPrefix(trimmed, "//"):
			// blank line or comment, keep going
		case trimmed[0] == '@' || trimmed == "import" || strings.HasPrefix(trimmed, "import "):
			sc.scanLine(line, base)
		default:
			// first non-import declaration ends the import block
			return ScanResult{Path: file.Path, FileID: fileID, Decls: sc.decls, Bag: bag}
		}
		offset = lineEnd + 1
	}
	return ScanResult{Path: file.Path, FileID: fileID, Decls: sc.decls, Bag: bag}
}

type importScanner struct {
	fileID   source.FileID
	strings  *source.Interner
	elems    *ast.Arena[ast.Element]
	reporter diag.Reporter
	decls    []ast.ImportDecl
}

// lineCursor walks one line, tracking byte offsets relative to the file.
type lineCursor struct {
	text string
	pos  int
	base uint32
	file source.FileID
}

func (c *lineCursor) skipSpaces() {
	for c.pos < len(c.text) && (c.text[c.pos] == ' ' || c.text[c.pos] == '\t') {
		c.pos++
	}
}

func (c *lineCursor) atEnd() bool {
	c.skipSpaces()
	if c.pos >= len(c.text) {
		return true
	}
	// a trailing comment also ends the line
	return strings.HasPrefix(c.text[c.pos:], "//")
}

// word consumes the next run of non-space characters.
func (c *lineCursor) word() (string, source.Span) {
	c.skipSpaces()
	start := c.pos
	for c.pos < len(c.text) && c.text[c.pos] != ' ' && c.text[c.pos] != '\t' {
		c.pos++
	}
	return c.text[start:c.pos], c.span(start, c.pos)
}

func (c *lineCursor) span(start, end int) source.Span {
	return source.Span{
		File:  c.file,
		Start: c.base + mustU32(start),
		End:   c.base + mustU32(end),
	}
}

func mustU32(v int) uint32 {
	u, err := safecast.Conv[uint32](v)
	if err != nil {
		panic(fmt.Errorf("offset overflow: %w", err))
	}
	return u
}

// scanLine parses one import declaration of the form
//
//	[@attr[(args)]]... import [kind] A.B.C
func (sc *importScanner) scanLine(line string, base uint32) {
	cur := &lineCursor{text: line, base: base, file: sc.fileID}

	options, filename, spiGroups, ok := sc.scanAttributes(cur)
	if !ok {
		return
	}

	word, wordSpan := cur.word()
	if word != "import" {
		diag.ReportError(sc.reporter, diag.ScanMissingPath, wordSpan,
			"expected 'import' after import attributes").Emit()
		return
	}
	declStart := wordSpan

	if cur.atEnd() {
		diag.ReportError(sc.reporter, diag.ScanMissingPath, wordSpan,
			"import declaration is missing a module path").Emit()
		return
	}

	kind := ast.KindModule
	pathWord, pathSpan := cur.word()
	if k, isKind := ast.KindFromKeyword(pathWord); isKind {
		if cur.atEnd() {
			diag.ReportError(sc.reporter, diag.ScanMissingPath, pathSpan,
				fmt.Sprintf("expected a path after 'import %s'", pathWord)).Emit()
			return
		}
		kind = k
		pathWord, pathSpan = cur.word()
	}

	if !cur.atEnd() {
		extra, extraSpan := cur.word()
		diag.ReportWarning(sc.reporter, diag.ScanTrailingTokens, extraSpan,
			fmt.Sprintf("unexpected %q after import path", extra)).Emit()
	}

	if options.Contains(ast.ImportExported | ast.ImportImplementationOnly) {
		diag.ReportError(sc.reporter, diag.ScanConflictingAttrs, declStart.Cover(pathSpan),
			"@exported and @implementationOnly cannot be combined").Emit()
		return
	}

	builder, ok := sc.buildPath(pathWord, pathSpan)
	if !ok {
		return
	}
	if kind.Scoped() && builder.Len() < 2 {
		diag.ReportError(sc.reporter, diag.ScanScopedPathShort, pathSpan,
			fmt.Sprintf("'import %s' needs a module name and a declaration name", kind)).Emit()
		return
	}

	sc.decls = append(sc.decls, ast.ImportDecl{
		Elems:     builder.CopyTo(sc.elems),
		Kind:      kind,
		Options:   options,
		Filename:  filename,
		SPIGroups: spiGroups,
		Span:      declStart.Cover(pathSpan),
	})
}

// buildPath splits a dotted path word into spanned, interned segments.
func (sc *importScanner) buildPath(word string, span source.Span) (*ast.PathBuilder, bool) {
	builder := ast.NewPathBuilder()
	segStart := 0
	for i := 0; i <= len(word); i++ {
		if i < len(word) && word[i] != '.' {
			continue
		}
		seg := word[segStart:i]
		if seg == "" {
			diag.ReportError(sc.reporter, diag.ScanBadPathSegment, span,
				fmt.Sprintf("import path %q contains an empty segment", word)).Emit()
			return nil, false
		}
		segSpan := source.Span{
			File:  span.File,
			Start: span.Start + mustU32(segStart),
			End:   span.Start + mustU32(i),
		}
		builder.Push(sc.strings.Intern(norm.NFC.String(seg)), segSpan)
		segStart = i + 1
	}
	return builder, true
}

// scanAttributes consumes the leading @attr tokens of a declaration.
func (sc *importScanner) scanAttributes(cur *lineCursor) (ast.ImportOptions, string, []string, bool) {
	var options ast.ImportOptions
	var filename string
	var spiGroups []string

	for {
		cur.skipSpaces()
		if cur.pos >= len(cur.text) || cur.text[cur.pos] != '@' {
			return options, filename, spiGroups, true
		}

		nameStart := cur.pos
		cur.pos++
		for cur.pos < len(cur.text) && isAttrNameByte(cur.text[cur.pos]) {
			cur.pos++
		}
		name := cur.text[nameStart+1 : cur.pos]

		args, argsSpan, ok := sc.scanAttrArgs(cur, nameStart)
		if !ok {
			return 0, "", nil, false
		}

		switch name {
		case "exported":
			options = options.With(ast.ImportExported)
		case "testable":
			options = options.With(ast.ImportTestable)
		case "implementationOnly":
			options = options.With(ast.ImportImplementationOnly)
		case "private":
			value, found := strings.CutPrefix(strings.TrimSpace(args), "sourceFile:")
			unquoted, err := strconv.Unquote(strings.TrimSpace(value))
			if !found || err != nil {
				diag.ReportError(sc.reporter, diag.ScanBadAttributeArgs, argsSpan,
					"@private expects (sourceFile: \"name\")").Emit()
				return 0, "", nil, false
			}
			options = options.With(ast.ImportPrivate)
			filename = unquoted
		case "spi":
			group := strings.TrimSpace(args)
			if group == "" {
				diag.ReportError(sc.reporter, diag.ScanBadAttributeArgs, argsSpan,
					"@spi expects a group name").Emit()
				return 0, "", nil, false
			}
			options = options.With(ast.ImportSPIAccessControl)
			spiGroups = append(spiGroups, sc.strings.Intern(norm.NFC.String(group)))
		default:
			diag.ReportError(sc.reporter, diag.ScanUnknownAttribute, cur.span(nameStart, cur.pos),
				fmt.Sprintf("unknown import attribute @%s", name)).Emit()
			return 0, "", nil, false
		}
	}
}

// scanAttrArgs consumes an optional parenthesized argument list.
func (sc *importScanner) scanAttrArgs(cur *lineCursor, attrStart int) (string, source.Span, bool) {
	if cur.pos >= len(cur.text) || cur.text[cur.pos] != '(' {
		return "", cur.span(attrStart, cur.pos), true
	}
	open := cur.pos
	rel := strings.IndexByte(cur.text[open:], ')')
	if rel < 0 {
		diag.ReportError(sc.reporter, diag.ScanBadAttributeArgs, cur.span(attrStart, len(cur.text)),
			"unterminated attribute argument list").Emit()
		return "", source.Span{}, false
	}
	cur.pos = open + rel + 1
	return cur.text[open+1 : open+rel], cur.span(open, cur.pos), true
}

func isAttrNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9'
}
