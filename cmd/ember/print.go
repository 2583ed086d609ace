package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"ember/internal/diag"
	"ember/internal/driver"
	"ember/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	infoColor    = color.New(color.FgCyan)
	noteColor    = color.New(color.FgBlue)
	moduleColor  = color.New(color.FgGreen)
)

func severityColor(sev diag.Severity) *color.Color {
	switch sev {
	case diag.SevError:
		return errorColor
	case diag.SevWarning:
		return warningColor
	default:
		return infoColor
	}
}

func severityLabel(sev diag.Severity) string {
	return strings.ToLower(sev.String())
}

// printDiagnostics writes one "path:line:col: severity[CODE]: message" line
// per diagnostic, notes indented below.
func printDiagnostics(out io.Writer, bag *diag.Bag, fset *source.FileSet, useColor bool) {
	color.NoColor = color.NoColor || !useColor
	for _, d := range bag.Items() {
		start, _ := fset.Resolve(d.Primary)
		file := fset.Get(d.Primary.File)
		label := severityColor(d.Severity).Sprintf("%s[%s]", severityLabel(d.Severity), d.Code.ID())
		fmt.Fprintf(out, "%s:%d:%d: %s: %s\n", file.Path, start.Line, start.Col, label, d.Message)
		for _, note := range d.Notes {
			noteStart, _ := fset.Resolve(note.Span)
			noteFile := fset.Get(note.Span.File)
			fmt.Fprintf(out, "  %s: %s (%s:%d:%d)\n",
				noteColor.Sprint("note"), note.Msg, noteFile.Path, noteStart.Line, noteStart.Col)
		}
	}
}

// printTable writes a file's resolved import records, one per line.
func printTable(out io.Writer, ft *driver.FileTable, useColor bool) {
	color.NoColor = color.NoColor || !useColor
	fmt.Fprintf(out, "== %s ==\n", ft.Path)
	for _, rec := range ft.Table.Records {
		name := rec.Module.Module.FullName()
		if !rec.Module.Access.Empty() {
			name += "." + rec.Module.Access.Front().Name
		}
		line := "  " + moduleColor.Sprint(name)
		if labels := rec.Options.Strings(); len(labels) != 0 {
			line += " [" + strings.Join(labels, ", ") + "]"
		}
		if rec.Filename != "" {
			line += fmt.Sprintf(" (source file %s)", rec.Filename)
		}
		if len(rec.SPIGroups) != 0 {
			line += " (spi: " + strings.Join(rec.SPIGroups, ", ") + ")"
		}
		fmt.Fprintln(out, line)
	}
}
