package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"ember/internal/driver"
	"ember/internal/source"
	"ember/internal/ui"
)

type pipelineOutcome struct {
	fset   *source.FileSet
	tables []driver.FileTable
	err    error
}

// runPipelineWithUI drives the scan and resolve stages behind a Bubble Tea
// progress view. Both stages publish into the same event stream, so each
// file walks through "scanning" and "resolving" in the view.
func runPipelineWithUI(ctx context.Context, title, dir string, files []string, maxDiagnostics, jobs int, resolver *driver.Resolver) (*source.FileSet, []driver.FileTable, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan pipelineOutcome, 1)

	go func() {
		sink := driver.ChannelSink{Ch: events}
		fset, results, err := driver.ScanDir(ctx, dir, maxDiagnostics, jobs, sink)
		var tables []driver.FileTable
		if err == nil {
			tables = resolver.ResolveFiles(results, sink)
		}
		outcomeCh <- pipelineOutcome{fset: fset, tables: tables, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.fset, outcome.tables, uiErr
	}
	return outcome.fset, outcome.tables, outcome.err
}
