package driver

import (
	"context"
	"io/fs"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"golang.org/x/sync/errgroup"

	"ember/internal/source"
)

// ListSourceFiles returns the sorted list of all *.em files under dir.
func ListSourceFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(path, ".em") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	// deterministic order
	sort.Strings(files)
	return files, nil
}

// ScanDir scans the import blocks of every *.em file under dir in parallel.
// Files are loaded into one FileSet up front; the per-file scans then run
// concurrently, each with its own interner and element storage.
func ScanDir(ctx context.Context, dir string, maxDiagnostics, jobs int, sink ProgressSink) (*source.FileSet, []ScanResult, error) {
	if sink == nil {
		sink = NopSink{}
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	files, err := ListSourceFiles(dir)
	if err != nil {
		return nil, nil, err
	}

	fset := source.NewFileSet()
	fileIDs := make([]source.FileID, len(files))
	for i, path := range files {
		sink.Publish(Event{File: path, Stage: StageScan, Status: StatusQueued})
		id, err := fset.Load(path)
		if err != nil {
			sink.Publish(Event{File: path, Stage: StageScan, Status: StatusError})
			return nil, nil, err
		}
		fileIDs[i] = id
	}

	results := make([]ScanResult, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)
	for i := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sink.Publish(Event{File: files[i], Stage: StageScan, Status: StatusWorking})
			results[i] = ScanContent(fset, fileIDs[i], maxDiagnostics)
			status := StatusDone
			if results[i].Bag.HasErrors() {
				status = StatusError
			}
			sink.Publish(Event{File: files[i], Stage: StageScan, Status: status})
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return fset, results, nil
}
