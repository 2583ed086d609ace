package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"ember/internal/driver"
	"ember/internal/modules"
	"ember/internal/source"
)

// errDiagnostics signals a non-zero exit after diagnostics were already
// printed; cobra is silenced before it is returned.
var errDiagnostics = errors.New("source files have errors")

var importsCmd = &cobra.Command{
	Use:   "imports [flags] <file.em|directory>",
	Short: "Resolve and print the import tables of ember source files",
	Long:  `Scan the leading import block of each source file, resolve every declaration against the project manifest, and print the per-file import tables`,
	Args:  cobra.ExactArgs(1),
	RunE:  runImports,
}

func init() {
	importsCmd.Flags().String("format", "pretty", "output format (pretty|json)")
	importsCmd.Flags().String("ui", "auto", "interactive progress view (auto|on|off)")
	importsCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	importsCmd.Flags().Bool("disk-cache", false, "persist resolved import tables to the disk cache")
}

type recordPayload struct {
	Module    string   `json:"module"`
	Access    string   `json:"access,omitempty"`
	Options   []string `json:"options,omitempty"`
	Filename  string   `json:"filename,omitempty"`
	SPIGroups []string `json:"spi_groups,omitempty"`
}

type diagPayload struct {
	ID       string `json:"id"`
	Severity string `json:"severity"`
	Message  string `json:"message"`
	Line     uint32 `json:"line"`
	Col      uint32 `json:"col"`
}

type filePayload struct {
	Records     []recordPayload `json:"records"`
	Diagnostics []diagPayload   `json:"diagnostics,omitempty"`
}

func runImports(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	switch format {
	case "pretty", "json":
		// supported
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	mode, err := readUIMode(uiFlag)
	if err != nil {
		return err
	}

	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	useDiskCache, err := cmd.Flags().GetBool("disk-cache")
	if err != nil {
		return fmt.Errorf("failed to get disk-cache flag: %w", err)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return fmt.Errorf("failed to get max-diagnostics flag: %w", err)
	}

	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return fmt.Errorf("failed to get color flag: %w", err)
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	startDir := path
	if !st.IsDir() {
		startDir = filepath.Dir(path)
	}
	man, err := loadProjectManifest(startDir)
	if err != nil {
		return err
	}
	reg, err := man.BuildRegistry()
	if err != nil {
		return err
	}
	info, err := driver.BuildImplicitInfo(man, reg)
	if err != nil {
		return err
	}
	resolver, err := driver.NewResolver(reg, man.Package.Name, info)
	if err != nil {
		return err
	}

	var (
		fset   *source.FileSet
		tables []driver.FileTable
	)
	if st.IsDir() {
		if shouldUseTUI(mode) && format == "pretty" {
			files, listErr := driver.ListSourceFiles(path)
			if listErr != nil {
				return listErr
			}
			fset, tables, err = runPipelineWithUI(cmd.Context(), "resolving imports", path, files, maxDiagnostics, jobs, resolver)
		} else {
			var results []driver.ScanResult
			fset, results, err = driver.ScanDir(cmd.Context(), path, maxDiagnostics, jobs, driver.NopSink{})
			if err == nil {
				tables = resolver.ResolveFiles(results, driver.NopSink{})
			}
		}
		if err != nil {
			return err
		}
	} else {
		fset = source.NewFileSet()
		res, scanErr := driver.ScanFile(fset, path, maxDiagnostics)
		if scanErr != nil {
			return scanErr
		}
		tables = resolver.ResolveFiles([]driver.ScanResult{res}, driver.NopSink{})
	}

	if useDiskCache {
		cache, cacheErr := driver.OpenDiskCache("ember")
		if cacheErr != nil {
			return cacheErr
		}
		for i := range tables {
			content := fset.Get(tables[i].FileID).Content
			key := driver.HashContent(tables[i].Path, content)
			if putErr := cache.Put(key, driver.EncodeTable(&tables[i])); putErr != nil {
				return putErr
			}
		}
	}

	exit := 0
	for i := range tables {
		if tables[i].Bag.HasErrors() {
			exit = 1
			break
		}
	}

	switch format {
	case "pretty":
		for i := range tables {
			if i > 0 {
				fmt.Fprintln(os.Stdout)
			}
			printDiagnostics(os.Stdout, tables[i].Bag, fset, useColor)
			if !quiet {
				printTable(os.Stdout, &tables[i], useColor)
			}
		}
	case "json":
		output := make(map[string]filePayload, len(tables))
		for i := range tables {
			output[tables[i].Path] = buildFilePayload(&tables[i], fset)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("failed to encode import tables: %w", err)
		}
	}

	if exit != 0 {
		// Suppress cobra usage output, diagnostics are already printed
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return errDiagnostics
	}
	return nil
}

// loadProjectManifest finds ember.toml above dir, falling back to a bare
// manifest named after the directory when the project has none.
func loadProjectManifest(dir string) (modules.Manifest, error) {
	manifestPath, found, err := modules.FindManifest(dir)
	if err != nil {
		return modules.Manifest{}, err
	}
	if found {
		return modules.LoadManifest(manifestPath)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return modules.Manifest{}, err
	}
	return modules.Manifest{
		Package:  modules.PackageSection{Name: filepath.Base(abs)},
		Modules:  map[string]modules.ModuleSpec{},
		Implicit: modules.ImplicitSection{Stdlib: "std"},
	}, nil
}

func buildFilePayload(ft *driver.FileTable, fset *source.FileSet) filePayload {
	payload := filePayload{
		Records: make([]recordPayload, 0, len(ft.Table.Records)),
	}
	for _, rec := range ft.Table.Records {
		rp := recordPayload{
			Module:    rec.Module.Module.FullName(),
			Options:   rec.Options.Strings(),
			Filename:  rec.Filename,
			SPIGroups: rec.SPIGroups,
		}
		if !rec.Module.Access.Empty() {
			rp.Access = rec.Module.Access.Front().Name
		}
		payload.Records = append(payload.Records, rp)
	}
	for _, d := range ft.Bag.Items() {
		start, _ := fset.Resolve(d.Primary)
		payload.Diagnostics = append(payload.Diagnostics, diagPayload{
			ID:       d.Code.ID(),
			Severity: severityLabel(d.Severity),
			Message:  d.Message,
			Line:     start.Line,
			Col:      start.Col,
		})
	}
	return payload
}
