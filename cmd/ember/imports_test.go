package main

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
)

func writeProject(t *testing.T, mainSource string) string {
	t.Helper()
	dir := t.TempDir()
	manifest := "[package]\nname = \"app\"\n"
	if err := os.WriteFile(filepath.Join(dir, "ember.toml"), []byte(manifest), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "main.em"), []byte(mainSource), 0o644); err != nil {
		t.Fatal(err)
	}
	return dir
}

func execImports(t *testing.T, args ...string) error {
	t.Helper()
	root := &cobra.Command{Use: "ember"}
	root.PersistentFlags().String("color", "off", "")
	root.PersistentFlags().Bool("quiet", true, "")
	root.PersistentFlags().Int("max-diagnostics", 100, "")
	root.AddCommand(importsCmd)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs(append([]string{"imports", "--ui", "off", "--format", "json"}, args...))
	return root.Execute()
}

func TestRunImports_CleanProject(t *testing.T) {
	dir := writeProject(t, "import app\n")
	if err := execImports(t, dir); err != nil {
		t.Fatalf("execImports() error = %v", err)
	}
}

func TestRunImports_ErrorsExitWithSentinel(t *testing.T) {
	dir := writeProject(t, "import ghost\n")
	err := execImports(t, dir)
	if !errors.Is(err, errDiagnostics) {
		t.Fatalf("execImports() error = %v, want errDiagnostics", err)
	}
}
