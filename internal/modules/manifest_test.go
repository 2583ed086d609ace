package modules

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeManifest(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, ManifestName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write manifest: %v", err)
	}
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, `
[package]
name = "app"
root = "src"

[modules.graphics]
source = "path"
path = "../graphics"
submodules = ["shapes", "shapes.curves"]

[implicit]
stdlib = "core"
underlying = true
bridging_header = "shim/app.h"
modules = ["runtime"]

[[implicit.additional]]
module = "debugkit"
exported = true
`)

	man, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if man.Package.Name != "app" || man.Package.Root != "src" {
		t.Errorf("package section = %+v", man.Package)
	}
	spec, ok := man.Modules["graphics"]
	if !ok || spec.Path != "../graphics" || len(spec.Submodules) != 2 {
		t.Errorf("modules section = %+v", man.Modules)
	}
	imp := man.Implicit
	if imp.Stdlib != "core" || !imp.Underlying || imp.BridgingHeader != "shim/app.h" {
		t.Errorf("implicit section = %+v", imp)
	}
	if len(imp.Modules) != 1 || imp.Modules[0] != "runtime" {
		t.Errorf("implicit modules = %v", imp.Modules)
	}
	if len(imp.Additional) != 1 || imp.Additional[0].Module != "debugkit" || !imp.Additional[0].Exported {
		t.Errorf("additional = %+v", imp.Additional)
	}
}

func TestLoadManifest_Defaults(t *testing.T) {
	dir := t.TempDir()
	path := writeManifest(t, dir, "[package]\nname = \"app\"\n")

	man, err := LoadManifest(path)
	if err != nil {
		t.Fatalf("LoadManifest: %v", err)
	}
	if man.Implicit.Stdlib != "std" {
		t.Errorf("default stdlib tier = %q, want std", man.Implicit.Stdlib)
	}
	if man.Modules == nil {
		t.Errorf("Modules map not defaulted")
	}
}

func TestLoadManifest_Errors(t *testing.T) {
	dir := t.TempDir()

	path := writeManifest(t, dir, "[modules]\n")
	if _, err := LoadManifest(path); !errors.Is(err, ErrPackageSectionMissing) {
		t.Errorf("missing [package]: err = %v", err)
	}

	path = writeManifest(t, dir, "[package]\nroot = \"src\"\n")
	if _, err := LoadManifest(path); !errors.Is(err, ErrPackageNameMissing) {
		t.Errorf("missing name: err = %v", err)
	}
}

func TestFindManifest(t *testing.T) {
	root := t.TempDir()
	writeManifest(t, root, "[package]\nname = \"app\"\n")
	nested := filepath.Join(root, "src", "deep")
	if err := os.MkdirAll(nested, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}

	found, ok, err := FindManifest(nested)
	if err != nil || !ok {
		t.Fatalf("FindManifest = (%q, %v, %v)", found, ok, err)
	}
	if filepath.Base(found) != ManifestName {
		t.Errorf("found %q", found)
	}
}

func TestManifest_BuildRegistry(t *testing.T) {
	man := Manifest{
		Package: PackageSection{Name: "app"},
		Modules: map[string]ModuleSpec{
			"graphics": {Submodules: []string{"shapes"}},
		},
	}
	reg, err := man.BuildRegistry()
	if err != nil {
		t.Fatalf("BuildRegistry: %v", err)
	}
	for _, name := range []string{"core", "std", "app", "graphics"} {
		if _, ok := reg.Lookup(name); !ok {
			t.Errorf("module %q not registered", name)
		}
	}
	if m, ok := reg.Resolve(modPath("graphics", "shapes")); !ok || m.FullName() != "graphics.shapes" {
		t.Errorf("submodule chain not registered")
	}
}
