package modules

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ManifestName is the file name of an ember project manifest.
const ManifestName = "ember.toml"

var (
	// ErrPackageSectionMissing indicates that [package] is missing in a manifest.
	ErrPackageSectionMissing = errors.New("missing [package]")
	// ErrPackageNameMissing indicates that [package].name is missing or blank.
	ErrPackageNameMissing = errors.New("missing [package].name")
)

// ModuleSpec describes a dependency entry in [modules]. Submodules lists
// dotted chains below the module's own name ("Bar", "Bar.Baz").
type ModuleSpec struct {
	Source     string   `toml:"source"`
	Path       string   `toml:"path"`
	Submodules []string `toml:"submodules"`
}

// AdditionalSpec names an already-resolved module to import implicitly into
// every file, optionally re-exported.
type AdditionalSpec struct {
	Module   string `toml:"module"`
	Exported bool   `toml:"exported"`
}

// ImplicitSection configures the imports injected into every file of the
// package: the stdlib tier, extra modules by name, pre-resolved additional
// modules, the foreign underlying half, and the bridging header.
type ImplicitSection struct {
	Stdlib         string           `toml:"stdlib"` // none|core|std (default std)
	Underlying     bool             `toml:"underlying"`
	BridgingHeader string           `toml:"bridging_header"`
	Modules        []string         `toml:"modules"`
	Additional     []AdditionalSpec `toml:"additional"`
}

// PackageSection is the [package] section of ember.toml.
type PackageSection struct {
	Name string `toml:"name"`
	Root string `toml:"root"`
}

// Manifest is a parsed ember.toml.
type Manifest struct {
	Package  PackageSection        `toml:"package"`
	Modules  map[string]ModuleSpec `toml:"modules"`
	Implicit ImplicitSection       `toml:"implicit"`
}

// LoadManifest parses an ember.toml file. [package].name is required.
func LoadManifest(path string) (Manifest, error) {
	var man Manifest
	meta, err := toml.DecodeFile(path, &man)
	if err != nil {
		return Manifest{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if !meta.IsDefined("package") {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageSectionMissing)
	}
	if man.Package.Name == "" {
		return Manifest{}, fmt.Errorf("%s: %w", path, ErrPackageNameMissing)
	}
	if man.Modules == nil {
		man.Modules = map[string]ModuleSpec{}
	}
	if !meta.IsDefined("implicit", "stdlib") {
		man.Implicit.Stdlib = "std"
	}
	return man, nil
}

// FindManifest walks up from startDir looking for ember.toml.
func FindManifest(startDir string) (string, bool, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := filepath.Join(dir, ManifestName)
		info, err := os.Stat(candidate)
		if err == nil && !info.IsDir() {
			return candidate, true, nil
		}
		if err != nil && !os.IsNotExist(err) {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// BuildRegistry registers every module the manifest makes visible: the
// stdlib tiers, the package's own module, and each [modules] dependency with
// its declared submodule chains.
func (man Manifest) BuildRegistry() (*Registry, error) {
	reg := NewRegistry()
	reg.Register("core")
	reg.Register("std")
	reg.Register(man.Package.Name)

	for name, spec := range man.Modules {
		reg.Register(name)
		for _, chain := range spec.Submodules {
			if _, err := reg.RegisterChain(name + "." + chain); err != nil {
				return nil, fmt.Errorf("module %q: %w", name, err)
			}
		}
	}
	return reg, nil
}
