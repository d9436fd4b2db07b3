// Package gdext generates the .gdextension descriptor the host engine
// uses to locate the plugin's binaries.
package gdext

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdxbuild/gdxbuild/internal/bundle"
	"github.com/gdxbuild/gdxbuild/internal/project"
	"github.com/gdxbuild/gdxbuild/internal/target"
)

// Descriptor iteration order; fixed so regenerating the file never
// produces spurious diffs.
var platforms = []target.Platform{
	target.Linux, target.Windows, target.MacOS,
	target.IOS, target.Android, target.Web,
}

var profiles = []target.Profile{target.Debug, target.Release}

// Generate renders the .gdextension descriptor for the project. Library
// paths are derived from the same BinDir the installer copies into, so a
// generated entry always points at where the artifact actually lands.
func Generate(cfg *project.Config, precision target.Precision, threads bool) (string, error) {
	var b strings.Builder
	b.WriteString("[configuration]\n\n")
	fmt.Fprintf(&b, "entry_symbol = %q\n", cfg.Name+"_library_init")
	fmt.Fprintf(&b, "compatibility_minimum = %q\n", cfg.GodotVersion)
	b.WriteString("\n[libraries]\n\n")

	for _, p := range platforms {
		for _, profile := range profiles {
			for _, arch := range entryArches(p) {
				r := target.Request{
					Platform:  p,
					Arch:      arch,
					Profile:   profile,
					Precision: precision,
					Threads:   threads,
				}
				plan, err := bundle.PlanFor(cfg.Name, r)
				if err != nil {
					return "", err
				}
				name := plan.Flat
				if plan.Merged != nil {
					name = plan.Merged.Name
				}
				resPath, err := resPath(cfg, p, name)
				if err != nil {
					return "", err
				}
				fmt.Fprintf(&b, "%s = %q\n", featureTag(r), resPath)
			}
		}
	}
	return b.String(), nil
}

// Write renders the descriptor and stores it at its canonical location
// inside the test project, returning the written path.
func Write(cfg *project.Config, precision target.Precision, threads bool) (string, error) {
	text, err := Generate(cfg, precision, threads)
	if err != nil {
		return "", err
	}
	dir := filepath.Join(cfg.TestProjectDir, cfg.Name)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	path := filepath.Join(dir, cfg.Name+".gdextension")
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// entryArches returns the architectures that get their own descriptor
// entry. Apple platforms get a single universal entry because the merged
// bundle covers every slice.
func entryArches(p target.Platform) []target.Arch {
	switch p {
	case target.MacOS, target.IOS:
		return []target.Arch{target.Universal}
	default:
		return target.Allowed(p)
	}
}

// featureTag builds the engine feature tag for an entry, mirroring the
// artifact suffix token order.
func featureTag(r target.Request) string {
	tag := string(r.Platform) + "." + string(r.Profile)
	switch r.Platform {
	case target.MacOS, target.IOS:
		// no arch component; the bundle is multi-arch
	case target.Web:
		tag += "." + string(r.Arch)
		if r.Threads {
			tag += ".threads"
		} else {
			tag += ".nothreads"
		}
	default:
		tag += "." + string(r.Arch)
	}
	if r.Precision == target.Double {
		tag += ".double"
	}
	return tag
}

// resPath converts the installer destination into a res:// path relative
// to the test project root.
func resPath(cfg *project.Config, p target.Platform, name string) (string, error) {
	full := filepath.Join(cfg.BinDir(p), name)
	rel, err := filepath.Rel(cfg.TestProjectDir, full)
	if err != nil {
		return "", err
	}
	return "res://" + filepath.ToSlash(rel), nil
}
