// Package bundle computes the distributable shape of a build: a flat
// shared library on most platforms, or a merged multi-architecture
// framework/xcframework with an embedded manifest on Apple platforms.
package bundle

import (
	"fmt"

	"github.com/gdxbuild/gdxbuild/internal/target"
)

// Plan is the bundling decision for one build request. Exactly one of
// Flat and Merged is set.
type Plan struct {
	// Flat is the artifact filename for single-binary platforms.
	Flat string

	// Merged describes the multi-arch bundle for macOS and iOS.
	Merged *Merged
}

// Merged describes a multi-architecture Apple bundle. Every slice is a
// flat shared library built with the same filename (Apple names carry no
// architecture token); the builder keeps slices apart in per-arch
// directories until the merge step.
type Merged struct {
	// Arches are the slices to build, in merge order.
	Arches []target.Arch

	// SliceName is the per-arch flat library filename.
	SliceName string

	// Name is the merged bundle directory name (.framework or .xcframework).
	Name string

	// Manifest is the Info.plist content embedded in the bundle.
	Manifest Manifest
}

// macOS universal builds merge exactly this pair, in this order.
var macUniversalArches = []target.Arch{target.Arm64, target.X86_64}

// PlanFor computes the bundle plan for base and r. The platform alone
// decides the shape: macOS and iOS are always merged, even when a single
// architecture is requested; everything else is always flat.
func PlanFor(base string, r target.Request) (Plan, error) {
	if err := r.Validate(); err != nil {
		return Plan{}, err
	}

	switch r.Platform {
	case target.MacOS, target.IOS:
		arches, err := sliceArches(r)
		if err != nil {
			return Plan{}, err
		}
		stem := r.Platform.LibPrefix() + base
		for _, tok := range target.SuffixTokens(r) {
			stem += tok
		}
		ext := ".framework"
		if r.Platform == target.IOS {
			ext = ".xcframework"
		}
		return Plan{Merged: &Merged{
			Arches:    arches,
			SliceName: target.ArtifactName(base, r),
			Name:      stem + ext,
			Manifest:  manifestFor(base, stem, r),
		}}, nil
	default:
		return Plan{Flat: target.ArtifactName(base, r)}, nil
	}
}

func sliceArches(r target.Request) ([]target.Arch, error) {
	if r.Arch != target.Universal {
		return []target.Arch{r.Arch}, nil
	}
	switch r.Platform {
	case target.MacOS:
		return macUniversalArches, nil
	case target.IOS:
		return []target.Arch{target.Arm64}, nil
	}
	return nil, fmt.Errorf("universal builds are not supported on %s", r.Platform)
}
