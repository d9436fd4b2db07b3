// Package builder runs one build request to completion: dependency
// check, source enumeration, per-architecture compiles, the merge
// barrier for Apple bundles, and the manifest write.
package builder

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gdxbuild/gdxbuild/internal/bundle"
	"github.com/gdxbuild/gdxbuild/internal/godotcpp"
	"github.com/gdxbuild/gdxbuild/internal/project"
	"github.com/gdxbuild/gdxbuild/internal/sources"
	"github.com/gdxbuild/gdxbuild/internal/target"
)

// StepError reports a failed build step. Build failures are terminal for
// the invocation; nothing here retries.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string { return fmt.Sprintf("build step %s: %v", e.Step, e.Err) }
func (e *StepError) Unwrap() error { return e.Err }

// Options configures a Builder.
type Options struct {
	// Root is the plugin project root. Defaults to the current directory.
	Root string

	// OutputDir is the staging directory artifacts are written to before
	// installation. Defaults to {Root}/bin.
	OutputDir string

	// Toolchain overrides the external tool invocations; nil selects the
	// real SCons/lipo/xcodebuild chain.
	Toolchain Toolchain

	// Jobs is the scons -j parallelism. Zero leaves it to scons.
	Jobs int

	// Quiet discards toolchain output instead of streaming it.
	Quiet bool
}

// Builder executes build requests for one project.
type Builder struct {
	cfg    *project.Config
	root   string
	outDir string
	tc     Toolchain
}

// Result describes a finished build.
type Result struct {
	Request target.Request
	Plan    bundle.Plan

	// ArtifactPath is the flat library or bundle directory in staging,
	// ready for the installer.
	ArtifactPath string

	// Sources are the enumerated plugin sources, relative to the root.
	Sources []string
}

// New returns a Builder for cfg.
func New(cfg *project.Config, opts Options) *Builder {
	root := opts.Root
	if root == "" {
		root = "."
	}
	outDir := opts.OutputDir
	if outDir == "" {
		outDir = filepath.Join(root, "bin")
	}
	tc := opts.Toolchain
	if tc == nil {
		tc = newSconsToolchain(root, cfg, opts.Jobs, opts.Quiet)
	}
	return &Builder{cfg: cfg, root: root, outDir: outDir, tc: tc}
}

// Build runs the request to completion and returns the staged artifact.
// The godot-cpp check runs before anything else; a missing dependency
// aborts the invocation with no partial build.
func (b *Builder) Build(ctx context.Context, r target.Request) (*Result, error) {
	if err := r.Validate(); err != nil {
		return nil, err
	}
	if err := godotcpp.Check(filepath.Join(b.root, b.cfg.GodotCPPDir)); err != nil {
		return nil, err
	}

	srcs, err := sources.Discover(b.root, b.cfg.SourceDirs, b.cfg.SourceExts)
	if err != nil {
		return nil, err
	}
	if len(srcs) == 0 {
		return nil, fmt.Errorf("no source files found under %v", b.cfg.SourceDirs)
	}

	plan, err := bundle.PlanFor(b.cfg.Name, r)
	if err != nil {
		return nil, err
	}

	res := &Result{Request: r, Plan: plan, Sources: srcs}
	platformDir := filepath.Join(b.outDir, string(r.Platform))

	if plan.Merged == nil {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if err := os.MkdirAll(platformDir, 0755); err != nil {
			return nil, err
		}
		if err := b.tc.Compile(r, platformDir, plan.Flat); err != nil {
			return nil, &StepError{Step: "compile " + plan.Flat, Err: err}
		}
		res.ArtifactPath = filepath.Join(platformDir, plan.Flat)
		return res, nil
	}

	path, err := b.buildMerged(ctx, r, plan.Merged, platformDir)
	if err != nil {
		return nil, err
	}
	res.ArtifactPath = path
	return res, nil
}

// buildMerged compiles one slice per architecture into its own
// directory, then merges. The merge is a barrier: a missing slice binary
// aborts it.
func (b *Builder) buildMerged(ctx context.Context, r target.Request, m *bundle.Merged, platformDir string) (string, error) {
	var slices []string
	for _, arch := range m.Arches {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		sliceReq := r
		sliceReq.Arch = arch
		sliceDir := filepath.Join(platformDir, string(arch))
		if err := os.MkdirAll(sliceDir, 0755); err != nil {
			return "", err
		}
		if err := b.tc.Compile(sliceReq, sliceDir, m.SliceName); err != nil {
			return "", &StepError{Step: fmt.Sprintf("compile %s slice %s", m.SliceName, arch), Err: err}
		}
		slices = append(slices, filepath.Join(sliceDir, m.SliceName))
	}

	for _, slice := range slices {
		if _, err := os.Stat(slice); err != nil {
			return "", &StepError{Step: "merge " + m.Name, Err: fmt.Errorf("missing per-architecture binary %s", slice)}
		}
	}

	bundleDir := filepath.Join(platformDir, m.Name)
	if err := os.RemoveAll(bundleDir); err != nil {
		return "", err
	}

	switch r.Platform {
	case target.MacOS:
		if err := os.MkdirAll(bundleDir, 0755); err != nil {
			return "", err
		}
		merged := filepath.Join(bundleDir, strings.TrimSuffix(m.Name, ".framework"))
		if err := b.tc.MergeFat(merged, slices); err != nil {
			return "", &StepError{Step: "merge " + m.Name, Err: err}
		}
	case target.IOS:
		if err := b.tc.MergeXCFramework(bundleDir, slices); err != nil {
			return "", &StepError{Step: "merge " + m.Name, Err: err}
		}
	default:
		return "", fmt.Errorf("merged plan on unexpected platform %s", r.Platform)
	}

	if err := writeManifest(bundleDir, m.Manifest); err != nil {
		return "", &StepError{Step: "manifest " + m.Name, Err: err}
	}
	return bundleDir, nil
}

// writeManifest stores the Info.plist under Resources inside the bundle.
// For xcframeworks this sits beside the top-level index xcodebuild wrote.
func writeManifest(bundleDir string, m bundle.Manifest) error {
	data, err := m.Plist()
	if err != nil {
		return err
	}
	resDir := filepath.Join(bundleDir, "Resources")
	if err := os.MkdirAll(resDir, 0755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(resDir, "Info.plist"), data, 0644)
}

// Clean removes staged artifacts and runs the toolchain's own clean.
func (b *Builder) Clean() error {
	if err := b.tc.Clean(); err != nil {
		return err
	}
	return os.RemoveAll(b.outDir)
}
