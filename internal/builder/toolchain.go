package builder

import (
	"io"
	"strings"

	"github.com/gdxbuild/gdxbuild/internal/project"
	"github.com/gdxbuild/gdxbuild/internal/target"
	"github.com/gdxbuild/gdxbuild/x/lipo"
	"github.com/gdxbuild/gdxbuild/x/scons"
	"github.com/gdxbuild/gdxbuild/x/xcodebuild"
)

// Toolchain abstracts the external tools a build invokes.
type Toolchain interface {
	// Compile produces the flat shared library name in outDir for req.
	Compile(req target.Request, outDir, name string) error

	// MergeFat merges Mach-O slices into a single binary at output.
	MergeFat(output string, slices []string) error

	// MergeXCFramework assembles an xcframework at output from slices.
	MergeXCFramework(output string, slices []string) error

	// Clean removes the toolchain's intermediate build products.
	Clean() error
}

// sconsToolchain is the production chain: scons for compiles, lipo and
// xcodebuild for Apple merges.
type sconsToolchain struct {
	root  string
	cfg   *project.Config
	jobs  int
	quiet bool
}

func newSconsToolchain(root string, cfg *project.Config, jobs int, quiet bool) Toolchain {
	return &sconsToolchain{root: root, cfg: cfg, jobs: jobs, quiet: quiet}
}

// templateTarget maps the build profile onto godot-cpp's scons target.
func templateTarget(p target.Profile) string {
	return "template_" + string(p)
}

func (t *sconsToolchain) scons() *scons.SCons {
	s := scons.New(t.root)
	if t.jobs > 0 {
		s.Jobs(t.jobs)
	}
	if t.quiet {
		s.Stdout(io.Discard)
		s.Stderr(io.Discard)
	}
	return s
}

func (t *sconsToolchain) Compile(req target.Request, outDir, name string) error {
	s := t.scons()
	s.Option("platform", string(req.Platform))
	s.Option("target", templateTarget(req.Profile))
	s.Option("arch", string(req.Arch))
	s.Option("precision", string(req.Precision))
	if req.Platform == target.Web {
		s.OptionBool("threads", req.Threads)
	}
	s.Option("build_dir", outDir)
	s.Option("lib_name", name)
	s.Option("source_dirs", strings.Join(t.cfg.SourceDirs, ","))
	s.Option("include_dirs", strings.Join(t.cfg.IncludeDirs, ","))
	if t.cfg.BuildProfile != "full" {
		s.Option("build_profile", "build_profile.json")
	}
	return s.Build()
}

func (t *sconsToolchain) MergeFat(output string, slices []string) error {
	l := lipo.New()
	if t.quiet {
		l.Stdout(io.Discard)
		l.Stderr(io.Discard)
	}
	return l.Create(output, slices...)
}

func (t *sconsToolchain) MergeXCFramework(output string, slices []string) error {
	x := xcodebuild.New()
	if t.quiet {
		x.Stdout(io.Discard)
		x.Stderr(io.Discard)
	}
	return x.CreateXCFramework(output, slices...)
}

func (t *sconsToolchain) Clean() error {
	return t.scons().Clean()
}
