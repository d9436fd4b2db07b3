package builder

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gdxbuild/gdxbuild/internal/godotcpp"
	"github.com/gdxbuild/gdxbuild/internal/project"
	"github.com/gdxbuild/gdxbuild/internal/target"
)

// testProject creates a minimal plugin project: one source file and a
// populated godot-cpp directory.
func testProject(t *testing.T) (string, *project.Config) {
	t.Helper()
	root := t.TempDir()
	cfg := project.Default()

	if err := os.MkdirAll(filepath.Join(root, "src"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "src", "register_types.cpp"), []byte("// x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(filepath.Join(root, "godot-cpp"), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(root, "godot-cpp", "SConstruct"), []byte("# x\n"), 0644); err != nil {
		t.Fatal(err)
	}
	return root, &cfg
}

func TestBuildFlat(t *testing.T) {
	root, cfg := testProject(t)
	tc := &mockToolchain{}
	b := New(cfg, Options{Root: root, Toolchain: tc})

	r := target.Request{Platform: target.Linux, Arch: target.X86_64, Profile: target.Release, Precision: target.Single}
	res, err := b.Build(context.Background(), r)
	if err != nil {
		t.Fatal(err)
	}

	want := filepath.Join(root, "bin", "linux", "libgdexample.release.x86_64.so")
	if res.ArtifactPath != want {
		t.Errorf("ArtifactPath = %q, want %q", res.ArtifactPath, want)
	}
	if _, err := os.Stat(res.ArtifactPath); err != nil {
		t.Errorf("artifact not written: %v", err)
	}
	if len(tc.compiled) != 1 || tc.compiled[0] != r {
		t.Errorf("compiled = %v, want one compile of %v", tc.compiled, r)
	}
	if len(res.Sources) != 1 {
		t.Errorf("Sources = %v, want one file", res.Sources)
	}
}

func TestBuildMacUniversal(t *testing.T) {
	root, cfg := testProject(t)
	tc := &mockToolchain{}
	b := New(cfg, Options{Root: root, Toolchain: tc})

	r := target.Request{Platform: target.MacOS, Arch: target.Universal, Profile: target.Release, Precision: target.Single}
	res, err := b.Build(context.Background(), r)
	if err != nil {
		t.Fatal(err)
	}

	// both slices compiled, in plan order
	if len(tc.compiled) != 2 {
		t.Fatalf("compiled %d slices, want 2", len(tc.compiled))
	}
	if tc.compiled[0].Arch != target.Arm64 || tc.compiled[1].Arch != target.X86_64 {
		t.Errorf("slice order = %v, %v", tc.compiled[0].Arch, tc.compiled[1].Arch)
	}

	// one fat merge of both slices
	if len(tc.fatCalls) != 1 {
		t.Fatalf("fat merges = %d, want 1", len(tc.fatCalls))
	}
	if got := len(tc.fatCalls[0]) - 1; got != 2 {
		t.Errorf("merged %d slices, want 2", got)
	}

	if !strings.HasSuffix(res.ArtifactPath, "libgdexample.release.framework") {
		t.Errorf("ArtifactPath = %q", res.ArtifactPath)
	}
	if _, err := os.Stat(filepath.Join(res.ArtifactPath, "Resources", "Info.plist")); err != nil {
		t.Errorf("manifest not written: %v", err)
	}
	if _, err := os.Stat(filepath.Join(res.ArtifactPath, "libgdexample.release")); err != nil {
		t.Errorf("merged binary not written: %v", err)
	}
}

func TestBuildIOSXCFramework(t *testing.T) {
	root, cfg := testProject(t)
	tc := &mockToolchain{}
	b := New(cfg, Options{Root: root, Toolchain: tc})

	r := target.Request{Platform: target.IOS, Arch: target.Universal, Profile: target.Debug, Precision: target.Double}
	res, err := b.Build(context.Background(), r)
	if err != nil {
		t.Fatal(err)
	}
	if len(tc.xcCalls) != 1 {
		t.Fatalf("xcframework merges = %d, want 1", len(tc.xcCalls))
	}
	if !strings.HasSuffix(res.ArtifactPath, "libgdexample.debug.xcframework") {
		t.Errorf("ArtifactPath = %q", res.ArtifactPath)
	}
	if _, err := os.Stat(filepath.Join(res.ArtifactPath, "Resources", "Info.plist")); err != nil {
		t.Errorf("manifest not written: %v", err)
	}
}

// A slice whose binary never materialized must abort the merge.
func TestMergeAbortsOnMissingSlice(t *testing.T) {
	root, cfg := testProject(t)
	tc := &mockToolchain{skipWrite: map[target.Arch]bool{target.X86_64: true}}
	b := New(cfg, Options{Root: root, Toolchain: tc})

	r := target.Request{Platform: target.MacOS, Arch: target.Universal, Profile: target.Release, Precision: target.Single}
	_, err := b.Build(context.Background(), r)

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("Build() = %v, want *StepError", err)
	}
	if !strings.Contains(stepErr.Error(), "missing per-architecture binary") {
		t.Errorf("error = %v", stepErr)
	}
	if len(tc.fatCalls) != 0 {
		t.Error("merge ran despite missing slice")
	}
}

// The dependency check runs before any build step.
func TestMissingDependencyCheckedEagerly(t *testing.T) {
	root, cfg := testProject(t)
	if err := os.RemoveAll(filepath.Join(root, "godot-cpp")); err != nil {
		t.Fatal(err)
	}
	tc := &mockToolchain{}
	b := New(cfg, Options{Root: root, Toolchain: tc})

	r := target.Request{Platform: target.Linux, Arch: target.X86_64, Profile: target.Debug, Precision: target.Single}
	_, err := b.Build(context.Background(), r)

	var depErr *godotcpp.DependencyError
	if !errors.As(err, &depErr) {
		t.Fatalf("Build() = %v, want *DependencyError", err)
	}
	if len(tc.compiled) != 0 {
		t.Error("compile ran despite missing dependency")
	}
}

func TestBuildFailsWithoutSources(t *testing.T) {
	root, cfg := testProject(t)
	if err := os.Remove(filepath.Join(root, "src", "register_types.cpp")); err != nil {
		t.Fatal(err)
	}
	b := New(cfg, Options{Root: root, Toolchain: &mockToolchain{}})

	r := target.Request{Platform: target.Linux, Arch: target.X86_64, Profile: target.Debug, Precision: target.Single}
	if _, err := b.Build(context.Background(), r); err == nil {
		t.Error("Build() without sources should fail")
	}
}

func TestCompileFailureIsFatal(t *testing.T) {
	root, cfg := testProject(t)
	tc := &mockToolchain{failCompile: true}
	b := New(cfg, Options{Root: root, Toolchain: tc})

	r := target.Request{Platform: target.Windows, Arch: target.Arm64, Profile: target.Release, Precision: target.Single}
	_, err := b.Build(context.Background(), r)

	var stepErr *StepError
	if !errors.As(err, &stepErr) {
		t.Fatalf("Build() = %v, want *StepError", err)
	}
	// exactly one attempt, no retry
	if len(tc.compiled) != 1 {
		t.Errorf("compile attempts = %d, want 1", len(tc.compiled))
	}
}

func TestBuildRejectsInvalidRequest(t *testing.T) {
	root, cfg := testProject(t)
	b := New(cfg, Options{Root: root, Toolchain: &mockToolchain{}})

	r := target.Request{Platform: target.Windows, Arch: target.Arm32, Profile: target.Release, Precision: target.Single}
	if _, err := b.Build(context.Background(), r); err == nil {
		t.Error("Build() with disallowed arch should fail")
	}
}
