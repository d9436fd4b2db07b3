package builder

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdxbuild/gdxbuild/internal/target"
)

// mockToolchain implements Toolchain for testing, materializing fake
// binaries instead of invoking scons/lipo/xcodebuild.
type mockToolchain struct {
	compiled []target.Request
	fatCalls [][]string
	xcCalls  [][]string

	failCompile bool
	// skipWrite suppresses the output file for an arch, simulating a
	// compile that "succeeded" without producing its binary.
	skipWrite map[target.Arch]bool
}

func (m *mockToolchain) Compile(req target.Request, outDir, name string) error {
	m.compiled = append(m.compiled, req)
	if m.failCompile {
		return fmt.Errorf("scons exited with status 2")
	}
	if m.skipWrite[req.Arch] {
		return nil
	}
	return os.WriteFile(filepath.Join(outDir, name), []byte("bin "+string(req.Arch)), 0755)
}

func (m *mockToolchain) MergeFat(output string, slices []string) error {
	m.fatCalls = append(m.fatCalls, append([]string{output}, slices...))
	return os.WriteFile(output, []byte("fat"), 0755)
}

func (m *mockToolchain) MergeXCFramework(output string, slices []string) error {
	m.xcCalls = append(m.xcCalls, append([]string{output}, slices...))
	return os.MkdirAll(output, 0755)
}

func (m *mockToolchain) Clean() error { return nil }
