// Package xcodebuild wraps xcodebuild for xcframework assembly.
package xcodebuild

import (
	"fmt"
	"io"
	"os"
	"os/exec"
)

// XcodeBuild drives xcodebuild invocations.
type XcodeBuild struct {
	bin    string
	stdout io.Writer
	stderr io.Writer
}

// New returns a ready-to-use XcodeBuild.
func New() *XcodeBuild {
	return &XcodeBuild{bin: "xcodebuild", stdout: os.Stdout, stderr: os.Stderr}
}

// Bin sets a custom xcodebuild executable path.
func (x *XcodeBuild) Bin(path string) { x.bin = path }

// Stdout redirects tool output.
func (x *XcodeBuild) Stdout(w io.Writer) { x.stdout = w }

// Stderr redirects tool diagnostics.
func (x *XcodeBuild) Stderr(w io.Writer) { x.stderr = w }

// CreateXCFrameworkArgs returns the argument list for assembling an
// xcframework from the given library slices.
func (x *XcodeBuild) CreateXCFrameworkArgs(output string, libraries []string) []string {
	args := []string{"-create-xcframework"}
	for _, lib := range libraries {
		args = append(args, "-library", lib)
	}
	return append(args, "-output", output)
}

// CreateXCFramework assembles an xcframework at output from libraries.
func (x *XcodeBuild) CreateXCFramework(output string, libraries ...string) error {
	if len(libraries) == 0 {
		return fmt.Errorf("create xcframework %s: no library slices", output)
	}
	cmd := exec.Command(x.bin, x.CreateXCFrameworkArgs(output, libraries)...)
	cmd.Stdout = x.stdout
	cmd.Stderr = x.stderr
	return cmd.Run()
}
