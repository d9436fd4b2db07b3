// Package lipo wraps the macOS lipo tool for fat-binary merges.
package lipo

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Lipo merges per-architecture Mach-O binaries.
type Lipo struct {
	bin    string
	stdout io.Writer
	stderr io.Writer
}

// New returns a ready-to-use Lipo.
func New() *Lipo {
	return &Lipo{bin: "lipo", stdout: os.Stdout, stderr: os.Stderr}
}

// Bin sets a custom lipo executable path.
func (l *Lipo) Bin(path string) { l.bin = path }

// Stdout redirects tool output.
func (l *Lipo) Stdout(w io.Writer) { l.stdout = w }

// Stderr redirects tool diagnostics.
func (l *Lipo) Stderr(w io.Writer) { l.stderr = w }

// CreateArgs returns the argument list for a -create invocation.
func (l *Lipo) CreateArgs(output string, inputs []string) []string {
	args := []string{"-create"}
	args = append(args, inputs...)
	return append(args, "-output", output)
}

// Create merges inputs into a single multi-architecture binary at output.
func (l *Lipo) Create(output string, inputs ...string) error {
	if len(inputs) == 0 {
		return fmt.Errorf("lipo create %s: no input binaries", output)
	}
	cmd := exec.Command(l.bin, l.CreateArgs(output, inputs)...)
	cmd.Stdout = l.stdout
	cmd.Stderr = l.stderr
	return cmd.Run()
}

// Archs returns the architectures present in a binary.
func (l *Lipo) Archs(file string) ([]string, error) {
	var out bytes.Buffer
	cmd := exec.Command(l.bin, "-archs", file)
	cmd.Stdout = &out
	cmd.Stderr = l.stderr
	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("lipo -archs %s: %w", file, err)
	}
	return strings.Fields(out.String()), nil
}
