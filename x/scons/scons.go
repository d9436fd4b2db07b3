// Package scons wraps SCons invocations for godot-cpp style builds.
package scons

import (
	"io"
	"os"
	"os/exec"
	"sort"
	"strconv"
)

// SCons drives an SCons-based build from a directory containing an
// SConstruct file.
type SCons struct {
	dir     string
	bin     string
	jobs    int
	options map[string]string
	stdout  io.Writer
	stderr  io.Writer
}

// New returns a ready-to-use SCons rooted at dir.
func New(dir string) *SCons {
	return &SCons{
		dir:     dir,
		bin:     "scons",
		options: make(map[string]string),
		stdout:  os.Stdout,
		stderr:  os.Stderr,
	}
}

// Bin sets a custom scons executable path.
func (s *SCons) Bin(path string) { s.bin = path }

// Jobs sets the -j parallelism for a single scons invocation.
func (s *SCons) Jobs(n int) { s.jobs = n }

// Option adds a key=value build option (e.g. platform=linux).
func (s *SCons) Option(key, value string) { s.options[key] = value }

// OptionBool adds a key=yes/no build option.
func (s *SCons) OptionBool(key string, value bool) {
	v := "no"
	if value {
		v = "yes"
	}
	s.options[key] = v
}

// Stdout redirects build output.
func (s *SCons) Stdout(w io.Writer) { s.stdout = w }

// Stderr redirects build diagnostics.
func (s *SCons) Stderr(w io.Writer) { s.stderr = w }

// Args returns the argument list for a build invocation, options sorted
// by key so invocations are reproducible.
func (s *SCons) Args() []string {
	var args []string
	if s.jobs > 0 {
		args = append(args, "-j", strconv.Itoa(s.jobs))
	}
	keys := make([]string, 0, len(s.options))
	for k := range s.options {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		args = append(args, k+"="+s.options[k])
	}
	return args
}

// Build runs scons with the configured options plus extra args.
func (s *SCons) Build(extra ...string) error {
	return s.run(append(s.Args(), extra...))
}

// Clean runs "scons -c" to remove previous build products.
func (s *SCons) Clean() error {
	return s.run(append([]string{"-c"}, s.Args()...))
}

func (s *SCons) run(args []string) error {
	cmd := exec.Command(s.bin, args...)
	cmd.Dir = s.dir
	cmd.Stdout = s.stdout
	cmd.Stderr = s.stderr
	return cmd.Run()
}
