// Package godotcpp manages the godot-cpp dependency the plugin links
// against: presence checks before a build and switching the checkout
// between engine version branches.
package godotcpp

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"sort"
	"strings"

	"golang.org/x/mod/semver"
)

// DependencyError reports a missing or unusable godot-cpp checkout. It is
// detected eagerly, before any build step runs.
type DependencyError struct {
	Dir    string
	Reason string
}

func (e *DependencyError) Error() string {
	return fmt.Sprintf("godot-cpp dependency at %s: %s (run 'git submodule update --init' to fetch it)", e.Dir, e.Reason)
}

// Check verifies the godot-cpp checkout at dir exists and is non-empty.
func Check(dir string) error {
	info, err := os.Stat(dir)
	if os.IsNotExist(err) {
		return &DependencyError{Dir: dir, Reason: "directory does not exist"}
	}
	if err != nil {
		return err
	}
	if !info.IsDir() {
		return &DependencyError{Dir: dir, Reason: "not a directory"}
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return &DependencyError{Dir: dir, Reason: "directory is empty"}
	}
	return nil
}

// Versions lists the engine branches the checkout's remote supports:
// every 4.x branch in ascending version order, then "master".
func Versions(ctx context.Context, dir string) ([]string, error) {
	out, err := git(ctx, dir, "ls-remote", "--heads", "origin")
	if err != nil {
		return nil, fmt.Errorf("list godot-cpp branches: %w", err)
	}

	var versions []string
	hasMaster := false
	for _, line := range strings.Split(strings.TrimSpace(out), "\n") {
		// format: <hash>\trefs/heads/<branch>
		_, ref, ok := strings.Cut(line, "\t")
		if !ok {
			continue
		}
		branch := strings.TrimPrefix(ref, "refs/heads/")
		if branch == "master" {
			hasMaster = true
			continue
		}
		if Supported(branch) {
			versions = append(versions, branch)
		}
	}

	sortVersions(versions)
	if hasMaster {
		versions = append(versions, "master")
	}
	return versions, nil
}

func sortVersions(versions []string) {
	sort.Slice(versions, func(i, j int) bool {
		return semver.Compare("v"+versions[i], "v"+versions[j]) < 0
	})
}

// Supported reports whether branch names an engine version this tool can
// target (4.0 or newer, or master).
func Supported(branch string) bool {
	if branch == "master" {
		return true
	}
	v := "v" + branch
	if !semver.IsValid(v) {
		return false
	}
	return semver.Compare(semver.Major(v), "v4") >= 0
}

// NextVersion returns the version master is assumed to track: one minor
// past the highest released branch.
func NextVersion(versions []string) string {
	highest := ""
	for _, v := range versions {
		if v == "master" {
			continue
		}
		if highest == "" || semver.Compare("v"+v, "v"+highest) > 0 {
			highest = v
		}
	}
	if highest == "" {
		return "4.0"
	}
	var major, minor int
	if _, err := fmt.Sscanf(highest, "%d.%d", &major, &minor); err != nil {
		return "4.0"
	}
	return fmt.Sprintf("%d.%d", major, minor+1)
}

// Switch moves the checkout at dir to the given branch.
func Switch(ctx context.Context, dir, branch string) error {
	if err := Check(dir); err != nil {
		return err
	}
	if _, err := git(ctx, dir, "fetch", "--depth", "1", "origin", branch); err != nil {
		return fmt.Errorf("fetch %s: %w", branch, err)
	}
	if _, err := git(ctx, dir, "checkout", "FETCH_HEAD"); err != nil {
		return fmt.Errorf("checkout %s: %w", branch, err)
	}
	return nil
}

func git(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			msg = err.Error()
		}
		return "", fmt.Errorf("git %s: %s", strings.Join(args, " "), msg)
	}
	return stdout.String(), nil
}
