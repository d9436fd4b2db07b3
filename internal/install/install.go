// Package install copies finished artifacts into the test host project.
package install

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gdxbuild/gdxbuild/internal/project"
	"github.com/gdxbuild/gdxbuild/internal/target"
)

// Artifact places the artifact at src (a flat file or a bundle directory)
// into the platform's bin directory inside the test project and returns
// the installed path. The destination layout is the one the generated
// .gdextension descriptor points at.
func Artifact(cfg *project.Config, p target.Platform, src string) (string, error) {
	info, err := os.Stat(src)
	if err != nil {
		return "", fmt.Errorf("artifact %s: %w", src, err)
	}

	binDir := cfg.BinDir(p)
	if err := os.MkdirAll(binDir, 0755); err != nil {
		return "", err
	}
	dest := filepath.Join(binDir, filepath.Base(src))

	if info.IsDir() {
		// Replace any previous bundle wholesale; a stale slice inside an
		// old framework would otherwise survive the copy.
		if err := os.RemoveAll(dest); err != nil {
			return "", err
		}
		if err := os.CopyFS(dest, os.DirFS(src)); err != nil {
			return "", fmt.Errorf("installing bundle %s: %w", src, err)
		}
		return dest, nil
	}

	if err := copyFile(src, dest); err != nil {
		return "", fmt.Errorf("installing %s: %w", src, err)
	}
	return dest, nil
}

func copyFile(src, dest string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}
	out, err := os.OpenFile(dest, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	// OpenFile's perm only applies to newly created files; an existing
	// destination keeps its old mode without this.
	if err := out.Chmod(info.Mode().Perm()); err != nil {
		out.Close()
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
