// Package export packages the installed addon into a distributable zip.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/zip"

	"github.com/gdxbuild/gdxbuild/internal/project"
)

// Options controls what goes into the archive.
type Options struct {
	// IncludeDebug keeps debug-profile binaries in the archive. Release
	// distributions normally drop them.
	IncludeDebug bool
}

// Addon zips the addon directory inside the test project into dest. The
// archive is rooted at the addon name so it unpacks cleanly into another
// project's res:// tree.
func Addon(root string, cfg *project.Config, dest string, opts Options) error {
	addonDir := filepath.Join(root, cfg.TestProjectDir, cfg.Name)
	if _, err := os.Stat(addonDir); err != nil {
		return fmt.Errorf("addon directory %s: %w (build and install first)", addonDir, err)
	}

	f, err := os.Create(dest)
	if err != nil {
		return err
	}
	w := zip.NewWriter(f)

	err = filepath.Walk(addonDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(addonDir, path)
		if err != nil {
			return err
		}
		if !opts.IncludeDebug && isDebugArtifact(rel) {
			return nil
		}

		header, err := zip.FileInfoHeader(info)
		if err != nil {
			return err
		}
		header.Name = filepath.ToSlash(filepath.Join(cfg.Name, rel))
		header.Method = zip.Deflate

		writer, err := w.CreateHeader(header)
		if err != nil {
			return err
		}
		file, err := os.Open(path)
		if err != nil {
			return err
		}
		defer file.Close()
		_, err = io.Copy(writer, file)
		return err
	})
	if err != nil {
		w.Close()
		f.Close()
		return fmt.Errorf("archiving %s: %w", addonDir, err)
	}

	// Close writes the central directory; its failure means a corrupt
	// archive and must not be swallowed.
	if err := w.Close(); err != nil {
		f.Close()
		return fmt.Errorf("finalizing %s: %w", dest, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("finalizing %s: %w", dest, err)
	}
	return nil
}

// isDebugArtifact reports whether a path names a debug-profile binary or
// lives inside a debug-profile bundle.
func isDebugArtifact(rel string) bool {
	for _, part := range strings.Split(filepath.ToSlash(rel), "/") {
		if strings.Contains(part, ".debug") {
			return true
		}
	}
	return false
}

// List returns the entry names of a zip archive, for verification.
func List(path string) ([]string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	var names []string
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	return names, nil
}
