// Package rename renames the plugin across the repository and the test
// project. All steps are tracked so a failure midway rolls everything
// back instead of leaving the project half-renamed.
package rename

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gdxbuild/gdxbuild/internal/project"
)

// tx records renames and file contents for rollback.
type tx struct {
	renames [][2]string // new path -> old path, in apply order
	backups map[string][]byte
}

func (t *tx) rename(oldPath, newPath string) error {
	if err := os.Rename(oldPath, newPath); err != nil {
		return err
	}
	t.renames = append(t.renames, [2]string{newPath, oldPath})
	return nil
}

func (t *tx) patch(path, oldName, newName string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	replaced := bytes.ReplaceAll(data, []byte(oldName), []byte(newName))
	if bytes.Equal(data, replaced) {
		return nil
	}
	if t.backups == nil {
		t.backups = make(map[string][]byte)
	}
	t.backups[path] = data
	return os.WriteFile(path, replaced, 0644)
}

// renameBinEntries renames installed artifacts (flat libraries and
// bundle directories) carrying the old plugin name. Children are renamed
// before their parent directories so earlier renames never invalidate
// later paths; the reversed rollback order restores parents first for
// the same reason.
func (t *tx) renameBinEntries(binDir, oldName, newName string) error {
	var paths []string
	err := filepath.WalkDir(binDir, func(path string, d fs.DirEntry, werr error) error {
		if werr != nil {
			return werr
		}
		if path == binDir {
			return nil
		}
		base := filepath.Base(path)
		if strings.HasPrefix(base, oldName+".") || strings.HasPrefix(base, "lib"+oldName+".") {
			paths = append(paths, path)
		}
		return nil
	})
	if err != nil {
		return err
	}

	sort.Slice(paths, func(i, j int) bool { return len(paths[i]) > len(paths[j]) })
	for _, path := range paths {
		newBase := strings.Replace(filepath.Base(path), oldName, newName, 1)
		if err := t.rename(path, filepath.Join(filepath.Dir(path), newBase)); err != nil {
			return err
		}
	}
	return nil
}

func (t *tx) rollback() {
	for path, data := range t.backups {
		if err := os.WriteFile(path, data, 0644); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not restore %s: %v\n", path, err)
		}
	}
	for i := len(t.renames) - 1; i >= 0; i-- {
		newPath, oldPath := t.renames[i][0], t.renames[i][1]
		if err := os.Rename(newPath, oldPath); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not roll back rename %s: %v\n", newPath, err)
		}
	}
}

// Plugin renames the plugin from cfg.Name to newName: the addon
// directory and descriptor inside the test project are moved, every
// occurrence of the old name in descriptor and sources is rewritten, and
// the configuration is saved with the new name. On any failure the
// filesystem is restored and cfg is left untouched.
func Plugin(root string, cfg *project.Config, newName string) (err error) {
	if err := project.ValidateName(newName); err != nil {
		return err
	}
	oldName := cfg.Name
	if newName == oldName {
		return fmt.Errorf("plugin is already named %q", oldName)
	}

	t := &tx{}
	defer func() {
		if err != nil {
			t.rollback()
		}
	}()

	// Addon directory inside the test project.
	oldAddon := filepath.Join(root, cfg.TestProjectDir, oldName)
	newAddon := filepath.Join(root, cfg.TestProjectDir, newName)
	if _, statErr := os.Stat(oldAddon); statErr == nil {
		if err = t.rename(oldAddon, newAddon); err != nil {
			return fmt.Errorf("renaming addon directory: %w", err)
		}
		oldDesc := filepath.Join(newAddon, oldName+".gdextension")
		if _, statErr := os.Stat(oldDesc); statErr == nil {
			newDesc := filepath.Join(newAddon, newName+".gdextension")
			if err = t.rename(oldDesc, newDesc); err != nil {
				return fmt.Errorf("renaming descriptor: %w", err)
			}
			if err = t.patch(newDesc, oldName, newName); err != nil {
				return fmt.Errorf("patching descriptor: %w", err)
			}
		}
		// Installed binaries carry the old name; the descriptor now
		// references the new one, so they must move together.
		binDir := filepath.Join(newAddon, "bin")
		if _, statErr := os.Stat(binDir); statErr == nil {
			if err = t.renameBinEntries(binDir, oldName, newName); err != nil {
				return fmt.Errorf("renaming binaries: %w", err)
			}
		}
	}

	// Registration symbols in the sources carry the plugin name.
	for _, dir := range cfg.SourceDirs {
		base := filepath.Join(root, dir)
		walkErr := filepath.WalkDir(base, func(path string, d fs.DirEntry, werr error) error {
			if werr != nil {
				return werr
			}
			if d.IsDir() || !sourceLike(path) {
				return nil
			}
			return t.patch(path, oldName, newName)
		})
		if walkErr != nil {
			err = fmt.Errorf("patching sources: %w", walkErr)
			return err
		}
	}

	cfg.Name = newName
	if err = cfg.Save(root); err != nil {
		cfg.Name = oldName
		return fmt.Errorf("saving configuration: %w", err)
	}
	return nil
}

func sourceLike(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".cpp", ".cc", ".cxx", ".h", ".hpp", ".inc":
		return true
	}
	return false
}
