package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gdxbuild/gdxbuild/internal/export"
	"github.com/gdxbuild/gdxbuild/internal/project"
)

func setup(t *testing.T) (string, *project.Config) {
	t.Helper()
	root := t.TempDir()
	cfg := project.Default()

	addon := filepath.Join(root, cfg.TestProjectDir, cfg.Name)
	files := []string{
		"gdexample.gdextension",
		"bin/linux/libgdexample.release.x86_64.so",
		"bin/linux/libgdexample.debug.x86_64.so",
		"bin/macos/libgdexample.debug.framework/libgdexample.debug",
		"bin/macos/libgdexample.release.framework/libgdexample.release",
	}
	for _, rel := range files {
		path := filepath.Join(addon, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
		require.NoError(t, os.WriteFile(path, []byte("x"), 0644))
	}
	return root, &cfg
}

func TestAddonReleaseOnly(t *testing.T) {
	root, cfg := setup(t)
	dest := filepath.Join(t.TempDir(), "gdexample.zip")
	require.NoError(t, export.Addon(root, cfg, dest, export.Options{}))

	names, err := export.List(dest)
	require.NoError(t, err)
	require.Contains(t, names, "gdexample/gdexample.gdextension")
	require.Contains(t, names, "gdexample/bin/linux/libgdexample.release.x86_64.so")
	require.Contains(t, names, "gdexample/bin/macos/libgdexample.release.framework/libgdexample.release")
	for _, name := range names {
		require.NotContains(t, name, ".debug", "debug artifact leaked into release archive")
	}
}

func TestAddonWithDebug(t *testing.T) {
	root, cfg := setup(t)
	dest := filepath.Join(t.TempDir(), "gdexample.zip")
	require.NoError(t, export.Addon(root, cfg, dest, export.Options{IncludeDebug: true}))

	names, err := export.List(dest)
	require.NoError(t, err)
	require.Contains(t, names, "gdexample/bin/linux/libgdexample.debug.x86_64.so")
	require.Contains(t, names, "gdexample/bin/macos/libgdexample.debug.framework/libgdexample.debug")
}

// A destination that cannot be finalized must surface an error instead
// of reporting a corrupt archive as exported.
func TestAddonUnwritableDest(t *testing.T) {
	root, cfg := setup(t)
	require.Error(t, export.Addon(root, cfg, filepath.Join(root, "missing", "out.zip"), export.Options{}))

	dir := filepath.Join(t.TempDir(), "out.zip")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.Error(t, export.Addon(root, cfg, dir, export.Options{}))
}

func TestAddonMissingDir(t *testing.T) {
	root := t.TempDir()
	cfg := project.Default()
	err := export.Addon(root, &cfg, filepath.Join(root, "out.zip"), export.Options{})
	require.Error(t, err)
}
