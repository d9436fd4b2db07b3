package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gdxbuild/gdxbuild/internal/project"
	"github.com/gdxbuild/gdxbuild/internal/target"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := project.Load(t.TempDir())
	require.NoError(t, err)
	require.Equal(t, project.Default(), *cfg)
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	content := []byte("name: terrain_tools\ngodot_version: \"4.4\"\nsource_dirs: [src, gen]\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, project.FileName), content, 0644))

	cfg, err := project.Load(dir)
	require.NoError(t, err)
	require.Equal(t, "terrain_tools", cfg.Name)
	require.Equal(t, "4.4", cfg.GodotVersion)
	require.Equal(t, []string{"src", "gen"}, cfg.SourceDirs)
	// untouched fields keep their defaults
	require.Equal(t, "test_project", cfg.TestProjectDir)
	require.Equal(t, []string{".cpp", ".cc", ".cxx"}, cfg.SourceExts)
}

func TestLoadRejectsBadName(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, project.FileName), []byte("name: 9lives\n"), 0644))
	_, err := project.Load(dir)
	require.Error(t, err)
}

func TestSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg := project.Default()
	cfg.Name = "my_plugin"
	cfg.BuildProfile = "2d"
	require.NoError(t, cfg.Save(dir))

	loaded, err := project.Load(dir)
	require.NoError(t, err)
	require.Equal(t, cfg, *loaded)
}

func TestValidateName(t *testing.T) {
	for _, ok := range []string{"gdexample", "my_plugin2", "_x"} {
		require.NoError(t, project.ValidateName(ok), ok)
	}
	for _, bad := range []string{"", "2fast", "my plugin", "my-plugin", "CON", "lpt3"} {
		require.Error(t, project.ValidateName(bad), bad)
	}
}

func TestSanitizeName(t *testing.T) {
	require.Equal(t, "My_Cool_Plugin", project.SanitizeName("  My Cool  Plugin! "))
	require.Equal(t, "plugin2", project.SanitizeName("plugin-2"))
}

func TestBinDirMatchesLayout(t *testing.T) {
	cfg := project.Default()
	cfg.Name = "gdexample"
	want := filepath.Join("test_project", "gdexample", "bin", "linux")
	require.Equal(t, want, cfg.BinDir(target.Linux))
}

func TestValidateBuildProfile(t *testing.T) {
	cfg := project.Default()
	cfg.BuildProfile = "4d"
	require.Error(t, cfg.Validate())
}
