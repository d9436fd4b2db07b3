package sources

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func write(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("// x\n"), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestDiscover(t *testing.T) {
	root := t.TempDir()
	write(t, root, "src/register_types.cpp")
	write(t, root, "src/nodes/player.cpp")
	write(t, root, "src/nodes/player.h")
	write(t, root, "src/README.md")
	write(t, root, "gen/bindings.cpp")

	files, err := Discover(root, []string{"src", "gen"}, []string{".cpp"})
	if err != nil {
		t.Fatal(err)
	}
	want := []string{
		filepath.Join("gen", "bindings.cpp"),
		filepath.Join("src", "nodes", "player.cpp"),
		filepath.Join("src", "register_types.cpp"),
	}
	if !reflect.DeepEqual(files, want) {
		t.Errorf("Discover() = %v, want %v", files, want)
	}
}

func TestDiscoverExtensionCaseInsensitive(t *testing.T) {
	root := t.TempDir()
	write(t, root, "src/a.CPP")

	files, err := Discover(root, []string{"src"}, []string{".cpp"})
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 1 {
		t.Errorf("Discover() = %v, want one file", files)
	}
}

func TestDiscoverMissingDir(t *testing.T) {
	if _, err := Discover(t.TempDir(), []string{"nope"}, []string{".cpp"}); err == nil {
		t.Error("Discover() on a missing directory should fail")
	}
}
