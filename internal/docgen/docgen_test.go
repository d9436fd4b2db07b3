package docgen_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/gdxbuild/gdxbuild/internal/docgen"
)

const classXML = `<?xml version="1.0" encoding="UTF-8" ?>
<class name="GDExample" inherits="Sprite2D">
	<brief_description>A spinning example sprite.</brief_description>
	<description>Longer prose about the node.</description>
	<methods>
		<method name="get_speed">
			<return type="float" />
			<description>Returns the rotation speed.</description>
		</method>
		<method name="set_speed">
			<param index="0" name="speed" type="float" />
			<description>Sets the rotation speed.</description>
		</method>
	</methods>
	<members>
		<member name="amplitude" type="float" default="10.0">Bounce amplitude.</member>
	</members>
	<signals>
		<signal name="position_changed">
			<param index="0" name="new_pos" type="Vector2" />
			<description>Emitted when the node moves.</description>
		</signal>
	</signals>
</class>`

func TestParseClass(t *testing.T) {
	c, err := docgen.ParseClass([]byte(classXML))
	require.NoError(t, err)
	require.Equal(t, "GDExample", c.Name)
	require.Equal(t, "Sprite2D", c.Inherits)
	require.Len(t, c.Methods, 2)
	require.Len(t, c.Members, 1)
	require.Len(t, c.Signals, 1)
}

func TestParseClassRejectsNameless(t *testing.T) {
	_, err := docgen.ParseClass([]byte(`<class></class>`))
	require.Error(t, err)
}

func TestMarkdown(t *testing.T) {
	c, err := docgen.ParseClass([]byte(classXML))
	require.NoError(t, err)

	md := c.Markdown()
	require.Contains(t, md, "# GDExample")
	require.Contains(t, md, "Inherits: `Sprite2D`")
	require.Contains(t, md, "float get_speed()")
	require.Contains(t, md, "void set_speed(float speed)")
	require.Contains(t, md, "`float amplitude` (default: `10.0`)")
	require.Contains(t, md, "`position_changed(Vector2 new_pos)`")
}

func TestGenerate(t *testing.T) {
	docDir := t.TempDir()
	outDir := filepath.Join(t.TempDir(), "docs")
	require.NoError(t, os.WriteFile(filepath.Join(docDir, "GDExample.xml"), []byte(classXML), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(docDir, "notes.txt"), []byte("skip me"), 0644))

	names, err := docgen.Generate(docDir, outDir, true)
	require.NoError(t, err)
	require.Equal(t, []string{"GDExample"}, names)
	require.FileExists(t, filepath.Join(outDir, "GDExample.md"))

	html, err := os.ReadFile(filepath.Join(outDir, "GDExample.html"))
	require.NoError(t, err)
	require.Contains(t, string(html), "<h1")
}
