// Package apiprofile derives a godot-cpp build profile from the engine's
// extension_api.json, trimming the bound class surface to what the
// configured plugin kind (2d, 3d, full) actually needs.
package apiprofile

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"

	"github.com/tidwall/jsonc"
)

// API is the subset of extension_api.json this package consumes.
type API struct {
	Classes []Class `json:"classes"`
}

// Class is one bound engine class.
type Class struct {
	Name     string `json:"name"`
	Inherits string `json:"inherits,omitempty"`
}

// Parse decodes extension_api.json content. The file is parsed through a
// JSONC pass so locally annotated copies (comments, trailing commas)
// still load.
func Parse(data []byte) (*API, error) {
	var api API
	if err := json.Unmarshal(jsonc.ToJSON(data), &api); err != nil {
		return nil, fmt.Errorf("parsing extension api: %w", err)
	}
	if len(api.Classes) == 0 {
		return nil, fmt.Errorf("extension api lists no classes")
	}
	return &api, nil
}

// Load reads and parses the extension api at path.
func Load(path string) (*API, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	api, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return api, nil
}

// Subclasses returns every class inheriting (transitively) from root,
// excluding root itself, sorted by name.
func (a *API) Subclasses(root string) []string {
	parents := make(map[string]string, len(a.Classes))
	for _, c := range a.Classes {
		parents[c.Name] = c.Inherits
	}

	var names []string
	for _, c := range a.Classes {
		for p := c.Inherits; p != ""; p = parents[p] {
			if p == root {
				names = append(names, c.Name)
				break
			}
		}
	}
	sort.Strings(names)
	return names
}

// Profile is a godot-cpp build profile.
type Profile struct {
	Type            string   `json:"type"`
	DisabledClasses []string `json:"disabled_classes,omitempty"`
}

// Build computes the profile for kind: "2d" disables the 3D node tree,
// "3d" disables the 2D node tree, "full" disables nothing. "custom"
// profiles are hand-maintained and not generated here.
func Build(api *API, kind string) (*Profile, error) {
	p := &Profile{Type: "feature_profile"}
	switch kind {
	case "full":
	case "2d":
		p.DisabledClasses = api.Subclasses("Node3D")
	case "3d":
		p.DisabledClasses = api.Subclasses("Node2D")
	case "custom":
		return nil, fmt.Errorf("custom build profiles are maintained by hand, not generated")
	default:
		return nil, fmt.Errorf("unknown build profile kind %q", kind)
	}
	return p, nil
}

// Write stores the profile as indented JSON at path.
func (p *Profile) Write(path string) error {
	data, err := json.MarshalIndent(p, "", "\t")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0644)
}
