// Package project loads and validates the plugin project configuration.
//
// Configuration lives in a single gdxbuild.yaml at the project root.
// There is no automatic discovery above the project root and no hidden
// overrides; what the file says is what the build uses.
package project

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gdxbuild/gdxbuild/internal/target"
)

// FileName is the configuration file looked up at the project root.
const FileName = "gdxbuild.yaml"

// Config is the plugin project configuration.
type Config struct {
	// Name is the plugin library base name. It doubles as the addon
	// directory name inside the test project and must be a valid
	// cross-platform filename and C++ identifier.
	Name string `yaml:"name"`

	// GodotVersion is the godot-cpp branch the plugin targets (e.g. "4.3").
	GodotVersion string `yaml:"godot_version"`

	// BuildProfile selects which engine API surface the plugin compiles
	// against: full, 2d, 3d or custom.
	BuildProfile string `yaml:"build_profile"`

	// SourceDirs are walked recursively for plugin sources.
	SourceDirs []string `yaml:"source_dirs"`

	// SourceExts filter the walk (with leading dot, e.g. ".cpp").
	SourceExts []string `yaml:"source_exts"`

	// IncludeDirs are passed to the compiler as header search paths.
	IncludeDirs []string `yaml:"include_dirs"`

	// DocOutputDir receives generated documentation.
	DocOutputDir string `yaml:"doc_output_dir"`

	// TestProjectDir is the host Godot project the plugin is installed into.
	TestProjectDir string `yaml:"test_project_dir"`

	// GodotCPPDir is the godot-cpp checkout the build depends on.
	GodotCPPDir string `yaml:"godot_cpp_dir"`
}

// Default returns the configuration used when a field is absent.
func Default() Config {
	return Config{
		Name:           "gdexample",
		GodotVersion:   "4.3",
		BuildProfile:   "full",
		SourceDirs:     []string{"src"},
		SourceExts:     []string{".cpp", ".cc", ".cxx"},
		IncludeDirs:    []string{"src"},
		DocOutputDir:   "docs",
		TestProjectDir: "test_project",
		GodotCPPDir:    "godot-cpp",
	}
}

// Load reads and validates the configuration in dir, filling absent
// fields with defaults. A missing file yields the full default config.
func Load(dir string) (*Config, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return &cfg, nil
}

// Save writes the configuration to dir.
func (c *Config) Save(dir string) error {
	if err := c.Validate(); err != nil {
		return err
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, FileName), data, 0644)
}

// Validate checks the configuration for fields the build cannot recover
// from at a later stage.
func (c *Config) Validate() error {
	if err := ValidateName(c.Name); err != nil {
		return err
	}
	switch c.BuildProfile {
	case "full", "2d", "3d", "custom":
	default:
		return fmt.Errorf("invalid build_profile %q (valid: full, 2d, 3d, custom)", c.BuildProfile)
	}
	if len(c.SourceDirs) == 0 {
		return fmt.Errorf("source_dirs must not be empty")
	}
	for _, ext := range c.SourceExts {
		if !strings.HasPrefix(ext, ".") {
			return fmt.Errorf("source extension %q must start with a dot", ext)
		}
	}
	return nil
}

// BinDir returns the install directory for a platform's artifacts inside
// the test project. The .gdextension generator derives its library paths
// from the same function, so the two can never disagree.
func (c *Config) BinDir(p target.Platform) string {
	return filepath.Join(c.TestProjectDir, c.Name, "bin", string(p))
}

var namePattern = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// Windows reserved device names cannot be used as file or directory names.
var reservedNames = map[string]bool{
	"CON": true, "PRN": true, "AUX": true, "NUL": true,
	"COM1": true, "COM2": true, "COM3": true, "COM4": true, "COM5": true,
	"COM6": true, "COM7": true, "COM8": true, "COM9": true,
	"LPT1": true, "LPT2": true, "LPT3": true, "LPT4": true, "LPT5": true,
	"LPT6": true, "LPT7": true, "LPT8": true, "LPT9": true,
}

// ValidateName reports whether name is usable as the plugin name: a
// portable filename and a valid C++ identifier.
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("plugin name is empty")
	}
	if !namePattern.MatchString(name) {
		return fmt.Errorf("plugin name %q must contain only letters, digits and underscores and not start with a digit", name)
	}
	if reservedNames[strings.ToUpper(name)] {
		return fmt.Errorf("plugin name %q is a reserved Windows device name", name)
	}
	return nil
}

var (
	whitespace   = regexp.MustCompile(`\s+`)
	invalidRunes = regexp.MustCompile(`[^A-Za-z0-9_]`)
)

// SanitizeName turns free-form input into a candidate plugin name:
// whitespace becomes underscores, everything else invalid is dropped.
// The result still needs ValidateName.
func SanitizeName(name string) string {
	name = whitespace.ReplaceAllString(strings.TrimSpace(name), "_")
	return invalidRunes.ReplaceAllString(name, "")
}
