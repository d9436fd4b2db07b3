package bundle

import (
	"github.com/gdxbuild/gdxbuild/internal/target"

	"howett.net/plist"
)

// Manifest is the Info.plist embedded alongside a merged bundle. Every
// field is a deterministic function of the library base name, platform,
// profile and precision.
type Manifest struct {
	Identifier         string   `plist:"CFBundleIdentifier"`
	Name               string   `plist:"CFBundleName"`
	Executable         string   `plist:"CFBundleExecutable"`
	PackageType        string   `plist:"CFBundlePackageType"`
	MinimumOSVersion   string   `plist:"LSMinimumSystemVersion"`
	SupportedPlatforms []string `plist:"CFBundleSupportedPlatforms"`
	Precision          string   `plist:"GDExtensionPrecision"`
}

// manifestFor builds the manifest for a merged bundle. executable is the
// merged binary's filename inside the bundle (the plan stem), not the
// bare library base name.
func manifestFor(base, executable string, r target.Request) Manifest {
	m := Manifest{
		Identifier:  "org.gdextension." + base + "." + string(r.Profile),
		Name:        base,
		Executable:  executable,
		PackageType: "FMWK",
		Precision:   string(r.Precision),
	}
	switch r.Platform {
	case target.IOS:
		m.MinimumOSVersion = "12.0"
		m.SupportedPlatforms = []string{"iPhoneOS"}
	default:
		m.MinimumOSVersion = "10.13"
		m.SupportedPlatforms = []string{"MacOSX"}
	}
	if r.Precision == target.Double {
		m.Identifier += ".double"
	}
	return m
}

// Plist renders the manifest as an XML property list.
func (m Manifest) Plist() ([]byte, error) {
	return plist.MarshalIndent(m, plist.XMLFormat, "\t")
}
