package target

import "fmt"

// PolicyVersion identifies the architecture/naming policy table below.
// Bump it whenever the table changes so downstream tooling can detect
// a mismatch instead of silently producing differently named artifacts.
const PolicyVersion = 1

// archPolicy lists, per platform, the architectures a request may name.
// suffixed reports whether the architecture appears as a filename token;
// Apple platforms never encode the architecture in the filename because
// the binary is merged into a multi-arch bundle instead.
var archPolicy = map[Platform]struct {
	allowed  []Arch
	suffixed bool
}{
	Linux:   {allowed: []Arch{X86_32, X86_64, Arm32, Arm64, RV64}, suffixed: true},
	Android: {allowed: []Arch{X86_32, X86_64, Arm32, Arm64}, suffixed: true},
	Windows: {allowed: []Arch{X86_32, X86_64, Arm64}, suffixed: true},
	MacOS:   {allowed: []Arch{X86_64, Arm64, Universal}},
	IOS:     {allowed: []Arch{Arm64, Universal}},
	Web:     {allowed: []Arch{Wasm32}, suffixed: true},
}

// Allowed returns the architectures valid for a platform, in policy order.
func Allowed(p Platform) []Arch {
	return archPolicy[p].allowed
}

// Validate checks the request against the architecture policy. An
// architecture outside its platform's allowed set is rejected here rather
// than silently dropped from the filename, since two architectures mapping
// to the same artifact name would overwrite each other.
func (r Request) Validate() error {
	pol, ok := archPolicy[r.Platform]
	if !ok {
		return fmt.Errorf("unknown platform %q", r.Platform)
	}
	for _, a := range pol.allowed {
		if r.Arch == a {
			return nil
		}
	}
	return fmt.Errorf("architecture %s is not supported on %s (supported: %v)", r.Arch, r.Platform, pol.allowed)
}
