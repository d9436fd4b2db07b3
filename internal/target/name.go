package target

import "strings"

// SuffixTokens returns the ordered filename suffix tokens for a request
// that passed Validate. Token order is load-bearing: the host project's
// .gdextension entries are generated from the same sequence, and a
// reordering would break artifact lookup.
func SuffixTokens(r Request) []string {
	tokens := []string{"." + string(r.Profile)}

	if pol := archPolicy[r.Platform]; pol.suffixed {
		tokens = append(tokens, "."+string(r.Arch))
		if r.Platform == Web {
			if r.Threads {
				tokens = append(tokens, ".threads")
			} else {
				tokens = append(tokens, ".nothreads")
			}
		}
	}

	// Apple platforms carry precision in the bundle manifest, not the name.
	if r.Precision == Double && r.Platform != MacOS && r.Platform != IOS {
		tokens = append(tokens, ".double")
	}

	return tokens
}

// ArtifactName returns the shared-library filename for base and r,
// including the platform-native library prefix and extension.
// It is a pure function of its inputs; r must pass Validate.
func ArtifactName(base string, r Request) string {
	var b strings.Builder
	b.WriteString(r.Platform.LibPrefix())
	b.WriteString(base)
	for _, tok := range SuffixTokens(r) {
		b.WriteString(tok)
	}
	b.WriteString(r.Platform.LibExt())
	return b.String()
}

// LibPrefix returns the platform-native shared-library name prefix.
func (p Platform) LibPrefix() string {
	switch p {
	case Windows, Web:
		return ""
	default:
		return "lib"
	}
}

// LibExt returns the platform-native shared-library file extension.
func (p Platform) LibExt() string {
	switch p {
	case Windows:
		return ".dll"
	case MacOS, IOS:
		return ".dylib"
	case Web:
		return ".wasm"
	default:
		return ".so"
	}
}
