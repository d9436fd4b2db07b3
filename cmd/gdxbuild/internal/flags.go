package internal

import (
	"github.com/spf13/cobra"

	"github.com/gdxbuild/gdxbuild/internal/project"
	"github.com/gdxbuild/gdxbuild/internal/target"
)

// requestFlags collects the build request flags shared by the build and
// install commands.
type requestFlags struct {
	platform  string
	arch      string
	profile   string
	precision string
	threads   bool
}

func (f *requestFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.platform, "platform", string(target.HostPlatform()), "Target platform (linux, windows, macos, ios, android, web)")
	cmd.Flags().StringVar(&f.arch, "arch", "", "Target architecture (defaults to x86_64, universal on Apple platforms)")
	cmd.Flags().StringVar(&f.profile, "profile", "debug", "Build profile (debug, release)")
	cmd.Flags().StringVar(&f.precision, "precision", "single", "Engine float precision (single, double)")
	cmd.Flags().BoolVar(&f.threads, "threads", false, "Enable threading support (web builds)")
}

func (f *requestFlags) request() (target.Request, error) {
	p, err := target.ParsePlatform(f.platform)
	if err != nil {
		return target.Request{}, err
	}

	archName := f.arch
	if archName == "" {
		switch p {
		case target.MacOS, target.IOS:
			archName = string(target.Universal)
		case target.Web:
			archName = string(target.Wasm32)
		default:
			archName = string(target.X86_64)
		}
	}
	a, err := target.ParseArch(archName)
	if err != nil {
		return target.Request{}, err
	}

	profile, err := target.ParseProfile(f.profile)
	if err != nil {
		return target.Request{}, err
	}
	precision, err := target.ParsePrecision(f.precision)
	if err != nil {
		return target.Request{}, err
	}

	r := target.Request{
		Platform:  p,
		Arch:      a,
		Profile:   profile,
		Precision: precision,
		Threads:   f.threads,
	}
	return r, r.Validate()
}

func loadConfig() (*project.Config, error) {
	return project.Load(".")
}
