package internal

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/gdxbuild/gdxbuild/internal/apiprofile"
)

var profileKind string

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Regenerate the godot-cpp build profile",
	Long: `Profile classifies the classes in godot-cpp's extension_api.json and
writes a build_profile.json that compiles only the API surface the
configured plugin kind (2d, 3d, full) needs.`,
	RunE: runProfile,
}

func init() {
	profileCmd.Flags().StringVar(&profileKind, "kind", "", "Override the configured build profile kind")
	rootCmd.AddCommand(profileCmd)
}

func runProfile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	kind := cfg.BuildProfile
	if profileKind != "" {
		kind = profileKind
	}

	apiPath := filepath.Join(cfg.GodotCPPDir, "gdextension", "extension_api.json")
	api, err := apiprofile.Load(apiPath)
	if err != nil {
		return err
	}
	p, err := apiprofile.Build(api, kind)
	if err != nil {
		return err
	}
	if err := p.Write("build_profile.json"); err != nil {
		return err
	}
	fmt.Printf("build_profile.json written (%s profile, %d classes disabled)\n", kind, len(p.DisabledClasses))
	return nil
}
