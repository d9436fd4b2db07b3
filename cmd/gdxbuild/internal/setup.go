package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdxbuild/gdxbuild/internal/export"
	"github.com/gdxbuild/gdxbuild/internal/godotcpp"
	"github.com/gdxbuild/gdxbuild/internal/project"
	"github.com/gdxbuild/gdxbuild/internal/rename"
	"github.com/gdxbuild/gdxbuild/internal/setupui"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive project setup menu",
	Long: `Setup opens an interactive menu for occasional maintenance tasks:
switching the targeted godot-cpp version, renaming the plugin and
preparing an export archive.`,
	RunE: runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	for {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		res, err := setupui.Run(cfg.Name, cfg.GodotVersion)
		if err != nil {
			return err
		}

		switch res.Action {
		case setupui.ActionNone:
			return nil

		case setupui.ActionVersion:
			if !godotcpp.Supported(res.Input) {
				fmt.Printf("branch %q is not a supported godot-cpp version\n", res.Input)
				continue
			}
			if err := godotcpp.Switch(cmd.Context(), cfg.GodotCPPDir, res.Input); err != nil {
				return err
			}
			version := res.Input
			if version == "master" {
				available, err := godotcpp.Versions(cmd.Context(), cfg.GodotCPPDir)
				if err != nil {
					return err
				}
				version = godotcpp.NextVersion(available)
			}
			cfg.GodotVersion = version
			if err := cfg.Save("."); err != nil {
				return err
			}
			fmt.Printf("godot-cpp switched to %s (targeting %s)\n", res.Input, version)

		case setupui.ActionRename:
			newName := project.SanitizeName(res.Input)
			if err := rename.Plugin(".", cfg, newName); err != nil {
				fmt.Printf("rename failed: %v\n", err)
				continue
			}
			fmt.Printf("plugin renamed to %s\n", newName)

		case setupui.ActionExport:
			dest := cfg.Name + ".zip"
			if err := export.Addon(".", cfg, dest, export.Options{}); err != nil {
				fmt.Printf("export failed: %v\n", err)
				continue
			}
			fmt.Printf("exported %s\n", dest)
		}
	}
}
