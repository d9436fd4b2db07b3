package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdxbuild/gdxbuild/internal/godotcpp"
)

var versionsCmd = &cobra.Command{
	Use:   "versions [branch]",
	Short: "List or switch the targeted godot-cpp version",
	Long: `Versions lists the godot-cpp branches available upstream. With a branch
argument it switches the checkout to that branch and records the version
in the project configuration.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runVersions,
}

func init() {
	rootCmd.AddCommand(versionsCmd)
}

func runVersions(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if err := godotcpp.Check(cfg.GodotCPPDir); err != nil {
		return err
	}

	available, err := godotcpp.Versions(ctx, cfg.GodotCPPDir)
	if err != nil {
		return err
	}

	if len(args) == 0 {
		for _, v := range available {
			marker := " "
			if v == cfg.GodotVersion || (v == "master" && cfg.GodotVersion == godotcpp.NextVersion(available)) {
				marker = "*"
			}
			fmt.Printf("%s %s\n", marker, v)
		}
		return nil
	}

	branch := args[0]
	if !godotcpp.Supported(branch) {
		return fmt.Errorf("branch %q is not a supported godot-cpp version (4.0+ or master)", branch)
	}
	if err := godotcpp.Switch(ctx, cfg.GodotCPPDir, branch); err != nil {
		return err
	}

	version := branch
	if branch == "master" {
		version = godotcpp.NextVersion(available)
	}
	cfg.GodotVersion = version
	if err := cfg.Save("."); err != nil {
		return err
	}
	fmt.Printf("godot-cpp switched to %s (targeting %s)\n", branch, version)
	return nil
}
