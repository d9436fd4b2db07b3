package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdxbuild/gdxbuild/internal/export"
)

var (
	exportOutput       string
	exportIncludeDebug bool
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Package the installed addon into a zip",
	Long: `Export archives the addon directory from the test project into a zip
ready for distribution. Debug binaries are excluded unless requested.`,
	RunE: runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "Output zip path (defaults to <plugin>.zip)")
	exportCmd.Flags().BoolVar(&exportIncludeDebug, "include-debug", false, "Keep debug-profile binaries in the archive")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	dest := exportOutput
	if dest == "" {
		dest = cfg.Name + ".zip"
	}
	opts := export.Options{IncludeDebug: exportIncludeDebug}
	if err := export.Addon(".", cfg, dest, opts); err != nil {
		return err
	}
	fmt.Printf("exported %s\n", dest)
	return nil
}
