package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdxbuild/gdxbuild/internal/project"
	"github.com/gdxbuild/gdxbuild/internal/rename"
)

var renameCmd = &cobra.Command{
	Use:   "rename <new-name>",
	Short: "Rename the plugin",
	Long: `Rename moves the addon directory and descriptor to the new name and
rewrites the registration symbols in the sources. A failure midway is
rolled back.`,
	Args: cobra.ExactArgs(1),
	RunE: runRename,
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	newName := project.SanitizeName(args[0])
	if err := rename.Plugin(".", cfg, newName); err != nil {
		return err
	}
	fmt.Printf("plugin renamed to %s\n", newName)
	return nil
}
