package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdxbuild/gdxbuild/internal/builder"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove build products",
	Long:  `Clean runs scons -c and removes staged artifacts from the bin directory.`,
	RunE:  runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	b := builder.New(cfg, builder.Options{Quiet: true})
	if err := b.Clean(); err != nil {
		return err
	}
	fmt.Println("cleaned build products")
	return nil
}
