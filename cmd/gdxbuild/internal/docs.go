package internal

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/gdxbuild/gdxbuild/internal/docgen"
)

var (
	docsSourceDir string
	docsHTML      bool
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Generate plugin documentation",
	Long:  `Docs converts the doc_classes XML files into markdown reference pages.`,
	RunE:  runDocs,
}

func init() {
	docsCmd.Flags().StringVar(&docsSourceDir, "classes", "doc_classes", "Directory containing doc_classes XML files")
	docsCmd.Flags().BoolVar(&docsHTML, "html", false, "Also render HTML pages")
	rootCmd.AddCommand(docsCmd)
}

func runDocs(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	names, err := docgen.Generate(docsSourceDir, cfg.DocOutputDir, docsHTML)
	if err != nil {
		return err
	}
	fmt.Printf("generated documentation for %d class(es) in %s\n", len(names), cfg.DocOutputDir)
	return nil
}
