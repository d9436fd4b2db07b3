package internal

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gdxbuild",
	Short: "gdxbuild builds GDExtension plugins across platforms",
	Long: `gdxbuild compiles a GDExtension native plugin for every supported
platform and architecture, bundles the result (shared library, universal
framework or xcframework) and installs it into the test host project.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		log.Fatal(err)
	}
}
