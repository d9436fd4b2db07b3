package internal

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gdxbuild/gdxbuild/internal/builder"
)

var (
	buildFlags   requestFlags
	buildVerbose bool
	buildJobs    int
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the plugin for one platform",
	Long: `Build compiles the plugin shared library for the requested platform,
architecture and profile, merging Apple builds into their bundle form.`,
	RunE: runBuild,
}

func init() {
	buildFlags.register(buildCmd)
	buildCmd.Flags().BoolVarP(&buildVerbose, "verbose", "v", false, "Enable verbose build output")
	buildCmd.Flags().IntVarP(&buildJobs, "jobs", "j", runtime.NumCPU(), "Parallel compile jobs per scons invocation")
	rootCmd.AddCommand(buildCmd)
}

func runBuild(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := buildFlags.request()
	if err != nil {
		return err
	}

	b := builder.New(cfg, builder.Options{
		Jobs:  buildJobs,
		Quiet: !buildVerbose,
	})
	res, err := b.Build(cmd.Context(), r)
	if err != nil {
		return err
	}

	fmt.Printf("built %s (%d source files)\n", res.ArtifactPath, len(res.Sources))
	return nil
}
