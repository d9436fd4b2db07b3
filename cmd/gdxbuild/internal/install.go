package internal

import (
	"fmt"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/gdxbuild/gdxbuild/internal/builder"
	"github.com/gdxbuild/gdxbuild/internal/gdext"
	"github.com/gdxbuild/gdxbuild/internal/install"
)

var (
	installFlags   requestFlags
	installVerbose bool
	installJobs    int
)

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Build the plugin and install it into the test project",
	Long: `Install builds the plugin, copies the artifact into the test project's
bin directory and regenerates the .gdextension descriptor.`,
	RunE: runInstall,
}

func init() {
	installFlags.register(installCmd)
	installCmd.Flags().BoolVarP(&installVerbose, "verbose", "v", false, "Enable verbose build output")
	installCmd.Flags().IntVarP(&installJobs, "jobs", "j", runtime.NumCPU(), "Parallel compile jobs per scons invocation")
	rootCmd.AddCommand(installCmd)
}

func runInstall(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	r, err := installFlags.request()
	if err != nil {
		return err
	}

	b := builder.New(cfg, builder.Options{
		Jobs:  installJobs,
		Quiet: !installVerbose,
	})
	res, err := b.Build(cmd.Context(), r)
	if err != nil {
		return err
	}

	dest, err := install.Artifact(cfg, r.Platform, res.ArtifactPath)
	if err != nil {
		return err
	}

	descPath, err := gdext.Write(cfg, r.Precision, r.Threads)
	if err != nil {
		return err
	}

	fmt.Printf("installed %s\n", dest)
	fmt.Printf("descriptor %s\n", descPath)
	return nil
}
