package internal

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/gdxbuild/gdxbuild/internal/godotcpp"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the build environment",
	Long: `Doctor runs the checks a build performs eagerly: the godot-cpp
checkout, the scons toolchain and the test project layout. It exits
non-zero when any check fails.`,
	RunE: runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	failed := 0
	check := func(name string, err error) {
		if err != nil {
			failed++
			fmt.Printf("FAIL %s: %v\n", name, err)
			return
		}
		fmt.Printf("ok   %s\n", name)
	}

	check("godot-cpp checkout", godotcpp.Check(cfg.GodotCPPDir))
	_, sconsErr := exec.LookPath("scons")
	check("scons in PATH", sconsErr)
	_, projErr := os.Stat(cfg.TestProjectDir)
	check("test project", projErr)

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}
