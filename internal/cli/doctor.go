package cli

import (
	"fmt"
	"io"
	"os/exec"

	"github.com/agentx-labs/cratekit/internal/config"
	"github.com/agentx-labs/cratekit/internal/errors"
	"github.com/agentx-labs/cratekit/internal/platform"
	"github.com/agentx-labs/cratekit/internal/scaffold"
	"github.com/agentx-labs/cratekit/internal/templates"
	"github.com/agentx-labs/cratekit/internal/toolchain"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check configuration, templates, and the cargo toolchain",
	Long: `Run diagnostic checks: the config file against its schema, the resolved
settings, the active template store, and the project-creation command and its
minimum version.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		failures := 0

		failures += checkConfigFile(out, config.FilePath())

		fmt.Fprintln(out, "Settings:")
		settings, err := config.Current()
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %v\n", err)
			return errors.Customf("doctor found %d problem(s)", failures+1)
		}
		fmt.Fprintf(out, "  [ OK ] author=%q edition=%s crate_version=%s\n",
			settings.Author, settings.Edition, settings.CrateVersion)

		fmt.Fprintln(out, "Templates:")
		mode, dir := storeSource(settings)
		store, err := loadStore(settings)
		if err != nil {
			fmt.Fprintf(out, "  [FAIL] %s store: %v\n", mode, err)
			failures++
		} else {
			label := string(mode)
			if mode == templates.ModeDir {
				label += " " + dir
			}
			fmt.Fprintf(out, "  [ OK ] %d templates loaded (%s)\n", len(store.Names()), label)
			for _, name := range scaffold.TemplateNames {
				if !store.Has(name) {
					fmt.Fprintf(out, "  [WARN] %s missing; actions that render it will fail\n", name)
				}
			}
		}

		failures += checkCreateCommand(out, settings)

		if failures > 0 {
			return errors.Customf("doctor found %d problem(s)", failures)
		}
		fmt.Fprintln(out, "All checks passed.")
		return nil
	},
}

func checkConfigFile(out io.Writer, path string) int {
	fmt.Fprintln(out, "Config file:")
	if !platform.Exists(platform.OS(), path) {
		fmt.Fprintf(out, "  [INFO] %s not found, using defaults\n", path)
		return 0
	}

	result, err := config.ValidateFile(path)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return 1
	}
	if !result.Valid {
		fmt.Fprintf(out, "  [FAIL] %s has %d issue(s):\n", path, len(result.Issues))
		for _, issue := range result.Issues {
			fmt.Fprintf(out, "         %s\n", issue)
		}
		return 1
	}
	fmt.Fprintf(out, "  [ OK ] %s is valid\n", path)
	return 0
}

func checkCreateCommand(out io.Writer, settings config.Settings) int {
	fmt.Fprintln(out, "Toolchain:")
	path, err := exec.LookPath(settings.CreateCommand)
	if err != nil {
		fmt.Fprintf(out, "  [MISS] %s not found\n", settings.CreateCommand)
		return 1
	}
	fmt.Fprintf(out, "  [ OK ] %s found at %s\n", settings.CreateCommand, path)

	have, err := toolchain.NewCargo(path).CheckMinVersion(settings.CreateMinVersion)
	if err != nil {
		fmt.Fprintf(out, "  [FAIL] %v\n", err)
		return 1
	}
	fmt.Fprintf(out, "  [ OK ] version %s (minimum %s)\n", have, settings.CreateMinVersion)
	return 0
}
