package cli

import (
	"fmt"
	"strings"

	"github.com/agentx-labs/cratekit/internal/branding"
	"github.com/agentx-labs/cratekit/internal/config"
	"github.com/agentx-labs/cratekit/internal/logging"
	"github.com/agentx-labs/cratekit/internal/registry"
	"github.com/agentx-labs/cratekit/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(addCmd)
}

var addCmd = &cobra.Command{
	Use:   "add [action] [values...]",
	Short: "Run a scaffold action in the current directory",
	Long: fmt.Sprintf(`Run one scaffold action. Without an action, "%[2]s" runs.

Actions:
  %[3]s

Examples:
  %[1]s add init demo-app        # cargo new demo-app, then add the default files
  %[1]s add init demo-app n      # cargo new demo-app --vcs none, nothing else
  %[1]s add lic                  # license files, appended to README.md
  %[1]s add defaults             # vscode, fmt, md, gi in the current directory`,
		branding.CLIName(), registry.DefaultAction, strings.Join(actionRegistry().Names(), ", ")),
	RunE: runAdd,
}

func runAdd(cmd *cobra.Command, args []string) error {
	settings, err := config.Current()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	store, err := loadStore(settings)
	if err != nil {
		return err
	}

	action, values := registry.DefaultAction, args
	if len(args) > 0 {
		action, values = args[0], args[1:]
	}
	logger := logging.GetLogger("cli")
	logger.Info().Str("action", action).Strs("values", values).Msg("running action")

	creator.bind(settings.CreateCommand, cmd.OutOrStdout(), cmd.ErrOrStderr())
	sc := scaffold.NewContext(scaffold.Options{
		Out:     cmd.OutOrStdout(),
		Author:  settings.Author,
		Version: settings.CrateVersion,
		Edition: settings.Edition,
	})
	sc.Set(scaffold.InitValuesKey, values)

	return actionRegistry().Run(action, store, sc)
}
