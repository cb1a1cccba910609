package cli

import (
	"fmt"

	"github.com/agentx-labs/cratekit/internal/config"
	"github.com/agentx-labs/cratekit/internal/style"
	"github.com/agentx-labs/cratekit/internal/templates"
	"github.com/spf13/cobra"
)

var templatesShow string

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "List the active template set",
	Long:  `List template names from the active store, or print one template's source with --show.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Current()
		if err != nil {
			return fmt.Errorf("loading configuration: %w", err)
		}
		store, err := loadStore(settings)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if templatesShow != "" {
			body, ok := store.Body(templatesShow)
			if !ok {
				return fmt.Errorf("template %q: %w", templatesShow, templates.ErrNotFound)
			}
			fmt.Fprint(out, body)
			return nil
		}

		mode, dir := storeSource(settings)
		source := string(mode)
		if mode == templates.ModeDir {
			source += " " + dir
		}
		fmt.Fprintln(out, style.Muted.Render("source: "+source))
		for _, name := range store.Names() {
			fmt.Fprintln(out, name)
		}
		return nil
	},
}

func init() {
	templatesCmd.Flags().StringVar(&templatesShow, "show", "", "Print the source of one template")
	rootCmd.AddCommand(templatesCmd)
}
