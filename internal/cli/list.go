package cli

import (
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/agentx-labs/cratekit/internal/registry"
	"github.com/agentx-labs/cratekit/internal/scaffold"
	"github.com/spf13/cobra"
)

var listJSON bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List scaffold actions",
	Long:  `List every action accepted by "add". Composite actions show their members in run order.`,
	Args:  cobra.NoArgs,
	RunE:  runList,
}

func init() {
	listCmd.Flags().BoolVar(&listJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(listCmd)
}

var actionSummaries = map[string]string{
	scaffold.NameInit:      "cargo new <name> [n], then the default files",
	scaffold.NameReadme:    "README.md (overwrites)",
	scaffold.NameLicense:   "LICENSE-APACHE, LICENSE-MIT, license section appended to README.md",
	scaffold.NameVSCode:    ".vscode/settings.json, .vscode/tasks.json",
	scaffold.NameFormatter: "rustfmt.toml",
	scaffold.NameGitIgnore: ".gitignore",
	scaffold.NameDefaults:  "the files added after init",
}

// listEntry represents an action for display.
type listEntry struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []string `json:"members,omitempty"`
}

func runList(cmd *cobra.Command, args []string) error {
	reg := actionRegistry()

	var entries []listEntry
	for _, name := range reg.Names() {
		e := listEntry{Name: name, Description: actionSummaries[name]}
		s, _ := reg.Get(name)
		if c, ok := s.(*scaffold.Composite); ok {
			e.Members = c.Members()
		}
		entries = append(entries, e)
	}

	out := cmd.OutOrStdout()
	if listJSON {
		data, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshaling actions: %w", err)
		}
		fmt.Fprintln(out, string(data))
		return nil
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ACTION\tDESCRIPTION")
	for _, e := range entries {
		desc := e.Description
		if len(e.Members) > 0 {
			desc += " (" + strings.Join(e.Members, " → ") + ")"
		}
		marker := ""
		if e.Name == registry.DefaultAction {
			marker = " *"
		}
		fmt.Fprintf(w, "%s%s\t%s\n", e.Name, marker, desc)
	}
	return w.Flush()
}
