package cli

import (
	"io"

	"github.com/agentx-labs/cratekit/internal/branding"
	"github.com/agentx-labs/cratekit/internal/config"
	"github.com/agentx-labs/cratekit/internal/logging"
	"github.com/agentx-labs/cratekit/internal/scaffold"
	"github.com/agentx-labs/cratekit/internal/templates"
	"github.com/agentx-labs/cratekit/internal/toolchain"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	verbosity    int
	templatesDir string
	useBaked     bool
)

// newCreator builds the project creator for the configured command.
// Tests replace it with a fake.
var newCreator = func(command string, stdout, stderr io.Writer) scaffold.ProjectCreator {
	c := toolchain.NewCargo(command)
	c.Stdout = stdout
	c.Stderr = stderr
	return c
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` creates Rust crates and adds boilerplate files to them
(README, licenses, editor settings, rustfmt config, .gitignore) from a
template set that is either compiled into the binary or read from a directory.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logging.SetupLogger(verbosity)
		return config.Load()
	},
}

func init() {
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase log verbosity (-v info, -vv debug, -vvv trace)")
	rootCmd.PersistentFlags().StringVar(&templatesDir, "templates-dir", "", "Read templates from this directory")
	rootCmd.PersistentFlags().BoolVar(&useBaked, "baked", false, "Use the templates compiled into the binary")
	rootCmd.MarkFlagsMutuallyExclusive("templates-dir", "baked")
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	return rootCmd.Execute()
}

// storeSource picks the template mode and directory. Flags win over config.
func storeSource(settings config.Settings) (templates.Mode, string) {
	switch {
	case useBaked:
		return templates.ModeBaked, ""
	case templatesDir != "":
		return templates.ModeDir, templatesDir
	default:
		return settings.TemplatesMode, settings.TemplatesDir
	}
}

// loadStore returns the process-wide template store.
func loadStore(settings config.Settings) (*templates.Store, error) {
	mode, dir := storeSource(settings)
	return templates.Default(mode, dir)
}
