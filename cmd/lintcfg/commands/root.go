// Package commands implements the CLI commands for lintcfg.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.trai.ch/lintcfg/internal/app"
	"go.trai.ch/lintcfg/internal/build"
)

// CLI represents the command line interface for lintcfg.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Build(ctx context.Context, dir string, flags *pflag.FlagSet) (*app.BuildResult, error)
	Watch(ctx context.Context, dir string, flags *pflag.FlagSet, fn func(*app.BuildResult) error) error
	Render(w io.Writer, res *app.BuildResult) error
	RenderOverrides(w io.Writer, res *app.BuildResult) error
	CheckVersion(declared, floor string) (bool, error)
	SetJSONLogs(enable bool)
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "lintcfg",
		Short:         "Compose lint configurations from project capabilities",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().Bool("log-json", false, "Write logs as JSON")

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if jsonLogs, _ := cmd.Flags().GetBool("log-json"); jsonLogs {
			c.app.SetJSONLogs(true)
		}
	}

	rootCmd.AddCommand(c.newBuildCmd())
	rootCmd.AddCommand(c.newOverridesCmd())
	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newCheckVersionCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// addSettingsFlags registers the flags that override tool settings.
// Only flags set explicitly take effect.
func addSettingsFlags(flags *pflag.FlagSet) {
	flags.StringP("format", "f", "yaml", "Output format: yaml, json or table")
	flags.Bool("internal", false, "Convert severities to the linter's numeric form")
	flags.BoolP("no-cache", "n", false, "Always recompose instead of reusing the cached configuration")
	flags.Duration("cache-ttl", 0, "How long a composed configuration stays valid")
}

func projectDir(args []string) string {
	if len(args) == 0 {
		return "."
	}
	return args[0]
}
