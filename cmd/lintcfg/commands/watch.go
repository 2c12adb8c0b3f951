package commands

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.trai.ch/lintcfg/internal/app"
	"go.trai.ch/lintcfg/internal/ui/style"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [dir]",
		Short: "Print the configuration and again whenever the project changes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			heading := style.Heading(out)

			return c.app.Watch(cmd.Context(), projectDir(args), cmd.Flags(), func(res *app.BuildResult) error {
				title := fmt.Sprintf("%s composed %d overrides at %s",
					style.Arrow, len(res.Config.Overrides), time.Now().Format(time.TimeOnly))
				if _, err := fmt.Fprintln(out, heading.Render(title)); err != nil {
					return err
				}
				return c.app.Render(out, res)
			})
		},
	}
	addSettingsFlags(cmd.Flags())
	return cmd
}
