package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build [dir]",
		Short: "Compose and print the lint configuration for a project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Build(cmd.Context(), projectDir(args), cmd.Flags())
			if err != nil {
				return err
			}
			return c.app.Render(cmd.OutOrStdout(), res)
		},
	}
	addSettingsFlags(cmd.Flags())
	return cmd
}
