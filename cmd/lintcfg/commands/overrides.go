package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newOverridesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "overrides [dir]",
		Short: "List the composed overrides in output order",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := c.app.Build(cmd.Context(), projectDir(args), cmd.Flags())
			if err != nil {
				return err
			}
			return c.app.RenderOverrides(cmd.OutOrStdout(), res)
		},
	}
	addSettingsFlags(cmd.Flags())
	return cmd
}
