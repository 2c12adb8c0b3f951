package commands

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.trai.ch/lintcfg/internal/core/domain"
	"go.trai.ch/lintcfg/internal/ui/style"
	"go.trai.ch/zerr"
)

func (c *CLI) newCheckVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check-version <version> <floor>",
		Short: "Check a declared dependency version against a minimum",
		Example: "  lintcfg check-version ^17.0.2 17\n" +
			"  lintcfg check-version \">=16\" 16.14",
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ok, err := c.app.CheckVersion(args[0], args[1])
			if err != nil {
				return err
			}
			if !ok {
				return zerr.With(zerr.With(domain.ErrVersionNotSatisfied, "version", args[0]), "floor", args[1])
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s satisfies %s\n", style.Check, args[0], args[1])
			return nil
		},
	}
}
