package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newCacheCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Download the environment's package artifacts into the cache",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			list, err := cmd.Flags().GetBool("list")
			if err != nil {
				return err
			}
			if list {
				names, err := c.app.AssetNames(cmd.Context(), c.request(cmd))
				if err != nil {
					return err
				}
				for _, name := range names {
					fmt.Fprintln(cmd.OutOrStdout(), name)
				}
				return nil
			}
			return c.app.Cache(cmd.Context(), c.request(cmd))
		},
	}
	cmd.Flags().Bool("list", false, "Print the expected asset names without downloading")
	return cmd
}
