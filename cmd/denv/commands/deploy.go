package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newDeployCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deploy",
		Short: "Resolve the environment and install it into its prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Deploy(cmd.Context(), c.request(cmd))
		},
	}
}

func (c *CLI) newRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove",
		Short: "Delete the environment's prefix",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Remove(cmd.Context(), c.request(cmd))
		},
	}
}
