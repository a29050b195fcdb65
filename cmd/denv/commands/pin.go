package commands

import (
	"github.com/spf13/cobra"
)

func (c *CLI) newPinCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pin",
		Short: "Pin the environment's resolution to a lock file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Pin(cmd.Context(), c.request(cmd))
		},
	}
}
