package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (c *CLI) newIDCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "id",
		Short: "Print the environment's identity hash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			id, err := c.app.ID(c.request(cmd))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), id)
			return nil
		},
	}
}

func (c *CLI) newSoftwareCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "software",
		Short: "List the software declared by the environment",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			software, err := c.app.Software(c.request(cmd))
			if err != nil {
				return err
			}
			for _, s := range software {
				line := s.Name
				if s.Version != "" {
					line += " " + s.Version
				}
				if s.Secondary {
					line += " (pip)"
				}
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
}
