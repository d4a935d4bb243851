package main

import (
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// displaysCmd lists attached displays.
func (c *cli) displaysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "displays",
		Short: "List attached displays and their bounds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			list, err := listDisplays()
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			printf(tw, "INDEX\tX\tY\tWIDTH\tHEIGHT\tPRIMARY\n")
			for _, d := range list {
				printf(tw, "%d\t%d\t%d\t%d\t%d\t%t\n", d.Index, d.Bounds.X, d.Bounds.Y, d.Bounds.W, d.Bounds.H, d.Primary)
			}
			return tw.Flush()
		},
	}
}
