package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"cleancore/pkg/capability"
)

func newBirdsCmd(a *app) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "birds",
		Short: "List installed species and their capabilities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			birds := a.service.Species()
			if filter != "" {
				c, ok := capability.Parse(filter)
				if !ok {
					return fmt.Errorf("unknown capability %s", filter)
				}
				birds = a.service.SpeciesWith(c)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "SPECIES\tCAPABILITIES\tFLIGHT")
			for _, bird := range birds {
				bird.Eat()
				flight := "-"
				if flyer, ok := capability.As[capability.Flyer](bird); ok {
					flight = fmt.Sprint(flyer.Fly())
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\n", bird.Name(), capability.Capabilities(bird), flight)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().StringVarP(&filter, "capability", "c", "", "Only list species with this capability (eat|fly|run|swim)")
	return cmd
}
