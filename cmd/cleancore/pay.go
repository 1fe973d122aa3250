package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"cleancore/pkg/domain"
)

func newPayCmd(_ *app) *cobra.Command {
	status := domain.DefaultPayStatus()
	cmd := &cobra.Command{
		Use:   "pay",
		Short: "Print the pay amount for an employment status",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatFloat(domain.PayAmount(status), 'f', -1, 64))
			return nil
		},
	}
	cmd.Flags().BoolVar(&status.Dead, "dead", status.Dead, "Employee is deceased")
	cmd.Flags().BoolVar(&status.Separated, "separated", status.Separated, "Employee is separated")
	cmd.Flags().BoolVar(&status.Retired, "retired", status.Retired, "Employee is retired")
	return cmd
}
