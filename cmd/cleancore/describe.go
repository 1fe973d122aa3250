package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"cleancore/internal/input"
)

func newDescribeCmd(a *app) *cobra.Command {
	var file string
	cmd := &cobra.Command{
		Use:   "describe",
		Short: "Render a product when it is ready",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			product, err := input.ProductFile(file)
			if err != nil {
				return err
			}
			text, ok := a.service.DescribeProduct(cmd.Context(), product)
			if !ok {
				return errSilent
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON product document (- for stdin)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}
