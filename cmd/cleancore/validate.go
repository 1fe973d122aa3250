package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"cleancore/internal/core"
	"cleancore/internal/input"
	"cleancore/pkg/domain"
)

func newValidateCmd(a *app) *cobra.Command {
	var (
		file string
		kind string
	)
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Check that every field of a record is present",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			record, err := loadRecord(kind, file)
			if err != nil {
				return err
			}
			res, err := a.service.CheckRecord(cmd.Context(), record)
			out := cmd.OutOrStdout()
			for _, v := range res.Violations {
				fmt.Fprintf(out, "%s\t%s\t%s\t%s\n", v.Severity, v.Rule, v.Field, v.Message)
			}
			var violation core.RuleViolationError
			if errors.As(err, &violation) {
				return errSilent
			}
			if err != nil {
				return err
			}
			fmt.Fprintln(out, "ready")
			return nil
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "", "YAML or JSON document (- for stdin)")
	cmd.Flags().StringVarP(&kind, "kind", "k", string(domain.EntityProduct), "Record kind: product|user_settings")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func loadRecord(kind, file string) (domain.Record, error) {
	switch domain.EntityType(kind) {
	case domain.EntityProduct:
		product, err := input.ProductFile(file)
		if err != nil {
			return nil, err
		}
		return product, nil
	case domain.EntityUserSettings:
		settings, err := input.UserSettingsFile(file, nil)
		if err != nil {
			return nil, err
		}
		return settings, nil
	default:
		return nil, fmt.Errorf("unknown record kind %s", kind)
	}
}
