package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

func (a *app) idCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "id FILE",
		Short: "Print the identifier of a .dat file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.load(args[0])
			if err != nil {
				return err
			}
			if f.Identifier == "" {
				return errors.Newf("%s carries no identifier", args[0])
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), f.Identifier)
			return err
		},
	}
}
