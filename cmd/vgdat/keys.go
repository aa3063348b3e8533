package main

import (
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

func (a *app) keysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys FILE",
		Short: "List the keys of a container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.load(args[0])
			if err != nil {
				return err
			}
			keys, err := f.Reader().Keys()
			if err != nil {
				return err
			}

			tbl := tablewriter.NewWriter(cmd.OutOrStdout())
			tbl.SetHeader([]string{"Name", "Type", "Values"})
			for _, key := range keys {
				tbl.Append([]string{key.Name, key.Type.String(), strconv.Itoa(key.Len)})
			}
			tbl.Render()
			return nil
		},
	}
}
