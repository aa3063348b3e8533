package main

import (
	"fmt"

	"github.com/bsm/pack"
	"github.com/spf13/cobra"
)

func (a *app) getCmd() *cobra.Command {
	var (
		typeName string
		first    bool
	)

	cmd := &cobra.Command{
		Use:   "get FILE KEY",
		Short: "Print the values stored under a key, one per line",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.load(args[0])
			if err != nil {
				return err
			}
			r, name := f.Reader(), args[1]

			var t pack.Type
			if typeName != "" {
				t, err = pack.ParseType(typeName)
			} else {
				t, err = r.TypeOf(name)
			}
			if err != nil {
				return err
			}

			var vals []pack.Value
			if first {
				v, err := r.GetFirst(name, t)
				if err != nil {
					return err
				}
				vals = append(vals, v)
			} else if vals, err = r.GetAll(name, t); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, v := range vals {
				if _, err := fmt.Fprintln(out, v.String()); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&typeName, "type", "t", "", "value type (int, data, string, wstring, int64); defaults to the stored type")
	cmd.Flags().BoolVar(&first, "first", false, "print the first value only")
	return cmd
}
