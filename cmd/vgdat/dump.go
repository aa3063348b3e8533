package main

import (
	"io"
	"os"

	"github.com/bsm/pack/dat"
	"github.com/spf13/cobra"
)

func (a *app) dumpCmd() *cobra.Command {
	var (
		output   string
		compress bool
	)

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Write the recovered container",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := a.load(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("snappy") {
				compress = a.cfg.Dump.Snappy
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" {
				file, cerr := os.Create(output)
				if cerr != nil {
					return cerr
				}
				defer func() {
					if e := file.Close(); e != nil && err == nil {
						err = e
					}
				}()
				w = file
			}

			a.logger.Debug("writing dump", "output", output, "snappy", compress, "bytes", len(f.Data))
			return dat.WriteDump(w, f.Data, compress)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file; defaults to stdout")
	cmd.Flags().BoolVar(&compress, "snappy", false, "write a snappy framed stream")
	return cmd
}
