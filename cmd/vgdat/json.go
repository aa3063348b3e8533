package main

import (
	"encoding/json"

	"github.com/bsm/pack"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

type document struct {
	Version int     `json:"version"`
	Entries []entry `json:"entries"`
}

type entry struct {
	ID       uint64 `json:"id"`
	Name     string `json:"name"`
	Owner    string `json:"owner"`
	Message  string `json:"message"`
	IP       string `json:"ip"`
	Hostname string `json:"hostname"`
	Fqdn     string `json:"fqdn"`
	Country  string `json:"country"`
}

// text columns of a server list, in output order
var columns = []struct {
	name string
	typ  pack.Type
	set  func(*entry, string)
}{
	{"Name", pack.String, func(e *entry, s string) { e.Name = s }},
	{"Owner", pack.WString, func(e *entry, s string) { e.Owner = s }},
	{"Message", pack.WString, func(e *entry, s string) { e.Message = s }},
	{"IP", pack.String, func(e *entry, s string) { e.IP = s }},
	{"HostName", pack.String, func(e *entry, s string) { e.Hostname = s }},
	{"Fqdn", pack.String, func(e *entry, s string) { e.Fqdn = s }},
	{"CountryShort", pack.String, func(e *entry, s string) { e.Country = s }},
}

func (a *app) jsonCmd() *cobra.Command {
	var indent bool

	cmd := &cobra.Command{
		Use:   "json FILE",
		Short: "Print the server list of a .dat file as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := a.load(args[0])
			if err != nil {
				return err
			}
			doc, err := serverList(f.Reader())
			if err != nil {
				return err
			}
			a.logger.Debug("built server list", "entries", len(doc.Entries))

			enc := json.NewEncoder(cmd.OutOrStdout())
			if indent || a.cfg.JSON.Indent {
				enc.SetIndent("", "  ")
			}
			return enc.Encode(doc)
		},
	}
	cmd.Flags().BoolVar(&indent, "indent", false, "indent output")
	return cmd
}

// serverList joins the server list columns by position. The ID column
// determines the number of entries.
func serverList(r *pack.Reader) (*document, error) {
	ids, err := r.Int64s("ID")
	if err != nil {
		return nil, errors.Wrap(err, "column ID")
	}

	entries := make([]entry, len(ids))
	for i, id := range ids {
		entries[i].ID = id
	}

	for _, col := range columns {
		vals, err := r.Strings(col.name, col.typ)
		if err != nil {
			return nil, errors.Wrapf(err, "column %s", col.name)
		}
		if len(vals) < len(entries) {
			return nil, errors.Wrapf(pack.ErrMalformed, "column %s has %d values, want %d", col.name, len(vals), len(entries))
		}
		for i := range entries {
			col.set(&entries[i], vals[i])
		}
	}
	return &document{Version: 1, Entries: entries}, nil
}
