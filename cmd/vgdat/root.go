package main

import (
	"fmt"
	"io"

	"github.com/bsm/pack"
	"github.com/bsm/pack/dat"
	"github.com/bsm/pack/internal/config"
	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
)

type app struct {
	stdout, stderr io.Writer

	cfgFile  string
	logLevel string

	cfg    *config.Config
	logger *log.Logger
	source string // last file passed to load
}

// run executes the command line and returns the exit code.
func run(args []string, stdout, stderr io.Writer) int {
	a := &app{stdout: stdout, stderr: stderr}

	cmd := a.rootCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return 0
	}

	if a.source != "" && isInvalid(err) {
		if a.logger != nil {
			a.logger.Debug("decode failed", "file", a.source, "error", err)
		}
		fmt.Fprintf(stdout, "\"%s\" does not appear to be a VPNGate.dat file.\n", a.source)
		return 1
	}
	fmt.Fprintln(stderr, "Error:", err)
	return 1
}

func (a *app) rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "vgdat",
		Short:         "VPNGate .dat utility",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd)
		},
	}
	cmd.SetOut(a.stdout)
	cmd.SetErr(a.stderr)

	cmd.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (YAML)")
	cmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		a.idCmd(),
		a.jsonCmd(),
		a.keysCmd(),
		a.getCmd(),
		a.dumpCmd(),
	)
	return cmd
}

func (a *app) init(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	lvl, err := cfg.Level()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = log.NewWithOptions(a.stderr, log.Options{
		Prefix: "vgdat",
		Level:  lvl,
	})
	return nil
}

// load opens name, remembering it for error reporting.
func (a *app) load(name string) (*dat.File, error) {
	a.source = name
	a.logger.Debug("loading", "file", name)

	f, err := dat.Load(name)
	if err != nil {
		return nil, err
	}
	a.logger.Info("loaded", "file", name, "records", f.Reader().NumRecords(), "bytes", len(f.Data))
	return f, nil
}

// isInvalid reports whether err means the input is not a readable .dat
// file, dump or container.
func isInvalid(err error) bool {
	return pack.IsCorrupt(err) ||
		errors.Is(err, dat.ErrInvalidFile) ||
		errors.Is(err, dat.ErrInvalidKey) ||
		errors.Is(err, dat.ErrInflate)
}
