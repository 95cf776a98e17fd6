package main

import (
	"errors"
	"fmt"

	"github.com/osx-registryio/registryio/pkg/dvfs"
	"github.com/osx-registryio/registryio/pkg/printer"
	"github.com/osx-registryio/registryio/pkg/types"
	"github.com/spf13/cobra"
)

var (
	dvfsProfile string
	dvfsKey     string
)

func init() {
	cmd := newDVFSCmd()
	cmd.Flags().StringVar(&dvfsProfile, "profile", "", "Use a named profile instead of a service argument")
	cmd.Flags().StringVar(&dvfsKey, "key", "", "Print the DVFS sub-table stored under this key")
	rootCmd.AddCommand(cmd)
}

func newDVFSCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dvfs [service]",
		Short: "Print DVFS tables of a registry entry",
		Long: `The dvfs command prints dynamic voltage/frequency scaling data.

With --key it prints the dictionary stored under that key, or an empty
dictionary when the key is absent or not a non-empty dictionary. Without
--key it decodes the packed voltage-states tables into operating points.

Example:
  ioregctl dvfs pmgr --match name
  ioregctl dvfs --profile pmgr
  ioregctl dvfs pmgr --match name --key dvfs-tables --json`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDVFS(args)
		},
	}
	return cmd
}

func runDVFS(args []string) error {
	var (
		service string
		kind    types.MatchKind
		keys    []string
		err     error
	)

	switch {
	case dvfsProfile != "" && len(args) > 0:
		return errors.New("give either a service or --profile, not both")
	case dvfsProfile != "":
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		p, err := cfg.Profile(dvfsProfile)
		if err != nil {
			return err
		}
		service, kind, keys = p.Service, p.MatchKind(), p.DVFSKeys
	case len(args) == 1:
		service = args[0]
		if kind, err = types.ParseMatchKind(matchFlag); err != nil {
			return err
		}
	default:
		return errors.New("a service or --profile is required")
	}

	v, err := openViewWith(service, kind)
	if err != nil {
		return err
	}

	if dvfsKey != "" {
		table := dvfs.Extract(v.Service(), dvfsKey)
		if len(table) == 0 {
			printVerbose("No DVFS table under %q\n", dvfsKey)
		}
		if err := newPrinter(printer.DefaultOptions()).PrintMapping(dvfsKey, table); err != nil {
			return fmt.Errorf("failed to print table: %w", err)
		}
		return nil
	}

	tables := dvfs.Scan(v.Service(), keys...)
	if jsonOut {
		return printJSON(map[string]any{
			"service": v.Name(),
			"tables":  tables,
		})
	}

	if len(tables) == 0 {
		printInfo("No voltage-states tables on %s\n", v.Name())
		return nil
	}
	for _, t := range tables {
		printInfo("%s (%d points, %s to %s)\n", styled(headerStyle, t.Key), len(t.Points),
			formatHz(t.MinFrequencyHz()), formatHz(t.MaxFrequencyHz()))
		for _, p := range t.Points {
			printInfo("  %10s  %4d mV\n", formatHz(p.FrequencyHz), p.VoltageMV)
		}
	}
	return nil
}

func formatHz(hz uint64) string {
	switch {
	case hz >= 1_000_000_000:
		return fmt.Sprintf("%.3f GHz", float64(hz)/1e9)
	case hz >= 1_000_000:
		return fmt.Sprintf("%d MHz", hz/1_000_000)
	default:
		return fmt.Sprintf("%d Hz", hz)
	}
}
