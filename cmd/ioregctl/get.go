package main

import (
	"fmt"

	"github.com/osx-registryio/registryio/pkg/printer"
	"github.com/spf13/cobra"
)

var (
	getShowKind bool
	getMaxBytes int
)

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getShowKind, "kind", false, "Show value kinds")
	cmd.Flags().IntVar(&getMaxBytes, "max-bytes", 0, "Truncate binary values after N bytes (0 = no limit)")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get <service> <key>",
		Short: "Print one property of a registry entry",
		Long: `The get command prints a single property of the first registry entry
matching the service.

Example:
  ioregctl get IOPlatformExpertDevice IOPlatformSerialNumber
  ioregctl get pmgr voltage-states9 --match name --kind
  ioregctl get pmgr dvfs-tables --match name --json`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
	return cmd
}

func runGet(args []string) error {
	service, key := args[0], args[1]

	v, err := openView(service)
	if err != nil {
		return err
	}

	val, ok := v.Get(key)
	if !ok {
		return fmt.Errorf("property %q not found on %s", key, service)
	}

	opts := printer.DefaultOptions()
	opts.ShowKinds = getShowKind || jsonOut
	opts.MaxValueBytes = getMaxBytes

	if err := newPrinter(opts).PrintValue(key, val); err != nil {
		return fmt.Errorf("failed to print value: %w", err)
	}
	return nil
}
