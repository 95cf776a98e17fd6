package main

import (
	"fmt"

	"github.com/osx-registryio/registryio/pkg/printer"
	"github.com/spf13/cobra"
)

var (
	dumpDepth    int
	dumpMaxBytes int
	dumpNoKinds  bool
)

func init() {
	cmd := newDumpCmd()
	cmd.Flags().IntVar(&dumpDepth, "depth", 0, "Maximum nesting depth (0 = unlimited)")
	cmd.Flags().
		IntVar(&dumpMaxBytes, "max-bytes", printer.DefaultMaxValueBytes, "Truncate binary values after N bytes (0 = no limit)")
	cmd.Flags().BoolVar(&dumpNoKinds, "no-kinds", false, "Hide value kinds")
	rootCmd.AddCommand(cmd)
}

func newDumpCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dump <service>",
		Short: "Human-readable dump of a registry entry",
		Long: `The dump command prints every property of the first registry entry
matching the service.

Example:
  ioregctl dump IOPlatformExpertDevice
  ioregctl dump pmgr --match name --depth 1
  ioregctl dump pmgr --match name --max-bytes 0 --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDump(args)
		},
	}
	return cmd
}

func runDump(args []string) error {
	v, err := openView(args[0])
	if err != nil {
		return err
	}

	opts := printer.DefaultOptions()
	opts.MaxDepth = dumpDepth
	opts.MaxValueBytes = dumpMaxBytes
	opts.ShowKinds = !dumpNoKinds

	if err := newPrinter(opts).PrintMapping(v.Name(), v.Service()); err != nil {
		return fmt.Errorf("failed to dump service: %w", err)
	}
	return nil
}
