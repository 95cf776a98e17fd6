package main

import (
	"context"
	"fmt"
	"time"

	"github.com/osx-registryio/registryio/internal/hostinfo"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newInfoCmd())
}

func newInfoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "info",
		Short: "Report the host the registry is read from",
		Long: `The info command reports operating system, hardware model and CPU
details, and whether the native I/O Kit binding is compiled in.

Example:
  ioregctl info
  ioregctl info --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInfo(cmd.Context())
		},
	}
	return cmd
}

func runInfo(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	info, err := hostinfo.Collect(ctx)
	if err != nil {
		return fmt.Errorf("failed to get host info: %w", err)
	}

	if jsonOut {
		return printJSON(info)
	}

	printInfo("%s\n", styled(headerStyle, "Host Information:"))
	printInfo("  Hostname: %s\n", info.Hostname)
	printInfo("  OS: %s %s (%s)\n", info.Platform, info.PlatformVersion, info.Arch)
	printInfo("  Kernel: %s\n", info.KernelVersion)
	if info.Model != "" {
		printInfo("  Model: %s\n", info.Model)
	}
	if info.CPUBrand != "" {
		printInfo("  CPU: %s (%d logical)\n", info.CPUBrand, info.LogicalCPUs)
	}
	if info.NativeIOKit {
		printInfo("  Registry: native I/O Kit\n")
	} else {
		printInfo("  Registry: ioreg(8) tool or --archive\n")
	}
	return nil
}
