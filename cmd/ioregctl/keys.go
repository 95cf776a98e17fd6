package main

import (
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keys <service>",
		Short: "List the property keys of a registry entry",
		Long: `The keys command lists the top-level property keys of the first registry
entry matching the service, in lexical order.

Example:
  ioregctl keys IOPlatformExpertDevice
  ioregctl keys pmgr --match name
  ioregctl keys pmgr --match name --archive ioreg.plist --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
	return cmd
}

func runKeys(args []string) error {
	v, err := openView(args[0])
	if err != nil {
		return err
	}

	if jsonOut {
		result := map[string]any{
			"service": v.Name(),
			"match":   v.Match().String(),
			"keys":    v.Keys(),
			"count":   v.Len(),
		}
		return printJSON(result)
	}

	for k := range v.All() {
		printInfo("  %s\n", k)
	}
	printInfo("\nTotal: %d keys\n", v.Len())
	return nil
}
