package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newProfilesCmd())
}

func newProfilesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profiles",
		Short: "List lookup profiles",
		Long: `The profiles command lists the built-in lookup profiles, merged with
any given with --config.

Example:
  ioregctl profiles
  ioregctl profiles --config ~/.ioregctl.yaml --json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProfiles()
		},
	}
	return cmd
}

func runProfiles() error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(cfg.Profiles)
	}

	for _, name := range cfg.Names() {
		p := cfg.Profiles[name]
		printInfo("%s %s (%s)\n", styled(keyStyle, fmt.Sprintf("%-10s", name)), p.Service, p.MatchKind())
		if p.Description != "" {
			printInfo("           %s\n", styled(mutedStyle, p.Description))
		}
		for _, k := range p.DVFSKeys {
			printInfo("           dvfs: %s\n", k)
		}
	}
	return nil
}
