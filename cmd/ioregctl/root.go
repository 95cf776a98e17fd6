package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"

	"github.com/osx-registryio/registryio/internal/config"
	"github.com/osx-registryio/registryio/internal/logger"
	"github.com/osx-registryio/registryio/pkg/ioreg"
	"github.com/osx-registryio/registryio/pkg/printer"
	"github.com/osx-registryio/registryio/pkg/types"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	verbose     bool
	quiet       bool
	jsonOut     bool
	formatFlag  string
	noColor     bool
	matchFlag   string
	archivePath string
	configPath  string
)

var rootCmd = &cobra.Command{
	Use:   "ioregctl",
	Short: "Inspect I/O Kit registry entries",
	Long: `ioregctl snapshots the property dictionary of an I/O Kit registry entry
and prints it, one property at a time or in full. It also decodes the DVFS
operating-point tables Apple Silicon power managers publish.

Entries are read from the live registry on macOS, or from a saved
"ioreg -a -l" dump with --archive.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		logger.Init(logger.Options{
			Enabled: verbose && !quiet,
			Level:   slog.LevelDebug,
		})
		return applyFormat()
	},
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format (same as --format json)")
	rootCmd.PersistentFlags().
		StringVar(&formatFlag, "format", string(printer.FormatText), "Output format (text, json)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().
		StringVar(&matchFlag, "match", "class", "How to match the service name (class, name)")
	rootCmd.PersistentFlags().
		StringVar(&archivePath, "archive", "", "Read from an \"ioreg -a -l\" dump instead of the live registry")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Profiles file merged over the built-in profiles")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error("command failed", "error", err)
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// applyFormat folds --format into jsonOut. --json wins over --format text.
func applyFormat() error {
	f, err := printer.ParseFormat(formatFlag)
	if err != nil {
		return err
	}
	if f == printer.FormatJSON {
		jsonOut = true
	}
	return nil
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...any) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...any) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stderr, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v any) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// newPrinter returns a printer on stdout honoring --json.
func newPrinter(opts printer.Options) *printer.Printer {
	if jsonOut {
		opts.Format = printer.FormatJSON
	}
	return printer.New(os.Stdout, opts)
}

// source picks the archive given with --archive, or the live registry.
func source() (types.Source, error) {
	if archivePath == "" {
		return ioreg.DefaultSource(), nil
	}
	printVerbose("Reading archive: %s\n", archivePath)
	return ioreg.OpenArchive(archivePath)
}

// openView snapshots service using the global --match flag.
func openView(service string) (*ioreg.View, error) {
	kind, err := types.ParseMatchKind(matchFlag)
	if err != nil {
		return nil, err
	}
	return openViewWith(service, kind)
}

func openViewWith(service string, kind types.MatchKind) (*ioreg.View, error) {
	src, err := source()
	if err != nil {
		return nil, err
	}

	printVerbose("Opening %s %q\n", kind, service)
	v, err := ioreg.OpenWith(src, service, ioreg.WithMatch(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to open service: %w", err)
	}
	return v, nil
}

func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load profiles: %w", err)
	}
	return cfg, nil
}
