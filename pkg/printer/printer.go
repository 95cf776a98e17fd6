// Package printer renders registry property dictionaries as text or JSON.
package printer

import (
	"fmt"
	"io"

	"github.com/osx-registryio/registryio/pkg/types"
)

const (
	DefaultIndentSize    = 2
	DefaultMaxDepth      = 0
	DefaultMaxValueBytes = 32
)

// Format specifies the output format for printing.
type Format string

const (
	// FormatText outputs human-readable text format.
	FormatText Format = "text"

	// FormatJSON outputs JSON format.
	FormatJSON Format = "json"
)

// ParseFormat accepts "text" or "json". An empty string selects FormatText.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown output format %q", s)
	}
}

// Options controls printing behavior.
type Options struct {
	// Format specifies output format (text, json).
	// Default: FormatText
	Format Format

	// IndentSize is the number of spaces per indent level (text format only).
	// Default: 2
	IndentSize int

	// MaxDepth limits how deep nested mappings and sequences are expanded
	// (0 = unlimited). Collapsed containers show their element count.
	// Default: 0 (unlimited)
	MaxDepth int

	// MaxValueBytes limits how many bytes of binary values to display in text
	// output. Longer values are truncated. Zero or negative means no limit.
	// Default: 32
	MaxValueBytes int

	// ShowKinds includes value kind names.
	// Default: true
	ShowKinds bool
}

// DefaultOptions returns sensible defaults for printing.
func DefaultOptions() Options {
	return Options{
		Format:        FormatText,
		IndentSize:    DefaultIndentSize,
		MaxDepth:      DefaultMaxDepth,
		MaxValueBytes: DefaultMaxValueBytes,
		ShowKinds:     true,
	}
}

// Printer handles formatted output of property dictionaries.
type Printer struct {
	opts   Options
	writer io.Writer
}

// New creates a new Printer.
//
// Example:
//
//	v, _ := ioreg.Open("pmgr", ioreg.WithMatch(types.MatchName))
//	p := printer.New(os.Stdout, printer.DefaultOptions())
//	p.PrintMapping(v.Name(), v.Service())
func New(w io.Writer, opts Options) *Printer {
	if opts.IndentSize <= 0 {
		opts.IndentSize = DefaultIndentSize
	}
	if opts.MaxValueBytes < 0 {
		opts.MaxValueBytes = 0
	}
	return &Printer{
		writer: w,
		opts:   opts,
	}
}

// PrintMapping prints a named property dictionary with its entries sorted by key.
func (p *Printer) PrintMapping(name string, m types.Mapping) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printMappingJSON(name, m)
	default:
		return p.printMappingText(name, m)
	}
}

// PrintValue prints a single property.
func (p *Printer) PrintValue(key string, v types.Value) error {
	switch p.opts.Format {
	case FormatJSON:
		return p.printValueJSON(key, v)
	default:
		return p.printEntryText(key, v, 0)
	}
}
