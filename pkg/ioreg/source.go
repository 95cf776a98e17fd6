package ioreg

import (
	"github.com/osx-registryio/registryio/internal/archive"
	"github.com/osx-registryio/registryio/internal/iokit"
	"github.com/osx-registryio/registryio/internal/ioregtool"
	"github.com/osx-registryio/registryio/pkg/types"
)

// ToolOptions configures the ioreg(8) source.
type ToolOptions = ioregtool.Options

// DefaultSource returns the native I/O Kit source when it is compiled in, and
// a source that shells out to ioreg(8) otherwise.
func DefaultSource() types.Source {
	if iokit.Supported {
		return iokit.New()
	}
	return ioregtool.New(ioregtool.Options{})
}

// ToolSource returns a source that runs ioreg(8), regardless of cgo.
func ToolSource(opts ToolOptions) types.Source {
	return ioregtool.New(opts)
}

// OpenArchive returns a source over a saved `ioreg -a -l` dump.
func OpenArchive(path string) (types.Source, error) {
	src, err := archive.Open(path)
	if err != nil {
		return nil, err
	}
	return src, nil
}

// LoadArchive returns a source over an in-memory `ioreg -a -l` dump.
func LoadArchive(data []byte) (types.Source, error) {
	src, err := archive.Load(data)
	if err != nil {
		return nil, err
	}
	return src, nil
}
