//go:build !darwin || !cgo

package iokit

import (
	"fmt"
	"runtime"

	"github.com/osx-registryio/registryio/pkg/types"
)

// Supported reports whether the native binding is compiled in.
const Supported = false

// Source reports ErrUnsupported for every lookup.
type Source struct{}

// New returns the stub source.
func New() *Source { return &Source{} }

// Lookup always fails: I/O Kit needs darwin and cgo.
func (s *Source) Lookup(string, types.MatchKind) (types.Entry, error) {
	return nil, types.Wrap(types.ErrUnsupported, fmt.Errorf("I/O Kit binding not built for %s", runtime.GOOS))
}
