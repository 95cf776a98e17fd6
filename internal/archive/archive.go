// Package archive serves registry lookups from a saved `ioreg -a -l` dump, so
// snapshots can be taken offline or on hosts without I/O Kit.
package archive

import (
	"fmt"
	"os"

	"github.com/osx-registryio/registryio/internal/logger"
	"github.com/osx-registryio/registryio/internal/plistreg"
	"github.com/osx-registryio/registryio/pkg/types"
)

// Source is a types.Source backed by a decoded dump.
type Source struct {
	origin string
	roots  []*plistreg.Node
}

// Open reads and decodes the dump at path.
func Open(path string) (*Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read archive: %w", err)
	}
	s, err := load(path, data)
	if err != nil {
		return nil, fmt.Errorf("decode archive %s: %w", path, err)
	}
	logger.Info("archive loaded", "archive", path, "roots", len(s.roots))
	return s, nil
}

// Load decodes a dump held in memory.
func Load(data []byte) (*Source, error) {
	return load("<memory>", data)
}

func load(origin string, data []byte) (*Source, error) {
	roots, err := plistreg.Decode(data)
	if err != nil {
		return nil, err
	}
	return &Source{origin: origin, roots: roots}, nil
}

// Lookup returns the first entry, in depth-first pre-order, matching name.
func (s *Source) Lookup(name string, kind types.MatchKind) (types.Entry, error) {
	n := plistreg.Find(s.roots, name, kind)
	logger.Debug("archive lookup", "archive", s.origin, "service", name, "match", kind, "found", n != nil)
	if n == nil {
		return nil, types.ErrNoMatch
	}
	return plistreg.NewEntry(n), nil
}
