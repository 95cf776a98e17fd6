// Package plistreg decodes registry dumps written by `ioreg -a` into a node
// tree and matches service names against it.
package plistreg

import (
	"bytes"
	"fmt"

	"github.com/osx-registryio/registryio/pkg/types"
	"howett.net/plist"
)

// Keys ioreg adds to every entry. They describe the entry rather than being
// part of its property dictionary.
const (
	KeyClass    = "IOObjectClass"
	KeyName     = "IORegistryEntryName"
	KeyChildren = "IORegistryEntryChildren"
)

var metaKeys = map[string]struct{}{
	KeyClass:                  {},
	KeyName:                   {},
	KeyChildren:               {},
	"IOObjectRetainCount":     {},
	"IORegistryEntryID":       {},
	"IORegistryEntryLocation": {},
	"IOServiceBusyState":      {},
	"IOServiceBusyTime":       {},
	"IOServiceState":          {},
}

// IsMetaKey reports whether key is ioreg bookkeeping rather than a property.
func IsMetaKey(key string) bool {
	_, ok := metaKeys[key]
	return ok
}

// Node is one registry entry from a dump.
type Node struct {
	Class      string
	Name       string
	Properties types.Mapping
	Children   []*Node
}

// Decode parses an XML or binary plist produced by `ioreg -a`. The root may be
// a single entry (a full `-l` dump) or an array of entries (`-r` output).
// Empty input decodes to no nodes.
func Decode(data []byte) ([]*Node, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var root any
	if _, err := plist.Unmarshal(data, &root); err != nil {
		return nil, types.Wrap(types.ErrFormat, err)
	}

	switch t := root.(type) {
	case map[string]any:
		n, err := buildNode(t)
		if err != nil {
			return nil, err
		}
		return []*Node{n}, nil
	case []any:
		return buildNodes(t)
	default:
		return nil, types.Wrap(types.ErrFormat, fmt.Errorf("unexpected plist root %T", root))
	}
}

func buildNodes(list []any) ([]*Node, error) {
	nodes := make([]*Node, 0, len(list))
	for i, e := range list {
		m, ok := e.(map[string]any)
		if !ok {
			return nil, types.Wrap(types.ErrFormat, fmt.Errorf("entry %d is %T, not a dictionary", i, e))
		}
		n, err := buildNode(m)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, n)
	}
	return nodes, nil
}

func buildNode(m map[string]any) (*Node, error) {
	n := &Node{Properties: make(types.Mapping, len(m))}
	n.Class, _ = m[KeyClass].(string)
	n.Name, _ = m[KeyName].(string)

	for k, raw := range m {
		if IsMetaKey(k) {
			continue
		}
		v, err := types.FromAny(raw)
		if err != nil {
			return nil, fmt.Errorf("entry %q property %q: %w", n.Name, k, err)
		}
		n.Properties[k] = v
	}

	if kids, ok := m[KeyChildren].([]any); ok {
		children, err := buildNodes(kids)
		if err != nil {
			return nil, err
		}
		n.Children = children
	}
	return n, nil
}

// Matches reports whether n satisfies a lookup of name by kind. Class matching
// only sees the concrete class; dumps do not record superclasses.
func (n *Node) Matches(name string, kind types.MatchKind) bool {
	if kind == types.MatchName {
		return n.Name == name
	}
	return n.Class == name
}

// Find returns the first node, in depth-first pre-order, that matches name.
func Find(nodes []*Node, name string, kind types.MatchKind) *Node {
	for _, n := range nodes {
		if n.Matches(name, kind) {
			return n
		}
		if found := Find(n.Children, name, kind); found != nil {
			return found
		}
	}
	return nil
}

// Entry adapts a decoded node to types.Entry.
type Entry struct {
	node *Node
}

// NewEntry wraps n.
func NewEntry(n *Node) *Entry { return &Entry{node: n} }

// Properties returns a deep copy of the node's properties.
func (e *Entry) Properties() (types.Mapping, error) {
	return e.node.Properties.Clone(), nil
}

// Release is a no-op; decoded nodes hold no platform resources.
func (e *Entry) Release() error { return nil }
