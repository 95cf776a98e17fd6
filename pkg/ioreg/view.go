package ioreg

import (
	"fmt"
	"iter"
	"strings"

	"github.com/osx-registryio/registryio/pkg/printer"
	"github.com/osx-registryio/registryio/pkg/types"
)

// View is an immutable snapshot of one registry entry's property dictionary.
// It is safe for concurrent use.
type View struct {
	name  string
	match types.MatchKind
	props types.Mapping
	keys  []string
}

// Open snapshots the first registry entry matching serviceName using
// DefaultSource.
func Open(serviceName string, opts ...Option) (*View, error) {
	return OpenWith(DefaultSource(), serviceName, opts...)
}

// OpenWith snapshots the first entry src resolves for serviceName. The entry
// handle is released before OpenWith returns, on every path.
func OpenWith(src types.Source, serviceName string, opts ...Option) (*View, error) {
	o := defaultOpenOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if serviceName == "" {
		return nil, types.ErrNoServiceName
	}

	entry, err := src.Lookup(serviceName, o.match)
	if err != nil {
		o.debug("registry lookup failed", "service", serviceName, "match", o.match, "error", err)
		return nil, fmt.Errorf("lookup %s %q: %w", o.match, serviceName, err)
	}
	defer func() {
		if rerr := entry.Release(); rerr != nil {
			o.warn("release registry entry", "service", serviceName, "error", rerr)
		}
	}()

	props, err := entry.Properties()
	if err != nil {
		return nil, fmt.Errorf("read properties of %q: %w", serviceName, err)
	}

	// Sources hand over caller-owned data, but the snapshot must not share
	// anything with them.
	snap := props.Clone()
	o.debug("registry snapshot", "service", serviceName, "match", o.match, "properties", len(snap))

	return &View{
		name:  serviceName,
		match: o.match,
		props: snap,
		keys:  snap.Keys(),
	}, nil
}

// Name returns the service name the view was opened with.
func (v *View) Name() string { return v.name }

// Match returns how the service name was matched.
func (v *View) Match() types.MatchKind { return v.match }

// Service returns a deep copy of the whole snapshot.
func (v *View) Service() types.Mapping { return v.props.Clone() }

// Get returns a deep copy of the property stored under key. It reports false
// for an absent key and for the empty key.
func (v *View) Get(key string) (types.Value, bool) {
	if key == "" {
		return types.Null(), false
	}
	val, ok := v.props[key]
	if !ok {
		return types.Null(), false
	}
	return val.Clone(), true
}

// Mapping returns the property under key when it is a mapping.
func (v *View) Mapping(key string) (types.Mapping, bool) {
	val, ok := v.Get(key)
	if !ok {
		return nil, false
	}
	return val.AsMapping()
}

// Keys returns the property names in lexical order.
func (v *View) Keys() []string {
	out := make([]string, len(v.keys))
	copy(out, v.keys)
	return out
}

// Values returns deep copies of the properties, index-aligned with Keys.
func (v *View) Values() []types.Value {
	out := make([]types.Value, len(v.keys))
	for i, k := range v.keys {
		out[i] = v.props[k].Clone()
	}
	return out
}

// Len returns the number of properties.
func (v *View) Len() int { return len(v.keys) }

// All yields the property names in the same order as Keys. The sequence is
// finite and may be ranged over any number of times.
func (v *View) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, k := range v.keys {
			if !yield(k) {
				return
			}
		}
	}
}

// Entries yields name/value pairs in the same order as Keys. Values are deep
// copies.
func (v *View) Entries() iter.Seq2[string, types.Value] {
	return func(yield func(string, types.Value) bool) {
		for _, k := range v.keys {
			if !yield(k, v.props[k].Clone()) {
				return
			}
		}
	}
}

// String renders the whole snapshot for diagnostics. The format is not stable.
func (v *View) String() string {
	var sb strings.Builder
	p := printer.New(&sb, printer.DefaultOptions())
	if err := p.PrintMapping(v.name, v.props); err != nil {
		return fmt.Sprintf("[%s] <%v>", v.name, err)
	}
	return sb.String()
}
