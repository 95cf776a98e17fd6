package ioreg

import "github.com/osx-registryio/registryio/pkg/types"

// Re-export commonly used types from pkg/types so users only need to import pkg/ioreg.

// Value model.
type (
	Value   = types.Value
	Mapping = types.Mapping
	Kind    = types.Kind
)

// Source seams.
type (
	Source    = types.Source
	Entry     = types.Entry
	MatchKind = types.MatchKind
)

// Match kind constants.
const (
	MatchClass = types.MatchClass
	MatchName  = types.MatchName
)

// Error types.
type (
	Error   = types.Error
	ErrKind = types.ErrKind
)

// Common error sentinels.
var (
	ErrNoServiceName = types.ErrNoServiceName
	ErrNoMatch       = types.ErrNoMatch
	ErrUnsupported   = types.ErrUnsupported
	ErrTypeMismatch  = types.ErrTypeMismatch
	ErrFormat        = types.ErrFormat
)
