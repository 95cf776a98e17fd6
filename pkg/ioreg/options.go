package ioreg

import (
	"log/slog"

	"github.com/osx-registryio/registryio/internal/logger"
	"github.com/osx-registryio/registryio/pkg/types"
)

// Option configures Open and OpenWith.
type Option func(*openOptions)

type openOptions struct {
	match  types.MatchKind
	logger *slog.Logger // nil: package logger
}

func defaultOpenOptions() openOptions {
	return openOptions{match: types.MatchClass}
}

func (o openOptions) debug(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Debug(msg, args...)
		return
	}
	logger.Debug(msg, args...)
}

func (o openOptions) warn(msg string, args ...any) {
	if o.logger != nil {
		o.logger.Warn(msg, args...)
		return
	}
	logger.Warn(msg, args...)
}

// WithMatch selects class matching (the default, IOServiceMatching) or name
// matching (IOServiceNameMatching).
func WithMatch(kind types.MatchKind) Option {
	return func(o *openOptions) { o.match = kind }
}

// WithLogger routes lookup diagnostics to l instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *openOptions) {
		if l != nil {
			o.logger = l
		}
	}
}
