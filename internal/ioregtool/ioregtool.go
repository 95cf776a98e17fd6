// Package ioregtool looks up registry entries by running the ioreg(8) tool in
// archive mode and decoding its plist output. It needs no cgo.
package ioregtool

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os/exec"
	"strings"
	"time"

	"github.com/osx-registryio/registryio/internal/logger"
	"github.com/osx-registryio/registryio/internal/plistreg"
	"github.com/osx-registryio/registryio/pkg/types"
)

const (
	// DefaultPath is used when ioreg is not on PATH; some shells omit /usr/sbin.
	DefaultPath    = "/usr/sbin/ioreg"
	DefaultTimeout = 10 * time.Second
)

// Runner executes the tool and returns its standard output.
type Runner func(ctx context.Context, path string, args ...string) ([]byte, error)

// Options configures a Source.
type Options struct {
	// Path to the ioreg binary. Default: looked up on PATH, then DefaultPath.
	Path string

	// Timeout bounds a single lookup. Default: DefaultTimeout.
	Timeout time.Duration

	// Run replaces process execution (tests). Default: exec.CommandContext.
	Run Runner
}

// Source is a types.Source backed by the ioreg tool.
type Source struct {
	path    string
	timeout time.Duration
	run     Runner
}

// New returns a Source with defaults applied.
func New(opts Options) *Source {
	s := &Source{path: opts.Path, timeout: opts.Timeout, run: opts.Run}
	if s.path == "" {
		p, err := exec.LookPath("ioreg")
		if err != nil {
			p = DefaultPath
		}
		s.path = p
	}
	if s.timeout <= 0 {
		s.timeout = DefaultTimeout
	}
	if s.run == nil {
		s.run = runCommand
	}
	return s
}

// Args returns the ioreg arguments for a lookup: archive output, search the
// whole plane, report only the matching entry itself.
func Args(name string, kind types.MatchKind) []string {
	flag := "-c"
	if kind == types.MatchName {
		flag = "-n"
	}
	return []string{"-a", "-r", "-d", "1", flag, name}
}

// Lookup runs ioreg for name and returns the first reported entry.
func (s *Source) Lookup(name string, kind types.MatchKind) (types.Entry, error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.timeout)
	defer cancel()

	args := Args(name, kind)
	logger.Debug("ioreg lookup", "path", s.path, "args", strings.Join(args, " "))

	out, err := s.run(ctx, s.path, args...)
	if err != nil {
		if errors.Is(err, exec.ErrNotFound) || errors.Is(err, fs.ErrNotExist) {
			return nil, types.Wrap(types.ErrUnsupported, err)
		}
		return nil, fmt.Errorf("run %s: %w", s.path, err)
	}

	nodes, err := plistreg.Decode(out)
	if err != nil {
		return nil, fmt.Errorf("decode ioreg output: %w", err)
	}
	if len(nodes) == 0 {
		return nil, types.ErrNoMatch
	}
	return plistreg.NewEntry(nodes[0]), nil
}

func runCommand(ctx context.Context, path string, args ...string) ([]byte, error) {
	out, err := exec.CommandContext(ctx, path, args...).Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && len(exitErr.Stderr) > 0 {
			return nil, fmt.Errorf("%w: %s", err, strings.TrimSpace(string(exitErr.Stderr)))
		}
		return nil, err
	}
	return out, nil
}
