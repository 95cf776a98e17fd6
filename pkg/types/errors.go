package types

// ErrKind classifies errors so callers can branch on intent rather than text.
type ErrKind int

const (
	ErrKindArgument    ErrKind = iota // caller supplied an unusable argument (e.g., empty service name)
	ErrKindNotFound                   // no registry entry matched
	ErrKindUnsupported                // the platform service is not available on this host
	ErrKindType                       // a value has an unexpected or unsupported shape
	ErrKindFormat                     // platform output could not be decoded
)

// String returns a short lowercase name for the kind.
func (k ErrKind) String() string {
	switch k {
	case ErrKindArgument:
		return "argument"
	case ErrKindNotFound:
		return "not-found"
	case ErrKindUnsupported:
		return "unsupported"
	case ErrKindType:
		return "type"
	case ErrKindFormat:
		return "format"
	default:
		return "unknown"
	}
}

// Error is a typed error with an optional underlying cause.
type Error struct {
	Kind ErrKind
	Msg  string
	Err  error // optional underlying cause
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Err != nil {
		return e.Msg + ": " + e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same kind and message, so a sentinel still
// matches after it has been re-wrapped with a cause via Wrap.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok || e == nil || t == nil {
		return false
	}
	return e.Kind == t.Kind && e.Msg == t.Msg
}

// Wrap returns a copy of sentinel carrying cause as its underlying error.
func Wrap(sentinel *Error, cause error) *Error {
	return &Error{Kind: sentinel.Kind, Msg: sentinel.Msg, Err: cause}
}

// Sentinels commonly returned by implementations.
var (
	// ErrNoServiceName indicates a lookup was attempted without a service name.
	ErrNoServiceName = &Error{Kind: ErrKindArgument, Msg: "no service name given"}
	// ErrNoMatch indicates no registry entry matched the service name.
	ErrNoMatch = &Error{Kind: ErrKindNotFound, Msg: "no matching registry entry"}
	// ErrUnsupported indicates the registry service is unavailable on this host.
	ErrUnsupported = &Error{Kind: ErrKindUnsupported, Msg: "registry service unavailable"}
	// ErrTypeMismatch indicates a value could not be represented or has the wrong kind.
	ErrTypeMismatch = &Error{Kind: ErrKindType, Msg: "registry value has unsupported type"}
	// ErrFormat indicates platform output could not be decoded.
	ErrFormat = &Error{Kind: ErrKindFormat, Msg: "malformed registry data"}
)
