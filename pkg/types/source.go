package types

// MatchKind selects how a service name is matched against registry entries.
type MatchKind int

const (
	// MatchClass matches entries whose class is, or derives from, the name
	// (IOServiceMatching semantics).
	MatchClass MatchKind = iota
	// MatchName matches entries by registry entry name (IOServiceNameMatching).
	MatchName
)

// String implements the Stringer interface for MatchKind.
func (k MatchKind) String() string {
	switch k {
	case MatchClass:
		return "class"
	case MatchName:
		return "name"
	default:
		return "unknown"
	}
}

// ParseMatchKind parses "class" or "name". An empty string selects MatchClass.
func ParseMatchKind(s string) (MatchKind, error) {
	switch s {
	case "", "class":
		return MatchClass, nil
	case "name":
		return MatchName, nil
	default:
		return MatchClass, &Error{Kind: ErrKindArgument, Msg: "unknown match kind " + `"` + s + `"`}
	}
}

// Source resolves service names to registry entries.
type Source interface {
	// Lookup returns the first entry matching name. It returns ErrNoMatch when
	// nothing matches. The caller must Release the returned entry.
	Lookup(name string, kind MatchKind) (Entry, error)
}

// Entry is a transient handle to one registry entry.
type Entry interface {
	// Properties returns a freshly converted, caller-owned copy of the entry's
	// property dictionary.
	Properties() (Mapping, error)

	// Release frees the platform handle. It is safe to call more than once.
	Release() error
}
