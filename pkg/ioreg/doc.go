/*
Package ioreg provides a read-only, dictionary-like view of one I/O Kit
registry entry's properties.

# Quick Start

Snapshot the power manager node and read a property:

	v, err := ioreg.Open("pmgr", ioreg.WithMatch(types.MatchName))
	if err != nil {
	    log.Fatal(err)
	}
	raw, ok := v.Get("voltage-states1-sram")

# Snapshots

Open performs one lookup and copies the entry's entire property dictionary
into process memory. Every accessor reads that copy; the registry is never
consulted again and never written. Values returned by Get and Service are
deep copies, so callers may mutate them freely. Two views of the same service
hold independent snapshots.

# Sources

A Source resolves the service name. DefaultSource uses the native I/O Kit
binding when the package is built on darwin with cgo, and the ioreg tool
otherwise. OpenWith accepts any types.Source, including an offline archive:

	src, err := ioreg.OpenArchive("ioreg-dump.plist")
	if err != nil {
	    log.Fatal(err)
	}
	v, err := ioreg.OpenWith(src, "AppleT8103PMGR")

# Errors

An empty service name fails with ErrNoServiceName; a name that matches no
entry fails with ErrNoMatch. Both are *types.Error values and can be told
apart with errors.Is.

# Iteration

Keys, Values and All share one lexical order fixed at construction:

	for key := range v.All() {
	    fmt.Println(key)
	}
*/
package ioreg
