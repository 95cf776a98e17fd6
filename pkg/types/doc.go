// Package types defines the value model and platform seams shared by the
// registry view, the DVFS helpers, and the registry sources.
//
// Registry properties are arbitrarily nested, so they are modelled as a
// recursive tagged variant (Value) instead of interface{} trees. Conversion
// from a platform's native representation happens exactly once, at the
// boundary where a Source hands over an entry's properties.
//
// Design goals:
//   - Snapshots are fully owned: Clone copies byte slices and nested containers.
//   - Typed errors with stable categories (argument/not-found/unsupported/...).
//   - Never panic on malformed platform data.
package types
