// Package iokit binds the I/O Kit registry lookup and property APIs.
//
// Lookup resolves a service name with IOServiceMatching (class) or
// IOServiceNameMatching (name) and IOServiceGetMatchingService, which yields
// the first match. Properties copies the entry's dictionary with
// IORegistryEntryCreateCFProperties and converts every CoreFoundation object
// into a types.Value before releasing it, so nothing returned aliases
// platform memory.
//
// The binding is only compiled on darwin with cgo enabled; elsewhere
// Supported is false and Lookup fails with types.ErrUnsupported.
package iokit
