//go:build darwin && cgo

package iokit

/*
#cgo LDFLAGS: -framework IOKit -framework CoreFoundation
#include <stdlib.h>
#include <CoreFoundation/CoreFoundation.h>
#include <IOKit/IOKitLib.h>

static io_service_t lookup_service(const char *name, int by_name) {
	CFMutableDictionaryRef matching = by_name ? IOServiceNameMatching(name) : IOServiceMatching(name);
	if (matching == NULL) {
		return IO_OBJECT_NULL;
	}
	// IOServiceGetMatchingService consumes the matching dictionary.
	return IOServiceGetMatchingService(MACH_PORT_NULL, matching);
}

static CFDictionaryRef copy_properties(io_registry_entry_t entry, kern_return_t *kr) {
	CFMutableDictionaryRef props = NULL;
	*kr = IORegistryEntryCreateCFProperties(entry, &props, kCFAllocatorDefault, kNilOptions);
	if (*kr != KERN_SUCCESS) {
		return NULL;
	}
	return props;
}

static char *copy_cstring(CFStringRef s) {
	CFIndex n = CFStringGetMaximumSizeForEncoding(CFStringGetLength(s), kCFStringEncodingUTF8) + 1;
	char *buf = malloc(n);
	if (buf == NULL) {
		return NULL;
	}
	if (!CFStringGetCString(s, buf, n, kCFStringEncodingUTF8)) {
		free(buf);
		return NULL;
	}
	return buf;
}
*/
import "C"

import (
	"errors"
	"fmt"
	"sync"
	"time"
	"unsafe"

	"github.com/osx-registryio/registryio/internal/logger"
	"github.com/osx-registryio/registryio/pkg/types"
)

// Supported reports whether the native binding is compiled in.
const Supported = true

// CFAbsoluteTime counts seconds from 2001-01-01T00:00:00Z.
var cfEpoch = time.Date(2001, 1, 1, 0, 0, 0, 0, time.UTC)

// Source is a types.Source over the live I/O Kit registry.
type Source struct{}

// New returns the native source.
func New() *Source { return &Source{} }

// Lookup returns the first registry entry matching name.
func (s *Source) Lookup(name string, kind types.MatchKind) (types.Entry, error) {
	cname := C.CString(name)
	defer C.free(unsafe.Pointer(cname))

	byName := C.int(0)
	if kind == types.MatchName {
		byName = 1
	}

	svc := C.lookup_service(cname, byName)
	logger.Debug("iokit lookup", "service", name, "match", kind, "found", svc != 0)
	if svc == 0 {
		return nil, types.ErrNoMatch
	}
	return &entry{svc: svc}, nil
}

type entry struct {
	svc  C.io_service_t
	once sync.Once
}

// Properties copies and converts the entry's property dictionary.
func (e *entry) Properties() (types.Mapping, error) {
	var kr C.kern_return_t
	props := C.copy_properties(C.io_registry_entry_t(e.svc), &kr)
	if props == 0 {
		return nil, fmt.Errorf("IORegistryEntryCreateCFProperties: kern_return 0x%x", uint32(kr))
	}
	defer C.CFRelease(C.CFTypeRef(props))

	return convertDict(props)
}

// Release drops the entry's I/O Kit reference.
func (e *entry) Release() error {
	var kr C.kern_return_t
	e.once.Do(func() {
		kr = C.IOObjectRelease(C.io_object_t(e.svc))
	})
	if kr != C.KERN_SUCCESS {
		return fmt.Errorf("IOObjectRelease: kern_return 0x%x", uint32(kr))
	}
	return nil
}

func convert(ref C.CFTypeRef) (types.Value, error) {
	if ref == 0 {
		return types.Null(), nil
	}

	switch C.CFGetTypeID(ref) {
	case C.CFStringGetTypeID():
		s, err := goString(C.CFStringRef(ref))
		if err != nil {
			return types.Value{}, err
		}
		return types.String(s), nil

	case C.CFNumberGetTypeID():
		n := C.CFNumberRef(ref)
		if C.CFNumberIsFloatType(n) != 0 {
			var f C.double
			C.CFNumberGetValue(n, C.kCFNumberDoubleType, unsafe.Pointer(&f))
			return types.Float(float64(f)), nil
		}
		var i C.int64_t
		C.CFNumberGetValue(n, C.kCFNumberSInt64Type, unsafe.Pointer(&i))
		return types.Int(int64(i)), nil

	case C.CFBooleanGetTypeID():
		return types.Bool(C.CFBooleanGetValue(C.CFBooleanRef(ref)) != 0), nil

	case C.CFDataGetTypeID():
		d := C.CFDataRef(ref)
		n := C.CFDataGetLength(d)
		if n == 0 {
			return types.Bytes(nil), nil
		}
		return types.Bytes(C.GoBytes(unsafe.Pointer(C.CFDataGetBytePtr(d)), C.int(n))), nil

	case C.CFDateGetTypeID():
		secs := float64(C.CFDateGetAbsoluteTime(C.CFDateRef(ref)))
		t := cfEpoch.Add(time.Duration(secs * float64(time.Second)))
		return types.FromAny(t)

	case C.CFArrayGetTypeID():
		arr := C.CFArrayRef(ref)
		n := int(C.CFArrayGetCount(arr))
		out := make([]types.Value, n)
		for i := 0; i < n; i++ {
			v, err := convert(C.CFTypeRef(uintptr(C.CFArrayGetValueAtIndex(arr, C.CFIndex(i)))))
			if err != nil {
				return types.Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = v
		}
		return types.Seq(out...), nil

	case C.CFDictionaryGetTypeID():
		m, err := convertDict(C.CFDictionaryRef(ref))
		if err != nil {
			return types.Value{}, err
		}
		return types.Map(m), nil

	case C.CFNullGetTypeID():
		return types.Null(), nil

	default:
		return types.Value{}, types.Wrap(types.ErrTypeMismatch,
			fmt.Errorf("CFTypeID %d", uint64(C.CFGetTypeID(ref))))
	}
}

func convertDict(d C.CFDictionaryRef) (types.Mapping, error) {
	n := int(C.CFDictionaryGetCount(d))
	out := make(types.Mapping, n)
	if n == 0 {
		return out, nil
	}

	keys := make([]unsafe.Pointer, n)
	vals := make([]unsafe.Pointer, n)
	C.CFDictionaryGetKeysAndValues(d, &keys[0], &vals[0])

	for i := 0; i < n; i++ {
		kref := C.CFTypeRef(uintptr(keys[i]))
		if C.CFGetTypeID(kref) != C.CFStringGetTypeID() {
			// Registry property names are always strings.
			continue
		}
		k, err := goString(C.CFStringRef(kref))
		if err != nil {
			return nil, err
		}
		v, err := convert(C.CFTypeRef(uintptr(vals[i])))
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}

func goString(s C.CFStringRef) (string, error) {
	cs := C.copy_cstring(s)
	if cs == nil {
		return "", types.Wrap(types.ErrFormat, errors.New("CFString is not representable as UTF-8"))
	}
	defer C.free(unsafe.Pointer(cs))
	return C.GoString(cs), nil
}
