package types

import (
	"bytes"
	"fmt"
	"math"
	"sort"
	"time"
)

// Kind enumerates the shapes a registry property value can take.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindFloat
	KindString
	KindBytes
	KindMapping
	KindSequence
)

// String implements the Stringer interface for Kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBytes:
		return "bytes"
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Value is a registry property value. The zero Value is Null.
//
// Values built through the constructors own their payload; use Clone before
// handing a Value to code that may mutate returned containers.
type Value struct {
	kind Kind
	b    bool
	i    int64
	f    float64
	s    string
	raw  []byte
	m    Mapping
	seq  []Value
}

// Mapping is a property dictionary keyed by property name.
type Mapping map[string]Value

// Null returns the null value.
func Null() Value { return Value{} }

// Bool wraps a boolean.
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }

// Int wraps a signed integer.
func Int(i int64) Value { return Value{kind: KindInt, i: i} }

// Uint wraps an unsigned integer. Values above math.MaxInt64 are stored
// bit-for-bit and recovered by Value.Uint.
func Uint(u uint64) Value { return Value{kind: KindInt, i: int64(u)} }

// Float wraps a floating point number.
func Float(f float64) Value { return Value{kind: KindFloat, f: f} }

// String wraps a string.
func String(s string) Value { return Value{kind: KindString, s: s} }

// Bytes wraps a copy of b.
func Bytes(b []byte) Value {
	return Value{kind: KindBytes, raw: bytes.Clone(nonNil(b))}
}

// Map wraps m without copying it. A nil m becomes an empty mapping.
func Map(m Mapping) Value {
	if m == nil {
		m = Mapping{}
	}
	return Value{kind: KindMapping, m: m}
}

// Seq wraps vs without copying it.
func Seq(vs ...Value) Value {
	if vs == nil {
		vs = []Value{}
	}
	return Value{kind: KindSequence, seq: vs}
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}

// Kind reports the shape of v.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the null value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// AsBool returns the boolean payload.
func (v Value) AsBool() (bool, bool) { return v.b, v.kind == KindBool }

// AsInt returns the integer payload.
func (v Value) AsInt() (int64, bool) { return v.i, v.kind == KindInt }

// Uint returns the integer payload reinterpreted as unsigned.
func (v Value) Uint() (uint64, bool) { return uint64(v.i), v.kind == KindInt }

// AsFloat returns the float payload. Integers are widened.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.f, true
	case KindInt:
		return float64(v.i), true
	default:
		return 0, false
	}
}

// AsString returns the string payload.
func (v Value) AsString() (string, bool) { return v.s, v.kind == KindString }

// AsBytes returns the byte payload. The slice aliases v.
func (v Value) AsBytes() ([]byte, bool) { return v.raw, v.kind == KindBytes }

// AsMapping returns the mapping payload. The map aliases v.
func (v Value) AsMapping() (Mapping, bool) { return v.m, v.kind == KindMapping }

// AsSeq returns the sequence payload. The slice aliases v.
func (v Value) AsSeq() ([]Value, bool) { return v.seq, v.kind == KindSequence }

// Len returns the element count for bytes, strings, mappings and sequences,
// and 0 for scalars.
func (v Value) Len() int {
	switch v.kind {
	case KindBytes:
		return len(v.raw)
	case KindString:
		return len(v.s)
	case KindMapping:
		return len(v.m)
	case KindSequence:
		return len(v.seq)
	default:
		return 0
	}
}

// Clone returns a deep copy of v.
func (v Value) Clone() Value {
	switch v.kind {
	case KindBytes:
		return Bytes(v.raw)
	case KindMapping:
		return Value{kind: KindMapping, m: v.m.Clone()}
	case KindSequence:
		out := make([]Value, len(v.seq))
		for i, e := range v.seq {
			out[i] = e.Clone()
		}
		return Value{kind: KindSequence, seq: out}
	default:
		return v
	}
}

// Equal reports structural equality. NaN floats compare equal to each other.
func (v Value) Equal(o Value) bool {
	if v.kind != o.kind {
		return false
	}
	switch v.kind {
	case KindNull:
		return true
	case KindBool:
		return v.b == o.b
	case KindInt:
		return v.i == o.i
	case KindFloat:
		return v.f == o.f || (math.IsNaN(v.f) && math.IsNaN(o.f))
	case KindString:
		return v.s == o.s
	case KindBytes:
		return bytes.Equal(v.raw, o.raw)
	case KindMapping:
		return v.m.Equal(o.m)
	case KindSequence:
		if len(v.seq) != len(o.seq) {
			return false
		}
		for i := range v.seq {
			if !v.seq[i].Equal(o.seq[i]) {
				return false
			}
		}
		return true
	}
	return false
}

// Interface converts v back into plain Go values: nil, bool, int64, float64,
// string, []byte, map[string]any and []any.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.b
	case KindInt:
		return v.i
	case KindFloat:
		return v.f
	case KindString:
		return v.s
	case KindBytes:
		return bytes.Clone(v.raw)
	case KindMapping:
		out := make(map[string]any, len(v.m))
		for k, e := range v.m {
			out[k] = e.Interface()
		}
		return out
	case KindSequence:
		out := make([]any, len(v.seq))
		for i, e := range v.seq {
			out[i] = e.Interface()
		}
		return out
	default:
		return nil
	}
}

// String renders v compactly for diagnostics. Use pkg/printer for dumps.
func (v Value) String() string {
	switch v.kind {
	case KindNull:
		return "null"
	case KindBool:
		return fmt.Sprint(v.b)
	case KindInt:
		return fmt.Sprint(v.i)
	case KindFloat:
		return fmt.Sprint(v.f)
	case KindString:
		return fmt.Sprintf("%q", v.s)
	case KindBytes:
		return fmt.Sprintf("<%x>", v.raw)
	case KindMapping:
		var buf bytes.Buffer
		buf.WriteByte('{')
		for i, k := range v.m.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			fmt.Fprintf(&buf, "%q=%s", k, v.m[k])
		}
		buf.WriteByte('}')
		return buf.String()
	case KindSequence:
		var buf bytes.Buffer
		buf.WriteByte('(')
		for i, e := range v.seq {
			if i > 0 {
				buf.WriteByte(',')
			}
			buf.WriteString(e.String())
		}
		buf.WriteByte(')')
		return buf.String()
	}
	return "?"
}

// Keys returns the mapping's keys in lexical order.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of m. A nil mapping clones to an empty one.
func (m Mapping) Clone() Mapping {
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = v.Clone()
	}
	return out
}

// Equal reports whether m and o hold structurally equal entries.
func (m Mapping) Equal(o Mapping) bool {
	if len(m) != len(o) {
		return false
	}
	for k, v := range m {
		ov, ok := o[k]
		if !ok || !v.Equal(ov) {
			return false
		}
	}
	return true
}

// FromAny converts a decoded native value into a Value. It accepts what plist
// and JSON decoders produce, plus Value and Mapping themselves. Dates become
// RFC 3339 strings. Anything else fails with ErrTypeMismatch.
func FromAny(x any) (Value, error) {
	switch t := x.(type) {
	case nil:
		return Null(), nil
	case Value:
		return t.Clone(), nil
	case Mapping:
		return Map(t.Clone()), nil
	case bool:
		return Bool(t), nil
	case int:
		return Int(int64(t)), nil
	case int8:
		return Int(int64(t)), nil
	case int16:
		return Int(int64(t)), nil
	case int32:
		return Int(int64(t)), nil
	case int64:
		return Int(t), nil
	case uint:
		return Uint(uint64(t)), nil
	case uint8:
		return Uint(uint64(t)), nil
	case uint16:
		return Uint(uint64(t)), nil
	case uint32:
		return Uint(uint64(t)), nil
	case uint64:
		return Uint(t), nil
	case float32:
		return Float(float64(t)), nil
	case float64:
		return Float(t), nil
	case string:
		return String(t), nil
	case []byte:
		return Bytes(t), nil
	case time.Time:
		return String(t.UTC().Format(time.RFC3339)), nil
	case map[string]any:
		m, err := MappingFromAny(t)
		if err != nil {
			return Value{}, err
		}
		return Map(m), nil
	case []any:
		out := make([]Value, len(t))
		for i, e := range t {
			v, err := FromAny(e)
			if err != nil {
				return Value{}, fmt.Errorf("index %d: %w", i, err)
			}
			out[i] = v
		}
		return Seq(out...), nil
	default:
		return Value{}, Wrap(ErrTypeMismatch, fmt.Errorf("%T", x))
	}
}

// MappingFromAny converts a decoded dictionary into a Mapping.
func MappingFromAny(src map[string]any) (Mapping, error) {
	out := make(Mapping, len(src))
	for k, e := range src {
		v, err := FromAny(e)
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		out[k] = v
	}
	return out, nil
}
