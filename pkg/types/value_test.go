package types

import (
	"errors"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_ZeroIsNull(t *testing.T) {
	var v Value
	require.True(t, v.IsNull())
	require.Equal(t, KindNull, v.Kind())
	require.True(t, v.Equal(Null()))
	require.Nil(t, v.Interface())
}

func TestValue_Accessors(t *testing.T) {
	b, ok := Bool(true).AsBool()
	require.True(t, ok)
	require.True(t, b)

	i, ok := Int(-7).AsInt()
	require.True(t, ok)
	require.Equal(t, int64(-7), i)

	f, ok := Int(3).AsFloat()
	require.True(t, ok, "integers widen to float")
	require.Equal(t, 3.0, f)

	_, ok = String("x").AsInt()
	require.False(t, ok)

	u, ok := Uint(math.MaxUint64).Uint()
	require.True(t, ok)
	require.Equal(t, uint64(math.MaxUint64), u)

	require.Equal(t, 3, Bytes([]byte{1, 2, 3}).Len())
	require.Equal(t, 0, Int(5).Len())
}

func TestValue_CloneIsDeep(t *testing.T) {
	orig := Map(Mapping{
		"blob":   Bytes([]byte{0xAA, 0xBB}),
		"nested": Map(Mapping{"x": Int(1)}),
		"list":   Seq(Map(Mapping{"y": Int(2)})),
	})

	clone := orig.Clone()
	require.True(t, orig.Equal(clone))

	m, _ := clone.AsMapping()
	raw, _ := m["blob"].AsBytes()
	raw[0] = 0x00
	nested, _ := m["nested"].AsMapping()
	nested["x"] = Int(99)
	nested["added"] = Bool(true)
	list, _ := m["list"].AsSeq()
	inner, _ := list[0].AsMapping()
	inner["y"] = Null()

	om, _ := orig.AsMapping()
	origRaw, _ := om["blob"].AsBytes()
	assert.Equal(t, []byte{0xAA, 0xBB}, origRaw)
	on, _ := om["nested"].AsMapping()
	assert.True(t, on["x"].Equal(Int(1)))
	assert.NotContains(t, on, "added")
	ol, _ := om["list"].AsSeq()
	oi, _ := ol[0].AsMapping()
	assert.True(t, oi["y"].Equal(Int(2)))
}

func TestBytes_CopiesInput(t *testing.T) {
	src := []byte{1, 2, 3}
	v := Bytes(src)
	src[0] = 9

	got, ok := v.AsBytes()
	require.True(t, ok)
	require.Equal(t, []byte{1, 2, 3}, got)
}

func TestValue_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Value
		want bool
	}{
		{"same int", Int(1), Int(1), true},
		{"int vs float", Int(1), Float(1), false},
		{"nan", Float(math.NaN()), Float(math.NaN()), true},
		{"bytes", Bytes([]byte{1}), Bytes([]byte{1}), true},
		{"bytes differ", Bytes([]byte{1}), Bytes([]byte{2}), false},
		{"empty maps", Map(nil), Map(Mapping{}), true},
		{"map values differ", Map(Mapping{"a": Int(1)}), Map(Mapping{"a": Int(2)}), false},
		{"map keys differ", Map(Mapping{"a": Int(1)}), Map(Mapping{"b": Int(1)}), false},
		{"seq length", Seq(Int(1)), Seq(Int(1), Int(2)), false},
		{"seq", Seq(String("a"), Null()), Seq(String("a"), Null()), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.a.Equal(tt.b))
		})
	}
}

func TestFromAny(t *testing.T) {
	when := time.Date(2025, 2, 8, 12, 0, 0, 0, time.UTC)
	in := map[string]any{
		"flag":   true,
		"count":  uint64(4),
		"neg":    int64(-2),
		"ratio":  float32(0.5),
		"name":   "pmgr",
		"blob":   []byte{0x01, 0x00},
		"when":   when,
		"none":   nil,
		"list":   []any{uint64(1), "two"},
		"nested": map[string]any{"inner": int(3)},
	}

	v, err := FromAny(in)
	require.NoError(t, err)
	require.Equal(t, KindMapping, v.Kind())

	m, _ := v.AsMapping()
	require.Len(t, m, len(in))
	assert.True(t, m["flag"].Equal(Bool(true)))
	assert.True(t, m["count"].Equal(Int(4)))
	assert.True(t, m["neg"].Equal(Int(-2)))
	assert.True(t, m["ratio"].Equal(Float(0.5)))
	assert.True(t, m["name"].Equal(String("pmgr")))
	assert.True(t, m["blob"].Equal(Bytes([]byte{0x01, 0x00})))
	assert.True(t, m["when"].Equal(String("2025-02-08T12:00:00Z")))
	assert.True(t, m["none"].IsNull())
	assert.True(t, m["list"].Equal(Seq(Int(1), String("two"))))
	assert.True(t, m["nested"].Equal(Map(Mapping{"inner": Int(3)})))
}

func TestFromAny_Unsupported(t *testing.T) {
	_, err := FromAny(map[string]any{"ch": make(chan int)})
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrTypeMismatch))
	require.Contains(t, err.Error(), `key "ch"`)
}

func TestMapping_Keys_Sorted(t *testing.T) {
	m := Mapping{"b": Null(), "a": Null(), "c": Null()}
	require.Equal(t, []string{"a", "b", "c"}, m.Keys())
	require.Empty(t, Mapping(nil).Keys())
}

func TestValue_String(t *testing.T) {
	v := Map(Mapping{
		"b": Seq(Int(1), Bool(false)),
		"a": Bytes([]byte{0xde, 0xad}),
	})
	require.Equal(t, `{"a"=<dead>,"b"=(1,false)}`, v.String())
}

func TestError_IsAfterWrap(t *testing.T) {
	err := Wrap(ErrUnsupported, errors.New("exec: ioreg not found"))
	require.True(t, errors.Is(err, ErrUnsupported))
	require.False(t, errors.Is(err, ErrNoMatch))
	require.Equal(t, "registry service unavailable: exec: ioreg not found", err.Error())

	var typed *Error
	require.True(t, errors.As(err, &typed))
	require.Equal(t, ErrKindUnsupported, typed.Kind)
}
