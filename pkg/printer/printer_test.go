package printer

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/osx-registryio/registryio/pkg/types"
	"github.com/stretchr/testify/require"
)

// samplePMGR returns a small dictionary shaped like a power manager node.
func samplePMGR() types.Mapping {
	return types.Mapping{
		"#address-cells":   types.Int(2),
		"IOSleepSupported": types.Bool(true),
		"compatible":       types.Bytes([]byte("pmgr1,t8103\x00apple,pmgr\x00")),
		"voltage-states9":  types.Bytes(bytes.Repeat([]byte{0xAB}, 40)),
		"dvfs-tables": types.Map(types.Mapping{
			"ecpu": types.Map(types.Mapping{"states": types.Int(5)}),
		}),
		"empty-table": types.Map(nil),
		"power-gates": types.Seq(types.String("ECPU"), types.String("PCPU")),
		"scale":       types.Float(0.5),
	}
}

func TestPrinter_PrintMapping_Text(t *testing.T) {
	var buf bytes.Buffer
	p := New(&buf, DefaultOptions())
	require.NoError(t, p.PrintMapping("pmgr", samplePMGR()))

	output := buf.String()
	t.Logf("Text output:\n%s", output)

	require.True(t, strings.HasPrefix(output, "[pmgr]\n"))
	require.Contains(t, output, `  "#address-cells" [int] = 0x2 (2)`)
	require.Contains(t, output, `  "IOSleepSupported" [bool] = true`)
	require.Contains(t, output, `  "compatible" [bytes] = <"pmgr1,t8103","apple,pmgr">`)
	require.Contains(t, output, "(truncated, 40 total bytes)")
	require.Contains(t, output, `  "empty-table" [mapping] = {}`)
	require.Contains(t, output, `      "states" [int] = 0x5 (5)`)
	require.Contains(t, output, `    [1] [string] = "PCPU"`)
	require.Contains(t, output, `  "scale" [float] = 0.5`)

	// Keys are printed in lexical order.
	require.Less(t, strings.Index(output, `"#address-cells"`), strings.Index(output, `"scale"`))
}

func TestPrinter_MaxDepth(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.MaxDepth = 1
	p := New(&buf, opts)
	require.NoError(t, p.PrintMapping("", samplePMGR()))

	output := buf.String()
	require.Contains(t, output, `"dvfs-tables" [mapping] = {...1 entries}`)
	require.Contains(t, output, `"power-gates" [sequence] = (...2 items)`)
	require.NotContains(t, output, `"states"`)
}

func TestPrinter_NoKindsNoLimit(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ShowKinds = false
	opts.MaxValueBytes = 0
	p := New(&buf, opts)
	require.NoError(t, p.PrintValue("voltage-states9", types.Bytes([]byte{0x00, 0x01, 0x02})))

	require.Equal(t, "\"voltage-states9\" = <000102>\n", buf.String())
}

func TestPrinter_NegativeMaxValueBytesMeansNoLimit(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.ShowKinds = false
	opts.MaxValueBytes = -1
	p := New(&buf, opts)

	require.NotPanics(t, func() {
		require.NoError(t, p.PrintValue("blob", types.Bytes([]byte{1, 2, 3})))
	})
	require.Equal(t, "\"blob\" = <010203>\n", buf.String())

	buf.Reset()
	require.NoError(t, p.PrintMapping("pmgr", samplePMGR()))
	require.NotContains(t, buf.String(), "truncated")
}

func TestPrinter_PrintMapping_JSON(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	p := New(&buf, opts)
	require.NoError(t, p.PrintMapping("pmgr", samplePMGR()))

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Equal(t, "pmgr", result["name"])
	require.EqualValues(t, 8, result["count"])

	props := result["properties"].(map[string]any)
	cells := props["#address-cells"].(map[string]any)
	require.Equal(t, "int", cells["kind"])
	require.EqualValues(t, 2, cells["data"])

	compat := props["compatible"].(map[string]any)
	require.Equal(t, "bytes", compat["kind"])
	require.Equal(t, "706d6772312c7438313033006170706c652c706d677200", compat["data"])
}

func TestPrinter_PrintValue_JSONWithoutKinds(t *testing.T) {
	var buf bytes.Buffer
	opts := DefaultOptions()
	opts.Format = FormatJSON
	opts.ShowKinds = false
	p := New(&buf, opts)

	v := types.Map(types.Mapping{"blob": types.Bytes([]byte{0xde, 0xad}), "n": types.Int(3)})
	require.NoError(t, p.PrintValue("table", v))

	var result map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	table := result["table"].(map[string]any)
	require.Equal(t, "dead", table["blob"])
	require.EqualValues(t, 3, table["n"])
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("")
	require.NoError(t, err)
	require.Equal(t, FormatText, f)

	f, err = ParseFormat("json")
	require.NoError(t, err)
	require.Equal(t, FormatJSON, f)

	_, err = ParseFormat("reg")
	require.Error(t, err)
}
