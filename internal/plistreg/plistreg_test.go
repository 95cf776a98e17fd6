package plistreg

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/osx-registryio/registryio/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// readTestdata loads a fixture from the repository testdata directory.
func readTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("..", "..", "testdata", name))
	require.NoError(t, err)
	return data
}

func TestDecode_Tree(t *testing.T) {
	nodes, err := Decode(readTestdata(t, "ioreg-m1.plist"))
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	root := nodes[0]
	require.Equal(t, "Root", root.Name)
	require.Equal(t, "IORegistryEntry", root.Class)
	require.Len(t, root.Children, 1)
	require.Equal(t, "J293AP", root.Children[0].Name)

	// Bookkeeping keys never leak into properties.
	for k := range root.Properties {
		assert.False(t, IsMetaKey(k), "meta key %q kept as property", k)
	}
	require.Contains(t, root.Properties, "IOKitBuildVersion")
}

func TestDecode_Array(t *testing.T) {
	nodes, err := Decode(readTestdata(t, "ioreg-pmgr.plist"))
	require.NoError(t, err)
	require.Len(t, nodes, 1)

	pmgr := nodes[0]
	require.Equal(t, "pmgr", pmgr.Name)
	require.Len(t, pmgr.Properties, 10)
	require.True(t, pmgr.Properties["#address-cells"].Equal(types.Int(2)))
	require.True(t, pmgr.Properties["IOSleepSupported"].Equal(types.Bool(true)))
	require.Equal(t, types.KindBytes, pmgr.Properties["voltage-states1-sram"].Kind())
	require.Equal(t, types.KindMapping, pmgr.Properties["dvfs-tables"].Kind())
	require.True(t, pmgr.Properties["power-gates"].Equal(types.Seq(
		types.String("ECPU"), types.String("PCPU"), types.String("GFX"),
	)))
}

func TestDecode_Empty(t *testing.T) {
	nodes, err := Decode([]byte("  \n"))
	require.NoError(t, err)
	require.Empty(t, nodes)
}

func TestDecode_Malformed(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"truncated binary plist", "bplist00\x00\x01"},
		{"scalar root", `<?xml version="1.0"?><plist version="1.0"><string>x</string></plist>`},
		{"array of scalars", `<?xml version="1.0"?><plist version="1.0"><array><integer>1</integer></array></plist>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.in))
			require.Error(t, err)
			require.True(t, errors.Is(err, types.ErrFormat))
		})
	}
}

func TestFind(t *testing.T) {
	nodes, err := Decode(readTestdata(t, "ioreg-m1.plist"))
	require.NoError(t, err)

	tests := []struct {
		name     string
		service  string
		kind     types.MatchKind
		wantName string
	}{
		{"class first match", "AppleT8103PMGR", types.MatchClass, "pmgr"},
		{"name", "pmgr-aux", types.MatchName, "pmgr-aux"},
		{"root by name", "Root", types.MatchName, "Root"},
		{"deep class", "AGXAcceleratorG13G", types.MatchClass, "gpu"},
		{"name is not class", "pmgr", types.MatchClass, ""},
		{"missing", "IOUSBHostDevice", types.MatchClass, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			n := Find(nodes, tt.service, tt.kind)
			if tt.wantName == "" {
				require.Nil(t, n)
				return
			}
			require.NotNil(t, n)
			require.Equal(t, tt.wantName, n.Name)
		})
	}
}

func TestEntry_PropertiesAreCopies(t *testing.T) {
	n := &Node{Name: "x", Properties: types.Mapping{"blob": types.Bytes([]byte{1})}}
	e := NewEntry(n)

	props, err := e.Properties()
	require.NoError(t, err)
	raw, _ := props["blob"].AsBytes()
	raw[0] = 9
	delete(props, "blob")

	orig, _ := n.Properties["blob"].AsBytes()
	require.Equal(t, []byte{1}, orig)
	require.NoError(t, e.Release())
	require.NoError(t, e.Release())
}
