package info

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
	"pgregory.net/rapid"
)

type payload struct {
	Impl  bool `json:"implemented" yaml:"implemented"`
	Count int  `json:"count" yaml:"count"`
}

func (p payload) Implemented() bool { return p.Impl }

func sample() *Bundle {
	return New("1.2.0", "/plugins/Fake.clap", "/plugins/Fake.clap", []Descriptor{
		{ID: "org.example.a", Name: "A", Features: []string{"instrument", "synthesizer"}},
		{ID: "org.example.b", Name: "B"},
	})
}

func decode(t *testing.T, data []byte) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(data, &out))
	return out
}

func TestFlatShape(t *testing.T) {
	data, err := json.Marshal(sample())
	require.NoError(t, err)

	out := decode(t, data)
	assert.Equal(t, "1.2.0", out["clap-version"])
	assert.Equal(t, "/plugins/Fake.clap", out["bundle-file"])

	plugins := out["plugins"].([]any)
	require.Len(t, plugins, 2)
	for _, p := range plugins {
		entry := p.(map[string]any)
		assert.NotContains(t, entry, "descriptor")
		assert.NotContains(t, entry, "extensions")
		assert.Contains(t, entry, "id")
		assert.NotContains(t, entry, "manual-url")
	}

	b := plugins[1].(map[string]any)
	assert.Equal(t, []any{}, b["features"])
}

func TestNestedShape(t *testing.T) {
	b := sample()
	require.NoError(t, b.SetExtension(0, "clap.params", payload{Impl: true, Count: 3}))

	data, err := json.Marshal(b)
	require.NoError(t, err)

	plugins := decode(t, data)["plugins"].([]any)
	first := plugins[0].(map[string]any)
	require.Len(t, first, 2)
	assert.Equal(t, "org.example.a", first["descriptor"].(map[string]any)["id"])
	params := first["extensions"].(map[string]any)["clap.params"].(map[string]any)
	assert.Equal(t, true, params["implemented"])
	assert.Equal(t, float64(3), params["count"])

	second := plugins[1].(map[string]any)
	assert.Equal(t, "org.example.b", second["id"])
}

func TestSetExtension(t *testing.T) {
	b := sample()

	t.Run("LastWriteWins", func(t *testing.T) {
		require.NoError(t, b.SetExtension(1, "clap.gui", payload{Impl: true}))
		require.NoError(t, b.SetExtension(1, "clap.gui", payload{Impl: false}))
		assert.Len(t, b.Plugins[1].Extensions, 1)
		assert.False(t, b.Plugins[1].Extensions["clap.gui"].Implemented())
	})

	t.Run("OutOfRange", func(t *testing.T) {
		assert.Error(t, b.SetExtension(2, "clap.gui", payload{}))
		assert.Error(t, b.SetExtension(-1, "clap.gui", payload{}))
	})
}

func TestNoBundleFile(t *testing.T) {
	data, err := json.Marshal(New("1.0.0", "/x", "", nil))
	require.NoError(t, err)
	out := decode(t, data)
	assert.NotContains(t, out, "bundle-file")
	assert.Equal(t, []any{}, out["plugins"])
}

func TestYAMLShape(t *testing.T) {
	b := sample()
	require.NoError(t, b.SetExtension(0, "clap.state", payload{Impl: true}))

	data, err := yaml.Marshal(b)
	require.NoError(t, err)

	var out struct {
		Plugins []map[string]any `yaml:"plugins"`
	}
	require.NoError(t, yaml.Unmarshal(data, &out))
	require.Len(t, out.Plugins, 2)
	assert.Contains(t, out.Plugins[0], "descriptor")
	assert.Contains(t, out.Plugins[0], "extensions")
	assert.Equal(t, "org.example.b", out.Plugins[1]["id"])
}

func TestShapeSwitchProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		names := rapid.SliceOfDistinct(
			rapid.SampledFrom([]string{"clap.params", "clap.gui", "clap.tail", "clap.state"}),
			rapid.ID[string],
		).Draw(t, "names")

		b := New("1.2.0", "/p", "", []Descriptor{{ID: "x"}})
		for _, name := range names {
			if err := b.SetExtension(0, name, payload{Impl: true}); err != nil {
				t.Fatal(err)
			}
		}

		data, err := json.Marshal(b.Plugins[0])
		if err != nil {
			t.Fatal(err)
		}
		var entry map[string]any
		if err := json.Unmarshal(data, &entry); err != nil {
			t.Fatal(err)
		}

		_, nested := entry["extensions"]
		if nested != (len(names) > 0) {
			t.Fatalf("nested=%v with %d extensions", nested, len(names))
		}
		if nested && len(entry["extensions"].(map[string]any)) != len(names) {
			t.Fatalf("extensions %v, want %v", entry["extensions"], names)
		}
		if !nested && entry["id"] != "x" {
			t.Fatalf("flat entry lost id: %v", entry)
		}
	})
}
