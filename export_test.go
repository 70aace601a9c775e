package fixedmap_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/map-protocol/fixedmap"
)

func TestToMap(t *testing.T) {
	m := newABC(t)

	out := m.ToMap()
	require.Equal(t, map[string]int{"a": 1, "b": 2, "c": 3}, out)

	// Copy, not alias: mutating the export must not touch the container.
	out["a"] = 999
	delete(out, "b")
	a, err := m.Get("a")
	require.NoError(t, err)
	require.Equal(t, 1, a)
	require.True(t, m.Has("b"))
}

func TestToMapIncludesUnsetKeys(t *testing.T) {
	m, err := fixedmap.New[int]([]string{"a", "b"})
	require.NoError(t, err)
	require.NoError(t, m.Set("a", 1))

	out := m.ToMap()
	require.Len(t, out, 2)
	require.Equal(t, 0, out["b"])
}

func TestEntries(t *testing.T) {
	m := newABC(t)
	require.Equal(t, []fixedmap.Entry[int]{
		{Key: "a", Value: 1},
		{Key: "b", Value: 2},
		{Key: "c", Value: 3},
	}, m.Entries())
}

func TestDecode(t *testing.T) {
	m, err := fixedmap.New[any]([]string{"host", "port", "tls"})
	require.NoError(t, err)
	require.NoError(t, m.MassUpdate(map[string]any{
		"host": "example.test",
		"port": 8443,
		"tls":  true,
	}))

	var out struct {
		Host string
		Port int
		TLS  bool `mapstructure:"tls"`
	}
	require.NoError(t, m.Decode(&out))
	require.Equal(t, "example.test", out.Host)
	require.Equal(t, 8443, out.Port)
	require.True(t, out.TLS)
}

func TestString(t *testing.T) {
	m := newABC(t)
	require.Equal(t, "1, 2, 3", m.String())

	require.NoError(t, m.Reset("b"))
	require.Equal(t, "1, 0, 3", m.String())
}

func TestMarshalJSON(t *testing.T) {
	m, err := fixedmap.New[any]([]string{"z", "a", "m"})
	require.NoError(t, err)
	require.NoError(t, m.MassUpdate(map[string]any{"z": 1, "a": "two", "m": true}))

	raw, err := json.Marshal(m)
	require.NoError(t, err)
	// Declaration order, not lexicographic.
	require.JSONEq(t, `{"z":1,"a":"two","m":true}`, string(raw))
	require.Equal(t, `{"z":1,"a":"two","m":true}`, string(raw))
}
