package fixedmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/map-protocol/fixedmap"
)

func TestFromJSON(t *testing.T) {
	t.Run("preserves_document_order", func(t *testing.T) {
		m, err := fixedmap.FromJSON([]byte(`{"z": 1, "a": 2, "m": 3}`))
		require.NoError(t, err)
		require.Equal(t, []string{"z", "a", "m"}, m.Keys())
	})

	t.Run("scalar_types", func(t *testing.T) {
		m, err := fixedmap.FromJSON([]byte(
			`{"s": "x", "b": true, "i": 42, "f": 1.5, "fi": 1.0, "n": null}`))
		require.NoError(t, err)

		s, _ := m.Get("s")
		require.Equal(t, "x", s)
		b, _ := m.Get("b")
		require.Equal(t, true, b)
		i, _ := m.Get("i")
		require.Equal(t, int64(42), i)
		f, _ := m.Get("f")
		require.Equal(t, 1.5, f)
		fi, _ := m.Get("fi") // "1.0" is a float token, not an integer
		require.Equal(t, 1.0, fi)
		n, _ := m.Get("n")
		require.Nil(t, n)
		require.True(t, m.IsSet("n")) // explicitly assigned null, not sentinel-by-omission
	})

	t.Run("nested_values", func(t *testing.T) {
		m, err := fixedmap.FromJSON([]byte(`{"obj": {"x": 1}, "arr": [1, "two", false]}`))
		require.NoError(t, err)

		obj, _ := m.Get("obj")
		require.Equal(t, map[string]any{"x": int64(1)}, obj)
		arr, _ := m.Get("arr")
		require.Equal(t, []any{int64(1), "two", false}, arr)
	})

	t.Run("duplicate_keys_collapse", func(t *testing.T) {
		m, err := fixedmap.FromJSON([]byte(`{"a": 1, "b": 2, "a": 3}`))
		require.NoError(t, err)
		// First occurrence keeps its position, last value wins.
		require.Equal(t, []string{"a", "b"}, m.Keys())
		a, _ := m.Get("a")
		require.Equal(t, int64(3), a)
	})

	t.Run("setters_apply", func(t *testing.T) {
		m, err := fixedmap.FromJSON([]byte(`{"active": "yes"}`),
			fixedmap.WithSetter("active", coerceBool))
		require.NoError(t, err)
		v, _ := m.Get("active")
		require.Equal(t, true, v)
	})

	t.Run("invalid_sources", func(t *testing.T) {
		for name, raw := range map[string]string{
			"empty_object":   `{}`,
			"array_root":     `[1, 2]`,
			"scalar_root":    `42`,
			"truncated":      `{"a": 1`,
			"trailing":       `{"a": 1} {"b": 2}`,
			"not_json":       `hello`,
			"only_empty_key": `{"": 1}`,
		} {
			t.Run(name, func(t *testing.T) {
				_, err := fixedmap.FromJSON([]byte(raw))
				require.Error(t, err)
				require.True(t, fixedmap.IsInvalidArgument(err))
			})
		}
	})

	t.Run("round_trip_keeps_order", func(t *testing.T) {
		src := `{"z":1,"a":"two","m":true}`
		m, err := fixedmap.FromJSON([]byte(src))
		require.NoError(t, err)
		out, err := m.MarshalJSON()
		require.NoError(t, err)
		require.Equal(t, src, string(out))
	})
}
