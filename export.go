package fixedmap

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/go-viper/mapstructure/v2"
)

// Entry is one exported (key, value) pair.
type Entry[V any] struct {
	Key   string
	Value V
}

// ToMap returns the current contents as a plain Go map.  The result is
// a copy — mutating it never touches the container — and holds exactly
// the fixed key set, with unset keys mapped to the zero value of V.
// Go maps are unordered; use Entries or All when order matters.
func (m *Map[V]) ToMap() map[string]V {
	out := make(map[string]V, len(m.keys))
	for i, k := range m.keys {
		out[k] = m.slots[i].val
	}
	return out
}

// Entries returns an ordered snapshot of the current contents, one
// Entry per fixed key in declaration order.
func (m *Map[V]) Entries() []Entry[V] {
	out := make([]Entry[V], len(m.keys))
	for i, k := range m.keys {
		out[i] = Entry[V]{Key: k, Value: m.slots[i].val}
	}
	return out
}

// Decode exports the current contents into out, a pointer to a struct
// with one field per key (matched case-insensitively, or via
// `mapstructure` tags).  This is the structured-object counterpart of
// ToMap.
func (m *Map[V]) Decode(out any) error {
	return mapstructure.Decode(m.ToMap(), out)
}

// String renders the values joined with ", " in key-declaration order,
// each via fmt.Sprint.  Lossy for structured values; intended for
// simple scalar-valued containers.
func (m *Map[V]) String() string {
	parts := make([]string, len(m.keys))
	for i := range m.keys {
		parts[i] = fmt.Sprint(m.slots[i].val)
	}
	return strings.Join(parts, ", ")
}

// MarshalJSON emits a JSON object with keys in declaration order —
// the one ordered export a map[string]V round trip can't provide.
func (m *Map[V]) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range m.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(m.slots[i].val)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
