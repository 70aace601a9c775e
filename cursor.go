package fixedmap

import "iter"

// Cursor is an explicit bidirectional cursor over a Map's entries in
// key-declaration order.  It holds its own position, so any number of
// cursors may walk the same Map independently and the Map itself
// carries no iteration state.  Values are read live: a Set between
// cursor steps is visible through Value and Pair.
//
//	for c := m.Cursor(); c.Valid(); c.Next() {
//		k, v := c.Pair()
//		...
//	}
//
// Key, Value and Pair must only be called while Valid reports true.
// Like the Map itself, a Cursor is not safe for concurrent use.
type Cursor[V any] struct {
	m   *Map[V]
	pos int
}

// Cursor returns a new cursor positioned at the first entry.
func (m *Map[V]) Cursor() *Cursor[V] {
	return &Cursor[V]{m: m}
}

// Rewind moves the cursor back to the first entry, revalidating it.
func (c *Cursor[V]) Rewind() { c.pos = 0 }

// Valid reports whether the cursor currently points at an entry.
func (c *Cursor[V]) Valid() bool {
	return c.pos >= 0 && c.pos < len(c.m.keys)
}

// Next advances one entry.  Advancing past the last entry invalidates
// the cursor; a subsequent Prev steps back onto the last entry.
func (c *Cursor[V]) Next() {
	if c.pos < len(c.m.keys) {
		c.pos++
	}
}

// Prev steps back one entry.  Stepping before the first entry
// invalidates the cursor; a subsequent Next or Rewind recovers.
func (c *Cursor[V]) Prev() {
	if c.pos >= 0 {
		c.pos--
	}
}

// Key returns the current entry's key.
func (c *Cursor[V]) Key() string { return c.m.keys[c.pos] }

// Value returns the current entry's live value.
func (c *Cursor[V]) Value() V { return c.m.slots[c.pos].val }

// Pair returns the current entry as a (key, value) pair.
func (c *Cursor[V]) Pair() (string, V) {
	return c.m.keys[c.pos], c.m.slots[c.pos].val
}

// All returns a fresh, restartable sequence of (key, value) pairs in
// key-declaration order, for use with range-over-func.  Each call
// yields an independent sequence; none share iteration state.
func (m *Map[V]) All() iter.Seq2[string, V] {
	return func(yield func(string, V) bool) {
		for i, k := range m.keys {
			if !yield(k, m.slots[i].val) {
				return
			}
		}
	}
}
