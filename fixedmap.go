// Package fixedmap implements a fixed-key associative container: an
// insertion-ordered mapping whose set of valid string keys is
// established once at construction and never changes afterward, while
// values stay mutable for the object's lifetime.
//
// The container is a guard rail for lightweight "schema-ish" value
// objects.  A concrete data-object type declares its field names once,
// optionally registers per-key setters to coerce or validate incoming
// values at the point of assignment, and gets ordered iteration, bulk
// update and export for free:
//
//	m, err := fixedmap.New[any]([]string{"host", "port", "tls"},
//		fixedmap.WithSetter("tls", coerceBool))
//
// Every key always maps to some value.  A never-assigned (or Reset)
// key holds the sentinel: the zero value of V with its slot marked
// unset, which is what keeps IsSet meaningful for value types whose
// zero value is a legitimate datum.
//
// A Map is not safe for unsynchronized concurrent mutation from
// multiple goroutines; callers needing that must guard the whole
// object externally.
package fixedmap

import (
	"errors"
	"fmt"
	"sort"
)

// Setter intercepts a value on its way into a slot.  It returns the
// value to store, or an error to reject the assignment entirely.
type Setter[V any] func(V) (V, error)

// slot holds one key's current value.  set distinguishes an explicitly
// assigned zero value from the never-assigned sentinel state.
type slot[V any] struct {
	val V
	set bool
}

// Map is a mapping from a fixed set of string keys to values of type V.
// Keys are immutable after construction; values are not.  The zero Map
// is not usable — construct via New, Freeze, Mirror or FromJSON.
type Map[V any] struct {
	keys    []string
	index   map[string]int
	slots   []slot[V]
	setters map[string]Setter[V]
}

// Option configures a Map under construction.
type Option[V any] func(*Map[V])

// WithSetter registers fn as the specialized setter for key.  Every
// assignment to that key — direct Set, MassUpdate, Freeze — routes
// through fn, which decides what actually gets stored.  Options naming
// keys outside the fixed set are ignored.
func WithSetter[V any](key string, fn Setter[V]) Option[V] {
	return func(m *Map[V]) {
		if _, ok := m.index[key]; ok {
			m.setters[key] = fn
		}
	}
}

// WithSetters registers a whole setter table at once.
func WithSetters[V any](table map[string]Setter[V]) Option[V] {
	return func(m *Map[V]) {
		for k, fn := range table {
			if _, ok := m.index[k]; ok {
				m.setters[k] = fn
			}
		}
	}
}

// New builds a Map whose fixed key set is the non-empty strings in
// keys.  Duplicates collapse to their first occurrence; insertion
// order of first occurrence is preserved.  All slots start unset.
// Fails with an ErrInvalidArgument error when no valid key remains
// after filtering.
func New[V any](keys []string, opts ...Option[V]) (*Map[V], error) {
	m := &Map[V]{
		index:   make(map[string]int, len(keys)),
		setters: make(map[string]Setter[V]),
	}
	for _, k := range keys {
		if k == "" {
			continue
		}
		if _, dup := m.index[k]; dup {
			continue
		}
		m.index[k] = len(m.keys)
		m.keys = append(m.keys, k)
	}
	if len(m.keys) == 0 {
		return nil, newErr(ErrInvalidArgument, "no valid keys")
	}
	m.slots = make([]slot[V], len(m.keys))
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Freeze builds a Map from src's keys and populates it with src's
// values.  Keys are sorted lexicographically — Go map iteration order
// is random, and the fixed order must be deterministic.  A setter
// rejection fails the whole construction.
func Freeze[V any](src map[string]V, opts ...Option[V]) (*Map[V], error) {
	m, err := Mirror(src, opts...)
	if err != nil {
		return nil, err
	}
	if err := m.MassUpdate(src); err != nil {
		return nil, err
	}
	return m, nil
}

// Mirror builds a Map from src's keys only; every slot stays unset.
// Keys are sorted lexicographically, as in Freeze.
func Mirror[V any](src map[string]V, opts ...Option[V]) (*Map[V], error) {
	keys := make([]string, 0, len(src))
	for k := range src {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return New(keys, opts...)
}

// Get returns key's current value: the stored value if one has been
// assigned, the zero value of V otherwise.  Fails with an
// ErrKeyNotFound error for keys outside the fixed set.
func (m *Map[V]) Get(key string) (V, error) {
	i, ok := m.index[key]
	if !ok {
		var zero V
		return zero, newKeyErr(key)
	}
	return m.slots[i].val, nil
}

// Set assigns value to key.  When a specialized setter is registered
// for key, the setter decides what gets stored; a setter error rejects
// the assignment and leaves the slot untouched.  Fails with an
// ErrKeyNotFound error for keys outside the fixed set.
func (m *Map[V]) Set(key string, value V) error {
	i, ok := m.index[key]
	if !ok {
		return newKeyErr(key)
	}
	if fn, ok := m.setters[key]; ok {
		stored, err := fn(value)
		if err != nil {
			return err
		}
		value = stored
	}
	m.slots[i] = slot[V]{val: value, set: true}
	return nil
}

// Has reports whether key belongs to the fixed set.  It stays true for
// declared keys even while their slot is unset; see IsSet.
func (m *Map[V]) Has(key string) bool {
	_, ok := m.index[key]
	return ok
}

// IsSet reports whether key is declared and currently holds an
// assigned value.  False for unset slots and for undeclared keys.
func (m *Map[V]) IsSet(key string) bool {
	i, ok := m.index[key]
	return ok && m.slots[i].set
}

// Reset clears key back to the unset sentinel.  Fails with an
// ErrKeyNotFound error for keys outside the fixed set.
func (m *Map[V]) Reset(key string) error {
	i, ok := m.index[key]
	if !ok {
		return newKeyErr(key)
	}
	m.slots[i] = slot[V]{}
	return nil
}

// Len returns the number of keys in the fixed set; constant for the
// object's lifetime.
func (m *Map[V]) Len() int { return len(m.keys) }

// Keys returns a copy of the fixed key set in declaration order.
func (m *Map[V]) Keys() []string {
	out := make([]string, len(m.keys))
	copy(out, m.keys)
	return out
}

// MassUpdate applies every src entry whose key belongs to the fixed
// set, walking the fixed keys in declaration order.  Unknown src keys
// are silently ignored.  The update never aborts partway: a setter
// rejection is recorded, the remaining keys still apply, and the
// collected rejections come back joined.
func (m *Map[V]) MassUpdate(src map[string]V) error {
	var errs []error
	for _, k := range m.keys {
		v, ok := src[k]
		if !ok {
			continue
		}
		if err := m.Set(k, v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", k, err))
		}
	}
	return errors.Join(errs...)
}
