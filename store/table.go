package store

import (
	"fmt"
	"iter"
	"slices"
)

// Table is an insertion-ordered string keyed table.
// Keys are used verbatim; normalization is the caller's concern.
// A Table is not safe for concurrent use.
type Table struct {
	keys   []string
	values map[string]any
	frozen bool
}

// NewTable creates an empty table with room for size entries.
func NewTable(size int) *Table {
	return &Table{
		keys:   make([]string, 0, size),
		values: make(map[string]any, size),
	}
}

// Read returns the value stored under key. The second result is false when
// the key is absent, which distinguishes it from a stored nil.
func (t *Table) Read(key string) (any, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Store sets key to value. Existing keys keep their position, new keys are appended.
func (t *Table) Store(key string, value any) error {
	if t.frozen {
		return fmt.Errorf("store %q: %w", key, ErrFrozen)
	}

	if t.values == nil {
		t.values = make(map[string]any)
	}

	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}

	t.values[key] = value

	return nil
}

// Delete removes key and returns its previous value, nil when it was absent.
func (t *Table) Delete(key string) (any, error) {
	if t.frozen {
		return nil, fmt.Errorf("delete %q: %w", key, ErrFrozen)
	}

	prev, ok := t.values[key]
	if !ok {
		return nil, nil
	}

	delete(t.values, key)
	t.keys = slices.DeleteFunc(t.keys, func(k string) bool { return k == key })

	return prev, nil
}

// Clear removes every entry.
func (t *Table) Clear() error {
	if t.frozen {
		return fmt.Errorf("clear: %w", ErrFrozen)
	}

	t.keys = t.keys[:0]
	clear(t.values)

	return nil
}

// Has reports whether key is present.
func (t *Table) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

// Fetch is like Read but fails with ErrKeyNotFound when key is absent.
func (t *Table) Fetch(key string) (any, error) {
	v, ok := t.values[key]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, key)
	}

	return v, nil
}

// Keys returns the keys in insertion order. The slice is owned by the caller.
func (t *Table) Keys() []string {
	return slices.Clone(t.keys)
}

// Values returns the values in key order.
func (t *Table) Values() []any {
	out := make([]any, 0, len(t.keys))
	for _, k := range t.keys {
		out = append(out, t.values[k])
	}

	return out
}

// Len returns the number of entries.
func (t *Table) Len() int {
	return len(t.keys)
}

// Each calls fn for every entry in insertion order. It iterates over a
// snapshot of the keys, so fn may mutate the table; keys deleted before
// they are reached are skipped.
func (t *Table) Each(fn func(key string, value any)) {
	for k, v := range t.All() {
		fn(k, v)
	}
}

// All returns an iterator over the entries in insertion order.
func (t *Table) All() iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, k := range t.Keys() {
			v, ok := t.values[k]
			if !ok {
				continue
			}

			if !yield(k, v) {
				return
			}
		}
	}
}

// ToMap returns an independent copy of the entries.
func (t *Table) ToMap() map[string]any {
	out := make(map[string]any, len(t.keys))
	for _, k := range t.keys {
		out[k] = t.values[k]
	}

	return out
}

// Dup returns an unfrozen copy that shares no storage with t.
// Values are copied shallowly.
func (t *Table) Dup() *Table {
	dst := NewTable(len(t.keys))
	dst.keys = append(dst.keys, t.keys...)

	for k, v := range t.values {
		dst.values[k] = v
	}

	return dst
}

// Freeze makes the table read-only. Freezing twice is a no-op.
func (t *Table) Freeze() {
	t.frozen = true
}

// Frozen reports whether the table rejects mutation.
func (t *Table) Frozen() bool {
	return t.frozen
}
