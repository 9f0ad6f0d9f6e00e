package record

import (
	"cmp"
	"fmt"
	"reflect"
	"slices"

	"openrecord/internal/visit"
	"openrecord/options"
)

type entry struct {
	key   string
	value any
}

// readKey reads the canonical key k, autovivifying when the policy asks for it.
func (r *Record) readKey(k string) (any, error) {
	if v, ok := r.table.Read(k); ok {
		return v, nil
	}

	if k == "" {
		return nil, nil
	}

	v, ok := r.produce()
	if !ok {
		return nil, nil
	}

	return r.write(k, v)
}

// produce returns the value that fills an absent field, if any.
func (r *Record) produce() (any, bool) {
	switch {
	case r.factory != nil:
		return r.factory(), true
	case r.policy.Has(options.PolicyCascade):
		return r.spawn(), true
	default:
		return nil, false
	}
}

// write stores v under the canonical key k and returns what was stored.
// Under the nested policy a raw map becomes a child record.
func (r *Record) write(k string, v any) (any, error) {
	return r.writeNested(k, v, nil)
}

// writeNested is write with the raw mappings being nested on the current
// path, so a map that contains itself fails with ErrCycle.
func (r *Record) writeNested(k string, v any, path *visit.Tracker[uintptr]) (any, error) {
	if r.table.Frozen() {
		return nil, fmt.Errorf("store %q: %w", k, ErrFrozen)
	}

	if r.policy.Has(options.PolicyNested) && isMapping(v) {
		child, err := r.nest(v, path)
		if err != nil {
			return nil, fmt.Errorf("nest %q: %w", k, err)
		}

		v = child
	}

	if err := r.table.Store(k, v); err != nil {
		return nil, err
	}

	return v, nil
}

// nest builds a child record from the raw mapping v.
func (r *Record) nest(v any, path *visit.Tracker[uintptr]) (*Record, error) {
	if path == nil {
		path = &visit.Tracker[uintptr]{}
	}

	if id, ok := refOf(v); ok {
		if !path.Enter(id) {
			return nil, ErrCycle
		}
		defer path.Leave(id)
	}

	child := r.spawn()
	if err := child.update(v, path); err != nil {
		return nil, err
	}

	return child, nil
}

// refOf returns the address behind a map or pointer value.
func refOf(v any) (uintptr, bool) {
	rv := reflect.ValueOf(v)

	switch rv.Kind() {
	case reflect.Map, reflect.Pointer:
		if rv.IsNil() {
			return 0, false
		}

		return rv.Pointer(), true
	default:
		return 0, false
	}
}

// isMapping reports whether v is a raw mapping: a Go map or a Source that is
// not already a record.
func isMapping(v any) bool {
	switch v.(type) {
	case nil, *Record:
		return false
	case Source:
		return true
	}

	return reflect.ValueOf(v).Kind() == reflect.Map
}

// Update bulk loads data into r, writing every entry through the same path as
// Store. Sources are visited in their own order, Go maps in sorted key order;
// later entries for the same field overwrite earlier ones. A frozen record is
// left untouched, and so is r when a field name is invalid. A nested value
// that fails to convert stops the load after the entries before it.
func (r *Record) Update(data any) error {
	return r.update(data, nil)
}

func (r *Record) update(data any, path *visit.Tracker[uintptr]) error {
	if data == nil {
		return nil
	}

	if r.table.Frozen() {
		return fmt.Errorf("update: %w", ErrFrozen)
	}

	entries, err := entriesOf(data)
	if err != nil {
		return err
	}

	keys := make([]string, len(entries))

	for i, e := range entries {
		if keys[i], err = r.checkedName(e.key); err != nil {
			return err
		}
	}

	for i, e := range entries {
		if _, err := r.writeNested(keys[i], e.value, path); err != nil {
			return err
		}
	}

	return nil
}

// Merge returns a copy of r updated with other. r is never modified.
func (r *Record) Merge(other any) (*Record, error) {
	merged := r.Dup()
	if err := merged.Update(other); err != nil {
		return nil, fmt.Errorf("merge: %w", err)
	}

	return merged, nil
}

func entriesOf(data any) ([]entry, error) {
	if src, ok := data.(Source); ok {
		var out []entry
		for k, v := range src.All() {
			out = append(out, entry{key: k, value: v})
		}

		return out, nil
	}

	rv := reflect.ValueOf(data)
	if rv.Kind() != reflect.Map {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedSource, data)
	}

	out := make([]entry, 0, rv.Len())

	iter := rv.MapRange()
	for iter.Next() {
		k, err := keyString(iter.Key().Interface())
		if err != nil {
			return nil, err
		}

		out = append(out, entry{key: k, value: iter.Value().Interface()})
	}

	slices.SortStableFunc(out, func(a, b entry) int {
		return cmp.Compare(a.key, b.key)
	})

	return out, nil
}
