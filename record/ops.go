package record

import (
	"fmt"
	"iter"
	"strings"

	"openrecord/internal/match"
)

// maxSuggestions bounds the suggestions attached to a KeyError.
const maxSuggestions = 3

// Has reports whether the field is set. It never autovivifies.
func (r *Record) Has(key string) bool {
	return r.table.Has(r.name(key))
}

// Read returns the field's value. An unset field reads as nil unless the
// record autovivifies, in which case the produced value is stored and returned.
func (r *Record) Read(key string) (any, error) {
	return r.readKey(r.name(key))
}

// Lookup returns the field's value and whether it is set, without autovivifying.
func (r *Record) Lookup(key string) (any, bool) {
	return r.table.Read(r.name(key))
}

// Require fails with a *KeyError unless the field is set.
func (r *Record) Require(key string) error {
	k := r.name(key)
	if r.table.Has(k) {
		return nil
	}

	return &KeyError{
		Key:         k,
		Suggestions: match.Suggest(k, r.table.Keys(), maxSuggestions),
	}
}

// Fetch is like Lookup but fails with a *KeyError when the field is unset.
func (r *Record) Fetch(key string) (any, error) {
	if err := r.Require(key); err != nil {
		return nil, err
	}

	v, _ := r.Lookup(key)

	return v, nil
}

// Store sets the field, wrapping raw maps when the nested policy is on.
func (r *Record) Store(key string, value any) error {
	k, err := r.checkedName(key)
	if err != nil {
		return err
	}

	_, err = r.write(k, value)

	return err
}

// Delete removes the field and returns its previous value, nil when it was unset.
func (r *Record) Delete(key string) (any, error) {
	return r.table.Delete(r.name(key))
}

// Keys returns the field names in insertion order.
func (r *Record) Keys() []string {
	return r.table.Keys()
}

// Each calls fn for every field in insertion order.
func (r *Record) Each(fn func(key string, value any)) {
	r.table.Each(fn)
}

// All returns an iterator over the fields in insertion order.
func (r *Record) All() iter.Seq2[string, any] {
	return r.table.All()
}

// Len returns the number of fields.
func (r *Record) Len() int {
	return r.table.Len()
}

// Empty reports whether r has no fields.
func (r *Record) Empty() bool {
	return r.table.Len() == 0
}

// ToMap returns an independent copy of the entries. Child records are not copied.
func (r *Record) ToMap() map[string]any {
	return r.table.ToMap()
}

// Dig reads a path of fields, descending through child records. With the
// cascade policy missing segments are created on the way.
// An empty path returns r itself.
func (r *Record) Dig(path ...string) (any, error) {
	var cur any = r

	for i, seg := range path {
		rec, ok := cur.(*Record)
		if !ok {
			return nil, fmt.Errorf("%w: %s is %T", ErrNotRecord, strings.Join(path[:i], "."), cur)
		}

		v, err := rec.Read(seg)
		if err != nil {
			return nil, fmt.Errorf("dig %s: %w", strings.Join(path[:i+1], "."), err)
		}

		cur = v
	}

	return cur, nil
}

// At is like Dig but requires the value at path to be a record.
func (r *Record) At(path ...string) (*Record, error) {
	v, err := r.Dig(path...)
	if err != nil {
		return nil, err
	}

	rec, ok := v.(*Record)
	if !ok {
		return nil, fmt.Errorf("%w: %s is %T", ErrNotRecord, strings.Join(path, "."), v)
	}

	return rec, nil
}

// StorePath stores value at a dotted path of fields, creating intermediate
// child records (with r's configuration) where a segment is unset.
func (r *Record) StorePath(path []string, value any) error {
	if len(path) == 0 {
		return fmt.Errorf("%w: empty path", ErrInvalidKey)
	}

	cur := r

	for i, seg := range path[:len(path)-1] {
		v, ok := cur.Lookup(seg)
		if !ok || v == nil {
			child := cur.spawn()
			if err := cur.Store(seg, child); err != nil {
				return err
			}

			cur = child

			continue
		}

		rec, ok := v.(*Record)
		if !ok {
			return fmt.Errorf("%w: %s is %T", ErrNotRecord, strings.Join(path[:i+1], "."), v)
		}

		cur = rec
	}

	return cur.Store(path[len(path)-1], value)
}
