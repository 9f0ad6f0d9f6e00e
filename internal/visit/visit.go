// Package visit tracks the values currently being walked by a recursive
// traversal so self-referencing structures terminate.
package visit

// Pair is an ordered pair of values visited together, e.g. both sides of an equality check.
type Pair[T comparable] struct{ A, B T }

// Tracker records the values on the current traversal path.
// The zero value is ready to use.
type Tracker[T comparable] struct {
	active map[T]struct{}
}

// Enter marks v as being visited. It returns false if v is already on the
// path, which means the traversal has found a cycle.
func (t *Tracker[T]) Enter(v T) bool {
	if t.active == nil {
		t.active = make(map[T]struct{})
	}

	if _, exists := t.active[v]; exists {
		return false
	}

	t.active[v] = struct{}{}

	return true
}

// Leave removes v from the path. A value that was left may be entered again.
func (t *Tracker[T]) Leave(v T) {
	delete(t.active, v)
}
