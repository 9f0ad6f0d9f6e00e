package record

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
	"reflect"

	"github.com/davecgh/go-spew/spew"

	"openrecord/internal/visit"
)

// hashConfig renders non-record values for Hash. Pointers are followed
// instead of printed so values equal under reflect.DeepEqual hash alike.
var hashConfig = spew.ConfigState{
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
	SpewKeys:                true,
}

// Dup returns a copy with its own table and the same policy and factory.
// The copy is never frozen and starts with an empty accessor cache.
func (r *Record) Dup() *Record {
	return &Record{
		table:   r.table.Dup(),
		policy:  r.policy,
		factory: r.factory,
	}
}

// Clone is like Dup but keeps the frozen state.
func (r *Record) Clone() *Record {
	c := r.Dup()
	if r.Frozen() {
		c.table.Freeze()
	}

	return c
}

// Freeze makes r read-only and returns it. Freezing twice is a no-op.
// Child records are not frozen.
func (r *Record) Freeze() *Record {
	r.table.Freeze()
	return r
}

// Frozen reports whether r rejects writes.
func (r *Record) Frozen() bool {
	return r.table.Frozen()
}

// Equal reports whether other is a *Record with the same entries, in any order.
// Child records are compared recursively, also when held in []any or
// map[string]any values; other values are compared with reflect.DeepEqual.
func (r *Record) Equal(other any) bool {
	o, ok := other.(*Record)
	if !ok {
		return false
	}

	var c comparer

	return c.records(r, o)
}

// comparer tracks the pairs being compared so cyclic values terminate.
// A pair met again further down is assumed equal.
type comparer struct {
	recs visit.Tracker[visit.Pair[*Record]]
	refs visit.Tracker[visit.Pair[uintptr]]
}

func (c *comparer) records(r, o *Record) bool {
	if r == o {
		return true
	}

	if r == nil || o == nil {
		return false
	}

	p := visit.Pair[*Record]{A: r, B: o}
	if !c.recs.Enter(p) {
		return true
	}
	defer c.recs.Leave(p)

	if r.table.Len() != o.table.Len() {
		return false
	}

	for k, v := range r.table.All() {
		ov, ok := o.table.Read(k)
		if !ok || !c.values(v, ov) {
			return false
		}
	}

	return true
}

func (c *comparer) values(a, b any) bool {
	switch x := a.(type) {
	case *Record:
		y, ok := b.(*Record)
		return ok && c.records(x, y)
	case []any:
		y, ok := b.([]any)
		if !ok || len(x) != len(y) {
			return false
		}

		if len(x) == 0 {
			return true
		}

		p := visit.Pair[uintptr]{A: reflect.ValueOf(x).Pointer(), B: reflect.ValueOf(y).Pointer()}
		if !c.refs.Enter(p) {
			return true
		}
		defer c.refs.Leave(p)

		for i := range x {
			if !c.values(x[i], y[i]) {
				return false
			}
		}

		return true
	case map[string]any:
		y, ok := b.(map[string]any)
		if !ok || len(x) != len(y) {
			return false
		}

		if len(x) == 0 {
			return true
		}

		p := visit.Pair[uintptr]{A: reflect.ValueOf(x).Pointer(), B: reflect.ValueOf(y).Pointer()}
		if !c.refs.Enter(p) {
			return true
		}
		defer c.refs.Leave(p)

		for k, v := range x {
			ov, ok := y[k]
			if !ok || !c.values(v, ov) {
				return false
			}
		}

		return true
	}

	switch b.(type) {
	case *Record, []any, map[string]any:
		return false
	}

	return reflect.DeepEqual(a, b)
}

// Hash returns a hash of the entries that does not depend on their order.
// Equal records hash alike.
func (r *Record) Hash() uint64 {
	var h hasher
	return h.record(r)
}

// hasher mirrors comparer: records and map[string]any values hash as an
// order-independent sum of their entries, []any in element order.
// A value met again on its own path contributes 0.
type hasher struct {
	recs visit.Tracker[*Record]
	refs visit.Tracker[uintptr]
}

func (h *hasher) record(r *Record) uint64 {
	if !h.recs.Enter(r) {
		return 0
	}
	defer h.recs.Leave(r)

	var sum uint64

	for k, v := range r.table.All() {
		sum += h.entry(k, v)
	}

	return sum
}

func (h *hasher) entry(k string, v any) uint64 {
	f := fnv.New64a()
	_, _ = f.Write([]byte(k))
	_, _ = f.Write([]byte{0})
	_, _ = f.Write(binary.BigEndian.AppendUint64(nil, h.value(v)))

	return f.Sum64()
}

func (h *hasher) value(v any) uint64 {
	switch x := v.(type) {
	case *Record:
		return h.record(x)
	case []any:
		f := fnv.New64a()
		_, _ = f.Write([]byte{'['})

		if len(x) == 0 {
			return f.Sum64()
		}

		id := reflect.ValueOf(x).Pointer()
		if !h.refs.Enter(id) {
			return 0
		}
		defer h.refs.Leave(id)

		for _, item := range x {
			_, _ = f.Write(binary.BigEndian.AppendUint64(nil, h.value(item)))
		}

		return f.Sum64()
	case map[string]any:
		if len(x) == 0 {
			return 0
		}

		id := reflect.ValueOf(x).Pointer()
		if !h.refs.Enter(id) {
			return 0
		}
		defer h.refs.Leave(id)

		var sum uint64
		for k, item := range x {
			sum += h.entry(k, item)
		}

		return sum
	}

	f := fnv.New64a()
	_, _ = hashConfig.Fprintf(f, "%#v", v)

	return f.Sum64()
}

// ToNestedMap converts r and its child records, including records held in
// []any values, to plain maps. It fails with ErrCycle when r contains itself.
func (r *Record) ToNestedMap() (map[string]any, error) {
	var tr visit.Tracker[*Record]
	return r.toNestedMap(&tr)
}

func (r *Record) toNestedMap(tr *visit.Tracker[*Record]) (map[string]any, error) {
	if !tr.Enter(r) {
		return nil, ErrCycle
	}
	defer tr.Leave(r)

	out := make(map[string]any, r.table.Len())

	for k, v := range r.table.All() {
		pv, err := plain(v, tr)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", k, err)
		}

		out[k] = pv
	}

	return out, nil
}

func plain(v any, tr *visit.Tracker[*Record]) (any, error) {
	switch x := v.(type) {
	case *Record:
		return x.toNestedMap(tr)
	case []any:
		out := make([]any, len(x))
		for i, item := range x {
			pv, err := plain(item, tr)
			if err != nil {
				return nil, fmt.Errorf("[%d]: %w", i, err)
			}

			out[i] = pv
		}

		return out, nil
	default:
		return v, nil
	}
}
