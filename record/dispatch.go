package record

import (
	"fmt"
	"strings"

	"openrecord/internal/match"
	"openrecord/options"
	"openrecord/utils"
)

// reservedPrefix marks names kept for object identity internals.
const reservedPrefix = "__"

type builtin struct {
	call func(r *Record, args []any) (any, error)
	// predicate builtins may also be called with the "?" marker.
	predicate bool
}

var builtins = map[string]builtin{
	"dup":     {call: func(r *Record, _ []any) (any, error) { return r.Dup(), nil }},
	"clone":   {call: func(r *Record, _ []any) (any, error) { return r.Clone(), nil }},
	"freeze":  {call: func(r *Record, _ []any) (any, error) { return r.Freeze(), nil }},
	"frozen":  {call: func(r *Record, _ []any) (any, error) { return r.Frozen(), nil }, predicate: true},
	"empty":   {call: func(r *Record, _ []any) (any, error) { return r.Empty(), nil }, predicate: true},
	"hash":    {call: func(r *Record, _ []any) (any, error) { return r.Hash(), nil }},
	"inspect": {call: func(r *Record, _ []any) (any, error) { return r.String(), nil }},
	"string":  {call: func(r *Record, _ []any) (any, error) { return r.String(), nil }},
	"to_s":    {call: func(r *Record, _ []any) (any, error) { return r.String(), nil }},
	"to_h":    {call: func(r *Record, _ []any) (any, error) { return r.ToMap(), nil }},
	"to_enum": {call: func(r *Record, _ []any) (any, error) { return r.All(), nil }},
	"table":   {call: func(r *Record, _ []any) (any, error) { return r.Table(), nil }},
	"equal": {call: func(r *Record, args []any) (any, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("%w: equal takes 1 argument, got %d", ErrArguments, len(args))
		}

		return r.Equal(args[0]), nil
	}},
}

// foldedBuiltins maps the folded form of each builtin name back to it, so
// folding records treat "Dup" or "to-h" as the builtin they collapse to.
var foldedBuiltins = func() map[string]string {
	m := make(map[string]string, len(builtins))
	for name := range builtins {
		m[match.Fold(name)] = name
	}

	return m
}()

// IsReserved reports whether name is kept for the record's own operations
// and so cannot be used as a field through Call.
func IsReserved(name string) bool {
	if strings.HasPrefix(name, reservedPrefix) {
		return true
	}

	_, ok := builtins[name]

	return ok
}

// Call performs a virtual member access, see Classify for how member is read.
func (r *Record) Call(member string, args ...any) (any, error) {
	return r.Resolve(Classify(member, args...))
}

// Resolve routes a classified access:
//   - MarkerAssign stores the first argument (nil if none) and returns the stored value
//   - MarkerBang runs the store.Table primitive of the same name
//   - MarkerQuery reports whether the field is set
//   - MarkerNone reads the field
//
// Reserved names run the matching builtin on a plain access, and on a query
// access for the frozen and empty predicates; any other use fails with
// ErrReservedName.
func (r *Record) Resolve(a Access) (any, error) {
	if a.Marker == MarkerBang {
		return r.table.Raw(a.Name, a.Args...)
	}

	acc, ok := r.accessors[a.Name]
	if !ok {
		if IsReserved(a.Name) {
			return r.builtin(a)
		}

		k, err := r.checkedName(a.Name)
		if err != nil {
			return nil, err
		}

		if name, ok := r.reservedKey(k); ok {
			return r.builtin(Access{Name: name, Marker: a.Marker, Args: a.Args})
		}

		acc = r.accessorFor(a.Name, k)
	}

	switch a.Marker {
	case MarkerAssign:
		return acc.write(utils.First(a.Args))
	case MarkerQuery:
		return acc.query(), nil
	default:
		return acc.read()
	}
}

// reservedKey reports whether the canonical key k names a builtin and which.
func (r *Record) reservedKey(k string) (string, bool) {
	if r.policy.Has(options.PolicyFold) {
		name, ok := foldedBuiltins[k]
		return name, ok
	}

	if _, ok := builtins[k]; ok {
		return k, true
	}

	return "", false
}

func (r *Record) builtin(a Access) (any, error) {
	b, ok := builtins[a.Name]

	switch {
	case !ok:
	case a.Marker == MarkerNone:
		return b.call(r, a.Args)
	case a.Marker == MarkerQuery && b.predicate:
		return b.call(r, a.Args)
	}

	return nil, fmt.Errorf("%w: %q cannot be accessed as %q; use Store, Read or Has", ErrReservedName, a.Name, a.Member())
}
