package store

import (
	"fmt"
	"slices"
	"sort"

	"openrecord/utils"
)

type rawOp struct {
	minArgs, maxArgs int
	call             func(t *Table, args []any) (any, error)
}

var rawOps = map[string]rawOp{}

func registerRaw(op rawOp, names ...string) {
	for _, name := range names {
		rawOps[name] = op
	}
}

func init() {
	registerRaw(rawOp{0, 0, func(t *Table, _ []any) (any, error) { return t.Keys(), nil }}, "keys")
	registerRaw(rawOp{0, 0, func(t *Table, _ []any) (any, error) { return t.Values(), nil }}, "values")
	registerRaw(rawOp{0, 0, func(t *Table, _ []any) (any, error) { return t.Len(), nil }}, "size", "length", "len")
	registerRaw(rawOp{0, 0, func(t *Table, _ []any) (any, error) { return t.Len() == 0, nil }}, "empty")
	registerRaw(rawOp{0, 0, func(t *Table, _ []any) (any, error) { return t.ToMap(), nil }}, "to_h")
	registerRaw(rawOp{0, 0, func(t *Table, _ []any) (any, error) { return t.Dup(), nil }}, "dup")
	registerRaw(rawOp{0, 0, func(t *Table, _ []any) (any, error) { return t.Frozen(), nil }}, "frozen")
	registerRaw(rawOp{0, 0, func(t *Table, _ []any) (any, error) { t.Freeze(); return t, nil }}, "freeze")
	registerRaw(rawOp{0, 0, func(t *Table, _ []any) (any, error) { return nil, t.Clear() }}, "clear")

	registerRaw(rawOp{1, 1, func(t *Table, args []any) (any, error) {
		key, err := rawKey(args[0])
		if err != nil {
			return nil, err
		}

		return t.Has(key), nil
	}}, "key", "has_key", "include", "member")

	registerRaw(rawOp{1, 1, func(t *Table, args []any) (any, error) {
		key, err := rawKey(args[0])
		if err != nil {
			return nil, err
		}

		return t.Fetch(key)
	}}, "fetch")

	registerRaw(rawOp{1, 1, func(t *Table, args []any) (any, error) {
		key, err := rawKey(args[0])
		if err != nil {
			return nil, err
		}

		return t.Delete(key)
	}}, "delete")

	registerRaw(rawOp{2, 2, func(t *Table, args []any) (any, error) {
		k, value := utils.Unpack2(args)

		key, err := rawKey(k)
		if err != nil {
			return nil, err
		}

		return value, t.Store(key, value)
	}}, "store")

	registerRaw(rawOp{1, 1, func(t *Table, args []any) (any, error) {
		fn, ok := args[0].(func(string, any))
		if !ok {
			return nil, fmt.Errorf("%w: each expects func(string, any), got %T", ErrRawArguments, args[0])
		}

		t.Each(fn)

		return nil, nil
	}}, "each")
}

// RawOps lists the operation names accepted by Raw, sorted.
func RawOps() []string {
	names := make([]string, 0, len(rawOps))
	for name := range rawOps {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// SupportsRaw reports whether op names a raw operation.
func SupportsRaw(op string) bool {
	_, ok := rawOps[op]
	return ok
}

// Raw invokes the table primitive named op. Keys are used as given, without
// any normalization the owning record would apply. Mutating primitives still
// respect Freeze.
func (t *Table) Raw(op string, args ...any) (any, error) {
	fn, ok := rawOps[op]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedRaw, op)
	}

	if !utils.IsInRange(fn.minArgs, len(args), fn.maxArgs) {
		return nil, fmt.Errorf("%w: %s takes %s, got %d", ErrRawArguments, op, arity(fn), len(args))
	}

	return fn.call(t, slices.Clone(args))
}

func arity(op rawOp) string {
	if op.minArgs == op.maxArgs {
		return fmt.Sprintf("%d argument(s)", op.minArgs)
	}

	return fmt.Sprintf("%d to %d arguments", op.minArgs, op.maxArgs)
}

func rawKey(v any) (string, error) {
	key, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("%w: key must be a string, got %T", ErrRawArguments, v)
	}

	return key, nil
}
