package record_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openrecord/options"
	"openrecord/record"
	"openrecord/store"
)

type fieldName string

func TestRecord_WriteThenRead(t *testing.T) {
	values := []any{"Ann", 30, 2.5, true, nil, []int{1, 2}, map[string]int{"x": 1}, record.Blank()}

	for _, v := range values {
		r := record.Blank()
		require.NoError(t, r.Store("k", v))

		got, err := r.Read("k")
		require.NoError(t, err)
		assert.Equal(t, v, got)
		assert.True(t, r.Has("k"))
	}
}

func TestRecord_PlainScenario(t *testing.T) {
	r := record.Blank()
	require.NoError(t, r.Store("name", "Ann"))
	require.NoError(t, r.Store("age", 30))

	assert.Equal(t, []string{"name", "age"}, r.Keys())
	assert.False(t, r.Has("missing"))

	_, err := r.Fetch("missing")
	require.ErrorIs(t, err, record.ErrKeyNotFound)

	var keyErr *record.KeyError
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "missing", keyErr.Key)
}

func TestRecord_FetchSuggestsSimilarKeys(t *testing.T) {
	r := record.MustNew(map[string]any{"name": "Ann", "email": "ann@example.com"})

	err := r.Require("nmae")
	require.Error(t, err)
	assert.EqualError(t, err, `key not found: "nmae" (did you mean "name"?)`)

	v, err := r.Fetch("email")
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", v)
}

func TestRecord_UnsetReadsNil(t *testing.T) {
	r := record.Blank()

	v, err := r.Read("missing")
	require.NoError(t, err)
	assert.Nil(t, v)
	assert.False(t, r.Has("missing"), "plain reads must not create fields")

	_, ok := r.Lookup("missing")
	assert.False(t, ok)
}

func TestNew_Sources(t *testing.T) {
	t.Run("map with named string keys", func(t *testing.T) {
		r, err := record.New(map[fieldName]int{"b": 2, "a": 1})
		require.NoError(t, err)
		assert.Equal(t, []string{"a", "b"}, r.Keys())
	})

	t.Run("map with mixed keys", func(t *testing.T) {
		r, err := record.New(map[any]any{"x": 1, 7: "seven", []byte("raw")[0]: "byte"})
		require.NoError(t, err)
		assert.ElementsMatch(t, []string{"x", "7", "114"}, r.Keys())
	})

	t.Run("record keeps source order", func(t *testing.T) {
		src := record.Blank()
		require.NoError(t, src.Store("z", 1))
		require.NoError(t, src.Store("a", 2))

		r, err := record.New(src)
		require.NoError(t, err)
		assert.Equal(t, []string{"z", "a"}, r.Keys())
	})

	t.Run("table", func(t *testing.T) {
		tbl := store.NewTable(1)
		require.NoError(t, tbl.Store("t", 1))

		r, err := record.New(tbl)
		require.NoError(t, err)
		assert.Equal(t, []string{"t"}, r.Keys())
	})

	t.Run("unsupported", func(t *testing.T) {
		_, err := record.New([]int{1})
		assert.ErrorIs(t, err, record.ErrUnsupportedSource)
	})

	t.Run("bad key", func(t *testing.T) {
		_, err := record.New(map[float64]int{1.5: 1})
		assert.ErrorIs(t, err, record.ErrInvalidKey)
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := record.New(map[string]int{"": 1})
		assert.ErrorIs(t, err, record.ErrInvalidKey)
	})
}

func TestRecord_Delete(t *testing.T) {
	r := record.MustNew(map[string]any{"a": 1, "b": 2})

	prev, err := r.Delete("a")
	require.NoError(t, err)
	assert.Equal(t, 1, prev)
	assert.Equal(t, []string{"b"}, r.Keys())

	prev, err = r.Delete("a")
	require.NoError(t, err)
	assert.Nil(t, prev)
}

func TestRecord_Update(t *testing.T) {
	r := record.MustNew(map[string]any{"a": 1})
	require.NoError(t, r.Update(map[string]any{"b": 2, "a": 3}))

	assert.Equal(t, []string{"a", "b"}, r.Keys())
	assert.Empty(t, cmp.Diff(map[string]any{"a": 3, "b": 2}, r.ToMap()))
}

func TestRecord_MergeDoesNotMutate(t *testing.T) {
	r := record.MustNew(map[string]any{"a": 1, "b": 2})
	other := record.MustNew(map[string]any{"b": 20, "c": 30})

	merged, err := r.Merge(other)
	require.NoError(t, err)

	assert.Empty(t, cmp.Diff(map[string]any{"a": 1, "b": 2}, r.ToMap()))
	assert.Empty(t, cmp.Diff(map[string]any{"a": 1, "b": 20, "c": 30}, merged.ToMap()))
	assert.Equal(t, []string{"a", "b", "c"}, merged.Keys())

	fromMap, err := r.Merge(map[string]int{"d": 4})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "d"}, fromMap.Keys())
	assert.Equal(t, 2, r.Len())
}

func TestRecord_MergeFrozenReceiver(t *testing.T) {
	r := record.MustNew(map[string]any{"a": 1}).Freeze()

	merged, err := r.Merge(map[string]any{"b": 2})
	require.NoError(t, err)
	assert.False(t, merged.Frozen())
	assert.Equal(t, 2, merged.Len())
	assert.Equal(t, 1, r.Len())
}

func TestRecord_ToMapIsIndependent(t *testing.T) {
	r := record.MustNew(map[string]any{"a": 1})

	m := r.ToMap()
	m["a"] = 2
	m["b"] = 3

	v, _ := r.Lookup("a")
	assert.Equal(t, 1, v)
	assert.False(t, r.Has("b"))
}

func TestRecord_ToNestedMap(t *testing.T) {
	r, err := record.Nested(map[string]any{
		"a": map[string]any{"b": 1},
		"l": []any{record.MustNew(map[string]any{"x": true}), 2},
	})
	require.NoError(t, err)

	m, err := r.ToNestedMap()
	require.NoError(t, err)

	want := map[string]any{
		"a": map[string]any{"b": 1},
		"l": []any{map[string]any{"x": true}, 2},
	}
	assert.Empty(t, cmp.Diff(want, m))
}

func TestRecord_DigAndAt(t *testing.T) {
	r, err := record.Nested(map[string]any{"a": map[string]any{"b": map[string]any{"c": 3}}})
	require.NoError(t, err)

	v, err := r.Dig("a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, 3, v)

	b, err := r.At("a", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, b.Keys())

	_, err = r.Dig("a", "b", "c", "d")
	assert.ErrorIs(t, err, record.ErrNotRecord)

	_, err = r.At("a", "b", "c")
	assert.ErrorIs(t, err, record.ErrNotRecord)

	_, err = r.At("a", "missing")
	assert.ErrorIs(t, err, record.ErrNotRecord)

	self, err := r.At()
	require.NoError(t, err)
	assert.Same(t, r, self)
}

func TestRecord_StorePath(t *testing.T) {
	r := record.Blank()
	require.NoError(t, r.StorePath([]string{"a", "b", "c"}, 1))
	require.NoError(t, r.StorePath([]string{"a", "x"}, 2))

	v, err := r.Dig("a", "b", "c")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	a, err := r.At("a")
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "x"}, a.Keys())

	assert.ErrorIs(t, r.StorePath([]string{"a", "x", "y"}, 3), record.ErrNotRecord)
	assert.ErrorIs(t, r.StorePath(nil, 3), record.ErrInvalidKey)
}

func TestRecord_EachAndAll(t *testing.T) {
	r := record.Blank()
	require.NoError(t, r.Store("b", 1))
	require.NoError(t, r.Store("a", 2))

	var keys []string
	var values []any

	r.Each(func(k string, v any) {
		keys = append(keys, k)
		values = append(values, v)
	})

	assert.Equal(t, []string{"b", "a"}, keys)
	assert.Equal(t, []any{1, 2}, values)

	keys = keys[:0]
	for k := range r.All() {
		keys = append(keys, k)
	}

	assert.Equal(t, []string{"b", "a"}, keys)
}

func TestRecord_FoldPolicy(t *testing.T) {
	r := record.Blank(record.WithPolicy(options.PolicyFold))
	require.NoError(t, r.Store("OrderID", 1))

	assert.True(t, r.Has("order_id"))
	assert.True(t, r.Has("orderId"))
	assert.Equal(t, []string{"orderid"}, r.Keys())

	require.NoError(t, r.Store("order-id", 2))
	v, _ := r.Lookup("ORDER_ID")
	assert.Equal(t, 2, v)
	assert.Equal(t, 1, r.Len())

	assert.ErrorIs(t, r.Store("__", 1), record.ErrInvalidKey)
}

func TestRecord_EmptyAndLen(t *testing.T) {
	r := record.Blank()
	assert.True(t, r.Empty())
	assert.Equal(t, 0, r.Len())

	require.NoError(t, r.Store("a", nil))
	assert.False(t, r.Empty())
	assert.Equal(t, 1, r.Len())
}

func TestRecord_StoreRejectsEmptyName(t *testing.T) {
	r := record.Blank()
	assert.ErrorIs(t, r.Store("", 1), record.ErrInvalidKey)
	assert.True(t, r.Empty())
}

func TestRecord_UpdateInvalidNameWritesNothing(t *testing.T) {
	src := store.NewTable(0)
	require.NoError(t, src.Store("b", 2))
	require.NoError(t, src.Store("", 3))

	r := record.MustNew(map[string]any{"a": 1})

	err := r.Update(src)
	require.ErrorIs(t, err, record.ErrInvalidKey)
	assert.Equal(t, []string{"a"}, r.Keys())
}
