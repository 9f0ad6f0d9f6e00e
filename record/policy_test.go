package record_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"openrecord/options"
	"openrecord/record"
)

func TestCascade_AutovivChain(t *testing.T) {
	root, err := record.Cascade(nil)
	require.NoError(t, err)

	c, err := root.Dig("a", "b", "c")
	require.NoError(t, err)

	assert.True(t, root.Has("a"))

	a, err := root.At("a")
	require.NoError(t, err)
	assert.True(t, a.Has("b"))

	leaf, ok := c.(*record.Record)
	require.True(t, ok)
	assert.True(t, leaf.Empty())
	assert.Equal(t, options.PolicyCascade, leaf.Policy())

	_, err = leaf.Dig("deeper", "still")
	require.NoError(t, err)
	assert.True(t, leaf.Has("deeper"))
}

func TestCascade_StoreThroughChain(t *testing.T) {
	c, err := record.Cascade(nil)
	require.NoError(t, err)

	level2, err := c.At("level1", "level2")
	require.NoError(t, err)
	require.NoError(t, level2.Store("v", 5))

	v, err := c.Dig("level1", "level2", "v")
	require.NoError(t, err)
	assert.Equal(t, 5, v)
	assert.True(t, c.Has("level1"))
}

func TestCascade_ReadStoresChildOnce(t *testing.T) {
	c, err := record.Auto(nil)
	require.NoError(t, err)

	first, err := c.Read("x")
	require.NoError(t, err)

	second, err := c.Read("x")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, c.Len())
}

func TestCascade_HasDoesNotVivify(t *testing.T) {
	c, err := record.Cascade(nil)
	require.NoError(t, err)

	assert.False(t, c.Has("x"))
	_, ok := c.Lookup("x")
	assert.False(t, ok)
	assert.True(t, c.Empty())
}

func TestCascade_FrozenReadFails(t *testing.T) {
	c, err := record.Cascade(map[string]any{"a": 1})
	require.NoError(t, err)
	c.Freeze()

	v, err := c.Read("a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	_, err = c.Read("missing")
	require.ErrorIs(t, err, record.ErrFrozen)
	assert.Equal(t, []string{"a"}, c.Keys())
}

func TestWithFactory(t *testing.T) {
	n := 0
	r := record.Blank(record.WithFactory(func() any {
		n++
		return n
	}))

	v, err := r.Read("a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = r.Read("a")
	require.NoError(t, err)
	assert.Equal(t, 1, v)

	v, err = r.Read("b")
	require.NoError(t, err)
	assert.Equal(t, 2, v)
}

func TestWithFactory_NestedWrapsProducedMaps(t *testing.T) {
	r := record.Blank(
		record.WithPolicy(options.PolicyNested),
		record.WithFactory(func() any { return map[string]any{"count": 0} }),
	)

	v, err := r.Read("stats")
	require.NoError(t, err)

	child, ok := v.(*record.Record)
	require.True(t, ok)

	count, _ := child.Lookup("count")
	assert.Equal(t, 0, count)
}

func TestNested_WrapsMapsOnWrite(t *testing.T) {
	r, err := record.Nested(nil)
	require.NoError(t, err)

	require.NoError(t, r.Store("x", map[string]any{"y": 1}))

	v, err := r.Read("x")
	require.NoError(t, err)

	child, ok := v.(*record.Record)
	require.True(t, ok)

	y, err := child.Read("y")
	require.NoError(t, err)
	assert.Equal(t, 1, y)
	assert.Equal(t, options.PolicyNested, child.Policy())
}

func TestNested_Recursive(t *testing.T) {
	r, err := record.Nested(map[string]any{
		"a": map[string]any{"b": map[string]int{"c": 1}},
		"s": "plain",
	})
	require.NoError(t, err)

	b, err := r.At("a", "b")
	require.NoError(t, err)

	c, _ := b.Lookup("c")
	assert.Equal(t, 1, c)

	s, _ := r.Lookup("s")
	assert.Equal(t, "plain", s)
}

func TestNested_KeepsRecords(t *testing.T) {
	r, err := record.Nested(nil)
	require.NoError(t, err)

	child := record.Blank()
	require.NoError(t, r.Store("child", child))

	v, _ := r.Lookup("child")
	assert.Same(t, child, v)
}

func TestNested_BadChildKey(t *testing.T) {
	r, err := record.Nested(nil)
	require.NoError(t, err)

	err = r.Store("x", map[float32]int{1: 1})
	require.ErrorIs(t, err, record.ErrInvalidKey)
	assert.False(t, r.Has("x"))
}

func TestPlain_StoresMapsAsIs(t *testing.T) {
	r := record.Blank()
	m := map[string]any{"y": 1}
	require.NoError(t, r.Store("x", m))

	v, _ := r.Lookup("x")
	assert.Equal(t, m, v)
}

func TestCascadeNested(t *testing.T) {
	r, err := record.CascadeNested(map[string]any{"cfg": map[string]any{"port": 80}})
	require.NoError(t, err)

	cfg, err := r.At("cfg")
	require.NoError(t, err)
	assert.Equal(t, options.PolicyCascade|options.PolicyNested, cfg.Policy())

	tls, err := cfg.At("tls")
	require.NoError(t, err)
	assert.True(t, tls.Empty())

	require.NoError(t, tls.Store("opts", map[string]any{"min": "1.2"}))
	minVersion, err := r.Dig("cfg", "tls", "opts", "min")
	require.NoError(t, err)
	assert.Equal(t, "1.2", minVersion)
}

func TestUpdate_DuplicateKeysLastWins(t *testing.T) {
	r := record.Blank(record.WithPolicy(options.PolicyFold))
	require.NoError(t, r.Update(map[string]int{"Order_ID": 1, "orderid": 2}))

	v, _ := r.Lookup("orderid")
	assert.Equal(t, 2, v, "sorted source order puts Order_ID first")
	assert.Equal(t, 1, r.Len())
}

func TestNested_CyclicMap(t *testing.T) {
	r, err := record.Nested(nil)
	require.NoError(t, err)

	m := map[string]any{"name": "loop"}
	m["self"] = m

	err = r.Store("x", m)
	require.ErrorIs(t, err, record.ErrCycle)
	assert.False(t, r.Has("x"))

	_, err = record.Nested(map[string]any{"x": map[string]any{"inner": m}})
	require.ErrorIs(t, err, record.ErrCycle)

	shared := map[string]any{"v": 1}
	require.NoError(t, r.Store("y", map[string]any{"a": shared, "b": shared}))

	v, err := r.Dig("y", "b", "v")
	require.NoError(t, err)
	assert.Equal(t, 1, v)
}
