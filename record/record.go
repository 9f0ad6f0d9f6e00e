package record

import (
	"iter"

	"openrecord/options"
	"openrecord/store"
)

// Record is a dynamic attribute container backed by an insertion-ordered table.
// The zero value is not usable; create records with New, Blank or one of the
// policy constructors.
type Record struct {
	table     *store.Table
	policy    options.PolicyEnum
	factory   func() any
	accessors map[string]*accessor
}

// Source is an ordered sequence of entries that can seed or be merged into a record.
// *Record and *store.Table implement it.
type Source interface {
	All() iter.Seq2[string, any]
}

type config struct {
	policy  options.PolicyEnum
	factory func() any
}

// Option configures a new record.
type Option func(*config)

// WithPolicy adds the flags of p to the record's policy.
func WithPolicy(p options.PolicyEnum) Option {
	return func(c *config) {
		c.policy = c.policy.With(p)
	}
}

// WithFactory sets the producer used to fill fields that are read while absent.
// The produced value is stored before it is returned. It takes precedence over
// the child records produced by options.PolicyCascade.
func WithFactory(fn func() any) Option {
	return func(c *config) {
		c.factory = fn
	}
}

// Blank creates an empty record.
func Blank(opts ...Option) *Record {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Record{
		table:   store.NewTable(0),
		policy:  cfg.policy,
		factory: cfg.factory,
	}
}

// New creates a record and bulk loads data into it with Update.
// data may be nil, a Source, or a Go map with name-like keys.
func New(data any, opts ...Option) (*Record, error) {
	r := Blank(opts...)
	if err := r.Update(data); err != nil {
		return nil, err
	}

	return r, nil
}

// MustNew is like New but panics on error.
func MustNew(data any, opts ...Option) *Record {
	r, err := New(data, opts...)
	if err != nil {
		panic(err)
	}

	return r
}

// Cascade creates an autovivifying record seeded with data.
func Cascade(data any) (*Record, error) {
	return New(data, WithPolicy(options.PolicyCascade))
}

// Auto is another name for Cascade.
func Auto(data any) (*Record, error) {
	return Cascade(data)
}

// Nested creates a record that stores raw maps as child records.
func Nested(data any) (*Record, error) {
	return New(data, WithPolicy(options.PolicyNested))
}

// CascadeNested creates a record with both the cascade and nested policies.
func CascadeNested(data any) (*Record, error) {
	return New(data, WithPolicy(options.PolicyCascade|options.PolicyNested))
}

// spawn creates an empty child record with the same configuration as r.
func (r *Record) spawn() *Record {
	return &Record{
		table:   store.NewTable(0),
		policy:  r.policy,
		factory: r.factory,
	}
}

// Policy returns the policy flags r was created with.
func (r *Record) Policy() options.PolicyEnum {
	return r.policy
}

// Table exposes the backing table. Writes through it bypass normalization
// and nesting.
func (r *Record) Table() *store.Table {
	return r.table
}
