package record

import "openrecord/options"

// accessor is a resolved fast path for one field of one record.
type accessor struct {
	read  func() (any, error)
	write func(v any) (any, error)
	query func() bool
}

// accessorFor returns the accessor for the canonical key k, requested as name.
// Unless the policy disables it, the accessor is kept so later calls for the
// same name skip classification.
func (r *Record) accessorFor(name, k string) *accessor {
	acc := &accessor{
		read:  func() (any, error) { return r.readKey(k) },
		write: func(v any) (any, error) { return r.write(k, v) },
		query: func() bool { return r.table.Has(k) },
	}

	if r.policy.Has(options.PolicyNoCache) {
		return acc
	}

	if r.accessors == nil {
		r.accessors = make(map[string]*accessor)
	}

	r.accessors[name] = acc

	return acc
}
