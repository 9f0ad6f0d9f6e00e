// Package record implements Record, an insertion-ordered attribute container
// whose fields are created by writing to them.
//
// # Field access
//
// Fields can be used through explicit methods (Read, Store, Has, Delete, ...)
// or through virtual member access with Call, where the last character of the
// member name selects the operation:
//
//	r.Call("name=", "Ann") // write, returns the stored value
//	r.Call("name")         // read, nil when unset
//	r.Call("name?")        // existence check
//	r.Call("keys!")        // raw primitive of the backing store.Table
//
// A small set of names is reserved for the record's own operations
// (dup, clone, freeze, frozen, empty, hash, inspect, string, to_s, to_h,
// to_enum, equal, table) together with every name starting with "__".
// Plain access to a reserved name runs the operation; writing or querying it
// through Call fails with ErrReservedName. Store, Read and Has accept any
// name, so such fields remain reachable.
//
// # Policies
//
// A record created with Cascade autovivifies: reading a missing field stores
// and returns an empty child record with the same policy, so
//
//	root, _ := record.Cascade(nil)
//	c, _ := root.Dig("a", "b", "c")
//
// builds a three level tree. A record created with Nested turns every raw Go
// map written into it into a child record. CascadeNested combines both. See
// options.PolicyEnum for the full set of flags.
//
// # Copies and identity
//
// Dup and Merge return records with their own table; changes to a copy never
// reach the original. Values are copied shallowly, so child records are
// shared until replaced. Equal compares entries regardless of order. Freeze
// makes every later mutation fail with ErrFrozen.
//
// # Thread Safety
//
// Records have no internal synchronization. Concurrent use that includes a
// mutation must be serialized by the caller. Reads on a cascade record are
// mutations.
//
// # Cycles
//
// Storing a record inside itself is allowed. Equal, Hash, String and
// ToNestedMap detect the cycle instead of recursing forever; ToNestedMap
// reports it as ErrCycle. Equal and Hash also stop on []any and
// map[string]any values that contain themselves. Under the nested policy a
// Go map that contains itself cannot become a record and its write fails
// with ErrCycle.
package record
