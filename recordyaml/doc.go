// Package recordyaml converts between YAML documents and records.
//
// Mappings become records whose fields keep the document order, sequences
// become []any and scalars decode to their natural Go values. Marshal writes
// records back in insertion order:
//
//	r, err := recordyaml.Load(data, record.WithPolicy(options.PolicyCascade))
//	out, err := recordyaml.Marshal(r)
//
// Every record created by Load, including children, is configured with the
// options passed to it.
package recordyaml
