package record

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/davecgh/go-spew/spew"

	"openrecord/internal/visit"
)

var dumpConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// String returns a debugging form listing the entries in insertion order:
//
//	#<Record: {name: "Ann", age: 30}>
//
// A record reached again through itself prints as #<Record: ...>.
func (r *Record) String() string {
	if r == nil {
		return "#<Record: nil>"
	}

	var (
		b  strings.Builder
		tr visit.Tracker[*Record]
	)

	r.inspect(&b, &tr)

	return b.String()
}

// GoString makes %#v print the same form as String.
func (r *Record) GoString() string {
	return r.String()
}

func (r *Record) inspect(b *strings.Builder, tr *visit.Tracker[*Record]) {
	if !tr.Enter(r) {
		b.WriteString("#<Record: ...>")
		return
	}
	defer tr.Leave(r)

	b.WriteString("#<Record: {")

	i := 0
	for k, v := range r.table.All() {
		if i > 0 {
			b.WriteString(", ")
		}

		b.WriteString(k)
		b.WriteString(": ")
		inspectValue(b, v, tr)

		i++
	}

	b.WriteString("}>")
}

func inspectValue(b *strings.Builder, v any, tr *visit.Tracker[*Record]) {
	switch x := v.(type) {
	case nil:
		b.WriteString("nil")
	case *Record:
		x.inspect(b, tr)
	case string:
		b.WriteString(strconv.Quote(x))
	default:
		fmt.Fprintf(b, "%v", x)
	}
}

// Dump returns a multi-line spew dump of the record as nested maps, meant for
// debugging. Records that contain themselves are dumped one level deep.
func (r *Record) Dump() string {
	m, err := r.ToNestedMap()
	if err != nil {
		return dumpConfig.Sdump(r.ToMap())
	}

	return dumpConfig.Sdump(m)
}
