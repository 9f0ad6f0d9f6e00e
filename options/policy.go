package options

import "strings"

// PolicyEnum selects the per-record behaviors applied by the record package.
// Flags combine with bitwise OR.
type PolicyEnum int

const (
	PolicyCascade PolicyEnum = 1 << iota // reading an absent field creates, stores and returns an empty child record
	PolicyNested                         // writing a raw Go map stores a child record built from it
	PolicyFold                           // field names are folded: OrderID, order_id and orderId are one field
	PolicyNoCache                        // per-instance accessor cache is never populated

	PolicyAll  PolicyEnum = (1 << iota) - 1 // all policies combined
	PolicyNone PolicyEnum = 0               // plain record
)

var policyNames = []struct {
	flag PolicyEnum
	name string
}{
	{PolicyCascade, "cascade"},
	{PolicyNested, "nested"},
	{PolicyFold, "fold"},
	{PolicyNoCache, "nocache"},
}

// Has reports whether every flag set in f is also set in p.
func (p PolicyEnum) Has(f PolicyEnum) bool {
	return p&f == f
}

// With returns p with the flags of f set.
func (p PolicyEnum) With(f PolicyEnum) PolicyEnum {
	return p | f
}

// Without returns p with the flags of f cleared.
func (p PolicyEnum) Without(f PolicyEnum) PolicyEnum {
	return p &^ f
}

func (p PolicyEnum) String() string {
	if p == PolicyNone {
		return "none"
	}

	var parts []string

	for _, pn := range policyNames {
		if p.Has(pn.flag) {
			parts = append(parts, pn.name)
			p = p.Without(pn.flag)
		}
	}

	if p != 0 {
		parts = append(parts, "unknown")
	}

	return strings.Join(parts, "|")
}

// ParsePolicy parses a "|" or "," separated list of policy names as printed by String.
func ParsePolicy(s string) (PolicyEnum, bool) {
	var p PolicyEnum

	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == '|' || r == ',' }) {
		part = strings.TrimSpace(strings.ToLower(part))
		if part == "" || part == "none" {
			continue
		}

		found := false

		for _, pn := range policyNames {
			if pn.name == part {
				p = p.With(pn.flag)
				found = true

				break
			}
		}

		if !found {
			return PolicyNone, false
		}
	}

	return p, true
}
