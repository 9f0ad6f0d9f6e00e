package record

import "strings"

//go:generate go tool stringer -type=MarkerEnum -output=marker_string.go

// MarkerEnum is the operation selected by the suffix of a virtual member name.
type MarkerEnum int

const (
	MarkerNone   MarkerEnum = iota // "name": read
	MarkerAssign                   // "name=": write
	MarkerBang                     // "name!": raw store.Table primitive
	MarkerQuery                    // "name?": existence check
)

// Suffix returns the character that selects m, empty for MarkerNone.
func (m MarkerEnum) Suffix() string {
	switch m {
	case MarkerAssign:
		return "="
	case MarkerBang:
		return "!"
	case MarkerQuery:
		return "?"
	default:
		return ""
	}
}

// MarkerOf returns the marker selected by the last character of member.
func MarkerOf(member string) MarkerEnum {
	if member == "" {
		return MarkerNone
	}

	switch member[len(member)-1] {
	case '=':
		return MarkerAssign
	case '!':
		return MarkerBang
	case '?':
		return MarkerQuery
	default:
		return MarkerNone
	}
}

// Access describes one virtual member access.
type Access struct {
	// Name is the member name without its marker.
	Name string
	// Marker selects the operation.
	Marker MarkerEnum
	// Args are the positional arguments.
	Args []any
}

// Classify splits member into base name and marker.
// The base name has one trailing "=", then "!", then "?" removed, so
// "valid?=" writes the field "valid".
func Classify(member string, args ...any) Access {
	name := strings.TrimSuffix(member, "=")
	name = strings.TrimSuffix(name, "!")
	name = strings.TrimSuffix(name, "?")

	return Access{
		Name:   name,
		Marker: MarkerOf(member),
		Args:   args,
	}
}

// Member reassembles the member name of a.
func (a Access) Member() string {
	return a.Name + a.Marker.Suffix()
}
