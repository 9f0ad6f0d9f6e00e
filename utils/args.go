// Package utils holds small generic helpers for positional argument lists.
package utils

type number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// IsInRange checks if a value is within the specified range, both inclusive.
func IsInRange[T number](min T, value T, max T) bool {
	return min <= value && value <= max
}

// First returns the first element of s, or the zero value when s is empty.
func First[Slice ~[]T, T any](s Slice) T {
	first, _ := Unpack2(s)
	return first
}

// Unpack2 returns the first two elements of s, padding missing ones with zero values.
func Unpack2[Slice ~[]T, T any](s Slice) (first T, second T) {
	switch len(s) {
	default:
		return s[0], s[1]
	case 0:
		return
	case 1:
		first = s[0]
		return
	}
}
