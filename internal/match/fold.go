package match

import (
	"strings"
	"unicode"
)

// Fold returns the folded form of a field name.
// The folding pipeline:
// 1. Case-fold to lower.
// 2. Strip separators (_, -, spaces).
//
// So "OrderID", "order_id", "order-id" and "orderId" all fold to "orderid".
func Fold(s string) string {
	var b strings.Builder

	b.Grow(len(s))

	for _, r := range s {
		if isSeparator(r) {
			continue
		}

		b.WriteRune(unicode.ToLower(r))
	}

	return b.String()
}

// isSeparator returns true if the rune is a common separator.
func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}
