package record

import (
	"fmt"
	"reflect"
	"strconv"

	"openrecord/internal/match"
	"openrecord/options"
)

// name returns the canonical table key for a field name.
func (r *Record) name(key string) string {
	if r.policy.Has(options.PolicyFold) {
		return match.Fold(key)
	}

	return key
}

// checkedName is like name but rejects names that cannot be stored.
func (r *Record) checkedName(key string) (string, error) {
	k := r.name(key)
	if k == "" {
		return "", fmt.Errorf("%w: empty field name %q", ErrInvalidKey, key)
	}

	return k, nil
}

// keyString converts a map key from a source into a field name.
// String kinds, byte slices, fmt.Stringer values and integers are accepted.
func keyString(k any) (string, error) {
	switch v := k.(type) {
	case string:
		return v, nil
	case []byte:
		return string(v), nil
	case fmt.Stringer:
		return v.String(), nil
	}

	rv := reflect.ValueOf(k)

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return strconv.FormatUint(rv.Uint(), 10), nil
	default:
		return "", fmt.Errorf("%w: %T cannot be a field name", ErrInvalidKey, k)
	}
}
