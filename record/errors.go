package record

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"openrecord/store"
)

var (
	ErrKeyNotFound    = store.ErrKeyNotFound
	ErrFrozen         = store.ErrFrozen
	ErrUnsupportedRaw = store.ErrUnsupportedRaw
	ErrRawArguments   = store.ErrRawArguments

	ErrReservedName      = errors.New("reserved name")
	ErrInvalidKey        = errors.New("invalid key")
	ErrNotRecord         = errors.New("value is not a record")
	ErrCycle             = errors.New("record contains itself")
	ErrUnsupportedSource = errors.New("unsupported source")
	ErrArguments         = errors.New("invalid arguments")
)

// KeyError reports a field that had to exist but does not.
// It matches ErrKeyNotFound with errors.Is.
type KeyError struct {
	// Key is the requested field name after normalization.
	Key string
	// Suggestions are existing keys that look like Key, best first.
	Suggestions []string
}

func (e *KeyError) Error() string {
	msg := "key not found: " + strconv.Quote(e.Key)
	if len(e.Suggestions) == 0 {
		return msg
	}

	quoted := make([]string, len(e.Suggestions))
	for i, s := range e.Suggestions {
		quoted[i] = strconv.Quote(s)
	}

	return fmt.Sprintf("%s (did you mean %s?)", msg, strings.Join(quoted, " or "))
}

func (e *KeyError) Unwrap() error {
	return ErrKeyNotFound
}
