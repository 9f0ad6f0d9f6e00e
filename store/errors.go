package store

import "errors"

var (
	ErrFrozen         = errors.New("table is frozen")
	ErrKeyNotFound    = errors.New("key not found")
	ErrUnsupportedRaw = errors.New("unsupported raw operation")
	ErrRawArguments   = errors.New("invalid raw operation arguments")
)
