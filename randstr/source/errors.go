package source

import "errors"

var (
	// ErrUnknownKind is returned by New for an unsupported source kind.
	ErrUnknownKind = errors.New("unknown random source kind")
)
