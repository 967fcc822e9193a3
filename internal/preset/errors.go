package preset

import "errors"

var (
	// ErrUnknownAcceptable is returned for an unknown predicate name.
	ErrUnknownAcceptable = errors.New("unknown acceptable preset")

	// ErrUnknownReplacer is returned for an unknown replacer name.
	ErrUnknownReplacer = errors.New("unknown replacer preset")
)
