package graft

import (
	"errors"
	"fmt"
)

// Sentinel errors wrapped by the operations in this package. Match them
// with errors.Is; the concrete *KeyError / *ArgError carry the details.
var (
	// ErrInvalidKey marks a composite key the engine refuses outright,
	// such as the empty string.
	ErrInvalidKey = errors.New("invalid key")

	// ErrKeyNotFound marks a required segment that is absent and not
	// covered by a create or missing-ok flag.
	ErrKeyNotFound = errors.New("key not found")

	// ErrNotTraversable marks a non-final segment whose existing value
	// is not a map, making descent impossible.
	ErrNotTraversable = errors.New("not traversable")

	// ErrExists marks a refused overwrite of an existing value.
	ErrExists = errors.New("value already exists")

	// ErrValueNotFound marks a remove whose value is absent from the
	// addressed list.
	ErrValueNotFound = errors.New("value not found")

	// ErrNoOperator marks a patch argument without a recognized operator.
	ErrNoOperator = errors.New("no operator")

	// ErrBadLiteral marks a patch literal that looks structured but does
	// not parse.
	ErrBadLiteral = errors.New("bad literal")
)

// KeyError describes a failure while resolving or mutating a composite key.
type KeyError struct {
	Key     string // full composite key
	Segment string // segment where resolution stopped, if any
	Found   Kind   // kind encountered where something else was required
	Err     error  // sentinel category
}

func (e *KeyError) Error() string {
	switch {
	case errors.Is(e.Err, ErrNotTraversable):
		return fmt.Sprintf("cannot traverse %s at '%s' of '%s'", e.Found, e.Segment, e.Key)
	case errors.Is(e.Err, ErrExists):
		return fmt.Sprintf("cannot overwrite existing value for '%s'", e.Key)
	case errors.Is(e.Err, ErrValueNotFound):
		if e.Found != KindList {
			return fmt.Sprintf("cannot remove value from %s at '%s'", e.Found, e.Key)
		}
		return fmt.Sprintf("value not found in list at '%s'", e.Key)
	case errors.Is(e.Err, ErrInvalidKey):
		if e.Key == "" {
			return "empty composite key"
		}
		return fmt.Sprintf("invalid key '%s'", e.Key)
	case errors.Is(e.Err, ErrKeyNotFound):
		return fmt.Sprintf("unable to find component '%s' of '%s'", e.Segment, e.Key)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return fmt.Sprintf("key error for '%s'", e.Key)
}

func (e *KeyError) Unwrap() error { return e.Err }

// ArgError describes a patch argument that could not be parsed.
type ArgError struct {
	Arg string
	Err error
}

func (e *ArgError) Error() string {
	return fmt.Sprintf("bad patch argument %q: %v", e.Arg, e.Err)
}

func (e *ArgError) Unwrap() error { return e.Err }
