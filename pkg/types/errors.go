package types

import "errors"

// ErrInvalidArgument is returned by entity constructors when a numeric
// invariant is violated (pages <= 0, age <= 0, followers < 0). Behavior
// methods never return errors.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrLocaleUnknown is returned when a language tag is malformed or has no
// matching phrasebook.
var ErrLocaleUnknown = errors.New("unknown locale")
