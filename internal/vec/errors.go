package vec

import "errors"

// ErrInvalidVector is returned when a vector cannot be built from
// untrusted input: a component is missing, not numeric, or NaN.
var ErrInvalidVector = errors.New("vec: invalid vector input")
