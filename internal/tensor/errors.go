package tensor

import "errors"

// Common errors.
var (
	ErrDimOutOfRange = errors.New("dimension out of range")
	ErrInvalidShape  = errors.New("invalid shape")
	ErrUndefined     = errors.New("undefined tensor")
)
