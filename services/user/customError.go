package user

import "errors"

// ErrInvalidEmail is returned when an operation is given an empty email.
var ErrInvalidEmail = errors.New("email is required")
