package auth

import "errors"

var (
	// ErrUnauthenticated means the request carried no credential.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrForbidden means the credential is invalid or lacks the required role or identity.
	ErrForbidden = errors.New("forbidden")
)
