package auth

import (
	"fmt"
	"strings"

	"doctorsportal/utils"
)

// TokenValidator checks a raw token and yields its claims.
type TokenValidator interface {
	Validate(tokenString string) (*utils.Claims, error)
}

// Verifier turns an Authorization header value into verified claims.
type Verifier struct {
	tokens TokenValidator
}

func NewVerifier(tokens TokenValidator) *Verifier {
	return &Verifier{tokens: tokens}
}

// Verify expects "Bearer <token>". An absent header is ErrUnauthenticated;
// anything present that does not verify is ErrForbidden.
func (v *Verifier) Verify(header string) (*utils.Claims, error) {
	if strings.TrimSpace(header) == "" {
		return nil, ErrUnauthenticated
	}

	scheme, token, ok := strings.Cut(strings.TrimSpace(header), " ")
	token = strings.TrimSpace(token)
	if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
		return nil, fmt.Errorf("%w: malformed authorization header", ErrForbidden)
	}

	claims, err := v.tokens.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrForbidden, err)
	}
	return claims, nil
}
