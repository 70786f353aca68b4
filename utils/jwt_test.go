package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenManager_GenerateAndValidate(t *testing.T) {
	tm := NewTokenManager("s3cret", time.Hour)

	token, err := tm.Generate("a@x.com")
	require.NoError(t, err)

	claims, err := tm.Validate(token)
	require.NoError(t, err)
	assert.Equal(t, "a@x.com", claims.Email)
	assert.InDelta(t, time.Now().Add(time.Hour).Unix(), claims.ExpiresAt, 5)
}

func TestTokenManager_DefaultTTL(t *testing.T) {
	tm := NewTokenManager("s3cret", 0)
	assert.Equal(t, DefaultTokenTTL, tm.ttl)
}

func TestTokenManager_RejectsExpired(t *testing.T) {
	tm := NewTokenManager("s3cret", -time.Minute)

	token, err := tm.Generate("a@x.com")
	require.NoError(t, err)

	_, err = tm.Validate(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsWrongSecret(t *testing.T) {
	token, err := NewTokenManager("other", time.Hour).Generate("a@x.com")
	require.NoError(t, err)

	_, err = NewTokenManager("s3cret", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsUnsignedToken(t *testing.T) {
	claims := Claims{Email: "a@x.com", StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewTokenManager("s3cret", time.Hour).Validate(token)
	assert.Error(t, err)
}

func TestTokenManager_RejectsMissingEmail(t *testing.T) {
	claims := Claims{StandardClaims: jwt.StandardClaims{ExpiresAt: time.Now().Add(time.Hour).Unix()}}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("s3cret"))
	require.NoError(t, err)

	_, err = NewTokenManager("s3cret", time.Hour).Validate(token)
	assert.ErrorIs(t, err, ErrMissingEmail)
}

func TestTokenManager_RejectsGarbage(t *testing.T) {
	_, err := NewTokenManager("s3cret", time.Hour).Validate("not.a.token")
	assert.Error(t, err)
}
