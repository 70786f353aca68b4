package auth

import (
	"testing"
	"time"

	"doctorsportal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifier_Verify(t *testing.T) {
	tokens := utils.NewTokenManager("s3cret", time.Hour)
	v := NewVerifier(tokens)

	valid, err := tokens.Generate("a@x.com")
	require.NoError(t, err)
	expired, err := utils.NewTokenManager("s3cret", -time.Minute).Generate("a@x.com")
	require.NoError(t, err)
	foreign, err := utils.NewTokenManager("other", time.Hour).Generate("a@x.com")
	require.NoError(t, err)

	tests := []struct {
		name    string
		header  string
		wantErr error
	}{
		{name: "absent", header: "", wantErr: ErrUnauthenticated},
		{name: "whitespace only", header: "   ", wantErr: ErrUnauthenticated},
		{name: "no scheme", header: valid, wantErr: ErrForbidden},
		{name: "basic scheme", header: "Basic " + valid, wantErr: ErrForbidden},
		{name: "bearer without token", header: "Bearer ", wantErr: ErrForbidden},
		{name: "garbage token", header: "Bearer abc.def.ghi", wantErr: ErrForbidden},
		{name: "expired", header: "Bearer " + expired, wantErr: ErrForbidden},
		{name: "wrong secret", header: "Bearer " + foreign, wantErr: ErrForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims, err := v.Verify(tt.header)
			assert.Nil(t, claims)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	t.Run("valid", func(t *testing.T) {
		claims, err := v.Verify("Bearer " + valid)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", claims.Email)
	})

	t.Run("scheme is case insensitive", func(t *testing.T) {
		claims, err := v.Verify("bearer " + valid)
		require.NoError(t, err)
		assert.Equal(t, "a@x.com", claims.Email)
	})
}
