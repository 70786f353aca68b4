package middleware

import (
	"context"
	"errors"
	"net/http"

	"doctorsportal/services/auth"
	"doctorsportal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	// ClaimsKey holds the verified *utils.Claims in the gin context.
	ClaimsKey = "claims"
	// EmailKey holds the verified email in the gin context.
	EmailKey = "email"
)

type CredentialVerifier interface {
	Verify(header string) (*utils.Claims, error)
}

type AdminAuthorizer interface {
	AuthorizeAdmin(ctx context.Context, email string) error
}

// JWTAuthMiddleware requires a valid bearer credential: 401 when absent, 403 when invalid.
func JWTAuthMiddleware(verifier CredentialVerifier) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := verifier.Verify(c.GetHeader("Authorization"))
		if err != nil {
			if errors.Is(err, auth.ErrUnauthenticated) {
				c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
				return
			}
			zap.L().Debug("credential rejected", zap.String("path", c.FullPath()), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Forbidden access"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Set(EmailKey, claims.Email)
		c.Next()
	}
}

// AdminMiddleware lets the request through only when the verified email belongs to an admin.
// It must run after JWTAuthMiddleware.
func AdminMiddleware(authz AdminAuthorizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		email := c.GetString(EmailKey)
		if email == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}

		if err := authz.AuthorizeAdmin(c.Request.Context(), email); err != nil {
			if errors.Is(err, auth.ErrForbidden) {
				c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "forbidden access"})
				return
			}
			zap.L().Error("admin authorization failed", zap.String("email", email), zap.Error(err))
			c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "failed to verify role"})
			return
		}
		c.Next()
	}
}

// ClaimsFrom returns the claims stored by JWTAuthMiddleware.
func ClaimsFrom(c *gin.Context) (*utils.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*utils.Claims)
	return claims, ok
}
