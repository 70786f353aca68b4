package handlers

import (
	"errors"
	"io"
	"net/http"

	"doctorsportal/services/user"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TokenIssuer issues a fresh credential for an email.
type TokenIssuer interface {
	Generate(email string) (string, error)
}

type UserHandler struct {
	UserSvc user.UserService
	Tokens  TokenIssuer
	Logger  *zap.Logger
}

func NewUserHandler(us user.UserService, tokens TokenIssuer, logger *zap.Logger) *UserHandler {
	return &UserHandler{UserSvc: us, Tokens: tokens, Logger: logger}
}

// UpsertUser handles PUT /user/:email: it stores the profile, then issues a token for the email.
func (h *UserHandler) UpsertUser(c *gin.Context) {
	email := c.Param("email")

	profile := map[string]interface{}{}
	if err := c.ShouldBindJSON(&profile); err != nil && !errors.Is(err, io.EOF) {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"message": "invalid user payload", "details": err.Error()})
		return
	}

	result, err := h.UserSvc.Upsert(c.Request.Context(), email, profile)
	if err != nil {
		if errors.Is(err, user.ErrInvalidEmail) {
			respondError(c, h.Logger, http.StatusBadRequest, err.Error(), nil)
			return
		}
		respondError(c, h.Logger, http.StatusInternalServerError, "failed to save user", err)
		return
	}

	token, err := h.Tokens.Generate(email)
	if err != nil {
		respondError(c, h.Logger, http.StatusInternalServerError, "failed to issue token", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"result": result, "token": token})
}

// IsAdmin handles GET /admin/:email.
func (h *UserHandler) IsAdmin(c *gin.Context) {
	admin, err := h.UserSvc.IsAdmin(c.Request.Context(), c.Param("email"))
	if err != nil {
		respondError(c, h.Logger, http.StatusInternalServerError, "failed to check role", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}

// GetUsers handles GET /user.
func (h *UserHandler) GetUsers(c *gin.Context) {
	users, err := h.UserSvc.GetAllUsers(c.Request.Context())
	if err != nil {
		respondError(c, h.Logger, http.StatusInternalServerError, "failed to fetch users", err)
		return
	}
	c.JSON(http.StatusOK, users)
}
