package auth

import (
	"context"
	"fmt"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/bson"
)

type roleEntry struct {
	Role string `json:"role"`
}

// Authorizer checks stored roles. Role lookups are cached in Redis when a client is given.
type Authorizer struct {
	users userRepo.UserRepository
	cache *redis.Client
}

func NewAuthorizer(users userRepo.UserRepository, cache *redis.Client) *Authorizer {
	return &Authorizer{users: users, cache: cache}
}

// AuthorizeAdmin permits email only when its user record has the admin role.
// A missing user is forbidden.
func (a *Authorizer) AuthorizeAdmin(ctx context.Context, email string) error {
	role, found, err := a.role(ctx, email)
	if err != nil {
		return err
	}
	if !found || role != models.RoleAdmin {
		return ErrForbidden
	}
	return nil
}

func (a *Authorizer) role(ctx context.Context, email string) (string, bool, error) {
	key := utils.RoleCacheKey(email)

	var entry roleEntry
	if utils.CacheGetJSON(ctx, a.cache, key, &entry) {
		return entry.Role, true, nil
	}

	u, err := a.users.GetByEmailWithProjection(ctx, email, bson.M{"email": 1, "role": 1})
	if err != nil {
		return "", false, fmt.Errorf("role lookup for %s: %w", email, err)
	}
	if u == nil {
		return "", false, nil
	}

	utils.CacheSetJSON(ctx, a.cache, key, roleEntry{Role: u.Role}, utils.RoleCacheTTL)
	return u.Role, true, nil
}
