package user

import (
	"context"

	userRepo "doctorsportal/database/repository/user"
	"doctorsportal/models"
	"doctorsportal/services/notification"

	"github.com/go-redis/redis/v8"
)

// UserService defines business logic for user operations.
type UserService interface {
	// Upsert stores profile fields for email, creating the user when absent.
	// The role and email fields of the profile are ignored.
	Upsert(ctx context.Context, email string, profile map[string]interface{}) (models.UpdateResult, error)
	// IsAdmin reports whether email belongs to an admin. Unknown users are not admins.
	IsAdmin(ctx context.Context, email string) (bool, error)
	// GrantAdmin elevates an existing user to the admin role.
	GrantAdmin(ctx context.Context, email string) (models.UpdateResult, error)
	// GetAllUsers lists every user.
	GetAllUsers(ctx context.Context) ([]models.User, error)
}

// DefaultUserService is the production implementation. Cache and Notifier may be nil.
type DefaultUserService struct {
	Repo     userRepo.UserRepository
	Cache    *redis.Client
	Notifier notification.NotificationService
}
