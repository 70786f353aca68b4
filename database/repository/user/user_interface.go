package userRepo

import (
	"context"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByEmail retrieves a user by its email address. A missing user yields (nil, nil).
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetByEmailWithProjection retrieves a user by its email with a projection.
	GetByEmailWithProjection(ctx context.Context, email string, projection bson.M) (*models.User, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// Upsert sets the given fields on the user keyed by email, creating it when absent.
	Upsert(ctx context.Context, email string, fields bson.M) (models.UpdateResult, error)
	// SetRole sets the role of an existing user. It never creates a user.
	SetRole(ctx context.Context, email, role string) (models.UpdateResult, error)
}
