package user

import (
	"context"
	"fmt"

	"doctorsportal/models"
	"doctorsportal/services/notification"
	"doctorsportal/utils"

	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	u, err := s.Repo.GetByEmailWithProjection(ctx, email, bson.M{"email": 1, "role": 1})
	if err != nil {
		return false, fmt.Errorf("admin check: %w", err)
	}
	return u != nil && u.IsAdmin(), nil
}

func (s *DefaultUserService) GrantAdmin(ctx context.Context, email string) (models.UpdateResult, error) {
	if email == "" {
		return models.UpdateResult{}, ErrInvalidEmail
	}

	result, err := s.Repo.SetRole(ctx, email, models.RoleAdmin)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("grant admin: %w", err)
	}
	utils.CacheDelete(ctx, s.Cache, utils.RoleCacheKey(email))

	if result.MatchedCount > 0 && s.Notifier != nil {
		payload := map[string]string{"email": email, "role": models.RoleAdmin}
		if err := s.Notifier.Publish(ctx, notification.EventAdminGranted, email, payload); err != nil {
			zap.L().Warn("GrantAdmin: failed to publish event", zap.String("email", email), zap.Error(err))
		}
	}
	return result, nil
}
