package user

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"doctorsportal/models"
)

// protectedFields cannot be written through a profile upsert.
var protectedFields = map[string]struct{}{
	"_id":   {},
	"email": {},
	"role":  {},
}

func (s *DefaultUserService) Upsert(ctx context.Context, email string, profile map[string]interface{}) (models.UpdateResult, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return models.UpdateResult{}, ErrInvalidEmail
	}

	fields := bson.M{}
	for k, v := range profile {
		if _, skip := protectedFields[k]; skip {
			continue
		}
		// Field names starting with "$" or containing "." are operators or paths, not profile data.
		if k == "" || strings.HasPrefix(k, "$") || strings.Contains(k, ".") {
			continue
		}
		fields[k] = v
	}

	result, err := s.Repo.Upsert(ctx, email, fields)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("upsert user: %w", err)
	}
	return result, nil
}
