package userRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Upsert applies $set of fields to the user keyed by email.
func (r *MongoUserRepo) Upsert(ctx context.Context, email string, fields bson.M) (models.UpdateResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	set := bson.M{"email": email}
	for k, v := range fields {
		set[k] = v
	}
	filter := bson.M{"email": email}
	update := bson.M{"$set": set}

	result, err := r.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to upsert user with email %s: %w", email, err)
	}
	return models.NewUpdateResult(result), nil
}

// SetRole updates the role of the user keyed by email.
func (r *MongoUserRepo) SetRole(ctx context.Context, email, role string) (models.UpdateResult, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"email": email}
	update := bson.M{"$set": bson.M{"role": role}}

	result, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return models.UpdateResult{}, fmt.Errorf("failed to set role for user with email %s: %w", email, err)
	}
	return models.NewUpdateResult(result), nil
}
