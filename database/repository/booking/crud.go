package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

func (r *MongoBookingRepo) Insert(ctx context.Context, booking *models.Booking) (models.InsertResult, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if booking.ID == "" {
		booking.ID = uuid.New().String()
	}
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)
	}

	res, err := r.coll.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.InsertResult{}, fmt.Errorf("%w: %s", ErrDuplicate, err.Error())
		}
		return models.InsertResult{}, fmt.Errorf("failed to create booking: %w", err)
	}
	return models.NewInsertResult(res), nil
}
