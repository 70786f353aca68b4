package bookingRepo

import (
	"context"
	"errors"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "bookings"

// ErrDuplicate is returned by Insert when a booking with the same
// treatment, date and patient already exists.
var ErrDuplicate = errors.New("booking already exists")

type BookingRepository interface {
	// FindByDate lists the bookings for a calendar day.
	FindByDate(ctx context.Context, date string) ([]models.Booking, error)
	// FindByPatient lists the bookings of a patient.
	FindByPatient(ctx context.Context, patient string) ([]models.Booking, error)
	// FindByKey returns the booking with the given admission key, or (nil, nil).
	FindByKey(ctx context.Context, treatment, date, patient string) (*models.Booking, error)
	// Insert stores a booking, failing with ErrDuplicate on a key conflict.
	Insert(ctx context.Context, booking *models.Booking) (models.InsertResult, error)
}

// MongoBookingRepo implements BookingRepository using MongoDB.
type MongoBookingRepo struct {
	coll *mongo.Collection
}

func NewMongoBookingRepo(db *mongo.Database) *MongoBookingRepo {
	return &MongoBookingRepo{coll: db.Collection(CollectionName)}
}
