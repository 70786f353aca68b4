package serviceRepo

import (
	"context"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "services"

// ServiceRepository reads the treatment catalogue.
type ServiceRepository interface {
	// GetAll lists every service with its slots.
	GetAll(ctx context.Context) ([]models.Service, error)
	// GetSummaries lists every service projected to {_id, name}.
	GetSummaries(ctx context.Context) ([]models.ServiceSummary, error)
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new MongoDB ServiceRepository.
func NewMongoServiceRepo(db *mongo.Database) ServiceRepository {
	return &mongoServiceRepo{coll: db.Collection(CollectionName)}
}
