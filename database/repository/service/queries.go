package serviceRepo

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

func (r *mongoServiceRepo) GetAll(ctx context.Context) ([]models.Service, error) {
	services := []models.Service{}
	if err := r.findAll(ctx, nil, &services); err != nil {
		return nil, err
	}
	for i := range services {
		if services[i].Slots == nil {
			services[i].Slots = []string{}
		}
	}
	return services, nil
}

func (r *mongoServiceRepo) GetSummaries(ctx context.Context) ([]models.ServiceSummary, error) {
	summaries := []models.ServiceSummary{}
	if err := r.findAll(ctx, bson.M{"name": 1}, &summaries); err != nil {
		return nil, err
	}
	return summaries, nil
}

// findAll decodes every service in natural order into results.
// Pass nil for projection to retrieve full documents.
func (r *mongoServiceRepo) findAll(ctx context.Context, projection bson.M, results interface{}) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	opts := options.Find()
	if projection != nil {
		opts.SetProjection(projection)
	}

	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return fmt.Errorf("failed to retrieve services: %w", err)
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, results); err != nil {
		return fmt.Errorf("failed to decode services: %w", err)
	}
	return nil
}
