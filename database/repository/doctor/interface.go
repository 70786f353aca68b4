package doctorRepo

import (
	"context"

	"doctorsportal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

const CollectionName = "doctors"

type DoctorRepository interface {
	Create(ctx context.Context, doctor *models.Doctor) (models.InsertResult, error)
	GetAll(ctx context.Context) ([]models.Doctor, error)
}

type mongoDoctorRepo struct {
	coll *mongo.Collection
}

func NewMongoDoctorRepo(db *mongo.Database) DoctorRepository {
	return &mongoDoctorRepo{coll: db.Collection(CollectionName)}
}
