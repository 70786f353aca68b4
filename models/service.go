package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// Service is a treatment offered by the clinic with its bookable slot labels, e.g. "09:00".
type Service struct {
	ID    primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitzero"`
	Name  string             `bson:"name" json:"name"`
	Slots []string           `bson:"slots" json:"slots"`
}

// ServiceSummary is the {_id, name} projection of a Service.
type ServiceSummary struct {
	ID   primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitzero"`
	Name string             `bson:"name" json:"name"`
}
