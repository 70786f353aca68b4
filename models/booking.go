package models

import "time"

// Booking is a patient's reservation of one slot of one treatment on one date.
type Booking struct {
	ID          string    `bson:"_id,omitempty" json:"_id,omitempty"`
	Treatment   string    `bson:"treatment" json:"treatment" binding:"required,notblank"`
	Date        string    `bson:"date" json:"date" binding:"required,notblank"`
	Slot        string    `bson:"slot" json:"slot" binding:"required,notblank"`
	Patient     string    `bson:"patient" json:"patient" binding:"required,notblank"`
	PatientName string    `bson:"patientName,omitempty" json:"patientName,omitempty"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	CreatedAt   time.Time `bson:"createdAt,omitempty" json:"createdAt,omitzero"`
}
