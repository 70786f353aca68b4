package booking

import (
	"context"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
	"doctorsportal/services/catalog"
	"doctorsportal/services/notification"
)

// BookingService covers slot availability and booking admission.
type BookingService interface {
	// Available returns the catalogue with each service's slots reduced to those still open on date.
	Available(ctx context.Context, date string) ([]models.Service, error)
	// Admit stores candidate unless the patient already booked the treatment that day.
	Admit(ctx context.Context, candidate models.Booking) (*AdmissionResult, error)
	// ListForPatient returns every booking of patient.
	ListForPatient(ctx context.Context, patient string) ([]models.Booking, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Catalog  catalog.CatalogService
	Repo     bookingRepo.BookingRepository
	Notifier notification.NotificationService
}

// AdmissionResult is the outcome of Admit. A rejected admission is not an error.
type AdmissionResult struct {
	Accepted    bool
	Stored      *models.Booking
	Result      models.InsertResult
	Conflicting *models.Booking
}
