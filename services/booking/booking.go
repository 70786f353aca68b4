package booking

import (
	"context"
	"fmt"

	"doctorsportal/models"
)

func (s *DefaultBookingService) ListForPatient(ctx context.Context, patient string) ([]models.Booking, error) {
	if patient == "" {
		return nil, ErrMissingPatient
	}
	bookings, err := s.Repo.FindByPatient(ctx, patient)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", patient, err)
	}
	return bookings, nil
}
