package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	bookingRepo "doctorsportal/database/repository/booking"
	"doctorsportal/models"
	"doctorsportal/services/notification"

	"go.uber.org/zap"
)

// Admit enforces one booking per (treatment, date, patient). The slot is not part
// of the key: a patient cannot take two slots of the same treatment on one day.
// The unique index behind Insert settles races between concurrent identical requests.
func (s *DefaultBookingService) Admit(ctx context.Context, candidate models.Booking) (*AdmissionResult, error) {
	if !isComplete(candidate) {
		return nil, ErrInvalidBooking
	}

	existing, err := s.Repo.FindByKey(ctx, candidate.Treatment, candidate.Date, candidate.Patient)
	if err != nil {
		return nil, fmt.Errorf("admission lookup: %w", err)
	}
	if existing != nil {
		return &AdmissionResult{Accepted: false, Conflicting: existing}, nil
	}

	stored := candidate
	stored.ID = ""
	res, err := s.Repo.Insert(ctx, &stored)
	if errors.Is(err, bookingRepo.ErrDuplicate) {
		winner, findErr := s.Repo.FindByKey(ctx, candidate.Treatment, candidate.Date, candidate.Patient)
		if findErr != nil {
			return nil, fmt.Errorf("admission conflict lookup: %w", findErr)
		}
		if winner == nil {
			return nil, fmt.Errorf("admission conflict without a stored booking: %w", err)
		}
		return &AdmissionResult{Accepted: false, Conflicting: winner}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("admission insert: %w", err)
	}

	if s.Notifier != nil {
		if err := s.Notifier.Publish(ctx, notification.EventBookingCreated, stored.Patient, stored); err != nil {
			zap.L().Warn("Admit: failed to publish booking event", zap.String("bookingID", stored.ID), zap.Error(err))
		}
	}
	return &AdmissionResult{Accepted: true, Stored: &stored, Result: res}, nil
}

func isComplete(b models.Booking) bool {
	for _, field := range []string{b.Treatment, b.Date, b.Slot, b.Patient} {
		if strings.TrimSpace(field) == "" {
			return false
		}
	}
	return true
}
