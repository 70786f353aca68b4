package booking

import (
	"context"
	"fmt"

	"doctorsportal/models"
)

// ComputeAvailability returns a copy of services where each slot list keeps,
// in its original order, only the slots with no booking for that service on date.
// Bookings for other dates or for unknown treatments are ignored. services is not modified.
func ComputeAvailability(date string, services []models.Service, bookings []models.Booking) []models.Service {
	booked := make(map[string]map[string]struct{})
	for _, b := range bookings {
		if b.Date != date {
			continue
		}
		slots, ok := booked[b.Treatment]
		if !ok {
			slots = make(map[string]struct{})
			booked[b.Treatment] = slots
		}
		slots[b.Slot] = struct{}{}
	}

	available := make([]models.Service, 0, len(services))
	for _, svc := range services {
		taken := booked[svc.Name]
		open := make([]string, 0, len(svc.Slots))
		for _, slot := range svc.Slots {
			if _, isBooked := taken[slot]; !isBooked {
				open = append(open, slot)
			}
		}
		derived := svc
		derived.Slots = open
		available = append(available, derived)
	}
	return available
}

func (s *DefaultBookingService) Available(ctx context.Context, date string) ([]models.Service, error) {
	if date == "" {
		return nil, ErrMissingDate
	}

	services, err := s.Catalog.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load services: %w", err)
	}
	bookings, err := s.Repo.FindByDate(ctx, date)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings for %s: %w", date, err)
	}
	return ComputeAvailability(date, services, bookings), nil
}
