package booking

import (
	"context"
	"errors"
	"testing"

	"doctorsportal/database/repository/repotest"
	"doctorsportal/models"
	"doctorsportal/services/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeAvailability_RemovesBookedSlot(t *testing.T) {
	services := []models.Service{{Name: "Cleaning", Slots: []string{"09:00", "10:00"}}}
	bookings := []models.Booking{{Treatment: "Cleaning", Date: "2021-05-05", Slot: "09:00", Patient: "a@x.com"}}

	got := ComputeAvailability("2021-05-05", services, bookings)

	require.Len(t, got, 1)
	assert.Equal(t, "Cleaning", got[0].Name)
	assert.Equal(t, []string{"10:00"}, got[0].Slots)
}

func TestComputeAvailability(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		services []models.Service
		bookings []models.Booking
		want     map[string][]string
	}{
		{
			name:     "no bookings on date leaves every slot open",
			date:     "2021-05-06",
			services: []models.Service{{Name: "Cleaning", Slots: []string{"09:00", "10:00"}}},
			bookings: []models.Booking{{Treatment: "Cleaning", Date: "2021-05-05", Slot: "09:00"}},
			want:     map[string][]string{"Cleaning": {"09:00", "10:00"}},
		},
		{
			name:     "empty slot list stays empty",
			date:     "2021-05-05",
			services: []models.Service{{Name: "X-Ray", Slots: []string{}}},
			want:     map[string][]string{"X-Ray": {}},
		},
		{
			name:     "booking for unknown treatment is ignored",
			date:     "2021-05-05",
			services: []models.Service{{Name: "Cleaning", Slots: []string{"09:00"}}},
			bookings: []models.Booking{{Treatment: "Surgery", Date: "2021-05-05", Slot: "09:00"}},
			want:     map[string][]string{"Cleaning": {"09:00"}},
		},
		{
			name: "order is preserved and only the matching service loses slots",
			date: "2021-05-05",
			services: []models.Service{
				{Name: "Cleaning", Slots: []string{"08:00", "09:00", "10:00", "11:00"}},
				{Name: "Filling", Slots: []string{"08:00", "09:00"}},
			},
			bookings: []models.Booking{
				{Treatment: "Cleaning", Date: "2021-05-05", Slot: "10:00"},
				{Treatment: "Cleaning", Date: "2021-05-05", Slot: "08:00"},
				{Treatment: "Filling", Date: "2021-05-04", Slot: "08:00"},
			},
			want: map[string][]string{
				"Cleaning": {"09:00", "11:00"},
				"Filling":  {"08:00", "09:00"},
			},
		},
		{
			name:     "slot not listed by the service is ignored",
			date:     "2021-05-05",
			services: []models.Service{{Name: "Cleaning", Slots: []string{"09:00"}}},
			bookings: []models.Booking{{Treatment: "Cleaning", Date: "2021-05-05", Slot: "17:00"}},
			want:     map[string][]string{"Cleaning": {"09:00"}},
		},
		{
			name:     "fully booked service has no slots",
			date:     "2021-05-05",
			services: []models.Service{{Name: "Cleaning", Slots: []string{"09:00", "10:00"}}},
			bookings: []models.Booking{
				{Treatment: "Cleaning", Date: "2021-05-05", Slot: "09:00"},
				{Treatment: "Cleaning", Date: "2021-05-05", Slot: "10:00"},
			},
			want: map[string][]string{"Cleaning": {}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeAvailability(tt.date, tt.services, tt.bookings)

			require.Len(t, got, len(tt.services))
			for i, svc := range got {
				assert.Equal(t, tt.services[i].Name, svc.Name, "services keep their order")
				assert.NotNil(t, svc.Slots)
				assert.Equal(t, tt.want[svc.Name], svc.Slots)
			}
		})
	}
}

func TestComputeAvailability_DoesNotMutateInput(t *testing.T) {
	services := []models.Service{{Name: "Cleaning", Slots: []string{"09:00", "10:00"}}}
	bookings := []models.Booking{{Treatment: "Cleaning", Date: "2021-05-05", Slot: "09:00"}}

	_ = ComputeAvailability("2021-05-05", services, bookings)

	assert.Equal(t, []string{"09:00", "10:00"}, services[0].Slots)
}

func TestAvailable(t *testing.T) {
	svc := &DefaultBookingService{
		Catalog: &catalog.DefaultCatalogService{Repo: repotest.NewServices(
			models.Service{Name: "Cleaning", Slots: []string{"09:00", "10:00"}},
			models.Service{Name: "Filling", Slots: []string{"11:00"}},
		)},
		Repo: repotest.NewBookings(
			models.Booking{Treatment: "Cleaning", Date: "2021-05-05", Slot: "10:00", Patient: "a@x.com"},
			models.Booking{Treatment: "Filling", Date: "2021-05-06", Slot: "11:00", Patient: "b@x.com"},
		),
	}

	got, err := svc.Available(context.Background(), "2021-05-05")
	require.NoError(t, err)
	assert.Equal(t, []models.Service{
		{Name: "Cleaning", Slots: []string{"09:00"}},
		{Name: "Filling", Slots: []string{"11:00"}},
	}, got)
}

func TestAvailable_MissingDate(t *testing.T) {
	svc := &DefaultBookingService{
		Catalog: &catalog.DefaultCatalogService{Repo: repotest.NewServices()},
		Repo:    repotest.NewBookings(),
	}

	_, err := svc.Available(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingDate)
}

func TestAvailable_StorageError(t *testing.T) {
	services := repotest.NewServices()
	services.Err = errors.New("connection reset")
	svc := &DefaultBookingService{
		Catalog: &catalog.DefaultCatalogService{Repo: services},
		Repo:    repotest.NewBookings(),
	}

	_, err := svc.Available(context.Background(), "2021-05-05")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}
