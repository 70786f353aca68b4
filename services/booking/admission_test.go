package booking

import (
	"context"
	"errors"
	"testing"

	"doctorsportal/database/repository/repotest"
	"doctorsportal/models"
	"doctorsportal/services/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cleaning(patient, slot string) models.Booking {
	return models.Booking{Treatment: "Cleaning", Date: "2021-05-05", Slot: slot, Patient: patient}
}

func TestAdmit_SecondIdenticalBookingIsRejected(t *testing.T) {
	repo := repotest.NewBookings()
	notifier := &repotest.Notifier{}
	svc := &DefaultBookingService{Repo: repo, Notifier: notifier}
	ctx := context.Background()

	first, err := svc.Admit(ctx, cleaning("a@x.com", "09:00"))
	require.NoError(t, err)
	require.True(t, first.Accepted)
	require.NotNil(t, first.Stored)
	assert.NotEmpty(t, first.Stored.ID)
	assert.True(t, first.Result.Acknowledged)
	assert.Equal(t, first.Stored.ID, first.Result.InsertedID)

	second, err := svc.Admit(ctx, cleaning("a@x.com", "09:00"))
	require.NoError(t, err)
	assert.False(t, second.Accepted)
	require.NotNil(t, second.Conflicting)
	assert.Equal(t, first.Stored.ID, second.Conflicting.ID)

	assert.Len(t, repo.All(), 1)
	events := notifier.Published()
	require.Len(t, events, 1)
	assert.Equal(t, notification.EventBookingCreated, events[0].Type)
	assert.Equal(t, "a@x.com", events[0].Key)
}

func TestAdmit_SlotIsNotPartOfTheKey(t *testing.T) {
	svc := &DefaultBookingService{Repo: repotest.NewBookings()}
	ctx := context.Background()

	_, err := svc.Admit(ctx, cleaning("a@x.com", "09:00"))
	require.NoError(t, err)

	res, err := svc.Admit(ctx, cleaning("a@x.com", "10:00"))
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	assert.Equal(t, "09:00", res.Conflicting.Slot)
}

func TestAdmit_DifferentPatientsOrDatesAreIndependent(t *testing.T) {
	svc := &DefaultBookingService{Repo: repotest.NewBookings()}
	ctx := context.Background()

	for _, b := range []models.Booking{
		cleaning("a@x.com", "09:00"),
		cleaning("b@x.com", "09:00"),
		{Treatment: "Cleaning", Date: "2021-05-06", Slot: "09:00", Patient: "a@x.com"},
		{Treatment: "Filling", Date: "2021-05-05", Slot: "09:00", Patient: "a@x.com"},
	} {
		res, err := svc.Admit(ctx, b)
		require.NoError(t, err)
		assert.True(t, res.Accepted, "%+v", b)
	}
}

func TestAdmit_IgnoresClientSuppliedID(t *testing.T) {
	svc := &DefaultBookingService{Repo: repotest.NewBookings()}
	candidate := cleaning("a@x.com", "09:00")
	candidate.ID = "client-chosen"

	res, err := svc.Admit(context.Background(), candidate)
	require.NoError(t, err)
	assert.NotEqual(t, "client-chosen", res.Stored.ID)
}

func TestAdmit_LostRaceIsReportedAsConflict(t *testing.T) {
	repo := repotest.NewBookings()
	winner := cleaning("a@x.com", "10:00")
	// Another request stores the same key between our lookup and our insert.
	repo.BeforeInsert = func(*models.Booking) {
		repo.BeforeInsert = nil
		_, err := repo.Insert(context.Background(), &winner)
		require.NoError(t, err)
	}
	svc := &DefaultBookingService{Repo: repo}

	res, err := svc.Admit(context.Background(), cleaning("a@x.com", "09:00"))
	require.NoError(t, err)
	assert.False(t, res.Accepted)
	require.NotNil(t, res.Conflicting)
	assert.Equal(t, winner.ID, res.Conflicting.ID)
	assert.Len(t, repo.All(), 1)
}

func TestAdmit_IncompleteCandidate(t *testing.T) {
	svc := &DefaultBookingService{Repo: repotest.NewBookings()}

	_, err := svc.Admit(context.Background(), models.Booking{Treatment: "Cleaning", Date: "2021-05-05", Patient: "a@x.com"})
	assert.ErrorIs(t, err, ErrInvalidBooking)
}

func TestAdmit_PublishFailureDoesNotFailAdmission(t *testing.T) {
	notifier := &repotest.Notifier{Err: errors.New("broker down")}
	svc := &DefaultBookingService{Repo: repotest.NewBookings(), Notifier: notifier}

	res, err := svc.Admit(context.Background(), cleaning("a@x.com", "09:00"))
	require.NoError(t, err)
	assert.True(t, res.Accepted)
}

func TestListForPatient(t *testing.T) {
	svc := &DefaultBookingService{Repo: repotest.NewBookings(
		cleaning("a@x.com", "09:00"),
		cleaning("b@x.com", "10:00"),
	)}

	got, err := svc.ListForPatient(context.Background(), "a@x.com")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "a@x.com", got[0].Patient)

	_, err = svc.ListForPatient(context.Background(), "")
	assert.ErrorIs(t, err, ErrMissingPatient)
}
