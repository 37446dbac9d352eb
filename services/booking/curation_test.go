package booking

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCurationService() (*DefaultCurationService, *fakeAvailabilityRepo) {
	avail := newFakeAvailabilityRepo()
	return &DefaultCurationService{Repo: avail}, avail
}

func TestReplaceSlotsCreatesDay(t *testing.T) {
	svc, _ := newTestCurationService()
	ctx := context.Background()

	day, err := svc.ReplaceSlots(ctx, "2031-04-01", []string{"9:00 AM", "10:00 AM"})
	require.NoError(t, err)
	require.NotNil(t, day)
	require.Len(t, day.Slots, 2)
	assert.Equal(t, "9:00 AM", day.Slots[0].Label)
	assert.Equal(t, "10:00 AM", day.Slots[1].Label)
	for _, s := range day.Slots {
		assert.False(t, s.Booked)
		assert.Empty(t, s.AppointmentID)
	}
}

func TestReplaceSlotsOverwritesBookedState(t *testing.T) {
	svc, avail := newTestCurationService()
	ctx := context.Background()

	_, err := svc.ReplaceSlots(ctx, "2031-04-01", []string{"9:00 AM"})
	require.NoError(t, err)
	require.NoError(t, avail.ReserveSlot(ctx, mustDay(t, "2031-04-01"), "9:00 AM", "appt-1"))

	// Recurating is a full replace: the booked slot is destroyed.
	day, err := svc.ReplaceSlots(ctx, "2031-04-01", []string{"9:00 AM", "11:00 AM"})
	require.NoError(t, err)
	require.Len(t, day.Slots, 2)
	assert.False(t, day.Slots[0].Booked)
}

func TestReplaceSlotsInvalidDate(t *testing.T) {
	svc, _ := newTestCurationService()

	_, err := svc.ReplaceSlots(context.Background(), "04/01/2031", []string{"9:00 AM"})
	require.Error(t, err)
	assert.Equal(t, CodeInvalidDate, CodeOf(err))
}

func TestRemoveSlot(t *testing.T) {
	svc, _ := newTestCurationService()
	ctx := context.Background()

	_, err := svc.ReplaceSlots(ctx, "2031-04-01", []string{"9:00 AM", "10:00 AM"})
	require.NoError(t, err)

	day, err := svc.RemoveSlot(ctx, "2031-04-01", "10:00 AM")
	require.NoError(t, err)
	require.NotNil(t, day)
	require.Len(t, day.Slots, 1)
	assert.Equal(t, "9:00 AM", day.Slots[0].Label)
}

func TestRemoveLastSlotDeletesDay(t *testing.T) {
	svc, avail := newTestCurationService()
	ctx := context.Background()

	_, err := svc.ReplaceSlots(ctx, "2031-04-01", []string{"9:00 AM"})
	require.NoError(t, err)

	day, err := svc.RemoveSlot(ctx, "2031-04-01", "9:00 AM")
	require.NoError(t, err)
	assert.Nil(t, day)

	stored, err := avail.GetDay(ctx, mustDay(t, "2031-04-01"))
	require.NoError(t, err)
	assert.Nil(t, stored)
}

func TestRemoveBookedSlotFails(t *testing.T) {
	svc, avail := newTestCurationService()
	ctx := context.Background()

	_, err := svc.ReplaceSlots(ctx, "2031-04-01", []string{"9:00 AM"})
	require.NoError(t, err)
	require.NoError(t, avail.ReserveSlot(ctx, mustDay(t, "2031-04-01"), "9:00 AM", "appt-1"))

	_, err = svc.RemoveSlot(ctx, "2031-04-01", "9:00 AM")
	require.Error(t, err)
	assert.Equal(t, CodeSlotBooked, CodeOf(err))
}

func TestRemoveMissingSlotFails(t *testing.T) {
	svc, _ := newTestCurationService()
	ctx := context.Background()

	_, err := svc.RemoveSlot(ctx, "2031-04-01", "9:00 AM")
	require.Error(t, err)
	assert.Equal(t, CodeSlotNotFound, CodeOf(err))

	_, err = svc.ReplaceSlots(ctx, "2031-04-01", []string{"10:00 AM"})
	require.NoError(t, err)
	_, err = svc.RemoveSlot(ctx, "2031-04-01", "9:00 AM")
	require.Error(t, err)
	assert.Equal(t, CodeSlotNotFound, CodeOf(err))
}
