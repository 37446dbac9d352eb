package booking

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"brightstart/models"
)

func newTestBookingService() (*DefaultBookingService, *fakeAvailabilityRepo, *fakeAppointmentRepo) {
	avail := newFakeAvailabilityRepo()
	appts := newFakeAppointmentRepo()
	svc := &DefaultBookingService{Avail: avail, Appts: appts}
	return svc, avail, appts
}

func bookReq(date, slot string) models.BookAppointmentRequest {
	return models.BookAppointmentRequest{
		Date:       date,
		Time:       slot,
		ParentName: "Dana Whitfield",
		Email:      "dana@example.com",
		Phone:      "555-0142",
	}
}

func TestReserveBooksSlot(t *testing.T) {
	svc, avail, _ := newTestBookingService()
	ctx := context.Background()

	_, err := avail.ReplaceSlots(ctx, mustDay(t, "2031-04-01"), []string{"9:00 AM", "10:00 AM"})
	require.NoError(t, err)

	appt, err := svc.Reserve(ctx, bookReq("2031-04-01", "9:00 AM"))
	require.NoError(t, err)
	assert.Equal(t, models.StatusScheduled, appt.Status)
	assert.NotEmpty(t, appt.ID)
	assert.Equal(t, "9:00 AM", appt.Time)

	day, err := avail.GetDay(ctx, appt.Date)
	require.NoError(t, err)
	require.NotNil(t, day)
	assert.True(t, day.Slots[0].Booked)
	assert.Equal(t, appt.ID, day.Slots[0].AppointmentID)
	assert.False(t, day.Slots[1].Booked)
}

func TestReserveInvalidDate(t *testing.T) {
	svc, _, appts := newTestBookingService()

	_, err := svc.Reserve(context.Background(), bookReq("not-a-date", "9:00 AM"))
	require.Error(t, err)
	assert.Equal(t, CodeInvalidDate, CodeOf(err))
	assert.Zero(t, appts.count())
}

func TestReserveMissingSlotRollsBack(t *testing.T) {
	svc, _, appts := newTestBookingService()

	// No availability curated at all: the conditional flip matches nothing
	// and the created appointment must not survive.
	_, err := svc.Reserve(context.Background(), bookReq("2031-04-01", "9:00 AM"))
	require.Error(t, err)
	assert.Equal(t, CodeSlotUnavailable, CodeOf(err))
	assert.Zero(t, appts.count())
}

func TestReserveFailedCompensationSurfacesStoreError(t *testing.T) {
	svc, _, appts := newTestBookingService()
	appts.deleteErr = errors.New("connection reset")

	_, err := svc.Reserve(context.Background(), bookReq("2031-04-01", "9:00 AM"))
	require.Error(t, err)
	assert.Equal(t, CodeStore, CodeOf(err))
	// The orphan is left for manual reconciliation.
	assert.Equal(t, 1, appts.count())
}

func TestConcurrentReservesExactlyOneWins(t *testing.T) {
	svc, avail, appts := newTestBookingService()
	ctx := context.Background()

	_, err := avail.ReplaceSlots(ctx, mustDay(t, "2031-04-01"), []string{"9:00 AM"})
	require.NoError(t, err)

	const numGoroutines = 25
	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	results := make(chan error, numGoroutines)

	for i := 0; i < numGoroutines; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.Reserve(ctx, bookReq("2031-04-01", "9:00 AM"))
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var wins, conflicts int
	for err := range results {
		if err == nil {
			wins++
			continue
		}
		assert.Equal(t, CodeSlotUnavailable, CodeOf(err))
		conflicts++
	}
	assert.Equal(t, 1, wins)
	assert.Equal(t, numGoroutines-1, conflicts)
	assert.Equal(t, 1, appts.count())
}

func TestCancelReleasesSlot(t *testing.T) {
	svc, avail, _ := newTestBookingService()
	ctx := context.Background()

	_, err := avail.ReplaceSlots(ctx, mustDay(t, "2031-04-01"), []string{"9:00 AM"})
	require.NoError(t, err)

	appt, err := svc.Reserve(ctx, bookReq("2031-04-01", "9:00 AM"))
	require.NoError(t, err)

	cancelled, err := svc.Cancel(ctx, appt.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, cancelled.Status)

	day, err := avail.GetDay(ctx, appt.Date)
	require.NoError(t, err)
	require.NotNil(t, day)
	assert.False(t, day.Slots[0].Booked)
	assert.Empty(t, day.Slots[0].AppointmentID)
}

func TestCancelTwiceFails(t *testing.T) {
	svc, avail, _ := newTestBookingService()
	ctx := context.Background()

	_, err := avail.ReplaceSlots(ctx, mustDay(t, "2031-04-01"), []string{"9:00 AM"})
	require.NoError(t, err)

	appt, err := svc.Reserve(ctx, bookReq("2031-04-01", "9:00 AM"))
	require.NoError(t, err)

	_, err = svc.Cancel(ctx, appt.ID)
	require.NoError(t, err)

	// A second cancel must not silently succeed: the slot may have been
	// re-booked in the interim.
	_, err = svc.Cancel(ctx, appt.ID)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidState, CodeOf(err))
}

func TestCancelUnknownAppointment(t *testing.T) {
	svc, _, _ := newTestBookingService()

	_, err := svc.Cancel(context.Background(), "missing-id")
	require.Error(t, err)
	assert.Equal(t, CodeNotFound, CodeOf(err))
}

func TestReserveCancelRebookYieldsFreshAppointment(t *testing.T) {
	svc, avail, _ := newTestBookingService()
	ctx := context.Background()

	_, err := avail.ReplaceSlots(ctx, mustDay(t, "2031-04-01"), []string{"9:00 AM"})
	require.NoError(t, err)

	first, err := svc.Reserve(ctx, bookReq("2031-04-01", "9:00 AM"))
	require.NoError(t, err)
	_, err = svc.Cancel(ctx, first.ID)
	require.NoError(t, err)

	second, err := svc.Reserve(ctx, bookReq("2031-04-01", "9:00 AM"))
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	day, err := avail.GetDay(ctx, second.Date)
	require.NoError(t, err)
	require.NotNil(t, day)
	assert.Equal(t, second.ID, day.Slots[0].AppointmentID)
}

func TestTransitionTerminalStates(t *testing.T) {
	svc, avail, _ := newTestBookingService()
	ctx := context.Background()

	_, err := avail.ReplaceSlots(ctx, mustDay(t, "2031-04-01"), []string{"9:00 AM", "10:00 AM"})
	require.NoError(t, err)

	appt, err := svc.Reserve(ctx, bookReq("2031-04-01", "9:00 AM"))
	require.NoError(t, err)

	done, err := svc.Transition(ctx, appt.ID, models.StatusCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCompleted, done.Status)

	// Terminal states are sticky.
	_, err = svc.Cancel(ctx, appt.ID)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidState, CodeOf(err))

	// A completed appointment keeps its slot consumed.
	day, err := avail.GetDay(ctx, appt.Date)
	require.NoError(t, err)
	require.NotNil(t, day)
	assert.True(t, day.Slots[0].Booked)

	// Cancelled is not reachable through Transition.
	other, err := svc.Reserve(ctx, bookReq("2031-04-01", "10:00 AM"))
	require.NoError(t, err)
	_, err = svc.Transition(ctx, other.ID, models.StatusCancelled)
	require.Error(t, err)
	assert.Equal(t, CodeInvalidState, CodeOf(err))
}
