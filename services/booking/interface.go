// File: services/booking/interface.go
package booking

import (
	"context"

	"brightstart/models"
)

// BookingService owns the appointment lifecycle and the paired slot state.
type BookingService interface {
	// Reserve creates a scheduled appointment and atomically claims the
	// matching slot. Exactly one of N concurrent calls for the same
	// (day, label) succeeds; the rest fail with slotUnavailable.
	Reserve(ctx context.Context, req models.BookAppointmentRequest) (*models.Appointment, error)
	// Cancel transitions a scheduled appointment to cancelled and releases
	// its slot. Cancelling twice fails with invalidState.
	Cancel(ctx context.Context, id string) (*models.Appointment, error)
	// Transition moves a scheduled appointment to a terminal state other
	// than cancelled (completed, no-show). The slot stays consumed.
	Transition(ctx context.Context, id, status string) (*models.Appointment, error)
	GetAppointment(ctx context.Context, id string) (*models.Appointment, error)
	// ListAppointments returns appointments for one day when date is set,
	// otherwise all of them.
	ListAppointments(ctx context.Context, date string) ([]models.Appointment, error)
}

// AvailabilityService is the read side over the availability store.
type AvailabilityService interface {
	// ListFutureDays returns days from today onward that still have a free
	// slot, ascending.
	ListFutureDays(ctx context.Context) ([]models.AvailabilityDay, error)
	// GetDay returns the slot list for one day.
	GetDay(ctx context.Context, date string) (*models.AvailabilityDay, error)
}

// CurationService is the admin write side over the availability store.
type CurationService interface {
	// ReplaceSlots overwrites a day's slot list, creating the day if needed.
	ReplaceSlots(ctx context.Context, date string, labels []string) (*models.AvailabilityDay, error)
	// RemoveSlot removes one unbooked slot; the emptied day is deleted and
	// nil is returned in that case.
	RemoveSlot(ctx context.Context, date, label string) (*models.AvailabilityDay, error)
}
