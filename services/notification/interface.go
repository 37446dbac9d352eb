package notification

import (
	"context"

	"brightstart/models"
)

// NotificationService sends appointment emails. All sends are best-effort: a
// failure is logged by the caller and never rolls back a booking.
type NotificationService interface {
	SendBookingConfirmation(ctx context.Context, appt *models.Appointment) error
	SendCancellation(ctx context.Context, appt *models.Appointment) error
}
