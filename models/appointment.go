package models

import "time"

// Appointment statuses. Scheduled is the only non-terminal state.
const (
	StatusScheduled = "scheduled"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
	StatusNoShow    = "no-show"
)

// Appointment represents a confirmed visit reservation.
type Appointment struct {
	ID         string    `bson:"id" json:"id"`                   // Unique appointment identifier (UUID)
	ParentName string    `bson:"parentName" json:"parentName"`   // Contact name
	Email      string    `bson:"email" json:"email"`             // Contact email
	Phone      string    `bson:"phone" json:"phone"`             // Contact phone
	Date       time.Time `bson:"date" json:"date"`               // Canonical day the appointment occupies
	Time       string    `bson:"time" json:"time"`               // Matching TimeSlot label on that day
	Status     string    `bson:"status" json:"status"`           // scheduled | completed | cancelled | no-show
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`     // Timestamp when the appointment was created
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`     // Timestamp of the last status change
}

// IsTerminal reports whether a status allows no further transitions.
func IsTerminal(status string) bool {
	switch status {
	case StatusCompleted, StatusCancelled, StatusNoShow:
		return true
	}
	return false
}

// BookAppointmentRequest defines the payload for reserving a slot.
type BookAppointmentRequest struct {
	Date       string `json:"date" binding:"required"`
	Time       string `json:"time" binding:"required"`
	ParentName string `json:"parentName" binding:"required"`
	Email      string `json:"email" binding:"required,email"`
	Phone      string `json:"phone" binding:"required"`
}

// UpdateStatusRequest defines the payload for an admin status transition.
type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
