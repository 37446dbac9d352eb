// File: brightstart/handlers/bundle.go
package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brightstart/services/booking"
	"brightstart/utils"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Availability read side.
	ListAvailabilityHandler gin.HandlerFunc
	GetDaySlotsHandler      gin.HandlerFunc

	// Appointment endpoints.
	BookAppointmentHandler   gin.HandlerFunc
	GetAppointmentHandler    gin.HandlerFunc
	CancelAppointmentHandler gin.HandlerFunc

	// Admin endpoints.
	ReplaceSlotsHandler            gin.HandlerFunc
	RemoveSlotHandler              gin.HandlerFunc
	UpdateAppointmentStatusHandler gin.HandlerFunc
	ListAppointmentsHandler        gin.HandlerFunc
}

// statusForCode maps booking error codes onto HTTP statuses. Contention
// (slotUnavailable) and booked-slot removals surface as 409 so clients can
// re-fetch the day and retry with another slot.
func statusForCode(code string) int {
	switch code {
	case booking.CodeInvalidDate, booking.CodeInvalidState:
		return http.StatusBadRequest
	case booking.CodeNotFound, booking.CodeSlotNotFound:
		return http.StatusNotFound
	case booking.CodeSlotBooked, booking.CodeSlotUnavailable:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// bookingError writes the standardized error response for a service failure.
func bookingError(c *gin.Context, message string, err error) {
	utils.JSONError(c, statusForCode(booking.CodeOf(err)), message, err.Error())
}
