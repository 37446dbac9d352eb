package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brightstart/models"
	"brightstart/services/booking"
	"brightstart/utils"
)

// AdminHandler serves slot curation and appointment administration.
type AdminHandler struct {
	Curation booking.CurationService
	Booking  booking.BookingService
}

func NewAdminHandler(curation booking.CurationService, bookingSvc booking.BookingService) *AdminHandler {
	return &AdminHandler{Curation: curation, Booking: bookingSvc}
}

// ReplaceSlotsHandler overwrites the slot list for one day.
func (h *AdminHandler) ReplaceSlotsHandler(c *gin.Context) {
	logger := utils.GetLogger()

	date := c.Param("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date in path"})
		return
	}

	var req models.ReplaceSlotsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid slot curation request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	day, err := h.Curation.ReplaceSlots(c.Request.Context(), date, req.Slots)
	if err != nil {
		bookingError(c, "Failed to curate slots", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Day slots updated",
		"day":     day,
	})
}

// RemoveSlotHandler removes one unbooked slot; removing the last slot deletes
// the day record.
func (h *AdminHandler) RemoveSlotHandler(c *gin.Context) {
	date := c.Param("date")
	label := c.Param("label")
	if date == "" || label == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date or slot label in path"})
		return
	}

	day, err := h.Curation.RemoveSlot(c.Request.Context(), date, label)
	if err != nil {
		bookingError(c, "Failed to remove slot", err)
		return
	}

	if day == nil {
		c.JSON(http.StatusOK, gin.H{"message": "Slot removed; day deleted (no slots left)"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Slot removed",
		"day":     day,
	})
}

// UpdateAppointmentStatusHandler transitions a scheduled appointment to
// completed or no-show.
func (h *AdminHandler) UpdateAppointmentStatusHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing appointment ID in path"})
		return
	}

	var req models.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	appt, err := h.Booking.Transition(c.Request.Context(), id, req.Status)
	if err != nil {
		bookingError(c, "Failed to update appointment status", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment status updated",
		"appointment": appt,
	})
}

// ListAppointmentsHandler lists appointments, optionally restricted to one day
// via ?date=YYYY-MM-DD.
func (h *AdminHandler) ListAppointmentsHandler(c *gin.Context) {
	appts, err := h.Booking.ListAppointments(c.Request.Context(), c.Query("date"))
	if err != nil {
		bookingError(c, "Failed to list appointments", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointments": appts})
}
