package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"brightstart/models"
	"brightstart/services/booking"
	"brightstart/utils"
)

// AppointmentHandler serves the booking lifecycle endpoints.
type AppointmentHandler struct {
	Service booking.BookingService
}

func NewAppointmentHandler(svc booking.BookingService) *AppointmentHandler {
	return &AppointmentHandler{Service: svc}
}

// BookAppointmentHandler reserves a slot and creates the appointment.
func (h *AppointmentHandler) BookAppointmentHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid booking request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload", "message": err.Error()})
		return
	}

	appt, err := h.Service.Reserve(c.Request.Context(), req)
	if err != nil {
		bookingError(c, "Failed to book appointment", err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":     "Appointment booked",
		"appointment": appt,
	})
}

// GetAppointmentHandler returns one appointment by id.
func (h *AppointmentHandler) GetAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing appointment ID in path"})
		return
	}

	appt, err := h.Service.GetAppointment(c.Request.Context(), id)
	if err != nil {
		bookingError(c, "Failed to fetch appointment", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"appointment": appt})
}

// CancelAppointmentHandler cancels a scheduled appointment and frees its slot.
func (h *AppointmentHandler) CancelAppointmentHandler(c *gin.Context) {
	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing appointment ID in path"})
		return
	}

	appt, err := h.Service.Cancel(c.Request.Context(), id)
	if err != nil {
		bookingError(c, "Failed to cancel appointment", err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":     "Appointment cancelled",
		"appointment": appt,
	})
}
