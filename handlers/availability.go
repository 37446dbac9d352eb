package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"brightstart/services/booking"
)

// AvailabilityHandler serves the read side of the availability store.
type AvailabilityHandler struct {
	Service booking.AvailabilityService
}

func NewAvailabilityHandler(svc booking.AvailabilityService) *AvailabilityHandler {
	return &AvailabilityHandler{Service: svc}
}

// ListAvailabilityHandler returns every future day with at least one free slot.
func (h *AvailabilityHandler) ListAvailabilityHandler(c *gin.Context) {
	days, err := h.Service.ListFutureDays(c.Request.Context())
	if err != nil {
		bookingError(c, "Failed to list availability", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"days": days})
}

// GetDaySlotsHandler returns the slot list for one calendar day.
func (h *AvailabilityHandler) GetDaySlotsHandler(c *gin.Context) {
	date := c.Param("date")
	if date == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing date in path"})
		return
	}

	day, err := h.Service.GetDay(c.Request.Context(), date)
	if err != nil {
		bookingError(c, "Failed to fetch availability day", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"day": day})
}
