package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"brightstart/handlers"
	"brightstart/middleware"
)

// RegisterAvailabilityRoutes registers the public availability read side.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.GET("", hb.ListAvailabilityHandler)
		api.GET("/:date", hb.GetDaySlotsHandler)
	}
}

// RegisterAppointmentRoutes registers the booking lifecycle endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.POST("", hb.BookAppointmentHandler)
		api.GET("/:id", hb.GetAppointmentHandler)
		api.PATCH("/:id/cancel", hb.CancelAppointmentHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for slot curation and appointment
// administration. Only callers holding an admin token get through.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.AdminAuthMiddleware())
		adminGroup.PUT("/availability/:date", hb.ReplaceSlotsHandler)
		adminGroup.DELETE("/availability/:date/slots/:label", hb.RemoveSlotHandler)
		adminGroup.PATCH("/appointments/:id/status", hb.UpdateAppointmentStatusHandler)
		adminGroup.GET("/appointments", hb.ListAppointmentsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm BrightStart"})
	})
}

// RegisterMetricsRoute exposes Prometheus metrics.
func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAvailabilityRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
