// File: brightstart/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"brightstart/config"
	"brightstart/database"
	appointmentRepo "brightstart/database/repository/appointment"
	availabilityRepo "brightstart/database/repository/availability"
	"brightstart/handlers"
	"brightstart/middleware"
	"brightstart/routes"
	"brightstart/services/booking"
	"brightstart/services/notification"
	"brightstart/utils"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.RegisterMetrics()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepo.NewMongoAvailabilityRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	if err := availRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to create availability indexes: %v", err)
	}
	if err := apptRepo.EnsureIndexes(ctx); err != nil {
		logger.Sugar().Fatalf("main: failed to create appointment indexes: %v", err)
	}
	cancel()

	// services.
	availabilityCache := &booking.AvailabilityCache{
		Client: utils.GetCacheClient(),
		TTL:    time.Duration(config.AppConfig.AvailabilityCacheTTL) * time.Second,
	}
	notificationService := notification.NewMailNotificationService()

	bookingService := &booking.DefaultBookingService{
		Avail:    availRepo,
		Appts:    apptRepo,
		Notifier: notificationService,
		Cache:    availabilityCache,
	}
	availabilityService := &booking.DefaultAvailabilityService{
		Repo:  availRepo,
		Cache: availabilityCache,
	}
	curationService := &booking.DefaultCurationService{
		Repo:  availRepo,
		Cache: availabilityCache,
	}

	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService)
	appointmentHandler := handlers.NewAppointmentHandler(bookingService)
	adminHandler := handlers.NewAdminHandler(curationService, bookingService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		ListAvailabilityHandler: availabilityHandler.ListAvailabilityHandler,
		GetDaySlotsHandler:      availabilityHandler.GetDaySlotsHandler,

		BookAppointmentHandler:   appointmentHandler.BookAppointmentHandler,
		GetAppointmentHandler:    appointmentHandler.GetAppointmentHandler,
		CancelAppointmentHandler: appointmentHandler.CancelAppointmentHandler,

		ReplaceSlotsHandler:            adminHandler.ReplaceSlotsHandler,
		RemoveSlotHandler:              adminHandler.RemoveSlotHandler,
		UpdateAppointmentStatusHandler: adminHandler.UpdateAppointmentStatusHandler,
		ListAppointmentsHandler:        adminHandler.ListAppointmentsHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
