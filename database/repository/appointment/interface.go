// File: database/repository/appointment/interface.go
package appointmentRepo

import (
	"context"
	"time"

	"brightstart/config"
	"brightstart/database"
	"brightstart/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository persists appointment lifecycle records.
type AppointmentRepository interface {
	Insert(ctx context.Context, appt *models.Appointment) error
	// GetByID returns the appointment, or nil if absent.
	GetByID(ctx context.Context, id string) (*models.Appointment, error)
	// UpdateStatus transitions status conditionally: the write only applies
	// while the current status equals `from`. Returns false when the
	// condition did not hold (missing record or concurrent transition).
	UpdateStatus(ctx context.Context, id, from, to string) (bool, error)
	// DeleteByID removes an appointment record (compensating delete).
	DeleteByID(ctx context.Context, id string) error
	// ListByDay returns all appointments occupying one canonical day.
	ListByDay(ctx context.Context, day time.Time) ([]models.Appointment, error)
	// ListAll returns every appointment, newest first.
	ListAll(ctx context.Context) ([]models.Appointment, error)
	EnsureIndexes(ctx context.Context) error
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo constructs a new MongoDB AppointmentRepository.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
