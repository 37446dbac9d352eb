// File: database/repository/availability/interface.go
package availabilityRepo

import (
	"context"
	"errors"
	"time"

	"brightstart/database"
	"brightstart/config"
	"brightstart/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// Sentinel errors surfaced by the repository. The service layer maps these to
// the caller-facing error taxonomy.
var (
	// ErrSlotNotFound: the day has no unbooked slot with the given label.
	ErrSlotNotFound = errors.New("slot not found")
	// ErrSlotBooked: the slot exists but is currently reserved.
	ErrSlotBooked = errors.New("slot is booked")
	// ErrNoMatch: a conditional update matched zero documents. Under
	// contention this is the losing side of a race, not a store failure.
	ErrNoMatch = errors.New("no matching slot")
)

// AvailabilityRepository persists one document per canonical calendar day with
// an embedded, ordered slot array. All day arguments must already be
// normalized to midnight UTC.
type AvailabilityRepository interface {
	// GetDay returns the document for one canonical day, or nil if absent.
	GetDay(ctx context.Context, day time.Time) (*models.AvailabilityDay, error)
	// ListFutureDays returns days at or after `from` that still hold at
	// least one unbooked slot, sorted ascending.
	ListFutureDays(ctx context.Context, from time.Time) ([]models.AvailabilityDay, error)
	// ReplaceSlots overwrites the day's slot list with fresh unbooked slots,
	// creating the day if it does not exist.
	ReplaceSlots(ctx context.Context, day time.Time, labels []string) (*models.AvailabilityDay, error)
	// RemoveSlot removes one unbooked slot; deletes the day document when the
	// slot list becomes empty and returns nil in that case. Fails with
	// ErrSlotBooked / ErrSlotNotFound.
	RemoveSlot(ctx context.Context, day time.Time, label string) (*models.AvailabilityDay, error)
	// ReserveSlot atomically flips an unbooked slot to booked and records the
	// appointment reference. ErrNoMatch when the slot is taken or missing.
	ReserveSlot(ctx context.Context, day time.Time, label, appointmentID string) error
	// ReleaseSlot atomically frees a slot currently held by the given
	// appointment. ErrNoMatch when no such reservation is held.
	ReleaseSlot(ctx context.Context, day time.Time, label, appointmentID string) error
	EnsureIndexes(ctx context.Context) error
}

type mongoAvailabilityRepo struct {
	coll *mongo.Collection
}

// NewMongoAvailabilityRepo constructs a new MongoDB AvailabilityRepository.
func NewMongoAvailabilityRepo() AvailabilityRepository {
	db := database.MongoClient.Database(config.AppConfig.DatabaseName)
	return &mongoAvailabilityRepo{
		coll: db.Collection("availability"),
	}
}
