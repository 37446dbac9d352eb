// File: database/repository/availability/reserve.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
)

// ReserveSlot is the single mutual-exclusion point for bookings: the filter
// only matches while the slot is still unbooked, so of N concurrent attempts
// on the same (day, label) exactly one update matches and the rest observe
// MatchedCount == 0.
func (r *mongoAvailabilityRepo) ReserveSlot(ctx context.Context, day time.Time, label, appointmentID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"day": dayRange(day),
		"slots": bson.M{
			"$elemMatch": bson.M{"label": label, "booked": false},
		},
	}
	update := bson.M{
		"$set": bson.M{
			"slots.$.booked":        true,
			"slots.$.appointmentId": appointmentID,
		},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to reserve slot: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNoMatch
	}
	return nil
}

// ReleaseSlot frees a slot, matched on the appointment that holds it so a
// slot re-booked in the meantime can never be released by a stale caller.
func (r *mongoAvailabilityRepo) ReleaseSlot(ctx context.Context, day time.Time, label, appointmentID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"day": dayRange(day),
		"slots": bson.M{
			"$elemMatch": bson.M{"label": label, "appointmentId": appointmentID},
		},
	}
	update := bson.M{
		"$set":   bson.M{"slots.$.booked": false},
		"$unset": bson.M{"slots.$.appointmentId": ""},
	}

	res, err := r.coll.UpdateOne(ctx, filter, update)
	if err != nil {
		return fmt.Errorf("failed to release slot: %w", err)
	}
	if res.MatchedCount == 0 {
		return ErrNoMatch
	}
	return nil
}
