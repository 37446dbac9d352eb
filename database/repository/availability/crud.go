// File: database/repository/availability/crud.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"brightstart/models"
	"brightstart/utils"
)

// dayRange builds the inclusive start/end-of-day filter on the day key. Writes
// always store midnight UTC, the range match defends against any residual
// sub-day precision in older documents.
func dayRange(day time.Time) bson.M {
	return bson.M{
		"$gte": utils.StartOfDay(day),
		"$lte": utils.EndOfDay(day),
	}
}

func (r *mongoAvailabilityRepo) ReplaceSlots(ctx context.Context, day time.Time, labels []string) (*models.AvailabilityDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Full replace: any existing slot state for the day, booked or not, is
	// overwritten with fresh unbooked slots.
	filter := bson.M{"day": utils.StartOfDay(day)}
	update := bson.M{"$set": bson.M{"slots": models.NewSlots(labels)}}
	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var updated models.AvailabilityDay
	if err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated); err != nil {
		return nil, fmt.Errorf("failed to replace slots: %w", err)
	}
	return &updated, nil
}

func (r *mongoAvailabilityRepo) RemoveSlot(ctx context.Context, day time.Time, label string) (*models.AvailabilityDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"day": dayRange(day),
		"slots": bson.M{
			"$elemMatch": bson.M{"label": label, "booked": false},
		},
	}
	update := bson.M{
		"$pull": bson.M{"slots": bson.M{"label": label, "booked": false}},
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.AvailabilityDay
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == mongo.ErrNoDocuments {
		// Distinguish a booked slot from a missing one.
		existing, getErr := r.GetDay(ctx, day)
		if getErr != nil {
			return nil, getErr
		}
		if existing != nil {
			for _, s := range existing.Slots {
				if s.Label == label && s.Booked {
					return nil, ErrSlotBooked
				}
			}
		}
		return nil, ErrSlotNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to remove slot: %w", err)
	}

	if len(updated.Slots) == 0 {
		// Empty-day documents must not exist. The size guard keeps a
		// concurrent curation from being deleted underneath us.
		delFilter := bson.M{"day": dayRange(day), "slots": bson.M{"$size": 0}}
		if _, err := r.coll.DeleteOne(ctx, delFilter); err != nil {
			return nil, fmt.Errorf("failed to delete emptied day: %w", err)
		}
		return nil, nil
	}
	return &updated, nil
}
