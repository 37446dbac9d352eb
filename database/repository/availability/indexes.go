// FILE: database/repository/availability/indexes.go
package availabilityRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// EnsureIndexes creates the necessary indexes on the availability collection.
func (r *mongoAvailabilityRepo) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	indexModels := []mongo.IndexModel{
		// At most one document per canonical day.
		{
			Keys:    bson.D{{Key: "day", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("unique_day"),
		},
		// Future-days listing filters on day + embedded booked flag.
		{
			Keys:    bson.D{{Key: "day", Value: 1}, {Key: "slots.booked", Value: 1}},
			Options: options.Index().SetName("day_slots_booked_idx"),
		},
	}

	_, err := r.coll.Indexes().CreateMany(ctx, indexModels)
	if err != nil {
		return fmt.Errorf("failed to create availability indexes: %w", err)
	}
	return nil
}
