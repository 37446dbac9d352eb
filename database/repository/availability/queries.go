// File: database/repository/availability/queries.go
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

func (r *mongoAvailabilityRepo) GetDay(ctx context.Context, day time.Time) (*models.AvailabilityDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{"day": dayRange(day)}
	var result models.AvailabilityDay
	err := r.coll.FindOne(ctx, filter).Decode(&result)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability day: %w", err)
	}
	return &result, nil
}

func (r *mongoAvailabilityRepo) ListFutureDays(ctx context.Context, from time.Time) ([]models.AvailabilityDay, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	filter := bson.M{
		"day": bson.M{"$gte": utils.StartOfDay(from)},
		"slots": bson.M{
			"$elemMatch": bson.M{"booked": false},
		},
	}
	opts := options.Find().SetSort(bson.D{{Key: "day", Value: 1}})

	cursor, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch availability days: %w", err)
	}
	defer cursor.Close(ctx)

	var days []models.AvailabilityDay
	if err := cursor.All(ctx, &days); err != nil {
		return nil, fmt.Errorf("error decoding availability days: %w", err)
	}
	return days, nil
}
