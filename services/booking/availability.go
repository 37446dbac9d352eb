// File: services/booking/availability.go
package booking

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	availabilityRepo "brightstart/database/repository/availability"
	"brightstart/models"
	"brightstart/utils"
)

const futureDaysCacheKey = "availability:future-days"

// AvailabilityCache is a short-TTL redis projection of the future-days
// listing. Invalidation on every write path is best-effort; the TTL bounds
// staleness when an invalidation is missed.
type AvailabilityCache struct {
	Client *redis.Client
	TTL    time.Duration
}

func (c *AvailabilityCache) Get(ctx context.Context) ([]models.AvailabilityDay, bool) {
	data, err := c.Client.Get(ctx, futureDaysCacheKey).Result()
	if err != nil {
		return nil, false
	}
	var days []models.AvailabilityDay
	if err := json.Unmarshal([]byte(data), &days); err != nil {
		return nil, false
	}
	return days, true
}

func (c *AvailabilityCache) Set(ctx context.Context, days []models.AvailabilityDay) {
	data, err := json.Marshal(days)
	if err != nil {
		return
	}
	if err := c.Client.Set(ctx, futureDaysCacheKey, data, c.TTL).Err(); err != nil {
		utils.GetLogger().Warn("availability cache write failed", zap.Error(err))
	}
}

func (c *AvailabilityCache) Invalidate(ctx context.Context) {
	if err := c.Client.Del(ctx, futureDaysCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("availability cache invalidation failed", zap.Error(err))
	}
}

// DefaultAvailabilityService is the production read side.
type DefaultAvailabilityService struct {
	Repo  availabilityRepo.AvailabilityRepository
	Cache *AvailabilityCache
}

// ListFutureDays hides days strictly before today even when they still carry
// unbooked slots; stale days are filtered, not deleted.
func (s *DefaultAvailabilityService) ListFutureDays(ctx context.Context) ([]models.AvailabilityDay, error) {
	if s.Cache != nil {
		if days, ok := s.Cache.Get(ctx); ok {
			return days, nil
		}
	}

	days, err := s.Repo.ListFutureDays(ctx, utils.Today())
	if err != nil {
		return nil, newError(CodeStore, "could not list availability: %v", err)
	}
	if days == nil {
		days = []models.AvailabilityDay{}
	}

	if s.Cache != nil {
		s.Cache.Set(ctx, days)
	}
	return days, nil
}

func (s *DefaultAvailabilityService) GetDay(ctx context.Context, date string) (*models.AvailabilityDay, error) {
	day, err := utils.ParseDay(date)
	if err != nil {
		return nil, newError(CodeInvalidDate, "unparseable date %q", date)
	}

	record, err := s.Repo.GetDay(ctx, day)
	if err != nil {
		return nil, newError(CodeStore, "could not fetch availability day: %v", err)
	}
	if record == nil {
		return nil, newError(CodeNotFound, "no availability for %s", day.Format("2006-01-02"))
	}
	return record, nil
}
