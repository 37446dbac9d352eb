// File: services/booking/curation.go
package booking

import (
	"context"
	"errors"

	"go.uber.org/zap"

	availabilityRepo "brightstart/database/repository/availability"
	"brightstart/models"
	"brightstart/utils"
)

// DefaultCurationService is the admin write side over the availability store.
type DefaultCurationService struct {
	Repo  availabilityRepo.AvailabilityRepository
	Cache *AvailabilityCache
}

// ReplaceSlots is a full replace, not a merge: recurating a day that already
// holds bookings destroys them. Admins reset availability with it; the
// in-flight bookings on such a day keep their appointment records but lose
// their slot linkage, which the log calls out.
func (s *DefaultCurationService) ReplaceSlots(ctx context.Context, date string, labels []string) (*models.AvailabilityDay, error) {
	logger := utils.GetLogger()

	day, err := utils.ParseDay(date)
	if err != nil {
		return nil, newError(CodeInvalidDate, "unparseable date %q", date)
	}

	existing, err := s.Repo.GetDay(ctx, day)
	if err != nil {
		return nil, newError(CodeStore, "could not fetch availability day: %v", err)
	}
	if existing != nil {
		for _, slot := range existing.Slots {
			if slot.Booked {
				logger.Warn("slot curation is overwriting a booked slot",
					zap.Time("day", day),
					zap.String("slot", slot.Label),
					zap.String("appointmentId", slot.AppointmentID),
				)
			}
		}
	}

	updated, err := s.Repo.ReplaceSlots(ctx, day, labels)
	if err != nil {
		return nil, newError(CodeStore, "could not replace slots: %v", err)
	}
	s.invalidateCache(ctx)

	logger.Info("day slots curated",
		zap.Time("day", day),
		zap.Int("slots", len(labels)),
	)
	return updated, nil
}

func (s *DefaultCurationService) RemoveSlot(ctx context.Context, date, label string) (*models.AvailabilityDay, error) {
	day, err := utils.ParseDay(date)
	if err != nil {
		return nil, newError(CodeInvalidDate, "unparseable date %q", date)
	}

	updated, err := s.Repo.RemoveSlot(ctx, day, label)
	if err != nil {
		switch {
		case errors.Is(err, availabilityRepo.ErrSlotBooked):
			return nil, newError(CodeSlotBooked, "slot %q on %s is booked and cannot be removed", label, day.Format("2006-01-02"))
		case errors.Is(err, availabilityRepo.ErrSlotNotFound):
			return nil, newError(CodeSlotNotFound, "slot %q on %s not found", label, day.Format("2006-01-02"))
		default:
			return nil, newError(CodeStore, "could not remove slot: %v", err)
		}
	}
	s.invalidateCache(ctx)
	return updated, nil
}

func (s *DefaultCurationService) invalidateCache(ctx context.Context) {
	if s.Cache != nil {
		s.Cache.Invalidate(ctx)
	}
}
