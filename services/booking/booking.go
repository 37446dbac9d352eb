// File: services/booking/booking.go
package booking

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	appointmentRepo "brightstart/database/repository/appointment"
	availabilityRepo "brightstart/database/repository/availability"
	"brightstart/models"
	"brightstart/services/notification"
	"brightstart/utils"
)

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Avail    availabilityRepo.AvailabilityRepository
	Appts    appointmentRepo.AppointmentRepository
	Notifier notification.NotificationService
	Cache    *AvailabilityCache
}

// Reserve implements the create-then-conditionally-flip discipline: the
// appointment record is written first, then one conditional update claims the
// slot. A zero-match flip means the slot was taken or never existed; the
// orphan appointment is compensated away before the call fails.
func (s *DefaultBookingService) Reserve(ctx context.Context, req models.BookAppointmentRequest) (*models.Appointment, error) {
	logger := utils.GetLogger()

	day, err := utils.ParseDay(req.Date)
	if err != nil {
		return nil, newError(CodeInvalidDate, "unparseable date %q", req.Date)
	}

	now := time.Now().UTC()
	appt := &models.Appointment{
		ID:         uuid.New().String(),
		ParentName: req.ParentName,
		Email:      req.Email,
		Phone:      req.Phone,
		Date:       day,
		Time:       req.Time,
		Status:     models.StatusScheduled,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := s.Appts.Insert(ctx, appt); err != nil {
		return nil, newError(CodeStore, "could not create appointment: %v", err)
	}

	if err := s.Avail.ReserveSlot(ctx, day, req.Time, appt.ID); err != nil {
		// The appointment exists but holds no slot; delete it before
		// reporting failure. A failed delete is an orphan that corrupts
		// the booked/reference invariant, so it is logged loudly.
		if delErr := s.Appts.DeleteByID(ctx, appt.ID); delErr != nil {
			utils.ReconciliationFailuresTotal.Inc()
			logger.Error("compensating delete failed; orphaned appointment requires manual reconciliation",
				zap.String("appointmentId", appt.ID),
				zap.Time("day", day),
				zap.String("slot", req.Time),
				zap.Error(delErr),
			)
			return nil, newError(CodeStore, "reservation failed and rollback did not complete")
		}
		if errors.Is(err, availabilityRepo.ErrNoMatch) {
			utils.ReservationConflictsTotal.Inc()
			return nil, newError(CodeSlotUnavailable, "slot %q on %s is not available", req.Time, day.Format("2006-01-02"))
		}
		return nil, newError(CodeStore, "could not reserve slot: %v", err)
	}

	utils.ReservationsTotal.Inc()
	s.invalidateCache(ctx)

	if s.Notifier != nil {
		if err := s.Notifier.SendBookingConfirmation(ctx, appt); err != nil {
			logger.Warn("booking confirmation email failed",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	logger.Info("slot reserved",
		zap.String("appointmentId", appt.ID),
		zap.Time("day", day),
		zap.String("slot", req.Time),
	)
	return appt, nil
}

// Cancel releases the slot held by a scheduled appointment. The status write
// and the release are two documents; if the release fails after the status
// committed, the slot is incorrectly held and the defect is logged for
// reconciliation rather than hidden.
func (s *DefaultBookingService) Cancel(ctx context.Context, id string) (*models.Appointment, error) {
	logger := utils.GetLogger()

	appt, err := s.Appts.GetByID(ctx, id)
	if err != nil {
		return nil, newError(CodeStore, "could not load appointment: %v", err)
	}
	if appt == nil {
		return nil, newError(CodeNotFound, "appointment %s not found", id)
	}
	if appt.Status != models.StatusScheduled {
		return nil, newError(CodeInvalidState, "appointment %s is %s, only scheduled appointments can be cancelled", id, appt.Status)
	}

	ok, err := s.Appts.UpdateStatus(ctx, id, models.StatusScheduled, models.StatusCancelled)
	if err != nil {
		return nil, newError(CodeStore, "could not update appointment status: %v", err)
	}
	if !ok {
		// Lost a race with another transition on the same appointment.
		return nil, newError(CodeInvalidState, "appointment %s is no longer scheduled", id)
	}
	appt.Status = models.StatusCancelled
	appt.UpdatedAt = time.Now().UTC()

	switch err := s.Avail.ReleaseSlot(ctx, appt.Date, appt.Time, appt.ID); {
	case err == nil:
		utils.CancellationsTotal.Inc()
	case errors.Is(err, availabilityRepo.ErrNoMatch):
		// The slot no longer references this appointment, usually because
		// an admin recurated the day. Nothing to release.
		logger.Warn("cancelled appointment held no slot",
			zap.String("appointmentId", appt.ID),
			zap.Time("day", appt.Date),
			zap.String("slot", appt.Time),
		)
	default:
		utils.ReconciliationFailuresTotal.Inc()
		logger.Error("slot release failed after cancellation; slot is incorrectly held",
			zap.String("appointmentId", appt.ID),
			zap.Time("day", appt.Date),
			zap.String("slot", appt.Time),
			zap.Error(err),
		)
	}
	s.invalidateCache(ctx)

	if s.Notifier != nil {
		if err := s.Notifier.SendCancellation(ctx, appt); err != nil {
			logger.Warn("cancellation email failed",
				zap.String("appointmentId", appt.ID), zap.Error(err))
		}
	}

	logger.Info("appointment cancelled", zap.String("appointmentId", appt.ID))
	return appt, nil
}

// Transition moves a scheduled appointment to completed or no-show. Terminal
// states other than cancelled keep the slot consumed, so no release happens.
func (s *DefaultBookingService) Transition(ctx context.Context, id, status string) (*models.Appointment, error) {
	if status != models.StatusCompleted && status != models.StatusNoShow {
		return nil, newError(CodeInvalidState, "unsupported status transition to %q", status)
	}

	appt, err := s.Appts.GetByID(ctx, id)
	if err != nil {
		return nil, newError(CodeStore, "could not load appointment: %v", err)
	}
	if appt == nil {
		return nil, newError(CodeNotFound, "appointment %s not found", id)
	}
	if appt.Status != models.StatusScheduled {
		return nil, newError(CodeInvalidState, "appointment %s is %s, only scheduled appointments can transition", id, appt.Status)
	}

	ok, err := s.Appts.UpdateStatus(ctx, id, models.StatusScheduled, status)
	if err != nil {
		return nil, newError(CodeStore, "could not update appointment status: %v", err)
	}
	if !ok {
		return nil, newError(CodeInvalidState, "appointment %s is no longer scheduled", id)
	}
	appt.Status = status
	appt.UpdatedAt = time.Now().UTC()
	return appt, nil
}

func (s *DefaultBookingService) GetAppointment(ctx context.Context, id string) (*models.Appointment, error) {
	appt, err := s.Appts.GetByID(ctx, id)
	if err != nil {
		return nil, newError(CodeStore, "could not load appointment: %v", err)
	}
	if appt == nil {
		return nil, newError(CodeNotFound, "appointment %s not found", id)
	}
	return appt, nil
}

func (s *DefaultBookingService) ListAppointments(ctx context.Context, date string) ([]models.Appointment, error) {
	if date == "" {
		appts, err := s.Appts.ListAll(ctx)
		if err != nil {
			return nil, newError(CodeStore, "could not list appointments: %v", err)
		}
		return appts, nil
	}
	day, err := utils.ParseDay(date)
	if err != nil {
		return nil, newError(CodeInvalidDate, "unparseable date %q", date)
	}
	appts, err := s.Appts.ListByDay(ctx, day)
	if err != nil {
		return nil, newError(CodeStore, "could not list appointments: %v", err)
	}
	return appts, nil
}

func (s *DefaultBookingService) invalidateCache(ctx context.Context) {
	if s.Cache != nil {
		s.Cache.Invalidate(ctx)
	}
}
