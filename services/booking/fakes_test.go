package booking

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	availabilityRepo "brightstart/database/repository/availability"
	"brightstart/models"
	"brightstart/utils"
)

func mustDay(t *testing.T, date string) time.Time {
	t.Helper()
	day, err := utils.ParseDay(date)
	require.NoError(t, err)
	return day
}

// fakeAvailabilityRepo mirrors the conditional-update semantics of the mongo
// repository behind a mutex, so the service layer can be tested without a
// running store.
type fakeAvailabilityRepo struct {
	mu   sync.Mutex
	days map[string]*models.AvailabilityDay
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{days: make(map[string]*models.AvailabilityDay)}
}

func dayKey(day time.Time) string {
	return utils.DayOf(day).Format("2006-01-02")
}

func (f *fakeAvailabilityRepo) GetDay(ctx context.Context, day time.Time) (*models.AvailabilityDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.days[dayKey(day)]
	if !ok {
		return nil, nil
	}
	cp := *d
	cp.Slots = append([]models.TimeSlot(nil), d.Slots...)
	return &cp, nil
}

func (f *fakeAvailabilityRepo) ListFutureDays(ctx context.Context, from time.Time) ([]models.AvailabilityDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.AvailabilityDay
	for _, d := range f.days {
		if d.Day.Before(utils.StartOfDay(from)) || !d.HasFreeSlot() {
			continue
		}
		cp := *d
		cp.Slots = append([]models.TimeSlot(nil), d.Slots...)
		out = append(out, cp)
	}
	for i := 0; i < len(out); i++ {
		for j := i + 1; j < len(out); j++ {
			if out[j].Day.Before(out[i].Day) {
				out[i], out[j] = out[j], out[i]
			}
		}
	}
	return out, nil
}

func (f *fakeAvailabilityRepo) ReplaceSlots(ctx context.Context, day time.Time, labels []string) (*models.AvailabilityDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d := &models.AvailabilityDay{Day: utils.DayOf(day), Slots: models.NewSlots(labels)}
	f.days[dayKey(day)] = d
	cp := *d
	cp.Slots = append([]models.TimeSlot(nil), d.Slots...)
	return &cp, nil
}

func (f *fakeAvailabilityRepo) RemoveSlot(ctx context.Context, day time.Time, label string) (*models.AvailabilityDay, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.days[dayKey(day)]
	if !ok {
		return nil, availabilityRepo.ErrSlotNotFound
	}
	for i, s := range d.Slots {
		if s.Label != label {
			continue
		}
		if s.Booked {
			return nil, availabilityRepo.ErrSlotBooked
		}
		d.Slots = append(d.Slots[:i], d.Slots[i+1:]...)
		if len(d.Slots) == 0 {
			delete(f.days, dayKey(day))
			return nil, nil
		}
		cp := *d
		cp.Slots = append([]models.TimeSlot(nil), d.Slots...)
		return &cp, nil
	}
	return nil, availabilityRepo.ErrSlotNotFound
}

func (f *fakeAvailabilityRepo) ReserveSlot(ctx context.Context, day time.Time, label, appointmentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.days[dayKey(day)]
	if !ok {
		return availabilityRepo.ErrNoMatch
	}
	for i, s := range d.Slots {
		if s.Label == label && !s.Booked {
			d.Slots[i].Booked = true
			d.Slots[i].AppointmentID = appointmentID
			return nil
		}
	}
	return availabilityRepo.ErrNoMatch
}

func (f *fakeAvailabilityRepo) ReleaseSlot(ctx context.Context, day time.Time, label, appointmentID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	d, ok := f.days[dayKey(day)]
	if !ok {
		return availabilityRepo.ErrNoMatch
	}
	for i, s := range d.Slots {
		if s.Label == label && s.AppointmentID == appointmentID {
			d.Slots[i].Booked = false
			d.Slots[i].AppointmentID = ""
			return nil
		}
	}
	return availabilityRepo.ErrNoMatch
}

func (f *fakeAvailabilityRepo) EnsureIndexes(ctx context.Context) error { return nil }

// fakeAppointmentRepo is an in-memory AppointmentRepository.
type fakeAppointmentRepo struct {
	mu        sync.Mutex
	appts     map[string]models.Appointment
	deleteErr error
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appts: make(map[string]models.Appointment)}
}

func (f *fakeAppointmentRepo) Insert(ctx context.Context, appt *models.Appointment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appts[appt.ID] = *appt
	return nil
}

func (f *fakeAppointmentRepo) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	appt, ok := f.appts[id]
	if !ok {
		return nil, nil
	}
	cp := appt
	return &cp, nil
}

func (f *fakeAppointmentRepo) UpdateStatus(ctx context.Context, id, from, to string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	appt, ok := f.appts[id]
	if !ok || appt.Status != from {
		return false, nil
	}
	appt.Status = to
	appt.UpdatedAt = time.Now().UTC()
	f.appts[id] = appt
	return true, nil
}

func (f *fakeAppointmentRepo) DeleteByID(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.deleteErr != nil {
		return f.deleteErr
	}
	delete(f.appts, id)
	return nil
}

func (f *fakeAppointmentRepo) ListByDay(ctx context.Context, day time.Time) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		if utils.DayOf(a.Date).Equal(utils.DayOf(day)) {
			out = append(out, a)
		}
	}
	return out, nil
}

func (f *fakeAppointmentRepo) ListAll(ctx context.Context) ([]models.Appointment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []models.Appointment
	for _, a := range f.appts {
		out = append(out, a)
	}
	return out, nil
}

func (f *fakeAppointmentRepo) EnsureIndexes(ctx context.Context) error { return nil }

func (f *fakeAppointmentRepo) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.appts)
}
