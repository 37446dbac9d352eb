package models

import "time"

// TimeSlot is one bookable window inside an AvailabilityDay. It has no
// identity outside its parent day; callers address it by label.
type TimeSlot struct {
	Label         string `bson:"label" json:"label"`                                 // display string, e.g. "9:00 AM"
	Booked        bool   `bson:"booked" json:"booked"`                               // true iff AppointmentID is set
	AppointmentID string `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"` // reservation reference
}

// AvailabilityDay holds the ordered slot list for one canonical calendar day.
// Day is stored as midnight UTC and is the natural key: at most one document
// per day. A day whose slot list is empty is deleted, never left in place.
type AvailabilityDay struct {
	Day   time.Time  `bson:"day" json:"day"`
	Slots []TimeSlot `bson:"slots" json:"slots"`
}

// HasFreeSlot reports whether at least one slot is unbooked.
func (d *AvailabilityDay) HasFreeSlot() bool {
	for _, s := range d.Slots {
		if !s.Booked {
			return true
		}
	}
	return false
}

// NewSlots builds a fresh unbooked slot list from display labels, preserving
// the given order.
func NewSlots(labels []string) []TimeSlot {
	slots := make([]TimeSlot, len(labels))
	for i, label := range labels {
		slots[i] = TimeSlot{Label: label}
	}
	return slots
}

// ReplaceSlotsRequest defines the payload for curating a day's slot list.
type ReplaceSlotsRequest struct {
	Slots []string `json:"slots" binding:"required,min=1,dive,required"`
}
