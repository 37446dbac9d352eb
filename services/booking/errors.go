package booking

import (
	"errors"
	"fmt"
)

// Error codes for the booking engine. Handlers map these onto HTTP statuses;
// slotUnavailable is the one callers are expected to retry by picking another
// slot.
const (
	CodeInvalidDate     = "invalidDate"
	CodeSlotNotFound    = "slotNotFound"
	CodeSlotBooked      = "slotBooked"
	CodeSlotUnavailable = "slotUnavailable"
	CodeInvalidState    = "invalidState"
	CodeNotFound        = "notFound"
	CodeStore           = "storeError"
)

// BookingError carries a machine-readable code alongside the message.
type BookingError struct {
	Code    string
	Message string
}

func (e *BookingError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func newError(code, format string, args ...interface{}) error {
	return &BookingError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// CodeOf returns the booking error code for err, or CodeStore for anything
// outside the taxonomy.
func CodeOf(err error) string {
	var be *BookingError
	if errors.As(err, &be) {
		return be.Code
	}
	return CodeStore
}
