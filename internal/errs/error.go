package errs

import (
	"errors"
)

var (
	// ErrNotFound is the store-level absence signal.
	ErrNotFound = errors.New("not found")

	ErrReservationNotFound = errors.New("reservation not found")
	ErrDateAlreadyReserved = errors.New("a reservation already exists for that date")
)
