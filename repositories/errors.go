package repositories

import (
	"errors"
	"strings"
)

// Lookup and uniqueness failures surfaced by the persistence gateways.
// Services and controllers match these with errors.Is.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrRoomNotFound        = errors.New("room not found")
	ErrReservationNotFound = errors.New("reservation not found")

	ErrDuplicateRoomNumber = errors.New("room with this number already exists")
	ErrDuplicateEmail      = errors.New("user with this email already exists")

	// Returned by CreateIfAvailable when a non-terminal reservation
	// overlaps the requested range.
	ErrRoomNotAvailable = errors.New("the selected room is not available for the given dates")
)

func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") || strings.Contains(msg, "UNIQUE constraint failed")
}
