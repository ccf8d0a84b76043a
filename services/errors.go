package services

import "errors"

// Reservation rule violations. Messages are fixed and user-visible.
var (
	ErrCheckInInPast            = errors.New("check-in date cannot be in the past")
	ErrCheckOutBeforeCheckIn    = errors.New("check-out date must be after check-in date")
	ErrMinimumStayOneNight      = errors.New("minimum stay is 1 night")
	ErrCancellationTooLate      = errors.New("cancellations must be made at least 24 hours before check-in")
	ErrInvalidReservationStatus = errors.New("reservation cannot be modified in its current status")
)

// Catalog and search failures.
var (
	ErrInvalidSearchParameters   = errors.New("both checkIn and checkOut dates must be provided")
	ErrRoomHasActiveReservations = errors.New("cannot delete room with active reservations")
)

// Authentication and verification failures.
var (
	ErrInvalidCredentials      = errors.New("invalid credentials")
	ErrUserNotVerified         = errors.New("user account is not verified")
	ErrUserAlreadyVerified     = errors.New("user account is already verified")
	ErrVerificationExpired     = errors.New("verification code has expired")
	ErrInvalidVerificationCode = errors.New("invalid verification code")
)
