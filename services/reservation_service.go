package services

import (
	"errors"
	"fmt"
	"log"
	"math"
	"time"

	"hotel-reservations/dto"
	"hotel-reservations/models"
	"hotel-reservations/repositories"

	"gorm.io/datatypes"
)

// ReservationService drives the reservation lifecycle:
// create -> confirm -> complete, with cancellation from PENDING or
// CONFIRMED. The clock is injectable so date rules are testable.
type ReservationService struct {
	reservations repositories.ReservationRepository
	rooms        repositories.RoomRepository
	users        repositories.UserRepository
	now          func() time.Time
}

func NewReservationService(
	reservations repositories.ReservationRepository,
	rooms repositories.RoomRepository,
	users repositories.UserRepository,
) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		rooms:        rooms,
		users:        users,
		now:          time.Now,
	}
}

// WithClock replaces the wall clock, for tests.
func (s *ReservationService) WithClock(now func() time.Time) *ReservationService {
	s.now = now
	return s
}

// Create validates the requested stay and books the room. The availability
// check and the insert happen atomically in the repository, so two
// concurrent overlapping requests cannot both succeed.
func (s *ReservationService) Create(userID, roomID uint, checkIn, checkOut time.Time) (dto.ReservationResponse, error) {
	log.Printf("Creating reservation for user id %d, room id %d, %s to %s",
		userID, roomID, checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"))

	user, err := s.users.GetByID(userID)
	if err != nil {
		return dto.ReservationResponse{}, err
	}
	room, err := s.rooms.GetByID(roomID)
	if err != nil {
		return dto.ReservationResponse{}, err
	}

	checkIn = dateOnly(checkIn)
	checkOut = dateOnly(checkOut)
	if err := s.validateDates(checkIn, checkOut); err != nil {
		log.Printf("Reservation rejected for room %d: %v", room.RoomNumber, err)
		return dto.ReservationResponse{}, err
	}

	reservation := &models.Reservation{
		UserID:       user.ID,
		RoomID:       room.ID,
		CheckInDate:  datatypes.Date(checkIn),
		CheckOutDate: datatypes.Date(checkOut),
		Status:       models.StatusPending,
		CreatedAt:    s.now(),
	}
	if err := s.reservations.CreateIfAvailable(reservation); err != nil {
		if errors.Is(err, repositories.ErrRoomNotAvailable) {
			log.Printf("Room %d is not available from %s to %s",
				room.RoomNumber, checkIn.Format("2006-01-02"), checkOut.Format("2006-01-02"))
		}
		return dto.ReservationResponse{}, err
	}

	return buildReservationResponse(reservation, user, room), nil
}

// Confirm moves a PENDING reservation to CONFIRMED.
func (s *ReservationService) Confirm(reservationID uint) (dto.ReservationResponse, error) {
	log.Printf("Confirming reservation id %d", reservationID)

	reservation, err := s.reservations.GetByID(reservationID)
	if err != nil {
		return dto.ReservationResponse{}, err
	}
	if reservation.Status != models.StatusPending {
		log.Printf("Reservation id %d is not in PENDING status", reservationID)
		return dto.ReservationResponse{}, ErrInvalidReservationStatus
	}
	reservation.Status = models.StatusConfirmed
	if err := s.reservations.Update(reservation); err != nil {
		return dto.ReservationResponse{}, fmt.Errorf("failed to confirm reservation %d: %w", reservationID, err)
	}
	return buildReservationResponse(reservation, &reservation.User, &reservation.Room), nil
}

// Cancel sets the reservation to CANCELLED regardless of whether it was
// PENDING or CONFIRMED, as long as check-in is at least one day away.
func (s *ReservationService) Cancel(reservationID uint) (dto.ReservationResponse, error) {
	log.Printf("Cancelling reservation id %d", reservationID)

	reservation, err := s.reservations.GetByID(reservationID)
	if err != nil {
		return dto.ReservationResponse{}, err
	}
	if reservation.Status.IsTerminal() {
		log.Printf("Reservation id %d is already in terminal status %s", reservationID, reservation.Status)
		return dto.ReservationResponse{}, ErrInvalidReservationStatus
	}
	today := dateOnly(s.now())
	if dateOnly(time.Time(reservation.CheckInDate)).Before(today.AddDate(0, 0, 1)) {
		log.Printf("Reservation id %d cannot be cancelled less than 24 hours before check-in", reservationID)
		return dto.ReservationResponse{}, ErrCancellationTooLate
	}
	reservation.Status = models.StatusCancelled
	if err := s.reservations.Update(reservation); err != nil {
		return dto.ReservationResponse{}, fmt.Errorf("failed to cancel reservation %d: %w", reservationID, err)
	}
	return buildReservationResponse(reservation, &reservation.User, &reservation.Room), nil
}

// SweepCompleted finalizes past stays: every CONFIRMED reservation whose
// check-out date is before today becomes COMPLETED. Re-running with no
// newly eligible rows is a no-op, so the sweep is safe to retry.
func (s *ReservationService) SweepCompleted() (int, error) {
	today := dateOnly(s.now())
	eligible, err := s.reservations.GetByStatusAndCheckOutBefore(models.StatusConfirmed, today)
	if err != nil {
		return 0, fmt.Errorf("failed to load reservations for completion sweep: %w", err)
	}
	for i := range eligible {
		eligible[i].Status = models.StatusCompleted
	}
	if err := s.reservations.UpdateAll(eligible); err != nil {
		return 0, fmt.Errorf("failed to persist completed reservations: %w", err)
	}
	return len(eligible), nil
}

func (s *ReservationService) ListForUser(userID uint) ([]dto.ReservationResponse, error) {
	reservations, err := s.reservations.GetByUserID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations for user %d: %w", userID, err)
	}
	return buildReservationResponses(reservations), nil
}

func (s *ReservationService) ListAll() ([]dto.ReservationResponse, error) {
	reservations, err := s.reservations.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return buildReservationResponses(reservations), nil
}

// IsOwner reports whether the reservation belongs to the user. Enforcement
// of the forbidden outcome is the transport layer's job.
func (s *ReservationService) IsOwner(userID, reservationID uint) (bool, error) {
	reservation, err := s.reservations.GetByID(reservationID)
	if err != nil {
		return false, err
	}
	return reservation.UserID == userID, nil
}

// validateDates enforces, in order: check-in not in the past, check-out not
// before check-in, minimum stay of one night.
func (s *ReservationService) validateDates(checkIn, checkOut time.Time) error {
	today := dateOnly(s.now())
	if checkIn.Before(today) {
		return ErrCheckInInPast
	}
	if checkOut.Before(checkIn) {
		return ErrCheckOutBeforeCheckIn
	}
	if checkOut.Equal(checkIn) {
		return ErrMinimumStayOneNight
	}
	return nil
}

func buildReservationResponses(reservations []models.Reservation) []dto.ReservationResponse {
	responses := make([]dto.ReservationResponse, 0, len(reservations))
	for i := range reservations {
		responses = append(responses,
			buildReservationResponse(&reservations[i], &reservations[i].User, &reservations[i].Room))
	}
	return responses
}

func buildReservationResponse(reservation *models.Reservation, user *models.User, room *models.Room) dto.ReservationResponse {
	// Both UTC midnights, so the subtraction is an exact calendar-day count.
	checkIn := dateOnly(time.Time(reservation.CheckInDate))
	checkOut := dateOnly(time.Time(reservation.CheckOutDate))
	nights := int(checkOut.Sub(checkIn).Hours() / 24)

	return dto.ReservationResponse{
		ID:            reservation.ID,
		Email:         user.Email,
		RoomNumber:    room.RoomNumber,
		RoomType:      string(room.Type),
		Capacity:      room.Capacity,
		PricePerNight: room.PricePerNight,
		TotalPrice:    roundToCents(float64(nights) * room.PricePerNight),
		Status:        string(reservation.Status),
		CheckInDate:   checkIn.Format("2006-01-02"),
		CheckOutDate:  checkOut.Format("2006-01-02"),
		CreatedAt:     reservation.CreatedAt,
	}
}

// roundToCents rounds half away from zero to two decimal places.
func roundToCents(v float64) float64 {
	return math.Round(v*100) / 100
}

// dateOnly reduces an instant to its calendar day as midnight UTC. Date
// rules compare calendar days, never instants, so every operand goes
// through here no matter which zone it arrived in.
func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
