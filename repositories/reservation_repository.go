package repositories

import (
	"errors"
	"time"

	"hotel-reservations/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var nonTerminalStatuses = []models.ReservationStatus{
	models.StatusPending,
	models.StatusConfirmed,
}

type ReservationRepository interface {
	// CreateIfAvailable atomically checks the room for conflicting
	// non-terminal reservations and inserts the new one. The conflict
	// check and the insert run in one transaction holding a row lock on
	// the room, so concurrent overlapping creates serialize: exactly one
	// succeeds, the rest get ErrRoomNotAvailable.
	CreateIfAvailable(reservation *models.Reservation) error

	GetByID(id uint) (*models.Reservation, error)
	GetByUserID(userID uint) ([]models.Reservation, error)
	GetActiveRangesByRoomID(roomID uint) ([]models.Reservation, error)
	GetAll() ([]models.Reservation, error)
	Update(reservation *models.Reservation) error

	// HasConflict reports whether any non-terminal reservation on the room
	// overlaps the half-open range [checkIn, checkOut).
	HasConflict(roomID uint, checkIn, checkOut time.Time) (bool, error)
	ExistsByRoomAndStatus(roomID uint, status models.ReservationStatus) (bool, error)

	GetByStatusAndCheckOutBefore(status models.ReservationStatus, day time.Time) ([]models.Reservation, error)
	UpdateAll(reservations []models.Reservation) error
}

type reservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) CreateIfAvailable(reservation *models.Reservation) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&room, reservation.RoomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		var count int64
		if err := tx.Model(&models.Reservation{}).
			Where("room_id = ?", reservation.RoomID).
			Where("status IN ?", nonTerminalStatuses).
			Where("check_in_date < ? AND check_out_date > ?",
				reservation.CheckOutDate, reservation.CheckInDate).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrRoomNotAvailable
		}

		return tx.Create(reservation).Error
	})
}

func (r *reservationRepository) GetByID(id uint) (*models.Reservation, error) {
	var reservation models.Reservation
	if err := r.db.Preload("User").Preload("Room").First(&reservation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}
	return &reservation, nil
}

func (r *reservationRepository) GetByUserID(userID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Preload("User").Preload("Room").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&reservations).Error
	return reservations, err
}

func (r *reservationRepository) GetActiveRangesByRoomID(roomID uint) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.
		Where("room_id = ?", roomID).
		Where("status IN ?", nonTerminalStatuses).
		Order("check_in_date ASC").
		Find(&reservations).Error
	return reservations, err
}

func (r *reservationRepository) GetAll() ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Preload("User").Preload("Room").
		Order("created_at DESC").
		Find(&reservations).Error
	return reservations, err
}

func (r *reservationRepository) Update(reservation *models.Reservation) error {
	return r.db.Save(reservation).Error
}

func (r *reservationRepository) HasConflict(roomID uint, checkIn, checkOut time.Time) (bool, error) {
	var count int64
	err := r.db.Model(&models.Reservation{}).
		Where("room_id = ?", roomID).
		Where("status IN ?", nonTerminalStatuses).
		Where("check_in_date < ? AND check_out_date > ?",
			datatypes.Date(checkOut), datatypes.Date(checkIn)).
		Count(&count).Error
	return count > 0, err
}

func (r *reservationRepository) ExistsByRoomAndStatus(roomID uint, status models.ReservationStatus) (bool, error) {
	var count int64
	err := r.db.Model(&models.Reservation{}).
		Where("room_id = ? AND status = ?", roomID, status).
		Count(&count).Error
	return count > 0, err
}

func (r *reservationRepository) GetByStatusAndCheckOutBefore(status models.ReservationStatus, day time.Time) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.
		Where("status = ?", status).
		Where("check_out_date < ?", datatypes.Date(day)).
		Find(&reservations).Error
	return reservations, err
}

func (r *reservationRepository) UpdateAll(reservations []models.Reservation) error {
	if len(reservations) == 0 {
		return nil
	}
	return r.db.Save(&reservations).Error
}
