package repositories

import (
	"errors"

	"hotel-reservations/models"

	"gorm.io/gorm"
)

type RoomRepository interface {
	Create(room *models.Room) error
	GetByID(id uint) (*models.Room, error)
	GetByNumber(roomNumber int) (*models.Room, error)
	ExistsByNumber(roomNumber int) (bool, error)
	Update(room *models.Room) error
	Delete(id uint) error
	GetAll() ([]models.Room, error)
}

type roomRepository struct {
	db *gorm.DB
}

func NewRoomRepository(db *gorm.DB) RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(room *models.Room) error {
	if err := r.db.Create(room).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateRoomNumber
		}
		return err
	}
	return nil
}

func (r *roomRepository) GetByID(id uint) (*models.Room, error) {
	var room models.Room
	if err := r.db.First(&room, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) GetByNumber(roomNumber int) (*models.Room, error) {
	var room models.Room
	if err := r.db.Where("room_number = ?", roomNumber).First(&room).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) ExistsByNumber(roomNumber int) (bool, error) {
	var count int64
	err := r.db.Model(&models.Room{}).Where("room_number = ?", roomNumber).Count(&count).Error
	return count > 0, err
}

func (r *roomRepository) Update(room *models.Room) error {
	if err := r.db.Save(room).Error; err != nil {
		if isDuplicateKeyError(err) {
			return ErrDuplicateRoomNumber
		}
		return err
	}
	return nil
}

func (r *roomRepository) Delete(id uint) error {
	result := r.db.Delete(&models.Room{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRoomNotFound
	}
	return nil
}

func (r *roomRepository) GetAll() ([]models.Room, error) {
	var rooms []models.Room
	err := r.db.Order("room_number ASC").Find(&rooms).Error
	return rooms, err
}
