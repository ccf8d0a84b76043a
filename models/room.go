package models

import (
	"errors"
	"time"

	"gorm.io/gorm"
)

// RoomType is the closed set of room categories.
type RoomType string

const (
	RoomTypeSingle RoomType = "SINGLE"
	RoomTypeDouble RoomType = "DOUBLE"
	RoomTypeSuite  RoomType = "SUITE"
	RoomTypeDeluxe RoomType = "DELUXE"
)

var ErrInvalidRoomType = errors.New("invalid room type")

// ParseRoomType validates a transport-level string against the closed set.
func ParseRoomType(s string) (RoomType, error) {
	switch RoomType(s) {
	case RoomTypeSingle, RoomTypeDouble, RoomTypeSuite, RoomTypeDeluxe:
		return RoomType(s), nil
	}
	return "", ErrInvalidRoomType
}

type Room struct {
	ID uint `gorm:"primaryKey" json:"id"`

	RoomNumber    int      `gorm:"column:room_number;uniqueIndex;not null" json:"roomNumber"`
	Type          RoomType `gorm:"type:varchar(16);not null" json:"type"`
	PricePerNight float64  `gorm:"column:price_per_night;not null" json:"pricePerNight"`
	Capacity      int      `gorm:"not null" json:"capacity"`
	Description   string   `gorm:"type:text" json:"description"`

	Reservations []Reservation `gorm:"foreignKey:RoomID" json:"-"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}
