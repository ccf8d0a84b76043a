package models

import (
	"time"

	"gorm.io/datatypes"
)

// ReservationStatus is the closed set of lifecycle states.
//
//	PENDING --confirm--> CONFIRMED
//	PENDING|CONFIRMED --cancel--> CANCELLED
//	CONFIRMED --daily sweep (check-out passed)--> COMPLETED
type ReservationStatus string

const (
	StatusPending   ReservationStatus = "PENDING"
	StatusConfirmed ReservationStatus = "CONFIRMED"
	StatusCancelled ReservationStatus = "CANCELLED"
	StatusCompleted ReservationStatus = "COMPLETED"
)

// IsTerminal reports whether no further transition is allowed. Terminal
// reservations do not count toward availability conflicts.
func (s ReservationStatus) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted
}

type Reservation struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index;not null" json:"userId"`
	RoomID uint `gorm:"index;not null" json:"roomId"`

	// Calendar dates, no time component. The stay occupies the half-open
	// range [check-in, check-out).
	CheckInDate  datatypes.Date `gorm:"column:check_in_date;not null" json:"checkInDate"`
	CheckOutDate datatypes.Date `gorm:"column:check_out_date;not null" json:"checkOutDate"`

	Status ReservationStatus `gorm:"type:varchar(16);index;not null" json:"status"`

	CreatedAt time.Time `json:"createdAt"`

	User User `gorm:"foreignKey:UserID" json:"-"`
	Room Room `gorm:"foreignKey:RoomID" json:"-"`
}
