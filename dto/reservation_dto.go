package dto

import "time"

type ReservationCreateRequest struct {
	RoomID       uint   `json:"roomId" binding:"required"`
	CheckInDate  string `json:"checkInDate" binding:"required"`  // YYYY-MM-DD
	CheckOutDate string `json:"checkOutDate" binding:"required"` // YYYY-MM-DD
}

// ReservationResponse is the flat projection returned to clients. Total
// price is derived at read time (nights x price per night), never stored.
type ReservationResponse struct {
	ID            uint      `json:"id"`
	Email         string    `json:"email"`
	RoomNumber    int       `json:"roomNumber"`
	RoomType      string    `json:"roomType"`
	Capacity      int       `json:"capacity"`
	PricePerNight float64   `json:"pricePerNight"`
	TotalPrice    float64   `json:"totalPrice"`
	Status        string    `json:"status"`
	CheckInDate   string    `json:"checkInDate"`
	CheckOutDate  string    `json:"checkOutDate"`
	CreatedAt     time.Time `json:"createdAt"`
}
