package dto

type RoomCreateRequest struct {
	RoomNumber    int     `json:"roomNumber" binding:"required,gt=0"`
	RoomType      string  `json:"roomType" binding:"required"`
	Capacity      int     `json:"capacity" binding:"required,min=1"`
	PricePerNight float64 `json:"pricePerNight" binding:"required,gt=0"`
	Description   string  `json:"description" binding:"required"`
}

// RoomUpdateRequest applies only the fields that are present.
type RoomUpdateRequest struct {
	RoomNumber    *int     `json:"roomNumber" binding:"omitempty,gt=0"`
	RoomType      *string  `json:"roomType"`
	Capacity      *int     `json:"capacity" binding:"omitempty,min=1"`
	PricePerNight *float64 `json:"pricePerNight" binding:"omitempty,gt=0"`
	Description   *string  `json:"description"`
}

// BookedRange is one non-terminal reservation's date range, for calendar
// display. Dates are formatted YYYY-MM-DD.
type BookedRange struct {
	CheckInDate  string `json:"checkInDate"`
	CheckOutDate string `json:"checkOutDate"`
}

type RoomResponse struct {
	ID            uint          `json:"id"`
	RoomNumber    int           `json:"roomNumber"`
	Type          string        `json:"type"`
	PricePerNight float64       `json:"pricePerNight"`
	Capacity      int           `json:"capacity"`
	Description   string        `json:"description"`
	BookedDates   []BookedRange `json:"bookedDates"`
}
