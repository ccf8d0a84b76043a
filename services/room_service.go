package services

import (
	"fmt"
	"log"
	"sort"
	"time"

	"hotel-reservations/dto"
	"hotel-reservations/models"
	"hotel-reservations/repositories"
)

// RoomService owns the room catalog and the availability check.
type RoomService struct {
	rooms        repositories.RoomRepository
	reservations repositories.ReservationRepository
}

func NewRoomService(rooms repositories.RoomRepository, reservations repositories.ReservationRepository) *RoomService {
	return &RoomService{rooms: rooms, reservations: reservations}
}

// RoomSearchParams are independently optional filters. A partially supplied
// date pair is rejected with ErrInvalidSearchParameters.
type RoomSearchParams struct {
	RoomNumber   *int
	Type         *models.RoomType
	MinCapacity  *int
	MaxPrice     *float64
	CheckInDate  *time.Time
	CheckOutDate *time.Time
}

func (s *RoomService) AddRoom(input dto.RoomCreateRequest) (dto.RoomResponse, error) {
	log.Printf("Adding new room with number %d", input.RoomNumber)

	roomType, err := models.ParseRoomType(input.RoomType)
	if err != nil {
		return dto.RoomResponse{}, err
	}

	taken, err := s.rooms.ExistsByNumber(input.RoomNumber)
	if err != nil {
		return dto.RoomResponse{}, fmt.Errorf("failed to check room number: %w", err)
	}
	if taken {
		log.Printf("Room with number %d already exists", input.RoomNumber)
		return dto.RoomResponse{}, repositories.ErrDuplicateRoomNumber
	}

	room := &models.Room{
		RoomNumber:    input.RoomNumber,
		Type:          roomType,
		PricePerNight: input.PricePerNight,
		Capacity:      input.Capacity,
		Description:   input.Description,
	}
	if err := s.rooms.Create(room); err != nil {
		return dto.RoomResponse{}, err
	}
	return s.toDto(room)
}

func (s *RoomService) UpdateRoom(roomID uint, input dto.RoomUpdateRequest) (dto.RoomResponse, error) {
	log.Printf("Updating room id %d", roomID)

	room, err := s.rooms.GetByID(roomID)
	if err != nil {
		return dto.RoomResponse{}, err
	}

	if input.RoomNumber != nil && *input.RoomNumber != room.RoomNumber {
		taken, err := s.rooms.ExistsByNumber(*input.RoomNumber)
		if err != nil {
			return dto.RoomResponse{}, fmt.Errorf("failed to check room number: %w", err)
		}
		if taken {
			return dto.RoomResponse{}, repositories.ErrDuplicateRoomNumber
		}
		room.RoomNumber = *input.RoomNumber
	}
	if input.RoomType != nil {
		roomType, err := models.ParseRoomType(*input.RoomType)
		if err != nil {
			return dto.RoomResponse{}, err
		}
		room.Type = roomType
	}
	if input.Capacity != nil {
		room.Capacity = *input.Capacity
	}
	if input.PricePerNight != nil {
		room.PricePerNight = *input.PricePerNight
	}
	if input.Description != nil {
		room.Description = *input.Description
	}

	if err := s.rooms.Update(room); err != nil {
		return dto.RoomResponse{}, err
	}
	return s.toDto(room)
}

// DeleteRoom refuses to remove a room that still has a CONFIRMED
// reservation on it.
func (s *RoomService) DeleteRoom(roomID uint) error {
	log.Printf("Deleting room id %d", roomID)

	if _, err := s.rooms.GetByID(roomID); err != nil {
		return err
	}
	active, err := s.reservations.ExistsByRoomAndStatus(roomID, models.StatusConfirmed)
	if err != nil {
		return fmt.Errorf("failed to check reservations for room %d: %w", roomID, err)
	}
	if active {
		log.Printf("Cannot delete room id %d with active reservations", roomID)
		return ErrRoomHasActiveReservations
	}
	return s.rooms.Delete(roomID)
}

// IsRoomAvailable reports whether no non-terminal reservation on the room
// overlaps the half-open range [checkIn, checkOut). Back-to-back stays
// (new check-in on an existing check-out day) do not conflict.
func (s *RoomService) IsRoomAvailable(roomID uint, checkIn, checkOut time.Time) (bool, error) {
	conflict, err := s.reservations.HasConflict(roomID, checkIn, checkOut)
	if err != nil {
		return false, err
	}
	return !conflict, nil
}

func (s *RoomService) GetRoomByID(roomID uint) (*models.Room, error) {
	return s.rooms.GetByID(roomID)
}

// Search applies the supplied filters. An exact room number short-circuits
// everything else, including date validation; a date pair restricts results
// to available rooms. Results are always sorted ascending by room number.
func (s *RoomService) Search(params RoomSearchParams) ([]dto.RoomResponse, error) {
	if params.RoomNumber != nil {
		room, err := s.rooms.GetByNumber(*params.RoomNumber)
		if err != nil {
			return nil, err
		}
		response, err := s.toDto(room)
		if err != nil {
			return nil, err
		}
		return []dto.RoomResponse{response}, nil
	}

	if (params.CheckInDate != nil) != (params.CheckOutDate != nil) {
		return nil, ErrInvalidSearchParameters
	}

	rooms, err := s.rooms.GetAll()
	if err != nil {
		return nil, fmt.Errorf("failed to list rooms: %w", err)
	}

	matched := make([]models.Room, 0, len(rooms))
	for _, room := range rooms {
		if params.Type != nil && room.Type != *params.Type {
			continue
		}
		if params.MinCapacity != nil && room.Capacity < *params.MinCapacity {
			continue
		}
		if params.MaxPrice != nil && room.PricePerNight > *params.MaxPrice {
			continue
		}
		if params.CheckInDate != nil {
			available, err := s.IsRoomAvailable(room.ID, *params.CheckInDate, *params.CheckOutDate)
			if err != nil {
				return nil, err
			}
			if !available {
				continue
			}
		}
		matched = append(matched, room)
	}

	sort.Slice(matched, func(i, j int) bool {
		return matched[i].RoomNumber < matched[j].RoomNumber
	})

	responses := make([]dto.RoomResponse, 0, len(matched))
	for i := range matched {
		response, err := s.toDto(&matched[i])
		if err != nil {
			return nil, err
		}
		responses = append(responses, response)
	}
	return responses, nil
}

// toDto enriches the room with its current non-terminal booked ranges.
func (s *RoomService) toDto(room *models.Room) (dto.RoomResponse, error) {
	active, err := s.reservations.GetActiveRangesByRoomID(room.ID)
	if err != nil {
		return dto.RoomResponse{}, fmt.Errorf("failed to load booked dates for room %d: %w", room.ID, err)
	}

	booked := make([]dto.BookedRange, 0, len(active))
	for _, reservation := range active {
		booked = append(booked, dto.BookedRange{
			CheckInDate:  time.Time(reservation.CheckInDate).Format("2006-01-02"),
			CheckOutDate: time.Time(reservation.CheckOutDate).Format("2006-01-02"),
		})
	}

	return dto.RoomResponse{
		ID:            room.ID,
		RoomNumber:    room.RoomNumber,
		Type:          string(room.Type),
		PricePerNight: room.PricePerNight,
		Capacity:      room.Capacity,
		Description:   room.Description,
		BookedDates:   booked,
	}, nil
}
