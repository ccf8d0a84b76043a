package controllers

import (
	"net/http"
	"strconv"
	"time"

	"hotel-reservations/dto"
	"hotel-reservations/models"
	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/gin-gonic/gin"
)

type RoomController struct {
	rooms *services.RoomService
}

func NewRoomController(rooms *services.RoomService) *RoomController {
	return &RoomController{rooms: rooms}
}

// Search handles GET /rooms. All filters are optional query parameters:
// roomNumber, type, minCapacity, maxPricePerNight, checkInDate,
// checkOutDate (dates as YYYY-MM-DD).
func (ctl *RoomController) Search(c *gin.Context) {
	var params services.RoomSearchParams

	if raw := c.Query("roomNumber"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid roomNumber")
			return
		}
		params.RoomNumber = &n
	}
	if raw := c.Query("type"); raw != "" {
		roomType, err := models.ParseRoomType(raw)
		if err != nil {
			respondError(c, err)
			return
		}
		params.Type = &roomType
	}
	if raw := c.Query("minCapacity"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			utils.JSONError(c, http.StatusBadRequest, "invalid minCapacity")
			return
		}
		params.MinCapacity = &n
	}
	if raw := c.Query("maxPricePerNight"); raw != "" {
		p, err := strconv.ParseFloat(raw, 64)
		if err != nil || p <= 0 {
			utils.JSONError(c, http.StatusBadRequest, "invalid maxPricePerNight")
			return
		}
		params.MaxPrice = &p
	}
	if raw := c.Query("checkInDate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid checkInDate, expected YYYY-MM-DD")
			return
		}
		params.CheckInDate = &t
	}
	if raw := c.Query("checkOutDate"); raw != "" {
		t, err := time.Parse("2006-01-02", raw)
		if err != nil {
			utils.JSONError(c, http.StatusBadRequest, "invalid checkOutDate, expected YYYY-MM-DD")
			return
		}
		params.CheckOutDate = &t
	}

	rooms, err := ctl.rooms.Search(params)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, rooms)
}

// Create handles POST /rooms (admin).
func (ctl *RoomController) Create(c *gin.Context) {
	var payload dto.RoomCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	room, err := ctl.rooms.AddRoom(payload)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, room)
}

// Update handles PATCH /rooms/:roomId (admin). Only supplied fields change.
func (ctl *RoomController) Update(c *gin.Context) {
	roomID, ok := parseIDParam(c, "roomId")
	if !ok {
		return
	}
	var payload dto.RoomUpdateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	room, err := ctl.rooms.UpdateRoom(roomID, payload)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, room)
}

// Delete handles DELETE /rooms/:roomId (admin).
func (ctl *RoomController) Delete(c *gin.Context) {
	roomID, ok := parseIDParam(c, "roomId")
	if !ok {
		return
	}
	if err := ctl.rooms.DeleteRoom(roomID); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseIDParam(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		utils.JSONError(c, http.StatusBadRequest, "invalid "+name)
		return 0, false
	}
	return uint(id), true
}
