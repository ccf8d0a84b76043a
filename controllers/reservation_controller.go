package controllers

import (
	"net/http"
	"time"

	"hotel-reservations/dto"
	"hotel-reservations/middleware"
	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/gin-gonic/gin"
)

type ReservationController struct {
	reservations *services.ReservationService
	users        *services.UserService
}

func NewReservationController(reservations *services.ReservationService, users *services.UserService) *ReservationController {
	return &ReservationController{reservations: reservations, users: users}
}

// MyReservations handles GET /reservations/my-reservations.
func (ctl *ReservationController) MyReservations(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	reservations, err := ctl.reservations.ListForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}

// Reserve handles POST /reservations/reserve-room.
func (ctl *ReservationController) Reserve(c *gin.Context) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return
	}
	var payload dto.ReservationCreateRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request payload")
		return
	}
	checkIn, err := time.Parse("2006-01-02", payload.CheckInDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkInDate, expected YYYY-MM-DD")
		return
	}
	checkOut, err := time.Parse("2006-01-02", payload.CheckOutDate)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid checkOutDate, expected YYYY-MM-DD")
		return
	}

	reservation, err := ctl.reservations.Create(userID, payload.RoomID, checkIn, checkOut)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusCreated, reservation)
}

// Confirm handles POST /reservations/confirm-reservation/:reservationId.
// Only the owning user may confirm.
func (ctl *ReservationController) Confirm(c *gin.Context) {
	reservationID, ok := ctl.authorizeOwner(c)
	if !ok {
		return
	}
	reservation, err := ctl.reservations.Confirm(reservationID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// Cancel handles POST /reservations/cancel-reservation/:reservationId.
// Only the owning user may cancel.
func (ctl *ReservationController) Cancel(c *gin.Context) {
	reservationID, ok := ctl.authorizeOwner(c)
	if !ok {
		return
	}
	reservation, err := ctl.reservations.Cancel(reservationID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservation)
}

// ListAll handles GET /reservations (admin).
func (ctl *ReservationController) ListAll(c *gin.Context) {
	reservations, err := ctl.reservations.ListAll()
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}

// ListForUser handles GET /users/:userId/reservations (admin).
func (ctl *ReservationController) ListForUser(c *gin.Context) {
	userID, ok := parseIDParam(c, "userId")
	if !ok {
		return
	}
	if _, err := ctl.users.GetByID(userID); err != nil {
		respondError(c, err)
		return
	}
	reservations, err := ctl.reservations.ListForUser(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.JSONSuccess(c, http.StatusOK, reservations)
}

// authorizeOwner parses the reservation id and rejects callers that do not
// own the reservation.
func (ctl *ReservationController) authorizeOwner(c *gin.Context) (uint, bool) {
	reservationID, ok := parseIDParam(c, "reservationId")
	if !ok {
		return 0, false
	}
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		utils.JSONError(c, http.StatusUnauthorized, "authentication required")
		return 0, false
	}
	owner, err := ctl.reservations.IsOwner(userID, reservationID)
	if err != nil {
		respondError(c, err)
		return 0, false
	}
	if !owner {
		utils.JSONError(c, http.StatusForbidden, "you do not own this reservation")
		return 0, false
	}
	return reservationID, true
}
