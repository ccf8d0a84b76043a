package controllers

import (
	"errors"
	"log"
	"net/http"

	"hotel-reservations/models"
	"hotel-reservations/repositories"
	"hotel-reservations/services"
	"hotel-reservations/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps a service/repository failure to an HTTP status. Every
// known kind keeps its fixed message; anything unknown is reported
// generically so internals never leak.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, repositories.ErrUserNotFound),
		errors.Is(err, repositories.ErrRoomNotFound),
		errors.Is(err, repositories.ErrReservationNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())

	case errors.Is(err, repositories.ErrDuplicateRoomNumber),
		errors.Is(err, repositories.ErrDuplicateEmail),
		errors.Is(err, services.ErrRoomHasActiveReservations):
		utils.JSONError(c, http.StatusConflict, err.Error())

	case errors.Is(err, repositories.ErrRoomNotAvailable),
		errors.Is(err, services.ErrCheckInInPast),
		errors.Is(err, services.ErrCheckOutBeforeCheckIn),
		errors.Is(err, services.ErrMinimumStayOneNight),
		errors.Is(err, services.ErrCancellationTooLate),
		errors.Is(err, services.ErrInvalidReservationStatus),
		errors.Is(err, services.ErrInvalidSearchParameters),
		errors.Is(err, services.ErrUserAlreadyVerified),
		errors.Is(err, services.ErrVerificationExpired),
		errors.Is(err, services.ErrInvalidVerificationCode),
		errors.Is(err, models.ErrInvalidRoomType):
		utils.JSONError(c, http.StatusBadRequest, err.Error())

	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrUserNotVerified):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())

	default:
		log.Printf("Unexpected error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "internal server error")
	}
}
