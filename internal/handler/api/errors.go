package api

import (
	"errors"
	"net/http"

	"room-reservation/internal/domain/reservation"
	"room-reservation/internal/handler/httperr"
	"room-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

// abortWithReservationError maps reservation and room failures to HTTP statuses.
func abortWithReservationError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, reservation.ErrInvalidDateFormat):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid date format, expected YYYY-MM-DDTHH:MM", nil)
	case errs.Is(err, errs.ErrInvalidTimeSlot), errs.Is(err, reservation.ErrInvalidTimeSlot):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "End time must be after start time", nil)
	case errs.Is(err, errs.ErrReservationNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.Is(err, errs.ErrRoomNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Room not found", nil)
	case errs.Is(err, errs.ErrForbidden):
		httperr.AbortWithError(c, http.StatusForbidden, err, "You cannot modify this reservation", nil)
	case errs.Is(err, errs.ErrRoomUnavailable):
		httperr.AbortWithError(c, http.StatusConflict, err, "Room is already booked for this time slot", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}

var errMissingPrincipal = errors.New("authenticated principal missing from context")

func abortMissingPrincipal(c *gin.Context) {
	httperr.AbortWithError(c, http.StatusInternalServerError, errMissingPrincipal, "Internal server error", nil)
}
