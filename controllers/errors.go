package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"staybook-backend/services"
	"staybook-backend/utils"

	"github.com/gin-gonic/gin"
)

// respondServiceError translates a service failure into the HTTP envelope.
// Known domain errors keep their message; anything else is logged and
// surfaced as a generic failure so internals don't leak.
func respondServiceError(c *gin.Context, err error) {
	var gwErr *services.GatewayError
	switch {
	case errors.Is(err, services.ErrInvalidDateRange),
		errors.Is(err, services.ErrInvalidGuests),
		errors.Is(err, services.ErrInvalidRating),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidCity),
		errors.Is(err, services.ErrInvalidAccount):
		utils.JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnauthorized):
		utils.JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.JSONError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrRoomNotFound),
		errors.Is(err, services.ErrBookingNotFound),
		errors.Is(err, services.ErrHotelNotFound),
		errors.Is(err, services.ErrReviewNotFound),
		errors.Is(err, services.ErrUserNotFound):
		utils.JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, services.ErrRoomUnavailable),
		errors.Is(err, services.ErrAlreadyPaid),
		errors.Is(err, services.ErrPaymentInProgress),
		errors.Is(err, services.ErrBookingCancelled),
		errors.Is(err, services.ErrDuplicateReview),
		errors.Is(err, services.ErrNotEligible),
		errors.Is(err, services.ErrHotelExists),
		errors.Is(err, services.ErrUserExists):
		utils.JSONError(c, http.StatusConflict, err.Error())
	case errors.As(err, &gwErr):
		utils.JSONError(c, http.StatusPaymentRequired, gwErr.Message)
	case errors.Is(err, context.DeadlineExceeded), errors.Is(err, context.Canceled):
		utils.JSONError(c, http.StatusGatewayTimeout, "payment provider did not respond in time")
	default:
		log.Printf("internal error: %v", err)
		utils.JSONError(c, http.StatusInternalServerError, "something went wrong")
	}
}

// parseDate accepts the YYYY-MM-DD wire format, falling back to RFC 3339.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse("2006-01-02", s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}
