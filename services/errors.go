package services

import (
	"errors"
	"strings"

	mysqldrv "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"
)

// Domain failures surfaced to controllers. Anything not listed here is an
// internal error: logged server-side, generic message to the client.
var (
	ErrInvalidDateRange = errors.New("invalid date range")
	ErrInvalidGuests    = errors.New("guest count must be at least 1")
	ErrInvalidRating    = errors.New("rating must be between 1 and 5")
	ErrInvalidStatus    = errors.New("invalid booking status")
	ErrInvalidCity      = errors.New("city is required")
	ErrInvalidAccount   = errors.New("username, email and a password of at least 6 characters are required")

	ErrRoomUnavailable   = errors.New("room is not available")
	ErrAlreadyPaid       = errors.New("booking is already paid")
	ErrPaymentInProgress = errors.New("a payment attempt for this booking is already in progress")
	ErrBookingCancelled  = errors.New("booking is cancelled")

	ErrNotEligible     = errors.New("you can only review rooms you've stayed in")
	ErrDuplicateReview = errors.New("you have already reviewed this room")

	ErrUnauthorized = errors.New("not authorized")

	ErrRoomNotFound    = errors.New("room not found")
	ErrBookingNotFound = errors.New("booking not found")
	ErrHotelNotFound   = errors.New("hotel not found")
	ErrReviewNotFound  = errors.New("review not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrHotelExists = errors.New("hotel already registered")
	ErrUserExists  = errors.New("email or username already registered")

	ErrInvalidCredentials = errors.New("invalid email or password")
)

// isDuplicateKey reports whether err is a unique-constraint violation.
// MySQL surfaces error 1062; other drivers are matched on message.
func isDuplicateKey(err error) bool {
	if err == nil {
		return false
	}
	var myErr *mysqldrv.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	lc := strings.ToLower(err.Error())
	return strings.Contains(lc, "duplicate") || strings.Contains(lc, "unique constraint")
}
