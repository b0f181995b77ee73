package services

import (
	"errors"
	"fmt"
	"time"

	"staybook-backend/models"

	"gorm.io/gorm"
)

// AvailabilityService answers whether a room is free for a date range.
type AvailabilityService struct {
	DB *gorm.DB
}

func NewAvailabilityService(db *gorm.DB) *AvailabilityService {
	return &AvailabilityService{DB: db}
}

// overlappingBookings scopes tx to bookings on roomID whose inclusive
// [check_in_date, check_out_date] interval touches the proposed range.
// Back-to-back stays sharing a calendar day count as overlapping.
// Cancelled bookings do not block a room.
func overlappingBookings(tx *gorm.DB, roomID uint, checkIn, checkOut time.Time) *gorm.DB {
	return tx.Model(&models.Booking{}).
		Where("room_id = ?", roomID).
		Where("status <> ?", models.BookingCancelled).
		Where("check_in_date <= ? AND check_out_date >= ?", checkOut, checkIn)
}

// CheckAvailability reports whether roomID is bookable for the range.
// A room toggled off at the listing level is never available. A missing
// room is an explicit error, not silently "unavailable".
func (s *AvailabilityService) CheckAvailability(roomID uint, checkIn, checkOut time.Time) (bool, error) {
	if !checkIn.Before(checkOut) {
		return false, ErrInvalidDateRange
	}

	var room models.Room
	if err := s.DB.First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrRoomNotFound
		}
		return false, fmt.Errorf("failed to load room: %w", err)
	}
	if !room.IsAvailable {
		return false, nil
	}

	var conflicts int64
	if err := overlappingBookings(s.DB, roomID, checkIn, checkOut).Count(&conflicts).Error; err != nil {
		return false, fmt.Errorf("failed to query bookings: %w", err)
	}
	return conflicts == 0, nil
}
