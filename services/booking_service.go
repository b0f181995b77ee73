package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"staybook-backend/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BookingService owns the booking lifecycle: creation with the
// availability check, owner status transitions and guest payment.
type BookingService struct {
	DB      *gorm.DB
	Gateway PaymentGateway

	// Booking IDs with a payment attempt in flight. At most one attempt
	// per booking; concurrent calls get ErrPaymentInProgress.
	inflight sync.Map
}

func NewBookingService(db *gorm.DB, gateway PaymentGateway) *BookingService {
	return &BookingService{DB: db, Gateway: gateway}
}

// lockForUpdate adds SELECT ... FOR UPDATE where the dialect supports it.
// The sqlite test databases run single-writer, so the lock is mysql-only.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "mysql" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// CreateBooking validates the request, re-checks availability and inserts
// the booking as pending/unpaid, all inside one transaction. The room row
// is locked first so two overlapping requests for the same room serialize
// and the loser fails with ErrRoomUnavailable instead of double-booking.
func (s *BookingService) CreateBooking(userID, roomID uint, checkIn, checkOut time.Time, guests int) (*models.Booking, error) {
	if guests < 1 {
		return nil, ErrInvalidGuests
	}
	if !checkIn.Before(checkOut) {
		return nil, ErrInvalidDateRange
	}
	now := time.Now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if checkIn.Before(today) {
		return nil, ErrInvalidDateRange
	}

	nights, err := Nights(checkIn, checkOut)
	if err != nil {
		return nil, err
	}

	var booking models.Booking
	err = s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := lockForUpdate(tx).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return fmt.Errorf("failed to load room: %w", err)
		}
		if !room.IsAvailable {
			return ErrRoomUnavailable
		}

		var conflicts int64
		if err := overlappingBookings(tx, roomID, checkIn, checkOut).Count(&conflicts).Error; err != nil {
			return fmt.Errorf("failed to check availability: %w", err)
		}
		if conflicts > 0 {
			return ErrRoomUnavailable
		}

		booking = models.Booking{
			UserID:       userID,
			RoomID:       roomID,
			HotelID:      room.HotelID,
			CheckInDate:  checkIn,
			CheckOutDate: checkOut,
			Guests:       guests,
			TotalPrice:   TotalPrice(room.PricePerNight, nights),
			Status:       models.BookingPending,
			IsPaid:       false,
		}
		if err := tx.Create(&booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

// UpdateStatusInput carries the optional fields of an owner update.
// Nil fields are left untouched.
type UpdateStatusInput struct {
	Status *models.BookingStatus
	IsPaid *bool
}

// UpdateStatus applies an owner-side status and/or payment-flag change.
// The requester must own the hotel the booking belongs to. Cancelled is
// terminal: a cancelled booking cannot be moved back to another status.
func (s *BookingService) UpdateStatus(bookingID, requesterID uint, in UpdateStatusInput) (*models.Booking, error) {
	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	var hotel models.Hotel
	if err := s.DB.First(&hotel, booking.HotelID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to load hotel: %w", err)
	}
	if hotel.OwnerID != requesterID {
		return nil, ErrUnauthorized
	}

	updates := map[string]interface{}{}
	if in.Status != nil {
		if !in.Status.Valid() {
			return nil, ErrInvalidStatus
		}
		if booking.Status == models.BookingCancelled && *in.Status != models.BookingCancelled {
			return nil, ErrBookingCancelled
		}
		updates["status"] = *in.Status
	}
	if in.IsPaid != nil {
		updates["is_paid"] = *in.IsPaid
	}
	if len(updates) == 0 {
		return &booking, nil
	}

	if err := s.DB.Model(&booking).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update booking: %w", err)
	}
	return &booking, nil
}

// ProcessPayment charges a pending booking through the gateway. Only the
// booking's guest may pay, exactly once; a decline leaves the booking
// untouched and is surfaced to the caller, who may resubmit.
func (s *BookingService) ProcessPayment(ctx context.Context, bookingID, userID uint, method string) (*PaymentResult, error) {
	if _, loaded := s.inflight.LoadOrStore(bookingID, struct{}{}); loaded {
		return nil, ErrPaymentInProgress
	}
	defer s.inflight.Delete(bookingID)

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to load booking: %w", err)
	}

	if booking.UserID != userID {
		return nil, ErrUnauthorized
	}
	if booking.IsPaid {
		return nil, ErrAlreadyPaid
	}
	if booking.Status == models.BookingCancelled {
		return nil, ErrBookingCancelled
	}

	result, err := s.Gateway.ProcessPayment(ctx, booking.TotalPrice, method)
	if err != nil {
		return nil, err
	}

	err = s.DB.Model(&booking).Updates(map[string]interface{}{
		"is_paid":        true,
		"status":         models.BookingConfirmed,
		"payment_method": method,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("payment succeeded but booking update failed: %w", err)
	}
	return result, nil
}

// GetUserBookings lists a guest's bookings, newest first.
func (s *BookingService) GetUserBookings(userID uint) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Preload("Room").
		Preload("Hotel").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}
	return bookings, nil
}

// DashboardStats summarizes an owner's bookings.
type DashboardStats struct {
	TotalBookings     int     `json:"totalBookings"`
	ConfirmedBookings int     `json:"confirmedBookings"`
	PendingBookings   int     `json:"pendingBookings"`
	CancelledBookings int     `json:"cancelledBookings"`
	PaidBookings      int     `json:"paidBookings"`
	UnpaidBookings    int     `json:"unpaidBookings"`
	TotalRevenue      float64 `json:"totalRevenue"`
	RoomsCount        int     `json:"roomsCount"`
}

// GetHotelBookings returns all bookings of the requester's hotel together
// with dashboard stats. Revenue counts paid bookings.
func (s *BookingService) GetHotelBookings(ownerID uint) ([]models.Booking, *DashboardStats, error) {
	var hotel models.Hotel
	if err := s.DB.Where("owner_id = ?", ownerID).First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrHotelNotFound
		}
		return nil, nil, fmt.Errorf("failed to load hotel: %w", err)
	}

	var bookings []models.Booking
	err := s.DB.
		Preload("User").
		Preload("Room").
		Where("hotel_id = ?", hotel.ID).
		Order("created_at DESC").
		Find(&bookings).Error
	if err != nil {
		return nil, nil, fmt.Errorf("failed to fetch bookings: %w", err)
	}

	var roomsCount int64
	if err := s.DB.Model(&models.Room{}).Where("hotel_id = ?", hotel.ID).Count(&roomsCount).Error; err != nil {
		return nil, nil, fmt.Errorf("failed to count rooms: %w", err)
	}

	stats := &DashboardStats{TotalBookings: len(bookings), RoomsCount: int(roomsCount)}
	for _, b := range bookings {
		switch b.Status {
		case models.BookingConfirmed:
			stats.ConfirmedBookings++
		case models.BookingPending:
			stats.PendingBookings++
		case models.BookingCancelled:
			stats.CancelledBookings++
		}
		if b.IsPaid {
			stats.PaidBookings++
			stats.TotalRevenue += b.TotalPrice
		} else {
			stats.UnpaidBookings++
		}
	}
	return bookings, stats, nil
}
