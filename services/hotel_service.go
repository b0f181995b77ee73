package services

import (
	"errors"
	"fmt"
	"strings"

	"staybook-backend/models"

	"gorm.io/gorm"
)

// HotelService manages hotel profile data. One hotel per owner.
type HotelService struct {
	DB *gorm.DB
}

func NewHotelService(db *gorm.DB) *HotelService {
	return &HotelService{DB: db}
}

type RegisterHotelInput struct {
	Name        string
	Address     string
	Contact     string
	City        string
	Destination string
	Location    models.Location
}

// RegisterHotel creates the owner's hotel and promotes the account to the
// hotelOwner role in the same transaction.
func (s *HotelService) RegisterHotel(ownerID uint, in RegisterHotelInput) (*models.Hotel, error) {
	var hotel models.Hotel
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var existing models.Hotel
		err := tx.Where("owner_id = ?", ownerID).First(&existing).Error
		if err == nil {
			return ErrHotelExists
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to check existing hotel: %w", err)
		}

		hotel = models.Hotel{
			OwnerID:     ownerID,
			Name:        in.Name,
			Address:     in.Address,
			Contact:     in.Contact,
			City:        in.City,
			Destination: in.Destination,
			Location:    in.Location,
		}
		if err := tx.Create(&hotel).Error; err != nil {
			if isDuplicateKey(err) {
				return ErrHotelExists
			}
			return fmt.Errorf("failed to create hotel: %w", err)
		}

		if err := tx.Model(&models.User{}).Where("id = ?", ownerID).
			Update("role", models.RoleHotelOwner).Error; err != nil {
			return fmt.Errorf("failed to promote owner: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

// GetProfile returns the hotel owned by ownerID.
func (s *HotelService) GetProfile(ownerID uint) (*models.Hotel, error) {
	var hotel models.Hotel
	if err := s.DB.Where("owner_id = ?", ownerID).First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to load hotel: %w", err)
	}
	return &hotel, nil
}

type UpdateHotelInput struct {
	Name        string
	Address     string
	Contact     string
	City        string
	Destination *string
	Location    *models.Location
}

// UpdateHotel applies a partial profile update to the owner's hotel.
func (s *HotelService) UpdateHotel(ownerID uint, in UpdateHotelInput) (*models.Hotel, error) {
	hotel, err := s.GetProfile(ownerID)
	if err != nil {
		return nil, err
	}

	updates := map[string]interface{}{}
	if in.Name != "" {
		updates["name"] = in.Name
	}
	if in.Address != "" {
		updates["address"] = in.Address
	}
	if in.Contact != "" {
		updates["contact"] = in.Contact
	}
	if in.City != "" {
		updates["city"] = in.City
	}
	if in.Destination != nil {
		updates["destination"] = *in.Destination
	}
	if in.Location != nil {
		updates["location_lat"] = in.Location.Lat
		updates["location_lng"] = in.Location.Lng
	}
	if len(updates) == 0 {
		return hotel, nil
	}

	if err := s.DB.Model(hotel).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update hotel: %w", err)
	}
	return hotel, nil
}

// ListHotels returns all hotels, optionally filtered by city
// (case-insensitive substring).
func (s *HotelService) ListHotels(city string) ([]models.Hotel, error) {
	q := s.DB.Preload("Owner")
	if city != "" {
		q = q.Where("LOWER(city) LIKE ?", "%"+strings.ToLower(city)+"%")
	}
	var hotels []models.Hotel
	if err := q.Find(&hotels).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch hotels: %w", err)
	}
	return hotels, nil
}

// GetDashboard returns the owner dashboard. Unlike GetHotelBookings,
// revenue here counts only bookings that are both confirmed and paid.
func (s *HotelService) GetDashboard(ownerID uint) ([]models.Booking, *DashboardStats, error) {
	hotel, err := s.GetProfile(ownerID)
	if err != nil {
		return nil, nil, err
	}

	var bookings []models.Booking
	err = s.DB.
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
			if b.Status == models.BookingConfirmed {
				stats.TotalRevenue += b.TotalPrice
			}
		} else {
			stats.UnpaidBookings++
		}
	}
	return bookings, stats, nil
}
