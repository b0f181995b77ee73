package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"staybook-backend/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// RoomService manages room listings for hotel owners and room search for
// guests.
type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func toJSONList(items []string) (datatypes.JSON, error) {
	if items == nil {
		items = []string{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return nil, fmt.Errorf("failed to encode list: %w", err)
	}
	return datatypes.JSON(raw), nil
}

// CreateRoom adds a room to the owner's hotel.
func (s *RoomService) CreateRoom(ownerID uint, roomType string, pricePerNight float64, amenities, images []string) (*models.Room, error) {
	var hotel models.Hotel
	if err := s.DB.Where("owner_id = ?", ownerID).First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to load hotel: %w", err)
	}

	amenitiesJSON, err := toJSONList(amenities)
	if err != nil {
		return nil, err
	}
	imagesJSON, err := toJSONList(images)
	if err != nil {
		return nil, err
	}

	room := models.Room{
		HotelID:       hotel.ID,
		RoomType:      roomType,
		PricePerNight: pricePerNight,
		Amenities:     amenitiesJSON,
		Images:        imagesJSON,
		IsAvailable:   true,
	}
	if err := s.DB.Create(&room).Error; err != nil {
		return nil, fmt.Errorf("failed to create room: %w", err)
	}
	return &room, nil
}

// RoomFilters narrows GetRooms results. Nil price bounds are ignored.
type RoomFilters struct {
	City     string
	MinPrice *float64
	MaxPrice *float64
}

// GetRooms lists rooms newest first, filtered by hotel city and price.
func (s *RoomService) GetRooms(filters RoomFilters) ([]models.Room, error) {
	q := s.DB.Preload("Hotel").Order("rooms.created_at DESC")

	if filters.City != "" {
		q = q.Joins("JOIN hotels ON hotels.id = rooms.hotel_id").
			Where("LOWER(hotels.city) LIKE ?", "%"+strings.ToLower(filters.City)+"%")
	}
	if filters.MinPrice != nil {
		q = q.Where("price_per_night >= ?", *filters.MinPrice)
	}
	if filters.MaxPrice != nil {
		q = q.Where("price_per_night <= ?", *filters.MaxPrice)
	}

	var rooms []models.Room
	if err := q.Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	return rooms, nil
}

// GetOwnerRooms lists the rooms of the requester's hotel.
func (s *RoomService) GetOwnerRooms(ownerID uint) ([]models.Room, error) {
	var hotel models.Hotel
	if err := s.DB.Where("owner_id = ?", ownerID).First(&hotel).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHotelNotFound
		}
		return nil, fmt.Errorf("failed to load hotel: %w", err)
	}

	var rooms []models.Room
	if err := s.DB.Preload("Hotel").Where("hotel_id = ?", hotel.ID).Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch rooms: %w", err)
	}
	return rooms, nil
}

// GetRoomByID returns a room with its hotel and the hotel's owner.
func (s *RoomService) GetRoomByID(roomID uint) (*models.Room, error) {
	var room models.Room
	err := s.DB.Preload("Hotel").Preload("Hotel.Owner").First(&room, roomID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}
	return &room, nil
}

// ToggleAvailability flips the listing-level availability switch. Only
// the owner of the room's hotel may toggle it.
func (s *RoomService) ToggleAvailability(roomID, requesterID uint) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("Hotel").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}
	if room.Hotel.OwnerID != requesterID {
		return nil, ErrUnauthorized
	}

	if err := s.DB.Model(&room).Update("is_available", !room.IsAvailable).Error; err != nil {
		return nil, fmt.Errorf("failed to toggle availability: %w", err)
	}
	return &room, nil
}

// UpdateRoomInput carries a partial room update. Nil fields are skipped.
type UpdateRoomInput struct {
	RoomType      string
	PricePerNight *float64
	Amenities     []string
	Images        []string
}

// UpdateRoom applies a partial update to a room of the requester's hotel.
func (s *RoomService) UpdateRoom(roomID, requesterID uint, in UpdateRoomInput) (*models.Room, error) {
	var room models.Room
	if err := s.DB.Preload("Hotel").First(&room, roomID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, fmt.Errorf("failed to load room: %w", err)
	}
	if room.Hotel.OwnerID != requesterID {
		return nil, ErrUnauthorized
	}

	updates := map[string]interface{}{}
	if in.RoomType != "" {
		updates["room_type"] = in.RoomType
	}
	if in.PricePerNight != nil {
		updates["price_per_night"] = *in.PricePerNight
	}
	if in.Amenities != nil {
		amenitiesJSON, err := toJSONList(in.Amenities)
		if err != nil {
			return nil, err
		}
		updates["amenities"] = amenitiesJSON
	}
	if in.Images != nil {
		imagesJSON, err := toJSONList(in.Images)
		if err != nil {
			return nil, err
		}
		updates["images"] = imagesJSON
	}
	if len(updates) == 0 {
		return &room, nil
	}

	if err := s.DB.Model(&room).Updates(updates).Error; err != nil {
		return nil, fmt.Errorf("failed to update room: %w", err)
	}
	return &room, nil
}
