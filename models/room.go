package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type Room struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	HotelID uint `gorm:"column:hotel_id;index" json:"hotelId"`

	RoomType      string  `gorm:"column:room_type;size:64" json:"roomType"`
	PricePerNight float64 `gorm:"column:price_per_night" json:"pricePerNight"`

	// JSON arrays of strings.
	Amenities datatypes.JSON `json:"amenities,omitempty"`
	Images    datatypes.JSON `json:"images,omitempty"`

	// Listing-level toggle, distinct from date-range availability.
	IsAvailable bool `gorm:"column:is_available;default:true" json:"isAvailable"`

	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"hotel,omitempty"`
}
