package models

import (
	"time"
)

// Review rows are hard-deleted so the (user, room) unique index frees up
// if a guest removes their review.
type Review struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`

	// One review per (user, room).
	UserID  uint `gorm:"column:user_id;uniqueIndex:idx_user_room" json:"userId"`
	RoomID  uint `gorm:"column:room_id;uniqueIndex:idx_user_room" json:"roomId"`
	HotelID uint `gorm:"column:hotel_id;index" json:"hotelId"`

	Rating   int       `gorm:"column:rating" json:"rating"`
	Comment  string    `gorm:"type:text" json:"comment"`
	StayDate time.Time `gorm:"column:stay_date" json:"stayDate"`

	User  User  `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Room  Room  `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"hotel,omitempty"`
}
