package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking status lifecycle: pending on creation, confirmed via successful
// payment or owner action, cancelled by the owner. Cancelled is terminal.
type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingPending, BookingConfirmed, BookingCancelled:
		return true
	}
	return false
}

type Booking struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"-"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	UserID  uint `gorm:"column:user_id;index" json:"userId"`
	RoomID  uint `gorm:"column:room_id;index:idx_room_dates" json:"roomId"`
	HotelID uint `gorm:"column:hotel_id;index" json:"hotelId"`

	CheckInDate  time.Time `gorm:"column:check_in_date;index:idx_room_dates" json:"checkInDate"`
	CheckOutDate time.Time `gorm:"column:check_out_date" json:"checkOutDate"`

	Guests     int     `gorm:"column:guests" json:"guests"`
	TotalPrice float64 `gorm:"column:total_price" json:"totalPrice"`

	Status        BookingStatus `gorm:"column:status;size:32;default:pending" json:"status"`
	IsPaid        bool          `gorm:"column:is_paid;default:false" json:"isPaid"`
	PaymentMethod string        `gorm:"column:payment_method;size:32" json:"paymentMethod,omitempty"`

	User  User  `gorm:"foreignKey:UserID;references:ID" json:"user,omitempty"`
	Room  Room  `gorm:"foreignKey:RoomID;references:ID" json:"room,omitempty"`
	Hotel Hotel `gorm:"foreignKey:HotelID;references:ID" json:"hotel,omitempty"`
}
