package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Role values a user account can hold. Registering a hotel promotes
// a plain user to RoleHotelOwner.
type Role string

const (
	RoleUser       Role = "user"
	RoleHotelOwner Role = "hotelOwner"
	RoleAdmin      Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleHotelOwner, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Username string `gorm:"size:64;uniqueIndex" json:"username"`
	Email    string `gorm:"size:128;uniqueIndex" json:"email"`
	Password string `gorm:"size:128" json:"-"`
	Image    string `gorm:"size:255" json:"image,omitempty"`
	Role     Role   `gorm:"size:32;default:user" json:"role"`

	// JSON array of city names, newest last, capped at MaxRecentSearchedCities.
	RecentSearchedCities datatypes.JSON `gorm:"column:recent_searched_cities" json:"recentSearchedCities,omitempty"`
}
