package models

import (
	"time"

	"gorm.io/gorm"
)

type Location struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

type Hotel struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// One hotel per owner account.
	OwnerID uint `gorm:"column:owner_id;uniqueIndex" json:"ownerId"`

	Name        string   `gorm:"size:128" json:"name"`
	Address     string   `gorm:"size:255" json:"address"`
	Contact     string   `gorm:"size:64" json:"contact"`
	City        string   `gorm:"size:64;index" json:"city"`
	Destination string   `gorm:"size:64" json:"destination,omitempty"`
	Location    Location `gorm:"embedded;embeddedPrefix:location_" json:"location"`

	Owner User `gorm:"foreignKey:OwnerID;references:ID" json:"owner,omitempty"`
}
