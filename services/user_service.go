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

// MaxRecentSearchedCities bounds the per-user recent-search list.
// Oldest entries are evicted first.
const MaxRecentSearchedCities = 3

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// GetProfile returns the user record for id.
func (s *UserService) GetProfile(userID uint) (*models.User, error) {
	var user models.User
	if err := s.DB.First(&user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to load user: %w", err)
	}
	return &user, nil
}

// RecentSearchedCities decodes the stored city list.
func RecentSearchedCities(u *models.User) []string {
	if len(u.RecentSearchedCities) == 0 {
		return []string{}
	}
	var cities []string
	if err := json.Unmarshal(u.RecentSearchedCities, &cities); err != nil {
		return []string{}
	}
	return cities
}

// StoreRecentSearchedCity appends city to the user's recent-search list,
// FIFO-evicting the oldest entry past the cap. A city already present is
// left where it is.
func (s *UserService) StoreRecentSearchedCity(userID uint, city string) ([]string, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return nil, ErrInvalidCity
	}

	user, err := s.GetProfile(userID)
	if err != nil {
		return nil, err
	}

	cities := RecentSearchedCities(user)
	for _, c := range cities {
		if strings.EqualFold(c, city) {
			return cities, nil
		}
	}

	cities = append(cities, city)
	if len(cities) > MaxRecentSearchedCities {
		cities = cities[len(cities)-MaxRecentSearchedCities:]
	}

	raw, err := json.Marshal(cities)
	if err != nil {
		return nil, fmt.Errorf("failed to encode cities: %w", err)
	}
	if err := s.DB.Model(user).Update("recent_searched_cities", datatypes.JSON(raw)).Error; err != nil {
		return nil, fmt.Errorf("failed to store cities: %w", err)
	}
	return cities, nil
}
